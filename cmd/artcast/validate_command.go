package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"artcast/internal/animation"
	"artcast/internal/assets"
	"artcast/internal/logging"
	"artcast/internal/stream"
)

func newValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <name>",
		Short: "Parse one animation and report its effective playback settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			name := args[0]

			library := assets.NewLibrary(cfg.Paths.AnimationsDir)
			if !library.Exists(name) {
				return fmt.Errorf("unknown animation %q in %s", name, cfg.Paths.AnimationsDir)
			}

			anim := animation.NewStore(library, logging.NewNop()).Load(name)
			if anim.Err != nil {
				return fmt.Errorf("%s does not parse: %w", name, anim.Err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "name:     %s\n", anim.Name)
			fmt.Fprintf(out, "frames:   %d\n", len(anim.Frames))
			fmt.Fprintf(out, "loop:     %t\n", anim.Loop)
			fmt.Fprintf(out, "interval: %s (effective tick period)\n", stream.ResolveInterval(anim))
			return nil
		},
	}
}
