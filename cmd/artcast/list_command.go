package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"artcast/internal/animation"
	"artcast/internal/assets"
	"artcast/internal/listing"
	"artcast/internal/logging"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var plainFlag bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the animations in the local library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			library := assets.NewLibrary(cfg.Paths.AnimationsDir)
			names, err := library.Names()
			if err != nil {
				return err
			}
			store := animation.NewStore(library, logging.NewNop())

			if plainFlag || !stdoutIsTerminal() {
				fmt.Fprint(cmd.OutOrStdout(), listing.NewFormatter(store).Format(names))
				return nil
			}

			if len(names) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no animations found")
				return nil
			}

			rows := make([][]string, 0, len(names))
			for _, name := range names {
				rows = append(rows, tableRow(name, store.Load(name)))
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Name", "FPS", "Interval", "Loop", "Frames"}, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&plainFlag, "plain", false, "One line per animation, no table")
	return cmd
}

func tableRow(name string, anim *animation.Animation) []string {
	if anim.Err != nil {
		return []string{name, "-", "-", "-", "error: " + anim.Err.Error()}
	}
	fps := "-"
	if anim.FPS > 0 {
		fps = strconv.FormatFloat(anim.FPS, 'g', -1, 64)
	}
	interval := "-"
	if anim.IntervalMS > 0 {
		interval = fmt.Sprintf("%dms", anim.IntervalMS)
	}
	return []string{
		anim.Name,
		fps,
		interval,
		strconv.FormatBool(anim.Loop),
		strconv.Itoa(len(anim.Frames)),
	}
}
