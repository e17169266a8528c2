package main

import (
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"artcast/internal/assets"
	"artcast/internal/logging"
	"artcast/internal/server"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var bindFlag string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the animation streaming server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.newLogger()
			if err != nil {
				return err
			}
			if err := cfg.EnsureDirectories(); err != nil {
				return err
			}

			lock := flock.New(cfg.Paths.LockFile)
			ok, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire lock: %w", err)
			}
			if !ok {
				return errors.New("another artcast server is already running")
			}
			defer func() { _ = lock.Unlock() }()

			bind := cfg.Server.Bind
			if bindFlag != "" {
				bind = bindFlag
			}

			signalCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			srv := server.New(bind, assets.NewLibrary(cfg.Paths.AnimationsDir), logger)
			if err := srv.Start(signalCtx); err != nil {
				return err
			}
			defer srv.Stop()

			if cfg.Discovery.MDNS {
				shutdown, err := server.Announce(cfg.Discovery.Instance, srv.Port(), logger)
				if err != nil {
					logger.Warn("mdns announcement failed", logging.Error(err))
				} else {
					defer shutdown()
				}
			}

			logger.Info("serving animations",
				logging.String("library", cfg.Paths.AnimationsDir),
				logging.String("address", srv.Addr()))

			<-signalCtx.Done()
			logger.Info("shutting down")
			return nil
		},
	}

	cmd.Flags().StringVar(&bindFlag, "bind", "", "Override the configured bind address")
	return cmd
}
