package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/caption-studio/internal/config"
	"github.com/nguyentantai21042004/caption-studio/internal/logger"
	"github.com/nguyentantai21042004/caption-studio/internal/processor"
	"github.com/nguyentantai21042004/caption-studio/internal/watcher"
)

func newWatchCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Convert transcript dumps dropped into paths.input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := root.load()
			if err != nil {
				return err
			}
			defer logger.Sync(log)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			log.Info(ctx, "========================================")
			log.Info(ctx, "Transcript watcher")
			log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
			log.Info(ctx, "Output: %s", cfg.Paths.Output)
			log.Info(ctx, "Press Ctrl+C to stop")
			log.Info(ctx, "========================================")

			err = runWatcher(ctx, cfg, log)
			log.Info(ctx, "Watcher stopped")
			return err
		},
	}
}

// runWatcher blocks until ctx is canceled. Cancellation is not an error.
func runWatcher(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	if err := ensureDirectories(ctx, log, cfg.Paths.Input, cfg.Paths.Output, cfg.Paths.Archived); err != nil {
		return err
	}

	proc := processor.New(cfg, log)
	w, err := watcher.New(cfg.Paths.Input, proc.Process, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		return err
	}
	defer w.Stop()

	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
