package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/nguyentantai21042004/caption-studio/internal/generator"
	"github.com/nguyentantai21042004/caption-studio/internal/logger"
	"github.com/nguyentantai21042004/caption-studio/internal/server"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	var (
		addr  string
		watch bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve /generate_transcript and /generate_caption backed by Gemini",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := root.load()
			if err != nil {
				return err
			}
			defer logger.Sync(log)

			if addr != "" {
				cfg.Server.Addr = addr
			}

			gen, err := generator.New(cfg.Gemini, log)
			if err != nil {
				return err
			}
			srv := server.New(cfg.Server, gen, cfg.Subtitle.Options(), log)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			log.Info(ctx, "Caption service starting (model: %s, keys: %d)", cfg.Gemini.Model, len(cfg.Gemini.APIKeys))

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				return srv.Run(gctx)
			})
			if watch {
				g.Go(func() error {
					return runWatcher(gctx, cfg, log)
				})
			}
			return g.Wait()
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default server.addr)")
	cmd.Flags().BoolVar(&watch, "watch", false, "also convert transcript dumps dropped into paths.input")
	return cmd
}
