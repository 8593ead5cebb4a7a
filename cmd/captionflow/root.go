package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/caption-studio/internal/config"
	"github.com/nguyentantai21042004/caption-studio/internal/logger"
)

const defaultConfigPath = "config.yaml"

type rootOptions struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "captionflow",
		Short: "Generate subtitles and social captions for online videos",
		Long: `captionflow turns a video URL into a timed transcript, SubRip subtitles and
a set of caption candidates in the requested style and language.

It can drive a remote caption backend (run), serve that backend itself using
Gemini (serve), or convert transcript dumps to subtitles (srt, watch).`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", defaultConfigPath, "path to config file")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose logging")

	cmd.AddCommand(
		newRunCmd(opts),
		newSRTCmd(opts),
		newServeCmd(opts),
		newWatchCmd(opts),
	)
	return cmd
}

// load reads the config (defaults when the file is absent) and builds the logger.
func (o *rootOptions) load() (*config.Config, logger.Logger, error) {
	cfg, err := config.LoadOrDefault(o.configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if o.verbose {
		cfg.Logging.Level = "debug"
	}
	return cfg, logger.New(cfg.Logging.Level, cfg.Logging.Format), nil
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(ctx context.Context, log logger.Logger, dirs ...string) error {
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
		log.Debug(ctx, "Directory ready: %s", dir)
	}
	return nil
}
