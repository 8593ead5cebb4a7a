package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/caption-studio/internal/logger"
	"github.com/nguyentantai21042004/caption-studio/internal/processor"
)

func newSRTCmd(root *rootOptions) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "srt <transcript.json>",
		Short: "Convert a transcript dump to SubRip subtitles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := root.load()
			if err != nil {
				return err
			}
			defer logger.Sync(log)

			if outDir == "" {
				outDir = cfg.Paths.Output
			}
			artifacts, err := processor.New(cfg, log).Convert(cmd.Context(), args[0], outDir)
			if err != nil {
				return err
			}
			for _, p := range artifacts.Paths() {
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", p)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default paths.output)")
	return cmd
}
