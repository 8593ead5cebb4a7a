package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/caption-studio/internal/clipboard"
	"github.com/nguyentantai21042004/caption-studio/internal/config"
	"github.com/nguyentantai21042004/caption-studio/internal/export"
	"github.com/nguyentantai21042004/caption-studio/internal/generator"
	"github.com/nguyentantai21042004/caption-studio/internal/logger"
	"github.com/nguyentantai21042004/caption-studio/internal/pipeline"
	"github.com/nguyentantai21042004/caption-studio/internal/service"
	"github.com/nguyentantai21042004/caption-studio/pkg/models"
)

type runOptions struct {
	url      string
	style    string
	language string
	count    int
	selected int
	outDir   string
	copy     bool
	docx     bool
	local    bool
}

func newRunCmd(root *rootOptions) *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Fetch a transcript and caption candidates for a video",
		Long: `Run the full generation pipeline for one video: request the transcript,
request caption candidates, select one and write the .srt/.txt/.docx artifacts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := root.load()
			if err != nil {
				return err
			}
			defer logger.Sync(log)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runPipeline(ctx, cmd, cfg, log, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.url, "url", "u", "", "video URL (required)")
	cmd.Flags().StringVar(&opts.style, "style", "", "caption style (default from config)")
	cmd.Flags().StringVar(&opts.language, "language", "", "caption language: English or Cantonese (default from config)")
	cmd.Flags().IntVar(&opts.count, "count", 0, "number of captions: 1, 3 or 5 (default from config)")
	cmd.Flags().IntVar(&opts.selected, "select", 1, "caption to select, 1-based")
	cmd.Flags().StringVarP(&opts.outDir, "out", "o", "", "output directory (default paths.output)")
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "copy the selected caption to the clipboard")
	cmd.Flags().BoolVar(&opts.docx, "docx", false, "also write a .docx report")
	cmd.Flags().BoolVar(&opts.local, "local", false, "call Gemini directly instead of the caption service")
	_ = cmd.MarkFlagRequired("url")

	return cmd
}

func runPipeline(ctx context.Context, cmd *cobra.Command, cfg *config.Config, log logger.Logger, opts *runOptions) error {
	transcripts, captions, err := newServices(cfg, log, opts.local)
	if err != nil {
		return err
	}
	orch := pipeline.New(transcripts, captions, log)

	defaults, err := cfg.Captions.Params()
	if err != nil {
		return err
	}
	update, err := paramsUpdate(defaults, opts)
	if err != nil {
		return err
	}
	if err := orch.UpdateParams(update); err != nil {
		return err
	}

	if err := orch.SubmitTranscript(ctx, opts.url); err != nil {
		return fmt.Errorf("transcript: %w", err)
	}
	if err := orch.SubmitCaptions(ctx, orch.Snapshot().Params); err != nil {
		return fmt.Errorf("captions: %w", err)
	}
	if err := orch.SelectCandidate(opts.selected - 1); err != nil {
		log.Warn(ctx, "Keeping first caption: %v", err)
	}

	snap := orch.Snapshot()
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderCandidates(snap.Candidates, snap.Selected, isTerminal(out)))

	outDir := opts.outDir
	if outDir == "" {
		outDir = cfg.Paths.Output
	}
	if err := ensureDirectories(ctx, log, outDir); err != nil {
		return err
	}

	report := export.Report{
		Title:      "Caption report",
		VideoURL:   opts.url,
		Params:     snap.Params,
		Cues:       snap.Cues,
		Candidates: snap.Candidates,
		Selected:   snap.Selected,
	}
	artifacts, err := export.WriteSession(outDir, export.BaseName(opts.url), report, export.Options{
		Subtitle: cfg.Subtitle.Options(),
		Txt:      cfg.Export.Txt,
		Docx:     opts.docx || cfg.Export.Docx,
	})
	if err != nil {
		return err
	}
	for _, p := range artifacts.Paths() {
		fmt.Fprintf(out, "Wrote %s\n", p)
	}

	if opts.copy {
		caption, ok := snap.SelectedCaption()
		if !ok {
			return errors.New("no caption selected to copy")
		}
		if err := clipboard.WriteAll(caption); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		fmt.Fprintf(out, "Copied caption %d to clipboard\n", snap.Selected+1)
	}
	return nil
}

// newServices returns the HTTP service client, or the Gemini generator with --local.
func newServices(cfg *config.Config, log logger.Logger, local bool) (pipeline.TranscriptService, pipeline.CaptionService, error) {
	if local {
		gen, err := generator.New(cfg.Gemini, log)
		if err != nil {
			return nil, nil, err
		}
		return gen, gen, nil
	}

	client := service.NewClient(service.Config{
		BaseURL:          cfg.Services.BaseURL,
		Timeout:          cfg.Services.Timeout(),
		MaxResponseBytes: cfg.Services.MaxResponseBytes,
	})
	return client, client, nil
}

// paramsUpdate overlays the command-line choices on the configured defaults.
func paramsUpdate(defaults models.GenerationParams, opts *runOptions) (models.ParamsUpdate, error) {
	style, lang, count := defaults.Style, defaults.Language, defaults.Count
	if opts.style != "" {
		st, err := models.ParseStyle(opts.style)
		if err != nil {
			return models.ParamsUpdate{}, err
		}
		style = st
	}
	if opts.language != "" {
		l, err := models.ParseLanguage(opts.language)
		if err != nil {
			return models.ParamsUpdate{}, err
		}
		lang = l
	}
	if opts.count != 0 {
		count = opts.count
	}
	return models.ParamsUpdate{Style: &style, Language: &lang, Count: &count}, nil
}
