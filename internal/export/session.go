package export

import (
	"fmt"
	"path/filepath"

	"github.com/nguyentantai21042004/caption-studio/internal/subtitle"
	"github.com/nguyentantai21042004/caption-studio/pkg/models"
)

// Options selects which artifacts WriteSession produces. The .srt is always written.
type Options struct {
	Subtitle subtitle.Options
	Txt      bool
	Docx     bool
}

// Artifacts lists the files written by WriteSession.
type Artifacts struct {
	SRT  string
	TXT  string
	DOCX string
}

// Paths returns the non-empty artifact paths in write order.
func (a Artifacts) Paths() []string {
	var out []string
	for _, p := range []string{a.SRT, a.TXT, a.DOCX} {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// WriteSession writes the artifacts for r into dir using base as file stem.
func WriteSession(dir, base string, r Report, opts Options) (Artifacts, error) {
	var a Artifacts

	srtPath := filepath.Join(dir, base+".srt")
	if err := WriteSRT(srtPath, r.Cues, opts.Subtitle); err != nil {
		return a, fmt.Errorf("write srt: %w", err)
	}
	a.SRT = srtPath

	if opts.Txt {
		txtPath := filepath.Join(dir, base+".txt")
		if err := WriteTranscript(txtPath, r.Cues); err != nil {
			return a, fmt.Errorf("write transcript: %w", err)
		}
		a.TXT = txtPath
	}

	if opts.Docx {
		if r.Title == "" {
			r.Title = base
		}
		docxPath := filepath.Join(dir, base+".docx")
		if err := WriteDocx(r, docxPath); err != nil {
			return a, fmt.Errorf("write docx: %w", err)
		}
		a.DOCX = docxPath
	}

	return a, nil
}
