// Package export writes session artifacts: SubRip subtitles, plain-text
// transcripts and a docx report.
package export

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/nguyentantai21042004/caption-studio/internal/subtitle"
	"github.com/nguyentantai21042004/caption-studio/pkg/models"
)

var reUnsafeName = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// WriteFileAtomic writes data to a temp file next to destPath and renames it
// into place, creating the parent directory when needed.
func WriteFileAtomic(destPath string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(destPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	_ = tmp.Sync()
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	_ = os.Chmod(tmpName, perm)

	if err := os.Rename(tmpName, destPath); err != nil {
		return fmt.Errorf("rename %s -> %s: %w", tmpName, destPath, err)
	}
	return nil
}

// WriteSRT renders cues as SubRip into path. Returns subtitle.ErrNoSubtitles
// without touching path when nothing survives synthesis.
func WriteSRT(path string, cues []models.Cue, opts subtitle.Options) error {
	srt, err := subtitle.Render(cues, opts)
	if err != nil {
		return err
	}
	return WriteFileAtomic(path, []byte(srt), 0o644)
}

// WriteTranscript writes the plain-text transcript dump into path.
func WriteTranscript(path string, cues []models.Cue) error {
	return WriteFileAtomic(path, []byte(subtitle.TranscriptText(cues)), 0o644)
}

// BaseName derives a file-safe artifact name from a video URL: the YouTube
// video id when present, else the last path segment.
func BaseName(videoURL string) string {
	name := ""
	if u, err := url.Parse(strings.TrimSpace(videoURL)); err == nil {
		if v := u.Query().Get("v"); v != "" {
			name = v
		} else {
			name = filepath.Base(strings.TrimSuffix(u.Path, "/"))
		}
	}
	name = strings.Trim(reUnsafeName.ReplaceAllString(name, "_"), "_")
	if name == "" || name == "." {
		return "transcript"
	}
	return name
}
