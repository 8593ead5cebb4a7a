package subtitle

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/nguyentantai21042004/caption-studio/pkg/models"
)

// FormatTimestamp renders d as HH:MM:SS,mmm. Negative durations render as zero.
func FormatTimestamp(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := d.Milliseconds()
	ms := total % 1000
	total /= 1000
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, ms)
}

// WriteSRT writes one SubRip block per interval, in order.
func WriteSRT(w io.Writer, intervals []Interval) error {
	for _, iv := range intervals {
		_, err := fmt.Fprintf(w, "%d\n%s --> %s\n%s\n\n",
			iv.Sequence, FormatTimestamp(iv.Start), FormatTimestamp(iv.End), iv.Text)
		if err != nil {
			return err
		}
	}
	return nil
}

// Serialize returns the SubRip text for intervals. No intervals yield "".
func Serialize(intervals []Interval) string {
	var b strings.Builder
	// strings.Builder never fails a write.
	_ = WriteSRT(&b, intervals)
	return b.String()
}

// Render runs synthesis and serialization. An empty result is ErrNoSubtitles,
// never an empty file.
func Render(cues []models.Cue, opts Options) (string, error) {
	out := Serialize(Synthesize(cues, opts))
	if out == "" {
		return "", ErrNoSubtitles
	}
	return out, nil
}
