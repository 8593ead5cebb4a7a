package subtitle

import (
	"strings"
	"time"

	"github.com/nguyentantai21042004/caption-studio/pkg/models"
)

// endGap separates an interval from the start of the cue that follows it.
const endGap = time.Millisecond

// Synthesize computes display intervals for cues in a single pass. Cues with an
// invalid timestamp or blank text are skipped and do not consume a sequence
// number. An interval ends 1ms before the following cue starts, or after
// opts.DefaultDuration when there is no later-starting successor.
func Synthesize(cues []models.Cue, opts Options) []Interval {
	opts = opts.withDefaults()

	var intervals []Interval
	seq := 0
	for i, cue := range cues {
		start, ok := Parse(cue.Timestamp)
		text := strings.TrimSpace(cue.Subtitle)
		if !ok || text == "" {
			continue
		}

		end := start + opts.DefaultDuration
		if next, ok := nextStart(cues, i, opts.Lookahead); ok && next > start {
			end = next - endGap
		}
		if end <= start {
			end = start + opts.MinDuration
		}

		seq++
		intervals = append(intervals, Interval{
			Sequence: seq,
			Start:    start,
			End:      end,
			Text:     text,
		})
	}
	return intervals
}

func nextStart(cues []models.Cue, i int, mode Lookahead) (time.Duration, bool) {
	if mode == LookaheadRetained {
		for _, cue := range cues[i+1:] {
			if retained(cue) {
				return Parse(cue.Timestamp)
			}
		}
		return 0, false
	}

	if i+1 >= len(cues) {
		return 0, false
	}
	return Parse(cues[i+1].Timestamp)
}

// retained reports whether Synthesize would emit an interval for cue.
func retained(cue models.Cue) bool {
	if _, ok := Parse(cue.Timestamp); !ok {
		return false
	}
	return strings.TrimSpace(cue.Subtitle) != ""
}
