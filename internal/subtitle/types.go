// Package subtitle turns loosely timestamped transcript cues into timed
// display intervals and serializes them as SubRip (.srt) text.
//
// Cue-level problems are not errors here: a cue with an unparseable timestamp
// or blank text is dropped and synthesis continues with the next one. Only an
// entirely empty result is reported, through ErrNoSubtitles from Render.
package subtitle

import (
	"errors"
	"time"
)

// MIMEType identifies SubRip files in HTTP responses.
const MIMEType = "application/x-subrip"

const (
	DefaultDuration = 5 * time.Second
	MinDuration     = 500 * time.Millisecond
)

// ErrNoSubtitles is returned when no cue survived synthesis.
var ErrNoSubtitles = errors.New("no valid subtitles generated")

// Interval is a cue with its computed display window.
type Interval struct {
	Sequence int
	Start    time.Duration
	End      time.Duration
	Text     string
}

// Lookahead selects which cue bounds the end of an interval.
type Lookahead string

const (
	// LookaheadRaw uses the cue at the next array position, even when that cue
	// is dropped itself. This matches the behavior of the web client.
	LookaheadRaw Lookahead = "raw"
	// LookaheadRetained uses the next cue that will itself be emitted.
	LookaheadRetained Lookahead = "retained"
)

// Options tunes interval synthesis. The zero value uses the defaults.
type Options struct {
	DefaultDuration time.Duration
	MinDuration     time.Duration
	Lookahead       Lookahead
}

func (o Options) withDefaults() Options {
	if o.DefaultDuration <= 0 {
		o.DefaultDuration = DefaultDuration
	}
	if o.MinDuration <= 0 {
		o.MinDuration = MinDuration
	}
	if o.Lookahead == "" {
		o.Lookahead = LookaheadRaw
	}
	return o
}
