package subtitle

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// [HH:]MM:SS.mmm
	reFullTimestamp = regexp.MustCompile(`^(?:(\d+):)?(\d{2}):(\d{2})\.(\d{3})$`)
	// MM:SS
	reShortTimestamp = regexp.MustCompile(`^(\d{2}):(\d{2})$`)
)

// maxHours keeps hours plus a full MM:SS.mmm within time.Duration.
const maxHours = math.MaxInt64/int64(time.Hour) - 1

// Parse converts a transcript timestamp into an offset from the start of the
// video. The second result is false for empty input, input matching neither
// grammar, minutes/seconds outside 0-59, or hours too large for a Duration.
func Parse(raw string) (time.Duration, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}

	if m := reFullTimestamp.FindStringSubmatch(raw); m != nil {
		hours := 0
		if m[1] != "" {
			h, err := strconv.ParseInt(m[1], 10, 64)
			if err != nil || h > maxHours {
				return 0, false
			}
			hours = int(h)
		}
		return compose(hours, atoi(m[2]), atoi(m[3]), atoi(m[4]))
	}

	if m := reShortTimestamp.FindStringSubmatch(raw); m != nil {
		return compose(0, atoi(m[1]), atoi(m[2]), 0)
	}

	return 0, false
}

func compose(hours, minutes, seconds, millis int) (time.Duration, bool) {
	if minutes >= 60 || seconds >= 60 {
		return 0, false
	}
	d := time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second +
		time.Duration(millis)*time.Millisecond
	return d, true
}

// atoi is only called on regexp groups of fixed-width digits.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
