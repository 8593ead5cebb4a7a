package subtitle

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/nguyentantai21042004/caption-studio/pkg/models"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   time.Duration
		wantOK bool
	}{
		{"full with hours", "01:02:03.456", 3723456 * time.Millisecond, true},
		{"full without hours", "02:30.250", 150250 * time.Millisecond, true},
		{"long hours", "123:00:00.000", 123 * time.Hour, true},
		{"largest hours", "2562046:59:59.999", 2562046*time.Hour + ms(3599999), true},
		{"hours overflow duration", "3000000:00:00.000", 0, false},
		{"hours overflow with minutes", "2562047:59:59.999", 0, false},
		{"hours overflow int64", "99999999999999999999:00:00.000", 0, false},
		{"short", "02:30", 150 * time.Second, true},
		{"surrounding space", "  00:05 ", 5 * time.Second, true},
		{"zero", "00:00", 0, true},
		{"seconds out of range", "00:75.000", 0, false},
		{"minutes out of range", "60:00", 0, false},
		{"empty", "", 0, false},
		{"whitespace", "   ", 0, false},
		{"one digit minutes", "2:30", 0, false},
		{"two digit millis", "00:01.50", 0, false},
		{"short with hours", "01:02:03", 0, false},
		{"garbage", "abc", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.raw)
			if ok != tt.wantOK {
				t.Fatalf("Parse(%q) ok = %v, want %v", tt.raw, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

func TestSynthesize(t *testing.T) {
	tests := []struct {
		name string
		cues []models.Cue
		opts Options
		want []Interval
	}{
		{
			name: "ends before next cue",
			cues: []models.Cue{
				{Timestamp: "00:00", Subtitle: "a"},
				{Timestamp: "00:02", Subtitle: "b"},
				{Timestamp: "00:10", Subtitle: "c"},
			},
			want: []Interval{
				{Sequence: 1, Start: 0, End: ms(1999), Text: "a"},
				{Sequence: 2, Start: ms(2000), End: ms(9999), Text: "b"},
				{Sequence: 3, Start: ms(10000), End: ms(15000), Text: "c"},
			},
		},
		{
			name: "blank text dropped without gap in numbering",
			cues: []models.Cue{
				{Timestamp: "00:01", Subtitle: "one"},
				{Timestamp: "00:03", Subtitle: "   "},
				{Timestamp: "00:05", Subtitle: "  two  "},
			},
			want: []Interval{
				{Sequence: 1, Start: ms(1000), End: ms(2999), Text: "one"},
				{Sequence: 2, Start: ms(5000), End: ms(10000), Text: "two"},
			},
		},
		{
			name: "raw lookahead uses dropped cue",
			cues: []models.Cue{
				{Timestamp: "00:00", Subtitle: "a"},
				{Timestamp: "00:04", Subtitle: ""},
				{Timestamp: "00:08", Subtitle: "b"},
			},
			want: []Interval{
				{Sequence: 1, Start: 0, End: ms(3999), Text: "a"},
				{Sequence: 2, Start: ms(8000), End: ms(13000), Text: "b"},
			},
		},
		{
			name: "retained lookahead skips dropped cue",
			cues: []models.Cue{
				{Timestamp: "00:00", Subtitle: "a"},
				{Timestamp: "00:04", Subtitle: ""},
				{Timestamp: "00:08", Subtitle: "b"},
			},
			opts: Options{Lookahead: LookaheadRetained},
			want: []Interval{
				{Sequence: 1, Start: 0, End: ms(7999), Text: "a"},
				{Sequence: 2, Start: ms(8000), End: ms(13000), Text: "b"},
			},
		},
		{
			name: "invalid next timestamp falls back to default",
			cues: []models.Cue{
				{Timestamp: "00:00", Subtitle: "a"},
				{Timestamp: "bogus", Subtitle: "b"},
			},
			want: []Interval{
				{Sequence: 1, Start: 0, End: ms(5000), Text: "a"},
			},
		},
		{
			name: "out of order next cue falls back to default",
			cues: []models.Cue{
				{Timestamp: "00:10", Subtitle: "a"},
				{Timestamp: "00:05", Subtitle: "b"},
			},
			want: []Interval{
				{Sequence: 1, Start: ms(10000), End: ms(15000), Text: "a"},
				{Sequence: 2, Start: ms(5000), End: ms(10000), Text: "b"},
			},
		},
		{
			name: "equal next start falls back to default",
			cues: []models.Cue{
				{Timestamp: "00:03", Subtitle: "a"},
				{Timestamp: "00:03.000", Subtitle: "b"},
			},
			opts: Options{DefaultDuration: 2 * time.Second},
			want: []Interval{
				{Sequence: 1, Start: ms(3000), End: ms(5000), Text: "a"},
				{Sequence: 2, Start: ms(3000), End: ms(5000), Text: "b"},
			},
		},
		{
			name: "empty input",
			cues: nil,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Synthesize(tt.cues, tt.opts)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Synthesize() mismatch (-want +got):\n%s", diff)
			}
			for _, iv := range got {
				if iv.End <= iv.Start {
					t.Errorf("interval %d: End %v <= Start %v", iv.Sequence, iv.End, iv.Start)
				}
			}
		})
	}
}

func TestSynthesizeHugeHours(t *testing.T) {
	cues := []models.Cue{
		{Timestamp: "2562046:00:00.000", Subtitle: "a"},
		{Timestamp: "3000000:00:00.000", Subtitle: "b"},
	}
	got := Synthesize(cues, Options{})
	if len(got) != 1 {
		t.Fatalf("Synthesize() = %d intervals, want 1", len(got))
	}
	if got[0].Start < 0 || got[0].End <= got[0].Start {
		t.Errorf("interval = %+v, want positive bounds", got[0])
	}
}

func TestSynthesizeOneMillisecondGap(t *testing.T) {
	cues := []models.Cue{
		{Timestamp: "00:00.000", Subtitle: "a"},
		{Timestamp: "00:00.001", Subtitle: "b"},
	}
	got := Synthesize(cues, Options{})
	// next - 1ms equals start, so the minimum duration applies.
	if got[0].End != MinDuration {
		t.Errorf("End = %v, want %v", got[0].End, MinDuration)
	}
}

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "00:00:00,000"},
		{ms(1999), "00:00:01,999"},
		{ms(3723456), "01:02:03,456"},
		{100 * time.Hour, "100:00:00,000"},
		{-5 * time.Second, "00:00:00,000"},
	}

	for _, tt := range tests {
		if got := FormatTimestamp(tt.in); got != tt.want {
			t.Errorf("FormatTimestamp(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSerialize(t *testing.T) {
	intervals := []Interval{
		{Sequence: 1, Start: 0, End: ms(1999), Text: "a"},
		{Sequence: 2, Start: ms(2000), End: ms(7000), Text: "b"},
	}
	want := "1\n00:00:00,000 --> 00:00:01,999\na\n\n" +
		"2\n00:00:02,000 --> 00:00:07,000\nb\n\n"

	if got := Serialize(intervals); got != want {
		t.Errorf("Serialize() = %q, want %q", got, want)
	}
	if got := Serialize(nil); got != "" {
		t.Errorf("Serialize(nil) = %q, want empty", got)
	}
}

func TestRender(t *testing.T) {
	out, err := Render([]models.Cue{{Timestamp: "00:01", Subtitle: "hi"}}, Options{})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := "1\n00:00:01,000 --> 00:00:06,000\nhi\n\n"
	if out != want {
		t.Errorf("Render() = %q, want %q", out, want)
	}

	_, err = Render([]models.Cue{{Timestamp: "xx", Subtitle: "hi"}, {Timestamp: "00:01"}}, Options{})
	if !errors.Is(err, ErrNoSubtitles) {
		t.Errorf("Render() error = %v, want ErrNoSubtitles", err)
	}
}

func TestTranscriptText(t *testing.T) {
	cues := []models.Cue{
		{Timestamp: "00:01", Subtitle: " hello "},
		{Timestamp: "bad", Subtitle: "skip"},
		{Timestamp: "00:03.500", Subtitle: "world"},
		{Timestamp: "00:04", Subtitle: ""},
	}
	want := "[00:01]: hello\n[00:03.500]: world\n"
	if got := TranscriptText(cues); got != want {
		t.Errorf("TranscriptText() = %q, want %q", got, want)
	}
}
