package subtitle

import (
	"strings"

	"github.com/nguyentantai21042004/caption-studio/pkg/models"
)

// TranscriptText dumps the cues Synthesize would keep as "[timestamp]: text" lines.
func TranscriptText(cues []models.Cue) string {
	var b strings.Builder
	for _, cue := range cues {
		if !retained(cue) {
			continue
		}
		b.WriteString("[")
		b.WriteString(strings.TrimSpace(cue.Timestamp))
		b.WriteString("]: ")
		b.WriteString(strings.TrimSpace(cue.Subtitle))
		b.WriteString("\n")
	}
	return b.String()
}
