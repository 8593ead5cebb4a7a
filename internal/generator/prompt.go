package generator

import (
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/caption-studio/pkg/models"
)

const transcriptPrompt = `Analyze the following YouTube video and generate accurate timestamps with corresponding subtitles.
Requirements:
1. Language: Cantonese or English (prioritize accuracy in spoken language).
2. Provide timestamps in the format HH:MM:SS.mmm (e.g., 00:00:05.123) and the spoken text at each timestamp.
3. Return the result STRICTLY as a JSON array of objects with 'timestamp' and 'subtitle' fields. Do not include markdown or any other text outside the JSON array.

Example output:
[
  {"timestamp": "00:00:05.123", "subtitle": "Hello there."},
  {"timestamp": "00:00:11.456", "subtitle": "This is a test."}
]`

const captionPrompt = `You are an expert social media copywriter specializing in Instagram.
Based on the following video transcript, generate exactly %[1]d distinct and engaging Instagram post caption variations in the %[2]s language.

Requirements:
1. All captions MUST be in %[2]s and reflect a %[3]s tone.
2. Each caption should offer a different angle, hook or call-to-action related to the transcript content.
3. Keep captions suitable for Instagram (generally under 150 words in %[2]s).
4. Capture the main theme or key message of the transcript.
5. Include relevant emojis and hashtags appropriate for %[2]s.
6. Return the result ONLY as a valid JSON array of strings, one complete caption per string. No markdown, numbering or explanations.

Transcript:
---
%[4]s
---

Generate the %[1]d distinct %[3]s Instagram captions in %[2]s as a JSON array of strings now:`

// transcriptText joins the non-empty subtitles into one block.
func transcriptText(cues []models.Cue) string {
	parts := make([]string, 0, len(cues))
	for _, c := range cues {
		if s := strings.TrimSpace(c.Subtitle); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

func buildCaptionPrompt(text string, params models.GenerationParams) string {
	return fmt.Sprintf(captionPrompt, params.Count, params.Language, params.Style, text)
}
