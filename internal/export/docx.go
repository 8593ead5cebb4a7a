package export

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/caption-studio/internal/subtitle"
	"github.com/nguyentantai21042004/caption-studio/pkg/models"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

var (
	reBold   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBullet = regexp.MustCompile(`^[\-\*]\s+(.+)$`)
)

// Report is the content of a session docx.
type Report struct {
	Title      string
	VideoURL   string
	Params     models.GenerationParams
	Cues       []models.Cue
	Candidates []string
	Selected   int
}

// WriteDocx renders r as a styled docx at path.
func WriteDocx(r Report, path string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("new document: %w", err)
	}

	addStyledRun(doc.AddParagraph(""), r.Title, true, 16)
	if r.VideoURL != "" {
		addStyledRun(doc.AddParagraph(""), r.VideoURL, false, fontSize)
	}
	addStyledRun(doc.AddParagraph(""),
		fmt.Sprintf("Style: %s | Language: %s | Captions: %d", r.Params.Style, r.Params.Language, r.Params.Count),
		false, fontSize)

	if len(r.Candidates) > 0 {
		addStyledRun(doc.AddParagraph(""), "Captions", true, 15)
		for i, c := range r.Candidates {
			label := fmt.Sprintf("Option %d", i+1)
			if i == r.Selected {
				label += " (selected)"
			}
			addStyledRun(doc.AddParagraph(""), label, true, 14)
			addCaption(doc.AddParagraph, c)
		}
	}

	addStyledRun(doc.AddParagraph(""), "Transcript", true, 15)
	for _, line := range strings.Split(strings.TrimSpace(subtitle.TranscriptText(r.Cues)), "\n") {
		if line == "" {
			continue
		}
		p := doc.AddParagraph("")
		if ts, text, ok := strings.Cut(line, ": "); ok {
			p.AddText(ts+" ").Font(fontName).Size(fontSize).Color("000000").Bold(true)
			p.AddText(text).Font(fontName).Size(fontSize).Color("000000")
			continue
		}
		p.AddText(line).Font(fontName).Size(fontSize).Color("000000")
	}

	if err := doc.SaveTo(path); err != nil {
		return fmt.Errorf("save docx: %w", err)
	}
	return nil
}

// addCaption renders one caption, honoring bullets and **bold** spans.
func addCaption(addParagraph func(string) *docx.Paragraph, caption string) {
	for _, line := range strings.Split(caption, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		p := addParagraph("")
		if m := reBullet.FindStringSubmatch(trimmed); m != nil {
			addRichText(p, "• "+m[1])
			continue
		}
		addRichText(p, trimmed)
	}
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	text = cleanMarkdownInline(text)
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

func addRichText(p *docx.Paragraph, text string) {
	parts := reBold.Split(text, -1)
	matches := reBold.FindAllStringSubmatch(text, -1)

	for i, part := range parts {
		if part != "" {
			p.AddText(cleanMarkdownInline(part)).Font(fontName).Size(fontSize).Color("000000")
		}
		if i < len(matches) {
			p.AddText(cleanMarkdownInline(matches[i][1])).Font(fontName).Size(fontSize).Color("000000").Bold(true)
		}
	}
}

func cleanMarkdownInline(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.ReplaceAll(s, "`", "")
	return s
}
