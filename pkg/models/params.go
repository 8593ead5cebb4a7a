package models

import (
	"strings"

	"github.com/nguyentantai21042004/caption-studio/pkg/apperr"
)

// Style is the tone requested from the caption service.
type Style string

const (
	StyleCasual        Style = "casual"
	StyleFunny         Style = "funny"
	StyleSerious       Style = "serious"
	StyleInspirational Style = "inspirational"
	StyleConcise       Style = "concise"
	StyleEnthusiastic  Style = "enthusiastic"
	StyleInformative   Style = "informative"
)

// Language is the output language of generated captions.
type Language string

const (
	LanguageEnglish   Language = "English"
	LanguageCantonese Language = "Cantonese"
)

var (
	styles    = []Style{StyleCasual, StyleFunny, StyleSerious, StyleInspirational, StyleConcise, StyleEnthusiastic, StyleInformative}
	languages = []Language{LanguageEnglish, LanguageCantonese}
	counts    = []int{1, 3, 5}
)

// Styles lists every supported style in display order.
func Styles() []Style { return append([]Style(nil), styles...) }

// Languages lists every supported language in display order.
func Languages() []Language { return append([]Language(nil), languages...) }

// Counts lists the allowed number of caption candidates.
func Counts() []int { return append([]int(nil), counts...) }

// ParseStyle matches s case-insensitively against the supported styles.
func ParseStyle(s string) (Style, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, st := range styles {
		if string(st) == s {
			return st, nil
		}
	}
	return "", apperr.Validation("params", "unsupported style %q", s)
}

// ParseLanguage matches s case-insensitively and returns the canonical spelling.
func ParseLanguage(s string) (Language, error) {
	trimmed := strings.TrimSpace(s)
	for _, l := range languages {
		if strings.EqualFold(string(l), trimmed) {
			return l, nil
		}
	}
	return "", apperr.Validation("params", "unsupported language %q (use English or Cantonese)", trimmed)
}

// GenerationParams is immutable per caption request.
type GenerationParams struct {
	Style    Style    `json:"style" yaml:"style"`
	Language Language `json:"language" yaml:"language"`
	Count    int      `json:"num_captions" yaml:"count"`
}

// DefaultParams mirrors the defaults of the web form.
func DefaultParams() GenerationParams {
	return GenerationParams{Style: StyleCasual, Language: LanguageCantonese, Count: 3}
}

// Validate checks every field against its enumeration.
func (p GenerationParams) Validate() error {
	if _, err := ParseStyle(string(p.Style)); err != nil {
		return err
	}
	if _, err := ParseLanguage(string(p.Language)); err != nil {
		return err
	}
	for _, c := range counts {
		if p.Count == c {
			return nil
		}
	}
	return apperr.Validation("params", "num_captions must be 1, 3 or 5, got %d", p.Count)
}

// Normalize validates p and returns it with canonical style and language spellings.
func (p GenerationParams) Normalize() (GenerationParams, error) {
	if err := p.Validate(); err != nil {
		return GenerationParams{}, err
	}
	p.Style, _ = ParseStyle(string(p.Style))
	p.Language, _ = ParseLanguage(string(p.Language))
	return p, nil
}

// ParamsUpdate is a partial change to GenerationParams; nil fields are left alone.
type ParamsUpdate struct {
	Style    *Style
	Language *Language
	Count    *int
}

// Apply returns p with the non-nil fields of u applied.
func (u ParamsUpdate) Apply(p GenerationParams) GenerationParams {
	if u.Style != nil {
		p.Style = *u.Style
	}
	if u.Language != nil {
		p.Language = *u.Language
	}
	if u.Count != nil {
		p.Count = *u.Count
	}
	return p
}
