package models

// Cue is one timestamped transcript unit as produced by the transcript service.
// Order is the only ordering signal; a cue has no end time.
type Cue struct {
	Timestamp string `json:"timestamp"`
	Subtitle  string `json:"subtitle"`
}

// TranscriptRequest is the body of POST /generate_transcript.
type TranscriptRequest struct {
	YoutubeLink string `json:"youtube_link"`
	Format      string `json:"format,omitempty"`
}

// TranscriptResponse is the body returned by POST /generate_transcript.
type TranscriptResponse struct {
	Transcript []Cue  `json:"transcript"`
	Error      string `json:"error,omitempty"`
}

// CaptionRequest is the body of POST /generate_caption.
type CaptionRequest struct {
	Transcript  []Cue    `json:"transcript"`
	Style       Style    `json:"style"`
	Language    Language `json:"language"`
	NumCaptions int      `json:"num_captions"`
}

// CaptionResponse is the body returned by POST /generate_caption.
type CaptionResponse struct {
	Captions []string `json:"captions"`
	Error    string   `json:"error,omitempty"`
}

// CloneCues returns an independent copy of cues. A nil input stays nil.
func CloneCues(cues []Cue) []Cue {
	if cues == nil {
		return nil
	}
	out := make([]Cue, len(cues))
	copy(out, cues)
	return out
}
