package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nguyentantai21042004/caption-studio/internal/config"
	"github.com/nguyentantai21042004/caption-studio/internal/logger"
	"github.com/nguyentantai21042004/caption-studio/internal/subtitle"
	"github.com/nguyentantai21042004/caption-studio/pkg/apperr"
	"github.com/nguyentantai21042004/caption-studio/pkg/models"
)

type fakeGenerator struct {
	cues       []models.Cue
	captions   []string
	err        error
	lastParams models.GenerationParams
	lastURL    string
}

func (f *fakeGenerator) GenerateTranscript(ctx context.Context, videoURL string) ([]models.Cue, error) {
	f.lastURL = videoURL
	return f.cues, f.err
}

func (f *fakeGenerator) GenerateCaptions(ctx context.Context, cues []models.Cue, params models.GenerationParams) ([]string, error) {
	f.lastParams = params
	return f.captions, f.err
}

func newTestServer(gen *fakeGenerator) http.Handler {
	cfg := config.ServerConfig{AllowedOrigins: []string{"*"}, MaxBodyBytes: 1 << 20}
	return New(cfg, gen, subtitle.Options{}, logger.NewNop()).Handler()
}

func do(t *testing.T, h http.Handler, method, path, contentType, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body %q: %v", rec.Body.String(), err)
	}
	return body["error"]
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestServer(&fakeGenerator{}), http.MethodGet, "/", "", "")
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if rec.Header().Get(headerRequestID) == "" {
		t.Error("missing X-Request-ID header")
	}
}

func TestTranscriptJSON(t *testing.T) {
	gen := &fakeGenerator{cues: []models.Cue{{Timestamp: "00:01", Subtitle: "hi"}}}
	rec := do(t, newTestServer(gen), http.MethodPost, "/generate_transcript", "application/json",
		`{"youtube_link":"https://youtu.be/x"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (%s)", rec.Code, http.StatusOK, rec.Body.String())
	}
	var resp models.TranscriptResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(gen.cues, resp.Transcript); diff != "" {
		t.Errorf("transcript mismatch (-want +got):\n%s", diff)
	}
	if gen.lastURL != "https://youtu.be/x" {
		t.Errorf("url = %q", gen.lastURL)
	}
}

func TestTranscriptSRT(t *testing.T) {
	gen := &fakeGenerator{cues: []models.Cue{{Timestamp: "00:01", Subtitle: "hi"}}}
	rec := do(t, newTestServer(gen), http.MethodPost, "/generate_transcript", "application/json",
		`{"youtube_link":"https://youtu.be/x","format":"srt"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Header().Get("Content-Type"); got != subtitle.MIMEType {
		t.Errorf("Content-Type = %q, want %q", got, subtitle.MIMEType)
	}
	id := rec.Header().Get(headerRequestID)
	wantDisp := `attachment; filename=transcript_` + id + `.srt`
	if got := rec.Header().Get("Content-Disposition"); got != wantDisp {
		t.Errorf("Content-Disposition = %q, want %q", got, wantDisp)
	}
	if want := "1\n00:00:01,000 --> 00:00:06,000\nhi\n\n"; rec.Body.String() != want {
		t.Errorf("body = %q, want %q", rec.Body.String(), want)
	}
}

func TestTranscriptSRTEmpty(t *testing.T) {
	gen := &fakeGenerator{cues: []models.Cue{{Timestamp: "bad", Subtitle: "hi"}}}
	rec := do(t, newTestServer(gen), http.MethodPost, "/generate_transcript", "application/json",
		`{"youtube_link":"https://youtu.be/x","format":"srt"}`)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if got := errorBody(t, rec); got != "No valid subtitles generated for SRT." {
		t.Errorf("error = %q", got)
	}
}

func TestTranscriptRequestErrors(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		wantStatus  int
	}{
		{"not json", "text/plain", `youtube_link=x`, http.StatusUnsupportedMediaType},
		{"missing link", "application/json", `{}`, http.StatusBadRequest},
		{"bad link", "application/json", `{"youtube_link":"youtu.be/x"}`, http.StatusBadRequest},
		{"malformed", "application/json", `{"youtube_link":`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &fakeGenerator{}
			rec := do(t, newTestServer(gen), http.MethodPost, "/generate_transcript", tt.contentType, tt.body)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if gen.lastURL != "" {
				t.Error("generator should not be called")
			}
		})
	}
}

func TestGeneratorErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantPrefix string
	}{
		{"format", apperr.Format("generate transcript", errString("bad json")), http.StatusBadRequest, "Data Processing Error: "},
		{"service", apperr.Service("generate transcript", 0, "quota"), http.StatusInternalServerError, "Service Error: "},
		{"validation", apperr.Validation("generate transcript", "bad url"), http.StatusBadRequest, "bad url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, newTestServer(&fakeGenerator{err: tt.err}), http.MethodPost, "/generate_transcript",
				"application/json", `{"youtube_link":"https://youtu.be/x"}`)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if got := errorBody(t, rec); !strings.HasPrefix(got, tt.wantPrefix) {
				t.Errorf("error = %q, want prefix %q", got, tt.wantPrefix)
			}
		})
	}
}

type errString string

func (e errString) Error() string { return string(e) }

func TestCaption(t *testing.T) {
	gen := &fakeGenerator{captions: []string{"a", "b", "c"}}
	rec := do(t, newTestServer(gen), http.MethodPost, "/generate_caption", "application/json",
		`{"transcript":[{"timestamp":"00:01","subtitle":"hi"}],"style":"Funny","language":"english"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (%s)", rec.Code, http.StatusOK, rec.Body.String())
	}
	var resp models.CaptionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, resp.Captions); diff != "" {
		t.Errorf("captions mismatch (-want +got):\n%s", diff)
	}
	want := models.GenerationParams{Style: models.StyleFunny, Language: models.LanguageEnglish, Count: 3}
	if gen.lastParams != want {
		t.Errorf("params = %+v, want %+v", gen.lastParams, want)
	}
}

func TestCaptionDefaultsLanguage(t *testing.T) {
	gen := &fakeGenerator{captions: []string{"a"}}
	rec := do(t, newTestServer(gen), http.MethodPost, "/generate_caption", "application/json",
		`{"transcript":[{"timestamp":"00:01","subtitle":"hi"}],"style":"casual","num_captions":1}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if gen.lastParams.Language != models.LanguageCantonese || gen.lastParams.Count != 1 {
		t.Errorf("params = %+v", gen.lastParams)
	}
}

func TestCaptionValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing transcript", `{"style":"casual"}`},
		{"transcript not array", `{"transcript":"hi","style":"casual"}`},
		{"empty transcript", `{"transcript":[],"style":"casual"}`},
		{"missing style", `{"transcript":[{"timestamp":"00:01","subtitle":"hi"}]}`},
		{"unknown style", `{"transcript":[{"timestamp":"00:01","subtitle":"hi"}],"style":"sarcastic"}`},
		{"bad language", `{"transcript":[{"timestamp":"00:01","subtitle":"hi"}],"style":"casual","language":"French"}`},
		{"bad count", `{"transcript":[{"timestamp":"00:01","subtitle":"hi"}],"style":"casual","num_captions":4}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &fakeGenerator{captions: []string{"a"}}
			rec := do(t, newTestServer(gen), http.MethodPost, "/generate_caption", "application/json", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d (%s)", rec.Code, http.StatusBadRequest, rec.Body.String())
			}
			if gen.lastParams != (models.GenerationParams{}) {
				t.Error("generator should not be called")
			}
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/generate_caption", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	newTestServer(&fakeGenerator{}).ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}
