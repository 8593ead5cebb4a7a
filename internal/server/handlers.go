package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strings"

	"github.com/nguyentantai21042004/caption-studio/internal/logger"
	"github.com/nguyentantai21042004/caption-studio/internal/subtitle"
	"github.com/nguyentantai21042004/caption-studio/pkg/apperr"
	"github.com/nguyentantai21042004/caption-studio/pkg/models"
)

const defaultNumCaptions = 3

type captionBody struct {
	Transcript  json.RawMessage `json:"transcript"`
	Style       string          `json:"style"`
	Language    string          `json:"language"`
	NumCaptions *int            `json:"num_captions"`
}

func (s *Server) handleTranscript(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.TranscriptRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	link := strings.TrimSpace(req.YoutubeLink)
	if !strings.HasPrefix(link, "http") {
		writeError(w, http.StatusBadRequest, `Valid "youtube_link" required.`)
		return
	}

	cues, err := s.gen.GenerateTranscript(ctx, link)
	if err != nil {
		s.writeGeneratorError(w, r, err)
		return
	}

	if strings.EqualFold(req.Format, "srt") {
		srt, err := subtitle.Render(cues, s.srtOpts)
		if err != nil {
			writeError(w, http.StatusBadRequest, "No valid subtitles generated for SRT.")
			return
		}
		name := fmt.Sprintf("transcript_%s.srt", logger.RequestID(ctx))
		w.Header().Set("Content-Type", subtitle.MIMEType)
		w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))
		_, _ = w.Write([]byte(srt))
		return
	}

	writeJSON(w, http.StatusOK, models.TranscriptResponse{Transcript: cues})
}

func (s *Server) handleCaption(w http.ResponseWriter, r *http.Request) {
	var body captionBody
	if !s.decodeJSON(w, r, &body) {
		return
	}

	count := defaultNumCaptions
	if body.NumCaptions != nil {
		count = *body.NumCaptions
	}

	var cues []models.Cue
	if len(body.Transcript) == 0 || json.Unmarshal(body.Transcript, &cues) != nil || len(cues) == 0 {
		writeError(w, http.StatusBadRequest, `Invalid or missing "transcript" (must be array).`)
		return
	}
	if strings.TrimSpace(body.Style) == "" {
		writeError(w, http.StatusBadRequest, `Missing "style".`)
		return
	}
	style, err := models.ParseStyle(body.Style)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid \"style\". Use one of %v.", models.Styles()))
		return
	}
	if body.Language == "" {
		body.Language = string(models.LanguageCantonese)
	}
	lang, err := models.ParseLanguage(body.Language)
	if err != nil {
		writeError(w, http.StatusBadRequest, `Invalid "language". Use "English" or "Cantonese".`)
		return
	}

	params := models.GenerationParams{Style: style, Language: lang, Count: count}
	if err := params.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, `Invalid "num_captions" parameter (must be 1, 3 or 5).`)
		return
	}

	captions, err := s.gen.GenerateCaptions(r.Context(), cues, params)
	if err != nil {
		s.writeGeneratorError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, models.CaptionResponse{Captions: captions})
}

// decodeJSON writes the error response itself and reports whether to continue.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, target any) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		writeError(w, http.StatusUnsupportedMediaType, "Request must be JSON")
		return false
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return false
		}
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid JSON body: %v", err))
		return false
	}
	return true
}

func (s *Server) writeGeneratorError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error(r.Context(), "%s failed: %v", r.URL.Path, err)

	msg := err.Error()
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		msg = appErr.Message
		if msg == "" && appErr.Err != nil {
			msg = appErr.Err.Error()
		}
	}

	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		writeError(w, http.StatusBadRequest, msg)
	case apperr.KindFormat:
		writeError(w, http.StatusBadRequest, "Data Processing Error: "+msg)
	default:
		writeError(w, http.StatusInternalServerError, "Service Error: "+msg)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
