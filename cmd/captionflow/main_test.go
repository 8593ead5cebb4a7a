package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/caption-studio/pkg/models"
)

func TestRenderCandidates(t *testing.T) {
	out := renderCandidates([]string{"first caption", "second caption"}, 1, false)
	for _, want := range []string{"CAPTION", "first caption", "second caption", "*"} {
		if !strings.Contains(out, want) {
			t.Errorf("renderCandidates() missing %q in:\n%s", want, out)
		}
	}
	if got := renderCandidates(nil, -1, false); got != "" {
		t.Errorf("renderCandidates(nil) = %q, want empty", got)
	}
}

func TestParamsUpdate(t *testing.T) {
	defaults := models.DefaultParams()

	tests := []struct {
		name    string
		opts    runOptions
		want    models.GenerationParams
		wantErr bool
	}{
		{"defaults", runOptions{}, defaults, false},
		{
			"overrides",
			runOptions{style: "Funny", language: "english", count: 5},
			models.GenerationParams{Style: models.StyleFunny, Language: models.LanguageEnglish, Count: 5},
			false,
		},
		{"bad style", runOptions{style: "loud"}, models.GenerationParams{}, true},
		{"bad language", runOptions{language: "Klingon"}, models.GenerationParams{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := paramsUpdate(defaults, &tt.opts)
			if (err != nil) != tt.wantErr {
				t.Fatalf("paramsUpdate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got := u.Apply(models.GenerationParams{}); got != tt.want {
				t.Errorf("paramsUpdate() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRootCommands(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"run", "srt", "serve", "watch"} {
		if _, _, err := root.Find([]string{name}); err != nil {
			t.Errorf("Find(%q) error = %v", name, err)
		}
	}
	if root.PersistentFlags().Lookup("config") == nil {
		t.Error("missing --config flag")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunCommand(t *testing.T) {
	t.Setenv("CAPTION_SERVICE_URL", "")

	var gotCaption models.CaptionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/generate_transcript":
			_, _ = w.Write([]byte(`{"transcript":[{"timestamp":"00:01","subtitle":"hello"},{"timestamp":"00:04","subtitle":"world"}]}`))
		case "/generate_caption":
			if err := json.NewDecoder(r.Body).Decode(&gotCaption); err != nil {
				t.Errorf("decode caption request: %v", err)
			}
			_, _ = w.Write([]byte(`{"captions":["one","two","three"]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	outDir := t.TempDir()
	cfgPath := writeConfig(t, "services:\n  base_url: "+srv.URL+"\nlogging:\n  level: error\nexport:\n  txt: true\n")

	var stdout bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetArgs([]string{"-c", cfgPath, "run", "--url", "https://www.youtube.com/watch?v=abc123",
		"--style", "funny", "--language", "English", "--select", "2", "--out", outDir})

	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if gotCaption.Style != models.StyleFunny || gotCaption.Language != models.LanguageEnglish || gotCaption.NumCaptions != 3 {
		t.Errorf("caption request = %+v", gotCaption)
	}

	srt, err := os.ReadFile(filepath.Join(outDir, "abc123.srt"))
	if err != nil {
		t.Fatalf("read srt: %v", err)
	}
	want := "1\n00:00:01,000 --> 00:00:03,999\nhello\n\n2\n00:00:04,000 --> 00:00:09,000\nworld\n\n"
	if string(srt) != want {
		t.Errorf("srt = %q, want %q", srt, want)
	}
	if _, err := os.Stat(filepath.Join(outDir, "abc123.txt")); err != nil {
		t.Errorf("txt artifact: %v", err)
	}
	if !strings.Contains(stdout.String(), "two") {
		t.Errorf("stdout missing candidates:\n%s", stdout.String())
	}
}

func TestRunCommandServiceError(t *testing.T) {
	t.Setenv("CAPTION_SERVICE_URL", "")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"boom"}`))
	}))
	defer srv.Close()

	cfgPath := writeConfig(t, "services:\n  base_url: "+srv.URL+"\nlogging:\n  level: error\n")
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"-c", cfgPath, "run", "--url", "https://youtu.be/x", "--out", t.TempDir()})

	err := root.ExecuteContext(context.Background())
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Errorf("Execute() error = %v, want service error containing boom", err)
	}
}

func TestSRTCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "clip.json")
	if err := os.WriteFile(in, []byte(`[{"timestamp":"00:00","subtitle":"a"},{"timestamp":"00:02","subtitle":"b"}]`), 0o644); err != nil {
		t.Fatal(err)
	}
	outDir := filepath.Join(dir, "out")
	cfgPath := writeConfig(t, "logging:\n  level: error\n")

	var stdout bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetArgs([]string{"-c", cfgPath, "srt", in, "--out", outDir})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	srt, err := os.ReadFile(filepath.Join(outDir, "clip.srt"))
	if err != nil {
		t.Fatalf("read srt: %v", err)
	}
	if !strings.HasPrefix(string(srt), "1\n00:00:00,000 --> 00:00:01,999\na\n") {
		t.Errorf("srt = %q", srt)
	}
	if _, err := os.Stat(in); err != nil {
		t.Errorf("source should be left in place: %v", err)
	}
}
