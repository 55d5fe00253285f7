package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gae-22/wordle/internal/solver"
	"github.com/gae-22/wordle/internal/store"
	"github.com/gae-22/wordle/internal/words"
)

const testCorpus = "apple\nangle\nankle\n"

func newTestServer(t *testing.T, src words.Source, opts Options) http.Handler {
	t.Helper()
	st := store.NewMemory(src)
	if opts.RateLimitRPS == 0 {
		opts.RateLimitRPS, opts.RateLimitBurst = 1000, 1000
	}
	return New(st, solver.New(st, 0), opts).Router()
}

func do(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	var out map[string]any
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("%s %s: response is not JSON: %q", method, path, w.Body.String())
		}
	}
	return w, out
}

// guessJSON renders one guess in the wire format, e.g. guessJSON("angle", "HAAHH").
func guessJSON(word, pattern string) string {
	names := map[byte]string{'H': "HIT", 'B': "BITE", 'A': "ABSENT"}
	items := make([]string, len(pattern))
	for i := range pattern {
		items[i] = `{"letter":"` + word[i:i+1] + `","result":"` + names[pattern[i]] + `"}`
	}
	return `{"word":"` + word + `","results":[` + strings.Join(items, ",") + `]}`
}

func TestSolveFirstMove(t *testing.T) {
	h := newTestServer(t, words.TextSource("test", testCorpus), Options{})
	for _, body := range []string{`{"guesses":[]}`, `{}`, ``} {
		w, out := do(t, h, http.MethodPost, "/solve", body)
		if w.Code != http.StatusOK {
			t.Fatalf("body %q: status %d: %s", body, w.Code, w.Body.String())
		}
		if out["word"] != "angle" || out["method"] != "exact" {
			t.Errorf("body %q: got %v, want angle via exact", body, out)
		}
		if e, _ := out["entropy"].(float64); e < 1.58 || e > 1.59 {
			t.Errorf("body %q: entropy %v, want log2(3)", body, out["entropy"])
		}
	}
}

func TestSolveNarrowsToOne(t *testing.T) {
	h := newTestServer(t, words.TextSource("test", testCorpus), Options{})
	w, out := do(t, h, http.MethodPost, "/solve", `{"guesses":[`+guessJSON("angle", "HHAHH")+`]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	if out["word"] != "ankle" || out["entropy"] != 0.0 || out["method"] != "single" {
		t.Errorf("got %v, want ankle with entropy 0", out)
	}
}

func TestSolveUppercaseAccepted(t *testing.T) {
	h := newTestServer(t, words.TextSource("test", testCorpus), Options{})
	w, out := do(t, h, http.MethodPost, "/solve", `{"guesses":[`+guessJSON("ANGLE", "HAAHH")+`]}`)
	if w.Code != http.StatusOK || out["word"] != "apple" {
		t.Errorf("status %d, got %v; want apple", w.Code, out)
	}
}

func TestSolveNoCandidates(t *testing.T) {
	h := newTestServer(t, words.TextSource("test", testCorpus), Options{})
	w, out := do(t, h, http.MethodPost, "/solve", `{"guesses":[`+guessJSON("crane", "HAAAA")+`]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	if out["message"] != solver.NoCandidatesMessage {
		t.Errorf("got %v, want message %q", out, solver.NoCandidatesMessage)
	}
	if _, ok := out["word"]; ok {
		t.Errorf("message response must not carry a word: %v", out)
	}
}

func TestSolveValidation(t *testing.T) {
	h := newTestServer(t, words.TextSource("test", testCorpus), Options{})
	tests := []struct {
		name string
		body string
	}{
		{"bad json", `{"guesses":`},
		{"short word", `{"guesses":[` + guessJSON("angl", "HAAH") + `]}`},
		{"non letters", `{"guesses":[{"word":"an9le","results":[]}]}`},
		{"four results", `{"guesses":[{"word":"angle","results":[{"letter":"a","result":"HIT"}]}]}`},
		{"letter mismatch", `{"guesses":[` + strings.Replace(guessJSON("angle", "HAAHH"), `"letter":"n"`, `"letter":"x"`, 1) + `]}`},
		{"bad outcome", `{"guesses":[` + strings.Replace(guessJSON("angle", "HAAHH"), `"HIT"`, `"GREEN"`, 1) + `]}`},
		{"two char letter", `{"guesses":[` + strings.Replace(guessJSON("angle", "HAAHH"), `"letter":"a"`, `"letter":"aa"`, 1) + `]}`},
	}
	for _, tt := range tests {
		w, out := do(t, h, http.MethodPost, "/solve", tt.body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: status %d, want 400", tt.name, w.Code)
			continue
		}
		if msg, _ := out["error"].(string); msg == "" {
			t.Errorf("%s: missing error message: %v", tt.name, out)
		}
	}
}

func TestSolveCorpusUnavailable(t *testing.T) {
	missing := words.FileSource(filepath.Join(t.TempDir(), "missing.txt"))
	h := newTestServer(t, missing, Options{})
	w, out := do(t, h, http.MethodPost, "/solve", `{}`)
	if w.Code != http.StatusInternalServerError || out["error"] != "corpus_unavailable" {
		t.Errorf("status %d, body %v; want 500 corpus_unavailable", w.Code, out)
	}

	w, _ = do(t, h, http.MethodGet, "/words/count", "")
	if w.Code != http.StatusInternalServerError {
		t.Errorf("/words/count status %d, want 500", w.Code)
	}
}

func TestSolveRateLimited(t *testing.T) {
	h := newTestServer(t, words.TextSource("test", testCorpus), Options{RateLimitRPS: 1, RateLimitBurst: 1})
	if w, _ := do(t, h, http.MethodPost, "/solve", `{}`); w.Code != http.StatusOK {
		t.Fatalf("first request status %d", w.Code)
	}
	w, out := do(t, h, http.MethodPost, "/solve", `{}`)
	if w.Code != http.StatusTooManyRequests || out["error"] != "too_many_requests" {
		t.Errorf("second request status %d, body %v; want 429", w.Code, out)
	}
	// other endpoints are not limited
	if w, _ := do(t, h, http.MethodGet, "/health", ""); w.Code != http.StatusOK {
		t.Errorf("/health status %d", w.Code)
	}
}

func TestWordsEndpoints(t *testing.T) {
	h := newTestServer(t, words.TextSource("test", testCorpus), Options{})

	_, out := do(t, h, http.MethodGet, "/health", "")
	corpus, _ := out["corpus"].(map[string]any)
	if corpus["loaded"] != false || corpus["backend"] != "memory" {
		t.Errorf("health before load = %v", out)
	}

	w, out := do(t, h, http.MethodGet, "/words/count", "")
	if w.Code != http.StatusOK || out["count"] != 3.0 {
		t.Errorf("/words/count = %d %v", w.Code, out)
	}
	w, out = do(t, h, http.MethodGet, "/words/load", "")
	if w.Code != http.StatusOK || out["loaded"] != true || out["count"] != 3.0 {
		t.Errorf("/words/load = %d %v", w.Code, out)
	}

	_, out = do(t, h, http.MethodGet, "/health", "")
	corpus, _ = out["corpus"].(map[string]any)
	if corpus["loaded"] != true {
		t.Errorf("health after load = %v", out)
	}
}

func TestNotFoundAndCORS(t *testing.T) {
	h := newTestServer(t, words.TextSource("test", testCorpus), Options{ClientOrigin: "http://localhost:5173"})
	w, out := do(t, h, http.MethodGet, "/nope", "")
	if w.Code != http.StatusNotFound || out["error"] != "not_found" {
		t.Errorf("404 = %d %v", w.Code, out)
	}

	req := httptest.NewRequest(http.MethodOptions, "/solve", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Errorf("preflight status %d, want 204", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Allow-Origin = %q", got)
	}
}
