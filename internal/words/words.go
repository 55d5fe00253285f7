// internal/words/words.go
//
// Word normalization and corpus sources.
//
// Responsibilities:
//   - Normalize raw lines into lower-case five-letter words (a–z only).
//   - Provide the places a corpus can come from: a local file, a remote
//     URL (streamed, never fully buffered), or the embedded default list.
//   - Scan a source line by line, de-duplicating, and hand each accepted
//     word to a callback (stores batch them into their own backend).
//
// Source precedence (Pick):
//   1. WORDS_FILE  – local file, one word per line
//   2. WORDS_URL   – remote list, e.g. dwyl/english-words words_alpha.txt
//   3. embedded    – assets/words.txt
//
// Anything that is not exactly five ASCII letters is dropped here, at
// ingestion time, so the solver never has to filter it.

package words

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gae-22/wordle/assets"
)

// Length is the number of letters in every accepted word.
const Length = 5

// DefaultURL is the dwyl English word list, a common WORDS_URL choice.
const DefaultURL = "https://raw.githubusercontent.com/dwyl/english-words/master/words_alpha.txt"

// DefaultFetchTimeout bounds a whole remote download.
const DefaultFetchTimeout = 60 * time.Second

// ErrEmptyCorpus is returned by Scan when a source yields no valid word.
var ErrEmptyCorpus = errors.New("words: source produced no five-letter words")

// Normalize trims and lower-cases s and reports whether the result is a
// valid corpus word.
func Normalize(s string) (string, bool) {
	w := strings.ToLower(strings.TrimSpace(s))
	if len(w) != Length || !isAlpha(w) {
		return "", false
	}
	return w, true
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Source is somewhere a word list can be read from.
type Source interface {
	// Name identifies the source in logs.
	Name() string
	// Open returns the raw list, one word per line.
	Open(ctx context.Context) (io.ReadCloser, error)
}

type fileSource struct{ path string }

// FileSource reads the list from a local file.
func FileSource(path string) Source { return fileSource{path: path} }

func (s fileSource) Name() string { return "file:" + s.path }

func (s fileSource) Open(context.Context) (io.ReadCloser, error) {
	return os.Open(s.path)
}

type urlSource struct {
	url    string
	client *http.Client
}

// URLSource streams the list over HTTP GET. A nil client gets one with
// DefaultFetchTimeout.
func URLSource(url string, client *http.Client) Source {
	if client == nil {
		client = &http.Client{Timeout: DefaultFetchTimeout}
	}
	return urlSource{url: url, client: client}
}

func (s urlSource) Name() string { return s.url }

func (s urlSource) Open(ctx context.Context) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("fetch %s: unexpected status %s", s.url, resp.Status)
	}
	return resp.Body, nil
}

type textSource struct{ name, text string }

// TextSource serves an in-memory list.
func TextSource(name, text string) Source { return textSource{name: name, text: text} }

func (s textSource) Name() string { return s.name }

func (s textSource) Open(context.Context) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(s.text)), nil
}

// Embedded returns the list compiled into the binary.
func Embedded() Source { return TextSource("embedded", assets.Words) }

// Pick chooses the source: file, then URL, then the embedded list.
func Pick(file, url string, timeout time.Duration) Source {
	switch {
	case file != "":
		return FileSource(file)
	case url != "":
		if timeout <= 0 {
			timeout = DefaultFetchTimeout
		}
		return URLSource(url, &http.Client{Timeout: timeout})
	default:
		return Embedded()
	}
}

// Scan streams src and calls fn once per distinct valid word, in source
// order. Blank lines and '#' comments are skipped. It returns the number of
// words passed to fn, or ErrEmptyCorpus if there were none.
func Scan(ctx context.Context, src Source, fn func(word string) error) (int, error) {
	rc, err := src.Open(ctx)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", src.Name(), err)
	}
	defer rc.Close()

	seen := make(map[string]struct{}, 1024)
	n := 0
	sc := bufio.NewScanner(rc)
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		w, ok := Normalize(line)
		if !ok {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		if err := ctx.Err(); err != nil {
			return n, err
		}
		if err := fn(w); err != nil {
			return n, err
		}
		n++
	}
	if err := sc.Err(); err != nil {
		return n, fmt.Errorf("read %s: %w", src.Name(), err)
	}
	if n == 0 {
		return 0, fmt.Errorf("%s: %w", src.Name(), ErrEmptyCorpus)
	}
	return n, nil
}

// Collect scans src into a slice.
func Collect(ctx context.Context, src Source) ([]string, error) {
	var out []string
	_, err := Scan(ctx, src, func(w string) error {
		out = append(out, w)
		return nil
	})
	return out, err
}
