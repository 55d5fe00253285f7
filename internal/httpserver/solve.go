package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gae-22/wordle/internal/solver"
)

// maxSolveBody caps the request body; a full game is well under 4 KiB.
const maxSolveBody = 64 << 10

// Wire format for POST /solve.
//
//	{"guesses":[{"word":"crane","results":[{"letter":"c","result":"HIT"}, ...]}]}
type guessItemReq struct {
	Letter string `json:"letter"`
	Result string `json:"result"`
}

type guessReq struct {
	Word    string         `json:"word"`
	Results []guessItemReq `json:"results"`
}

type solveReq struct {
	Guesses []guessReq `json:"guesses"`
}

type suggestionRes struct {
	Word    string  `json:"word"`
	Entropy float64 `json:"entropy"`
	Method  string  `json:"method"`
}

type messageRes struct {
	Message string `json:"message"`
}

// history validates the request and converts it to solver input.
// Words and letters are lower-cased before checking.
func (req solveReq) history() ([]solver.Guess, error) {
	out := make([]solver.Guess, 0, len(req.Guesses))
	for gi, g := range req.Guesses {
		word := strings.ToLower(g.Word)
		if len(word) != solver.WordLength || !isLetters(word) {
			return nil, fmt.Errorf("guesses[%d].word must be %d letters a-z", gi, solver.WordLength)
		}
		if len(g.Results) != solver.WordLength {
			return nil, fmt.Errorf("guesses[%d].results must have %d items", gi, solver.WordLength)
		}
		var p solver.Pattern
		for i, it := range g.Results {
			letter := strings.ToLower(it.Letter)
			if len(letter) != 1 || letter[0] != word[i] {
				return nil, fmt.Errorf("guesses[%d].results[%d].letter must be %q", gi, i, word[i])
			}
			o := solver.Outcome(it.Result)
			if !o.Valid() {
				return nil, fmt.Errorf("guesses[%d].results[%d].result must be HIT, BITE or ABSENT", gi, i)
			}
			p[i] = o
		}
		out = append(out, solver.NewGuess(word, p))
	}
	return out, nil
}

func isLetters(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

// handleSolve validates the guess history and returns the next suggestion.
// An empty body is a first move.
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxSolveBody))
	if err := dec.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	history, err := req.history()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sug, err := s.solver.Suggest(r.Context(), history)
	if err != nil {
		corpusError(w, r, err)
		return
	}
	if sug.Empty() {
		_ = json.NewEncoder(w).Encode(messageRes{Message: sug.Message})
		return
	}
	_ = json.NewEncoder(w).Encode(suggestionRes{
		Word:    sug.Word,
		Entropy: sug.Entropy,
		Method:  string(sug.Method),
	})
}
