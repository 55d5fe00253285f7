package solver

import (
	"math"
	"slices"
	"testing"
)

func TestSelectSingle(t *testing.T) {
	got := Select([]string{"crane"})
	if got.Word != "crane" || got.Entropy != 0 || got.Method != MethodSingle {
		t.Errorf("Select single = %+v", got)
	}
}

func TestSelectEmpty(t *testing.T) {
	got := Select(nil)
	if !got.Empty() || got.Message != NoCandidatesMessage {
		t.Errorf("Select(nil) = %+v", got)
	}
}

func TestSelectExact(t *testing.T) {
	got := Select([]string{"apple", "angle", "ankle"})
	if got.Word != "angle" {
		t.Errorf("Word = %q, want angle", got.Word)
	}
	if got.Method != MethodExact {
		t.Errorf("Method = %q, want exact", got.Method)
	}
	if math.Abs(got.Entropy-math.Log2(3)) > 1e-9 {
		t.Errorf("Entropy = %v, want log2(3)", got.Entropy)
	}
}

func TestSelectTieBreak(t *testing.T) {
	cands := []string{"abcde", "fghij"}
	for i := 0; i < 5; i++ {
		if got := Select(cands); got.Word != "abcde" || got.Entropy != 1 {
			t.Fatalf("run %d: Select = %+v, want abcde with entropy 1", i, got)
		}
	}
	rev := []string{"fghij", "abcde"}
	if got := Select(rev); got.Word != "fghij" {
		t.Errorf("reversed order: Select = %+v, want fghij", got)
	}
}

func TestEntropyBounds(t *testing.T) {
	for n := 1; n <= len(testCorpus); n += 5 {
		cands := testCorpus[:n]
		limit := math.Log2(float64(n)) + 1e-9
		for _, g := range cands {
			h := Entropy(g, cands)
			if h < 0 || h > limit {
				t.Errorf("Entropy(%q, %d cands) = %v, want within [0, %v]", g, n, h, limit)
			}
		}
	}
	if h := Entropy("crane", nil); h != 0 {
		t.Errorf("Entropy over no candidates = %v, want 0", h)
	}
}

func TestSelectHeuristic(t *testing.T) {
	tests := []struct {
		cands []string
		want  string
	}{
		{[]string{"abcde", "abxyz", "qbcde"}, "abcde"},
		// aaaaa would win if its repeated a were counted at every position.
		{[]string{"aaaaa", "aabcd", "aeeee"}, "aabcd"},
		// equal scores keep the first candidate.
		{[]string{"abcde", "edcba"}, "abcde"},
	}
	for _, tt := range tests {
		got := SelectWithThreshold(tt.cands, 1)
		if got.Word != tt.want || got.Entropy != 0 || got.Method != MethodHeuristic {
			t.Errorf("heuristic %v = %+v, want %q", tt.cands, got, tt.want)
		}
	}
}

func TestSelectThresholdBoundary(t *testing.T) {
	cands := []string{"apple", "angle", "ankle"}
	if got := SelectWithThreshold(cands, len(cands)); got.Method != MethodExact {
		t.Errorf("at the threshold the exact search runs, got %q", got.Method)
	}
	if got := SelectWithThreshold(cands, len(cands)-1); got.Method != MethodHeuristic {
		t.Errorf("above the threshold the heuristic runs, got %q", got.Method)
	}
	if !slices.Equal(cands, []string{"apple", "angle", "ankle"}) {
		t.Errorf("selection must not reorder candidates")
	}
}
