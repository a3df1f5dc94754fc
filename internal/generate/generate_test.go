package generate

import (
	"slices"
	"testing"

	"github.com/numseq/go-maketen/internal/expr"
)

func collect(nums []int64) []*expr.Evaluated {
	return slices.Collect(Expressions(nums, expr.DefaultRules()))
}

func values(candidates []*expr.Evaluated) []int64 {
	out := make([]int64, len(candidates))
	for i, c := range candidates {
		out[i] = c.Value()
	}
	slices.Sort(out)
	return out
}

func countLeaves(e *expr.Evaluated) int {
	if e.IsLeaf() {
		return 1
	}
	return countLeaves(e.Left()) + countLeaves(e.Right())
}

func TestEmptyInput(t *testing.T) {
	if got := collect(nil); len(got) != 0 {
		t.Errorf("expected no candidates, got %d", len(got))
	}
}

func TestSingleNumber(t *testing.T) {
	got := collect([]int64{7})
	if len(got) != 1 {
		t.Fatalf("expected exactly one candidate, got %d", len(got))
	}
	if !got[0].IsLeaf() || got[0].Value() != 7 {
		t.Errorf("expected the leaf 7, got %s", got[0])
	}
}

func TestPairCandidates(t *testing.T) {
	// For [2, 3]: one addition, one multiplication, the one orientation
	// of subtraction that stays non-negative, no exact division either
	// way, and both orientations of power.
	got := collect([]int64{2, 3})
	want := []int64{1, 5, 6, 8, 9}
	if !slices.Equal(values(got), want) {
		t.Errorf("candidate values = %v, want %v", values(got), want)
	}
}

func TestEqualPairSkipsFlippedDuplicates(t *testing.T) {
	// For [5, 5] the flipped orientation of every order-sensitive
	// operator would duplicate the first, so exactly one candidate per
	// operator survives.
	got := collect([]int64{5, 5})
	want := []int64{0, 1, 10, 25, 3125}
	if !slices.Equal(values(got), want) {
		t.Errorf("candidate values = %v, want %v", values(got), want)
	}
}

func TestAllCandidatesConsumeEveryNumber(t *testing.T) {
	for _, c := range collect([]int64{1, 2, 3, 4}) {
		if n := countLeaves(c); n != 4 {
			t.Fatalf("candidate %s uses %d leaves, want 4", c, n)
		}
	}
}

func TestCandidatesAreValid(t *testing.T) {
	var check func(e *expr.Evaluated) bool
	check = func(e *expr.Evaluated) bool {
		if e.IsLeaf() {
			return true
		}
		if !check(e.Left()) || !check(e.Right()) {
			return false
		}
		switch e.Op() {
		case expr.Divide:
			if e.Right().Value() == 0 || e.Left().Value()%e.Right().Value() != 0 {
				return false
			}
			if e.Left().Value() == 0 || e.Right().Value() == 1 {
				return false
			}
		case expr.Subtract:
			if e.Left().Value() < e.Right().Value() || e.Right().Value() == 0 {
				return false
			}
		case expr.Power:
			if e.Right().Value() < 0 || e.Right().Value() == 1 {
				return false
			}
		}
		return true
	}

	for _, c := range collect([]int64{2, 3, 4}) {
		if !check(c) {
			t.Errorf("invalid candidate produced: %s", c)
		}
	}
}

func TestEarlyStop(t *testing.T) {
	// Stopping the pull must not panic or keep producing.
	seen := 0
	for range Expressions([]int64{1, 2, 3, 4, 5}, expr.DefaultRules()) {
		seen++
		if seen == 3 {
			break
		}
	}
	if seen != 3 {
		t.Errorf("expected to stop after 3 candidates, saw %d", seen)
	}
}

func TestDeterministicOrder(t *testing.T) {
	first := collect([]int64{1, 2, 3})
	second := collect([]int64{1, 2, 3})
	if len(first) != len(second) {
		t.Fatalf("candidate counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].String() != second[i].String() {
			t.Fatalf("order diverges at %d: %s vs %s", i, first[i], second[i])
		}
	}
}
