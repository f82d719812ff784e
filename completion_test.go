package ecli

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newTestBindings(names ...string) *bindingTable {
	bt := newBindingTable(len(names))
	for _, n := range names {
		bt.add(Binding{Name: n})
	}
	return bt
}

func TestComputeAutocompletionEmptyPrefixYieldsNoCandidates(t *testing.T) {
	bt := newTestBindings("get-led", "get-adc", "set")
	res := bt.computeAutocompletion("")
	if res.candidateCount != 0 {
		t.Fatalf("candidateCount = %d, want 0 for empty prefix", res.candidateCount)
	}
}

func TestComputeAutocompletionUniqueMatch(t *testing.T) {
	bt := newTestBindings("get-led", "get-adc", "set")
	res := bt.computeAutocompletion("se")
	if res.candidateCount != 1 {
		t.Fatalf("candidateCount = %d, want 1", res.candidateCount)
	}
	if res.firstCandidate != "set" || res.autocompletedLen != len("set") {
		t.Fatalf("got %+v", res)
	}
}

func TestComputeAutocompletionCommonPrefixAmongMultiple(t *testing.T) {
	bt := newTestBindings("get-led", "get-adc", "set")
	res := bt.computeAutocompletion("g")
	if res.candidateCount != 2 {
		t.Fatalf("candidateCount = %d, want 2", res.candidateCount)
	}
	if res.autocompletedLen != len("get-") {
		t.Fatalf("autocompletedLen = %d, want %d", res.autocompletedLen, len("get-"))
	}
}

func TestComputeAutocompletionNoMatch(t *testing.T) {
	bt := newTestBindings("get-led", "get-adc", "set")
	res := bt.computeAutocompletion("zz")
	if res.candidateCount != 0 {
		t.Fatalf("candidateCount = %d, want 0", res.candidateCount)
	}
}

func TestCandidateNamesReflectsLastComputation(t *testing.T) {
	bt := newTestBindings("get-led", "get-adc", "set")
	bt.computeAutocompletion("g")
	names := bt.candidateNames()
	if len(names) != 2 {
		t.Fatalf("candidateNames() = %v, want 2 entries", names)
	}
}

// TestCandidateNamesInsertionOrder uses go-cmp for a structural diff the way
// the teacher's own completion tests compare suggestion slices: insertion
// order must be preserved, not just membership.
func TestCandidateNamesInsertionOrder(t *testing.T) {
	bt := newTestBindings("get-adc", "get-led", "set")
	bt.computeAutocompletion("get-")
	want := []string{"get-adc", "get-led"}
	if diff := cmp.Diff(want, bt.candidateNames()); diff != "" {
		t.Fatalf("candidateNames() mismatch (-want +got):\n%s", diff)
	}
}

// TestComputeAutocompletionResultShape diffs the whole autocompletion
// struct at once rather than field-by-field.
func TestComputeAutocompletionResultShape(t *testing.T) {
	bt := newTestBindings("get-adc", "get-led", "set")
	got := bt.computeAutocompletion("get-")
	want := autocompletion{firstCandidate: "get-adc", autocompletedLen: len("get-"), candidateCount: 2}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(autocompletion{})); diff != "" {
		t.Fatalf("computeAutocompletion() mismatch (-want +got):\n%s", diff)
	}
}
