package ecli

// autocompletion is the result described in spec.md §3: the first
// matching binding name in insertion order, the length of the usable
// autocompleted suffix, and how many bindings matched.
type autocompletion struct {
	firstCandidate   string
	autocompletedLen int
	candidateCount   int
}

// computeAutocompletion implements C5 (spec.md §4.5): it marks every
// binding whose name has prefix as a byte-for-byte prefix as a candidate,
// then reduces autocompletedLen to the longest common prefix shared by
// every candidate, clamped to the shortest candidate's length.
//
// An empty prefix never offers autocompletion (candidateCount stays 0),
// matching the teacher's convention of a NoopCompleter for the empty-input
// case.
func (t *bindingTable) computeAutocompletion(prefix string) autocompletion {
	t.clearCandidates()
	var result autocompletion
	if prefix == "" {
		return result
	}
	for i := range t.entries {
		name := t.entries[i].Name
		if len(name) < len(prefix) || name[:len(prefix)] != prefix {
			continue
		}
		t.entries[i].candidate = true
		if result.candidateCount == 0 {
			result.firstCandidate = name
			result.autocompletedLen = len(name)
		} else {
			if len(name) < result.autocompletedLen {
				result.autocompletedLen = len(name)
			}
			result.autocompletedLen = commonPrefixLen(result.firstCandidate, name, len(prefix), result.autocompletedLen)
		}
		result.candidateCount++
	}
	return result
}

// commonPrefixLen returns the length of the longest common prefix of a and
// b, starting the comparison at from (the two are already known equal up
// to that index), and never exceeding limit.
func commonPrefixLen(a, b string, from, limit int) int {
	n := from
	for n < limit && n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}

// candidateNames returns the names of every binding currently marked as an
// autocomplete candidate, in table order. Used by the tab-triggered
// "print every candidate" path (spec.md §4.6 onAutocompleteRequest).
func (t *bindingTable) candidateNames() []string {
	var names []string
	for i := range t.entries {
		if t.entries[i].candidate {
			names = append(names, t.entries[i].Name)
		}
	}
	return names
}
