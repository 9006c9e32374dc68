// Package matcher drives match attempts over a compiled atom tree: trying
// one exact position, scanning forward for the first match, and collecting
// every non-overlapping match in an input.
package matcher

import (
	"github.com/coregx/rex/atom"
	"github.com/coregx/rex/capture"
	"github.com/coregx/rex/result"
)

// MatchAt tries to match root exactly at pos. A zero-length success (the
// pattern matched but consumed no bytes) is treated as no match: this
// primitive is only ever asked "does the pattern match starting here",
// and a length-0 answer is not useful to report on its own (Find/FindAll
// below handle the zero-length case explicitly, where it does matter, by
// advancing the scan position instead of reporting it here).
func MatchAt(root *atom.Root, input []byte, pos int) (*result.Match, bool) {
	state := capture.New(root.NumGroups)
	n, ok := root.Head.Match(input, pos, state)
	if !ok || n == 0 {
		state.Reset()
		return nil, false
	}
	return state.Commit(input), true
}

// Find scans forward from start, trying MatchAt at each position, and
// returns the first success. The scan stops as soon as fewer bytes remain
// than the pattern's precomputed minimum length could ever consume.
func Find(root *atom.Root, input []byte, start int) (*result.Match, bool) {
	minLen := root.MinLength()
	for pos := start; pos+minLen <= len(input); pos++ {
		if m, ok := MatchAt(root, input, pos); ok {
			return m, true
		}
	}
	return nil, false
}

// FindAll collects every non-overlapping match from start onward, advancing
// past each one in turn. A zero-length match (impossible given MatchAt's
// rejection above, but kept for robustness against future relaxation of
// that rule) advances the scan position by one byte instead of looping
// forever.
func FindAll(root *atom.Root, input []byte, start int) []*result.Match {
	var matches []*result.Match
	pos := start
	for {
		m, ok := Find(root, input, pos)
		if !ok {
			break
		}
		matches = append(matches, m)
		if m.Length() == 0 {
			pos = m.End() + 1
		} else {
			pos = m.End()
		}
	}
	return matches
}
