// Package capture implements the per-attempt bookkeeping of tentative
// capture groups used by package atom while backtracking.
package capture

import "github.com/coregx/rex/result"

// PendingCap is a (start, length) pair accumulated while a potential match
// is in flight. Length is -1 until the enclosing GroupEnd atom commits it.
type PendingCap struct {
	Start  int
	Length int
}

// State tracks, for a single match attempt, every group's stack of pending
// captures. A group inside a quantifier may capture multiple times, so a
// group's history is a list even after each individual capture is no
// longer "pending" in the backtracking sense.
//
// State must never be shared across match attempts or goroutines; callers
// create one per call to the top-level matcher.
type State struct {
	pending [][]PendingCap
}

// New returns a State sized to hold numGroups groups (including group 0).
func New(numGroups int) *State {
	return &State{pending: make([][]PendingCap, numGroups)}
}

// StartNewCapture pushes a new, open-ended PendingCap onto group g's stack.
func (s *State) StartNewCapture(g, start int) {
	s.pending[g] = append(s.pending[g], PendingCap{Start: start, Length: -1})
}

// EndCapture sets the length of the top PendingCap of group g, computed
// from its recorded start and the current position.
func (s *State) EndCapture(g, end int) {
	stack := s.pending[g]
	top := &stack[len(stack)-1]
	top.Length = end - top.Start
}

// PopCapture removes the top PendingCap of group g. Used on backtrack, or
// when a quantifier reduces its repetition count.
func (s *State) PopCapture(g int) {
	stack := s.pending[g]
	s.pending[g] = stack[:len(stack)-1]
}

// ResetGroup clears all captures recorded for group g. Used when an entire
// quantified repetition of a sub-tree containing g is abandoned.
func (s *State) ResetGroup(g int) {
	s.pending[g] = s.pending[g][:0]
}

// Depth reports the number of in-flight (not yet committed or popped)
// capture attempts for group g.
func (s *State) Depth(g int) int {
	return len(s.pending[g])
}

// Commit copies every pending capture, in order, into a new result.Match
// built over input, and clears the state. Captures whose Length is still
// -1 (never reached their GroupEnd) are skipped.
func (s *State) Commit(input []byte) *result.Match {
	groups := make([]result.Group, len(s.pending))
	for g, stack := range s.pending {
		caps := make([]result.Capture, 0, len(stack))
		for _, pc := range stack {
			if pc.Length < 0 {
				continue
			}
			caps = append(caps, result.Capture{
				Start:  pc.Start,
				Length: pc.Length,
				Value:  string(input[pc.Start : pc.Start+pc.Length]),
			})
		}
		groups[g] = result.Group{Captures: caps}
	}
	m := result.NewMatch(groups)
	s.Reset()
	return m
}

// Reset drops all pending captures, leaving the State ready for reuse at a
// new start position.
func (s *State) Reset() {
	for g := range s.pending {
		s.pending[g] = s.pending[g][:0]
	}
}
