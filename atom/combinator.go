package atom

import "github.com/coregx/rex/capture"

// Or tries each branch in order and succeeds with the first one that
// matches. A branch's own chain already includes whatever was appended
// after the Or (see Append below), so a successful branch's result is the
// final answer; Or itself never calls try_next directly.
type Or struct {
	base
	Branches []Atom
}

// NewOr returns an Or atom trying each of branches in order.
func NewOr(branches []Atom) *Or {
	return &Or{Branches: branches}
}

// Append attaches next to every branch the first time the Or itself gets a
// successor; later calls forward to that successor instead, since the
// branches already terminate in it.
func (a *Or) Append(next Atom) {
	if a.next == nil {
		for _, branch := range a.Branches {
			branch.Append(next)
		}
		a.next = next
		return
	}
	a.next.Append(next)
}

// MinLength implements Atom: the shortest of any branch's own minimum,
// which already folds in whatever was appended after the Or.
func (a *Or) MinLength() int {
	min := -1
	for _, branch := range a.Branches {
		m := branch.MinLength()
		if min < 0 || m < min {
			min = m
		}
	}
	if min < 0 {
		return 0
	}
	return min
}

// Match implements Atom.
func (a *Or) Match(input []byte, pos int, state *capture.State) (int, bool) {
	for _, branch := range a.Branches {
		if n, ok := branch.Match(input, pos, state); ok {
			return n, true
		}
	}
	return 0, false
}
