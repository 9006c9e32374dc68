package atom

import "github.com/coregx/rex/capture"

// GroupStart opens capturing group Num at the current position, then tries
// the rest of the chain. If everything downstream ultimately fails, the
// speculative capture is popped back off so a sibling alternative sees a
// clean slate.
type GroupStart struct {
	base
	Num int
}

// NewGroupStart returns a GroupStart atom for group number num.
func NewGroupStart(num int) *GroupStart { return &GroupStart{Num: num} }

// MinLength implements Atom.
func (a *GroupStart) MinLength() int { return a.minLengthOfNext() }

// Match implements Atom.
func (a *GroupStart) Match(input []byte, pos int, state *capture.State) (int, bool) {
	state.StartNewCapture(a.Num, pos)
	n, ok := a.tryNext(0, input, pos, state)
	if !ok {
		state.PopCapture(a.Num)
		return 0, false
	}
	return n, true
}

// GroupEnd closes capturing group Num. It only commits the capture's length
// once everything downstream of it has also succeeded; a capture that
// never reaches this point because some later atom failed is simply left
// pending and popped by its GroupStart.
type GroupEnd struct {
	base
	Num int
}

// NewGroupEnd returns a GroupEnd atom for group number num.
func NewGroupEnd(num int) *GroupEnd { return &GroupEnd{Num: num} }

// MinLength implements Atom.
func (a *GroupEnd) MinLength() int { return a.minLengthOfNext() }

// Match implements Atom.
func (a *GroupEnd) Match(input []byte, pos int, state *capture.State) (int, bool) {
	n, ok := a.tryNext(0, input, pos, state)
	if !ok {
		return 0, false
	}
	state.EndCapture(a.Num, pos)
	return n, true
}
