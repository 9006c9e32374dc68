package atom

import "github.com/coregx/rex/capture"

// collectGroupNums walks a freshly built sub-tree (before any outer next
// has been appended to it) and returns every capturing-group number it
// contains, each exactly once. Quantifiers use this at construction time
// to know which groups must be rolled back when a repetition they own is
// abandoned during backtracking: one PopCapture per group per repetition
// undone, so a group number must appear here only once even though its
// GroupStart and GroupEnd are two separate nodes in the chain.
func collectGroupNums(a Atom) []int {
	var nums []int
	for a != nil {
		switch v := a.(type) {
		case *GroupStart:
			nums = append(nums, v.Num)
		case *Or:
			for _, branch := range v.Branches {
				nums = append(nums, collectGroupNums(branch)...)
			}
		case *Greedy:
			nums = append(nums, collectGroupNums(v.Inner)...)
		case *Lazy:
			nums = append(nums, collectGroupNums(v.Inner)...)
		}
		a = a.Next()
	}
	return nums
}

// Greedy repeats Inner as many times as possible (up to Max), then backs
// off one repetition at a time until the rest of the chain succeeds.
type Greedy struct {
	base
	Inner     Atom
	Min, Max  int
	subGroups []int
}

// NewGreedy returns a Greedy quantifier over inner, repeated between min
// and max times inclusive. max may be a very large sentinel for unbounded
// repetition (+, *, {n,}).
func NewGreedy(inner Atom, min, max int) *Greedy {
	return &Greedy{Inner: inner, Min: min, Max: max, subGroups: collectGroupNums(inner)}
}

// MinLength implements Atom.
func (a *Greedy) MinLength() int { return a.Inner.MinLength()*a.Min + a.minLengthOfNext() }

// Match implements Atom.
func (a *Greedy) Match(input []byte, pos int, state *capture.State) (int, bool) {
	endPositions := []int{pos}
	last := pos
	for len(endPositions) <= a.Max {
		n, ok := a.Inner.Match(input, last, state)
		if !ok {
			break
		}
		last += n
		endPositions = append(endPositions, last)
	}

	if len(endPositions) <= a.Min {
		for _, g := range a.subGroups {
			state.ResetGroup(g)
		}
		return 0, false
	}

	top := len(endPositions) - 1
	n, ok := a.tryNext(endPositions[top]-pos, input, pos, state)
	for !ok {
		if top-1 < a.Min {
			return 0, false
		}
		top--
		for _, g := range a.subGroups {
			state.PopCapture(g)
		}
		n, ok = a.tryNext(endPositions[top]-pos, input, pos, state)
	}
	return n, true
}

// Lazy repeats Inner as few times as possible (down to Min), trying the
// rest of the chain after every repetition before matching Inner again.
type Lazy struct {
	base
	Inner     Atom
	Min, Max  int
	subGroups []int
}

// NewLazy returns a Lazy quantifier over inner, repeated between min and
// max times inclusive.
func NewLazy(inner Atom, min, max int) *Lazy {
	return &Lazy{Inner: inner, Min: min, Max: max, subGroups: collectGroupNums(inner)}
}

// MinLength implements Atom.
func (a *Lazy) MinLength() int { return a.Inner.MinLength()*a.Min + a.minLengthOfNext() }

// Match implements Atom.
func (a *Lazy) Match(input []byte, pos int, state *capture.State) (int, bool) {
	if a.Max <= 0 {
		return 0, false
	}

	total := 0
	count := 0
	for {
		if count >= a.Min {
			if n, ok := a.tryNext(total, input, pos, state); ok {
				return n, true
			}
		}
		if count >= a.Max {
			return 0, false
		}
		n, ok := a.Inner.Match(input, pos+total, state)
		if !ok {
			return 0, false
		}
		count++
		total += n
	}
}
