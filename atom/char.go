package atom

import "github.com/coregx/rex/capture"

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// Literal matches a single fixed byte, optionally case-insensitively.
type Literal struct {
	base
	Char            byte
	CaseInsensitive bool
}

// NewLiteral returns a Literal atom matching c. When ci is true, c is
// folded to lowercase and matching compares folded bytes.
func NewLiteral(c byte, ci bool) *Literal {
	if ci {
		c = toLower(c)
	}
	return &Literal{Char: c, CaseInsensitive: ci}
}

// MinLength implements Atom.
func (a *Literal) MinLength() int { return 1 + a.minLengthOfNext() }

// Match implements Atom.
func (a *Literal) Match(input []byte, pos int, state *capture.State) (int, bool) {
	if pos >= len(input) {
		return 0, false
	}
	c := input[pos]
	if a.CaseInsensitive {
		c = toLower(c)
	}
	if c != a.Char {
		return 0, false
	}
	return a.tryNext(1, input, pos, state)
}

// Range matches a single byte within an inclusive [Lo, Hi] range.
type Range struct {
	base
	Lo, Hi byte
}

// NewRange returns a Range atom matching any byte in [lo, hi]. The caller
// is responsible for lo <= hi.
func NewRange(lo, hi byte) *Range {
	return &Range{Lo: lo, Hi: hi}
}

// MinLength implements Atom.
func (a *Range) MinLength() int { return 1 + a.minLengthOfNext() }

// Match implements Atom.
func (a *Range) Match(input []byte, pos int, state *capture.State) (int, bool) {
	if pos >= len(input) {
		return 0, false
	}
	c := input[pos]
	if c < a.Lo || c > a.Hi {
		return 0, false
	}
	return a.tryNext(1, input, pos, state)
}

// AnyChar matches any single byte (the DOT token). It never matches past
// the end of input; there is no multiline/dotall distinction to make.
type AnyChar struct {
	base
}

// NewAnyChar returns an AnyChar atom.
func NewAnyChar() *AnyChar { return &AnyChar{} }

// MinLength implements Atom.
func (a *AnyChar) MinLength() int { return 1 + a.minLengthOfNext() }

// Match implements Atom.
func (a *AnyChar) Match(input []byte, pos int, state *capture.State) (int, bool) {
	if pos >= len(input) {
		return 0, false
	}
	return a.tryNext(1, input, pos, state)
}

// Inversion negates a fixed-width inner atom: it succeeds exactly where
// Inner fails, consuming Step bytes (Inner's own fixed width) and never
// recording any of Inner's captures (Inner is probed, not committed).
//
// Step must equal Inner's own fixed consumption on success (1 for \D \W \S,
// 0 for \B). For Step > 0, Inversion also fails outright when fewer than
// Step bytes remain, matching the intuition that "not a digit" still needs
// an actual byte to not-be-a-digit; for Step == 0 no such guard applies,
// since Inner (WordBoundary) is itself zero-width and bounds-safe.
type Inversion struct {
	base
	Inner Atom
	Step  int
}

// NewInversion returns an Inversion atom wrapping inner with the given
// fixed step.
func NewInversion(inner Atom, step int) *Inversion {
	return &Inversion{Inner: inner, Step: step}
}

// MinLength implements Atom.
func (a *Inversion) MinLength() int { return a.Step + a.minLengthOfNext() }

// Match implements Atom.
func (a *Inversion) Match(input []byte, pos int, state *capture.State) (int, bool) {
	if a.Step > 0 && pos+a.Step > len(input) {
		return 0, false
	}
	if _, ok := a.Inner.Match(input, pos, state); ok {
		return 0, false
	}
	return a.tryNext(a.Step, input, pos, state)
}
