package atom

import "github.com/coregx/rex/capture"

func isWordChar(c byte) bool {
	return c == '-' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

// BeginString matches only at offset 0 of the input. (CARET compiles to
// BeginLine, not to this atom.)
type BeginString struct{ base }

// NewBeginString returns a BeginString atom.
func NewBeginString() *BeginString { return &BeginString{} }

// MinLength implements Atom.
func (a *BeginString) MinLength() int { return a.minLengthOfNext() }

// Match implements Atom.
func (a *BeginString) Match(input []byte, pos int, state *capture.State) (int, bool) {
	if pos != 0 {
		return 0, false
	}
	return a.tryNext(0, input, pos, state)
}

// EndString matches only at the end of the input. (DOLLAR compiles to
// EndLine, not to this atom.)
type EndString struct{ base }

// NewEndString returns an EndString atom.
func NewEndString() *EndString { return &EndString{} }

// MinLength implements Atom.
func (a *EndString) MinLength() int { return a.minLengthOfNext() }

// Match implements Atom.
func (a *EndString) Match(input []byte, pos int, state *capture.State) (int, bool) {
	if pos != len(input) {
		return 0, false
	}
	return a.tryNext(0, input, pos, state)
}

// BeginLine matches at offset 0, or immediately after a '\n'.
type BeginLine struct{ base }

// NewBeginLine returns a BeginLine atom.
func NewBeginLine() *BeginLine { return &BeginLine{} }

// MinLength implements Atom.
func (a *BeginLine) MinLength() int { return a.minLengthOfNext() }

// Match implements Atom.
func (a *BeginLine) Match(input []byte, pos int, state *capture.State) (int, bool) {
	if pos == 0 || (pos-1 < len(input) && input[pos-1] == '\n') {
		return a.tryNext(0, input, pos, state)
	}
	return 0, false
}

// EndLine matches at the end of input, or where the byte after the next
// one is a line terminator. This peeks one position further than a plain
// "next byte is \n or \r" check would (start_pos+1, not start_pos) — a
// quirk carried over unchanged from the line-anchor semantics this engine
// reproduces.
type EndLine struct{ base }

// NewEndLine returns an EndLine atom.
func NewEndLine() *EndLine { return &EndLine{} }

// MinLength implements Atom.
func (a *EndLine) MinLength() int { return a.minLengthOfNext() }

// Match implements Atom.
func (a *EndLine) Match(input []byte, pos int, state *capture.State) (int, bool) {
	strSize := len(input)
	if pos >= strSize || (pos+1 < strSize && (input[pos+1] == '\n' || input[pos+1] == '\r')) {
		return a.tryNext(0, input, pos, state)
	}
	return 0, false
}

// WordBoundary matches where exactly one of the bytes on either side of
// pos is a "word" byte (letters, digits, or '-'); out-of-range neighbours
// count as non-word.
type WordBoundary struct{ base }

// NewWordBoundary returns a WordBoundary atom.
func NewWordBoundary() *WordBoundary { return &WordBoundary{} }

// MinLength implements Atom.
func (a *WordBoundary) MinLength() int { return a.minLengthOfNext() }

// Match implements Atom.
func (a *WordBoundary) Match(input []byte, pos int, state *capture.State) (int, bool) {
	var before, after bool
	if pos > 0 {
		before = isWordChar(input[pos-1])
	}
	if pos < len(input) {
		after = isWordChar(input[pos])
	}
	if before != after {
		return a.tryNext(0, input, pos, state)
	}
	return 0, false
}
