package prefilter

import (
	"github.com/coregx/ahocorasick"
	"github.com/coregx/rex/literal"
)

// ahoCorasickPrefilter wraps an Aho-Corasick automaton as a Prefilter.
//
// This is the strategy for literal sets too large or too short for Teddy
// (more than 64 alternatives, or any literal shorter than 3 bytes): a
// single automaton walk finds the first of many literals in one pass over
// the haystack, rather than a SIMD search repeated per literal.
type ahoCorasickPrefilter struct {
	automaton *ahocorasick.Automaton
	complete  bool
}

// newAhoCorasickPrefilter builds an automaton over every literal in seq. It
// returns ok=false if the automaton fails to build, in which case the
// caller should fall back to full verification instead.
func newAhoCorasickPrefilter(seq *literal.Seq) (pf Prefilter, ok bool) {
	builder := ahocorasick.NewBuilder()
	complete := true
	for i := 0; i < seq.Len(); i++ {
		lit := seq.Get(i)
		builder.AddPattern(lit.Bytes)
		if !lit.Complete {
			complete = false
		}
	}
	automaton, err := builder.Build()
	if err != nil {
		return nil, false
	}
	return &ahoCorasickPrefilter{automaton: automaton, complete: complete}, true
}

// Find implements Prefilter.
func (p *ahoCorasickPrefilter) Find(haystack []byte, start int) int {
	start2, _ := p.FindMatch(haystack, start)
	return start2
}

// FindMatch implements MatchFinder: the automaton already knows both ends
// of whichever literal it found, so callers with IsComplete()==true can
// skip verification entirely and use this range directly.
func (p *ahoCorasickPrefilter) FindMatch(haystack []byte, start int) (int, int) {
	if start < 0 || start > len(haystack) {
		return -1, -1
	}
	m := p.automaton.Find(haystack, start)
	if m == nil {
		return -1, -1
	}
	return m.Start, m.End
}

// IsComplete implements Prefilter: true only when every literal fed in was
// itself a complete match candidate (no surrounding pattern structure left
// to verify).
func (p *ahoCorasickPrefilter) IsComplete() bool { return p.complete }

// LiteralLen implements Prefilter. Aho-Corasick matches variable-length
// literals, so there is no single length to report; callers needing exact
// bounds on a complete match should use FindMatch instead.
func (p *ahoCorasickPrefilter) LiteralLen() int { return 0 }

// HeapBytes implements Prefilter. The automaton's own memory footprint
// isn't exposed by the library, so this reports 0 rather than guessing.
func (p *ahoCorasickPrefilter) HeapBytes() int { return 0 }
