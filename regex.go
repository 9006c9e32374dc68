// Package rex is a backtracking regex engine built from an explicit atom
// tree: a pattern compiles into a linked chain of match primitives
// (literals, ranges, anchors, quantifiers, groups) that a recursive
// matcher walks directly, rather than compiling to an NFA or DFA.
//
// Basic usage:
//
//	re, err := rex.Compile(`\d+`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	m, ok := re.Find([]byte("hello 123 world"), 0)
//	if ok {
//	    fmt.Println(m.Value()) // "123"
//	}
//
// Advanced usage:
//
//	cfg := rex.DefaultConfig()
//	cfg.CaseInsensitive = true
//	re, err := rex.CompileWithConfig(`hello`, cfg)
package rex

import (
	"github.com/coregx/rex/atom"
	"github.com/coregx/rex/lexer"
	"github.com/coregx/rex/matcher"
	"github.com/coregx/rex/parser"
	"github.com/coregx/rex/prefilter"
	"github.com/coregx/rex/result"
)

// Pattern represents a compiled regular expression.
//
// A Pattern is immutable after Compile returns and is safe to use
// concurrently from multiple goroutines: matching builds a fresh
// capture.State per call and never mutates the atom tree.
type Pattern struct {
	root    *atom.Root
	pattern string
	pf      prefilter.Prefilter
}

// Compile compiles pattern with the default configuration.
func Compile(pattern string) (*Pattern, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile compiles pattern and panics if it fails. Intended for
// patterns known to be valid at init time.
func MustCompile(pattern string) *Pattern {
	p, err := Compile(pattern)
	if err != nil {
		panic("rex: Compile(" + pattern + "): " + err.Error())
	}
	return p
}

// CompileWithConfig compiles pattern under cfg.
func CompileWithConfig(pattern string, cfg Config) (*Pattern, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	toks, err := lexer.Tokenize(pattern)
	if err != nil {
		return nil, err
	}
	root, err := parser.Parse(toks, cfg.CaseInsensitive, cfg.MaxRecursionDepth)
	if err != nil {
		return nil, err
	}

	p := &Pattern{root: root, pattern: pattern}
	if cfg.EnablePrefilter {
		if pf := buildPrefilter(root, cfg.MinPrefilterLiteralLen); pf != nil {
			p.pf = prefilter.WrapWithTracking(pf)
		}
	}
	return p, nil
}

// buildPrefilter extracts a top-level literal alternation from root and
// builds a prefilter for it, or returns nil when the pattern doesn't
// reduce to one or the literals are too short to be worth the overhead.
// Failing that, it falls back to a leading-character-class prefilter
// (`\d+`, `[aeiou]`, `[^0-9]`, ...), which only narrows the first byte of
// a candidate rather than proving the whole match.
func buildPrefilter(root *atom.Root, minLen int) prefilter.Prefilter {
	if lits, ok := prefilter.ExtractLiteralAlternatives(root); ok {
		for _, l := range lits {
			if len(l) < minLen {
				return nil
			}
		}
		return prefilter.FromLiterals(lits)
	}
	if table, negate, ok := prefilter.ExtractLeadingClass(root); ok {
		return prefilter.NewClassPrefilter(table, negate)
	}
	return nil
}

// MatchAt tries to match the pattern exactly at pos in input.
func (p *Pattern) MatchAt(input []byte, pos int) (*result.Match, bool) {
	return matcher.MatchAt(p.root, input, pos)
}

// Find returns the leftmost match starting at or after start, or
// (nil, false) if there is none.
func (p *Pattern) Find(input []byte, start int) (*result.Match, bool) {
	if p.pf == nil {
		return matcher.Find(p.root, input, start)
	}
	return p.findWithPrefilter(input, start)
}

// findWithPrefilter narrows candidate start positions with p.pf before
// verifying each one against the atom tree. When p.pf.IsComplete(), a
// prefilter hit already proves the match (see buildPrefilter: the only
// complete prefilters built here come from a pattern that is nothing but
// the literal alternation itself; a ClassPrefilter is never complete), so
// MatchAt at that position only needs to
// run once to produce the capture record. p.pf is wrapped with effectiveness
// tracking (see prefilter.Tracker), so a pattern that turns out to pick
// bad candidates on some input falls back to a full scan automatically.
func (p *Pattern) findWithPrefilter(input []byte, start int) (*result.Match, bool) {
	tracked, _ := p.pf.(*prefilter.TrackedPrefilter)

	pos := start
	for pos <= len(input) {
		cand := p.pf.Find(input, pos)
		if cand == -1 {
			if tracked != nil && !tracked.IsActive() {
				break
			}
			return nil, false
		}
		if m, ok := matcher.MatchAt(p.root, input, cand); ok {
			if tracked != nil {
				tracked.ConfirmMatch()
			}
			return m, true
		}
		pos = cand + 1
	}
	return matcher.Find(p.root, input, pos)
}

// FindAll collects every non-overlapping match from start onward.
func (p *Pattern) FindAll(input []byte, start int) []*result.Match {
	if p.pf == nil {
		return matcher.FindAll(p.root, input, start)
	}
	var matches []*result.Match
	pos := start
	for {
		m, ok := p.Find(input, pos)
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

// NumSubexp returns the number of capturing groups, including group 0 (the
// whole match).
func (p *Pattern) NumSubexp() int {
	return p.root.NumGroups
}

// String returns the source text the pattern was compiled from.
func (p *Pattern) String() string {
	return p.pattern
}
