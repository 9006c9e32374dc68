// Package literal holds the fixed byte sequences a compiled pattern can be
// reduced to, plus the set operations prefilter needs to turn them into a
// search strategy: a literal alternation like "foo|bar|baz" extracted from
// an atom tree becomes a Seq of three complete Literals; a required prefix
// in front of an otherwise-unconstrained tail becomes a Seq of one
// incomplete Literal.
package literal

import (
	"bytes"
	"sort"
)

// Literal is one fixed byte run a pattern can start (or entirely consist
// of) with. Complete is true when matching Bytes alone is a full pattern
// match (nothing follows in the atom chain); false when Bytes is only a
// required prefix and the rest of the pattern must still be checked.
type Literal struct {
	Bytes    []byte
	Complete bool
}

// NewLiteral returns a Literal over b with the given completeness.
func NewLiteral(b []byte, complete bool) Literal {
	return Literal{Bytes: b, Complete: complete}
}

// Len returns len(l.Bytes).
func (l Literal) Len() int { return len(l.Bytes) }

// String renders l for debugging.
func (l Literal) String() string {
	complete := "false"
	if l.Complete {
		complete = "true"
	}
	return "literal{" + string(l.Bytes) + ", complete=" + complete + "}"
}

// Seq is the set of literals a single point in a pattern could start
// with — the branches of a top-level alternation, or a singleton when the
// pattern reduces to one required literal. prefilter.selectPrefilter picks
// a search strategy from a Seq's size and literal lengths.
type Seq struct {
	literals []Literal
}

// NewSeq returns a Seq over lits.
func NewSeq(lits ...Literal) *Seq {
	return &Seq{literals: lits}
}

// Len returns the number of literals in s. A nil *Seq has length 0.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.literals)
}

// Get returns the literal at index i. Panics if i is out of range.
func (s *Seq) Get(i int) Literal { return s.literals[i] }

// IsEmpty reports whether s has no literals (including a nil *Seq).
func (s *Seq) IsEmpty() bool { return s == nil || len(s.literals) == 0 }

// IsFinite reports whether s describes a bounded set of strings, which for
// a literal sequence just means it's non-empty.
func (s *Seq) IsFinite() bool { return !s.IsEmpty() }

// Clone returns a deep copy of s, safe to mutate independently.
func (s *Seq) Clone() *Seq {
	if s == nil {
		return nil
	}
	cloned := make([]Literal, len(s.literals))
	for i, lit := range s.literals {
		b := make([]byte, len(lit.Bytes))
		copy(b, lit.Bytes)
		cloned[i] = Literal{Bytes: b, Complete: lit.Complete}
	}
	return &Seq{literals: cloned}
}

// Minimize drops any literal that has a shorter literal in s as a prefix:
// for prefix matching, ["foo", "foobar"] only needs to keep "foo", since
// any haystack containing "foobar" also contains "foo". O(n² · m).
func (s *Seq) Minimize() {
	if s.IsEmpty() {
		return
	}
	sort.Slice(s.literals, func(i, j int) bool {
		return len(s.literals[i].Bytes) < len(s.literals[j].Bytes)
	})

	kept := make([]Literal, 0, len(s.literals))
	for _, cur := range s.literals {
		redundant := false
		for _, k := range kept {
			if isPrefix(k.Bytes, cur.Bytes) {
				redundant = true
				break
			}
		}
		if !redundant {
			kept = append(kept, cur)
		}
	}
	s.literals = kept
}

// LongestCommonPrefix returns the longest byte run every literal in s
// starts with, or an empty slice if s is empty or they share none.
func (s *Seq) LongestCommonPrefix() []byte {
	if s.IsEmpty() {
		return []byte{}
	}
	prefix := s.literals[0].Bytes
	for _, lit := range s.literals[1:] {
		prefix = commonPrefix(prefix, lit.Bytes)
		if len(prefix) == 0 {
			return []byte{}
		}
	}
	out := make([]byte, len(prefix))
	copy(out, prefix)
	return out
}

// LongestCommonSuffix returns the longest byte run every literal in s
// ends with, or an empty slice if s is empty or they share none.
func (s *Seq) LongestCommonSuffix() []byte {
	if s.IsEmpty() {
		return []byte{}
	}
	suffix := s.literals[0].Bytes
	for _, lit := range s.literals[1:] {
		suffix = commonSuffix(suffix, lit.Bytes)
		if len(suffix) == 0 {
			return []byte{}
		}
	}
	out := make([]byte, len(suffix))
	copy(out, suffix)
	return out
}

func isPrefix(prefix, s []byte) bool {
	if len(prefix) > len(s) {
		return false
	}
	return bytes.Equal(prefix, s[:len(prefix)])
}

func commonPrefix(a, b []byte) []byte {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[:i]
		}
	}
	return a[:n]
}

func commonSuffix(a, b []byte) []byte {
	aLen, bLen := len(a), len(b)
	n := aLen
	if bLen < n {
		n = bLen
	}
	for i := 0; i < n; i++ {
		if a[aLen-1-i] != b[bLen-1-i] {
			if i == 0 {
				return []byte{}
			}
			return a[aLen-i:]
		}
	}
	return a[aLen-n:]
}
