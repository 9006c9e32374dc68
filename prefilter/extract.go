package prefilter

import "github.com/coregx/rex/atom"

// ExtractLiteralAlternatives inspects a compiled pattern and, when its
// entire body is a top-level alternation of fixed byte literals (no
// quantifiers, classes, or nested groups in any branch), returns each
// branch's literal bytes. ok is false for any pattern with more structure
// than that — the caller falls back to full backtracking in that case.
//
// This only ever returns a usable candidate set when the match is exactly
// the set of literals: finding one in the haystack already proves a full
// regex match (there is nothing downstream of the alternation to check),
// which is what lets a caller treat the result as complete.
func ExtractLiteralAlternatives(root *atom.Root) (literals [][]byte, ok bool) {
	gs, isGroupStart := root.Head.(*atom.GroupStart)
	if !isGroupStart || gs.Num != 0 {
		return nil, false
	}
	or, isOr := gs.Next().(*atom.Or)
	if !isOr {
		return nil, false
	}

	lits := make([][]byte, 0, len(or.Branches))
	for _, branch := range or.Branches {
		lit, complete := walkLiteralBranch(branch)
		if !complete || len(lit) == 0 {
			return nil, false
		}
		lits = append(lits, lit)
	}
	return lits, true
}

// ExtractLeadingClass inspects a compiled pattern and, when the first
// meaningful atom constrains the match's leading byte to a fixed set (a
// Range, a Literal, an Or of Ranges/Literals, or any of those negated by
// Inversion — optionally repeated by a Greedy/Lazy quantifier with Min >=
// 1), returns a 256-byte membership table for that set plus whether it's
// negated. ok is false when the pattern has no such constraint (e.g. it
// starts with AnyChar, an anchor, or an optional quantifier).
//
// This only proves a constraint on the FIRST byte of a match, unlike
// ExtractLiteralAlternatives which can prove the whole match: the returned
// table is always used to build a ClassPrefilter, never a complete one.
func ExtractLeadingClass(root *atom.Root) (table *[256]bool, negate bool, ok bool) {
	gs, isGroupStart := root.Head.(*atom.GroupStart)
	if !isGroupStart || gs.Num != 0 {
		return nil, false, false
	}
	return leadingClassOf(gs.Next())
}

// leadingClassOf unwraps a single leading quantifier layer (requiring at
// least one repetition) and dispatches on the underlying atom shape.
func leadingClassOf(a atom.Atom) (*[256]bool, bool, bool) {
	switch v := a.(type) {
	case *atom.Greedy:
		if v.Min < 1 {
			return nil, false, false
		}
		return leadingClassOf(v.Inner)
	case *atom.Lazy:
		if v.Min < 1 {
			return nil, false, false
		}
		return leadingClassOf(v.Inner)
	case *atom.Inversion:
		table, negate, ok := leadingClassOf(v.Inner)
		if !ok {
			return nil, false, false
		}
		return table, !negate, true
	case *atom.Range:
		t := new([256]bool)
		for c := int(v.Lo); c <= int(v.Hi); c++ {
			t[c] = true
		}
		return t, false, true
	case *atom.Literal:
		if v.CaseInsensitive {
			return nil, false, false
		}
		t := new([256]bool)
		t[v.Char] = true
		return t, false, true
	case *atom.Or:
		t := new([256]bool)
		for _, branch := range v.Branches {
			bt, negate, ok := leadingClassOf(branch)
			if !ok || negate {
				return nil, false, false
			}
			for c := 0; c < 256; c++ {
				if bt[c] {
					t[c] = true
				}
			}
		}
		return t, false, true
	default:
		return nil, false, false
	}
}

// walkLiteralBranch walks a single alternation branch, collecting
// consecutive case-sensitive Literal bytes. complete is true only when the
// branch ends in the shared GroupEnd(0) with nothing of its own after it —
// i.e. the branch is nothing but a literal run.
func walkLiteralBranch(a atom.Atom) (lit []byte, complete bool) {
	for {
		switch v := a.(type) {
		case *atom.Literal:
			if v.CaseInsensitive {
				return nil, false
			}
			lit = append(lit, v.Char)
			a = v.Next()
		case *atom.GroupEnd:
			return lit, v.Num == 0 && v.Next() == nil
		default:
			return lit, false
		}
	}
}
