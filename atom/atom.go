// Package atom defines the compiled pattern tree: a set of match primitives
// ("atoms") each exposing a single recursive-backtracking match operation.
//
// Every atom owns an optional successor ("next"): a linear run of atoms
// forms a singly-linked chain, while structural composites (Or, the
// quantifiers, groups) own their children as sub-trees and still carry a
// next for whatever follows the composite as a whole.
package atom

import "github.com/coregx/rex/capture"

// Atom is the single operation every node in a compiled pattern exposes:
// given an input, a starting position and the in-flight capture state, try
// to match this atom and everything downstream of it.
//
// A true result's int is the total number of bytes consumed by this atom
// and every atom chained after it. A false result means no match was found
// from start_pos; the caller must not assume anything about state beyond
// what it owned before the call (capture state changes made speculatively
// during a failed attempt are rolled back by the caller that owns them,
// typically a Greedy/Lazy quantifier or GroupStart).
type Atom interface {
	Match(input []byte, pos int, state *capture.State) (consumed int, ok bool)

	// MinLength is the tightest known lower bound, in bytes, on how much
	// input this atom and its successor chain must consume to succeed.
	// Used only to short-circuit the top-level scanning loop.
	MinLength() int

	// Append attaches next as the final successor of this atom's chain.
	Append(next Atom)

	// Next returns this atom's immediate successor, or nil if none has
	// been appended yet.
	Next() Atom
}

// base implements the shared next-pointer plumbing every concrete atom
// embeds. It is not itself a complete Atom (no Match/MinLength).
type base struct {
	next Atom
}

// Next implements Atom.
func (b *base) Next() Atom { return b.next }

// Append implements Atom: it recurses to the end of the chain and sets the
// final atom's next field. Composites that need different semantics (Or
// forwards to every branch) override this.
func (b *base) Append(next Atom) {
	if b.next == nil {
		b.next = next
		return
	}
	b.next.Append(next)
}

// tryNext invokes this atom's successor (if any) starting at startPos plus
// the bytes this atom itself already consumed (consumed), and folds the
// result together. With no successor, consumed alone is the answer.
func (b *base) tryNext(consumed int, input []byte, startPos int, state *capture.State) (int, bool) {
	if b.next == nil {
		return consumed, true
	}
	n, ok := b.next.Match(input, startPos+consumed, state)
	if !ok {
		return 0, false
	}
	return consumed + n, true
}

// minLengthOfNext returns the successor's MinLength, or 0 with no successor.
func (b *base) minLengthOfNext() int {
	if b.next == nil {
		return 0
	}
	return b.next.MinLength()
}

// NoOp consumes nothing and always defers to its successor. It stands in
// for an empty sequence — the empty side of "(|a)", or an empty
// non-capturing group "(?:)" — where the parser needs an atom but there is
// nothing to match.
type NoOp struct{ base }

// NewNoOp returns a NoOp atom.
func NewNoOp() *NoOp { return &NoOp{} }

// MinLength implements Atom.
func (a *NoOp) MinLength() int { return a.minLengthOfNext() }

// Match implements Atom.
func (a *NoOp) Match(input []byte, pos int, state *capture.State) (int, bool) {
	return a.tryNext(0, input, pos, state)
}

// Root is the compiled pattern as a whole: the head of the top-level atom
// chain (which begins with a GroupStart(0) and ends with a GroupEnd(0), so
// that group 0 always captures the whole match) plus the total number of
// groups, including group 0.
//
// Root is not itself an Atom: it is the artifact package parser produces
// and package matcher consumes to drive match attempts.
type Root struct {
	Head      Atom
	NumGroups int
}

// MinLength is the pattern's overall minimum match length.
func (r *Root) MinLength() int {
	if r.Head == nil {
		return 0
	}
	return r.Head.MinLength()
}
