// Package parser builds a compiled atom tree out of the token sequence
// package lexer produces.
package parser

import (
	"strconv"
	"strings"

	"github.com/coregx/rex/atom"
	"github.com/coregx/rex/token"
)

// unboundedMax stands in for an unbounded repeat upper bound ('*', '+',
// '{n,}'). It is far larger than any realistic input, so it never changes
// observable behaviour, only avoids a literal "infinity" sentinel.
const unboundedMax = 1 << 30

// Parse builds the compiled atom tree for toks. caseInsensitive folds every
// literal and range comparison; maxDepth caps group nesting (0 means no
// limit) and guards against runaway recursion on adversarial patterns.
func Parse(toks []token.Token, caseInsensitive bool, maxDepth int) (*atom.Root, error) {
	p := &parser{toks: toks, caseInsensitive: caseInsensitive, maxDepth: maxDepth}

	g0 := p.nextGroupNum()
	body, err := p.parseAlternation()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.toks) {
		return nil, syntaxErrorf(p.curPos(), "unexpected %s", p.peek().Kind)
	}

	head := atom.NewGroupStart(g0)
	end := atom.NewGroupEnd(g0)
	head.Append(body)
	body.Append(end)

	return &atom.Root{Head: head, NumGroups: p.groupCounter}, nil
}

type parser struct {
	toks            []token.Token
	pos             int
	groupCounter    int
	caseInsensitive bool
	maxDepth        int
	depth           int
}

func (p *parser) nextGroupNum() int {
	g := p.groupCounter
	p.groupCounter++
	return g
}

// peek returns the current token, or a zero-Kind sentinel token at EOF.
// Kind 0 is never assigned to a real token (kinds start at 1), so it is
// safe to use purely as the parser's own end-of-input marker.
func (p *parser) peek() token.Token {
	if p.pos >= len(p.toks) {
		return token.Token{Pos: p.curPos()}
	}
	return p.toks[p.pos]
}

func (p *parser) peekKind() token.Kind { return p.peek().Kind }

func (p *parser) advance() token.Token {
	t := p.peek()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return t
}

func (p *parser) curPos() int {
	if len(p.toks) == 0 {
		return 0
	}
	if p.pos >= len(p.toks) {
		last := p.toks[len(p.toks)-1]
		return last.Pos + len(last.Original)
	}
	return p.toks[p.pos].Pos
}

// parseAlternation parses one or more '|'-separated sequences.
func (p *parser) parseAlternation() (atom.Atom, error) {
	first, err := p.parseSequence()
	if err != nil {
		return nil, err
	}
	branches := []atom.Atom{first}
	for p.peekKind() == token.OR_OP {
		p.advance()
		next, err := p.parseSequence()
		if err != nil {
			return nil, err
		}
		branches = append(branches, next)
	}
	if len(branches) == 1 {
		return branches[0], nil
	}
	return atom.NewOr(branches), nil
}

// parseSequence parses a run of concatenated atoms, stopping at '|', ')'
// or end of input. An empty sequence (e.g. the left side of "(|a)")
// produces a no-op placeholder atom.
func (p *parser) parseSequence() (atom.Atom, error) {
	var head atom.Atom
	for {
		k := p.peekKind()
		if k == 0 || k == token.OR_OP || k == token.END_GROUP {
			break
		}
		a, err := p.parseOneWithQuantifier()
		if err != nil {
			return nil, err
		}
		if head == nil {
			head = a
		} else {
			head.Append(a)
		}
	}
	if head == nil {
		return atom.NewNoOp(), nil
	}
	return head, nil
}

// parseOneWithQuantifier parses one primary atom and, if a quantifier token
// immediately follows, wraps it in Greedy or Lazy.
func (p *parser) parseOneWithQuantifier() (atom.Atom, error) {
	base, err := p.parseAtomStart()
	if err != nil {
		return nil, err
	}

	qtok := p.peek()
	min, max, ok := quantBounds(qtok)
	if !ok {
		return base, nil
	}
	p.advance()
	if max < 0 {
		max = unboundedMax
	}
	if qtok.IsLazy() {
		return atom.NewLazy(base, min, max), nil
	}
	return atom.NewGreedy(base, min, max), nil
}

// quantBounds reports the (min, max) bounds a quantifier token implies, and
// whether tok is a quantifier token at all. For STATIC_QUAN and the _QUAN
// variants the bounds live in tok.Value as "min,max" (max == -1 meaning
// unbounded), since token.Token.QuantBounds only covers +, *, ?.
func quantBounds(tok token.Token) (min, max int, ok bool) {
	switch tok.Kind {
	case token.GREEDY_PLUS, token.GREEDY_STAR, token.GREEDY_Q_MARK,
		token.LAZY_PLUS, token.LAZY_STAR, token.LAZY_Q_MARK:
		min, max = tok.QuantBounds()
		return min, max, true
	case token.STATIC_QUAN, token.GREEDY_MIN_QUAN, token.LAZY_MIN_QUAN,
		token.GREEDY_RANGE_QUAN, token.LAZY_RANGE_QUAN:
		parts := strings.SplitN(tok.Value, ",", 2)
		min, _ = strconv.Atoi(parts[0])
		max, _ = strconv.Atoi(parts[1])
		return min, max, true
	default:
		return 0, 0, false
	}
}

// parseAtomStart parses exactly one primary atom: a literal, dot, anchor,
// SPECIAL expansion, character class, or parenthesised group.
func (p *parser) parseAtomStart() (atom.Atom, error) {
	t := p.peek()
	switch t.Kind {
	case token.LITERAL:
		p.advance()
		return atom.NewLiteral(t.Value[0], p.caseInsensitive), nil
	case token.DOT:
		p.advance()
		return atom.NewAnyChar(), nil
	case token.CARET:
		p.advance()
		return atom.NewBeginLine(), nil
	case token.DOLLAR:
		p.advance()
		return atom.NewEndLine(), nil
	case token.SPECIAL:
		p.advance()
		return expandSpecial(t.Value[0]), nil
	case token.START_CHAR_CLASS:
		return p.parseCharClass()
	case token.START_GROUP:
		return p.parseGroup()
	case 0:
		return nil, syntaxErrorf(p.curPos(), "unexpected end of pattern")
	default:
		return nil, syntaxErrorf(t.Pos, "unexpected %s in this context", t.Kind)
	}
}

// parseGroup parses a "(" ... ")" or "(?:" ... ")" construct.
func (p *parser) parseGroup() (atom.Atom, error) {
	open := p.advance() // START_GROUP
	capturing := open.Value != ":"

	p.depth++
	if p.maxDepth > 0 && p.depth > p.maxDepth {
		return nil, syntaxErrorf(open.Pos, "group nesting exceeds the configured maximum depth")
	}

	var gnum int
	if capturing {
		gnum = p.nextGroupNum()
	}

	body, err := p.parseAlternation()
	p.depth--
	if err != nil {
		return nil, err
	}

	if p.peekKind() != token.END_GROUP {
		return nil, syntaxErrorf(open.Pos, "unbalanced group: missing closing ')'")
	}
	p.advance()

	if !capturing {
		return body, nil
	}

	start := atom.NewGroupStart(gnum)
	end := atom.NewGroupEnd(gnum)
	start.Append(body)
	body.Append(end)
	return start, nil
}

// parseCharClass parses a "[" ... "]" construct into an Or of
// Range/Literal/expanded-SPECIAL atoms, wrapped in Inversion if negated.
func (p *parser) parseCharClass() (atom.Atom, error) {
	open := p.advance() // START_CHAR_CLASS
	negated := open.Value == "^"

	var branches []atom.Atom
	for {
		t := p.peek()
		switch t.Kind {
		case token.END_CHAR_CLASS:
			p.advance()
			if len(branches) == 0 {
				return nil, syntaxErrorf(open.Pos, "empty character class")
			}
			var body atom.Atom
			if len(branches) == 1 {
				body = branches[0]
			} else {
				body = atom.NewOr(branches)
			}
			if negated {
				return atom.NewInversion(body, 1), nil
			}
			return body, nil

		case token.LITERAL:
			p.advance()
			branches = append(branches, atom.NewLiteral(t.Value[0], p.caseInsensitive))

		case token.CHAR_RANGE:
			p.advance()
			branches = append(branches, p.buildRange(t.Value[0], t.Value[1]))

		case token.SPECIAL:
			p.advance()
			branches = append(branches, expandSpecial(t.Value[0]))

		case 0:
			return nil, syntaxErrorf(open.Pos, "unterminated character class")

		default:
			return nil, syntaxErrorf(t.Pos, "unexpected %s inside character class", t.Kind)
		}
	}
}

// buildRange returns a Range atom for [lo, hi], or — when caseInsensitive —
// an Or of that range with whichever paired-case range it overlaps.
func (p *parser) buildRange(lo, hi byte) atom.Atom {
	base := atom.NewRange(lo, hi)
	if !p.caseInsensitive {
		return base
	}

	var extra []atom.Atom
	if l, h, ok := intersect(lo, hi, 'a', 'z'); ok {
		extra = append(extra, atom.NewRange(l-32, h-32))
	}
	if l, h, ok := intersect(lo, hi, 'A', 'Z'); ok {
		extra = append(extra, atom.NewRange(l+32, h+32))
	}
	if len(extra) == 0 {
		return base
	}
	return atom.NewOr(append([]atom.Atom{base}, extra...))
}

func intersect(lo, hi, a, b byte) (byte, byte, bool) {
	l, h := lo, hi
	if a > l {
		l = a
	}
	if b < h {
		h = b
	}
	if l > h {
		return 0, 0, false
	}
	return l, h, true
}

// expandSpecial builds the fixed sub-tree a SPECIAL token's decoded byte
// (one of d D w W s S b B) stands for.
func expandSpecial(c byte) atom.Atom {
	switch c {
	case 'd':
		return atom.NewRange('0', '9')
	case 'D':
		return atom.NewInversion(atom.NewRange('0', '9'), 1)
	case 'w':
		return wordAtom()
	case 'W':
		return atom.NewInversion(wordAtom(), 1)
	case 's':
		return spaceAtom()
	case 'S':
		return atom.NewInversion(spaceAtom(), 1)
	case 'b':
		return atom.NewWordBoundary()
	case 'B':
		return atom.NewInversion(atom.NewWordBoundary(), 0)
	default:
		panic("parser: unreachable SPECIAL byte " + string(c))
	}
}

func wordAtom() atom.Atom {
	return atom.NewOr([]atom.Atom{
		atom.NewRange('a', 'z'),
		atom.NewRange('A', 'Z'),
		atom.NewRange('0', '9'),
		atom.NewLiteral('_', false),
	})
}

func spaceAtom() atom.Atom {
	return atom.NewOr([]atom.Atom{
		atom.NewLiteral(' ', false),
		atom.NewLiteral('\n', false),
		atom.NewLiteral('\r', false),
		atom.NewLiteral('\t', false),
		atom.NewLiteral('\f', false),
	})
}
