// Package format compiles a substitution template — a string mixing
// literal text with "<N>" group references — and renders it against a
// result.Match.
package format

import (
	"strconv"
	"strings"

	"github.com/coregx/rex/result"
)

// part is one piece of a compiled Template: either fixed text or a group
// number to look up at render time.
type part interface {
	render(m *result.Match) string
}

type literalPart string

func (p literalPart) render(*result.Match) string { return string(p) }

type groupPart int

func (p groupPart) render(m *result.Match) string { return m.GroupValue(int(p)) }

// Template is a compiled substitution pattern: "<N>" is replaced by group
// N's value, "<<" is a literal "<" that also shields whatever follows it
// from being read as the start of a group reference, and a stray "<" not
// followed by a digit (and not doubled) is passed through literally.
type Template struct {
	parts []part
}

// Compile parses template into a Template, or returns a *FormatError for a
// group reference that is never closed with '>'.
func Compile(template string) (*Template, error) {
	var parts []part
	var lit strings.Builder
	n := len(template)
	i := 0

	flushLiteral := func() {
		if lit.Len() > 0 {
			parts = append(parts, literalPart(lit.String()))
			lit.Reset()
		}
	}

	for i < n {
		c := template[i]
		if c != '<' {
			lit.WriteByte(c)
			i++
			continue
		}

		if i+1 >= n || !isDigit(template[i+1]) {
			// A stray '<': pass it through literally. If the very next
			// byte is also '<', the pair is an escape for one literal
			// '<': the second byte is consumed here without being
			// written, so it can never be misread as the start of a
			// group reference on the following iteration.
			lit.WriteByte('<')
			if i+1 < n && template[i+1] == '<' {
				i++
			}
			i++
			continue
		}

		// '<' followed by a digit: a group reference.
		i++
		flushLiteral()

		numStart := i
		for i < n && isDigit(template[i]) {
			i++
		}
		numStr := template[numStart:i]
		if numStr == "" || i >= n || template[i] != '>' {
			return nil, &FormatError{
				Message:  "group reference must be digits followed by '>', or escape '<' with another '<'",
				Position: i,
			}
		}
		g, _ := strconv.Atoi(numStr)
		parts = append(parts, groupPart(g))
		i++ // consume the closing '>'
	}
	flushLiteral()

	return &Template{parts: parts}, nil
}

// Render applies t to m, concatenating every literal segment and group
// lookup in order.
func (t *Template) Render(m *result.Match) string {
	var b strings.Builder
	for _, p := range t.parts {
		b.WriteString(p.render(m))
	}
	return b.String()
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
