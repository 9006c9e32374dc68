package parser

import (
	"fmt"

	"github.com/coregx/rex/token"
)

// SyntaxError reports a structural problem with a token sequence that the
// lexer alone could not detect: unbalanced groups, an empty character
// class, a quantifier with nothing to repeat, excessive group nesting. It
// is the same type package lexer raises for malformed tokens.
type SyntaxError = token.SyntaxError

func syntaxErrorf(pos int, format string, args ...any) *SyntaxError {
	return &SyntaxError{Message: fmt.Sprintf(format, args...), Position: pos}
}
