package lexer

import (
	"fmt"

	"github.com/coregx/rex/token"
)

// SyntaxError is raised while tokenising a pattern. It carries the byte
// offset into the pattern text so callers can render a caret indicator
// under the offending character. It is the same type package parser
// raises for structural errors, so a caller only ever checks one name.
type SyntaxError = token.SyntaxError

func syntaxErrorf(pos int, format string, args ...any) *SyntaxError {
	return &SyntaxError{Message: fmt.Sprintf(format, args...), Position: pos}
}
