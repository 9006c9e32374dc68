package rex

import (
	"github.com/coregx/rex/format"
	"github.com/coregx/rex/token"
)

// SyntaxError reports a malformed pattern: both the lexer and the parser
// raise this type (the lexer catches malformed tokens, the parser catches
// structural problems like unbalanced groups), so callers only ever need
// to type-assert against one name.
type SyntaxError = token.SyntaxError

// FormatError reports a malformed substitution template passed to
// package format.
type FormatError = format.FormatError
