package parser

import (
	"fmt"

	"github.com/davechallis/erd-go/pkg/ast"
)

// LexError reports an invalid character or an unterminated string literal.
type LexError struct {
	Pos     ast.Position
	Char    rune   // offending character, 0 for unterminated strings
	Message string // set when the error is not about a single character
}

func (e *LexError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Pos, e.Message)
	}
	return fmt.Sprintf("%s: unexpected character %q", e.Pos, e.Char)
}

// ParseError reports the first deviation from the grammar. For token-level
// mismatches Expected and Found are set; for structural problems such as a
// duplicate entity name, Message carries the full description.
type ParseError struct {
	Pos      ast.Position
	Expected string
	Found    string
	Message  string
}

func (e *ParseError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Pos, e.Message)
	}
	return fmt.Sprintf("%s: expected %s, found %s", e.Pos, e.Expected, e.Found)
}
