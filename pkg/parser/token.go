package parser

import "github.com/davechallis/erd-go/pkg/ast"

// TokenKind identifies the type of a lexical token.
type TokenKind int

const (
	TokenEOF      TokenKind = iota
	TokenIdent              // bare name: letters, digits, underscores, interior hyphens
	TokenString             // "...", '...' or `...` with escape processing
	TokenLBracket           // [
	TokenRBracket           // ]
	TokenLBrace             // {
	TokenRBrace             // }
	TokenColon              // :
	TokenComma              // ,
	TokenStar               // * (key marker / zero-or-many)
	TokenPlus               // + (foreign key marker / one-or-many)
	TokenQuestion           // ? (zero-or-one)
	TokenDashes             // -- (relationship connector)
	TokenNewline            // end of a top-level line
)

var tokenNames = map[TokenKind]string{
	TokenEOF:      "end of input",
	TokenIdent:    "identifier",
	TokenString:   "quoted string",
	TokenLBracket: "'['",
	TokenRBracket: "']'",
	TokenLBrace:   "'{'",
	TokenRBrace:   "'}'",
	TokenColon:    "':'",
	TokenComma:    "','",
	TokenStar:     "'*'",
	TokenPlus:     "'+'",
	TokenQuestion: "'?'",
	TokenDashes:   "'--'",
	TokenNewline:  "end of line",
}

func (k TokenKind) String() string {
	if name, ok := tokenNames[k]; ok {
		return name
	}
	return "unknown"
}

// Token is a single lexical unit produced by the Lexer.
type Token struct {
	Kind    TokenKind
	Literal string // text content (decoded for strings, raw for others)
	Pos     ast.Position
}
