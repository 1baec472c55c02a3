package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/davechallis/erd-go/pkg/ast"
)

// Lexer tokenizes markup source text into a stream of tokens.
//
// Newlines are significant at the top level (they terminate entity headers,
// attribute lines and relationship statements) but not inside option blocks,
// so newline tokens are suppressed while the lexer is between '{' and '}'.
type Lexer struct {
	src        []byte
	pos        int // current byte offset
	line       int // current line (1-based)
	col        int // current column (1-based)
	braceDepth int
	peeked     *Token
}

// NewLexer creates a new Lexer for the given source bytes.
func NewLexer(src []byte) *Lexer {
	return &Lexer{src: src, line: 1, col: 1}
}

// Peek returns the next token without consuming it.
func (l *Lexer) Peek() (Token, error) {
	if l.peeked != nil {
		return *l.peeked, nil
	}
	tok, err := l.scan()
	if err != nil {
		return Token{}, err
	}
	l.peeked = &tok
	return tok, nil
}

// Next returns the next token and advances the lexer.
func (l *Lexer) Next() (Token, error) {
	if l.peeked != nil {
		tok := *l.peeked
		l.peeked = nil
		return tok, nil
	}
	return l.scan()
}

// ScanFreeText consumes the rest of the current line as raw text, stopping
// before a '{', a '#' comment marker, a newline, or end of input. Leading
// and trailing whitespace is trimmed. The parser uses this for attribute
// type labels, which are free-form rather than tokenized.
func (l *Lexer) ScanFreeText() string {
	l.peeked = nil
	start := l.pos
	for !l.atEnd() {
		ch := l.peek()
		if ch == '\n' || ch == '{' || ch == '#' {
			break
		}
		l.advance()
	}
	return strings.TrimSpace(string(l.src[start:l.pos]))
}

func (l *Lexer) currentPos() ast.Position {
	return ast.Position{Line: l.line, Column: l.col, Offset: l.pos}
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.src)
}

func (l *Lexer) peek() byte {
	if l.atEnd() {
		return 0
	}
	return l.src[l.pos]
}

func (l *Lexer) advance() byte {
	ch := l.src[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return ch
}

// skipInsignificant skips spaces, comments, and (inside option blocks)
// newlines. A '#' comment runs to end of line; the terminating newline is
// left for scan so top-level statements still end where they should.
func (l *Lexer) skipInsignificant() {
	for !l.atEnd() {
		ch := l.peek()
		switch {
		case ch == ' ' || ch == '\t' || ch == '\r':
			l.advance()
		case ch == '\n' && l.braceDepth > 0:
			l.advance()
		case ch == '#':
			for !l.atEnd() && l.peek() != '\n' {
				l.advance()
			}
		default:
			return
		}
	}
}

func (l *Lexer) scan() (Token, error) {
	l.skipInsignificant()

	if l.atEnd() {
		return Token{Kind: TokenEOF, Pos: l.currentPos()}, nil
	}

	pos := l.currentPos()
	ch := l.peek()

	switch ch {
	case '\n':
		l.advance()
		return Token{Kind: TokenNewline, Literal: "\n", Pos: pos}, nil
	case '[':
		l.advance()
		return Token{Kind: TokenLBracket, Literal: "[", Pos: pos}, nil
	case ']':
		l.advance()
		return Token{Kind: TokenRBracket, Literal: "]", Pos: pos}, nil
	case '{':
		l.advance()
		l.braceDepth++
		return Token{Kind: TokenLBrace, Literal: "{", Pos: pos}, nil
	case '}':
		l.advance()
		if l.braceDepth > 0 {
			l.braceDepth--
		}
		return Token{Kind: TokenRBrace, Literal: "}", Pos: pos}, nil
	case ':':
		l.advance()
		return Token{Kind: TokenColon, Literal: ":", Pos: pos}, nil
	case ',':
		l.advance()
		return Token{Kind: TokenComma, Literal: ",", Pos: pos}, nil
	case '*':
		l.advance()
		return Token{Kind: TokenStar, Literal: "*", Pos: pos}, nil
	case '+':
		l.advance()
		return Token{Kind: TokenPlus, Literal: "+", Pos: pos}, nil
	case '?':
		l.advance()
		return Token{Kind: TokenQuestion, Literal: "?", Pos: pos}, nil
	case '-':
		if l.pos+1 < len(l.src) && l.src[l.pos+1] == '-' {
			l.advance()
			l.advance()
			return Token{Kind: TokenDashes, Literal: "--", Pos: pos}, nil
		}
		l.advance()
		return Token{}, &LexError{Pos: pos, Char: '-'}
	case '"', '\'', '`':
		return l.scanString()
	}

	if isIdentStart(ch) {
		return l.scanIdent()
	}

	r, _ := utf8.DecodeRune(l.src[l.pos:])
	l.advance()
	return Token{}, &LexError{Pos: pos, Char: r}
}

// scanString scans a quoted name or option value. All three quote styles
// of the markup are accepted; a backslash escapes the active quote
// character and itself, any other escape is kept verbatim.
func (l *Lexer) scanString() (Token, error) {
	pos := l.currentPos()
	quote := l.advance()

	var sb strings.Builder
	for {
		if l.atEnd() || l.peek() == '\n' {
			return Token{}, &LexError{Pos: pos, Message: "unterminated quoted string"}
		}
		ch := l.advance()
		if ch == quote {
			return Token{Kind: TokenString, Literal: sb.String(), Pos: pos}, nil
		}
		if ch == '\\' {
			if l.atEnd() {
				return Token{}, &LexError{Pos: pos, Message: "unterminated quoted string"}
			}
			esc := l.advance()
			switch esc {
			case quote, '\\':
				sb.WriteByte(esc)
			default:
				sb.WriteByte('\\')
				sb.WriteByte(esc)
			}
			continue
		}
		sb.WriteByte(ch)
	}
}

func (l *Lexer) scanIdent() (Token, error) {
	pos := l.currentPos()
	start := l.pos

	for !l.atEnd() {
		ch := l.peek()
		if isIdentPart(ch) {
			l.advance()
			continue
		}
		// A single interior hyphen is part of the name (e.g. border-color);
		// a double hyphen is the relationship connector and ends the token.
		if ch == '-' && l.pos+1 < len(l.src) && isIdentPart(l.src[l.pos+1]) {
			l.advance()
			continue
		}
		break
	}

	return Token{Kind: TokenIdent, Literal: string(l.src[start:l.pos]), Pos: pos}, nil
}

func isIdentStart(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch >= '0' && ch <= '9' || ch == '_'
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch)
}
