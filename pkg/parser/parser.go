package parser

import (
	"fmt"

	"github.com/davechallis/erd-go/pkg/ast"
)

// Parse parses markup source text and returns a Document.
// Parsing is all-or-nothing: the first deviation from the grammar aborts
// with a *ParseError (or *LexError from the tokenizer) and no partial
// document is returned.
func Parse(src []byte) (*ast.Document, error) {
	p := &parser{
		lex:      NewLexer(src),
		doc:      &ast.Document{},
		seen:     make(map[string]bool),
		prologue: true,
	}
	if err := p.parseDocument(); err != nil {
		return nil, err
	}
	return p.doc, nil
}

type parser struct {
	lex      *Lexer
	doc      *ast.Document
	seen     map[string]bool // declared entity names
	current  *ast.Entity     // entity that attribute lines attach to
	prologue bool            // still before the first entity/attribute/relationship
}

func (p *parser) peek() (Token, error) {
	return p.lex.Peek()
}

func (p *parser) next() (Token, error) {
	return p.lex.Next()
}

func (p *parser) expect(kind TokenKind) (Token, error) {
	tok, err := p.next()
	if err != nil {
		return Token{}, err
	}
	if tok.Kind != kind {
		return Token{}, &ParseError{
			Pos:      tok.Pos,
			Expected: kind.String(),
			Found:    describe(tok),
		}
	}
	return tok, nil
}

func describe(tok Token) string {
	switch tok.Kind {
	case TokenEOF, TokenNewline:
		return tok.Kind.String()
	default:
		return fmt.Sprintf("%s %q", tok.Kind, tok.Literal)
	}
}

func (p *parser) skipNewlines() error {
	for {
		tok, err := p.peek()
		if err != nil {
			return err
		}
		if tok.Kind != TokenNewline {
			return nil
		}
		_, _ = p.next()
	}
}

func (p *parser) parseDocument() error {
	for {
		if err := p.skipNewlines(); err != nil {
			return err
		}
		tok, err := p.peek()
		if err != nil {
			return err
		}

		switch tok.Kind {
		case TokenEOF:
			return nil

		case TokenLBracket:
			if err := p.parseEntity(); err != nil {
				return err
			}

		case TokenStar, TokenPlus:
			markers, nameTok, err := p.parseAttrMarkers()
			if err != nil {
				return err
			}
			if err := p.parseAttribute(nameTok, markers); err != nil {
				return err
			}

		case TokenIdent, TokenString:
			nameTok, _ := p.next()
			if p.prologue && nameTok.Kind == TokenIdent && isDirective(nameTok.Literal) {
				follow, err := p.peek()
				if err != nil {
					return err
				}
				if follow.Kind == TokenLBrace {
					if err := p.parseDirective(nameTok); err != nil {
						return err
					}
					continue
				}
			}
			if err := p.parseStatement(nameTok); err != nil {
				return err
			}

		default:
			_, _ = p.next()
			return &ParseError{
				Pos:      tok.Pos,
				Expected: "entity, attribute, or relationship",
				Found:    describe(tok),
			}
		}
	}
}

// parseStatement handles a line starting with a bare name: either an
// attribute of the current entity or a relationship statement. A
// cardinality symbol (or a second name) after the first token means
// a relationship; anything else is an attribute line.
func (p *parser) parseStatement(nameTok Token) error {
	follow, err := p.peek()
	if err != nil {
		return err
	}

	switch follow.Kind {
	case TokenColon, TokenLBrace, TokenNewline, TokenEOF:
		return p.parseAttribute(nameTok, markerSet{})
	default:
		return p.parseRelation(nameTok)
	}
}

func isDirective(name string) bool {
	switch name {
	case "title", "header", "entity", "relationship":
		return true
	}
	return false
}

// parseDirective parses a document-level option block such as
// `title {label: "Schema"}`. The directive name token has been consumed.
func (p *parser) parseDirective(nameTok Token) error {
	opts, err := p.parseOptionBlock()
	if err != nil {
		return err
	}
	switch nameTok.Literal {
	case "title":
		p.doc.Title = append(p.doc.Title, opts...)
	case "header":
		p.doc.Header = append(p.doc.Header, opts...)
	case "entity":
		p.doc.Entity = append(p.doc.Entity, opts...)
	case "relationship":
		p.doc.Relationship = append(p.doc.Relationship, opts...)
	}
	return p.endOfLine()
}

func (p *parser) parseEntity() error {
	open, _ := p.next() // consume '['

	nameTok, err := p.expectName()
	if err != nil {
		return err
	}
	if _, err := p.expect(TokenRBracket); err != nil {
		return err
	}

	if p.seen[nameTok.Literal] {
		return &ParseError{
			Pos:     nameTok.Pos,
			Message: fmt.Sprintf("duplicate entity %q", nameTok.Literal),
		}
	}

	opts, err := p.optionalOptions()
	if err != nil {
		return err
	}

	e := &ast.Entity{Name: nameTok.Literal, Options: opts, Pos: open.Pos}
	p.doc.Entities = append(p.doc.Entities, e)
	p.seen[e.Name] = true
	p.current = e
	p.prologue = false

	return p.endOfLine()
}

type markerSet struct {
	isKey bool
	isFK  bool
}

// parseAttrMarkers consumes the leading '*' and '+' markers of an attribute
// line and the attribute name that follows. Markers may repeat and combine.
func (p *parser) parseAttrMarkers() (markerSet, Token, error) {
	var m markerSet
	for {
		tok, err := p.peek()
		if err != nil {
			return m, Token{}, err
		}
		switch tok.Kind {
		case TokenStar:
			m.isKey = true
			_, _ = p.next()
		case TokenPlus:
			m.isFK = true
			_, _ = p.next()
		default:
			nameTok, err := p.expectName()
			return m, nameTok, err
		}
	}
}

func (p *parser) parseAttribute(nameTok Token, markers markerSet) error {
	if p.current == nil {
		return &ParseError{
			Pos:     nameTok.Pos,
			Message: fmt.Sprintf("attribute %q has no enclosing entity", nameTok.Literal),
		}
	}
	p.prologue = false

	attr := &ast.Attribute{
		Name:  nameTok.Literal,
		IsKey: markers.isKey,
		IsFK:  markers.isFK,
		Pos:   nameTok.Pos,
	}

	follow, err := p.peek()
	if err != nil {
		return err
	}
	if follow.Kind == TokenColon {
		_, _ = p.next()
		label := p.lex.ScanFreeText()
		if label == "" {
			return &ParseError{
				Pos:      follow.Pos,
				Expected: "type label after ':'",
				Found:    "end of line",
			}
		}
		attr.Type = label
	}

	opts, err := p.optionalOptions()
	if err != nil {
		return err
	}
	attr.Options = opts

	p.current.Attrs = append(p.current.Attrs, attr)
	return p.endOfLine()
}

func (p *parser) parseRelation(leftTok Token) error {
	p.prologue = false

	leftCard, err := p.expectCardinality()
	if err != nil {
		return err
	}
	if _, err := p.expect(TokenDashes); err != nil {
		return err
	}
	rightCard, err := p.expectCardinality()
	if err != nil {
		return err
	}
	rightTok, err := p.expectName()
	if err != nil {
		return err
	}

	opts, err := p.optionalOptions()
	if err != nil {
		return err
	}

	p.doc.Relations = append(p.doc.Relations, &ast.Relation{
		Left:      leftTok.Literal,
		Right:     rightTok.Literal,
		LeftCard:  leftCard,
		RightCard: rightCard,
		Options:   opts,
		Pos:       leftTok.Pos,
	})
	return p.endOfLine()
}

// expectCardinality consumes one token and maps it onto the closed
// cardinality set. Anything outside the set is a parse error naming the
// offending symbol; there is no default.
func (p *parser) expectCardinality() (ast.Cardinality, error) {
	tok, err := p.next()
	if err != nil {
		return 0, err
	}
	switch {
	case tok.Kind == TokenQuestion:
		return ast.ZeroOne, nil
	case tok.Kind == TokenStar:
		return ast.ZeroPlus, nil
	case tok.Kind == TokenPlus:
		return ast.OnePlus, nil
	case tok.Kind == TokenIdent && tok.Literal == "1":
		return ast.One, nil
	}
	return 0, &ParseError{
		Pos:      tok.Pos,
		Expected: `cardinality "?", "1", "*" or "+"`,
		Found:    describe(tok),
	}
}

// expectName accepts a bare identifier or a quoted name.
func (p *parser) expectName() (Token, error) {
	tok, err := p.next()
	if err != nil {
		return Token{}, err
	}
	if tok.Kind != TokenIdent && tok.Kind != TokenString {
		return Token{}, &ParseError{
			Pos:      tok.Pos,
			Expected: "name",
			Found:    describe(tok),
		}
	}
	return tok, nil
}

// optionalOptions parses a trailing option block if one follows.
func (p *parser) optionalOptions() (ast.OptionSet, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind != TokenLBrace {
		return nil, nil
	}
	return p.parseOptionBlock()
}

// parseOptionBlock parses `{ key: "value", ... }`. Blocks may span several
// lines, contain comments, and end with a trailing comma.
func (p *parser) parseOptionBlock() (ast.OptionSet, error) {
	if _, err := p.expect(TokenLBrace); err != nil {
		return nil, err
	}

	var opts ast.OptionSet
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind == TokenRBrace {
			_, _ = p.next()
			return opts, nil
		}

		keyTok, err := p.next()
		if err != nil {
			return nil, err
		}
		if keyTok.Kind != TokenIdent {
			return nil, &ParseError{
				Pos:      keyTok.Pos,
				Expected: "option key",
				Found:    describe(keyTok),
			}
		}
		if _, err := p.expect(TokenColon); err != nil {
			return nil, err
		}
		valTok, err := p.next()
		if err != nil {
			return nil, err
		}
		if valTok.Kind != TokenString {
			return nil, &ParseError{
				Pos:      valTok.Pos,
				Expected: "quoted option value",
				Found:    describe(valTok),
			}
		}
		opts = append(opts, ast.Option{Key: keyTok.Literal, Value: valTok.Literal, Pos: keyTok.Pos})

		sep, err := p.peek()
		if err != nil {
			return nil, err
		}
		switch sep.Kind {
		case TokenComma:
			_, _ = p.next()
		case TokenRBrace:
			// closed on the next loop iteration
		default:
			return nil, &ParseError{
				Pos:      sep.Pos,
				Expected: "',' or '}'",
				Found:    describe(sep),
			}
		}
	}
}

// endOfLine requires the statement to be followed by a newline or EOF.
func (p *parser) endOfLine() error {
	tok, err := p.peek()
	if err != nil {
		return err
	}
	switch tok.Kind {
	case TokenNewline:
		_, _ = p.next()
		return nil
	case TokenEOF:
		return nil
	default:
		return &ParseError{
			Pos:      tok.Pos,
			Expected: "end of line",
			Found:    describe(tok),
		}
	}
}
