package parser

import (
	"errors"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/sergev/uvl/lang"
	"github.com/sergev/uvl/token"
)

// DefaultSourceName labels diagnostics when the caller supplies no name.
const DefaultSourceName = "input"

// Scan converts source text into tokens terminated by a single EOF token.
func Scan(src string) ([]token.Token, error) {
	return ScanNamed(DefaultSourceName, src)
}

// ScanNamed is Scan with the source name used in lexical diagnostics.
func ScanNamed(name, src string) ([]token.Token, error) {
	lx := newLexer(name, src)
	if err := lx.scan(); err != nil {
		return nil, err
	}
	return lx.tokens, nil
}

type lexer struct {
	name   string
	src    string
	start  int // byte offset of the token being scanned
	pos    int
	line   int
	tokens []token.Token
}

func newLexer(name, src string) *lexer {
	return &lexer{
		name: name,
		src:  src,
		line: 1,
	}
}

func (lx *lexer) scan() error {
	for !lx.atEnd() {
		lx.start = lx.pos
		if err := lx.scanToken(); err != nil {
			return err
		}
	}
	lx.tokens = append(lx.tokens, token.New(token.EOF, "", lx.line))
	return nil
}

func (lx *lexer) atEnd() bool {
	return lx.pos >= len(lx.src)
}

func (lx *lexer) readRune() rune {
	r, w := utf8.DecodeRuneInString(lx.src[lx.pos:])
	lx.pos += w
	return r
}

func (lx *lexer) peek() rune {
	if lx.atEnd() {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(lx.src[lx.pos:])
	return r
}

func (lx *lexer) peekNext() rune {
	if lx.atEnd() {
		return 0
	}
	_, w := utf8.DecodeRuneInString(lx.src[lx.pos:])
	if lx.pos+w >= len(lx.src) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(lx.src[lx.pos+w:])
	return r
}

func (lx *lexer) match(expected rune) bool {
	if lx.atEnd() || lx.peek() != expected {
		return false
	}
	lx.readRune()
	return true
}

func (lx *lexer) scanToken() error {
	r := lx.readRune()
	switch r {
	case '(':
		lx.add(token.LeftParen)
	case ')':
		lx.add(token.RightParen)
	case '{':
		lx.add(token.LeftBrace)
	case '}':
		lx.add(token.RightBrace)
	case ',':
		lx.add(token.Comma)
	case '.':
		lx.add(token.Dot)
	case '-':
		lx.add(token.Minus)
	case '+':
		lx.add(token.Plus)
	case ';':
		lx.add(token.Semicolon)
	case '*':
		lx.add(token.Star)
	case '!':
		lx.addEither('=', token.BangEqual, token.Bang)
	case '=':
		lx.addEither('=', token.EqualEqual, token.Equal)
	case '<':
		lx.addEither('=', token.LessEqual, token.Less)
	case '>':
		lx.addEither('=', token.GreaterEqual, token.Greater)
	case '/':
		if lx.match('/') {
			for !lx.atEnd() && lx.peek() != '\n' {
				lx.readRune()
			}
			return nil
		}
		lx.add(token.Slash)
	case '"':
		return lx.scanString()
	case ' ', '\r', '\t':
	case '\n':
		lx.line++
	default:
		switch {
		case isDigit(r):
			return lx.scanNumber()
		case unicode.IsLetter(r):
			lx.scanIdentifier()
		case r == utf8.RuneError:
			return lx.errorf("Invalid UTF-8 encoding at byte %d", lx.start)
		default:
			return lx.errorf("Unexpected character '%c'", r)
		}
	}
	return nil
}

func (lx *lexer) add(tt token.Type) {
	lx.addLiteral(tt, nil, lx.line)
}

func (lx *lexer) addLiteral(tt token.Type, literal interface{}, line int) {
	lx.tokens = append(lx.tokens, token.Token{
		Type:    tt,
		Lexeme:  lx.src[lx.start:lx.pos],
		Literal: literal,
		Line:    line,
	})
}

func (lx *lexer) addEither(next rune, two, one token.Type) {
	if lx.match(next) {
		lx.add(two)
		return
	}
	lx.add(one)
}

func (lx *lexer) scanString() error {
	startLine := lx.line
	for !lx.atEnd() && lx.peek() != '"' {
		if lx.readRune() == '\n' {
			lx.line++
		}
	}
	if lx.atEnd() {
		err := lx.errorAt(startLine, "Unterminated string")
		err.Incomplete = true
		return err
	}
	lx.readRune() // closing quote
	value := lx.src[lx.start+1 : lx.pos-1]
	lx.addLiteral(token.String, value, startLine)
	return nil
}

func (lx *lexer) scanNumber() error {
	for isDigit(lx.peek()) {
		lx.readRune()
	}
	if lx.peek() == '.' && isDigit(lx.peekNext()) {
		lx.readRune()
		for isDigit(lx.peek()) {
			lx.readRune()
		}
	}
	lexeme := lx.src[lx.start:lx.pos]
	value, err := strconv.ParseFloat(lexeme, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return lx.errorf("Invalid number literal %s", lexeme)
	}
	lx.addLiteral(token.Number, value, lx.line)
	return nil
}

func (lx *lexer) scanIdentifier() {
	for {
		r := lx.peek()
		if lx.atEnd() || !(unicode.IsLetter(r) || unicode.IsDigit(r)) {
			break
		}
		lx.readRune()
	}
	lx.add(token.Lookup(lx.src[lx.start:lx.pos]))
}

func (lx *lexer) errorf(format string, args ...interface{}) error {
	return lang.Errorf(lang.LexError, lang.NewContext(lx.name, lx.line), format, args...)
}

func (lx *lexer) errorAt(line int, reason string) *lang.Error {
	return lang.Errorf(lang.LexError, lang.NewContext(lx.name, line), "%s", reason)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
