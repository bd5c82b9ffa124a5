// Package lexer converts slox source text into a token stream.
//
// The scanner never aborts on a bad character or an unterminated
// string: it records the problem and keeps going, so a single run
// surfaces every lexical issue in the source rather than just the
// first one.
package lexer

import (
	"fmt"
	"strconv"

	"github.com/loxlang/slox/token"
)

// Lexer holds the scanning state for one source string.
type Lexer struct {
	src     string
	start   int // offset of the lexeme currently being scanned
	current int // offset of the next byte to consume
	line    int
	errors  []string
}

// New creates a Lexer ready to scan src.
func New(src string) *Lexer {
	return &Lexer{src: src, line: 1}
}

// Errors returns the scan errors accumulated so far, one message per
// offending character or unterminated construct.
func (l *Lexer) Errors() []string {
	return l.errors
}

// ScanTokens tokenizes the entire source and returns every token up to
// and including a terminating EOF, plus any scan errors recorded along
// the way.
func (l *Lexer) ScanTokens() ([]token.Token, []string) {
	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens, l.errors
}

// NextToken scans and returns the next token, skipping whitespace and
// line comments first. Once the source is exhausted it returns an EOF
// token on every subsequent call.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespaceAndComments()
	l.start = l.current

	if l.atEnd() {
		return token.New(token.EOF, "", l.line)
	}

	c := l.advance()

	switch {
	case isAlpha(c):
		return l.identifier()
	case isDigit(c):
		return l.number()
	}

	switch c {
	case '(':
		return l.make(token.LeftParen)
	case ')':
		return l.make(token.RightParen)
	case '{':
		return l.make(token.LeftBrace)
	case '}':
		return l.make(token.RightBrace)
	case ',':
		return l.make(token.Comma)
	case '.':
		return l.make(token.Dot)
	case '-':
		return l.make(token.Minus)
	case '+':
		return l.make(token.Plus)
	case ';':
		return l.make(token.Semicolon)
	case '*':
		return l.make(token.Star)
	case '/':
		return l.make(token.Slash)
	case '!':
		return l.makeTwoChar('=', token.BangEqual, token.Bang)
	case '=':
		return l.makeTwoChar('=', token.EqualEqual, token.Equal)
	case '<':
		return l.makeTwoChar('=', token.LessEqual, token.Less)
	case '>':
		return l.makeTwoChar('=', token.GreaterEqual, token.Greater)
	case '"':
		return l.string()
	default:
		l.errorf("Unexpected character '%c'.", c)
		return l.NextToken()
	}
}

func (l *Lexer) atEnd() bool {
	return l.current >= len(l.src)
}

func (l *Lexer) advance() byte {
	c := l.src[l.current]
	l.current++
	return c
}

func (l *Lexer) peek() byte {
	if l.atEnd() {
		return 0
	}
	return l.src[l.current]
}

func (l *Lexer) peekNext() byte {
	if l.current+1 >= len(l.src) {
		return 0
	}
	return l.src[l.current+1]
}

// match consumes the current character if it equals want, reporting
// whether it did. Used for the one-or-two-char operators.
func (l *Lexer) match(want byte) bool {
	if l.atEnd() || l.src[l.current] != want {
		return false
	}
	l.current++
	return true
}

func (l *Lexer) make(kind token.Kind) token.Token {
	return token.New(kind, l.src[l.start:l.current], l.line)
}

func (l *Lexer) makeTwoChar(second byte, two, one token.Kind) token.Token {
	if l.match(second) {
		return l.make(two)
	}
	return l.make(one)
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch l.peek() {
		case ' ', '\r', '\t':
			l.current++
		case '\n':
			l.line++
			l.current++
		case '/':
			if l.peekNext() == '/' {
				for l.peek() != '\n' && !l.atEnd() {
					l.current++
				}
			} else {
				return
			}
		default:
			return
		}
	}
}

func (l *Lexer) string() token.Token {
	for l.peek() != '"' && !l.atEnd() {
		if l.peek() == '\n' {
			l.line++
		}
		l.current++
	}
	if l.atEnd() {
		l.errorf("Unterminated string.")
		return token.New(token.EOF, "", l.line)
	}
	l.current++ // consume closing quote
	value := l.src[l.start+1 : l.current-1]
	return token.NewLiteral(token.String, l.src[l.start:l.current], value, l.line)
}

func (l *Lexer) number() token.Token {
	for isDigit(l.peek()) {
		l.current++
	}
	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.current++ // consume the '.'
		for isDigit(l.peek()) {
			l.current++
		}
	}
	lexeme := l.src[l.start:l.current]
	value, _ := strconv.ParseFloat(lexeme, 64)
	return token.NewLiteral(token.Number, lexeme, value, l.line)
}

func (l *Lexer) identifier() token.Token {
	for isAlphaNumeric(l.peek()) {
		l.current++
	}
	lexeme := l.src[l.start:l.current]
	return token.New(token.LookupIdentifier(lexeme), lexeme, l.line)
}

func (l *Lexer) errorf(format string, args ...interface{}) {
	l.errors = append(l.errors, fmt.Sprintf("line %d: %s", l.line, fmt.Sprintf(format, args...)))
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
