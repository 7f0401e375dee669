// Package lexer turns LPS1 source text into tokens.
//
// Every LPS1 token is a single character: the command letters
// = G + - * / % P I W { } # <, lowercase variable letters and decimal
// digits. Carriage returns are stripped up front, so token positions
// refer to the normalized source.
package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/phillarmonic/lpsc/internal/errors"
)

// Lexer walks LPS1 source one byte at a time.
type Lexer struct {
	input    string
	offset   int  // index of ch within input
	rdOffset int  // index of the byte after ch
	ch       byte // byte under examination, 0 at end of input or for a NUL byte
	line     int
	column   int
}

// NewLexer prepares a lexer over input with carriage returns removed.
func NewLexer(input string) *Lexer {
	l := &Lexer{input: strings.ReplaceAll(input, "\r", ""), line: 1}
	l.advance()
	return l
}

// advance loads the next byte and moves the line and column counters.
func (l *Lexer) advance() {
	if l.rdOffset < len(l.input) {
		l.ch = l.input[l.rdOffset]
	} else {
		l.ch = 0
	}
	l.offset = l.rdOffset
	l.rdOffset++

	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
}

// NextToken scans and returns the next token. After the end of input it
// keeps returning EOF tokens, so callers may pull past the end. A
// character outside the LPS1 alphabet yields a LexicalError and the
// lexer stays put; a NUL byte in the source is such a character, not
// end of input.
func (l *Lexer) NextToken() (Token, error) {
	l.skipSpace()

	tok := Token{
		Line:     l.line,
		Column:   l.column,
		Position: l.offset,
	}

	// ch is 0 both past the end of input and for a NUL byte in the
	// source; only the former is EOF.
	if l.ch == 0 && l.offset >= len(l.input) {
		tok.Type = EOF
		tok.Literal = ""
		return tok, nil
	}

	switch l.ch {
	case '=':
		tok.Type = ASSIGN
	case 'G':
		tok.Type = GET
	case '+':
		tok.Type = PLUS
	case '-':
		tok.Type = MINUS
	case '*':
		tok.Type = STAR
	case '/':
		tok.Type = SLASH
	case '%':
		tok.Type = PERCENT
	case 'P':
		tok.Type = PRINT
	case 'I':
		tok.Type = IF
	case 'W':
		tok.Type = WHILE
	case '{':
		tok.Type = LBRACE
	case '}':
		tok.Type = RBRACE
	case '#':
		tok.Type = HASH
	case '<':
		tok.Type = LESS
	default:
		if isLowercaseLetter(l.ch) {
			tok.Type = VARIABLE
		} else if isDigit(l.ch) {
			tok.Type = NUMBER
		} else {
			// l.ch is only the first byte of a multi-byte character.
			r, _ := utf8.DecodeRuneInString(l.input[l.offset:])
			return Token{}, &errors.LexicalError{Char: r, Line: l.line, Column: l.column}
		}
	}

	tok.Literal = string(l.ch)
	l.advance()
	return tok, nil
}

// AllTokens scans the remaining input and returns every token through
// EOF inclusive. On a lexical error it returns the tokens scanned so
// far together with the error.
func (l *Lexer) AllTokens() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens, nil
		}
	}
}

// skipSpace moves past spaces, tabs and newlines.
func (l *Lexer) skipSpace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' {
		l.advance()
	}
}

func isLowercaseLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
