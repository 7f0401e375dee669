package lexer

import "fmt"

// TokenType classifies the single character a token was scanned from.
type TokenType int

// The LPS1 alphabet. '=' is scanned as ASSIGN everywhere; the parser
// reads it as equality when it sits inside a guard.
const (
	EOF TokenType = iota

	VARIABLE // a single lowercase letter, a-z
	NUMBER   // a single digit, 0-9

	ASSIGN  // =
	GET     // G
	PLUS    // +
	MINUS   // -
	STAR    // *
	SLASH   // /
	PERCENT // %
	PRINT   // P
	IF      // I
	WHILE   // W

	LBRACE // {
	RBRACE // }

	HASH // #
	LESS // <
)

var tokenNames = map[TokenType]string{
	EOF:      "EOF",
	VARIABLE: "VARIABLE",
	NUMBER:   "NUMBER",
	ASSIGN:   "ASSIGN",
	GET:      "GET",
	PLUS:     "PLUS",
	MINUS:    "MINUS",
	STAR:     "STAR",
	SLASH:    "SLASH",
	PERCENT:  "PERCENT",
	PRINT:    "PRINT",
	IF:       "IF",
	WHILE:    "WHILE",
	LBRACE:   "LBRACE",
	RBRACE:   "RBRACE",
	HASH:     "HASH",
	LESS:     "LESS",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// Token carries one scanned character with its place in the source.
// Line and Column are 1-based; Position is the byte offset.
type Token struct {
	Type     TokenType
	Literal  string
	Line     int
	Column   int
	Position int
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q at line %d, column %d", t.Type, t.Literal, t.Line, t.Column)
}
