// Package errors defines the error kinds reported by the LPS1 compiler
// and a terminal formatter for them.
//
// The error types carry positions as plain line/column integers instead
// of lexer tokens so that the lexer and parser can both depend on this
// package without an import cycle.
package errors

import (
	"fmt"
	"strings"
)

// Positioner is implemented by errors that point at a place in the
// source text. Line and column are 1-based.
type Positioner interface {
	Position() (line, column int)
}

// LexicalError reports a character outside the LPS1 alphabet. Char
// holds the full decoded rune, not just its first byte.
type LexicalError struct {
	Char   rune
	Line   int
	Column int
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("invalid character %q at line %d, column %d", e.Char, e.Line, e.Column)
}

// Position returns the location of the offending character.
func (e *LexicalError) Position() (int, int) {
	return e.Line, e.Column
}

// SyntaxError reports a token that does not fit the grammar. Got and
// Want hold token kind names, or a short phrase when several kinds
// would have been accepted.
type SyntaxError struct {
	Got    string
	Want   string
	Line   int
	Column int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("expected %s, found %s at line %d, column %d", e.Want, e.Got, e.Line, e.Column)
}

// Position returns the location of the unexpected token.
func (e *SyntaxError) Position() (int, int) {
	return e.Line, e.Column
}

// UnknownCommandError reports a token in command position that does not
// start any LPS1 command.
type UnknownCommandError struct {
	Command string
	Line    int
	Column  int
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command '%s' at line %d, column %d", e.Command, e.Line, e.Column)
}

// Position returns the location of the unrecognized token.
func (e *UnknownCommandError) Position() (int, int) {
	return e.Line, e.Column
}

// Format renders err for terminal display. Errors that implement
// Positioner get their source line printed with a caret under the
// offending column; anything else renders as a plain one-line message.
func Format(err error, filename, source string) string {
	var result strings.Builder

	result.WriteString(fmt.Sprintf("\033[31mError\033[0m: %s\n", err.Error()))

	pos, ok := err.(Positioner)
	if !ok {
		return result.String()
	}
	line, column := pos.Position()

	result.WriteString(fmt.Sprintf("  \033[36m--> %s:%d:%d\033[0m\n", filename, line, column))

	lines := strings.Split(strings.ReplaceAll(source, "\r", ""), "\n")
	if line > 0 && line <= len(lines) {
		sourceLine := lines[line-1]
		lineNumStr := fmt.Sprintf("%d", line)

		result.WriteString(fmt.Sprintf("   \033[34m%s\033[0m | %s\n", lineNumStr, sourceLine))

		spaces := strings.Repeat(" ", len(lineNumStr)) + " | " + strings.Repeat(" ", column-1)
		result.WriteString(fmt.Sprintf("   %s\033[31m^\033[0m\n", spaces))
	}

	if hint := suggestion(err); hint != "" {
		result.WriteString(fmt.Sprintf("   \033[33mHelp:\033[0m %s\n", hint))
	}

	return result.String()
}

// suggestion returns a hint for common mistakes, or "" when there is
// nothing useful to say.
func suggestion(err error) string {
	switch e := err.(type) {
	case *LexicalError:
		if e.Char >= 'A' && e.Char <= 'Z' {
			return "only G, P, I and W are command letters; variables are lowercase a-z"
		}
		return "valid characters are = G + - * / % P I W { } # < plus lowercase letters and digits"
	case *SyntaxError:
		switch e.Want {
		case "VARIABLE":
			return "variable names are single lowercase letters (a-z)"
		case "NUMBER":
			return "number literals are single digits (0-9)"
		case "VARIABLE or NUMBER":
			return "a value is a variable letter or a single digit"
		case "comparison operator":
			return "comparisons use '=' (equal), '<' (less than) or '#' (not equal)"
		}
	case *UnknownCommandError:
		return "commands start with one of = G + - * / % P I W {"
	}
	return ""
}
