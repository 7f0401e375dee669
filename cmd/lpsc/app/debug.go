package app

import (
	"fmt"
	"os"

	"github.com/phillarmonic/lpsc/internal/ast"
	"github.com/phillarmonic/lpsc/internal/debug"
	"github.com/phillarmonic/lpsc/internal/errors"
	"github.com/phillarmonic/lpsc/internal/lexer"
	"github.com/phillarmonic/lpsc/internal/parser"
)

// Domain: Debug Mode
// This file resolves what to inspect and runs the requested dumps

// HandleDebugMode prints pipeline internals for a program instead of
// compiling it. With no specific flag set, everything is shown.
func HandleDebugMode(debugInput string, full, tokens, tree, asJSON bool, args []string) error {
	source, name, err := debugSource(debugInput, args)
	if err != nil {
		return err
	}

	if full || !(tokens || tree || asJSON) {
		_, _ = debug.DebugFull(source)
		return nil
	}

	if tokens {
		debug.DebugTokens(source)
	}

	if tree || asJSON {
		program, err := parseQuietly(source)
		if err != nil {
			fmt.Fprint(os.Stderr, errors.Format(err, name, source))
			return nil
		}
		if tree {
			debug.DebugAST(program)
		}
		if asJSON {
			debug.DebugJSON(program)
		}
	}

	return nil
}

// debugSource picks the text to inspect: --debug-input wins, otherwise
// the usual source discovery applies.
func debugSource(debugInput string, args []string) (source, name string, err error) {
	if debugInput != "" {
		return debugInput, "<debug-input>", nil
	}

	explicit := ""
	if len(args) > 0 {
		explicit = args[0]
	}
	file, err := FindSourceFile(explicit)
	if err != nil {
		return "", "", fmt.Errorf("no LPS1 program found for debugging: %w\n\nTo get started:\n  lpsc --init          # Create main.lps1", err)
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return "", "", fmt.Errorf("failed to read LPS1 program '%s': %w", file, err)
	}
	return string(data), file, nil
}

// parseQuietly parses without any debug printing.
func parseQuietly(source string) (*ast.Program, error) {
	p, err := parser.NewParser(lexer.NewLexer(source))
	if err != nil {
		return nil, err
	}
	return p.ParseProgram()
}
