// Package compiler wires the LPS1 pipeline together: lex, parse,
// generate, assemble.
package compiler

import (
	"fmt"
	"os"
	"strings"

	"github.com/phillarmonic/lpsc/internal/codegen"
	"github.com/phillarmonic/lpsc/internal/lexer"
	"github.com/phillarmonic/lpsc/internal/parser"
)

// Compile translates LPS1 source text into a complete C program. The
// same source always yields byte-identical output. Grammar errors come
// back unwrapped so callers can render them with position information.
func Compile(source string) (string, error) {
	l := lexer.NewLexer(source)

	p, err := parser.NewParser(l)
	if err != nil {
		return "", err
	}

	program, err := p.ParseProgram()
	if err != nil {
		return "", err
	}

	g := codegen.NewGenerator()
	if err := g.Generate(program); err != nil {
		return "", err
	}

	lines := []string{
		"#include <stdio.h>",
		"int main() {",
	}

	// A program that touches no variables still declares one, so the
	// declaration statement is never empty.
	if vars := g.Variables(); len(vars) > 0 {
		lines = append(lines, "    int "+strings.Join(vars, ", ")+";")
	} else {
		lines = append(lines, "    int dummy;")
	}
	lines = append(lines, "    char str[512];")

	lines = append(lines, g.Lines()...)

	// Every generated program ends with a read that waits for Enter.
	lines = append(lines,
		"    gets(str);",
		"    return 0;",
		"}",
	)

	return strings.Join(lines, "\n"), nil
}

// CompileFile reads inputPath, compiles it and writes the C program to
// outputPath. On any error nothing is written.
func CompileFile(inputPath, outputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("cannot read input file '%s': %w", inputPath, err)
	}

	code, err := Compile(string(data))
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, []byte(code), 0644); err != nil {
		return fmt.Errorf("cannot write output file '%s': %w", outputPath, err)
	}

	return nil
}
