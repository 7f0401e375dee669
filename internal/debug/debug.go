// Package debug prints pipeline internals for troubleshooting LPS1
// programs: the raw token stream, the parsed command tree and its
// JSON form.
package debug

import (
	"encoding/json"
	"fmt"

	"github.com/phillarmonic/lpsc/internal/ast"
	"github.com/phillarmonic/lpsc/internal/lexer"
	"github.com/phillarmonic/lpsc/internal/parser"
)

// DebugTokens lexes input from scratch and prints one line per token.
// Lexing stops at the first invalid character, like the compiler does.
func DebugTokens(input string) {
	fmt.Println("=== TOKENS ===")
	fmt.Printf("source: %q\n", input)

	l := lexer.NewLexer(input)
	for i := 0; ; i++ {
		tok, err := l.NextToken()
		if err != nil {
			fmt.Printf("%4d  lexical error: %v\n", i, err)
			break
		}
		fmt.Printf("%4d  %-10s %q  line %d, column %d\n", i, tok.Type, tok.Literal, tok.Line, tok.Column)
		if tok.Type == lexer.EOF {
			break
		}
	}
	fmt.Println()
}

// DebugAST prints the command tree, one node per line.
func DebugAST(program *ast.Program) {
	fmt.Println("=== PROGRAM TREE ===")
	if program == nil {
		fmt.Println("no program")
		fmt.Println()
		return
	}

	fmt.Printf("%d top-level command(s)\n", len(program.Commands))
	for _, cmd := range program.Commands {
		walk(cmd, "  ")
	}
	fmt.Println()
}

// walk prints cmd and recurses into guarded and grouped commands.
func walk(cmd ast.Command, indent string) {
	switch c := cmd.(type) {
	case *ast.Assign:
		fmt.Printf("%sassign %s <- %s\n", indent, c.Name, c.Value.String())
	case *ast.Get:
		fmt.Printf("%sget %s\n", indent, c.Name)
	case *ast.BinaryOp:
		fmt.Printf("%sbinary %s <- %s %s %s\n", indent, c.Name, c.Left.String(), c.Op, c.Right.String())
	case *ast.Print:
		fmt.Printf("%sprint %s\n", indent, c.Value.String())
	case *ast.If:
		fmt.Printf("%sif %s\n", indent, c.Cond.String())
		walk(c.Body, indent+"  ")
	case *ast.While:
		fmt.Printf("%swhile %s\n", indent, c.Cond.String())
		walk(c.Body, indent+"  ")
	case *ast.Composite:
		fmt.Printf("%sblock of %d\n", indent, len(c.Commands))
		for _, inner := range c.Commands {
			walk(inner, indent+"  ")
		}
	default:
		fmt.Printf("%sunknown node %T\n", indent, cmd)
	}
}

// DebugParseError reports the single diagnostic parsing can produce.
func DebugParseError(err error) {
	fmt.Println("=== PARSE STATUS ===")
	if err == nil {
		fmt.Println("ok")
	} else {
		fmt.Printf("error: %v\n", err)
	}
	fmt.Println()
}

// DebugJSON dumps the tree as indented JSON.
func DebugJSON(program *ast.Program) {
	fmt.Println("=== TREE JSON ===")
	if program == nil {
		fmt.Println("no program")
		fmt.Println()
		return
	}

	out, err := json.MarshalIndent(program, "", "  ")
	if err != nil {
		fmt.Printf("cannot encode tree: %v\n", err)
		return
	}
	fmt.Println(string(out))
	fmt.Println()
}

// DebugFull runs every dump in pipeline order and reports what the
// parser produced.
func DebugFull(input string) (*ast.Program, error) {
	fmt.Println("=== DEBUG SESSION ===")
	fmt.Printf("%d byte(s): %q\n", len(input), preview(input, 100))
	fmt.Println()

	DebugTokens(input)

	var program *ast.Program
	p, err := parser.NewParser(lexer.NewLexer(input))
	if err == nil {
		program, err = p.ParseProgram()
	}

	DebugParseError(err)
	DebugAST(program)

	return program, err
}

func preview(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
