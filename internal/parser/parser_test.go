package parser

import (
	"testing"

	"github.com/phillarmonic/lpsc/internal/ast"
	"github.com/phillarmonic/lpsc/internal/errors"
	"github.com/phillarmonic/lpsc/internal/lexer"
)

func parseProgram(t *testing.T, input string) *ast.Program {
	t.Helper()

	p, err := NewParser(lexer.NewLexer(input))
	if err != nil {
		t.Fatalf("NewParser(%q) error: %v", input, err)
	}
	program, err := p.ParseProgram()
	if err != nil {
		t.Fatalf("ParseProgram(%q) error: %v", input, err)
	}
	return program
}

func parseError(t *testing.T, input string) error {
	t.Helper()

	p, err := NewParser(lexer.NewLexer(input))
	if err != nil {
		return err
	}
	_, err = p.ParseProgram()
	if err == nil {
		t.Fatalf("expected an error for %q", input)
	}
	return err
}

func TestParseProgramStructure(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"assign number", "=a5", "= a 5"},
		{"assign variable", "=ab", "= a b"},
		{"get", "Gx", "G x"},
		{"add", "+b a 1", "+ b a 1"},
		{"subtract", "-c b 2", "- c b 2"},
		{"multiply", "*d c c", "* d c c"},
		{"divide", "/e d 3", "/ e d 3"},
		{"modulo", "%f e 2", "% f e 2"},
		{"print number", "P5", "P 5"},
		{"print variable", "Pa", "P a"},
		{"if with equality guard", "I a=0 Pa", "I a == 0 P a"},
		{"if with less-than guard", "I a<b Pa", "I a < b P a"},
		{"if with not-equal guard", "I a#9 Pa", "I a != 9 P a"},
		{"while", "W i<3 Pi", "W i < 3 P i"},
		{"composite", "{ =a1 =b2 Pa }", "{ = a 1 = b 2 P a }"},
		{"if with composite body", "I a=0 { +b a 1 P b }", "I a == 0 { + b a 1 P b }"},
		{"loop over composite", "=a0 W a<3 { P a +a a 1 }", "= a 0\nW a < 3 { P a + a a 1 }"},
		{"commands across lines", "=a0\n=b1\nPa", "= a 0\n= b 1\nP a"},
		{"dense program without spaces", "=a5Pa", "= a 5\nP a"},
		{"nested composites", "{ { Pa } Pb }", "{ { P a } P b }"},
		{"empty program", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program := parseProgram(t, tt.input)
			if got := program.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

// The body of a guard is a single command, so a composite keeps its
// grouping when nested under If.
func TestParseIfWrapsComposite(t *testing.T) {
	program := parseProgram(t, "I a=0 { +b a 1 P b }")

	if len(program.Commands) != 1 {
		t.Fatalf("commands = %d, want 1", len(program.Commands))
	}

	ifCmd, ok := program.Commands[0].(*ast.If)
	if !ok {
		t.Fatalf("command = %T, want *ast.If", program.Commands[0])
	}
	if ifCmd.Cond.Name != "a" || ifCmd.Cond.Op != "==" {
		t.Errorf("condition = %s %s, want a ==", ifCmd.Cond.Name, ifCmd.Cond.Op)
	}

	body, ok := ifCmd.Body.(*ast.Composite)
	if !ok {
		t.Fatalf("body = %T, want *ast.Composite", ifCmd.Body)
	}
	if len(body.Commands) != 2 {
		t.Fatalf("body commands = %d, want 2", len(body.Commands))
	}

	add, ok := body.Commands[0].(*ast.BinaryOp)
	if !ok {
		t.Fatalf("body[0] = %T, want *ast.BinaryOp", body.Commands[0])
	}
	if add.Op != "+" || add.Name != "b" {
		t.Errorf("body[0] = %s %s, want + b", add.Op, add.Name)
	}

	if _, ok := body.Commands[1].(*ast.Print); !ok {
		t.Fatalf("body[1] = %T, want *ast.Print", body.Commands[1])
	}
}

func TestParseWhileBody(t *testing.T) {
	program := parseProgram(t, "W i<9 { P i + i i 1 }")

	loop, ok := program.Commands[0].(*ast.While)
	if !ok {
		t.Fatalf("command = %T, want *ast.While", program.Commands[0])
	}
	if loop.Cond.Op != "<" {
		t.Errorf("Op = %q, want %q", loop.Cond.Op, "<")
	}

	body, ok := loop.Body.(*ast.Composite)
	if !ok {
		t.Fatalf("body = %T, want *ast.Composite", loop.Body)
	}
	if len(body.Commands) != 2 {
		t.Errorf("body commands = %d, want 2", len(body.Commands))
	}
}

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		got    string
		want   string
		line   int
		column int
	}{
		{"number in variable position", "=1a", "NUMBER", "VARIABLE", 1, 2},
		{"get without variable", "G5", "NUMBER", "VARIABLE", 1, 2},
		{"assign without value", "=a", "EOF", "VARIABLE or NUMBER", 1, 3},
		{"print without value", "P", "EOF", "VARIABLE or NUMBER", 1, 2},
		{"missing comparison operator", "I a 5", "NUMBER", "comparison operator", 1, 5},
		{"unclosed composite", "{ Pa", "EOF", "RBRACE", 1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parseError(t, tt.input)
			synErr, ok := err.(*errors.SyntaxError)
			if !ok {
				t.Fatalf("error = %T (%v), want *errors.SyntaxError", err, err)
			}
			if synErr.Got != tt.got || synErr.Want != tt.want {
				t.Errorf("error = expected %s, found %s; want expected %s, found %s",
					synErr.Want, synErr.Got, tt.want, tt.got)
			}
			if synErr.Line != tt.line || synErr.Column != tt.column {
				t.Errorf("position = (%d, %d), want (%d, %d)",
					synErr.Line, synErr.Column, tt.line, tt.column)
			}
		})
	}
}

func TestUnknownCommandErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		command string
	}{
		{"closing brace without opener", "}", "}"},
		{"number in command position", "5", "5"},
		{"variable in command position", "a", "a"},
		{"empty composite", "{ }", "}"},
		{"guard without body", "I a=0", "EOF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parseError(t, tt.input)
			cmdErr, ok := err.(*errors.UnknownCommandError)
			if !ok {
				t.Fatalf("error = %T (%v), want *errors.UnknownCommandError", err, err)
			}
			if cmdErr.Command != tt.command {
				t.Errorf("Command = %q, want %q", cmdErr.Command, tt.command)
			}
		})
	}
}

func TestLexicalErrorsSurfaceDuringParsing(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"bad first character", "$"},
		{"bad character mid-program", "=a5 ?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parseError(t, tt.input)
			if _, ok := err.(*errors.LexicalError); !ok {
				t.Fatalf("error = %T (%v), want *errors.LexicalError", err, err)
			}
		})
	}
}
