package codegen

import (
	"reflect"
	"strings"
	"testing"

	"github.com/phillarmonic/lpsc/internal/ast"
)

func generate(t *testing.T, commands ...ast.Command) *Generator {
	t.Helper()

	g := NewGenerator()
	if err := g.Generate(&ast.Program{Commands: commands}); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	return g
}

func assertLines(t *testing.T, g *Generator, expected []string) {
	t.Helper()

	if !reflect.DeepEqual(g.Lines(), expected) {
		t.Errorf("Lines() =\n%s\nwant:\n%s",
			strings.Join(g.Lines(), "\n"), strings.Join(expected, "\n"))
	}
}

func TestGenerateAssign(t *testing.T) {
	g := generate(t, &ast.Assign{Name: "a", Value: &ast.NumberLit{Digit: "5"}})

	assertLines(t, g, []string{
		"    a = 5;",
	})
	if !reflect.DeepEqual(g.Variables(), []string{"a"}) {
		t.Errorf("Variables() = %v, want [a]", g.Variables())
	}
}

func TestGenerateGet(t *testing.T) {
	g := generate(t, &ast.Get{Name: "x"})

	assertLines(t, g, []string{
		"    gets(str);",
		`    sscanf(str, "%d", &x);`,
	})
}

func TestGenerateBinaryOps(t *testing.T) {
	tests := []struct {
		op   string
		want string
	}{
		{"+", "    b = a + 1;"},
		{"-", "    b = a - 1;"},
		{"*", "    b = a * 1;"},
		{"/", "    b = a / 1;"},
		{"%", "    b = a % 1;"},
	}

	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			g := generate(t, &ast.BinaryOp{
				Op:    tt.op,
				Name:  "b",
				Left:  &ast.VarRef{Name: "a"},
				Right: &ast.NumberLit{Digit: "1"},
			})

			assertLines(t, g, []string{tt.want})
			if !reflect.DeepEqual(g.Variables(), []string{"a", "b"}) {
				t.Errorf("Variables() = %v, want [a b]", g.Variables())
			}
		})
	}
}

func TestGeneratePrint(t *testing.T) {
	g := generate(t, &ast.Print{Value: &ast.VarRef{Name: "a"}})

	assertLines(t, g, []string{
		`    printf("%d\n", a);`,
	})
}

// A variable only ever read still needs a declaration.
func TestGeneratePrintRegistersVariable(t *testing.T) {
	g := generate(t, &ast.Print{Value: &ast.VarRef{Name: "q"}})

	if !reflect.DeepEqual(g.Variables(), []string{"q"}) {
		t.Errorf("Variables() = %v, want [q]", g.Variables())
	}
}

func TestGenerateIf(t *testing.T) {
	g := generate(t, &ast.If{
		Cond: &ast.Comparison{Name: "a", Op: "==", Right: &ast.NumberLit{Digit: "0"}},
		Body: &ast.Print{Value: &ast.VarRef{Name: "a"}},
	})

	assertLines(t, g, []string{
		"    if ( a == 0 ) {",
		`        printf("%d\n", a);`,
		"    }",
	})
}

func TestGenerateWhileWithCompositeBody(t *testing.T) {
	g := generate(t, &ast.While{
		Cond: &ast.Comparison{Name: "i", Op: "<", Right: &ast.NumberLit{Digit: "3"}},
		Body: &ast.Composite{Commands: []ast.Command{
			&ast.Print{Value: &ast.VarRef{Name: "i"}},
			&ast.BinaryOp{Op: "+", Name: "i", Left: &ast.VarRef{Name: "i"}, Right: &ast.NumberLit{Digit: "1"}},
		}},
	})

	assertLines(t, g, []string{
		"    while ( i < 3 ) {",
		"        {",
		`            printf("%d\n", i);`,
		"            i = i + 1;",
		"        }",
		"    }",
	})
}

func TestGenerateNotEqualGuard(t *testing.T) {
	g := generate(t, &ast.If{
		Cond: &ast.Comparison{Name: "x", Op: "!=", Right: &ast.VarRef{Name: "y"}},
		Body: &ast.Print{Value: &ast.NumberLit{Digit: "1"}},
	})

	assertLines(t, g, []string{
		"    if ( x != y ) {",
		`        printf("%d\n", 1);`,
		"    }",
	})
}

func TestVariablesSorted(t *testing.T) {
	g := generate(t,
		&ast.Assign{Name: "z", Value: &ast.NumberLit{Digit: "1"}},
		&ast.Assign{Name: "a", Value: &ast.NumberLit{Digit: "2"}},
		&ast.Assign{Name: "m", Value: &ast.VarRef{Name: "z"}},
	)

	if !reflect.DeepEqual(g.Variables(), []string{"a", "m", "z"}) {
		t.Errorf("Variables() = %v, want [a m z]", g.Variables())
	}
}

func TestGenerateEmptyProgram(t *testing.T) {
	g := generate(t)

	if len(g.Lines()) != 0 {
		t.Errorf("Lines() = %v, want none", g.Lines())
	}
	if len(g.Variables()) != 0 {
		t.Errorf("Variables() = %v, want none", g.Variables())
	}
}
