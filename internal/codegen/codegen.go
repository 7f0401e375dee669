// Package codegen lowers LPS1 ASTs to C source lines.
package codegen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/phillarmonic/lpsc/internal/ast"
)

// Generator walks an AST and collects C statement lines plus the set of
// variables the program touches. Lines are indented to sit inside
// main(), one level deep at the top.
type Generator struct {
	lines  []string
	vars   map[string]bool
	indent int
}

// NewGenerator creates a generator ready to emit main() body lines
func NewGenerator() *Generator {
	return &Generator{
		vars:   make(map[string]bool),
		indent: 1,
	}
}

// Generate emits C statements for every command in the program
func (g *Generator) Generate(program *ast.Program) error {
	for _, cmd := range program.Commands {
		if err := g.command(cmd); err != nil {
			return err
		}
	}
	return nil
}

// Lines returns the emitted statement lines in order
func (g *Generator) Lines() []string {
	return g.lines
}

// Variables returns every variable the program touches, sorted by name.
// Referencing a variable is enough to get it declared; assignment is
// not required.
func (g *Generator) Variables() []string {
	names := make([]string, 0, len(g.vars))
	for name := range g.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// command emits one command. The switch is exhaustive over the Command
// implementations; anything else is a bug in the parser.
func (g *Generator) command(cmd ast.Command) error {
	switch c := cmd.(type) {
	case *ast.Assign:
		g.declare(c.Name)
		val, err := g.value(c.Value)
		if err != nil {
			return err
		}
		g.emit("%s = %s;", c.Name, val)

	case *ast.Get:
		g.declare(c.Name)
		g.emit("gets(str);")
		g.emit(`sscanf(str, "%%d", &%s);`, c.Name)

	case *ast.BinaryOp:
		g.declare(c.Name)
		left, err := g.value(c.Left)
		if err != nil {
			return err
		}
		right, err := g.value(c.Right)
		if err != nil {
			return err
		}
		g.emit("%s = %s %s %s;", c.Name, left, c.Op, right)

	case *ast.Print:
		val, err := g.value(c.Value)
		if err != nil {
			return err
		}
		g.emit(`printf("%%d\n", %s);`, val)

	case *ast.If:
		cond, err := g.comparison(c.Cond)
		if err != nil {
			return err
		}
		g.emit("if ( %s ) {", cond)
		g.indent++
		if err := g.command(c.Body); err != nil {
			return err
		}
		g.indent--
		g.emit("}")

	case *ast.While:
		cond, err := g.comparison(c.Cond)
		if err != nil {
			return err
		}
		g.emit("while ( %s ) {", cond)
		g.indent++
		if err := g.command(c.Body); err != nil {
			return err
		}
		g.indent--
		g.emit("}")

	case *ast.Composite:
		g.emit("{")
		g.indent++
		for _, inner := range c.Commands {
			if err := g.command(inner); err != nil {
				return err
			}
		}
		g.indent--
		g.emit("}")

	default:
		return fmt.Errorf("no generation rule for command %T", cmd)
	}

	return nil
}

// comparison renders a guard and registers its left-hand variable
func (g *Generator) comparison(c *ast.Comparison) (string, error) {
	g.declare(c.Name)
	right, err := g.value(c.Right)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %s %s", c.Name, c.Op, right), nil
}

// value renders an operand and registers variable references
func (g *Generator) value(v ast.Value) (string, error) {
	switch val := v.(type) {
	case *ast.VarRef:
		g.declare(val.Name)
		return val.Name, nil
	case *ast.NumberLit:
		return val.Digit, nil
	default:
		return "", fmt.Errorf("no generation rule for value %T", v)
	}
}

// declare records that a variable needs an int declaration
func (g *Generator) declare(name string) {
	g.vars[name] = true
}

// emit appends one statement line at the current indent level
func (g *Generator) emit(format string, args ...interface{}) {
	g.lines = append(g.lines, strings.Repeat("    ", g.indent)+fmt.Sprintf(format, args...))
}
