// Package ast defines the Abstract Syntax Tree nodes for the LPS1 language.
//
// Commands and values are closed sets: the only Command implementations
// are Assign, Get, BinaryOp, Print, If, While and Composite, and the
// only Value implementations are VarRef and NumberLit. Consumers switch
// over these types and treat anything else as a bug.
package ast

import (
	"fmt"
	"strings"

	"github.com/phillarmonic/lpsc/internal/lexer"
)

// Node represents any node in the AST
type Node interface {
	String() string
}

// Command represents any command node
type Command interface {
	Node
	commandNode()
}

// Value represents an operand: a variable reference or a number literal
type Value interface {
	Node
	valueNode()
}

// Program represents the root of the AST
type Program struct {
	Commands []Command
}

func (p *Program) String() string {
	var out strings.Builder
	for i, cmd := range p.Commands {
		if i > 0 {
			out.WriteString("\n")
		}
		out.WriteString(cmd.String())
	}
	return out.String()
}

// Assign stores a value into a variable ('=' command)
type Assign struct {
	Token lexer.Token // the '=' token
	Name  string
	Value Value
}

func (a *Assign) commandNode() {}

func (a *Assign) String() string {
	return fmt.Sprintf("= %s %s", a.Name, a.Value.String())
}

// Get reads an integer from standard input into a variable ('G' command)
type Get struct {
	Token lexer.Token // the 'G' token
	Name  string
}

func (g *Get) commandNode() {}

func (g *Get) String() string {
	return fmt.Sprintf("G %s", g.Name)
}

// BinaryOp applies an arithmetic operator to two values and stores the
// result in a variable ('+', '-', '*', '/' and '%' commands). Op holds
// the operator character, which is the same in LPS1 and C.
type BinaryOp struct {
	Token lexer.Token // the operator token
	Op    string
	Name  string
	Left  Value
	Right Value
}

func (b *BinaryOp) commandNode() {}

func (b *BinaryOp) String() string {
	return fmt.Sprintf("%s %s %s %s", b.Op, b.Name, b.Left.String(), b.Right.String())
}

// Print writes a value to standard output ('P' command)
type Print struct {
	Token lexer.Token // the 'P' token
	Value Value
}

func (p *Print) commandNode() {}

func (p *Print) String() string {
	return fmt.Sprintf("P %s", p.Value.String())
}

// If guards a command with a comparison ('I' command)
type If struct {
	Token lexer.Token // the 'I' token
	Cond  *Comparison
	Body  Command
}

func (i *If) commandNode() {}

func (i *If) String() string {
	return fmt.Sprintf("I %s %s", i.Cond.String(), i.Body.String())
}

// While repeats a command while a comparison holds ('W' command)
type While struct {
	Token lexer.Token // the 'W' token
	Cond  *Comparison
	Body  Command
}

func (w *While) commandNode() {}

func (w *While) String() string {
	return fmt.Sprintf("W %s %s", w.Cond.String(), w.Body.String())
}

// Composite groups commands between braces into a single command
type Composite struct {
	Token    lexer.Token // the '{' token
	Commands []Command
}

func (c *Composite) commandNode() {}

func (c *Composite) String() string {
	parts := make([]string, 0, len(c.Commands))
	for _, cmd := range c.Commands {
		parts = append(parts, cmd.String())
	}
	return fmt.Sprintf("{ %s }", strings.Join(parts, " "))
}

// Comparison is the guard of an If or While. Op holds the C spelling of
// the operator: LPS1 '=' becomes "==", '#' becomes "!=" and '<' stays
// "<". The left side is always a variable.
type Comparison struct {
	Token lexer.Token // the left-hand variable token
	Name  string
	Op    string
	Right Value
}

func (c *Comparison) String() string {
	return fmt.Sprintf("%s %s %s", c.Name, c.Op, c.Right.String())
}

// VarRef references a variable by its one-letter name
type VarRef struct {
	Token lexer.Token // the variable token
	Name  string
}

func (v *VarRef) valueNode() {}

func (v *VarRef) String() string {
	return v.Name
}

// NumberLit is a single-digit literal
type NumberLit struct {
	Token lexer.Token // the number token
	Digit string
}

func (n *NumberLit) valueNode() {}

func (n *NumberLit) String() string {
	return n.Digit
}
