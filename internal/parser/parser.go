// Package parser builds LPS1 ASTs from tokens.
//
// The grammar is LL(1): every decision is made on the current token, so
// the parser holds exactly one token and pulls the next from the lexer
// on demand. Parsing stops at the first error, lexical or syntactic.
package parser

import (
	"github.com/phillarmonic/lpsc/internal/ast"
	"github.com/phillarmonic/lpsc/internal/errors"
	"github.com/phillarmonic/lpsc/internal/lexer"
)

// comparisonOps maps comparison tokens to their C spelling.
var comparisonOps = map[lexer.TokenType]string{
	lexer.ASSIGN: "==",
	lexer.LESS:   "<",
	lexer.HASH:   "!=",
}

// Parser parses LPS1 token streams into ASTs
type Parser struct {
	l        *lexer.Lexer
	curToken lexer.Token
}

// NewParser creates a new parser primed with the first token. A lexical
// error in the very first token surfaces here.
func NewParser(l *lexer.Lexer) (*Parser, error) {
	p := &Parser{l: l}
	if err := p.nextToken(); err != nil {
		return nil, err
	}
	return p, nil
}

// nextToken pulls the next token from the lexer
func (p *Parser) nextToken() error {
	tok, err := p.l.NextToken()
	if err != nil {
		return err
	}
	p.curToken = tok
	return nil
}

// eat consumes the current token if it has the expected type
func (p *Parser) eat(t lexer.TokenType) error {
	if p.curToken.Type != t {
		return p.syntaxError(t.String())
	}
	return p.nextToken()
}

// syntaxError builds a SyntaxError pointing at the current token
func (p *Parser) syntaxError(want string) error {
	return &errors.SyntaxError{
		Got:    p.curToken.Type.String(),
		Want:   want,
		Line:   p.curToken.Line,
		Column: p.curToken.Column,
	}
}

// ParseProgram parses commands until EOF
func (p *Parser) ParseProgram() (*ast.Program, error) {
	program := &ast.Program{}

	for p.curToken.Type != lexer.EOF {
		cmd, err := p.parseCommand()
		if err != nil {
			return nil, err
		}
		program.Commands = append(program.Commands, cmd)
	}

	return program, nil
}

// parseCommand dispatches on the command letter under the cursor
func (p *Parser) parseCommand() (ast.Command, error) {
	switch p.curToken.Type {
	case lexer.ASSIGN:
		return p.parseAssign()
	case lexer.GET:
		return p.parseGet()
	case lexer.PLUS, lexer.MINUS, lexer.STAR, lexer.SLASH, lexer.PERCENT:
		return p.parseBinaryOp()
	case lexer.PRINT:
		return p.parsePrint()
	case lexer.IF:
		return p.parseIf()
	case lexer.WHILE:
		return p.parseWhile()
	case lexer.LBRACE:
		return p.parseComposite()
	default:
		command := p.curToken.Literal
		if command == "" {
			command = p.curToken.Type.String()
		}
		return nil, &errors.UnknownCommandError{
			Command: command,
			Line:    p.curToken.Line,
			Column:  p.curToken.Column,
		}
	}
}

func (p *Parser) parseAssign() (*ast.Assign, error) {
	tok := p.curToken
	if err := p.eat(lexer.ASSIGN); err != nil {
		return nil, err
	}

	nameTok, err := p.parseVariable()
	if err != nil {
		return nil, err
	}

	value, err := p.parseValue()
	if err != nil {
		return nil, err
	}

	return &ast.Assign{Token: tok, Name: nameTok.Literal, Value: value}, nil
}

func (p *Parser) parseGet() (*ast.Get, error) {
	tok := p.curToken
	if err := p.eat(lexer.GET); err != nil {
		return nil, err
	}

	nameTok, err := p.parseVariable()
	if err != nil {
		return nil, err
	}

	return &ast.Get{Token: tok, Name: nameTok.Literal}, nil
}

// parseBinaryOp parses '+', '-', '*', '/' and '%'. The dispatch already
// matched the operator, so the token is consumed without a type check.
func (p *Parser) parseBinaryOp() (*ast.BinaryOp, error) {
	tok := p.curToken
	if err := p.nextToken(); err != nil {
		return nil, err
	}

	nameTok, err := p.parseVariable()
	if err != nil {
		return nil, err
	}

	left, err := p.parseValue()
	if err != nil {
		return nil, err
	}

	right, err := p.parseValue()
	if err != nil {
		return nil, err
	}

	return &ast.BinaryOp{
		Token: tok,
		Op:    tok.Literal,
		Name:  nameTok.Literal,
		Left:  left,
		Right: right,
	}, nil
}

func (p *Parser) parsePrint() (*ast.Print, error) {
	tok := p.curToken
	if err := p.eat(lexer.PRINT); err != nil {
		return nil, err
	}

	value, err := p.parseValue()
	if err != nil {
		return nil, err
	}

	return &ast.Print{Token: tok, Value: value}, nil
}

func (p *Parser) parseIf() (*ast.If, error) {
	tok := p.curToken
	if err := p.eat(lexer.IF); err != nil {
		return nil, err
	}

	cond, err := p.parseComparison()
	if err != nil {
		return nil, err
	}

	body, err := p.parseCommand()
	if err != nil {
		return nil, err
	}

	return &ast.If{Token: tok, Cond: cond, Body: body}, nil
}

func (p *Parser) parseWhile() (*ast.While, error) {
	tok := p.curToken
	if err := p.eat(lexer.WHILE); err != nil {
		return nil, err
	}

	cond, err := p.parseComparison()
	if err != nil {
		return nil, err
	}

	body, err := p.parseCommand()
	if err != nil {
		return nil, err
	}

	return &ast.While{Token: tok, Cond: cond, Body: body}, nil
}

// parseComposite parses '{' Command+ '}'. At least one command is
// required between the braces.
func (p *Parser) parseComposite() (*ast.Composite, error) {
	tok := p.curToken
	if err := p.eat(lexer.LBRACE); err != nil {
		return nil, err
	}

	composite := &ast.Composite{Token: tok}
	for {
		cmd, err := p.parseCommand()
		if err != nil {
			return nil, err
		}
		composite.Commands = append(composite.Commands, cmd)

		if p.curToken.Type == lexer.RBRACE || p.curToken.Type == lexer.EOF {
			break
		}
	}

	if err := p.eat(lexer.RBRACE); err != nil {
		return nil, err
	}

	return composite, nil
}

// parseComparison parses VAR op Value, mapping the operator to its C
// spelling
func (p *Parser) parseComparison() (*ast.Comparison, error) {
	nameTok, err := p.parseVariable()
	if err != nil {
		return nil, err
	}

	op, ok := comparisonOps[p.curToken.Type]
	if !ok {
		return nil, p.syntaxError("comparison operator")
	}
	if err := p.nextToken(); err != nil {
		return nil, err
	}

	right, err := p.parseValue()
	if err != nil {
		return nil, err
	}

	return &ast.Comparison{Token: nameTok, Name: nameTok.Literal, Op: op, Right: right}, nil
}

// parseVariable consumes a VARIABLE token and returns it. The token is
// captured before eat so a mismatch is reported at the token actually
// found.
func (p *Parser) parseVariable() (lexer.Token, error) {
	tok := p.curToken
	if err := p.eat(lexer.VARIABLE); err != nil {
		return lexer.Token{}, err
	}
	return tok, nil
}

// parseValue parses a variable reference or a number literal
func (p *Parser) parseValue() (ast.Value, error) {
	switch p.curToken.Type {
	case lexer.VARIABLE:
		tok := p.curToken
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		return &ast.VarRef{Token: tok, Name: tok.Literal}, nil
	case lexer.NUMBER:
		tok := p.curToken
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		return &ast.NumberLit{Token: tok, Digit: tok.Literal}, nil
	default:
		return nil, p.syntaxError("VARIABLE or NUMBER")
	}
}
