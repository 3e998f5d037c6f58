package parser

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/RaresPSCR/ROScript/pkg/compiler/ast"
	"github.com/RaresPSCR/ROScript/pkg/compiler/lexer"
)

// Binding strength of binary operators. Operators missing from the table
// (assignment forms, '!') never appear inside an expression.
var precedence = map[string]int{
	"==": 0, "!=": 0, "<": 0, ">": 0, "<=": 0, ">=": 0,
	"+": 1, "-": 1,
	"*": 2, "/": 2, "%": 2,
}

// cursor walks a token span.
type cursor struct {
	toks []lexer.Token
	pos  int
}

func newCursor(toks []lexer.Token) *cursor {
	return &cursor{toks: toks}
}

func (c *cursor) done() bool { return c.pos >= len(c.toks) }

func (c *cursor) peek() (lexer.Token, bool) {
	if c.done() {
		return lexer.Token{}, false
	}
	return c.toks[c.pos], true
}

func (c *cursor) peekKind(kind lexer.Kind) bool {
	tok, ok := c.peek()
	return ok && tok.Kind == kind
}

func (c *cursor) peekKeyword(kw string) bool {
	tok, ok := c.peek()
	return ok && tok.Is(lexer.KindKeyword, kw)
}

func (c *cursor) next() lexer.Token {
	tok := c.toks[c.pos]
	c.pos++
	return tok
}

// until consumes tokens up to (not including) the first one matching stop
// outside parentheses.
func (c *cursor) until(stop func(lexer.Token) bool) []lexer.Token {
	start := c.pos
	depth := 0
	for ; c.pos < len(c.toks); c.pos++ {
		tok := c.toks[c.pos]
		switch tok.Kind {
		case lexer.KindLParen:
			depth++
		case lexer.KindRParen:
			depth--
		}
		if depth == 0 && stop(tok) {
			break
		}
	}
	return c.toks[start:c.pos]
}

func (c *cursor) expectEnd() error {
	if tok, ok := c.peek(); ok {
		return errors.Errorf("unexpected '%s'", tok.Source())
	}
	return nil
}

// fullExpression parses an expression that must span every remaining token.
func (c *cursor) fullExpression() (ast.Expr, error) {
	expr, err := c.expression()
	if err != nil {
		return nil, err
	}
	if err := c.expectEnd(); err != nil {
		return nil, err
	}
	return expr, nil
}

func (c *cursor) expression() (ast.Expr, error) {
	return c.binary(0)
}

// binary is a precedence climber: operators binding at least as tightly as
// minPrec are folded into the left operand, and the right operand only
// absorbs strictly tighter operators, which keeps equal levels left-associative.
func (c *cursor) binary(minPrec int) (ast.Expr, error) {
	lhs, err := c.primary()
	if err != nil {
		return nil, err
	}

	for {
		tok, ok := c.peek()
		if !ok || tok.Kind != lexer.KindOperator {
			return lhs, nil
		}
		prec, isBinary := precedence[tok.Lexeme]
		if !isBinary {
			return nil, errors.Errorf("unexpected operator '%s' in expression", tok.Lexeme)
		}
		if prec < minPrec {
			return lhs, nil
		}
		c.next()

		rhs, err := c.binary(prec + 1)
		if err != nil {
			return nil, err
		}
		lhs = &ast.BinaryExpr{Token: tok, Left: lhs, Operator: tok.Lexeme, Right: rhs}
	}
}

func (c *cursor) primary() (ast.Expr, error) {
	tok, ok := c.peek()
	if !ok {
		return nil, errors.New("Expected expression")
	}

	switch tok.Kind {
	case lexer.KindInt:
		c.next()
		n, err := strconv.ParseInt(tok.Lexeme, 10, 64)
		if err != nil {
			return nil, errors.Errorf("integer literal %s out of range", tok.Lexeme)
		}
		return &ast.IntLiteral{Token: tok, Value: n}, nil

	case lexer.KindFloat:
		c.next()
		f, err := strconv.ParseFloat(tok.Lexeme, 64)
		if err != nil {
			return nil, errors.Errorf("invalid float literal %s", tok.Lexeme)
		}
		return &ast.FloatLiteral{Token: tok, Value: f}, nil

	case lexer.KindString:
		c.next()
		return &ast.StringLiteral{Token: tok, Value: tok.Lexeme}, nil

	case lexer.KindKeyword:
		switch tok.Lexeme {
		case kwTrue, kwFalse:
			c.next()
			return &ast.BoolLiteral{Token: tok, Value: tok.Lexeme == kwTrue}, nil
		}
		return nil, errors.Errorf("unexpected keyword '%s' in expression", tok.Lexeme)

	case lexer.KindIdentifier:
		c.next()
		if !validIdentifier(tok.Lexeme) {
			return nil, errors.Errorf("invalid identifier '%s'", tok.Lexeme)
		}
		if c.peekKind(lexer.KindLParen) {
			return c.call(tok)
		}
		return &ast.VariableReference{Token: tok, Name: tok.Lexeme}, nil

	case lexer.KindLParen:
		c.next()
		expr, err := c.expression()
		if err != nil {
			return nil, err
		}
		if !c.peekKind(lexer.KindRParen) {
			return nil, errors.New("Expected ')' after expression")
		}
		c.next()
		return expr, nil

	case lexer.KindOperator:
		if tok.Lexeme == "-" {
			c.next()
			return c.negate(tok)
		}
	}
	return nil, errors.Errorf("unexpected '%s' in expression", tok.Source())
}

// negate folds unary minus into numeric literals and rewrites it as 0 - x otherwise.
func (c *cursor) negate(minus lexer.Token) (ast.Expr, error) {
	operand, err := c.primary()
	if err != nil {
		return nil, err
	}
	switch n := operand.(type) {
	case *ast.IntLiteral:
		n.Value = -n.Value
		return n, nil
	case *ast.FloatLiteral:
		n.Value = -n.Value
		return n, nil
	}
	zero := &ast.IntLiteral{Token: minus, Value: 0}
	return &ast.BinaryExpr{Token: minus, Left: zero, Operator: "-", Right: operand}, nil
}

// call parses the argument list of NAME( ... ).
func (c *cursor) call(name lexer.Token) (ast.Expr, error) {
	c.next() // skip (
	fn := &ast.FunctionCall{Token: name, Name: name.Lexeme}
	if c.peekKind(lexer.KindRParen) {
		c.next()
		return fn, nil
	}
	for {
		arg, err := c.expression()
		if err != nil {
			return nil, err
		}
		fn.Args = append(fn.Args, arg)

		tok, ok := c.peek()
		switch {
		case ok && tok.Kind == lexer.KindComma:
			c.next()
		case ok && tok.Kind == lexer.KindRParen:
			c.next()
			return fn, nil
		default:
			return nil, errors.Errorf("Expected ',' or ')' in call to %s", name.Lexeme)
		}
	}
}
