package parser

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/RaresPSCR/ROScript/pkg/compiler/ast"
	"github.com/RaresPSCR/ROScript/pkg/compiler/lexer"
)

const (
	kwVar   = "var"
	kwPrint = "afiseaza"
	kwInput = "citeste"
	kwIf    = "daca"
	kwThen  = "atunci"
	kwElse  = "altfel"
	kwDo    = "executa"
	kwWhile = "cat"
	kwTime  = "timp"
	kwFor   = "pentru"
	kwUntil = "pana"
	kwWhen  = "cand"
	kwEach  = "fiecare"
	kwTrue  = "adevarat"
	kwFalse = "fals"
)

// Option configures a Parser.
type Option func(*Parser)

// WithReporter streams every syntax error to r as soon as it is found.
func WithReporter(r *Reporter) Option {
	return func(p *Parser) { p.reporter = r }
}

// WithLogger attaches a logger for debug output.
func WithLogger(log *logrus.Entry) Option {
	return func(p *Parser) { p.log = log }
}

// Parser turns a token stream into a Program, collecting syntax errors.
type Parser struct {
	tokens   []lexer.Token
	errs     SyntaxErrors
	reporter *Reporter
	log      *logrus.Entry
}

// NewParser prepares a parser over tokens.
func NewParser(tokens []lexer.Token, opts ...Option) *Parser {
	p := &Parser{tokens: tokens}
	for _, opt := range opts {
		opt(p)
	}
	if p.log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		p.log = logrus.NewEntry(l)
	}
	return p
}

// Parse builds the program. Lines that fail to parse are reported and
// skipped, so the returned program is never nil; the error, when non-nil, is
// a SyntaxErrors listing every skipped line.
func (p *Parser) Parse() (*ast.Program, error) {
	program := &ast.Program{Statements: p.parseBlock(p.tokens)}

	p.log.WithFields(logrus.Fields{
		"statements":    len(program.Statements),
		"syntax_errors": len(p.errs),
	}).Debug("parsed program")

	if len(p.errs) > 0 {
		return program, p.errs
	}
	return program, nil
}

// Parse is a convenience wrapper around NewParser(tokens).Parse().
func Parse(tokens []lexer.Token, opts ...Option) (*ast.Program, error) {
	return NewParser(tokens, opts...).Parse()
}

func (p *Parser) parseBlock(toks []lexer.Token) ast.Block {
	var stmts ast.Block
	for _, line := range splitLines(toks) {
		stmt, err := p.parseStatement(line)
		if err != nil {
			p.fail(line, err)
			continue
		}
		stmts = append(stmts, stmt)
	}
	return stmts
}

func (p *Parser) fail(line []lexer.Token, err error) {
	se := &SyntaxError{Line: line[0].Line, Msg: err.Error(), Tokens: line}
	p.errs = append(p.errs, se)
	if p.reporter != nil {
		p.reporter.Report(se)
	}
}

func (p *Parser) parseStatement(line []lexer.Token) (ast.Statement, error) {
	first := line[0]
	switch first.Kind {
	case lexer.KindKeyword:
		switch first.Lexeme {
		case kwVar:
			return p.parseVariableDeclaration(line)
		case kwPrint:
			return p.parsePrint(line)
		case kwInput:
			return p.parseInput(line)
		case kwIf:
			return p.parseIf(line)
		case kwWhile:
			return p.parseWhile(line)
		case kwDo:
			return p.parseDo(line)
		case kwFor:
			return p.parseFor(line)
		case kwEach:
			return nil, errors.Errorf("'%s' loops are not supported", kwEach)
		}
		return nil, errors.Errorf("unexpected keyword '%s' at start of statement", first.Lexeme)
	case lexer.KindIdentifier:
		return p.parseAssignOrCall(line)
	}
	return nil, errors.Errorf("unexpected '%s' at start of statement", first.Source())
}

// var NAME | var NAME = EXPR
func (p *Parser) parseVariableDeclaration(line []lexer.Token) (ast.Statement, error) {
	if len(line) < 2 {
		return nil, errors.New("Expected identifier after 'var'")
	}
	if line[1].Kind != lexer.KindIdentifier || !validIdentifier(line[1].Lexeme) {
		return nil, errors.New("Expected variable name after 'var'")
	}
	decl := &ast.VariableDeclaration{Token: line[0], Name: line[1].Lexeme}
	if len(line) == 2 {
		return decl, nil
	}
	if !line[2].Is(lexer.KindOperator, "=") {
		return nil, errors.New("Expected '=' after variable name")
	}
	if len(line) == 3 {
		return nil, errors.New("Expected initializer after '='")
	}

	c := newCursor(line[3:])
	expr, err := c.fullExpression()
	if err != nil {
		return nil, err
	}
	decl.Value = expr
	return decl, nil
}

// afiseaza EXPR
func (p *Parser) parsePrint(line []lexer.Token) (ast.Statement, error) {
	if len(line) < 2 {
		return nil, errors.Errorf("Expected expression after '%s'", kwPrint)
	}
	expr, err := newCursor(line[1:]).fullExpression()
	if err != nil {
		return nil, err
	}
	return &ast.PrintStatement{Token: line[0], Value: expr}, nil
}

// citeste NAME
func (p *Parser) parseInput(line []lexer.Token) (ast.Statement, error) {
	if len(line) < 2 || line[1].Kind != lexer.KindIdentifier || !validIdentifier(line[1].Lexeme) {
		return nil, errors.Errorf("Expected variable name after '%s'", kwInput)
	}
	if len(line) > 2 {
		return nil, errors.Errorf("unexpected '%s' after '%s %s'", line[2].Source(), kwInput, line[1].Lexeme)
	}
	return &ast.InputStatement{Token: line[0], Target: line[1].Lexeme}, nil
}

var compoundOps = map[string]string{
	"+=": "+",
	"-=": "-",
	"*=": "*",
	"/=": "/",
}

// NAME = EXPR | NAME op= EXPR | NAME++ | NAME-- | NAME(ARGS)
func (p *Parser) parseAssignOrCall(line []lexer.Token) (ast.Statement, error) {
	name := line[0]
	if !validIdentifier(name.Lexeme) {
		return nil, errors.Errorf("invalid identifier '%s'", name.Lexeme)
	}
	if len(line) < 2 {
		return nil, errors.Errorf("Expected '=' after '%s'", name.Lexeme)
	}

	op := line[1]
	ref := &ast.VariableReference{Token: name, Name: name.Lexeme}
	switch {
	case op.Kind == lexer.KindLParen:
		expr, err := newCursor(line).fullExpression()
		if err != nil {
			return nil, err
		}
		if _, ok := expr.(*ast.FunctionCall); !ok {
			return nil, errors.New("expression result is not used")
		}
		return &ast.ExpressionStatement{Token: name, Value: expr}, nil

	case op.Is(lexer.KindOperator, "="):
		if len(line) == 2 {
			return nil, errors.New("Expected expression after '='")
		}
		expr, err := newCursor(line[2:]).fullExpression()
		if err != nil {
			return nil, err
		}
		return &ast.AssignStatement{Token: name, Name: name.Lexeme, Value: expr}, nil

	case op.Kind == lexer.KindOperator && compoundOps[op.Lexeme] != "":
		if len(line) == 2 {
			return nil, errors.Errorf("Expected expression after '%s'", op.Lexeme)
		}
		expr, err := newCursor(line[2:]).fullExpression()
		if err != nil {
			return nil, err
		}
		return &ast.AssignStatement{
			Token: name,
			Name:  name.Lexeme,
			Value: &ast.BinaryExpr{Token: op, Left: ref, Operator: compoundOps[op.Lexeme], Right: expr},
		}, nil

	case op.Is(lexer.KindOperator, "++"), op.Is(lexer.KindOperator, "--"):
		if len(line) > 2 {
			return nil, errors.Errorf("unexpected '%s' after '%s%s'", line[2].Source(), name.Lexeme, op.Lexeme)
		}
		one := &ast.IntLiteral{Token: op, Value: 1}
		return &ast.AssignStatement{
			Token: name,
			Name:  name.Lexeme,
			Value: &ast.BinaryExpr{Token: op, Left: ref, Operator: op.Lexeme[:1], Right: one},
		}, nil
	}
	return nil, errors.Errorf("Expected '=' after '%s'", name.Lexeme)
}

// daca COND [atunci] { } [altfel daca COND [atunci] { }]* [altfel { }]
func (p *Parser) parseIf(line []lexer.Token) (ast.Statement, error) {
	c := newCursor(line)
	stmt := &ast.IfStatement{Token: c.next()}

	cond, body, err := p.conditionalBlock(c, kwThen)
	if err != nil {
		return nil, err
	}
	stmt.Condition, stmt.Then = cond, body

	for c.peekKeyword(kwElse) {
		c.next()
		if c.peekKeyword(kwIf) {
			c.next()
			cond, body, err := p.conditionalBlock(c, kwThen)
			if err != nil {
				return nil, err
			}
			stmt.ElseIfs = append(stmt.ElseIfs, ast.ElseIf{Condition: cond, Body: body})
			continue
		}
		body, err := p.block(c)
		if err != nil {
			return nil, err
		}
		stmt.Else = body
		break
	}
	if err := c.expectEnd(); err != nil {
		return nil, err
	}
	return stmt, nil
}

// cat timp COND [executa] { }
func (p *Parser) parseWhile(line []lexer.Token) (ast.Statement, error) {
	c := newCursor(line)
	tok := c.next()
	if !c.peekKeyword(kwTime) {
		return nil, errors.Errorf("Expected '%s' after '%s'", kwTime, kwWhile)
	}
	c.next()
	cond, body, err := p.conditionalBlock(c, kwDo)
	if err != nil {
		return nil, err
	}
	if err := c.expectEnd(); err != nil {
		return nil, err
	}
	return &ast.WhileStatement{Token: tok, Condition: cond, Body: body}, nil
}

// executa { } cat timp COND | executa { } pana cand COND
func (p *Parser) parseDo(line []lexer.Token) (ast.Statement, error) {
	c := newCursor(line)
	tok := c.next()
	body, err := p.block(c)
	if err != nil {
		return nil, err
	}

	var until bool
	switch {
	case c.peekKeyword(kwWhile):
		c.next()
		if !c.peekKeyword(kwTime) {
			return nil, errors.Errorf("Expected '%s' after '%s'", kwTime, kwWhile)
		}
	case c.peekKeyword(kwUntil):
		until = true
		c.next()
		if !c.peekKeyword(kwWhen) {
			return nil, errors.Errorf("Expected '%s' after '%s'", kwWhen, kwUntil)
		}
	default:
		return nil, errors.Errorf("Expected '%s %s' or '%s %s' after '%s' block", kwWhile, kwTime, kwUntil, kwWhen, kwDo)
	}
	c.next()

	cond, err := c.fullExpression()
	if err != nil {
		return nil, err
	}
	if until {
		return &ast.DoUntilStatement{Token: tok, Condition: cond, Body: body}, nil
	}
	return &ast.DoWhileStatement{Token: tok, Condition: cond, Body: body}, nil
}

// pentru INIT, COND, STEP [executa] { }
func (p *Parser) parseFor(line []lexer.Token) (ast.Statement, error) {
	c := newCursor(line)
	stmt := &ast.ForStatement{Token: c.next()}

	header := c.until(func(tok lexer.Token) bool {
		return tok.Is(lexer.KindKeyword, kwDo) || tok.Kind == lexer.KindLBrace
	})
	parts := splitTopLevel(header, lexer.KindComma)
	if len(parts) != 3 || len(parts[0]) == 0 || len(parts[1]) == 0 || len(parts[2]) == 0 {
		return nil, errors.Errorf("Expected '%s <init>, <condition>, <step>'", kwFor)
	}

	init, err := p.parseSimple(parts[0])
	if err != nil {
		return nil, errors.Wrap(err, "for init")
	}
	cond, err := newCursor(parts[1]).fullExpression()
	if err != nil {
		return nil, errors.Wrap(err, "for condition")
	}
	step, err := p.parseSimple(parts[2])
	if err != nil {
		return nil, errors.Wrap(err, "for step")
	}
	if _, ok := step.(*ast.VariableDeclaration); ok {
		return nil, errors.New("for step must be an assignment")
	}

	if c.peekKeyword(kwDo) {
		c.next()
	}
	body, err := p.block(c)
	if err != nil {
		return nil, err
	}
	if err := c.expectEnd(); err != nil {
		return nil, err
	}

	stmt.Init, stmt.Condition, stmt.Step, stmt.Body = init, cond, step, body
	return stmt, nil
}

// parseSimple handles the statements allowed in a for header.
func (p *Parser) parseSimple(toks []lexer.Token) (ast.Statement, error) {
	switch {
	case toks[0].Is(lexer.KindKeyword, kwVar):
		return p.parseVariableDeclaration(toks)
	case toks[0].Kind == lexer.KindIdentifier:
		stmt, err := p.parseAssignOrCall(toks)
		if err != nil {
			return nil, err
		}
		if _, ok := stmt.(*ast.AssignStatement); !ok {
			return nil, errors.New("expected an assignment")
		}
		return stmt, nil
	}
	return nil, errors.Errorf("unexpected '%s'", toks[0].Source())
}

// conditionalBlock parses `COND [keyword] { BODY }`.
func (p *Parser) conditionalBlock(c *cursor, keyword string) (ast.Expr, ast.Block, error) {
	if c.done() || c.peekKeyword(keyword) || c.peekKind(lexer.KindLBrace) {
		return nil, nil, errors.New("Expected condition")
	}
	cond, err := c.expression()
	if err != nil {
		return nil, nil, err
	}
	if c.peekKeyword(keyword) {
		c.next()
	}
	body, err := p.block(c)
	if err != nil {
		return nil, nil, err
	}
	return cond, body, nil
}

// block consumes `{ ... }` and parses its contents as nested lines.
func (p *Parser) block(c *cursor) (ast.Block, error) {
	if !c.peekKind(lexer.KindLBrace) {
		if tok, ok := c.peek(); ok {
			return nil, errors.Errorf("Expected '{' but found '%s'", tok.Source())
		}
		return nil, errors.New("Expected '{'")
	}
	open := c.pos
	depth := 0
	for i := open; i < len(c.toks); i++ {
		switch c.toks[i].Kind {
		case lexer.KindLBrace:
			depth++
		case lexer.KindRBrace:
			depth--
			if depth == 0 {
				c.pos = i + 1
				body := p.parseBlock(c.toks[open+1 : i])
				if body == nil {
					body = ast.Block{}
				}
				return body, nil
			}
		}
	}
	return nil, errors.New("Expected '}' to close block")
}

// splitTopLevel splits toks on sep tokens that are not nested in parentheses.
func splitTopLevel(toks []lexer.Token, sep lexer.Kind) [][]lexer.Token {
	var (
		parts [][]lexer.Token
		start int
		depth int
	)
	for i, tok := range toks {
		switch tok.Kind {
		case lexer.KindLParen:
			depth++
		case lexer.KindRParen:
			depth--
		case sep:
			if depth == 0 {
				parts = append(parts, toks[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, toks[start:])
}

func validIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch == '_', ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z':
		case ch >= '0' && ch <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
