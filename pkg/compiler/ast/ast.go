package ast

import "github.com/RaresPSCR/ROScript/pkg/compiler/lexer"

// Node represents any node in the Abstract Syntax Tree.
type Node interface {
	Pos() lexer.Token
}

// Expr represents an expression that yields a value.
type Expr interface {
	Node
	exprNode()
}

// Statement represents a standalone unit of execution.
type Statement interface {
	Node
	stmtNode()
}

// Program is the root node.
type Program struct {
	Statements []Statement
}

// Block is an ordered statement list owned by its enclosing statement.
type Block []Statement

// VariableDeclaration: var NAME [= EXPR]
type VariableDeclaration struct {
	Token lexer.Token
	Name  string
	Value Expr // nil for a bare declaration
}

func (d *VariableDeclaration) Pos() lexer.Token { return d.Token }
func (d *VariableDeclaration) stmtNode()        {}

// PrintStatement: afiseaza EXPR
type PrintStatement struct {
	Token lexer.Token
	Value Expr
}

func (p *PrintStatement) Pos() lexer.Token { return p.Token }
func (p *PrintStatement) stmtNode()        {}

// AssignStatement: NAME = EXPR. Compound forms are desugared by the parser.
type AssignStatement struct {
	Token lexer.Token
	Name  string
	Value Expr
}

func (a *AssignStatement) Pos() lexer.Token { return a.Token }
func (a *AssignStatement) stmtNode()        {}

// InputStatement: citeste NAME
type InputStatement struct {
	Token  lexer.Token
	Target string
}

func (i *InputStatement) Pos() lexer.Token { return i.Token }
func (i *InputStatement) stmtNode()        {}

// ExpressionStatement evaluates a call for its side effects.
type ExpressionStatement struct {
	Token lexer.Token
	Value Expr
}

func (e *ExpressionStatement) Pos() lexer.Token { return e.Token }
func (e *ExpressionStatement) stmtNode()        {}

// ElseIf is one `altfel daca` arm.
type ElseIf struct {
	Condition Expr
	Body      Block
}

// IfStatement: daca COND atunci { } [altfel daca COND atunci { }]* [altfel { }]
type IfStatement struct {
	Token     lexer.Token
	Condition Expr
	Then      Block
	ElseIfs   []ElseIf
	Else      Block // nil when absent
}

func (i *IfStatement) Pos() lexer.Token { return i.Token }
func (i *IfStatement) stmtNode()        {}

// WhileStatement: cat timp COND executa { }
type WhileStatement struct {
	Token     lexer.Token
	Condition Expr
	Body      Block
}

func (w *WhileStatement) Pos() lexer.Token { return w.Token }
func (w *WhileStatement) stmtNode()        {}

// DoWhileStatement: executa { } cat timp COND
type DoWhileStatement struct {
	Token     lexer.Token
	Condition Expr
	Body      Block
}

func (d *DoWhileStatement) Pos() lexer.Token { return d.Token }
func (d *DoWhileStatement) stmtNode()        {}

// DoUntilStatement: executa { } pana cand COND
type DoUntilStatement struct {
	Token     lexer.Token
	Condition Expr
	Body      Block
}

func (d *DoUntilStatement) Pos() lexer.Token { return d.Token }
func (d *DoUntilStatement) stmtNode()        {}

// ForStatement: pentru INIT, COND, STEP executa { }
type ForStatement struct {
	Token     lexer.Token
	Init      Statement
	Condition Expr
	Step      Statement
	Body      Block
}

func (f *ForStatement) Pos() lexer.Token { return f.Token }
func (f *ForStatement) stmtNode()        {}

// Literal values

type IntLiteral struct {
	Token lexer.Token
	Value int64
}

func (n *IntLiteral) Pos() lexer.Token { return n.Token }
func (n *IntLiteral) exprNode()        {}

type FloatLiteral struct {
	Token lexer.Token
	Value float64
}

func (n *FloatLiteral) Pos() lexer.Token { return n.Token }
func (n *FloatLiteral) exprNode()        {}

type StringLiteral struct {
	Token lexer.Token
	Value string
}

func (s *StringLiteral) Pos() lexer.Token { return s.Token }
func (s *StringLiteral) exprNode()        {}

type BoolLiteral struct {
	Token lexer.Token
	Value bool
}

func (b *BoolLiteral) Pos() lexer.Token { return b.Token }
func (b *BoolLiteral) exprNode()        {}

// VariableReference reads a name from the namespace.
type VariableReference struct {
	Token lexer.Token
	Name  string
}

func (v *VariableReference) Pos() lexer.Token { return v.Token }
func (v *VariableReference) exprNode()        {}

// BinaryExpr: LEFT OP RIGHT
type BinaryExpr struct {
	Token    lexer.Token // the operator
	Left     Expr
	Operator string
	Right    Expr
}

func (b *BinaryExpr) Pos() lexer.Token { return b.Token }
func (b *BinaryExpr) exprNode()        {}

// FunctionCall: NAME(ARGS)
type FunctionCall struct {
	Token lexer.Token
	Name  string
	Args  []Expr
}

func (f *FunctionCall) Pos() lexer.Token { return f.Token }
func (f *FunctionCall) exprNode()        {}
