package interp

import (
	"github.com/pkg/errors"

	"github.com/RaresPSCR/ROScript/pkg/compiler/ast"
	"github.com/RaresPSCR/ROScript/pkg/core/value"
)

// Eval computes the value of a single expression against the current
// namespace. Operands and arguments are evaluated left to right.
func (it *Interpreter) Eval(expr ast.Expr) (value.Value, error) {
	switch e := expr.(type) {
	case *ast.IntLiteral:
		return value.Int(e.Value), nil
	case *ast.FloatLiteral:
		return value.Float(e.Value), nil
	case *ast.StringLiteral:
		return value.Text(e.Value), nil
	case *ast.BoolLiteral:
		return value.Bool(e.Value), nil

	case *ast.VariableReference:
		v, ok := it.ns.Get(e.Name)
		if !ok {
			return value.Value{}, errors.Wrapf(ErrUndefinedVariable, "'%s'", e.Name)
		}
		return v, nil

	case *ast.BinaryExpr:
		l, err := it.Eval(e.Left)
		if err != nil {
			return value.Value{}, err
		}
		r, err := it.Eval(e.Right)
		if err != nil {
			return value.Value{}, err
		}
		return value.Binary(e.Operator, l, r)

	case *ast.FunctionCall:
		args := make([]value.Value, len(e.Args))
		for i, arg := range e.Args {
			v, err := it.Eval(arg)
			if err != nil {
				return value.Value{}, err
			}
			args[i] = v
		}
		fn, ok := it.builtins.Lookup(e.Name)
		if !ok {
			return value.Value{}, errors.Wrapf(ErrUndefinedFunction, "'%s'", e.Name)
		}
		return fn(it, args)
	}
	return value.Value{}, errors.Errorf("unsupported expression %T", expr)
}
