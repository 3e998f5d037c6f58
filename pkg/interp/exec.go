package interp

import (
	"io"

	"github.com/pkg/errors"

	"github.com/RaresPSCR/ROScript/pkg/compiler/ast"
	"github.com/RaresPSCR/ROScript/pkg/core/value"
)

func (it *Interpreter) execBlock(block ast.Block) error {
	for _, stmt := range block {
		if err := it.exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (it *Interpreter) exec(stmt ast.Statement) error {
	line := stmt.Pos().Line
	if err := it.step(); err != nil {
		return atLine(line, err)
	}

	switch s := stmt.(type) {
	case *ast.VariableDeclaration:
		if s.Value == nil {
			return nil
		}
		return atLine(line, it.assign(s.Name, s.Value))

	case *ast.AssignStatement:
		return atLine(line, it.assign(s.Name, s.Value))

	case *ast.PrintStatement:
		v, err := it.Eval(s.Value)
		if err != nil {
			return atLine(line, err)
		}
		_, err = io.WriteString(&it.out, v.Format())
		return atLine(line, errors.Wrap(err, "afiseaza"))

	case *ast.InputStatement:
		return atLine(line, it.input(s.Target))

	case *ast.ExpressionStatement:
		_, err := it.Eval(s.Value)
		return atLine(line, err)

	case *ast.IfStatement:
		return it.execIf(s)

	case *ast.WhileStatement:
		for {
			ok, err := it.condition(s.Condition)
			if err != nil || !ok {
				return atLine(line, err)
			}
			if err := it.execBlock(s.Body); err != nil {
				return err
			}
			if err := it.step(); err != nil {
				return atLine(line, err)
			}
		}

	case *ast.DoWhileStatement:
		return it.execDo(line, s.Body, s.Condition, true)

	case *ast.DoUntilStatement:
		return it.execDo(line, s.Body, s.Condition, false)

	case *ast.ForStatement:
		return it.execFor(s)
	}
	return atLine(line, errors.Errorf("unsupported statement %T", stmt))
}

func (it *Interpreter) assign(name string, expr ast.Expr) error {
	v, err := it.Eval(expr)
	if err != nil {
		return err
	}
	it.ns.Set(name, v)
	return nil
}

func (it *Interpreter) input(target string) error {
	if it.prompt != "" {
		if _, err := io.WriteString(&it.out, it.prompt); err != nil {
			return errors.Wrap(err, "citeste prompt")
		}
	}
	line, err := it.ReadLine()
	if err != nil && err != io.EOF {
		return errors.Wrap(err, "citeste")
	}
	it.ns.Set(target, value.Text(line))
	return nil
}

func (it *Interpreter) execIf(s *ast.IfStatement) error {
	ok, err := it.condition(s.Condition)
	if err != nil {
		return atLine(s.Pos().Line, err)
	}
	if ok {
		return it.execBlock(s.Then)
	}
	for _, arm := range s.ElseIfs {
		ok, err := it.condition(arm.Condition)
		if err != nil {
			return atLine(arm.Condition.Pos().Line, err)
		}
		if ok {
			return it.execBlock(arm.Body)
		}
	}
	if s.Else != nil {
		return it.execBlock(s.Else)
	}
	return nil
}

// execDo runs body once, then again for as long as the condition equals
// repeatWhen.
func (it *Interpreter) execDo(line int, body ast.Block, cond ast.Expr, repeatWhen bool) error {
	for {
		if err := it.execBlock(body); err != nil {
			return err
		}
		ok, err := it.condition(cond)
		if err != nil {
			return atLine(line, err)
		}
		if ok != repeatWhen {
			return nil
		}
		if err := it.step(); err != nil {
			return atLine(line, err)
		}
	}
}

func (it *Interpreter) execFor(s *ast.ForStatement) error {
	line := s.Pos().Line
	if err := it.exec(s.Init); err != nil {
		return err
	}
	for {
		ok, err := it.condition(s.Condition)
		if err != nil || !ok {
			return atLine(line, err)
		}
		if err := it.execBlock(s.Body); err != nil {
			return err
		}
		if err := it.exec(s.Step); err != nil {
			return err
		}
	}
}

func (it *Interpreter) condition(expr ast.Expr) (bool, error) {
	v, err := it.Eval(expr)
	if err != nil {
		return false, err
	}
	ok, err := value.Truthy(v)
	return ok, errors.Wrap(err, "condition")
}
