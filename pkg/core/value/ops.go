package value

import (
	"github.com/pkg/errors"
)

var (
	ErrTypeMismatch   = errors.New("type mismatch")
	ErrDivisionByZero = errors.New("division by zero")
)

func mismatch(op string, l, r Value) error {
	return errors.Wrapf(ErrTypeMismatch, "operator %q is not defined for %s and %s", op, l.Type, r.Type)
}

// Binary applies a binary operator. Int⊗Int stays integral, any Float operand
// promotes both sides to Float, Text supports + == != and Bool supports == !=.
// Integer division and modulo by zero fail; float division follows IEEE.
func Binary(op string, l, r Value) (Value, error) {
	switch {
	case l.Type == TypeInt && r.Type == TypeInt:
		return intOp(op, l.Int(), r.Int(), l, r)
	case l.IsNumeric() && r.IsNumeric():
		return floatOp(op, l.Float(), r.Float(), l, r)
	case l.Type == TypeText && r.Type == TypeText:
		switch op {
		case "+":
			return Text(l.Str + r.Str), nil
		case "==":
			return Bool(l.Str == r.Str), nil
		case "!=":
			return Bool(l.Str != r.Str), nil
		}
	case l.Type == TypeBool && r.Type == TypeBool:
		switch op {
		case "==":
			return Bool(l.Bool() == r.Bool()), nil
		case "!=":
			return Bool(l.Bool() != r.Bool()), nil
		}
	}
	return Value{}, mismatch(op, l, r)
}

func intOp(op string, a, b int64, l, r Value) (Value, error) {
	switch op {
	case "+":
		return Int(a + b), nil
	case "-":
		return Int(a - b), nil
	case "*":
		return Int(a * b), nil
	case "/":
		if b == 0 {
			return Value{}, errors.Wrapf(ErrDivisionByZero, "%d / 0", a)
		}
		return Int(a / b), nil
	case "%":
		if b == 0 {
			return Value{}, errors.Wrapf(ErrDivisionByZero, "%d %% 0", a)
		}
		return Int(a % b), nil
	case "==":
		return Bool(a == b), nil
	case "!=":
		return Bool(a != b), nil
	case "<":
		return Bool(a < b), nil
	case ">":
		return Bool(a > b), nil
	case "<=":
		return Bool(a <= b), nil
	case ">=":
		return Bool(a >= b), nil
	}
	return Value{}, mismatch(op, l, r)
}

func floatOp(op string, a, b float64, l, r Value) (Value, error) {
	switch op {
	case "+":
		return Float(a + b), nil
	case "-":
		return Float(a - b), nil
	case "*":
		return Float(a * b), nil
	case "/":
		return Float(a / b), nil
	case "==":
		return Bool(a == b), nil
	case "!=":
		return Bool(a != b), nil
	case "<":
		return Bool(a < b), nil
	case ">":
		return Bool(a > b), nil
	case "<=":
		return Bool(a <= b), nil
	case ">=":
		return Bool(a >= b), nil
	}
	return Value{}, mismatch(op, l, r)
}

// Truthy coerces a value to a branch condition. Text has no truth value.
func Truthy(v Value) (bool, error) {
	switch v.Type {
	case TypeBool:
		return v.Bool(), nil
	case TypeInt:
		return v.Int() != 0, nil
	case TypeFloat:
		return v.Float() != 0, nil
	}
	return false, errors.Wrapf(ErrTypeMismatch, "%s has no truth value", v.Type)
}
