package stdlib

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/RaresPSCR/ROScript/pkg/core/value"
)

// Int: int(x). Floats truncate toward zero, text is parsed as a decimal
// integer and booleans map to 0 or 1.
func Int(_ Host, args []value.Value) (value.Value, error) {
	if err := arity("int", args, 1); err != nil {
		return value.Value{}, err
	}
	v := args[0]
	switch v.Type {
	case value.TypeInt:
		return v, nil
	case value.TypeFloat:
		i, ok := truncate(v.Float())
		if !ok {
			return value.Value{}, invalid("int", v)
		}
		return value.Int(i), nil
	case value.TypeText:
		i, err := strconv.ParseInt(strings.TrimSpace(v.Text()), 10, 64)
		if err != nil {
			return value.Value{}, invalid("int", v)
		}
		return value.Int(i), nil
	case value.TypeBool:
		if v.Bool() {
			return value.Int(1), nil
		}
		return value.Int(0), nil
	}
	return value.Value{}, invalid("int", v)
}

// Float: float(x).
func Float(_ Host, args []value.Value) (value.Value, error) {
	if err := arity("float", args, 1); err != nil {
		return value.Value{}, err
	}
	v := args[0]
	switch v.Type {
	case value.TypeInt, value.TypeFloat:
		return value.Float(v.Float()), nil
	case value.TypeText:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Text()), 64)
		if err != nil {
			return value.Value{}, invalid("float", v)
		}
		return value.Float(f), nil
	case value.TypeBool:
		if v.Bool() {
			return value.Float(1), nil
		}
		return value.Float(0), nil
	}
	return value.Value{}, invalid("float", v)
}

// Str: str(x) returns the display text of x.
func Str(_ Host, args []value.Value) (value.Value, error) {
	if err := arity("str", args, 1); err != nil {
		return value.Value{}, err
	}
	return value.Text(args[0].Format()), nil
}

// Bool: bool(x). Numbers are true when non-zero; text must spell a boolean.
func Bool(_ Host, args []value.Value) (value.Value, error) {
	if err := arity("bool", args, 1); err != nil {
		return value.Value{}, err
	}
	v := args[0]
	if v.Type == value.TypeText {
		switch strings.TrimSpace(v.Text()) {
		case "adevarat", "true":
			return value.Bool(true), nil
		case "fals", "false":
			return value.Bool(false), nil
		}
		return value.Value{}, invalid("bool", v)
	}
	b, err := value.Truthy(v)
	if err != nil {
		return value.Value{}, invalid("bool", v)
	}
	return value.Bool(b), nil
}

// Len: len(text) counts characters, not bytes.
func Len(_ Host, args []value.Value) (value.Value, error) {
	if err := arity("len", args, 1); err != nil {
		return value.Value{}, err
	}
	if args[0].Type != value.TypeText {
		return value.Value{}, errors.Wrapf(ErrInvalidArgument, "len of %s", args[0].Type)
	}
	return value.Int(int64(utf8.RuneCountInString(args[0].Text()))), nil
}

// TypeName: type(x) returns "int", "float", "string" or "bool".
func TypeName(_ Host, args []value.Value) (value.Value, error) {
	if err := arity("type", args, 1); err != nil {
		return value.Value{}, err
	}
	return value.Text(args[0].Type.String()), nil
}

// truncate converts f toward zero, failing for NaN and anything outside the
// int64 range (infinities included).
func truncate(f float64) (int64, bool) {
	if math.IsNaN(f) || f >= 1<<63 || f < -(1<<63) {
		return 0, false
	}
	return int64(f), true
}

func number(name string, v value.Value) (float64, error) {
	if !v.IsNumeric() {
		return 0, errors.Wrapf(ErrInvalidArgument, "%s of %s", name, v.Type)
	}
	return v.Float(), nil
}

// Sqrt: sqrt(x) always returns a float. Negative input yields NaN.
func Sqrt(_ Host, args []value.Value) (value.Value, error) {
	if err := arity("sqrt", args, 1); err != nil {
		return value.Value{}, err
	}
	f, err := number("sqrt", args[0])
	if err != nil {
		return value.Value{}, err
	}
	return value.Float(math.Sqrt(f)), nil
}

// Abs keeps the operand's type.
func Abs(_ Host, args []value.Value) (value.Value, error) {
	if err := arity("abs", args, 1); err != nil {
		return value.Value{}, err
	}
	v := args[0]
	switch v.Type {
	case value.TypeInt:
		if i := v.Int(); i < 0 {
			return value.Int(-i), nil
		}
		return v, nil
	case value.TypeFloat:
		return value.Float(math.Abs(v.Float())), nil
	}
	return value.Value{}, errors.Wrapf(ErrInvalidArgument, "abs of %s", v.Type)
}

// Round rounds half away from zero and returns an int.
func Round(_ Host, args []value.Value) (value.Value, error) {
	if err := arity("round", args, 1); err != nil {
		return value.Value{}, err
	}
	f, err := number("round", args[0])
	if err != nil {
		return value.Value{}, err
	}
	i, ok := truncate(math.Round(f))
	if !ok {
		return value.Value{}, invalid("round", args[0])
	}
	return value.Int(i), nil
}

// Pow: pow(a, b). Two ints with a non-negative exponent give an int.
func Pow(_ Host, args []value.Value) (value.Value, error) {
	if err := arity("pow", args, 2); err != nil {
		return value.Value{}, err
	}
	base, exp := args[0], args[1]
	if base.Type == value.TypeInt && exp.Type == value.TypeInt && exp.Int() >= 0 {
		result, b := int64(1), base.Int()
		for e := exp.Int(); e > 0; e >>= 1 {
			if e&1 == 1 {
				result *= b
			}
			b *= b
		}
		return value.Int(result), nil
	}
	a, err := number("pow", base)
	if err != nil {
		return value.Value{}, err
	}
	b, err := number("pow", exp)
	if err != nil {
		return value.Value{}, err
	}
	return value.Float(math.Pow(a, b)), nil
}
