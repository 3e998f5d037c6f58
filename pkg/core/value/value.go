package value

import (
	"math"
	"strconv"
	"strings"
)

// Type represents the tag in the Value tagged union.
type Type uint8

const (
	TypeInt Type = iota
	TypeFloat
	TypeText
	TypeBool
)

// String returns the runtime type name used in diagnostics and by the type() builtin.
func (t Type) String() string {
	switch t {
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeText:
		return "string"
	case TypeBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Value is a tagged union. Int and Bool live in Data, Float as its IEEE bits,
// Text in Str. The zero Value is Int(0).
type Value struct {
	Type Type
	Data uint64
	Str  string
}

// Int makes an integer value.
func Int(i int64) Value {
	return Value{Type: TypeInt, Data: uint64(i)}
}

// Float makes a floating point value.
func Float(f float64) Value {
	return Value{Type: TypeFloat, Data: math.Float64bits(f)}
}

// Text makes a string value.
func Text(s string) Value {
	return Value{Type: TypeText, Str: s}
}

// Bool makes a boolean value.
func Bool(b bool) Value {
	v := Value{Type: TypeBool}
	if b {
		v.Data = 1
	}
	return v
}

// Int returns the value as int64.
func (v Value) Int() int64 {
	return int64(v.Data)
}

// Float returns the value as float64, promoting integers.
func (v Value) Float() float64 {
	if v.Type == TypeFloat {
		return math.Float64frombits(v.Data)
	}
	return float64(int64(v.Data))
}

// Bool returns the boolean payload.
func (v Value) Bool() bool {
	return v.Data != 0
}

// Text returns the string payload.
func (v Value) Text() string {
	return v.Str
}

// IsNumeric reports whether v is an Int or a Float.
func (v Value) IsNumeric() bool {
	return v.Type == TypeInt || v.Type == TypeFloat
}

// Equal reports whether two values have the same type and payload.
func (v Value) Equal(o Value) bool {
	if v.Type != o.Type {
		return false
	}
	switch v.Type {
	case TypeText:
		return v.Str == o.Str
	case TypeFloat:
		return v.Float() == o.Float()
	default:
		return v.Data == o.Data
	}
}

// Format returns the display text of the value.
func (v Value) Format() string {
	switch v.Type {
	case TypeText:
		return v.Str
	case TypeInt:
		return strconv.FormatInt(v.Int(), 10)
	case TypeFloat:
		return formatFloat(v.Float())
	case TypeBool:
		if v.Bool() {
			return "true"
		}
		return "false"
	default:
		return "?"
	}
}

// String implements fmt.Stringer.
func (v Value) String() string {
	if v.Type == TypeText {
		return strconv.Quote(v.Str)
	}
	return v.Format()
}

func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "+Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	case math.IsNaN(f):
		return "NaN"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
