package stdlib

import (
	"io"
	"sort"

	"github.com/pkg/errors"

	"github.com/RaresPSCR/ROScript/pkg/core/value"
)

var (
	ErrArityMismatch   = errors.New("wrong number of arguments")
	ErrInvalidArgument = errors.New("invalid argument")
)

// Host is the side of the interpreter a builtin may touch.
type Host interface {
	// Output is the program's standard output.
	Output() io.Writer
	// ReadLine returns the next input line without its terminator.
	ReadLine() (string, error)
}

// Func is a builtin. It validates its own arguments.
type Func func(h Host, args []value.Value) (value.Value, error)

// Registry maps a callable name to its implementation.
type Registry map[string]Func

// New returns a registry holding every builtin.
func New() Registry {
	return Registry{
		"int":    Int,
		"float":  Float,
		"str":    Str,
		"bool":   Bool,
		"len":    Len,
		"type":   TypeName,
		"sqrt":   Sqrt,
		"abs":    Abs,
		"round":  Round,
		"pow":    Pow,
		"format": FormatString,
		"input":  Input,
		"print":  Print,
	}
}

// Register adds or replaces a function.
func (r Registry) Register(name string, fn Func) {
	r[name] = fn
}

// Lookup returns the function registered under name.
func (r Registry) Lookup(name string) (Func, bool) {
	fn, ok := r[name]
	return fn, ok
}

// Names lists the registered names in sorted order.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func arity(name string, args []value.Value, want int) error {
	if len(args) != want {
		return errors.Wrapf(ErrArityMismatch, "%s expects %d argument(s), got %d", name, want, len(args))
	}
	return nil
}

func invalid(name string, v value.Value) error {
	return errors.Wrapf(ErrInvalidArgument, "%s cannot convert %s %s", name, v.Type, v)
}
