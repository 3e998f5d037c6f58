package stdlib

import (
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/RaresPSCR/ROScript/pkg/core/value"
)

// FormatString: format(template, args...) substitutes each %s in order with
// the display text of the next argument. Missing arguments leave %s in place
// and inserted text is never rescanned.
func FormatString(_ Host, args []value.Value) (value.Value, error) {
	if len(args) == 0 {
		return value.Value{}, errors.Wrap(ErrArityMismatch, "format expects a template")
	}
	if args[0].Type != value.TypeText {
		return value.Value{}, errors.Wrapf(ErrInvalidArgument, "format template must be string, got %s", args[0].Type)
	}
	// At most one split per argument; the unsplit tail keeps its %s.
	parts := strings.SplitN(args[0].Text(), "%s", len(args))
	var b strings.Builder
	for i, part := range parts {
		if i > 0 {
			b.WriteString(args[i].Format())
		}
		b.WriteString(part)
	}
	return value.Text(b.String()), nil
}

// Input: input() or input(prompt). The prompt is written without a newline
// and the line read is returned as text. End of input yields "".
func Input(h Host, args []value.Value) (value.Value, error) {
	if len(args) > 1 {
		return value.Value{}, errors.Wrapf(ErrArityMismatch, "input expects at most 1 argument, got %d", len(args))
	}
	if len(args) == 1 {
		if _, err := io.WriteString(h.Output(), args[0].Format()); err != nil {
			return value.Value{}, errors.Wrap(err, "input prompt")
		}
	}
	line, err := h.ReadLine()
	if err != nil && err != io.EOF {
		return value.Value{}, errors.Wrap(err, "input")
	}
	return value.Text(line), nil
}

// Print: print(args...) writes the arguments separated by spaces and ends the
// line. It returns the number of bytes written.
func Print(h Host, args []value.Value) (value.Value, error) {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = arg.Format()
	}
	n, err := io.WriteString(h.Output(), strings.Join(parts, " ")+"\n")
	if err != nil {
		return value.Value{}, errors.Wrap(err, "print")
	}
	return value.Int(int64(n)), nil
}
