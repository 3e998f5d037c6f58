package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/RaresPSCR/ROScript/pkg/compiler/lexer"
)

// SyntaxError describes a logical line that could not be parsed. The line is
// skipped; parsing continues with the next one.
type SyntaxError struct {
	Line   int
	Msg    string
	Tokens []lexer.Token
}

// Source joins the tokens of the offending line.
func (e *SyntaxError) Source() string {
	parts := make([]string, len(e.Tokens))
	for i, tok := range e.Tokens {
		parts[i] = tok.Source()
	}
	return strings.Join(parts, " ")
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("Syntax Error: %s\nOn line: %d: %s", e.Msg, e.Line, e.Source())
}

// SyntaxErrors is the set of diagnostics produced by one parse.
type SyntaxErrors []*SyntaxError

func (errs SyntaxErrors) Error() string {
	if len(errs) == 1 {
		return errs[0].Error()
	}
	return fmt.Sprintf("%d syntax errors; first: %s", len(errs), errs[0].Error())
}

// Reporter writes diagnostics to an error stream as they are found.
type Reporter struct {
	w      io.Writer
	prefix *color.Color
}

// NewReporter creates a reporter writing to w. When colorize is false the
// output is plain text regardless of the terminal.
func NewReporter(w io.Writer, colorize bool) *Reporter {
	prefix := color.New(color.FgRed, color.Bold)
	if colorize {
		prefix.EnableColor()
	} else {
		prefix.DisableColor()
	}
	return &Reporter{w: w, prefix: prefix}
}

// Report writes one diagnostic followed by a blank line.
func (r *Reporter) Report(e *SyntaxError) {
	fmt.Fprintf(r.w, "%s %s\nOn line: %d: %s\n\n", r.prefix.Sprint("Syntax Error:"), e.Msg, e.Line, e.Source())
}
