package interp

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/RaresPSCR/ROScript/pkg/compiler/ast"
	"github.com/RaresPSCR/ROScript/pkg/stdlib"
)

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithOutput sets the program's standard output. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(it *Interpreter) { it.out.w = w }
}

// WithInput sets where citeste and input() read lines from. Defaults to os.Stdin.
func WithInput(r io.Reader) Option {
	return func(it *Interpreter) { it.in = bufio.NewReader(r) }
}

// WithBuiltins replaces the function registry.
func WithBuiltins(r stdlib.Registry) Option {
	return func(it *Interpreter) { it.builtins = r }
}

// WithStepLimit aborts execution with ErrStepLimit after n steps. Zero means
// no limit.
func WithStepLimit(n int) Option {
	return func(it *Interpreter) { it.stepLimit = n }
}

// WithInputPrompt writes prompt to the output before every citeste.
func WithInputPrompt(prompt string) Option {
	return func(it *Interpreter) { it.prompt = prompt }
}

// WithLogger attaches a logger for debug output.
func WithLogger(log *logrus.Entry) Option {
	return func(it *Interpreter) { it.log = log }
}

// Interpreter executes programs against a single Namespace. It is not safe
// for concurrent use.
type Interpreter struct {
	ns       Namespace
	builtins stdlib.Registry
	out      countingWriter
	in       *bufio.Reader
	prompt   string

	stepLimit int
	steps     int
	ctx       context.Context

	log *logrus.Entry
}

// New creates an interpreter with the default builtins wired to stdin/stdout.
func New(opts ...Option) *Interpreter {
	it := &Interpreter{
		ns:       Namespace{},
		builtins: stdlib.New(),
		out:      countingWriter{w: os.Stdout},
		in:       bufio.NewReader(os.Stdin),
		ctx:      context.Background(),
	}
	for _, opt := range opts {
		opt(it)
	}
	if it.log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		it.log = logrus.NewEntry(l)
	}
	return it
}

// Reset clears the namespace and counters so the interpreter can run another
// program. Options are kept.
func (it *Interpreter) Reset() {
	it.ns = Namespace{}
	it.steps = 0
	it.out.n = 0
}

// Namespace exposes the variables of the current run.
func (it *Interpreter) Namespace() Namespace { return it.ns }

// Builtins exposes the function registry so hosts can register functions.
func (it *Interpreter) Builtins() stdlib.Registry { return it.builtins }

// Steps reports how many steps the last run consumed.
func (it *Interpreter) Steps() int { return it.steps }

// BytesWritten reports how much program output has been produced since the
// last Reset.
func (it *Interpreter) BytesWritten() int64 { return it.out.n }

// Output implements stdlib.Host.
func (it *Interpreter) Output() io.Writer { return &it.out }

// ReadLine implements stdlib.Host. The line terminator is stripped; io.EOF
// is returned only when nothing was read.
func (it *Interpreter) ReadLine() (string, error) {
	line, err := it.in.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	return strings.TrimRight(line, "\r\n"), err
}

// Execute runs prog to completion or to the first runtime error.
func (it *Interpreter) Execute(prog *ast.Program) error {
	return it.ExecuteContext(context.Background(), prog)
}

// ExecuteContext is Execute with cancellation checked at every step.
func (it *Interpreter) ExecuteContext(ctx context.Context, prog *ast.Program) (err error) {
	it.ctx = ctx
	it.steps = 0
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				panic(r)
			}
			err = errors.Wrap(e, "interpreter panic")
		}
		it.log.WithFields(logrus.Fields{
			"steps":   it.steps,
			"elapsed": time.Since(start),
			"failed":  err != nil,
		}).Debug("executed program")
	}()

	return it.execBlock(prog.Statements)
}

func (it *Interpreter) step() error {
	it.steps++
	if it.stepLimit > 0 && it.steps > it.stepLimit {
		return errors.Wrapf(ErrStepLimit, "limit is %d", it.stepLimit)
	}
	if err := it.ctx.Err(); err != nil {
		return errors.Wrap(err, "execution stopped")
	}
	return nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
