package commands

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/RaresPSCR/ROScript/pkg/compiler/ast"
	"github.com/RaresPSCR/ROScript/pkg/compiler/lexer"
	"github.com/RaresPSCR/ROScript/pkg/compiler/parser"
	"github.com/RaresPSCR/ROScript/pkg/interp"
	"github.com/RaresPSCR/ROScript/pkg/source"
)

func newRunCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run <file>",
		Short: "Run a program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFile(cmd, opts, args[0])
		},
	}
}

func runFile(cmd *cobra.Command, opts *rootOptions, path string) error {
	s, err := opts.open(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	prog, err := s.compile(cmd, path, opts.strict)
	if err != nil {
		return err
	}

	it := interp.New(
		interp.WithOutput(cmd.OutOrStdout()),
		interp.WithInput(cmd.InOrStdin()),
		interp.WithStepLimit(s.cfg.MaxSteps),
		interp.WithInputPrompt(s.cfg.InputPrompt),
		interp.WithLogger(s.log.WithField("component", "interp")),
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	err = it.ExecuteContext(ctx, prog)
	if s.cfg.TrailingNewline && it.BytesWritten() > 0 {
		fmt.Fprintln(cmd.OutOrStdout())
	}
	return err
}

// load reads and tokenizes a script.
func (s *session) load(path string) ([]lexer.Token, []int, error) {
	src, err := source.NewLoader(s.cfg.SourceRoot, s.cfg.MaxSourceSize).Load(path)
	if err != nil {
		return nil, nil, err
	}
	toks, perLine, err := lexer.Tokenize(src)
	if err != nil {
		return nil, nil, errors.Wrap(err, path)
	}
	s.log.WithFields(logrus.Fields{
		"file":   path,
		"tokens": len(toks),
		"lines":  len(perLine),
	}).Debug("tokenized source")
	return toks, perLine, nil
}

// compile loads and parses a script. Syntax errors are reported on stderr as
// they are found; they only fail the command in strict mode.
func (s *session) compile(cmd *cobra.Command, path string, strict bool) (*ast.Program, error) {
	toks, _, err := s.load(path)
	if err != nil {
		return nil, err
	}
	prog, err := parser.Parse(toks,
		parser.WithReporter(parser.NewReporter(cmd.ErrOrStderr(), s.colorize)),
		parser.WithLogger(s.log.WithField("component", "parser")),
	)
	if err != nil {
		var syntaxErrs parser.SyntaxErrors
		if !errors.As(err, &syntaxErrs) {
			return nil, err
		}
		s.log.WithField("syntax_errors", len(syntaxErrs)).Debug("program has syntax errors")
		if strict {
			return nil, errors.Errorf("%s: %d syntax error(s)", path, len(syntaxErrs))
		}
	}
	return prog, nil
}
