package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newTokensCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "Print the tokens of a program and the token count of every line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			toks, perLine, err := s.load(args[0])
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
			fmt.Fprintln(w, "LINE\tKIND\tLEXEME")
			for _, tok := range toks {
				fmt.Fprintf(w, "%d\t%s\t%s\n", tok.Line, tok.Kind, tok.Source())
			}
			if err := w.Flush(); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "tokens per line: %v\n", perLine)
			return err
		},
	}
}
