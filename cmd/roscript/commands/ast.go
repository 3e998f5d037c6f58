package commands

import (
	"github.com/kr/pretty"
	"github.com/spf13/cobra"
)

func newASTCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ast <file>",
		Short: "Print the syntax tree of a program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			prog, err := s.compile(cmd, args[0], opts.strict)
			if err != nil {
				return err
			}
			_, err = pretty.Fprintf(cmd.OutOrStdout(), "%# v\n", prog)
			return err
		},
	}
}
