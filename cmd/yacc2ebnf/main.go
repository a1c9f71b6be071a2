// Command yacc2ebnf converts a YACC grammar, together with a supplementary
// EBNF fragment, to simplified EBNF definitions suitable for rendering as
// syntax diagrams.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/syndiag/yacc2ebnf/convert"
	"github.com/syndiag/yacc2ebnf/pipeline"
)

func main() {
	if e := newCommand().Execute(); e != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var (
		outputPath string
		verbose    bool
		opts       convert.Options
	)

	cmd := &cobra.Command{
		Use:   "yacc2ebnf <grammar-file> <supplement-file>",
		Short: "convert a YACC grammar to simplified EBNF definitions",
		Long: `yacc2ebnf reads the rules section of a YACC grammar file and a supplementary
EBNF file defining the lexical non-terminals the grammar leaves open, and
writes one "name ::= expression" definition per line: grammar-derived
definitions in dependency order, then the supplementary ones. Trivial
non-recursive definitions are inlined at their references and omitted.`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := zap.NewNop()
			if verbose {
				l, e := zap.NewDevelopment()
				if e != nil {
					return e
				}
				defer l.Sync()
				log = l
			}

			out := cmd.OutOrStdout()
			if outputPath != "" {
				f, e := os.Create(outputPath)
				if e != nil {
					return e
				}
				defer f.Close()
				out = f
			}

			return pipeline.Run(pipeline.FileResolver{}, out, args[0], args[1], pipeline.Options{
				Convert: opts,
				Logger:  log,
			})
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "",
		"write the definitions to `file` instead of stdout")
	cmd.Flags().IntVar(&opts.MaxInlineAlternatives, "max-inline-alternatives",
		convert.DefaultMaxInlineAlternatives,
		"largest alternation still inlined at its references")
	cmd.Flags().IntVar(&opts.MaxInlineSequence, "max-inline-sequence",
		convert.DefaultMaxInlineSequence,
		"largest terminal-only sequence still inlined at its references")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log conversion progress")
	return cmd
}
