package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gnolang/searchq"
	"github.com/gnolang/searchq/batch"
)

var trace bool

var normalizeCmd = &cobra.Command{
	Use:   "normalize [queries...]",
	Short: "Rewrite legacy find queries into canonical syntax",
	Run: func(cmd *cobra.Command, args []string) {
		engine, _ := newEngine(cmd)
		queries, err := readArgs(args, cmd.InOrStdin())
		exitOnError(err)
		runNormalize(cmd.OutOrStdout(), engine, queries, trace)
	},
}

func init() {
	normalizeCmd.Flags().BoolVar(&trace, "trace", false, "Print the query after every rewrite stage")
}

func runNormalize(w io.Writer, engine *searchq.Engine, queries []batch.Query, withTrace bool) {
	for _, q := range queries {
		if !withTrace {
			fmt.Fprintln(w, engine.Normalize(q.Text))
			continue
		}

		canonical, steps := engine.Trace(q.Text)
		fmt.Fprintln(w, canonical)
		for _, s := range steps {
			fmt.Fprintf(w, "  %-13s %s\n", s.Stage+":", s.Query)
		}
	}
}
