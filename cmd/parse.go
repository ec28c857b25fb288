package cmd

import (
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/gnolang/searchq/batch"
	"github.com/gnolang/searchq/internal/types"
	"github.com/gnolang/searchq/query"
)

var parseCmd = &cobra.Command{
	Use:   "parse [queries...]",
	Short: "Split canonical queries into operators and clauses",
	Run: func(cmd *cobra.Command, args []string) {
		queries, err := readArgs(args, cmd.InOrStdin())
		exitOnError(err)
		exitOnError(runParse(cmd.OutOrStdout(), queries, jsonOutput, outPath))
	},
}

func runParse(w io.Writer, queries []batch.Query, isJSON bool, outPath string) error {
	results := make([]types.Result, len(queries))
	for i, q := range queries {
		results[i] = parseOnly(q)
	}
	return printResults(w, results, isJSON, outPath)
}

func parseOnly(q batch.Query) types.Result {
	res := types.Result{Line: q.Line, Query: q.Text, Canonical: q.Text}
	tokens, err := query.Parse(q.Text)
	if err != nil {
		res.Error = err.Error()
		var perr *query.ParseError
		if errors.As(err, &perr) {
			res.Position = perr.Position
		}
		return res
	}
	res.Tokens = tokens
	return res
}
