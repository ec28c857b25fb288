package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/gnolang/searchq"
	"github.com/gnolang/searchq/batch"
	"github.com/gnolang/searchq/internal/types"
)

var (
	jsonOutput bool
	outPath    string
)

var translateCmd = &cobra.Command{
	Use:   "translate [queries...]",
	Short: "Normalize legacy queries and split them into operators and clauses",
	Long: `Translates every query given as argument, or one query per line of
standard input when no argument is given.
Example) searchq translate "find a ellis and t muon"`,
	Run: func(cmd *cobra.Command, args []string) {
		engine, _ := newEngine(cmd)
		queries, err := readArgs(args, cmd.InOrStdin())
		exitOnError(err)
		exitOnError(runTranslate(cmd.OutOrStdout(), engine, queries, jsonOutput, outPath))
	},
}

func init() {
	for _, c := range []*cobra.Command{translateCmd, parseCmd} {
		c.Flags().BoolVar(&jsonOutput, "json", false, "Output results in JSON format")
		c.Flags().StringVarP(&outPath, "output", "o", "", "Output path (when using JSON)")
	}
}

func runTranslate(w io.Writer, tr searchq.Translator, queries []batch.Query, isJSON bool, outPath string) error {
	results := make([]types.Result, len(queries))
	for i, q := range queries {
		results[i] = tr.Translate(q.Text)
		results[i].Line = q.Line
	}
	return printResults(w, results, isJSON, outPath)
}
