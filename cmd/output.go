package cmd

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/gnolang/searchq/batch"
	"github.com/gnolang/searchq/formatter"
	"github.com/gnolang/searchq/internal/types"
)

// readArgs returns the queries given on the command line, or the queries
// read from in when there are none.
func readArgs(args []string, in io.Reader) ([]batch.Query, error) {
	if len(args) == 0 {
		return batch.ReadQueries(in, "")
	}
	queries := make([]batch.Query, len(args))
	for i, arg := range args {
		queries[i] = batch.Query{Line: i + 1, Text: arg}
	}
	return queries, nil
}

// printResults writes results as text to w, or as JSON to w or outPath.
// It returns errParseFailed when any result failed.
func printResults(w io.Writer, results []types.Result, isJSON bool, outPath string) error {
	if !isJSON {
		fmt.Fprint(w, formatter.GenerateFormattedResult(results))
	} else if err := writeJSON(w, results, outPath); err != nil {
		return err
	}

	if types.Summarize(results).Failed > 0 {
		return errParseFailed
	}
	return nil
}

func writeJSON(w io.Writer, results []types.Result, outPath string) error {
	if outPath == "" {
		return formatter.WriteJSON(w, results)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("error creating JSON output file: %w", err)
	}
	defer f.Close()

	if err := formatter.WriteJSON(f, results); err != nil {
		return fmt.Errorf("error writing JSON output file: %w", err)
	}
	return nil
}

// exitOnError terminates the process with status 1 when err is set. Parse
// failures were already reported in the output, other errors are logged.
func exitOnError(err error) {
	if err == nil {
		return
	}
	if err != errParseFailed {
		logger.Error("Command failed", zap.Error(err))
	}
	os.Exit(1)
}
