package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/searchq"
	"github.com/gnolang/searchq/batch"
	"github.com/gnolang/searchq/formatter"
	"github.com/gnolang/searchq/internal/types"
)

var (
	batchJSONOutput bool
	batchOutPath    string
	watchFiles      bool
	showProgress    bool
)

var batchCmd = &cobra.Command{
	Use:   "batch [paths...]",
	Short: "Translate files of queries, one query per line",
	Long: `Translates every query of the given files. Directories are searched
for .txt, .q and .queries files. Blank lines and lines starting with # are skipped.
Example) searchq batch --json -o results.json queries/`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(1)
		}

		engine, cfg := newEngine(cmd)
		opts := batch.Options{Workers: cfg.Workers}
		if showProgress {
			opts.Progress = cmd.ErrOrStderr()
		}

		if watchFiles {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			exitOnError(runWatch(ctx, logger, engine, args, opts, cmd.OutOrStdout()))
			return
		}

		// timeout is a global variable declared in root.go
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		exitOnError(runBatch(ctx, logger, engine, args, opts, cmd.OutOrStdout(), batchJSONOutput, batchOutPath))
	},
}

func init() {
	batchCmd.Flags().BoolVar(&batchJSONOutput, "json", false, "Output results in JSON format")
	batchCmd.Flags().StringVarP(&batchOutPath, "output", "o", "", "Output path (when using JSON)")
	batchCmd.Flags().BoolVar(&watchFiles, "watch", false, "Translate files again whenever they change")
	batchCmd.Flags().BoolVar(&showProgress, "progress", false, "Show a progress bar on standard error")
	batchCmd.Flags().Int("workers", 0, "Number of queries translated concurrently (default one per CPU)")
}

func runBatch(
	ctx context.Context,
	logger *zap.Logger,
	tr searchq.Translator,
	paths []string,
	opts batch.Options,
	w io.Writer,
	isJSON bool,
	outPath string,
) error {
	results, err := batch.ProcessFiles(ctx, logger, tr, paths, opts)
	if err != nil {
		return err
	}

	if err := printResults(w, results, isJSON, outPath); err != nil && err != errParseFailed {
		return err
	}

	summary := types.Summarize(results)
	logger.Info("Batch finished",
		zap.Int("total", summary.Total),
		zap.Int("legacy", summary.Legacy),
		zap.Int("failed", summary.Failed))
	if !isJSON {
		fmt.Fprint(w, formatter.FormatSummary(summary))
	}
	if summary.Failed > 0 {
		return errParseFailed
	}
	return nil
}

func runWatch(
	ctx context.Context,
	logger *zap.Logger,
	tr searchq.Translator,
	paths []string,
	opts batch.Options,
	w io.Writer,
) error {
	// progress bars would interleave with the reports
	opts.Progress = nil

	watcher, err := batch.NewWatcher(logger, tr, paths, opts, func(path string, results []types.Result) {
		fmt.Fprint(w, formatter.GenerateFormattedResult(results))
		fmt.Fprint(w, formatter.FormatSummary(types.Summarize(results)))
	})
	if err != nil {
		return err
	}

	logger.Info("Watching for changes", zap.Strings("paths", paths))
	if err := watcher.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
