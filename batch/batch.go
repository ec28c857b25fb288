// Package batch translates files of queries concurrently.
package batch

import (
	"context"
	"io"
	"runtime"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gnolang/searchq"
	"github.com/gnolang/searchq/internal/types"
)

// Options controls a batch run.
type Options struct {
	// Workers bounds the number of queries translated at once. Zero or less
	// means one per CPU.
	Workers int

	// Progress receives a progress bar when set.
	Progress io.Writer
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.NumCPU()
}

// ProcessFiles reads the queries of every path and translates them. Results
// keep the order of paths and, within a file, the order of lines.
func ProcessFiles(
	ctx context.Context,
	logger *zap.Logger,
	tr searchq.Translator,
	paths []string,
	opts Options,
) ([]types.Result, error) {
	var queries []Query
	for _, path := range paths {
		files, err := collectFiles(path)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
			}
			return nil, err
		}
		for _, file := range files {
			qs, err := ReadQueryFile(file)
			if err != nil {
				if logger != nil {
					logger.Error("Error reading query file", zap.String("file", file), zap.Error(err))
				}
				return nil, err
			}
			queries = append(queries, qs...)
		}
	}

	return Process(ctx, logger, tr, queries, opts)
}

// Process translates queries on a bounded pool of workers and returns the
// results in input order. When ctx is done no new query is started; the
// results finished so far are returned together with ctx.Err().
func Process(
	ctx context.Context,
	logger *zap.Logger,
	tr searchq.Translator,
	queries []Query,
	opts Options,
) ([]types.Result, error) {
	var (
		results = make([]types.Result, len(queries))
		done    = make([]bool, len(queries))
		bar     = newProgressBar(len(queries), opts.Progress)
		ctxErr  error
		g       errgroup.Group
	)
	g.SetLimit(opts.workers())

	for i, q := range queries {
		// g.Go blocks while all workers are busy
		if err := ctx.Err(); err != nil {
			ctxErr = err
			break
		}

		i, q := i, q
		g.Go(func() error {
			res := tr.Translate(q.Text)
			res.Source, res.Line = q.Source, q.Line
			if res.Failed() && logger != nil {
				logger.Debug("Query failed to parse",
					zap.String("source", q.Source),
					zap.Int("line", q.Line),
					zap.String("error", res.Error))
			}
			results[i], done[i] = res, true
			if bar != nil {
				_ = bar.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	if bar != nil {
		_ = bar.Finish()
	}

	if ctxErr == nil {
		return results, nil
	}

	finished := make([]types.Result, 0, len(results))
	for i, ok := range done {
		if ok {
			finished = append(finished, results[i])
		}
	}
	if logger != nil {
		logger.Warn("Batch interrupted",
			zap.Int("finished", len(finished)),
			zap.Int("total", len(queries)),
			zap.Error(ctxErr))
	}
	return finished, ctxErr
}

func newProgressBar(total int, w io.Writer) *progressbar.ProgressBar {
	if w == nil {
		return nil
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("translating"),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}
