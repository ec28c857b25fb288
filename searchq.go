// Package searchq translates search queries into an ordered sequence of
// combining operators and clauses.
//
// A query may be written in the canonical syntax or in the legacy "find"
// dialect. Legacy queries are first rewritten by package legacy, then the
// canonical text is segmented by package query.
package searchq

import (
	"errors"

	"github.com/gnolang/searchq/internal/config"
	"github.com/gnolang/searchq/internal/types"
	"github.com/gnolang/searchq/legacy"
	"github.com/gnolang/searchq/query"
)

// Translator is the interface that wraps the basic Translate method.
type Translator interface {
	Translate(q string) types.Result
}

// Engine normalizes and parses queries. It is safe for concurrent use.
type Engine struct {
	normalizer *legacy.Normalizer
}

var _ Translator = (*Engine)(nil)

// NewEngine creates an engine with the given normalizer options.
func NewEngine(opts legacy.Options) *Engine {
	return &Engine{normalizer: legacy.New(opts)}
}

// New creates an engine configured from the file at configurationPath.
// An empty path looks for the default configuration file and falls back to
// the built-in defaults when it does not exist.
func New(configurationPath string) (*Engine, error) {
	cfg, err := config.Load(configurationPath)
	if err != nil {
		return nil, err
	}
	return NewEngine(cfg.LegacyOptions()), nil
}

// Normalize rewrites q into canonical syntax.
func (e *Engine) Normalize(q string) string {
	return e.normalizer.Normalize(q)
}

// Trace normalizes q and returns the intermediate form after every stage.
func (e *Engine) Trace(q string) (string, []legacy.Step) {
	return e.normalizer.Trace(q)
}

// Translate normalizes q and parses the result. Parse failures are reported
// in the returned Result rather than as an error.
func (e *Engine) Translate(q string) types.Result {
	canonical := e.normalizer.Normalize(q)
	res := types.Result{
		Query:     q,
		Canonical: canonical,
		Legacy:    legacy.IsLegacy(q),
	}

	tokens, err := query.Parse(canonical)
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

var std = NewEngine(legacy.Options{})

// Translate translates q with the default engine.
func Translate(q string) types.Result {
	return std.Translate(q)
}
