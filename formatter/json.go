package formatter

import (
	"encoding/json"
	"io"

	"github.com/gnolang/searchq/internal/types"
)

// Report is the JSON document written for a set of results.
type Report struct {
	Results []types.Result `json:"results"`
	Summary types.Summary  `json:"summary"`
}

// WriteJSON writes results and their summary to w as one JSON document.
func WriteJSON(w io.Writer, results []types.Result) error {
	if results == nil {
		results = []types.Result{}
	}
	d, err := json.Marshal(Report{
		Results: results,
		Summary: types.Summarize(results),
	})
	if err != nil {
		return err
	}
	d = append(d, '\n')
	_, err = w.Write(d)
	return err
}
