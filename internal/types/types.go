package types

import "github.com/gnolang/searchq/query"

// Result represents one translated query.
type Result struct {
	Line      int          `json:"line,omitempty"`   // 1-based line in the source file, 0 for direct input
	Source    string       `json:"source,omitempty"` // file the query was read from
	Query     string       `json:"query"`            // input as typed
	Canonical string       `json:"canonical"`        // input after legacy normalization
	Legacy    bool         `json:"legacy"`           // input was written in the legacy dialect
	Tokens    query.Result `json:"tokens,omitempty"` // parser output, nil on error
	Error     string       `json:"error,omitempty"`  // parse error message
	Position  int          `json:"position"`         // byte offset of the error in Canonical
}

// Failed reports whether the query could not be parsed.
func (r Result) Failed() bool {
	return r.Error != ""
}

// Summary counts the results of a batch.
type Summary struct {
	Total  int `json:"total"`
	Legacy int `json:"legacy"`
	Failed int `json:"failed"`
}

// Summarize builds a Summary over results.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.Legacy {
			s.Legacy++
		}
		if r.Failed() {
			s.Failed++
		}
	}
	return s
}
