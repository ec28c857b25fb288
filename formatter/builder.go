package formatter

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/fatih/color"

	"github.com/gnolang/searchq/internal/types"
	"github.com/gnolang/searchq/query"
)

const tabWidth = 8

var (
	errorStyle    = color.New(color.FgRed, color.Bold)
	okStyle       = color.New(color.FgGreen, color.Bold)
	fileStyle     = color.New(color.FgCyan, color.Bold)
	lineStyle     = color.New(color.FgHiBlue, color.Bold)
	messageStyle  = color.New(color.FgRed, color.Bold)
	operatorStyle = color.New(color.FgYellow, color.Bold)
	noteStyle     = color.New(color.FgGreen)
)

// resultFormatter is the interface that wraps the ResultTemplate method.
type resultFormatter interface {
	ResultTemplate() string
}

// getResultFormatter returns the formatter for a parsed or a failed query.
func getResultFormatter(r types.Result) resultFormatter {
	if r.Failed() {
		return &ErrorFormatter{}
	}
	return &TokensFormatter{}
}

// TokensFormatter renders a successfully parsed query, one operator and
// clause per line.
type TokensFormatter struct{}

func (f *TokensFormatter) ResultTemplate() string {
	return `{{header .Status .Location}}
{{source .Query}}
{{- if .Legacy}}
{{canonical .Canonical}}
{{- end}}
{{- range .Pairs}}
{{pair .}}
{{- end}}

`
}

// ErrorFormatter renders a query that failed to parse with a caret under
// the offending character.
type ErrorFormatter struct{}

func (f *ErrorFormatter) ResultTemplate() string {
	return `{{header .Status .Location}}
{{snippet .Canonical .Column .Message}}
{{- if .Legacy}}
{{note .Query}}
{{- end}}

`
}

// GenerateFormattedResult formats results into a human-readable string.
func GenerateFormattedResult(results []types.Result) string {
	var builder strings.Builder
	for _, r := range results {
		builder.WriteString(buildResult(r, getResultFormatter(r)))
	}
	return builder.String()
}

// FormatSummary renders the counters of a batch on one line.
func FormatSummary(s types.Summary) string {
	failed := fmt.Sprintf("%d failed", s.Failed)
	if s.Failed > 0 {
		failed = errorStyle.Sprint(failed)
	}
	return fmt.Sprintf("%d queries, %d legacy, %s\n", s.Total, s.Legacy, failed)
}

/***** Result Formatter Builder *****/

type ResultData struct {
	Status    string
	Location  string
	Query     string
	Canonical string
	Legacy    bool
	Pairs     []query.Pair
	Message   string
	Column    int
}

func buildResult(r types.Result, formatter resultFormatter) string {
	data := ResultData{
		Status:    "ok",
		Location:  location(r),
		Query:     r.Query,
		Canonical: r.Canonical,
		Legacy:    r.Legacy,
		Pairs:     r.Tokens.Pairs(),
		Message:   r.Error,
		Column:    r.Position + 1,
	}
	if r.Failed() {
		data.Status = "error"
	}

	funcMap := template.FuncMap{
		"header":    header,
		"source":    source,
		"canonical": canonical,
		"pair":      pair,
		"snippet":   snippet,
		"note":      note,
	}

	tmpl := template.Must(template.New("result").Funcs(funcMap).Parse(formatter.ResultTemplate()))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Sprintf("Error formatting result: %v", err)
	}
	return buf.String()
}

func location(r types.Result) string {
	switch {
	case r.Source != "" && r.Line > 0:
		return fmt.Sprintf("%s:%d", r.Source, r.Line)
	case r.Source != "":
		return r.Source
	case r.Line > 0:
		return fmt.Sprintf("#%d", r.Line)
	}
	return ""
}

// utils functions used in the text templates

func header(status, location string) string {
	var s string
	if status == "error" {
		s = errorStyle.Sprint(status)
	} else {
		s = okStyle.Sprint(status)
	}
	if location != "" {
		s += ": " + fileStyle.Sprint(location)
	}
	return s
}

func source(q string) string {
	return lineStyle.Sprint(" --> ") + q
}

func canonical(c string) string {
	return lineStyle.Sprint("  = ") + noteStyle.Sprint(c)
}

func pair(p query.Pair) string {
	return lineStyle.Sprint("  | ") + operatorStyle.Sprint(string(p.Operator)) + " " + p.Clause
}

func snippet(line string, column int, message string) string {
	var b strings.Builder
	b.WriteString(lineStyle.Sprint("  |") + "\n")
	b.WriteString(lineStyle.Sprint("  | ") + expandTabs(line) + "\n")
	b.WriteString(lineStyle.Sprint("  | "))
	b.WriteString(strings.Repeat(" ", calculateVisualColumn(line, column)))
	b.WriteString(messageStyle.Sprintf("^ %s", message))
	return b.String()
}

func note(q string) string {
	return lineStyle.Sprint("  = ") + noteStyle.Sprint("from: ") + q
}

// expandTabs replaces tab characters with spaces up to the next tab stop.
func expandTabs(line string) string {
	var expanded strings.Builder
	column := 0
	for _, ch := range line {
		if ch == '\t' {
			spaces := tabWidth - (column % tabWidth)
			expanded.WriteString(strings.Repeat(" ", spaces))
			column += spaces
			continue
		}
		expanded.WriteRune(ch)
		column++
	}
	return expanded.String()
}

// calculateVisualColumn calculates the visual column position
// in a string. taking into account tab characters.
func calculateVisualColumn(line string, column int) int {
	if column < 0 {
		return 0
	}
	visualColumn := 0
	for i, ch := range line {
		if i+1 == column {
			break
		}
		if ch == '\t' {
			visualColumn += tabWidth - (visualColumn % tabWidth)
		} else {
			visualColumn++
		}
	}
	return visualColumn
}
