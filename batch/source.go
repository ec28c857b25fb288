package batch

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// commentPrefix starts a line that is not a query.
const commentPrefix = "#"

// maxLineSize bounds a single query line.
const maxLineSize = 1 << 20

// Query is one query read from a file.
type Query struct {
	Source string // file name, empty for standard input
	Line   int    // 1-based line number
	Text   string
}

// ReadQueries reads one query per line from r. Blank lines and lines whose
// first non-blank character is "#" are skipped. Lines are converted to NFC
// so that equivalent spellings of accented names compare equal.
func ReadQueries(r io.Reader, source string) ([]Query, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var queries []Query
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), "\r")
		trimmed := strings.TrimSpace(text)
		if trimmed == "" || strings.HasPrefix(trimmed, commentPrefix) {
			continue
		}
		queries = append(queries, Query{
			Source: source,
			Line:   line,
			Text:   norm.NFC.String(text),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", source, err)
	}
	return queries, nil
}

// ReadQueryFile reads the queries stored in the file at path.
func ReadQueryFile(path string) ([]Query, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadQueries(f, path)
}

var desiredExtensions = map[string]bool{
	".txt":     true,
	".q":       true,
	".queries": true,
}

func hasDesiredExtension(path string) bool {
	return desiredExtensions[filepath.Ext(path)]
}

// collectFiles expands path into the query files it names. A regular file
// is taken as is; a directory contributes every query file below it.
func collectFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && hasDesiredExtension(p) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking %s: %w", path, err)
	}
	return files, nil
}
