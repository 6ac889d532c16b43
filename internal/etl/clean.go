// Package etl prepares the recipe corpus: it cleans the raw dataset
// export into the CSV the corpus store loads. This is an offline step;
// nothing at serving time depends on it.
package etl

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DefaultLimit caps how many cleaned rows are written.
const DefaultLimit = 1500

// outputColumns is the corpus store's required column set.
var outputColumns = []string{
	"title", "ingredients", "instructions", "food_types",
	"description", "average_rating", "minutes",
}

// Clean reads the raw dataset CSV and writes the cleaned corpus CSV.
// Rows missing a name, ingredients or steps are dropped; list-literal
// cells (as exported by the upstream dataset) are flattened to plain
// comma- or period-joined text. At most limit rows are written.
func Clean(inputPath, outputPath string, limit int) (int, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	in, err := os.Open(inputPath)
	if err != nil {
		return 0, fmt.Errorf("open raw dataset: %w", err)
	}
	defer func() { _ = in.Close() }()

	r := csv.NewReader(in)
	header, err := r.Read()
	if err != nil {
		return 0, fmt.Errorf("read raw header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"name", "ingredients", "steps"} {
		if _, ok := cols[required]; !ok {
			return 0, fmt.Errorf("raw dataset missing column %q", required)
		}
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return 0, fmt.Errorf("create output directory: %w", err)
	}
	out, err := os.Create(outputPath)
	if err != nil {
		return 0, fmt.Errorf("create corpus file: %w", err)
	}
	defer func() { _ = out.Close() }()

	w := csv.NewWriter(out)
	if err := w.Write(outputColumns); err != nil {
		return 0, fmt.Errorf("write corpus header: %w", err)
	}

	written := 0
	for written < limit {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return written, fmt.Errorf("read raw row: %w", err)
		}

		cell := func(name string) string {
			i, ok := cols[name]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		name := cell("name")
		rawIngredients := cell("ingredients")
		rawSteps := cell("steps")
		if name == "" || rawIngredients == "" || rawSteps == "" {
			continue
		}

		row := []string{
			name,
			joinList(rawIngredients, ", "),
			joinList(rawSteps, ". "),
			joinList(cell("food types"), ", "),
			cell("description"),
			cell("average_rating"),
			cell("minutes"),
		}
		if err := w.Write(row); err != nil {
			return written, fmt.Errorf("write corpus row: %w", err)
		}
		written++
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return written, fmt.Errorf("flush corpus file: %w", err)
	}
	return written, nil
}

// joinList flattens a python-style list literal ("['a', 'b']") into its
// items joined by sep. Anything that is not a list literal passes
// through unchanged.
func joinList(cell, sep string) string {
	items, ok := parseListLiteral(cell)
	if !ok {
		return cell
	}
	return strings.Join(items, sep)
}

// parseListLiteral parses "['a', \"b\"]" into its string items. It
// only needs to handle the flat, string-only lists the dataset export
// produces.
func parseListLiteral(s string) ([]string, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return nil, false
	}
	body := s[1 : len(s)-1]
	if strings.TrimSpace(body) == "" {
		return []string{}, true
	}

	var items []string
	var current strings.Builder
	var quote byte
	inQuote := false
	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case inQuote && c == '\\' && i+1 < len(body):
			i++
			current.WriteByte(body[i])
		case inQuote && c == quote:
			inQuote = false
		case !inQuote && (c == '\'' || c == '"'):
			inQuote = true
			quote = c
		case !inQuote && c == ',':
			items = append(items, strings.TrimSpace(current.String()))
			current.Reset()
		case inQuote:
			current.WriteByte(c)
		}
		// Unquoted characters outside separators are ignored; the
		// dataset only exports quoted string items.
	}
	items = append(items, strings.TrimSpace(current.String()))
	return items, true
}
