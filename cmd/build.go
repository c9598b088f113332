// Package cmd turns CSV input and command line flags into tables.
package cmd

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"termtable/config"
	"termtable/log"
	"termtable/table"
)

// ErrNoRecords is returned for input without a single CSV record.
var ErrNoRecords = errors.New("no records in input")

// Options holds the flags that shape a table. Zero values leave the
// configured defaults alone.
type Options struct {
	Box string

	// Expand and Border override the configuration when set.
	Expand *bool
	Border *bool

	// Star, Fixed and Align take "column=value" specs. NoWrap takes
	// column names. A column is named by its header or its 1-based index.
	Star   []string
	Fixed  []string
	NoWrap []string
	Align  []string

	// NoHeader treats the first record as data.
	NoHeader bool
	// Footer takes the last record as the footer row.
	Footer bool
}

// ReadRecords parses CSV from r. Every record must have as many fields as
// the first one.
func ReadRecords(r io.Reader, comma rune) ([][]string, error) {
	cr := csv.NewReader(r)
	if comma != 0 {
		cr.Comma = comma
	}
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	return records, nil
}

// ParseAssignments parses "column=integer" specs.
func ParseAssignments(specs []string) (map[string]int, error) {
	out := make(map[string]int, len(specs))
	for _, spec := range specs {
		name, value, ok := strings.Cut(spec, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid spec %q, expected column=value", spec)
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("invalid spec %q: %w", spec, err)
		}
		out[name] = n
	}
	return out, nil
}

// ParseAlign parses "column=left|center|right" specs.
func ParseAlign(specs []string) (map[string]table.Align, error) {
	out := make(map[string]table.Align, len(specs))
	for _, spec := range specs {
		name, value, ok := strings.Cut(spec, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid spec %q, expected column=alignment", spec)
		}
		switch value {
		case "left":
			out[name] = table.AlignLeft
		case "center":
			out[name] = table.AlignCenter
		case "right":
			out[name] = table.AlignRight
		default:
			return nil, fmt.Errorf("invalid alignment %q in %q", value, spec)
		}
	}
	return out, nil
}

// columnKeys matches column specs against the table's columns and tracks
// which specs were used.
type columnKeys struct {
	headers []string
	used    map[string]bool
}

// lookupKey returns the value in m for column i, matched by header first
// and then by 1-based index.
func lookupKey[V any](k *columnKeys, m map[string]V, i int) (V, bool) {
	for _, key := range []string{k.headers[i], strconv.Itoa(i + 1)} {
		if key == "" {
			continue
		}
		if v, ok := m[key]; ok {
			k.used[key] = true
			return v, true
		}
	}
	var zero V
	return zero, false
}

func (k *columnKeys) checkUsed(key string) error {
	if !k.used[key] {
		return fmt.Errorf("no column %q", key)
	}
	return nil
}

// BuildTable creates a table from CSV records. The configuration supplies
// the defaults and opts override them.
func BuildTable(ctx context.Context, records [][]string, cfg *config.Config, opts Options) (*table.Table, error) {
	logger := log.FromContext(ctx)
	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	tableOpts := cfg.TableOptions()
	if opts.Box != "" {
		box, ok := table.BoxByName(opts.Box)
		if !ok {
			return nil, fmt.Errorf("unknown box %q, expected one of %v", opts.Box, table.BoxNames())
		}
		tableOpts = append(tableOpts, table.WithBox(box))
	}
	if opts.Expand != nil {
		tableOpts = append(tableOpts, table.WithExpand(*opts.Expand))
	}
	if opts.Border != nil {
		tableOpts = append(tableOpts, table.WithBorder(*opts.Border))
	}

	headers, body := records[0], records[1:]
	if opts.NoHeader {
		headers, body = make([]string, len(records[0])), records
		tableOpts = append(tableOpts, table.WithShowHeader(false))
	}
	var footers []string
	if opts.Footer && len(body) > 0 {
		footers, body = body[len(body)-1], body[:len(body)-1]
	}

	stars, err := ParseAssignments(opts.Star)
	if err != nil {
		return nil, err
	}
	fixed, err := ParseAssignments(opts.Fixed)
	if err != nil {
		return nil, err
	}
	aligns, err := ParseAlign(opts.Align)
	if err != nil {
		return nil, err
	}
	noWrap := make(map[string]bool, len(opts.NoWrap))
	for _, name := range opts.NoWrap {
		noWrap[name] = true
	}

	keys := &columnKeys{headers: headers, used: make(map[string]bool)}
	t := table.New(tableOpts...)
	for i, header := range headers {
		colOpts := []table.ColumnOption{table.WithPadding(cfg.PaddingLeft, cfg.PaddingRight)}
		star, isStar := lookupKey(keys, stars, i)
		width, isFixed := lookupKey(keys, fixed, i)
		switch {
		case isStar && isFixed:
			return nil, fmt.Errorf("column %d (%q) is both star and fixed", i+1, header)
		case isStar:
			colOpts = append(colOpts, table.WithHint(table.Star(star)))
		case isFixed:
			colOpts = append(colOpts, table.WithHint(table.Fixed(width)))
		}
		if _, ok := lookupKey(keys, noWrap, i); ok {
			colOpts = append(colOpts, table.NoWrap())
		}
		if a, ok := lookupKey(keys, aligns, i); ok {
			colOpts = append(colOpts, table.WithAlign(a))
		}
		if footers != nil {
			colOpts = append(colOpts, table.WithFooter(footers[i]))
		}
		if err := t.AddColumn(table.NewColumn(header, colOpts...)); err != nil {
			return nil, fmt.Errorf("column %d: %w", i+1, err)
		}
	}

	for _, m := range []map[string]int{stars, fixed} {
		for key := range m {
			if err := keys.checkUsed(key); err != nil {
				return nil, err
			}
		}
	}
	for key := range noWrap {
		if err := keys.checkUsed(key); err != nil {
			return nil, err
		}
	}
	for key := range aligns {
		if err := keys.checkUsed(key); err != nil {
			return nil, err
		}
	}

	for _, record := range body {
		if err := t.AddTextRow(record...); err != nil {
			return nil, err
		}
	}

	logger.Debugf("built table: %d columns, %d rows", len(headers), len(body))
	return t, nil
}
