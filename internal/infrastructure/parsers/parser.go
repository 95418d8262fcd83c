// Package parsers decodes roster files into raw tabular rows.
package parsers

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Supported formats.
const (
	FormatCSV         = "csv"
	FormatSpreadsheet = "spreadsheet"
	FormatJSON        = "json"
	FormatAuto        = "auto"
)

// ErrUnsupportedFormat is returned when no parser handles a format or file.
var ErrUnsupportedFormat = errors.New("unsupported format")

// RawRow is one non-empty row of a tabular file, before validation.
// Row 0 is data; no header is skipped.
type RawRow struct {
	Fields  []string
	LineNum int // Line or row number in the source file (1-indexed)
}

// ParseError reports a file that could not be decoded at all.
type ParseError struct {
	Format string
	Line   int // 0 if unknown
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parsing %s: line %d: %v", e.Format, e.Line, e.Err)
	}
	return fmt.Sprintf("parsing %s: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parser defines the interface for decoding rows from a file format.
type Parser interface {
	Parse(r io.Reader) ([]RawRow, error)
}

// Option configures parsers built by ForFormat and ForFile.
type Option func(*options)

type options struct {
	sheet string
}

// WithSheet selects the spreadsheet sheet to read. The first sheet is used
// when unset. Ignored by other formats.
func WithSheet(name string) Option {
	return func(o *options) {
		o.sheet = name
	}
}

// ForFormat returns the appropriate parser for the given format.
// Supported formats: "csv", "spreadsheet" (alias "xlsx"), "json".
func ForFormat(format string, opts ...Option) Parser {
	o := buildOptions(opts)
	switch strings.ToLower(format) {
	case FormatCSV:
		return &CSVParser{}
	case FormatSpreadsheet, "xlsx":
		return &SpreadsheetParser{Sheet: o.sheet}
	case FormatJSON:
		return &JSONParser{}
	default:
		return nil
	}
}

// ForFile returns the appropriate parser based on file extension.
func ForFile(filename string, opts ...Option) Parser {
	o := buildOptions(opts)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv", ".txt":
		return &CSVParser{}
	case ".xlsx", ".xlsm":
		return &SpreadsheetParser{Sheet: o.sheet}
	case ".json":
		return &JSONParser{}
	default:
		return nil
	}
}

// Resolve picks a parser by explicit format, or by file extension when the
// format is empty or "auto".
func Resolve(format, filename string, opts ...Option) (Parser, error) {
	var p Parser
	if format == "" || format == FormatAuto {
		p = ForFile(filename, opts...)
	} else {
		p = ForFormat(format, opts...)
	}
	if p == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
	}
	return p, nil
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// isBlank reports whether every field is empty after trimming.
func isBlank(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
