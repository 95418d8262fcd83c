// Package handlers contains application use case handlers.
package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/ersonp/pairgen/internal/infrastructure/parsers"
)

// FileOptions controls how a roster file is decoded.
type FileOptions struct {
	Format string // "csv", "spreadsheet", "json", or "auto"
	Sheet  string // Spreadsheet sheet; empty selects the first
}

// readRows opens and parses a roster file. Parse failures are returned as
// *parsers.ParseError (wrapped).
func readRows(ctx context.Context, filePath string, opts FileOptions) ([]parsers.RawRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	parser, err := parsers.Resolve(opts.Format, filePath, parsers.WithSheet(opts.Sheet))
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	rows, err := parser.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parsing file: %w", err)
	}

	return rows, nil
}
