package parsers

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// SpreadsheetParser parses rows from an xlsx workbook.
type SpreadsheetParser struct {
	// Sheet names the sheet to read. Empty selects the first sheet.
	Sheet string
}

// Parse reads the workbook and returns the non-empty rows of one sheet.
func (p *SpreadsheetParser) Parse(r io.Reader) (rows []RawRow, err error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &ParseError{Format: FormatSpreadsheet, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &ParseError{Format: FormatSpreadsheet, Err: cerr}
		}
	}()

	sheet, err := p.sheetName(f)
	if err != nil {
		return nil, &ParseError{Format: FormatSpreadsheet, Err: err}
	}

	cells, err := f.GetRows(sheet)
	if err != nil {
		return nil, &ParseError{Format: FormatSpreadsheet, Err: fmt.Errorf("reading sheet %q: %w", sheet, err)}
	}

	for i, record := range cells {
		if isBlank(record) {
			continue
		}
		rows = append(rows, RawRow{Fields: record, LineNum: i + 1})
	}

	return rows, nil
}

// sheetName resolves the configured sheet against the workbook.
func (p *SpreadsheetParser) sheetName(f *excelize.File) (string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", errors.New("workbook has no sheets")
	}
	if p.Sheet == "" {
		return sheets[0], nil
	}
	for _, s := range sheets {
		if s == p.Sheet {
			return s, nil
		}
	}
	return "", fmt.Errorf("sheet %q not found (available: %v)", p.Sheet, sheets)
}
