package parsers

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"
)

// utf8BOM is prepended by some spreadsheet tools when exporting CSV.
const utf8BOM = "\ufeff"

// CSVParser parses headerless CSV rows. Rows may have differing widths.
type CSVParser struct{}

// Parse reads CSV from the reader and returns its non-empty rows.
func (p *CSVParser) Parse(r io.Reader) ([]RawRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var rows []RawRow
	first := true

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, csvError(err)
		}

		if first && len(record) > 0 {
			record[0] = strings.TrimPrefix(record[0], utf8BOM)
			first = false
		}

		if isBlank(record) {
			continue
		}

		line, _ := reader.FieldPos(0)
		rows = append(rows, RawRow{Fields: record, LineNum: line})
	}

	return rows, nil
}

// csvError converts an encoding/csv error into a ParseError.
func csvError(err error) error {
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		return &ParseError{Format: FormatCSV, Line: csvErr.Line, Err: csvErr.Err}
	}
	return &ParseError{Format: FormatCSV, Err: err}
}
