package parsers

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// JSONParser parses rows from a JSON array of arrays, e.g.
// [["Alice", "female"], ["Bob", "male"]]. Scalar cells are converted to
// strings; nested values are rejected.
type JSONParser struct{}

// Parse reads JSON from the reader and returns its non-empty rows.
func (p *JSONParser) Parse(r io.Reader) ([]RawRow, error) {
	var raw [][]any

	decoder := json.NewDecoder(r)
	decoder.UseNumber()
	if err := decoder.Decode(&raw); err != nil {
		return nil, &ParseError{Format: FormatJSON, Err: err}
	}

	rows := make([]RawRow, 0, len(raw))
	for i, cells := range raw {
		fields := make([]string, len(cells))
		for j, cell := range cells {
			s, err := cellString(cell)
			if err != nil {
				return nil, &ParseError{Format: FormatJSON, Line: i + 1, Err: err}
			}
			fields[j] = s
		}
		if isBlank(fields) {
			continue
		}
		rows = append(rows, RawRow{Fields: fields, LineNum: i + 1})
	}

	return rows, nil
}

func cellString(v any) (string, error) {
	switch c := v.(type) {
	case nil:
		return "", nil
	case string:
		return c, nil
	case json.Number:
		return c.String(), nil
	case bool:
		return strconv.FormatBool(c), nil
	default:
		return "", fmt.Errorf("unsupported cell value %v", v)
	}
}
