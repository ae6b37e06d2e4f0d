package leveldata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseCSV reads rows of comma-separated integer tile codes. Every row must
// have as many tokens as the first one.
func ParseCSV(source string, r io.Reader) (TileGrid, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var rows [][]int
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return TileGrid{}, &MalformedMapError{Source: source, Row: len(rows), Col: -1, Reason: err.Error()}
		}
		if len(rows) > 0 && len(record) != len(rows[0]) {
			return TileGrid{}, &MalformedMapError{
				Source: source,
				Row:    len(rows),
				Col:    -1,
				Reason: fmt.Sprintf("has %d tokens, first row has %d", len(record), len(rows[0])),
			}
		}

		row := make([]int, len(record))
		for col, token := range record {
			token = strings.TrimSpace(token)
			code, err := strconv.Atoi(token)
			if err != nil {
				return TileGrid{}, &MalformedMapError{
					Source: source,
					Row:    len(rows),
					Col:    col,
					Token:  token,
					Reason: "not an integer",
				}
			}
			row[col] = code
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return TileGrid{}, &MalformedMapError{Source: source, Row: -1, Col: -1, Reason: "no rows"}
	}
	return TileGrid{Rows: rows}, nil
}
