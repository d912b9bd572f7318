package catalog

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

var ErrNoHeader = errors.New("missing header row")

const (
	utf8BOM         = "\ufeff"
	xlsxContentType = "spreadsheetml"
)

var zipMagic = []byte("PK\x03\x04")

// Table is a header-keyed sheet. Header names are trimmed and lower-cased.
type Table struct {
	Header []string
	Rows   [][]string
}

// Column returns the index of name in the header. Repeated names resolve to
// the right-most column.
func (t Table) Column(name string) (int, bool) {
	for i := len(t.Header) - 1; i >= 0; i-- {
		if t.Header[i] == name {
			return i, true
		}
	}
	return -1, false
}

// Cell is row[col], or "" when the row is short or col is unresolved.
func Cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}

// DecodeTable parses a fetched export. XLSX workbooks are recognized by
// content type or ZIP signature and read from their first sheet; anything
// else is read as CSV.
func DecodeTable(doc Document) (Table, error) {
	if isXLSX(doc) {
		return decodeXLSX(doc.Body)
	}
	return decodeCSV(doc.Body)
}

func isXLSX(doc Document) bool {
	return strings.Contains(doc.ContentType, xlsxContentType) || bytes.HasPrefix(doc.Body, zipMagic)
}

func decodeCSV(body []byte) (Table, error) {
	text := strings.ToValidUTF8(string(body), "")
	text = strings.TrimPrefix(text, utf8BOM)

	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("csv: %w", err)
	}
	return newTable(records)
}

func decodeXLSX(body []byte) (Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(body))
	if err != nil {
		return Table{}, fmt.Errorf("xlsx: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Table{}, ErrNoHeader
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return Table{}, fmt.Errorf("xlsx: %w", err)
	}
	return newTable(dropBlankRows(rows))
}

func newTable(records [][]string) (Table, error) {
	if len(records) == 0 {
		return Table{}, ErrNoHeader
	}

	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = strings.ToLower(strings.TrimSpace(h))
	}
	return Table{Header: header, Rows: records[1:]}, nil
}

// encoding/csv already skips blank lines; spreadsheets keep them as empty
// rows, so drop them here to count rows the same way for both formats.
func dropBlankRows(rows [][]string) [][]string {
	out := rows[:0]
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		out = append(out, row)
	}
	return out
}
