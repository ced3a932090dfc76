// Package frame provides string-indexed tabular data for OTU abundance
// tables and sample metadata read from tab-separated files.
package frame

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
)

// Column lookup errors.
var (
	ErrColumnNotFound = errors.New("column not found")
	ErrRowNotFound    = errors.New("row not found")
)

// Frame is a rectangular table of text cells indexed by row ID. The first
// column of the source file is the index; its values are always kept as
// strings, so numeric-looking sample IDs such as "1001" never lose their
// identity to numeric coercion.
type Frame struct {
	// IndexName is the header of the index column, often empty in
	// exported tables.
	IndexName string

	// Index holds the row IDs in file order.
	Index []string

	// Columns holds the non-index column names in file order.
	Columns []string

	cells  [][]string
	colPos map[string]int
	rowPos map[string]int
}

// New builds a Frame from pre-parsed components. Every row of cells must
// have one value per column.
func New(indexName string, index, columns []string, cells [][]string) (*Frame, error) {
	if len(cells) != len(index) {
		return nil, fmt.Errorf("frame: %d index entries but %d rows", len(index), len(cells))
	}
	f := &Frame{
		IndexName: indexName,
		Index:     index,
		Columns:   columns,
		cells:     cells,
		colPos:    make(map[string]int, len(columns)),
		rowPos:    make(map[string]int, len(index)),
	}
	for i, c := range columns {
		f.colPos[c] = i
	}
	for i, r := range index {
		f.rowPos[r] = i
	}
	for i, row := range cells {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("frame: row %q has %d cells, want %d", index[i], len(row), len(columns))
		}
	}
	return f, nil
}

// ReadTSV reads a tab-separated file with a header row. The first header
// field names the index column; every subsequent field is a data column.
func ReadTSV(path string) (*Frame, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open table: %w", err)
	}
	defer fh.Close()

	r := csv.NewReader(fh)
	r.Comma = '\t'
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse table %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("parse table %s: empty file", path)
	}

	header := records[0]
	columns := append([]string(nil), header[1:]...)

	index := make([]string, 0, len(records)-1)
	cells := make([][]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		index = append(index, rec[0])
		cells = append(cells, rec[1:])
	}

	f, err := New(header[0], index, columns, cells)
	if err != nil {
		return nil, fmt.Errorf("parse table %s: %w", path, err)
	}
	return f, nil
}

// Len returns the number of rows.
func (f *Frame) Len() int { return len(f.Index) }

// HasColumn reports whether the named column exists.
func (f *Frame) HasColumn(name string) bool {
	_, ok := f.colPos[name]
	return ok
}

// Column returns the values of the named column in row order.
func (f *Frame) Column(name string) ([]string, error) {
	j, ok := f.colPos[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	vals := make([]string, len(f.cells))
	for i, row := range f.cells {
		vals[i] = row[j]
	}
	return vals, nil
}

// Value returns a single cell addressed by row ID and column name.
func (f *Frame) Value(rowID, column string) (string, error) {
	i, ok := f.rowPos[rowID]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrRowNotFound, rowID)
	}
	j, ok := f.colPos[column]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrColumnNotFound, column)
	}
	return f.cells[i][j], nil
}

// Row returns the cell values of one row in column order.
func (f *Frame) Row(rowID string) ([]string, error) {
	i, ok := f.rowPos[rowID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrRowNotFound, rowID)
	}
	return append([]string(nil), f.cells[i]...), nil
}
