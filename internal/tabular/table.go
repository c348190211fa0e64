// Package tabular models rectangular query results and their display
// formatting. A Table is the raw result as returned by an execution engine;
// the display transformation always operates on a deep copy so the original
// values stay available for charting.
package tabular

import (
	"math"
	"time"
)

// Table is a rectangular result set: ordered column names and rows of cells.
// Cells hold engine-native values (string, numeric, time.Time or nil).
type Table struct {
	Columns []string
	Rows    [][]any
}

// New builds a table from column names and rows.
func New(columns []string, rows [][]any) *Table {
	return &Table{Columns: columns, Rows: rows}
}

// RowCount reports the number of rows.
func (t *Table) RowCount() int { return len(t.Rows) }

// Clone returns a deep copy of the table. Cell values are immutable value
// types, so copying the row slices is sufficient to break all aliasing.
func (t *Table) Clone() *Table {
	cols := make([]string, len(t.Columns))
	copy(cols, t.Columns)
	rows := make([][]any, len(t.Rows))
	for i, row := range t.Rows {
		rows[i] = make([]any, len(row))
		copy(rows[i], row)
	}
	return &Table{Columns: cols, Rows: rows}
}

// ColumnIndex returns the position of the named column, or -1 when absent.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// ColumnValues returns the cells of column i in row order.
func (t *Table) ColumnValues(i int) []any {
	out := make([]any, 0, len(t.Rows))
	for _, row := range t.Rows {
		out = append(out, row[i])
	}
	return out
}

// Kind classifies a column for display and charting purposes.
type Kind int

const (
	// KindOther covers strings, booleans and anything non-numeric.
	KindOther Kind = iota
	// KindNumeric means every non-null cell is a numeric type.
	KindNumeric
	// KindDatetime means every non-null cell is a time.Time.
	KindDatetime
)

// ColumnKind infers the kind of column i from its non-null cells.
// A column with only nulls is KindOther.
func (t *Table) ColumnKind(i int) Kind {
	numeric, datetime, nonNull := true, true, 0
	for _, row := range t.Rows {
		v := row[i]
		if IsNull(v) {
			continue
		}
		nonNull++
		if _, ok := v.(time.Time); !ok {
			datetime = false
		}
		if _, ok := AsFloat(v); !ok {
			numeric = false
		}
	}
	switch {
	case nonNull == 0:
		return KindOther
	case datetime:
		return KindDatetime
	case numeric:
		return KindNumeric
	default:
		return KindOther
	}
}

// AsFloat converts a numeric cell to float64. It reports false for
// non-numeric values, including nil.
func AsFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

// IsNull reports whether a cell holds no value: nil or a float NaN.
func IsNull(v any) bool {
	if v == nil {
		return true
	}
	if f, ok := v.(float64); ok {
		return math.IsNaN(f)
	}
	if f, ok := v.(float32); ok {
		return math.IsNaN(float64(f))
	}
	return false
}
