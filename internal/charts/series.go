// Package charts turns a result table plus retained user choices (X axis,
// Y axis, chart kind) into one rendered terminal chart. Axis and kind
// pickers are keyed by the caller's namespace so charts for different SQL
// blocks never share widget identity.
package charts

import (
	"strconv"
	"strings"

	"snowchat/cli/internal/tabular"
)

// Remaining returns all columns except x, preserving order. The Y axis
// picker uses this so X and Y can never be the same column.
func Remaining(columns []string, x string) []string {
	out := make([]string, 0, len(columns)-1)
	for _, c := range columns {
		if c != x {
			out = append(out, c)
		}
	}
	return out
}

// IsYearColumn reports whether a column name contains "year" in any case.
func IsYearColumn(name string) bool {
	return strings.Contains(strings.ToLower(name), "year")
}

// YearLabel renders a year cell as a bare integer string; nulls degrade to
// the empty string.
func YearLabel(v any) string {
	if tabular.IsNull(v) {
		return ""
	}
	if f, ok := tabular.AsFloat(v); ok {
		return strconv.FormatInt(int64(f), 10)
	}
	return tabular.CellString(v)
}

// CoerceYearColumn rewrites column ci of t in place to bare integer strings.
// Callers pass a private copy; the raw table stays numeric.
func CoerceYearColumn(t *tabular.Table, ci int) {
	for _, row := range t.Rows {
		row[ci] = YearLabel(row[ci])
	}
}

// Series extracts the (label, value) pairs for charting: labels from the x
// column, values from the y column. Rows whose y cell is not numeric are
// skipped so charts never plot nulls as zeros.
func Series(t *tabular.Table, x, y string) (labels []string, values []float64) {
	xi, yi := t.ColumnIndex(x), t.ColumnIndex(y)
	if xi < 0 || yi < 0 {
		return nil, nil
	}
	for _, row := range t.Rows {
		v, ok := tabular.AsFloat(row[yi])
		if !ok || tabular.IsNull(row[yi]) {
			continue
		}
		labels = append(labels, tabular.CellString(row[xi]))
		values = append(values, v)
	}
	return labels, values
}

// Points extracts numeric (x, y) pairs for scatter plotting, skipping rows
// where either coordinate is missing or non-numeric.
func Points(t *tabular.Table, x, y string) (xs, ys []float64) {
	xi, yi := t.ColumnIndex(x), t.ColumnIndex(y)
	if xi < 0 || yi < 0 {
		return nil, nil
	}
	for _, row := range t.Rows {
		xv, okx := tabular.AsFloat(row[xi])
		yv, oky := tabular.AsFloat(row[yi])
		if !okx || !oky || tabular.IsNull(row[xi]) || tabular.IsNull(row[yi]) {
			continue
		}
		xs = append(xs, xv)
		ys = append(ys, yv)
	}
	return xs, ys
}

// ScaleToBars maps float values onto the integer scale pterm bars need,
// keeping proportions. All-zero input maps to all-zero bars.
func ScaleToBars(values []float64, maxBar int) []int {
	out := make([]int, len(values))
	var max float64
	for _, v := range values {
		if v < 0 {
			v = -v
		}
		if v > max {
			max = v
		}
	}
	if max == 0 {
		return out
	}
	for i, v := range values {
		out[i] = int(v / max * float64(maxBar))
	}
	return out
}
