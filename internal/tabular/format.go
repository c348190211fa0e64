package tabular

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// dateLayout is the display form for datetime columns.
const dateLayout = "2006-01-02"

// FormatForDisplay returns a display-ready copy of the table:
//   - datetime columns become "YYYY-MM-DD" strings,
//   - numeric columns whose name contains "year" (any case) become bare
//     integer strings with nulls mapped to "",
//   - other numeric columns collapse to integers when every value is
//     integral, otherwise round to 2 decimal places,
//   - everything else passes through untouched.
//
// The input table is never modified; charting keeps using the original.
func FormatForDisplay(t *Table) *Table {
	out := t.Clone()
	for ci, name := range out.Columns {
		switch t.ColumnKind(ci) {
		case KindDatetime:
			formatDatetimeColumn(out, ci)
		case KindNumeric:
			if strings.Contains(strings.ToLower(name), "year") {
				formatYearColumn(out, ci)
			} else {
				formatNumericColumn(out, ci)
			}
		}
	}
	return out
}

func formatDatetimeColumn(t *Table, ci int) {
	for _, row := range t.Rows {
		if ts, ok := row[ci].(time.Time); ok {
			row[ci] = ts.Format(dateLayout)
		} else if IsNull(row[ci]) {
			row[ci] = ""
		}
	}
}

// formatYearColumn renders every value as a bare integer string; nulls
// degrade to the empty string.
func formatYearColumn(t *Table, ci int) {
	for _, row := range t.Rows {
		if IsNull(row[ci]) {
			row[ci] = ""
			continue
		}
		if f, ok := AsFloat(row[ci]); ok {
			row[ci] = strconv.FormatInt(int64(f), 10)
		}
	}
}

func formatNumericColumn(t *Table, ci int) {
	if columnIsIntegral(t, ci) {
		for _, row := range t.Rows {
			if IsNull(row[ci]) {
				continue
			}
			if f, ok := AsFloat(row[ci]); ok {
				row[ci] = int64(f)
			}
		}
		return
	}
	for _, row := range t.Rows {
		if IsNull(row[ci]) {
			continue
		}
		if f, ok := AsFloat(row[ci]); ok {
			row[ci] = math.Round(f*100) / 100
		}
	}
}

// columnIsIntegral reports whether every non-null cell carries an integer
// value (e.g. 3.0 counts, 3.5 does not).
func columnIsIntegral(t *Table, ci int) bool {
	for _, row := range t.Rows {
		if IsNull(row[ci]) {
			continue
		}
		f, ok := AsFloat(row[ci])
		if !ok {
			return false
		}
		if math.IsInf(f, 0) || f != math.Trunc(f) {
			return false
		}
	}
	return true
}

// CellString renders a single display cell as text for the terminal table.
func CellString(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case int64:
		return strconv.FormatInt(c, 10)
	case float64:
		if math.IsNaN(c) {
			return ""
		}
		return strconv.FormatFloat(c, 'f', -1, 64)
	case time.Time:
		return c.Format(dateLayout)
	case bool:
		return strconv.FormatBool(c)
	default:
		if f, ok := AsFloat(v); ok {
			return strconv.FormatFloat(f, 'f', -1, 64)
		}
		return fmt.Sprintf("%v", v)
	}
}
