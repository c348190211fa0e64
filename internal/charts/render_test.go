package charts

import (
	"reflect"
	"strings"
	"testing"

	"snowchat/cli/internal/tabular"
)

func TestScatterForTableNumericAxes(t *testing.T) {
	tbl := tabular.New(
		[]string{"price", "units"},
		[][]any{{1.0, 10.0}, {2.0, 40.0}, {3.0, 20.0}},
	)
	plot, labels, ok := scatterForTable(tbl, "price", "units")
	if !ok {
		t.Fatal("scatterForTable() not ok for numeric axes")
	}
	if len(labels) != 0 {
		t.Errorf("labels = %v, want none for a numeric X axis", labels)
	}
	if strings.Count(plot, "•") != 3 {
		t.Errorf("plot has %d points, want 3:\n%s", strings.Count(plot, "•"), plot)
	}
}

func TestScatterForTableFallsBackToRowOrder(t *testing.T) {
	// A year X column is rewritten to label strings before charting; the
	// scatter must still plot, positioning points by row order.
	tbl := tabular.New(
		[]string{"year", "revenue"},
		[][]any{{2021.0, 10.0}, {2022.0, 20.0}},
	)
	chart := tbl.Clone()
	CoerceYearColumn(chart, chart.ColumnIndex("year"))

	plot, labels, ok := scatterForTable(chart, "year", "revenue")
	if !ok {
		t.Fatal("scatterForTable() not ok after year coercion")
	}
	if want := []string{"2021", "2022"}; !reflect.DeepEqual(labels, want) {
		t.Errorf("labels = %v, want %v", labels, want)
	}
	if strings.Count(plot, "•") != 2 {
		t.Errorf("plot has %d points, want 2:\n%s", strings.Count(plot, "•"), plot)
	}
}

func TestPlotWidthForStaysWithinBounds(t *testing.T) {
	w := plotWidthFor()
	if w < 20 || w > plotWidth {
		t.Errorf("plotWidthFor() = %d, want within [20, %d]", w, plotWidth)
	}
}

func TestScatterForTableNoNumericY(t *testing.T) {
	tbl := tabular.New(
		[]string{"region", "owner"},
		[][]any{{"EMEA", "ann"}, {"APAC", "bob"}},
	)
	if _, _, ok := scatterForTable(tbl, "region", "owner"); ok {
		t.Error("scatterForTable() ok for a table with no numeric Y values")
	}
}
