package charts

import (
	"reflect"
	"testing"

	"snowchat/cli/internal/tabular"
)

func TestRemaining(t *testing.T) {
	cols := []string{"year", "region", "revenue"}
	got := Remaining(cols, "region")
	want := []string{"year", "revenue"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Remaining() = %v, want %v", got, want)
	}
}

func TestIsYearColumn(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"year", true},
		{"YEAR", true},
		{"FiscalYear", true},
		{"yearly_total", true},
		{"month", false},
	}
	for _, tt := range tests {
		if got := IsYearColumn(tt.name); got != tt.want {
			t.Errorf("IsYearColumn(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestCoerceYearColumnIsPrivate(t *testing.T) {
	raw := tabular.New([]string{"year", "revenue"}, [][]any{
		{2021.0, 10.0},
		{nil, 20.0},
	})

	chart := raw.Clone()
	CoerceYearColumn(chart, 0)

	if chart.Rows[0][0] != "2021" {
		t.Errorf("coerced cell = %v, want \"2021\"", chart.Rows[0][0])
	}
	if chart.Rows[1][0] != "" {
		t.Errorf("null coerced cell = %v, want empty string", chart.Rows[1][0])
	}
	// The raw table keeps its numeric values for other chart kinds.
	if raw.Rows[0][0] != 2021.0 {
		t.Errorf("raw table mutated by coercion: %v", raw.Rows[0][0])
	}
}

func TestSeriesSkipsNonNumericRows(t *testing.T) {
	tbl := tabular.New([]string{"region", "revenue"}, [][]any{
		{"EMEA", 10.0},
		{"APAC", nil},
		{"AMER", 30.0},
	})

	labels, values := Series(tbl, "region", "revenue")
	if !reflect.DeepEqual(labels, []string{"EMEA", "AMER"}) {
		t.Errorf("labels = %v", labels)
	}
	if !reflect.DeepEqual(values, []float64{10, 30}) {
		t.Errorf("values = %v", values)
	}
}

func TestPoints(t *testing.T) {
	tbl := tabular.New([]string{"x", "y"}, [][]any{
		{1.0, 2.0},
		{"not numeric", 3.0},
		{4.0, 5.0},
	})
	xs, ys := Points(tbl, "x", "y")
	if !reflect.DeepEqual(xs, []float64{1, 4}) || !reflect.DeepEqual(ys, []float64{2, 5}) {
		t.Errorf("Points() = %v, %v", xs, ys)
	}
}

func TestScaleToBars(t *testing.T) {
	got := ScaleToBars([]float64{10, 20, 5}, 40)
	want := []int{20, 40, 10}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ScaleToBars() = %v, want %v", got, want)
	}

	zeros := ScaleToBars([]float64{0, 0}, 40)
	if !reflect.DeepEqual(zeros, []int{0, 0}) {
		t.Errorf("ScaleToBars(zeros) = %v", zeros)
	}
}

func TestScalePos(t *testing.T) {
	if got := scalePos(5, 0, 10, 60); got != 30 {
		t.Errorf("scalePos(midpoint) = %d, want 30", got)
	}
	if got := scalePos(7, 7, 7, 60); got != 0 {
		t.Errorf("scalePos(degenerate range) = %d, want 0", got)
	}
}
