package chat

import (
	"strings"
	"testing"
)

func TestChartNamespace(t *testing.T) {
	a := ChartNamespace("SELECT year, revenue FROM sales")
	b := ChartNamespace("SELECT year, revenue FROM sales")
	c := ChartNamespace("SELECT year, revenue FROM sales ")

	if a != b {
		t.Errorf("same statement produced different namespaces: %s vs %s", a, b)
	}
	if a == c {
		t.Errorf("distinct statements collided on %s", a)
	}
	if !strings.HasPrefix(a, "chart_") || len(a) != len("chart_")+16 {
		t.Errorf("unexpected namespace shape: %q", a)
	}
}
