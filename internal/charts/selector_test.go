package charts

import (
	"testing"

	"snowchat/cli/internal/session"
	"snowchat/cli/internal/tabular"
)

func TestRenderRefusesSingleColumn(t *testing.T) {
	prompts := 0
	widgets := session.NewWidgetState(func(label string, options []string) (string, error) {
		prompts++
		return options[0], nil
	})
	sel := NewSelector(widgets)

	tbl := tabular.New([]string{"revenue"}, [][]any{{5000000.0}})
	if err := sel.Render(tbl, "chart_abc"); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if prompts != 0 {
		t.Errorf("pickers shown for a single-column table: %d prompts", prompts)
	}
}

func TestRenderKeysIncludeNamespace(t *testing.T) {
	tbl := tabular.New([]string{"year", "revenue"}, [][]any{{2021.0, 10.0}, {2022.0, 20.0}})

	prompts := 0
	counting := session.NewWidgetState(func(label string, options []string) (string, error) {
		prompts++
		return options[0], nil
	})
	sel := NewSelector(counting)
	if err := sel.Render(tbl, "chart_1"); err != nil {
		t.Fatal(err)
	}
	if prompts != 3 {
		t.Fatalf("first render prompted %d times, want 3 (x, y, kind)", prompts)
	}
	if err := sel.Render(tbl, "chart_1"); err != nil {
		t.Fatal(err)
	}
	if prompts != 3 {
		t.Errorf("re-render with same namespace re-prompted (%d prompts)", prompts)
	}
	if err := sel.Render(tbl, "chart_2"); err != nil {
		t.Fatal(err)
	}
	if prompts != 6 {
		t.Errorf("new namespace should get fresh pickers, got %d prompts", prompts)
	}
}

func TestRenderYAxisExcludesX(t *testing.T) {
	var yOptions []string
	widgets := session.NewWidgetState(func(label string, options []string) (string, error) {
		if label == "Y axis" {
			yOptions = append([]string(nil), options...)
		}
		return options[0], nil
	})
	sel := NewSelector(widgets)
	tbl := tabular.New([]string{"year", "revenue", "region"}, [][]any{{2021.0, 10.0, "EMEA"}})

	if err := sel.Render(tbl, "ns"); err != nil {
		t.Fatal(err)
	}
	for _, o := range yOptions {
		if o == "year" {
			t.Errorf("Y axis options include the chosen X column: %v", yOptions)
		}
	}
}
