package charts

import (
	"github.com/pterm/pterm"

	"snowchat/cli/internal/session"
	"snowchat/cli/internal/tabular"
)

// The five chart kinds the selector offers.
const (
	KindLine    = "Line Chart"
	KindBar     = "Bar Chart"
	KindPie     = "Pie Chart"
	KindScatter = "Scatter Plot"
	KindArea    = "Area Chart"
)

// Kinds lists the selectable chart kinds in display order.
func Kinds() []string {
	return []string{KindLine, KindBar, KindPie, KindScatter, KindArea}
}

// Widget key suffixes; combined with the caller's namespace they give every
// SQL block its own picker identity.
const (
	suffixXAxis = "_chart_x_axis"
	suffixYAxis = "_chart_y_axis"
	suffixKind  = "_chart_type_selector"
)

// Selector renders one chart for a table, remembering axis and kind choices
// in the widget store under the given key namespace.
type Selector struct {
	Widgets *session.WidgetState
}

// NewSelector creates a selector over a widget store.
func NewSelector(widgets *session.WidgetState) *Selector {
	return &Selector{Widgets: widgets}
}

// Render lets the user pick axes and a chart kind, then draws the chart.
// Tables with fewer than two columns get a notice instead of a chart.
// The table is cloned before any coercion, so no chart kind ever mutates
// state visible to the formatter or to other kinds.
func (s *Selector) Render(t *tabular.Table, namespace string) error {
	if len(t.Columns) < 2 {
		pterm.Println("Not enough columns to chart.")
		return nil
	}

	x, err := s.Widgets.Select(namespace+suffixXAxis, "X axis", t.Columns)
	if err != nil {
		return err
	}
	y, err := s.Widgets.Select(namespace+suffixYAxis, "Y axis", Remaining(t.Columns, x))
	if err != nil {
		return err
	}
	kind, err := s.Widgets.Select(namespace+suffixKind, "Chart Type", Kinds())
	if err != nil {
		return err
	}

	chart := t.Clone()
	if IsYearColumn(x) {
		CoerceYearColumn(chart, chart.ColumnIndex(x))
	}

	switch kind {
	case KindLine:
		renderLine(chart, x, y)
	case KindBar:
		renderBar(chart, x, y)
	case KindPie:
		renderPie(chart, x, y)
	case KindScatter:
		renderScatter(chart, x, y)
	case KindArea:
		renderArea(chart, x, y)
	}
	return nil
}
