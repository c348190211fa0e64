// Copyright (c) 2026 Snowchat
// Licensed under the MIT License. See LICENSE file in the project root for details.

package chat

import (
	"context"

	"github.com/pterm/pterm"

	"snowchat/cli/internal/charts"
	apperrors "snowchat/cli/internal/errors"
	"snowchat/cli/internal/logging"
	"snowchat/cli/internal/sqlexec"
	"snowchat/cli/internal/tabular"
)

// SQLPanel renders a SQL content block: the statement itself, its result
// table, and an interactive chart. Execution failures stay inside the panel;
// the rest of the transcript keeps rendering.
type SQLPanel struct {
	Engine sqlexec.Engine
	Charts *charts.Selector
}

// Render shows the statement, runs it once, and renders data plus chart.
// A query error is reported in place and is not returned; only a failed
// interactive prompt aborts the render.
func (p *SQLPanel) Render(ctx context.Context, statement string) error {
	pterm.DefaultBox.WithTitle("SQL").Println(statement)

	result, err := p.Engine.Query(ctx, statement)
	if err != nil {
		qerr := apperrors.Wrap(apperrors.QueryFailed, "execution failed on "+p.Engine.Name(), err)
		pterm.Error.Println(logging.Mask(qerr.Error()))
		return nil
	}
	if result.RowCount() == 0 {
		pterm.Println("Query returned no data.")
		return nil
	}

	printTable(tabular.FormatForDisplay(result))
	return p.Charts.Render(result, ChartNamespace(statement))
}

func printTable(t *tabular.Table) {
	data := make(pterm.TableData, 0, len(t.Rows)+1)
	data = append(data, t.Columns)
	for _, row := range t.Rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = tabular.CellString(v)
		}
		data = append(data, cells)
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
