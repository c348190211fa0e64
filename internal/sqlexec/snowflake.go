package sqlexec

import (
	"context"
	"database/sql"
	"time"

	"snowchat/cli/internal/tabular"
)

// SnowflakeEngine executes queries over a database/sql handle opened with the
// gosnowflake driver.
type SnowflakeEngine struct {
	db *sql.DB
}

// NewSnowflakeEngine wraps an open warehouse connection.
func NewSnowflakeEngine(db *sql.DB) *SnowflakeEngine {
	return &SnowflakeEngine{db: db}
}

func (e *SnowflakeEngine) Name() string { return "snowflake" }

func (e *SnowflakeEngine) Close() { _ = e.db.Close() }

// Query runs the statement and scans every row into a result table.
func (e *SnowflakeEngine) Query(ctx context.Context, sqlText string) (*tabular.Table, error) {
	rows, err := e.db.QueryContext(ctx, sqlText)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	out := tabular.New(cols, nil)
	for rows.Next() {
		cells := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range cells {
			ptrs[i] = &cells[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		for i, v := range cells {
			cells[i] = normalizeSQLValue(v)
		}
		out.Rows = append(out.Rows, cells)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// normalizeSQLValue converts driver-native values into the cell types the
// tabular package understands.
func normalizeSQLValue(v any) any {
	switch c := v.(type) {
	case []byte:
		return string(c)
	case time.Time:
		return c
	default:
		return v
	}
}
