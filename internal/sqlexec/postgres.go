package sqlexec

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"snowchat/cli/internal/tabular"
)

// PostgresEngine executes queries against a PostgreSQL mirror through a pgx
// connection pool. It exists for deployments that replicate warehouse tables
// into Postgres and want generated SQL to run there instead.
type PostgresEngine struct {
	pool *pgxpool.Pool
}

// NewPostgresEngine wraps an existing pgx pool.
func NewPostgresEngine(pool *pgxpool.Pool) *PostgresEngine {
	return &PostgresEngine{pool: pool}
}

func (e *PostgresEngine) Name() string { return "postgres" }

func (e *PostgresEngine) Close() { e.pool.Close() }

// Query runs the statement and collects all rows into a result table.
func (e *PostgresEngine) Query(ctx context.Context, sqlText string) (*tabular.Table, error) {
	conn, err := e.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, sqlText)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fds := rows.FieldDescriptions()
	cols := make([]string, len(fds))
	for i, fd := range fds {
		cols[i] = string(fd.Name)
	}

	out := tabular.New(cols, nil)
	for rows.Next() {
		vals, err := rows.Values()
		if err != nil {
			return nil, err
		}
		cells := make([]any, len(vals))
		for i, v := range vals {
			cells[i] = normalizePgxValue(v)
		}
		out.Rows = append(out.Rows, cells)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return out, nil
}

// normalizePgxValue converts pgx-native values into displayable cell types.
// UUIDs arrive as byte arrays and are rendered in canonical form.
func normalizePgxValue(v any) any {
	switch c := v.(type) {
	case []byte:
		if len(c) == 16 {
			return formatUUID(c)
		}
		return fmt.Sprintf("\\x%x", c)
	case [16]byte:
		return formatUUID(c[:])
	default:
		return v
	}
}

// formatUUID renders 16 bytes as xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx.
// %02x keeps each byte at exactly 2 hex digits (with leading zeros).
func formatUUID(b []byte) string {
	return fmt.Sprintf("%02x%02x%02x%02x-%02x%02x-%02x%02x-%02x%02x-%02x%02x%02x%02x%02x%02x",
		b[0], b[1], b[2], b[3], b[4], b[5], b[6], b[7],
		b[8], b[9], b[10], b[11], b[12], b[13], b[14], b[15])
}
