// Package sqlexec provides the query execution engines behind the SQL result
// panel. An Engine takes a caller-supplied statement, runs it verbatim (the
// user already holds direct database credentials, so no validation or
// parameterization is layered on top) and returns a normalized result table.
//
// Two engines exist: the Snowflake warehouse opened at login (database/sql
// over the gosnowflake driver) and an optional PostgreSQL mirror (pgx pool)
// configured with `snowchat connect`.
package sqlexec

import (
	"context"

	"snowchat/cli/internal/tabular"
)

// Engine executes SQL read queries and returns their result table.
type Engine interface {
	// Query runs the statement and returns all rows. A failed execution
	// returns a nil table and the engine's error verbatim.
	Query(ctx context.Context, sql string) (*tabular.Table, error)
	// Name identifies the engine for display purposes.
	Name() string
	// Close releases the underlying connection resources.
	Close()
}
