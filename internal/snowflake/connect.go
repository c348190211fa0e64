// Copyright (c) 2026 Snowchat
// Licensed under the MIT License. See LICENSE file in the project root for details.

package snowflake

import (
	"context"
	"database/sql"
	"fmt"

	sf "github.com/snowflakedb/gosnowflake"

	"snowchat/cli/internal/config"
)

// BuildDSN constructs a gosnowflake DSN for the configured deployment and the
// given credentials.
func BuildDSN(a config.Analyst, username, password string) (string, error) {
	cfg := &sf.Config{
		Account:   a.Account,
		User:      username,
		Password:  password,
		Host:      a.Host,
		Port:      443,
		Warehouse: a.Warehouse,
		Role:      a.Role,
		Database:  a.Database,
		Schema:    a.Schema,
	}
	dsn, err := sf.DSN(cfg)
	if err != nil {
		return "", fmt.Errorf("build snowflake DSN: %w", err)
	}
	return dsn, nil
}

// Connect opens and verifies a warehouse connection with the given
// credentials. The returned handle is shared read-only for the lifetime of
// the session; no refresh or reconnect is attempted.
func Connect(ctx context.Context, a config.Analyst, username, password string) (*sql.DB, error) {
	dsn, err := BuildDSN(a, username, password)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open("snowflake", dsn)
	if err != nil {
		return nil, fmt.Errorf("open snowflake connection: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
