package postgres

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
)

// Schema creates every table the portfolio needs. All statements are idempotent.
//
//go:embed schema.sql
var Schema string

func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
