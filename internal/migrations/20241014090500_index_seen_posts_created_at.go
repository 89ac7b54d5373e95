package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upIndexSeenPostsCreatedAt, downIndexSeenPostsCreatedAt)
}

// cleanup deletes by created_at
func upIndexSeenPostsCreatedAt(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS seen_posts_created_at_idx ON seen_posts (created_at);`)
	return err
}

func downIndexSeenPostsCreatedAt(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP INDEX IF EXISTS seen_posts_created_at_idx;`)
	return err
}
