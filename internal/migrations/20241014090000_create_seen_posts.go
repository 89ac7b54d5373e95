package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateSeenPosts, downCreateSeenPosts)
}

func upCreateSeenPosts(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	CREATE TABLE IF NOT EXISTS seen_posts (
		id         SERIAL PRIMARY KEY,
		post_key   VARCHAR NOT NULL UNIQUE,
		board_url  VARCHAR NOT NULL,
		post_url   VARCHAR NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now()
	);
	`)
	return err
}

func downCreateSeenPosts(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS seen_posts;`)
	return err
}
