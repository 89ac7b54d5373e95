package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/orgball2608/freecycle-offer-bot/internal/migrations"
	"github.com/orgball2608/freecycle-offer-bot/pkg/config"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "migrate",
	Short:        "Applies or rolls back the seen_posts migrations.",
	SilenceUsage: true,
}

// withDB opens the configured database for the duration of fn.
func withDB(fn func(ctx context.Context, db *sql.DB) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.New()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if !cfg.PostgresEnabled() {
			return fmt.Errorf("POSTGRES_HOST is not set")
		}

		db, err := migrations.Open(cfg.GetDSN())
		if err != nil {
			return err
		}
		defer db.Close()

		return fn(cmd.Context(), db)
	}
}

func init() {
	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations.",
			RunE: withDB(func(ctx context.Context, db *sql.DB) error {
				if err := goose.UpContext(ctx, db, migrations.Dir); err != nil {
					return fmt.Errorf("failed to run migrations: %w", err)
				}
				fmt.Println("Migrations applied successfully")
				return nil
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the latest migration.",
			RunE: withDB(func(ctx context.Context, db *sql.DB) error {
				if err := goose.DownContext(ctx, db, migrations.Dir); err != nil {
					return fmt.Errorf("failed to rollback migration: %w", err)
				}
				fmt.Println("Migration rollback successful")
				return nil
			}),
		},
		&cobra.Command{
			Use:   "status",
			Short: "Print the state of every migration.",
			RunE: withDB(func(ctx context.Context, db *sql.DB) error {
				if err := goose.StatusContext(ctx, db, migrations.Dir); err != nil {
					return fmt.Errorf("failed to get migration status: %w", err)
				}
				return nil
			}),
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Roll back every migration.",
			RunE: withDB(func(ctx context.Context, db *sql.DB) error {
				if err := goose.ResetContext(ctx, db, migrations.Dir); err != nil {
					return fmt.Errorf("failed to reset migrations: %w", err)
				}
				fmt.Println("All migrations have been rolled back")
				return nil
			}),
		},
	)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
