package seen

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/orgball2608/freecycle-offer-bot/internal/domain"
	"github.com/orgball2608/freecycle-offer-bot/internal/repositories"
	"github.com/orgball2608/freecycle-offer-bot/pkg/logger"
)

const table = "seen_posts"

// DB is the part of *pgxpool.Pool the repository needs.
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type Pgx struct {
	pg     DB
	logger logger.Logger
	now    func() time.Time
}

func NewPgx(pg DB, logger logger.Logger) *Pgx {
	return &Pgx{
		pg:     pg,
		logger: logger.WithComponent("SeenPostRepo"),
		now:    time.Now,
	}
}

var _ Repository = (*Pgx)(nil)

func (p *Pgx) Exists(ctx context.Context, postKey string) (bool, error) {
	query, args, err := repositories.SqBuilder.
		Select("1").
		From(table).
		Where(sq.Eq{"post_key": postKey}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, repositories.ErrBadQuery
	}

	var one int
	err = p.pg.QueryRow(ctx, query, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

func (p *Pgx) Create(ctx context.Context, post domain.SeenPost) error {
	createdAt := post.CreatedAt
	if createdAt.IsZero() {
		createdAt = p.now()
	}

	query, args, err := repositories.SqBuilder.
		Insert(table).
		Columns("post_key", "board_url", "post_url", "created_at").
		Values(post.PostKey, post.BoardURL, post.PostURL, createdAt).
		ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}

	_, err = p.pg.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrAlreadyExists
		}
		return err
	}

	p.logger.Debug("Recorded seen post", "post_key", post.PostKey)
	return nil
}

func (p *Pgx) CleanupOldRecords(ctx context.Context, olderThan time.Duration) (int64, error) {
	query, args, err := repositories.SqBuilder.
		Delete(table).
		Where(sq.Lt{"created_at": p.now().Add(-olderThan)}).
		ToSql()
	if err != nil {
		return 0, repositories.ErrBadQuery
	}

	result, err := p.pg.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected(), nil
}
