package parser

import (
	"context"

	"github.com/orgball2608/freecycle-offer-bot/internal/domain"
)

type Client interface {
	// ParseBoard returns every offer post listed on board, deduplicated by key.
	ParseBoard(ctx context.Context, board domain.Board) ([]domain.Post, error)
	// CheckBoards parses all configured boards and notifies about new keyword matches.
	CheckBoards(ctx context.Context) (domain.Report, error)
	ScheduleBoardChecking(ctx context.Context) error
	ScheduleDatabaseCleanup(ctx context.Context) error
}
