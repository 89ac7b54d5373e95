package seen

import (
	"context"
	"errors"
	"time"

	"github.com/orgball2608/freecycle-offer-bot/internal/domain"
)

var (
	ErrAlreadyExists = errors.New("seen post already exists")
)

//go:generate go run go.uber.org/mock/mockgen -source=seen.go -destination=mocks/mock.go
type Repository interface {
	// Exists checks if a post with the given key was already sent out
	Exists(ctx context.Context, postKey string) (bool, error)

	// Create records a post as sent out
	Create(ctx context.Context, post domain.SeenPost) error

	// CleanupOldRecords deletes records older than the specified duration
	CleanupOldRecords(ctx context.Context, olderThan time.Duration) (int64, error)
}
