package notifier

import (
	"context"
	"errors"

	"github.com/orgball2608/freecycle-offer-bot/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=notifier.go -destination=mocks/mock.go
type Notifier interface {
	// BoardStarted is called before the matches of a board are reported.
	BoardStarted(ctx context.Context, board domain.Board) error
	Notify(ctx context.Context, match domain.Match) error
}

// Multi reports to every sink and joins their errors.
type Multi []Notifier

var _ Notifier = Multi(nil)

func (m Multi) BoardStarted(ctx context.Context, board domain.Board) error {
	var errs []error
	for _, n := range m {
		if err := n.BoardStarted(ctx, board); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Notify returns a *PartialError when at least one sink took the match and
// another failed.
func (m Multi) Notify(ctx context.Context, match domain.Match) error {
	var errs []error
	for _, n := range m {
		if err := n.Notify(ctx, match); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	if len(errs) < len(m) {
		return &PartialError{Err: errors.Join(errs...)}
	}
	return errors.Join(errs...)
}

// PartialError means the match reached some sinks but not all of them.
type PartialError struct {
	Err error
}

func (e *PartialError) Error() string {
	return "partially delivered: " + e.Err.Error()
}

func (e *PartialError) Unwrap() error {
	return e.Err
}
