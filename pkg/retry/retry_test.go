package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/orgball2608/freecycle-offer-bot/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig(retries uint64) Config {
	return Config{
		MaxRetries:      retries,
		InitialInterval: time.Millisecond,
		MaxInterval:     2 * time.Millisecond,
		Multiplier:      1.5,
	}
}

func TestDoRetriesUntilSuccess(t *testing.T) {
	attempts := 0
	err := Do(context.Background(), logger.NewNop(), "flaky", func() error {
		attempts++
		if attempts < 3 {
			return errors.New("boom")
		}
		return nil
	}, fastConfig(5))

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestDoGivesUpAfterMaxRetries(t *testing.T) {
	attempts := 0
	err := Do(context.Background(), logger.NewNop(), "broken", func() error {
		attempts++
		return errors.New("boom")
	}, fastConfig(2))

	require.EqualError(t, err, "boom")
	assert.Equal(t, 3, attempts)
}

func TestDoStopsOnPermanent(t *testing.T) {
	attempts := 0
	sentinel := errors.New("fatal")
	err := Do(context.Background(), logger.NewNop(), "permanent", func() error {
		attempts++
		return Permanent(sentinel)
	}, fastConfig(5))

	require.ErrorIs(t, err, sentinel)
	assert.Equal(t, 1, attempts)
}
