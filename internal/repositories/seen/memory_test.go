package seen

import (
	"context"
	"testing"
	"time"

	"github.com/orgball2608/freecycle-offer-bot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCreateAndExists(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory()

	exists, err := repo.Exists(ctx, "123")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Create(ctx, domain.SeenPost{PostKey: "123", PostURL: "https://example.org/posts/123"}))

	exists, err = repo.Exists(ctx, "123")
	require.NoError(t, err)
	assert.True(t, exists)

	assert.ErrorIs(t, repo.Create(ctx, domain.SeenPost{PostKey: "123"}), ErrAlreadyExists)
}

func TestMemoryCleanup(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
	repo := NewMemory()
	repo.now = func() time.Time { return now }

	require.NoError(t, repo.Create(ctx, domain.SeenPost{PostKey: "old", CreatedAt: now.Add(-48 * time.Hour)}))
	require.NoError(t, repo.Create(ctx, domain.SeenPost{PostKey: "new"}))

	deleted, err := repo.CleanupOldRecords(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	exists, _ := repo.Exists(ctx, "old")
	assert.False(t, exists)
	exists, _ = repo.Exists(ctx, "new")
	assert.True(t, exists)
}
