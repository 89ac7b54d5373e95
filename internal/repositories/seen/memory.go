package seen

import (
	"context"
	"sync"
	"time"

	"github.com/orgball2608/freecycle-offer-bot/internal/domain"
)

// Memory keeps seen posts for the life of the process.
type Memory struct {
	mu    sync.Mutex
	posts map[string]domain.SeenPost
	seq   int
	now   func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		posts: make(map[string]domain.SeenPost),
		now:   time.Now,
	}
}

var _ Repository = (*Memory)(nil)

func (m *Memory) Exists(_ context.Context, postKey string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.posts[postKey]
	return ok, nil
}

func (m *Memory) Create(_ context.Context, post domain.SeenPost) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.posts[post.PostKey]; ok {
		return ErrAlreadyExists
	}
	m.seq++
	post.ID = m.seq
	if post.CreatedAt.IsZero() {
		post.CreatedAt = m.now()
	}
	m.posts[post.PostKey] = post
	return nil
}

func (m *Memory) CleanupOldRecords(_ context.Context, olderThan time.Duration) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := m.now().Add(-olderThan)
	var deleted int64
	for key, post := range m.posts {
		if post.CreatedAt.Before(cutoff) {
			delete(m.posts, key)
			deleted++
		}
	}
	return deleted, nil
}
