package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tryWait reports whether key gets a token without waiting noticeably.
func tryWait(l Limiter, key string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	return l.Wait(ctx, key) == nil
}

func TestBurstPerKey(t *testing.T) {
	l := NewInMemoryLimiter(1, time.Hour, 2)

	assert.True(t, tryWait(l, "groups.freecycle.org"))
	assert.True(t, tryWait(l, "groups.freecycle.org"))
	assert.False(t, tryWait(l, "groups.freecycle.org"))

	assert.True(t, tryWait(l, "other.example.org"), "keys are limited independently")
}

func TestDisabledLimiter(t *testing.T) {
	l := NewInMemoryLimiter(0, time.Second, 0)
	for i := 0; i < 100; i++ {
		require.True(t, tryWait(l, "host"))
	}
}

func TestWaitHonoursContext(t *testing.T) {
	l := NewInMemoryLimiter(1, time.Hour, 1)
	require.NoError(t, l.Wait(context.Background(), "host"))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.Error(t, l.Wait(ctx, "host"))
}
