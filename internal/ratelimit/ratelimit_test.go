package ratelimit

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestLimiter(limit int, window time.Duration) (*memoryLimiter, *time.Time) {
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	l := &memoryLimiter{
		limit:  limit,
		window: window,
		hits:   make(map[string][]time.Time),
		now:    func() time.Time { return current },
	}
	return l, &current
}

func TestMemory_SixthRequestDenied(t *testing.T) {
	l, _ := newTestLimiter(5, 10*time.Minute)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		ok, err := l.Allow(ctx, "contact:1.2.3.4")
		assert.NoError(t, err)
		assert.True(t, ok)
	}

	ok, err := l.Allow(ctx, "contact:1.2.3.4")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestMemory_WindowSlides(t *testing.T) {
	l, clock := newTestLimiter(5, 10*time.Minute)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		ok, _ := l.Allow(ctx, "k")
		assert.True(t, ok)
		*clock = clock.Add(time.Minute)
	}

	// 5 admitted within the last 10 minutes: denied.
	ok, _ := l.Allow(ctx, "k")
	assert.False(t, ok)

	// 10 minutes past the first admitted request, one slot frees up.
	*clock = clock.Add(6 * time.Minute)
	ok, _ = l.Allow(ctx, "k")
	assert.True(t, ok)
}

func TestMemory_KeysAreIndependent(t *testing.T) {
	l, _ := newTestLimiter(1, 10*time.Minute)
	ctx := context.Background()

	ok, _ := l.Allow(ctx, "contact:1.2.3.4")
	assert.True(t, ok)
	ok, _ = l.Allow(ctx, "contact:1.2.3.4")
	assert.False(t, ok)

	ok, _ = l.Allow(ctx, "contact:5.6.7.8")
	assert.True(t, ok)
	ok, _ = l.Allow(ctx, "quote:1.2.3.4")
	assert.True(t, ok)
}

func TestMemory_DeniedRequestsAreNotRecorded(t *testing.T) {
	l, clock := newTestLimiter(2, 10*time.Minute)
	ctx := context.Background()

	l.Allow(ctx, "k")
	l.Allow(ctx, "k")

	// Hammering while denied must not extend the window.
	for i := 0; i < 10; i++ {
		ok, _ := l.Allow(ctx, "k")
		assert.False(t, ok)
	}

	*clock = clock.Add(10*time.Minute + time.Second)
	ok, _ := l.Allow(ctx, "k")
	assert.True(t, ok)
}

func TestDisabled_AlwaysAllows(t *testing.T) {
	l := NewDisabled()
	for i := 0; i < 20; i++ {
		ok, err := l.Allow(context.Background(), "any")
		assert.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestClientIP(t *testing.T) {
	h := http.Header{}
	assert.Equal(t, "unknown", ClientIP(h))

	h.Set("X-Real-Ip", "9.9.9.9")
	assert.Equal(t, "9.9.9.9", ClientIP(h))

	h.Set("X-Forwarded-For", "1.2.3.4, 5.6.7.8")
	assert.Equal(t, "1.2.3.4", ClientIP(h))
}
