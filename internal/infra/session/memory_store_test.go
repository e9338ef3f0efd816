package session_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"storefront/internal/domain/model"
	"storefront/internal/infra/session"
	repo "storefront/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestMemoryStore_BeginAndEnd(t *testing.T) {
	ctx := context.Background()
	s := session.NewMemoryStore(nil)

	id, err := s.Begin(ctx)
	require.NoError(t, err)
	assert.True(t, s.Exists(ctx, id))

	require.NoError(t, s.End(ctx, id))
	assert.False(t, s.Exists(ctx, id))

	assert.ErrorIs(t, s.End(ctx, id), repo.ErrSessionNotFound)
}

func TestMemoryStore_WithCart_UnknownSession(t *testing.T) {
	s := session.NewMemoryStore(nil)

	err := s.WithCart(context.Background(), "missing", func(*model.Cart) error { return nil })

	assert.ErrorIs(t, err, repo.ErrSessionNotFound)
}

func TestMemoryStore_SessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	s := session.NewMemoryStore(nil)

	a, _ := s.Begin(ctx)
	b, _ := s.Begin(ctx)

	p := model.Product{ID: "p1", Price: decimal.NewFromInt(10)}
	require.NoError(t, s.WithCart(ctx, a, func(c *model.Cart) error {
		c.AddItem(p, 3, nil)
		return nil
	}))

	var totalA, totalB int
	_ = s.WithCart(ctx, a, func(c *model.Cart) error { totalA = c.TotalItems(); return nil })
	_ = s.WithCart(ctx, b, func(c *model.Cart) error { totalB = c.TotalItems(); return nil })

	assert.Equal(t, 3, totalA)
	assert.Equal(t, 0, totalB)
}

func TestMemoryStore_ConcurrentAddsOnSameSession(t *testing.T) {
	ctx := context.Background()
	s := session.NewMemoryStore(nil)
	id, _ := s.Begin(ctx)

	p := model.Product{ID: "p1", Price: decimal.NewFromInt(5)}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.WithCart(ctx, id, func(c *model.Cart) error {
				c.AddItem(p, 1, nil)
				return nil
			})
		}()
	}
	wg.Wait()

	_ = s.WithCart(ctx, id, func(c *model.Cart) error {
		assert.Len(t, c.Items(), 1)
		assert.Equal(t, 50, c.TotalItems())
		return nil
	})
}

func TestMemoryStore_AuthPendingFlag(t *testing.T) {
	ctx := context.Background()
	s := session.NewMemoryStore(nil)
	id, _ := s.Begin(ctx)

	assert.True(t, s.TryBeginAuth(ctx, id))
	assert.False(t, s.TryBeginAuth(ctx, id))

	s.EndAuth(ctx, id)
	assert.True(t, s.TryBeginAuth(ctx, id))

	assert.False(t, s.TryBeginAuth(ctx, "missing"))
}

func TestMemoryStore_Sweep(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	s := session.NewMemoryStore(clock.Now)

	idle, _ := s.Begin(ctx)
	clock.Advance(20 * time.Minute)
	active, _ := s.Begin(ctx)
	clock.Advance(15 * time.Minute)

	removed := s.Sweep(ctx, clock.Now(), 30*time.Minute)

	assert.Equal(t, 1, removed)
	assert.False(t, s.Exists(ctx, idle))
	assert.True(t, s.Exists(ctx, active))
	assert.Equal(t, 1, s.Len())
}
