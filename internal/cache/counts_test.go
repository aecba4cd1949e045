package cache

import (
	"SecretInk/internal/model"
	"testing"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountsCache_SetGetExpire(t *testing.T) {
	clk := fakeclock.NewFakeClock(time.Unix(1_700_000_000, 0))
	c, err := NewCountsCache(8, time.Minute, clk)
	require.NoError(t, err)

	_, ok := c.Get("c1")
	assert.False(t, ok)

	c.Set("c1", model.ReactionCounts{Love: 2, Sad: 1})
	got, ok := c.Get("c1")
	assert.True(t, ok)
	assert.Equal(t, model.ReactionCounts{Love: 2, Sad: 1}, got)

	// после TTL запись пропадает
	clk.Increment(time.Minute + time.Second)
	_, ok = c.Get("c1")
	assert.False(t, ok)
	assert.Zero(t, c.Len())
}

func TestCountsCache_InvalidateAndNoTTL(t *testing.T) {
	clk := fakeclock.NewFakeClock(time.Now())
	c, err := NewCountsCache(8, 0, clk)
	require.NoError(t, err)

	c.Set("a", model.ReactionCounts{Love: 1})
	c.Set("b", model.ReactionCounts{Laugh: 1})

	c.Invalidate("a")
	_, ok := c.Get("a")
	assert.False(t, ok)

	// ttl=0 — без устаревания
	clk.Increment(24 * time.Hour)
	_, ok = c.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 1, c.Len())
}

func TestCountsCache_EvictsLeastRecent(t *testing.T) {
	c, err := NewCountsCache(2, 0, fakeclock.NewFakeClock(time.Now()))
	require.NoError(t, err)

	c.Set("a", model.ReactionCounts{})
	c.Set("b", model.ReactionCounts{})
	_, _ = c.Get("a")
	c.Set("c", model.ReactionCounts{})

	_, ok := c.Get("b")
	assert.False(t, ok)
	_, ok = c.Get("a")
	assert.True(t, ok)
}

func TestNewCountsCache_InvalidSize(t *testing.T) {
	_, err := NewCountsCache(0, time.Minute, fakeclock.NewFakeClock(time.Now()))
	assert.Error(t, err)
}
