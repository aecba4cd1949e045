// Package cache хранит агрегаты реакций, чтобы не пересчитывать их на каждый запрос.
package cache

import (
	"SecretInk/internal/model"
	"time"

	"code.cloudfoundry.org/clock"
	lru "github.com/hashicorp/golang-lru/v2"
)

type cachedCounts struct {
	Counts    model.ReactionCounts
	Timestamp time.Time
}

// CountsCache — LRU счётчиков реакций по ID сообщения с TTL.
// Безопасен для конкурентного использования.
type CountsCache struct {
	entries *lru.Cache[string, cachedCounts]
	ttl     time.Duration
	clock   clock.Clock
}

// NewCountsCache создаёт кэш на size записей. ttl <= 0 отключает устаревание по времени.
func NewCountsCache(size int, ttl time.Duration, clk clock.Clock) (*CountsCache, error) {
	entries, err := lru.New[string, cachedCounts](size)
	if err != nil {
		return nil, err
	}
	return &CountsCache{entries: entries, ttl: ttl, clock: clk}, nil
}

// Get возвращает счётчики, если они есть и не устарели.
func (c *CountsCache) Get(confessionID string) (model.ReactionCounts, bool) {
	cached, ok := c.entries.Get(confessionID)
	if !ok {
		return model.ReactionCounts{}, false
	}
	if c.ttl > 0 && c.clock.Since(cached.Timestamp) > c.ttl {
		c.entries.Remove(confessionID)
		return model.ReactionCounts{}, false
	}
	return cached.Counts, true
}

// Set сохраняет счётчики для сообщения.
func (c *CountsCache) Set(confessionID string, counts model.ReactionCounts) {
	c.entries.Add(confessionID, cachedCounts{Counts: counts, Timestamp: c.clock.Now()})
}

// Invalidate удаляет запись сообщения.
func (c *CountsCache) Invalidate(confessionID string) {
	c.entries.Remove(confessionID)
}

// Len — число записей в кэше.
func (c *CountsCache) Len() int {
	return c.entries.Len()
}
