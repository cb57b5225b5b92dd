package cache

import (
	"encoding/binary"
	"errors"
	"time"

	"github.com/2beens/fitstreak/internal/telemetry/metrics"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	minSizeMB       = 1
	streakKeyPrefix = "streak||"
)

// StreakCache keeps the last computed streak per username in memory.
// It is a read-through helper only, the store stays the source of truth.
type StreakCache struct {
	cache   *freecache.Cache
	ttl     time.Duration
	metrics *metrics.Manager
}

func NewStreakCache(sizeMB int, ttl time.Duration, metricsManager *metrics.Manager) *StreakCache {
	if sizeMB < minSizeMB {
		sizeMB = minSizeMB
	}
	return &StreakCache{
		cache:   freecache.NewCache(sizeMB * 1024 * 1024),
		ttl:     ttl,
		metrics: metricsManager,
	}
}

func (c *StreakCache) Get(username string) (int, bool) {
	val, err := c.cache.Get(streakKey(username))
	if err != nil {
		if !errors.Is(err, freecache.ErrNotFound) {
			log.Warnf("streak cache, get [%s]: %s", username, err)
		}
		c.count("miss")
		return 0, false
	}
	if len(val) != 8 {
		c.count("miss")
		return 0, false
	}
	c.count("hit")
	return int(binary.BigEndian.Uint64(val)), true
}

func (c *StreakCache) Set(username string, streak int) {
	val := make([]byte, 8)
	binary.BigEndian.PutUint64(val, uint64(streak))
	if err := c.cache.Set(streakKey(username), val, int(c.ttl.Seconds())); err != nil {
		log.Warnf("streak cache, set [%s]: %s", username, err)
	}
}

func (c *StreakCache) Invalidate(username string) {
	c.cache.Del(streakKey(username))
}

func (c *StreakCache) count(result string) {
	if c.metrics == nil {
		return
	}
	c.metrics.CounterStreakCacheLookups.WithLabelValues(result).Inc()
}

func streakKey(username string) []byte {
	return []byte(streakKeyPrefix + username)
}
