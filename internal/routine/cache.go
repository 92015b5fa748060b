package routine

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/coocood/freecache"
)

const minCacheSizeBytes = 512 * 1024

// Cache keeps the current weekly routine per user in memory.
type Cache struct {
	cache *freecache.Cache
	ttl   time.Duration
}

func NewCache(sizeMB int, ttl time.Duration) *Cache {
	size := sizeMB * 1024 * 1024
	if size < minCacheSizeBytes {
		size = minCacheSizeBytes
	}
	return &Cache{
		cache: freecache.NewCache(size),
		ttl:   ttl,
	}
}

func cacheKey(userID int) []byte {
	return []byte("routine:current:" + strconv.Itoa(userID))
}

func (c *Cache) Get(userID int) (*WeeklyRoutine, bool) {
	raw, err := c.cache.Get(cacheKey(userID))
	if err != nil {
		// freecache.ErrNotFound or expired
		return nil, false
	}
	var routine WeeklyRoutine
	if err := json.Unmarshal(raw, &routine); err != nil {
		c.cache.Del(cacheKey(userID))
		return nil, false
	}
	return &routine, true
}

func (c *Cache) Set(userID int, routine *WeeklyRoutine) error {
	if routine == nil {
		return errors.New("cache nil routine")
	}
	raw, err := json.Marshal(routine)
	if err != nil {
		return fmt.Errorf("marshal routine: %w", err)
	}
	// 0 means no expiry for freecache
	expireSeconds := int(c.ttl.Seconds())
	return c.cache.Set(cacheKey(userID), raw, expireSeconds)
}

func (c *Cache) Invalidate(userID int) {
	c.cache.Del(cacheKey(userID))
}

func (c *Cache) EntryCount() int64 {
	return c.cache.EntryCount()
}
