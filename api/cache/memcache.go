package cache

import (
	"time"

	"github.com/coocood/freecache"
)

// Smallest size accepted by freecache.
const minMemCacheSize = 512 * 1024

// MemCache is a in-memory TTL cache, used when redis is not configured.
// Entries above 1/1024 of the size are rejected by Set.
type MemCache struct {
	cache *freecache.Cache
}

// NewMemCache creates a new memory cache of the given size in bytes.
func NewMemCache(sizeBytes int) *MemCache {
	return newMemCache(sizeBytes, nil)
}

// The timer is only replaced on tests.
func newMemCache(sizeBytes int, timer freecache.Timer) *MemCache {
	sizeBytes = max(sizeBytes, minMemCacheSize)
	if timer == nil {
		return &MemCache{cache: freecache.NewCache(sizeBytes)}
	}
	return &MemCache{cache: freecache.NewCacheCustomTimer(sizeBytes, timer)}
}

// Get returns a key value, nil when absent or expired.
func (mc *MemCache) Get(key string) []byte {
	value, err := mc.cache.Get([]byte(key))
	if err != nil {
		return nil
	}
	return value
}

// Set a given key on the cache, the ttl is rounded up to a second.
func (mc *MemCache) Set(key string, value []byte, ttl time.Duration) error {
	seconds := int((ttl + time.Second - 1) / time.Second)
	return mc.cache.Set([]byte(key), value, max(seconds, 1))
}

// Len counts the stored keys, expired ones are counted until evicted.
func (mc *MemCache) Len() int {
	return int(mc.cache.EntryCount())
}
