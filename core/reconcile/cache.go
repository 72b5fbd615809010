package reconcile

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Cache holds pre-built indices for fast targeted reconciliation.
type Cache struct {
	// Persisted is the indexed map of stored items by entity key.
	Persisted map[string]Item

	// Local is the indexed map of working-copy items by entity key.
	Local map[string]Item

	// Built is the timestamp when this cache was built.
	Built time.Time

	// TTL is the time-to-live for this cache.
	TTL time.Duration
}

// IsExpired returns true if this cache has expired based on its TTL.
func (c *Cache) IsExpired() bool {
	if c.TTL == 0 {
		return true
	}
	return time.Since(c.Built) > c.TTL
}

type cacheStore struct {
	mu     sync.RWMutex
	caches map[string]*Cache
	sf     singleflight.Group
}

var globalCacheStore = &cacheStore{
	caches: make(map[string]*Cache),
}

// BuildCache loads both indices concurrently.
// This function does NOT store the cache; use GetOrBuildCache for that.
func BuildCache(ctx context.Context, spec *Spec) (*Cache, error) {
	var (
		persisted    map[string]Item
		local        map[string]Item
		persistedErr error
		localErr     error
		wg           sync.WaitGroup
	)

	wg.Add(2)

	go func() {
		defer wg.Done()
		persisted, persistedErr = spec.Adapter.LoadPersisted(ctx)
	}()

	go func() {
		defer wg.Done()
		local, localErr = spec.Adapter.LoadLocal(ctx)
	}()

	wg.Wait()

	if persistedErr != nil {
		return nil, persistedErr
	}
	if localErr != nil {
		return nil, localErr
	}

	return &Cache{
		Persisted: persisted,
		Local:     local,
		Built:     time.Now(),
		TTL:       spec.CacheTTL,
	}, nil
}

// GetOrBuildCache retrieves a cache for the given spec from the store,
// or builds a new one if it doesn't exist or has expired.
// Uses singleflight to prevent cache stampedes. A zero TTL always builds
// and never stores.
func GetOrBuildCache(ctx context.Context, spec *Spec) (*Cache, error) {
	if spec.CacheTTL == 0 {
		return BuildCache(ctx, spec)
	}

	cacheKey := spec.CacheKey()

	globalCacheStore.mu.RLock()
	cache, exists := globalCacheStore.caches[cacheKey]
	globalCacheStore.mu.RUnlock()

	if exists && !cache.IsExpired() {
		return cache, nil
	}

	result, err, _ := globalCacheStore.sf.Do(cacheKey, func() (interface{}, error) {
		// Double-check after acquiring singleflight lock
		globalCacheStore.mu.RLock()
		cache, exists := globalCacheStore.caches[cacheKey]
		globalCacheStore.mu.RUnlock()

		if exists && !cache.IsExpired() {
			return cache, nil
		}

		newCache, err := BuildCache(ctx, spec)
		if err != nil {
			return nil, err
		}

		globalCacheStore.mu.Lock()
		globalCacheStore.caches[cacheKey] = newCache
		globalCacheStore.mu.Unlock()

		return newCache, nil
	})

	if err != nil {
		return nil, err
	}

	return result.(*Cache), nil
}

// InvalidateCache removes the cache for the given spec from the store.
func InvalidateCache(spec *Spec) {
	cacheKey := spec.CacheKey()
	globalCacheStore.mu.Lock()
	delete(globalCacheStore.caches, cacheKey)
	globalCacheStore.mu.Unlock()
}
