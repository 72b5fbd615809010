package reconcile

import (
	"context"
	"sort"
)

// ReconcileAll performs a full reconciliation across all entities.
// It builds both indices, computes the union of keys, and returns a result
// for each key indicating presence and mismatches.
func ReconcileAll(ctx context.Context, spec *Spec) ([]Result, error) {
	cache, err := GetOrBuildCache(ctx, spec)
	if err != nil {
		return nil, err
	}
	return resultsFromCache(cache, spec.Adapter), nil
}

// ReconcileOne reconciles a single entity.
func ReconcileOne(ctx context.Context, spec *Spec, key string) (*Result, error) {
	cache, err := GetOrBuildCache(ctx, spec)
	if err != nil {
		return nil, err
	}
	result := buildResult(key, cache.Persisted, cache.Local, spec.Adapter)
	return &result, nil
}

// resultsFromCache builds results for the union of keys, sorted by key for
// deterministic output.
func resultsFromCache(cache *Cache, adapter Adapter) []Result {
	union := buildUnion(cache.Persisted, cache.Local)

	results := make([]Result, 0, len(union))
	for key := range union {
		results = append(results, buildResult(key, cache.Persisted, cache.Local, adapter))
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].ID < results[j].ID
	})
	return results
}

func buildUnion(persisted, local map[string]Item) map[string]struct{} {
	union := make(map[string]struct{}, len(persisted)+len(local))
	for key := range persisted {
		union[key] = struct{}{}
	}
	for key := range local {
		union[key] = struct{}{}
	}
	return union
}

func buildResult(key string, persisted, local map[string]Item, adapter Adapter) Result {
	pItem, pPresent := persisted[key]
	lItem, lPresent := local[key]

	result := Result{
		ID:               key,
		PersistedPresent: pPresent,
		LocalPresent:     lPresent,
		Mismatch:         []string{},
	}

	if pPresent || lPresent {
		result.Name = adapter.ResolveName(pItem, lItem)
		result.Metadata = adapter.GetMetadata(pItem, lItem)
	}

	if pPresent && lPresent {
		result.Mismatch = adapter.CompareFields(pItem, lItem)
	}

	return result
}
