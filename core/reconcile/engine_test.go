package reconcile

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockAdapter is a simple test adapter over string items.
type mockAdapter struct {
	name          string
	persisted     map[string]Item
	local         map[string]Item
	persistedFunc func(context.Context) (map[string]Item, error)
	localFunc     func(context.Context) (map[string]Item, error)
	loads         int32
}

func (m *mockAdapter) Name() string {
	if m.name != "" {
		return m.name
	}
	return "mock"
}

func (m *mockAdapter) LoadPersisted(ctx context.Context) (map[string]Item, error) {
	atomic.AddInt32(&m.loads, 1)
	if m.persistedFunc != nil {
		return m.persistedFunc(ctx)
	}
	return m.persisted, nil
}

func (m *mockAdapter) LoadLocal(ctx context.Context) (map[string]Item, error) {
	if m.localFunc != nil {
		return m.localFunc(ctx)
	}
	return m.local, nil
}

func (m *mockAdapter) ResolveName(persisted, local Item) string {
	if local != nil {
		return fmt.Sprintf("%v", local)
	}
	return fmt.Sprintf("%v", persisted)
}

func (m *mockAdapter) CompareFields(persisted, local Item) []string {
	if persisted != local {
		return []string{fmt.Sprintf("value: persisted=%v local=%v", persisted, local)}
	}
	return nil
}

func (m *mockAdapter) GetMetadata(persisted, local Item) map[string]string {
	return map[string]string{"source": "mock"}
}

// TestBuildCache_ErrorHandling tests that BuildCache surfaces loader errors.
func TestBuildCache_ErrorHandling(t *testing.T) {
	tests := []struct {
		name         string
		persistedErr error
		localErr     error
		expectErr    string
	}{
		{name: "persisted load error", persistedErr: fmt.Errorf("db down"), expectErr: "db down"},
		{name: "local load error", localErr: fmt.Errorf("session gone"), expectErr: "session gone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter := &mockAdapter{
				persistedFunc: func(context.Context) (map[string]Item, error) {
					return map[string]Item{}, tt.persistedErr
				},
				localFunc: func(context.Context) (map[string]Item, error) {
					return map[string]Item{}, tt.localErr
				},
			}

			_, err := BuildCache(context.Background(), &Spec{Adapter: adapter})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectErr)
		})
	}
}

func TestReconcileAll_PresenceAndMismatch(t *testing.T) {
	adapter := &mockAdapter{
		persisted: map[string]Item{"a": "1", "b": "2", "c": "3"},
		local:     map[string]Item{"b": "2", "c": "30", "d": "4"},
	}

	results, err := ReconcileAll(context.Background(), &Spec{Adapter: adapter})
	require.NoError(t, err)
	require.Len(t, results, 4)

	assert.Equal(t, []string{"a", "b", "c", "d"}, []string{results[0].ID, results[1].ID, results[2].ID, results[3].ID})

	assert.True(t, results[0].PersistedPresent)
	assert.False(t, results[0].LocalPresent)

	assert.True(t, results[1].PersistedPresent)
	assert.True(t, results[1].LocalPresent)
	assert.Empty(t, results[1].Mismatch)

	assert.Equal(t, []string{"value: persisted=3 local=30"}, results[2].Mismatch)
	assert.Equal(t, "30", results[2].Name)

	assert.False(t, results[3].PersistedPresent)
	assert.True(t, results[3].LocalPresent)
	assert.Equal(t, "mock", results[3].Metadata["source"])
}

func TestReconcileOne_NotFound(t *testing.T) {
	adapter := &mockAdapter{persisted: map[string]Item{"a": "1"}, local: map[string]Item{"a": "1"}}

	result, err := ReconcileOne(context.Background(), &Spec{Adapter: adapter}, "zzz")
	require.NoError(t, err)
	assert.Equal(t, "zzz", result.ID)
	assert.False(t, result.PersistedPresent)
	assert.False(t, result.LocalPresent)
	assert.Empty(t, result.Name)
}

func TestCache_Hit(t *testing.T) {
	adapter := &mockAdapter{name: "cache-hit", persisted: map[string]Item{"a": "1"}, local: map[string]Item{}}
	spec := &Spec{Adapter: adapter, CacheTTL: time.Minute, Scope: "floor-1"}
	defer InvalidateCache(spec)

	first, err := GetOrBuildCache(context.Background(), spec)
	require.NoError(t, err)
	second, err := GetOrBuildCache(context.Background(), spec)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&adapter.loads))
}

func TestCache_Disabled(t *testing.T) {
	adapter := &mockAdapter{name: "cache-off", persisted: map[string]Item{}, local: map[string]Item{}}
	spec := &Spec{Adapter: adapter}

	_, err := GetOrBuildCache(context.Background(), spec)
	require.NoError(t, err)
	_, err = GetOrBuildCache(context.Background(), spec)
	require.NoError(t, err)

	assert.Equal(t, int32(2), atomic.LoadInt32(&adapter.loads))
}

func TestCache_Expiration(t *testing.T) {
	c := &Cache{Built: time.Now().Add(-2 * time.Minute), TTL: time.Minute}
	assert.True(t, c.IsExpired())

	c.Built = time.Now()
	assert.False(t, c.IsExpired())

	c.TTL = 0
	assert.True(t, c.IsExpired())
}

func TestCache_Invalidate(t *testing.T) {
	adapter := &mockAdapter{name: "cache-invalidate", persisted: map[string]Item{}, local: map[string]Item{}}
	spec := &Spec{Adapter: adapter, CacheTTL: time.Minute}

	_, err := GetOrBuildCache(context.Background(), spec)
	require.NoError(t, err)
	InvalidateCache(spec)
	_, err = GetOrBuildCache(context.Background(), spec)
	require.NoError(t, err)
	InvalidateCache(spec)

	assert.Equal(t, int32(2), atomic.LoadInt32(&adapter.loads))
}
