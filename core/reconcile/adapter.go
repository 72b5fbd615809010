package reconcile

import "context"

// Adapter defines the interface for model-specific reconciliation logic.
// Each adapter implements how to load, index, and compare data for a specific model.
type Adapter interface {
	// Name returns the unique name of this adapter (e.g., "floor").
	Name() string

	// LoadPersisted loads the stored entities indexed by entity key.
	LoadPersisted(ctx context.Context) (map[string]Item, error)

	// LoadLocal loads the working-copy entities indexed by entity key.
	LoadLocal(ctx context.Context) (map[string]Item, error)

	// ResolveName returns the display name for an entity.
	// Either item may be nil if not present in that source.
	ResolveName(persisted, local Item) string

	// CompareFields compares both versions of an entity and returns a list
	// of mismatch descriptions. Both items are non-nil.
	CompareFields(persisted, local Item) []string

	// GetMetadata returns model-specific metadata for the entity.
	GetMetadata(persisted, local Item) map[string]string
}

// Mutator is implemented by adapters that can execute plan actions.
//
// Adapters may additionally implement batch variants, which ApplyPlan
// prefers when present:
//
//	PersistLocalBatch(ctx, actions []Action) error
//	DeletePersistedBatch(ctx, keys []string) error
//	RevertLocalBatch(ctx, actions []Action) error
type Mutator interface {
	// PersistLocal writes the local version of key to the persisted store.
	PersistLocal(ctx context.Context, key string, local Item) error

	// DeletePersisted removes key from the persisted store.
	DeletePersisted(ctx context.Context, key string) error

	// RevertLocal overwrites the local version of key. A nil persisted item
	// removes the entity locally.
	RevertLocal(ctx context.Context, key string, persisted Item) error
}
