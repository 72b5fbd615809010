package reconcile

import "time"

// Result represents the reconciliation output for a single entity.
// It contains presence flags for each source and any detected mismatches.
type Result struct {
	// ID is the unique identifier for the entity.
	ID string `json:"id"`

	// Name is the display name of the entity.
	Name string `json:"name"`

	// PersistedPresent indicates whether the entity exists in the persisted store.
	PersistedPresent bool `json:"persisted_present"`

	// LocalPresent indicates whether the entity exists in the local working copy.
	LocalPresent bool `json:"local_present"`

	// Mismatch contains descriptions of field mismatches between the two sources.
	// Each string describes a specific mismatch, e.g., "xAxis: persisted=10 local=12.5".
	Mismatch []string `json:"mismatch"`

	// Metadata contains model-specific arbitrary data (e.g., kind).
	Metadata map[string]string `json:"metadata"`
}

// Spec defines the configuration for a reconciliation operation.
type Spec struct {
	// Adapter provides model-specific reconciliation logic.
	Adapter Adapter

	// CacheTTL is the time-to-live for cached indices.
	// If zero, caching is disabled.
	CacheTTL time.Duration

	// Scope narrows the cache key, e.g. to a floor or a session.
	Scope string
}

// CacheKey returns a unique key for caching based on spec parameters.
func (s *Spec) CacheKey() string {
	return s.Adapter.Name() + "|" + s.Scope
}

// Item is an entity of either source. Adapters define the concrete type.
type Item any

// ActionType represents the type of mutation action.
type ActionType string

const (
	// ActionPersistLocal writes the local version of an entity to the persisted store.
	ActionPersistLocal ActionType = "persist_local"
	// ActionDeletePersisted removes an entity the local copy no longer has.
	ActionDeletePersisted ActionType = "delete_persisted"
	// ActionRevertLocal overwrites the local version with the persisted one.
	ActionRevertLocal ActionType = "revert_local"
)

// Strategy selects which source wins when the two disagree.
type Strategy string

const (
	// StrategyReport only reports differences.
	StrategyReport Strategy = ""
	// StrategyPersist makes the persisted store match the local copy.
	StrategyPersist Strategy = "persist"
	// StrategyRevert makes the local copy match the persisted store.
	StrategyRevert Strategy = "revert"
)

// Valid reports whether s is a known strategy.
func (s Strategy) Valid() bool {
	switch s {
	case StrategyReport, StrategyPersist, StrategyRevert:
		return true
	}
	return false
}

// Action represents a planned mutation operation.
type Action struct {
	// Type specifies the action to perform.
	Type ActionType `json:"type"`

	// Key is the entity identifier.
	Key string `json:"key"`

	// Reason explains why this action is needed.
	Reason string `json:"reason"`

	// Item is the winning version of the entity. It is the local item for
	// ActionPersistLocal and the persisted item, or nil, for ActionRevertLocal.
	Item Item `json:"-"`
}

// Plan contains reconciliation results and planned actions.
type Plan struct {
	// Results contains per-entity reconciliation data.
	Results []Result `json:"results"`

	// Actions contains planned mutation operations.
	Actions []Action `json:"actions"`

	// Summary provides aggregate counts.
	Summary Summary `json:"summary"`
}

// Summary provides aggregate statistics for a reconcile plan.
type Summary struct {
	// TotalItems is the total number of unique entities.
	TotalItems int `json:"total_items"`

	// MissingPersisted counts entities only the local copy has.
	MissingPersisted int `json:"missing_persisted"`

	// MissingLocal counts entities only the persisted store has.
	MissingLocal int `json:"missing_local"`

	// Mismatches counts entities with field discrepancies.
	Mismatches int `json:"mismatches"`

	// PersistActions counts planned writes to the persisted store.
	PersistActions int `json:"persist_actions"`

	// DeleteActions counts planned deletions from the persisted store.
	DeleteActions int `json:"delete_actions"`

	// RevertActions counts planned local reverts.
	RevertActions int `json:"revert_actions"`
}

// InSync reports whether the two sources agree.
func (s Summary) InSync() bool {
	return s.MissingPersisted == 0 && s.MissingLocal == 0 && s.Mismatches == 0
}

// Options controls reconcile behavior.
type Options struct {
	// Strategy selects the winning source.
	Strategy Strategy

	// DryRun prevents execution of any mutations if true.
	DryRun bool

	// Confirmed indicates the caller has confirmed the mutations.
	// If false, mutations will not execute regardless of DryRun.
	Confirmed bool
}
