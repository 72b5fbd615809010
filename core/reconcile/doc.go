// Package reconcile compares two sources of truth for the same set of
// entities, a persisted store and a local working copy, and plans the
// mutations that bring them back in agreement.
//
// The floor editor applies changes optimistically: a drag is shown locally
// before the store confirms it, and a failed write is not rolled back. This
// package is how such drift is detected and resolved on demand.
//
// # Architecture
//
// 1. Engine: builds the union of keys from both sources, detects
// presence/absence, and identifies field mismatches.
//
// 2. Adapter: model-specific loading, naming and field comparison. An
// adapter that also implements Mutator can execute plans.
//
// 3. Cache: TTL-based caching layer with stampede protection.
//
// # Strategies
//
//   - persist: the local copy wins. Local-only and mismatched entities are
//     written, persisted-only entities are deleted.
//   - revert: the persisted store wins. Every difference is replaced locally.
//   - "" (report): no actions are planned.
//
// # Usage Example
//
//	spec := &reconcile.Spec{Adapter: adapter, Scope: floorID}
//	plan, executed, err := reconcile.ReconcileAndApply(ctx, spec, reconcile.Options{
//	    Strategy:  reconcile.StrategyRevert,
//	    Confirmed: true,
//	})
package reconcile
