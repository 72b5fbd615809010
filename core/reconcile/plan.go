package reconcile

import (
	"context"
	"fmt"
)

// ReconcileWithPlan performs reconciliation and returns a plan with results and actions.
// It does NOT execute actions; use ApplyPlan for that.
func ReconcileWithPlan(ctx context.Context, spec *Spec, opts Options) (*Plan, error) {
	if !opts.Strategy.Valid() {
		return nil, fmt.Errorf("unknown reconcile strategy %q", opts.Strategy)
	}

	cache, err := GetOrBuildCache(ctx, spec)
	if err != nil {
		return nil, err
	}

	results := resultsFromCache(cache, spec.Adapter)
	summary, actions := buildPlanFromResults(results, cache, opts)

	return &Plan{
		Results: results,
		Actions: actions,
		Summary: summary,
	}, nil
}

// ApplyPlan executes the actions in a reconcile plan.
// Returns the number of actions executed and any error encountered.
// Requires opts.Confirmed=true and opts.DryRun=false to actually execute.
func ApplyPlan(ctx context.Context, spec *Spec, plan *Plan, opts Options) (executed int, err error) {
	if !opts.Confirmed || opts.DryRun {
		return 0, nil
	}

	mutator, ok := spec.Adapter.(Mutator)
	if !ok {
		return 0, fmt.Errorf("adapter %s does not implement Mutator interface", spec.Adapter.Name())
	}

	var (
		persistActions []Action
		deleteKeys     []string
		revertActions  []Action
	)

	for _, action := range plan.Actions {
		switch action.Type {
		case ActionPersistLocal:
			persistActions = append(persistActions, action)
		case ActionDeletePersisted:
			deleteKeys = append(deleteKeys, action.Key)
		case ActionRevertLocal:
			revertActions = append(revertActions, action)
		}
	}

	if len(persistActions) > 0 {
		type PersistBatcher interface {
			PersistLocalBatch(ctx context.Context, actions []Action) error
		}
		if batcher, ok := mutator.(PersistBatcher); ok {
			if err := batcher.PersistLocalBatch(ctx, persistActions); err != nil {
				return executed, fmt.Errorf("failed to batch persist local items: %w", err)
			}
			executed += len(persistActions)
		} else {
			for _, action := range persistActions {
				if err := mutator.PersistLocal(ctx, action.Key, action.Item); err != nil {
					return executed, fmt.Errorf("failed to persist key %s: %w", action.Key, err)
				}
				executed++
			}
		}
	}

	if len(deleteKeys) > 0 {
		type DeleteBatcher interface {
			DeletePersistedBatch(ctx context.Context, keys []string) error
		}
		if batcher, ok := mutator.(DeleteBatcher); ok {
			if err := batcher.DeletePersistedBatch(ctx, deleteKeys); err != nil {
				return executed, fmt.Errorf("failed to batch delete persisted keys: %w", err)
			}
			executed += len(deleteKeys)
		} else {
			for _, key := range deleteKeys {
				if err := mutator.DeletePersisted(ctx, key); err != nil {
					return executed, fmt.Errorf("failed to delete persisted key %s: %w", key, err)
				}
				executed++
			}
		}
	}

	if len(revertActions) > 0 {
		type RevertBatcher interface {
			RevertLocalBatch(ctx context.Context, actions []Action) error
		}
		if batcher, ok := mutator.(RevertBatcher); ok {
			if err := batcher.RevertLocalBatch(ctx, revertActions); err != nil {
				return executed, fmt.Errorf("failed to batch revert local items: %w", err)
			}
			executed += len(revertActions)
		} else {
			for _, action := range revertActions {
				if err := mutator.RevertLocal(ctx, action.Key, action.Item); err != nil {
					return executed, fmt.Errorf("failed to revert key %s: %w", action.Key, err)
				}
				executed++
			}
		}
	}

	return executed, nil
}

// ReconcileAndApply is a convenience wrapper that plans and optionally applies actions.
// It returns the plan, number of actions executed, and any error.
func ReconcileAndApply(ctx context.Context, spec *Spec, opts Options) (*Plan, int, error) {
	plan, err := ReconcileWithPlan(ctx, spec, opts)
	if err != nil {
		return nil, 0, err
	}

	executed, err := ApplyPlan(ctx, spec, plan, opts)
	return plan, executed, err
}

// buildPlanFromResults generates a summary and action plan from reconciliation results.
func buildPlanFromResults(results []Result, cache *Cache, opts Options) (Summary, []Action) {
	var summary Summary
	var actions []Action

	summary.TotalItems = len(results)

	for _, result := range results {
		drift := ""
		switch {
		case result.LocalPresent && !result.PersistedPresent:
			summary.MissingPersisted++
			drift = "missing in persisted store"
		case result.PersistedPresent && !result.LocalPresent:
			summary.MissingLocal++
			drift = "missing in local copy"
		case len(result.Mismatch) > 0:
			summary.Mismatches++
			drift = fmt.Sprintf("mismatch: %v", result.Mismatch)
		}
		if drift == "" {
			continue
		}

		switch opts.Strategy {
		case StrategyPersist:
			if result.LocalPresent {
				actions = append(actions, Action{
					Type:   ActionPersistLocal,
					Key:    result.ID,
					Reason: drift,
					Item:   cache.Local[result.ID],
				})
				summary.PersistActions++
			} else {
				actions = append(actions, Action{
					Type:   ActionDeletePersisted,
					Key:    result.ID,
					Reason: drift,
				})
				summary.DeleteActions++
			}
		case StrategyRevert:
			var item Item
			if result.PersistedPresent {
				item = cache.Persisted[result.ID]
			}
			actions = append(actions, Action{
				Type:   ActionRevertLocal,
				Key:    result.ID,
				Reason: drift,
				Item:   item,
			})
			summary.RevertActions++
		}
	}

	return summary, actions
}
