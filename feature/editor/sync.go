package editor

import (
	"context"
	"fmt"
	"math"

	"floorplan/core/reconcile"
	"floorplan/feature/floor/models"

	"go.uber.org/zap"
)

const coordTolerance = 1e-6

// element is the reconcile item for any floor element.
type element struct {
	Kind      models.ElementKind
	Name      string
	Placement models.Placement
	Wall      models.Wall
}

// IndexFloor flattens a floor into reconcile items keyed by element id.
func IndexFloor(f models.Floor) map[string]reconcile.Item {
	out := make(map[string]reconcile.Item, len(f.Tables)+len(f.PointsOfInterest)+len(f.Walls))
	for _, t := range f.Tables {
		out[t.ID] = element{Kind: models.KindTable, Name: fmt.Sprintf("table %d", t.TableNumber), Placement: t.Placement}
	}
	for _, p := range f.PointsOfInterest {
		name := p.Name
		if name == "" {
			name = string(p.Type)
		}
		out[p.ID] = element{Kind: models.KindPOI, Name: name, Placement: p.Placement}
	}
	for _, w := range f.Walls {
		out[w.ID] = element{Kind: models.KindWall, Name: "wall", Wall: w}
	}
	return out
}

// FloorAdapter reconciles a stored floor against a working copy. The floor
// is the unit of repair: persisting replaces every stored element, reverting
// reloads the whole working copy.
type FloorAdapter struct {
	floorID   string
	floors    FloorSource
	persister Persister
	local     func() models.Floor
	revert    func(models.Floor)

	persisted *models.Floor
	replaced  bool
}

// NewFloorAdapter creates an adapter. local returns the working copy and
// revert replaces it; either may be nil when that direction is unused.
func NewFloorAdapter(floorID string, floors FloorSource, persister Persister, local func() models.Floor, revert func(models.Floor)) *FloorAdapter {
	return &FloorAdapter{
		floorID:   floorID,
		floors:    floors,
		persister: persister,
		local:     local,
		revert:    revert,
	}
}

var (
	_ reconcile.Adapter = (*FloorAdapter)(nil)
	_ reconcile.Mutator = (*FloorAdapter)(nil)
)

func (a *FloorAdapter) Name() string {
	return "floor"
}

func (a *FloorAdapter) LoadPersisted(ctx context.Context) (map[string]reconcile.Item, error) {
	f, err := a.floors.GetFloor(ctx, a.floorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load persisted floor: %w", err)
	}
	a.persisted = f
	return IndexFloor(*f), nil
}

func (a *FloorAdapter) LoadLocal(ctx context.Context) (map[string]reconcile.Item, error) {
	if a.local == nil {
		return map[string]reconcile.Item{}, nil
	}
	return IndexFloor(a.local()), nil
}

func (a *FloorAdapter) ResolveName(persisted, local reconcile.Item) string {
	if e, ok := local.(element); ok {
		return e.Name
	}
	if e, ok := persisted.(element); ok {
		return e.Name
	}
	return ""
}

func (a *FloorAdapter) GetMetadata(persisted, local reconcile.Item) map[string]string {
	e, ok := local.(element)
	if !ok {
		e, _ = persisted.(element)
	}
	return map[string]string{"kind": string(e.Kind)}
}

func (a *FloorAdapter) CompareFields(persisted, local reconcile.Item) []string {
	p := persisted.(element)
	l := local.(element)

	var out []string
	num := func(label string, pv, lv float64) {
		if math.Abs(pv-lv) > coordTolerance {
			out = append(out, fmt.Sprintf("%s: persisted=%g local=%g", label, pv, lv))
		}
	}
	str := func(label, pv, lv string) {
		if pv != lv {
			out = append(out, fmt.Sprintf("%s: persisted=%s local=%s", label, pv, lv))
		}
	}

	if p.Kind != l.Kind {
		str("kind", string(p.Kind), string(l.Kind))
		return out
	}

	if p.Kind == models.KindWall {
		num("startX", p.Wall.StartX, l.Wall.StartX)
		num("startY", p.Wall.StartY, l.Wall.StartY)
		num("endX", p.Wall.EndX, l.Wall.EndX)
		num("endY", p.Wall.EndY, l.Wall.EndY)
		num("thickness", p.Wall.Thickness, l.Wall.Thickness)
		str("color", p.Wall.Color, l.Wall.Color)
		str("style", string(p.Wall.Style), string(l.Wall.Style))
		return out
	}

	num("xAxis", p.Placement.XAxis, l.Placement.XAxis)
	num("yAxis", p.Placement.YAxis, l.Placement.YAxis)
	num("width", p.Placement.Width, l.Placement.Width)
	num("height", p.Placement.Height, l.Placement.Height)
	num("rotation", p.Placement.Rotation, l.Placement.Rotation)
	return out
}

func (a *FloorAdapter) persistAll(ctx context.Context) error {
	if a.replaced {
		return nil
	}
	if a.local == nil {
		return fmt.Errorf("no local copy to persist")
	}
	f := a.local()
	f.ID = a.floorID
	if err := a.persister.ReplaceElements(ctx, f); err != nil {
		return err
	}
	a.replaced = true
	return nil
}

func (a *FloorAdapter) revertAll() error {
	if a.persisted == nil {
		return fmt.Errorf("persisted floor not loaded")
	}
	if a.revert == nil {
		return fmt.Errorf("no local copy to revert")
	}
	a.revert(a.persisted.Clone())
	return nil
}

func (a *FloorAdapter) PersistLocal(ctx context.Context, key string, local reconcile.Item) error {
	return a.persistAll(ctx)
}

func (a *FloorAdapter) DeletePersisted(ctx context.Context, key string) error {
	return a.persistAll(ctx)
}

func (a *FloorAdapter) RevertLocal(ctx context.Context, key string, persisted reconcile.Item) error {
	return a.revertAll()
}

func (a *FloorAdapter) PersistLocalBatch(ctx context.Context, actions []reconcile.Action) error {
	return a.persistAll(ctx)
}

func (a *FloorAdapter) DeletePersistedBatch(ctx context.Context, keys []string) error {
	return a.persistAll(ctx)
}

func (a *FloorAdapter) RevertLocalBatch(ctx context.Context, actions []reconcile.Action) error {
	return a.revertAll()
}

// Reconcile compares a session's working copy with the stored floor and,
// for the persist and revert strategies, repairs the losing side.
func (s *Service) Reconcile(ctx context.Context, id string, strategy reconcile.Strategy, dryRun bool) (*reconcile.Plan, int, error) {
	sess, err := s.session(id)
	if err != nil {
		return nil, 0, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.lastSeen = s.now()

	adapter := NewFloorAdapter(sess.FloorID, s.floors, s.persister, sess.engine.Floor, sess.engine.Load)
	spec := &reconcile.Spec{Adapter: adapter, Scope: sess.ID}

	plan, executed, err := reconcile.ReconcileAndApply(ctx, spec, reconcile.Options{
		Strategy:  strategy,
		DryRun:    dryRun,
		Confirmed: strategy != reconcile.StrategyReport,
	})
	if err != nil {
		return plan, executed, fmt.Errorf("reconcile failed: %w", err)
	}

	if executed > 0 {
		s.logger.Info("Editing session reconciled",
			zap.String("session_id", sess.ID),
			zap.String("floor_id", sess.FloorID),
			zap.String("strategy", string(strategy)),
			zap.Int("actions", executed),
		)
	}
	return plan, executed, nil
}
