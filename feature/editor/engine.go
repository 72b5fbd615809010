package editor

import (
	"floorplan/feature/floor/models"

	"go.uber.org/zap"
)

// Engine drives one canvas. It owns a working copy of the floor, runs each
// event through Transition, applies the resulting mutations to the copy and
// forwards the effects to the host.
//
// An Engine is not safe for concurrent use.
type Engine struct {
	registry *Registry
	state    State
	settings Settings
	host     Host
	newID    func() string
	logger   *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithHost sets the callback receiver.
func WithHost(h Host) Option {
	return func(e *Engine) { e.host = h }
}

// WithSettings overrides the default snapping and sizing settings.
func WithSettings(s Settings) Option {
	return func(e *Engine) { e.settings = s }
}

// WithAllowEdit toggles editing. A read-only engine still selects and hovers.
func WithAllowEdit(allow bool) Option {
	return func(e *Engine) { e.state.AllowEdit = allow }
}

// WithWallSettings sets the initial wall styling.
func WithWallSettings(w WallSettings) Option {
	return func(e *Engine) { e.state.Wall = w }
}

// WithIDGenerator sets the wall id generator.
func WithIDGenerator(fn func() string) Option {
	return func(e *Engine) { e.newID = fn }
}

// WithLogger sets the engine logger.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// NewEngine creates an engine editing a copy of floor.
func NewEngine(floor models.Floor, opts ...Option) *Engine {
	e := &Engine{
		registry: NewRegistry(floor),
		state:    NewState(true, Config{}.WallDefaults()),
		settings: DefaultSettings(),
		host:     HostFuncs{},
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Dispatch feeds one event through the engine and returns the effects it produced.
func (e *Engine) Dispatch(ev Event) []Effect {
	prev := e.state.Mode
	next, effects := Transition(e.state, ev, Env{
		Elements: e.registry,
		Settings: e.settings,
		NewID:    e.newID,
	})
	e.state = next

	for _, eff := range effects {
		e.apply(eff)
		deliver(e.host, eff)
	}

	if next.Mode != prev {
		e.logger.Debug("Interaction mode changed",
			zap.String("floor_id", e.registry.FloorID()),
			zap.String("event", ev.EventName()),
			zap.Stringer("from", prev),
			zap.Stringer("to", next.Mode),
		)
	}
	return effects
}

func (e *Engine) apply(eff Effect) {
	switch v := eff.(type) {
	case PositionChanged:
		e.registry.SetPosition(v.ID, v.X, v.Y)
	case SizeChanged:
		e.registry.SetSize(v.ID, v.Width, v.Height)
	case ElementRotated:
		e.registry.SetRotation(v.ID, v.Rotation)
	case ElementDeleted:
		e.registry.Remove(v.ID)
	case WallsAdded:
		e.registry.AddWalls(v.Walls)
	}
}

// State returns a copy of the interaction state.
func (e *Engine) State() State {
	return e.state.clone()
}

// Floor returns a copy of the working floor.
func (e *Engine) Floor() models.Floor {
	return e.registry.Floor()
}

// Registry exposes the working copy for read access.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// Load replaces the working floor, for example after the host reverted
// changes. An in-flight gesture on an element that no longer exists simply
// stops producing updates.
func (e *Engine) Load(floor models.Floor) {
	e.registry.Replace(floor)
	if e.state.SelectedID != "" && e.registry.KindOf(e.state.SelectedID) == models.KindNone {
		e.Dispatch(Select{})
	}
}

// PopWall removes the most recently added wall from the working floor and
// returns it along with any selection or hover effects its removal caused.
func (e *Engine) PopWall() (models.Wall, []Effect, bool) {
	walls := e.registry.floor.Walls
	if len(walls) == 0 {
		return models.Wall{}, nil, false
	}
	last := walls[len(walls)-1]
	e.registry.Remove(last.ID)

	var effects []Effect
	if e.state.SelectedID == last.ID {
		effects = append(effects, e.Dispatch(Select{})...)
	}
	if e.state.HoveredWallID == last.ID {
		effects = append(effects, e.Dispatch(PointerLeave{Target: Target{ID: last.ID}})...)
	}
	return last, effects, true
}

// Close tears the session down, committing any gesture and releasing
// every listener.
func (e *Engine) Close() []Effect {
	return e.Dispatch(Teardown{})
}
