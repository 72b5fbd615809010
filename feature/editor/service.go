package editor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"floorplan/feature/floor/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrSessionNotFound is returned for unknown or evicted sessions.
var ErrSessionNotFound = errors.New("editing session not found")

// FloorSource loads the canonical floor a session starts from.
type FloorSource interface {
	GetFloor(ctx context.Context, id string) (*models.Floor, error)
}

// Persister stores the changes an editing session produces.
type Persister interface {
	UpdatePlacement(ctx context.Context, floorID string, kind models.ElementKind, id string, p models.Placement) error
	DeleteElement(ctx context.Context, floorID string, kind models.ElementKind, id string) error
	AddWalls(ctx context.Context, floorID string, walls []models.Wall) error
	ReplaceElements(ctx context.Context, floor models.Floor) error
}

// Notice is a message for the client, typically a failed background write.
type Notice struct {
	At      time.Time `json:"at"`
	Level   string    `json:"level"`
	Message string    `json:"message"`
}

// Session is one client editing one floor.
type Session struct {
	ID      string
	FloorID string
	Created time.Time

	mu       sync.Mutex
	engine   *Engine
	lastSeen time.Time

	noticeMu sync.Mutex
	notices  []Notice
}

func (s *Session) notify(level, msg string) {
	s.noticeMu.Lock()
	defer s.noticeMu.Unlock()
	s.notices = append(s.notices, Notice{At: time.Now(), Level: level, Message: msg})
}

func (s *Session) drainNotices() []Notice {
	s.noticeMu.Lock()
	defer s.noticeMu.Unlock()
	out := s.notices
	s.notices = nil
	return out
}

// Snapshot is a read-only view of a session.
type Snapshot struct {
	ID       string       `json:"id"`
	FloorID  string       `json:"floorId"`
	Created  time.Time    `json:"created"`
	LastSeen time.Time    `json:"lastSeen"`
	State    State        `json:"state"`
	Floor    models.Floor `json:"floor"`
}

// DispatchResult is what a batch of events produced.
type DispatchResult struct {
	Intents []Intent `json:"intents"`
	State   State    `json:"state"`
	Notices []Notice `json:"notices"`
}

// Service manages editing sessions and routes their effects to persistence.
type Service struct {
	cfg       Config
	floors    FloorSource
	persister Persister
	logger    *zap.Logger
	queue     *persistQueue
	now       func() time.Time

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewService creates a new editor service and starts its persistence workers.
func NewService(cfg Config, floors FloorSource, persister Persister, logger *zap.Logger) *Service {
	return &Service{
		cfg:       cfg,
		floors:    floors,
		persister: persister,
		logger:    logger,
		queue:     newPersistQueue(cfg.PersistWorkers, logger),
		now:       time.Now,
		sessions:  make(map[string]*Session),
	}
}

// Open starts a session on the given floor.
func (s *Service) Open(ctx context.Context, floorID string, allowEdit bool) (*Snapshot, error) {
	floor, err := s.floors.GetFloor(ctx, floorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load floor %s: %w", floorID, err)
	}

	cfg := s.config()
	now := s.now()
	sess := &Session{
		ID:       uuid.NewString(),
		FloorID:  floor.ID,
		Created:  now,
		lastSeen: now,
	}
	sess.engine = NewEngine(*floor,
		WithSettings(cfg.Settings()),
		WithWallSettings(cfg.WallDefaults()),
		WithAllowEdit(allowEdit),
		WithLogger(s.logger.With(zap.String("session_id", sess.ID))),
	)

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	s.logger.Info("Editing session opened",
		zap.String("session_id", sess.ID),
		zap.String("floor_id", floor.ID),
		zap.Bool("allow_edit", allowEdit),
	)
	return snapshot(sess), nil
}

func (s *Service) session(id string) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func snapshot(sess *Session) *Snapshot {
	return &Snapshot{
		ID:       sess.ID,
		FloorID:  sess.FloorID,
		Created:  sess.Created,
		LastSeen: sess.lastSeen,
		State:    sess.engine.State(),
		Floor:    sess.engine.Floor(),
	}
}

// Get returns a snapshot of a session.
func (s *Service) Get(id string) (*Snapshot, error) {
	sess, err := s.session(id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return snapshot(sess), nil
}

// Dispatch runs a batch of events through a session in order. Persistence
// happens in the background; failures show up as notices on a later call.
// Events left over when ctx ends are dropped with a notice.
func (s *Service) Dispatch(ctx context.Context, id string, events []Event) (*DispatchResult, error) {
	sess, err := s.session(id)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.lastSeen = s.now()

	var effects []Effect
	for i, ev := range events {
		if err := ctx.Err(); err != nil {
			sess.notify("warn", fmt.Sprintf("%d events dropped: %v", len(events)-i, err))
			break
		}
		produced := sess.engine.Dispatch(ev)
		for _, eff := range produced {
			if _, ok := eff.(WallUndoRequested); ok {
				produced = append(produced, s.undoWall(sess)...)
				break
			}
		}
		effects = append(effects, produced...)
	}

	for _, eff := range effects {
		s.schedule(sess, eff)
	}

	return &DispatchResult{
		Intents: Intents(effects),
		State:   sess.engine.State(),
		Notices: sess.drainNotices(),
	}, nil
}

// undoWall removes the newest wall of the floor.
func (s *Service) undoWall(sess *Session) []Effect {
	wall, effects, ok := sess.engine.PopWall()
	if !ok {
		return nil
	}
	return append([]Effect{ElementDeleted{ID: wall.ID, Kind: models.KindWall}}, effects...)
}

func (s *Service) schedule(sess *Session, eff Effect) {
	floorID := sess.FloorID
	var job persistJob

	switch e := eff.(type) {
	case PersistElement:
		job = persistJob{op: "update_placement", run: func(ctx context.Context) error {
			return s.persister.UpdatePlacement(ctx, floorID, e.Kind, e.ID, e.Placement)
		}}
	case ElementDeleted:
		job = persistJob{op: "delete_element", run: func(ctx context.Context) error {
			return s.persister.DeleteElement(ctx, floorID, e.Kind, e.ID)
		}}
	case WallsAdded:
		job = persistJob{op: "add_walls", run: func(ctx context.Context) error {
			return s.persister.AddWalls(ctx, floorID, e.Walls)
		}}
	default:
		return
	}

	job.floorID = floorID
	job.onError = func(err error) {
		sess.notify("error", fmt.Sprintf("%s failed: %v", job.op, err))
	}
	if err := s.queue.Submit(job); err != nil {
		sess.notify("error", fmt.Sprintf("%s not saved: %v", job.op, err))
	}
}

// Close ends a session, committing any gesture in flight.
func (s *Service) Close(id string) error {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}

	s.closeSession(sess)
	s.logger.Info("Editing session closed", zap.String("session_id", id))
	return nil
}

func (s *Service) closeSession(sess *Session) {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	for _, eff := range sess.engine.Close() {
		s.schedule(sess, eff)
	}
}

// EvictIdle closes sessions not touched since the configured TTL and
// returns how many were closed.
func (s *Service) EvictIdle() int {
	cutoff := s.now().Add(-s.config().SessionTTL())

	var stale []*Session
	s.mu.Lock()
	for id, sess := range s.sessions {
		sess.mu.Lock()
		idle := sess.lastSeen.Before(cutoff)
		sess.mu.Unlock()
		if idle {
			stale = append(stale, sess)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, sess := range stale {
		s.closeSession(sess)
		s.logger.Info("Evicted idle editing session",
			zap.String("session_id", sess.ID),
			zap.String("floor_id", sess.FloorID),
		)
	}
	return len(stale)
}

// SetConfig replaces the configuration used by sessions opened from now on.
func (s *Service) SetConfig(cfg Config) {
	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()
}

func (s *Service) config() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Count returns the number of open sessions.
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Shutdown closes every session and drains pending writes.
func (s *Service) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	sessions := s.sessions
	s.sessions = make(map[string]*Session)
	s.mu.Unlock()

	for _, sess := range sessions {
		s.closeSession(sess)
	}
	return s.queue.Close(ctx)
}
