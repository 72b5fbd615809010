// Package editor implements the canvas interaction engine of the floor
// editor and serves it as HTTP editing sessions.
//
// # Engine
//
// The core is a pure transition function:
//
//	next, effects := Transition(state, event, env)
//
// State holds the interaction mode (idle, dragging, resizing, wall drawing),
// the drawing mode selected in the toolbar, the wall being drawn, the
// selection and the hovered wall. Events are pointer, keyboard and toolbar
// inputs. Effects are the proposed changes (moves, resizes, rotations,
// deletions, new walls) plus UI hints such as the active tab and listener
// attach/detach requests.
//
// Engine wraps Transition with a working copy of the floor (Registry),
// applies each effect to it and forwards it to a Host. The host owns the
// canonical floor.
//
// # Geometry
//
// Positions are percentages of the container, sizes are pixels. Dragging
// clamps an element so its rotated bounding box stays on the canvas.
// Resizing keeps at least MinWidth×MinHeight pixels. Wall points can be
// snapped to the grid and then to the nearest allowed angle.
//
// # Sessions
//
// Service keeps one Engine per client session. Persistence is optimistic:
// effects are written by background workers, ordered per floor, and
// failures come back as notices. Reconcile compares a session with the
// stored floor and can persist or revert the difference. A cron janitor
// evicts idle sessions.
//
// # HTTP Endpoints
//
//   - POST   /editor/sessions               : Open a session on a floor.
//   - GET    /editor/sessions/:id           : Session state and working floor.
//   - DELETE /editor/sessions/:id           : Close a session.
//   - POST   /editor/sessions/:id/events    : Dispatch a batch of events.
//   - GET    /editor/sessions/:id/reconcile : Report drift.
//   - POST   /editor/sessions/:id/reconcile : Repair drift (?strategy=persist|revert).
package editor
