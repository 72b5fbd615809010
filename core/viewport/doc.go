// Package viewport converts between pointer pixel coordinates and the
// percentage-of-container coordinates the floor plan is stored in.
//
// Percentages are the canonical unit: element positions and wall endpoints are
// persisted as percentages so that a plan renders the same way in containers of
// different sizes. Pixels only exist at the edges, when a pointer event arrives
// or when a renderer lays an element out.
//
// The container rectangle must be measured by the caller for every event,
// since layout can change between two drags. A zero-sized rectangle degrades to
// a 1×1 container instead of dividing by zero.
package viewport
