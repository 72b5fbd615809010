// Package models defines the Floor aggregate shared by the editor, the
// persistence layer and the renderers.
//
// # Domain types
//
//   - Floor: one venue layout; the unit of editing context.
//   - Table and PointOfInterest: placeable elements. Both embed Placement,
//     which carries position (percent), size (pixels) and rotation (degrees).
//   - Wall: a single boundary segment in percentage coordinates.
//
// # Database rows
//
// The *Row types mirror the domain types as GORM models. They are kept apart
// from the domain types so JSON shape and table layout can evolve separately.
package models
