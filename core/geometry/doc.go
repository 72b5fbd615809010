// Package geometry provides the pure math used by the floor editor.
//
// Every function here is total and deterministic: there is no hidden state,
// no allocation beyond return values, and degenerate input (zero grid size,
// coincident points, empty snap sets) falls back to returning the input.
//
// # Snapping
//
//   - SnapToGrid rounds a percentage coordinate to the nearest grid multiple.
//   - SnapToAngle rotates a segment end onto the closest allowed direction
//     while keeping the segment length.
//
// # Bounding boxes
//
// RotatedExtent computes the axis-aligned box of a rotated rectangle. The
// drag clamp uses it so that no element can leave the canvas.
//
// # Usage
//
//	p := geometry.Point{X: geometry.SnapToGrid(41.2, geometry.DefaultGridSize), Y: 10}
//	end := geometry.SnapToAngle(start, p, geometry.DefaultSnapAngles)
package geometry
