// Package floor owns the stored floor plans.
//
// It is the host side of the canvas: editing sessions read floors from it and
// hand it the changes they settle on, and the REST API exposes the same
// operations directly.
//
// # Storage
//
// Floors live in four tables (floors, floor_tables, points_of_interest,
// walls) managed through GORM. Walls carry a sequence number so that undo can
// find the newest one. ReplaceElements swaps all elements of a floor in one
// transaction and is what a "persist" reconcile uses.
//
// Background images are stored in object storage under
// floors/<id>/background<ext>.
//
// # Endpoints
//
//   - GET    /floors
//   - POST   /floors
//   - GET    /floors/:id
//   - PATCH  /floors/:id
//   - DELETE /floors/:id
//   - POST   /floors/:id/tables, PATCH/DELETE /floors/:id/tables/:elementId
//   - POST   /floors/:id/pois, PATCH/DELETE /floors/:id/pois/:elementId
//   - POST   /floors/:id/walls, POST /floors/:id/walls/undo, DELETE /floors/:id/walls/:elementId
//   - PUT    /floors/:id/background, GET /floors/:id/background
//
// Mutating routes answer 403 in booking mode, except a table patch that only
// changes the status.
package floor
