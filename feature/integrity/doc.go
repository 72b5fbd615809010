// Package integrity provides health checks for the floor plan service.
//
// # Checks Provided
//
//   - Structure: the storage bucket exists and holds the floor and render folders.
//   - Schema: every floor table carries the columns declared by the floor row models.
//   - Floors: stored floors have unique element ids, valid placements and walls,
//     and their background images exist in storage.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/structure : Runs structure check (supports ?fix=true).
//   - GET /integrity/schema : Runs schema check.
//   - GET /integrity/floors : Runs floor check.
package integrity
