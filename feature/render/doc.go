// Package render draws floors as images.
//
// Both renderers share one layout step that maps percentage coordinates to
// canvas pixels with the editor's coordinate transform, so a render matches
// what the canvas shows at the same container size. Walls are drawn below
// elements; tables are colored by booking status and circle tables are drawn
// as ellipses.
//
//   - SVG builds the document as text.
//   - PNG rasterizes with gg and labels elements in Go Regular.
//
// # Endpoints
//
//   - GET  /floors/:id/render.svg?width=&height=
//   - GET  /floors/:id/render.png?width=&height=
//   - POST /floors/:id/renders?format=png   uploads to object storage
//   - GET  /floors/:id/renders              lists uploaded renders
package render
