// Package plotters renders structured 2-D and 3-D charts onto pixel
// surfaces.
//
// The library is built around two narrow capabilities. A coordinate
// ranging system (package coord) maps arbitrary value domains onto a
// bounded pixel interval and chooses tick points for axis labeling. A
// software rasterizer (package raster) draws anti-aliased primitives
// directly onto any surface that can blend a single pixel, expressed by
// the DrawingBackend interface in this package.
//
// The root package supplies the shared value types: colors and palettes,
// drawing styles, pixel buffers (Pixmap), and rectangular DrawingArea
// regions with exact-partition splitting. Package chart layers a thin
// chart-building API on top; cmd/plotdemo shows end-to-end usage.
//
// The core is single-threaded and synchronous. Separate renders may run
// in parallel goroutines as long as each uses its own Pixmap and its own
// coordinate objects; no state is shared across render passes.
package plotters
