// Package raster draws anti-aliased primitives onto a pixel surface.
//
// Every primitive is built on the single-pixel DrawingBackend capability
// from the root package: lines step along their dominant axis and blend
// fractional coverage into neighboring pixels, circles use the analytic
// half-chord per scan row, polygons are scan-filled with an even-odd
// rule, and polylines are stroked by polygonizing them into a fillable
// outline with miter joins.
//
// Primitives never clip on their own; coordinates are handed to the
// backend as computed and any error the backend reports is returned
// unchanged. Styles with zero alpha are no-ops that touch no pixels.
package raster
