// Package coord maps value domains onto bounded pixel intervals and
// chooses tick points for axis labeling.
//
// The two capabilities are Ranged, the value-to-pixel mapping with its
// KeyPoints tick generator, and DiscreteRanged, which refines it for
// enumerable domains with Size/IndexOf/FromIndex. Concrete ranges cover
// linear numbers (F64Range), integers (IntRange) and calendar days
// (DateRange); combinators (Linspace, LogRange, GroupBy, Nested,
// Segmented) wrap an inner range to alter its mapping or tick behavior
// and can be nested arbitrarily through the same interfaces.
//
// Cartesian2D, DualCoord and Cartesian3D compose per-axis ranges into a
// full pixel-space transform; the 3-D variant projects through a
// yaw/pitch/scale matrix and yields a depth value for back-to-front
// draw ordering.
package coord
