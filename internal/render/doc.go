// Package render composes salinity comparison figures.
//
// The package draws gridded fields as filled map panels on a gonum/plot
// canvas and assembles them into a fixed 3x2 figure with per-panel
// colorbars:
//
//   - [Panel]: one titled map cell (field, contour levels, colors)
//   - [MeanPanel], [BiasPanel]: panels with the standard salinity palettes
//   - [Figure]: lays out the panels and writes the PNG
//   - [Extent]: geographic window applied to every panel
//
// # Palettes
//
// Mean panels use a reversed Spectral palette, bias panels a diverging
// blue-red palette. Both extend beyond their level range, so values
// outside the levels are clamped to the end colors rather than dropped.
package render
