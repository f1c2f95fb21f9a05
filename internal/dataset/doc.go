// Package dataset reads gridded fields from NetCDF classic files.
//
// The package extracts 2-D lon/lat fields from model and observation
// files, reducing leading time (and, for observations, depth)
// dimensions to their first index:
//
//   - [Open]: open a file for reading
//   - [Dataset.Field]: extract a 2-D field, first time step
//   - [Dataset.SurfaceField]: same, also selecting the surface depth level
//   - [Dataset.Describe]: variable and dimension inventory
//
// Spatial coordinates are resolved as xt_ocean/yt_ocean first, then
// lon/lat. Values equal to the variable's _FillValue or missing_value
// attribute are replaced with NaN.
package dataset
