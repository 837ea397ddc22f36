// SPDX-License-Identifier: MIT

// Package render draws a ringlattice.Result as an SVG document: the origin,
// the y=0 and y=x guides, every lattice point, ring arcs in their assigned
// colors and singleton chains with their sequence labels.
//
// The package only reads the Result; all geometry (angles, sweeps, regions)
// comes from the core packages.
package render
