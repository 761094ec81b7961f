// SPDX-License-Identifier: MIT

// Package raster defines Image, a regularly sampled 2-D value grid with
// explicit x and y coordinate vectors.
//
// The grid is stored row-per-y: Z row i holds the values at YS()[i], and
// column j the values at XS()[j]. Coordinates must be evenly spaced along
// each axis; the half-step padding of Bounds follows from that spacing.
//
// Errors:
//
//   - ErrEmptyAxis: an empty coordinate vector.
//   - ErrShapeMismatch: len(z) != len(ys) or a row length != len(xs).
//   - ErrIrregularSampling: uneven spacing along an axis.
//   - ErrNaNInf: a non-finite coordinate.
package raster
