// SPDX-License-Identifier: MIT

package raster

import "errors"

var (
	// ErrEmptyAxis indicates an empty x or y coordinate vector.
	ErrEmptyAxis = errors.New("raster: coordinate axis is empty")

	// ErrShapeMismatch indicates z does not match len(ys)×len(xs).
	ErrShapeMismatch = errors.New("raster: value grid does not match coordinates")

	// ErrIrregularSampling indicates coordinates that are not evenly spaced.
	ErrIrregularSampling = errors.New("raster: coordinates are not evenly spaced")

	// ErrNaNInf indicates a NaN or ±Inf coordinate.
	ErrNaNInf = errors.New("raster: NaN or Inf coordinate")
)
