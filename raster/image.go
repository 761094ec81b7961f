// SPDX-License-Identifier: MIT

package raster

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvview/matrix"
	"github.com/katalvlaran/lvview/view"
)

// Group is the element group given to images by NewElement.
const Group = "Image"

// samplingTolerance is the relative spacing deviation still treated as even.
const samplingTolerance = 1e-9

// Image is an immutable, regularly sampled value grid.
type Image struct {
	xs, ys []float64
	z      *matrix.Dense
	dx, dy float64
}

// NewImage validates and copies xs, ys and z.
// Stage 1 (Validate): non-empty, finite, evenly spaced axes.
// Stage 2 (Validate): len(z) == len(ys) and every row has len(xs) values.
// Stage 3 (Finalize): copy into a matrix.Dense.
// Complexity: O(len(xs)*len(ys)).
func NewImage(xs, ys []float64, z [][]float64) (*Image, error) {
	dx, err := axisStep("x", xs)
	if err != nil {
		return nil, err
	}
	dy, err := axisStep("y", ys)
	if err != nil {
		return nil, err
	}

	if len(z) != len(ys) {
		return nil, fmt.Errorf("NewImage: %d rows for %d y coordinates: %w", len(z), len(ys), ErrShapeMismatch)
	}
	for i, row := range z {
		if len(row) != len(xs) {
			return nil, fmt.Errorf("NewImage: row %d has %d values for %d x coordinates: %w",
				i, len(row), len(xs), ErrShapeMismatch)
		}
	}
	grid, err := matrix.FromRows(z)
	if err != nil {
		return nil, fmt.Errorf("NewImage: %w", err)
	}

	return &Image{
		xs: append([]float64(nil), xs...),
		ys: append([]float64(nil), ys...),
		z:  grid,
		dx: dx,
		dy: dy,
	}, nil
}

// axisStep returns the constant spacing of coords, or 1 for a single sample.
func axisStep(name string, coords []float64) (float64, error) {
	if len(coords) == 0 {
		return 0, fmt.Errorf("NewImage: %s: %w", name, ErrEmptyAxis)
	}
	for i, c := range coords {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return 0, fmt.Errorf("NewImage: %s[%d]: %w", name, i, ErrNaNInf)
		}
	}
	if len(coords) == 1 {
		return 1, nil
	}

	step := coords[1] - coords[0]
	if step == 0 {
		return 0, fmt.Errorf("NewImage: %s: zero spacing: %w", name, ErrIrregularSampling)
	}
	tol := math.Abs(step) * samplingTolerance
	for i := 2; i < len(coords); i++ {
		if math.Abs((coords[i]-coords[i-1])-step) > tol {
			return 0, fmt.Errorf("NewImage: %s[%d]: %w", name, i, ErrIrregularSampling)
		}
	}

	return step, nil
}

// XS returns a copy of the x coordinates.
func (img *Image) XS() []float64 { return append([]float64(nil), img.xs...) }

// YS returns a copy of the y coordinates.
func (img *Image) YS() []float64 { return append([]float64(nil), img.ys...) }

// Z returns a copy of the value grid (rows follow YS, columns follow XS).
func (img *Image) Z() *matrix.Dense { return img.z.Clone() }

// Step returns the sample spacing along x and y.
func (img *Image) Step() (dx, dy float64) { return img.dx, img.dy }

// Range returns the minimum and maximum grid value.
func (img *Image) Range() (lo, hi float64) { return img.z.MinMax() }

// Bounds returns the extent covered by the samples: every sample is the
// centre of a cell one step wide, so the coordinate range is padded by
// half a step on each side.
func (img *Image) Bounds() (left, bottom, right, top float64) {
	left, right = padded(img.xs, img.dx)
	bottom, top = padded(img.ys, img.dy)

	return left, bottom, right, top
}

func padded(coords []float64, step float64) (lo, hi float64) {
	lo, hi = coords[0], coords[len(coords)-1]
	if lo > hi {
		lo, hi = hi, lo
	}
	half := math.Abs(step) / 2

	return lo - half, hi + half
}

// NewElement wraps img into a view.Element in the Image group.
func NewElement(img *Image, label string) *view.Element {
	return view.NewElement(img, view.WithGroup(Group), view.WithLabel(label))
}
