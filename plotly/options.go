// SPDX-License-Identifier: MIT

package plotly

import (
	"fmt"
	"math"
)

// Option customizes State.
type Option func(c *config)

type config struct {
	invertAxes bool
	climSet    bool
	clim       [2]float64
}

// WithInvertAxes swaps the x and y roles of the image.
func WithInvertAxes() Option {
	return func(c *config) { c.invertAxes = true }
}

// WithColorLimits fixes zmin/zmax instead of using the data range.
// Panics when lo > hi or either bound is not finite.
func WithColorLimits(lo, hi float64) Option {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo > hi {
		panic(fmt.Sprintf("plotly: WithColorLimits(%g, %g)", lo, hi))
	}
	return func(c *config) {
		c.climSet = true
		c.clim = [2]float64{lo, hi}
	}
}

func gatherOptions(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
