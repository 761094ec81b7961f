// SPDX-License-Identifier: MIT

package plotly

import (
	"fmt"

	"github.com/katalvlaran/lvview/raster"
	"github.com/katalvlaran/lvview/view"
)

// State computes the plot state of v, which must be an Element whose data
// is a *raster.Image.
//
// Normal orientation:
//
//	x0, dx = XS()[0], step x     y0, dy = YS()[0], step y
//	z      = value grid          xaxis  = x bounds, yaxis = y bounds
//
// Inverted orientation swaps every x/y pair above and transposes z.
// zmin/zmax are the grid range unless WithColorLimits overrides them.
// Complexity: O(len(xs)*len(ys)).
func State(v view.View, opts ...Option) (*PlotState, error) {
	if v == nil {
		return nil, fmt.Errorf("State: %w", view.ErrNilView)
	}
	e, ok := v.(*view.Element)
	if !ok {
		return nil, fmt.Errorf("State: %s: %w", v.Kind(), ErrUnsupportedView)
	}
	img, ok := e.Data().(*raster.Image)
	if !ok {
		return nil, fmt.Errorf("State: element data %T: %w", e.Data(), ErrUnsupportedView)
	}
	cfg := gatherOptions(opts)

	xs, ys := img.XS(), img.YS()
	dx, dy := img.Step()
	left, bottom, right, top := img.Bounds()
	z := img.Z()

	trace := Trace{
		Type: TraceHeatmap,
		Name: e.Label(),
		X0:   xs[0],
		DX:   dx,
		Y0:   ys[0],
		DY:   dy,
	}
	xRange := []float64{left, right}
	yRange := []float64{bottom, top}

	if cfg.invertAxes {
		trace.X0, trace.Y0 = trace.Y0, trace.X0
		trace.DX, trace.DY = trace.DY, trace.DX
		xRange, yRange = yRange, xRange
		z = z.Transpose()
	}
	trace.Z = z.ToRows()

	trace.ZMin, trace.ZMax = img.Range()
	if cfg.climSet {
		trace.ZMin, trace.ZMax = cfg.clim[0], cfg.clim[1]
	}

	return &PlotState{
		Data: []Trace{trace},
		Layout: Layout{
			XAxis: Axis{Range: xRange},
			YAxis: Axis{Range: yRange},
		},
	}, nil
}
