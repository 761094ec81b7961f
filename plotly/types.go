// SPDX-License-Identifier: MIT

package plotly

// TraceHeatmap is the trace type tag of image plots.
const TraceHeatmap = "heatmap"

// Trace describes one regularly sampled heatmap trace.
type Trace struct {
	Type string      `json:"type" yaml:"type"`
	Name string      `json:"name,omitempty" yaml:"name,omitempty"`
	X0   float64     `json:"x0" yaml:"x0"`
	DX   float64     `json:"dx" yaml:"dx"`
	Y0   float64     `json:"y0" yaml:"y0"`
	DY   float64     `json:"dy" yaml:"dy"`
	Z    [][]float64 `json:"z" yaml:"z"`
	ZMin float64     `json:"zmin" yaml:"zmin"`
	ZMax float64     `json:"zmax" yaml:"zmax"`
}

// Axis holds the visible range of one layout axis as [lo, hi].
type Axis struct {
	Range []float64 `json:"range" yaml:"range"`
}

// Layout holds the figure axes.
type Layout struct {
	XAxis Axis `json:"xaxis" yaml:"xaxis"`
	YAxis Axis `json:"yaxis" yaml:"yaxis"`
}

// PlotState is the complete figure state: traces plus layout.
type PlotState struct {
	Data   []Trace `json:"data" yaml:"data"`
	Layout Layout  `json:"layout" yaml:"layout"`
}
