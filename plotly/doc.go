// SPDX-License-Identifier: MIT

// Package plotly derives the heatmap plot state of an image element: one
// "heatmap" trace (origin, step, value grid and value limits) plus the axis
// ranges of the figure layout.
//
// Field names follow the plotly figure schema, so a PlotState encodes to
// JSON or YAML that a plotly front end consumes as-is.
//
//	state, err := plotly.State(raster.NewElement(img, "Density"), plotly.WithInvertAxes())
//
// With WithInvertAxes the x and y roles swap: the trace origin and step
// come from the other axis, z is transposed and the two axis ranges trade
// places. Value limits never change.
package plotly
