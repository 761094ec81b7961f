// Package lvview is an in-memory model of composite data views: labelled
// elements combined into trees, adjoint layouts, grids and coordinate
// indexed layouts, plus the heatmap plot state of raster images.
//
// What is in the box?
//
//	• Views: Element, ViewTree (Combine), AdjointLayout (Attach),
//	  GridLayout and AxisLayout with shape inference
//	• Raster images: evenly sampled x/y axes over a value grid
//	• Plot state: heatmap traces and axis ranges, normal or inverted
//	• Operations: per-element processing fanned out over layouts
//	• Layout documents: YAML or TOML files describing a composition
//
// Everything is organized under small subpackages:
//
//	view/       View interface, Element and the four composites
//	matrix/     dense float64 grid backing raster images
//	raster/     Image element data: coordinates, steps, bounds
//	plotly/     heatmap plot state of an image element
//	operation/  per-element operations over elements and axis layouts
//	pprint/     indented tree printer, optionally lipgloss-styled
//	layoutdoc/  YAML/TOML layout documents built into views
//	cmd/lvview  command-line front end over layoutdoc
//
// Quick ASCII example of Attach(Attach(main, right), top):
//
//	┌───────┐
//	│  top  │
//	├───────┼───────┐
//	│ main  │ right │
//	└───────┴───────┘
//
//	go install github.com/katalvlaran/lvview/cmd/lvview@latest
package lvview
