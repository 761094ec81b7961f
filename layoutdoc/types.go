// SPDX-License-Identifier: MIT

package layoutdoc

// Document is the decoded form of a layout file.
type Document struct {
	Elements []ElementSpec `yaml:"elements" toml:"elements"`
	Layout   *NodeSpec     `yaml:"layout,omitempty" toml:"layout,omitempty"`
	Plot     *PlotSpec     `yaml:"plot,omitempty" toml:"plot,omitempty"`
}

// ElementSpec describes one element. Image takes precedence over Text.
type ElementSpec struct {
	Label string     `yaml:"label" toml:"label"`
	Group string     `yaml:"group,omitempty" toml:"group,omitempty"`
	Text  string     `yaml:"text,omitempty" toml:"text,omitempty"`
	Image *ImageSpec `yaml:"image,omitempty" toml:"image,omitempty"`
}

// ImageSpec carries the coordinates and rows of a raster image.
type ImageSpec struct {
	X []float64   `yaml:"x" toml:"x"`
	Y []float64   `yaml:"y" toml:"y"`
	Z [][]float64 `yaml:"z" toml:"z"`
}

// NodeSpec is one node of the composition tree.
type NodeSpec struct {
	Ref   string     `yaml:"ref,omitempty" toml:"ref,omitempty"`
	Kind  string     `yaml:"kind,omitempty" toml:"kind,omitempty"`
	Label string     `yaml:"label,omitempty" toml:"label,omitempty"`
	Items []NodeSpec `yaml:"items,omitempty" toml:"items,omitempty"`
	Cols  int        `yaml:"cols,omitempty" toml:"cols,omitempty"`
	Cells []CellSpec `yaml:"cells,omitempty" toml:"cells,omitempty"`
}

// CellSpec places a node at an AxisLayout coordinate.
type CellSpec struct {
	Row  int      `yaml:"row" toml:"row"`
	Col  int      `yaml:"col" toml:"col"`
	Node NodeSpec `yaml:"node" toml:"node"`
}

// PlotSpec selects the element whose heatmap state is produced.
type PlotSpec struct {
	Target     string    `yaml:"target" toml:"target"`
	InvertAxes bool      `yaml:"invert_axes,omitempty" toml:"invert_axes,omitempty"`
	CLim       []float64 `yaml:"clim,omitempty" toml:"clim,omitempty"`
}

// Node kinds.
const (
	KindTree    = "tree"
	KindAdjoint = "adjoint"
	KindGrid    = "grid"
	KindAxis    = "axis"
)
