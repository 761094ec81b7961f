// SPDX-License-Identifier: MIT

// Package layoutdoc loads layout documents: a list of elements plus a
// composition tree referring to them by label, and an optional plot
// section selecting an image element for the heatmap state.
//
// YAML (gopkg.in/yaml.v3) and TOML (github.com/BurntSushi/toml) share one
// schema; unknown keys are rejected in both.
//
//	elements:
//	  - label: View1
//	    text: An example of arbitrary data
//	  - label: Density
//	    image: {x: [1, 2, 3], y: [0, 1], z: [[0, 1, 2], [2, 3, 4]]}
//	layout:
//	  kind: tree
//	  items:
//	    - kind: adjoint
//	      items: [{ref: Density}, {ref: View1}]
//	plot:
//	  target: Density
//	  invert_axes: true
//
// Node kinds: "tree" (Combine of items), "adjoint" (items attached left to
// right), "grid" (items, optional cols), "axis" (cells with row/col).
// A node with ref names an element instead. Without a layout section the
// document builds its single element, or a ViewTree of all elements.
package layoutdoc
