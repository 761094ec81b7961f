// SPDX-License-Identifier: MIT

// Package view composes visual elements into composite views.
//
// What:
//
//   - Element wraps an arbitrary payload with a group and a label.
//   - ViewTree is the flat, ordered result of Combine.
//   - AdjointLayout holds up to three positional slots (main, right, top)
//     and is built by Attach.
//   - GridLayout arranges a sequence of views into rows and columns,
//     one row by default.
//   - AxisLayout keys views by explicit (row, col) coordinates and derives
//     its shape from the distinct key values along each axis.
//
// Composition is value-like: Combine, Attach, WithSlot and Set always
// return a new composite and never mutate their operands.
//
//	v1 := view.NewElement("a", view.WithLabel("View1"))
//	v2 := view.NewElement("b", view.WithLabel("View2"))
//	tree, _ := view.Combine(v1, v2)   // ViewTree{v1, v2}
//	adj, _ := view.Attach(v1, v2)     // main=v1, right=v2
//
// Errors:
//
//   - ErrNilView: a nil view was passed where a view is required.
//   - ErrNotAttachable: the view cannot occupy an adjoint slot.
//   - ErrLayoutFull: all three adjoint slots are already populated.
//   - ErrEmptyLayout: an adjoint layout would have no main view.
//   - ErrInvalidPosition: slot position outside main/right/top.
//   - ErrEmptyGrid: GridLayout built from zero views.
//   - ErrNotGridable: the view cannot be placed in a grid cell.
//   - ErrOutOfRange: grid or tree index outside the shape.
//   - ErrEmptyCell: grid position inside the shape but past the last view.
//   - ErrDuplicateKey: AxisLayout built with a repeated coordinate.
//   - ErrMixedKinds: AxisLayout cells of different view kinds.
package view
