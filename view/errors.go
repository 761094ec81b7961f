// SPDX-License-Identifier: MIT

package view

import "errors"

// Sentinel errors for composition. Returned wrapped with call-site context;
// match with errors.Is.
var (
	// ErrNilView indicates a nil View where a view is required.
	ErrNilView = errors.New("view: nil view")

	// ErrNotAttachable indicates a view that cannot occupy an adjoint slot.
	ErrNotAttachable = errors.New("view: view cannot be attached to an adjoint layout")

	// ErrLayoutFull indicates that main, right and top are all populated.
	ErrLayoutFull = errors.New("view: adjoint layout is full")

	// ErrEmptyLayout indicates an adjoint layout without a main view.
	ErrEmptyLayout = errors.New("view: adjoint layout requires a main view")

	// ErrInvalidPosition indicates a slot position outside main/right/top.
	ErrInvalidPosition = errors.New("view: invalid adjoint position")

	// ErrEmptyGrid indicates a GridLayout built from zero views.
	ErrEmptyGrid = errors.New("view: grid layout requires at least one view")

	// ErrNotGridable indicates a view that cannot be placed in a grid cell.
	ErrNotGridable = errors.New("view: view cannot be placed in a grid")

	// ErrOutOfRange indicates an index outside the composite's shape.
	ErrOutOfRange = errors.New("view: index out of range")

	// ErrEmptyCell indicates a grid position inside the shape with no view.
	ErrEmptyCell = errors.New("view: empty grid cell")

	// ErrDuplicateKey indicates a repeated AxisLayout coordinate.
	ErrDuplicateKey = errors.New("view: duplicate axis key")

	// ErrMixedKinds indicates AxisLayout cells of differing view kinds.
	ErrMixedKinds = errors.New("view: axis layout cells must share one kind")
)
