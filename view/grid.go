// SPDX-License-Identifier: MIT

package view

import (
	"fmt"
	"iter"
)

// GridLayout arranges views row-major into a rectangular shape.
// Without WithCols every view sits in a single row: shape (1, N).
// Repeated views are kept as distinct positions.
type GridLayout struct {
	views      []View
	rows, cols int
}

// GridOption configures a GridLayout before creation.
type GridOption func(c *gridConfig)

type gridConfig struct {
	cols int // 0 means "one row"
}

// WithCols wraps the views into rows of at most n columns.
// Panics when n <= 0.
func WithCols(n int) GridOption {
	if n <= 0 {
		panic(fmt.Sprintf("view: WithCols(%d)", n))
	}
	return func(c *gridConfig) { c.cols = n }
}

// NewGridLayout arranges views in order.
// Shape: (1, N) by default; with WithCols(n), (ceil(N/n), min(n, N)).
// Errors: ErrEmptyGrid, ErrNilView, ErrNotGridable (for ViewTree entries).
// Complexity: O(N).
func NewGridLayout(views []View, opts ...GridOption) (*GridLayout, error) {
	if len(views) == 0 {
		return nil, fmt.Errorf("NewGridLayout: %w", ErrEmptyGrid)
	}
	cfg := gridConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	for i, v := range views {
		if v == nil {
			return nil, fmt.Errorf("NewGridLayout: view %d: %w", i, ErrNilView)
		}
		if v.Kind() == KindTree {
			return nil, fmt.Errorf("NewGridLayout: view %d: %s: %w", i, v.Kind(), ErrNotGridable)
		}
	}

	n := len(views)
	cols := n
	if cfg.cols > 0 && cfg.cols < n {
		cols = cfg.cols
	}
	rows := (n + cols - 1) / cols

	cp := make([]View, n)
	copy(cp, views)

	return &GridLayout{views: cp, rows: rows, cols: cols}, nil
}

// Kind implements View.
func (g *GridLayout) Kind() Kind { return KindGrid }

// Shape returns (rows, cols).
func (g *GridLayout) Shape() (rows, cols int) { return g.rows, g.cols }

// Len returns the number of views.
func (g *GridLayout) Len() int { return len(g.views) }

// At returns the view at (row, col).
// Errors: ErrOutOfRange outside the shape, ErrEmptyCell for unfilled
// positions of the last row.
func (g *GridLayout) At(row, col int) (View, error) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return nil, fmt.Errorf("GridLayout.At(%d,%d): %w", row, col, ErrOutOfRange)
	}
	idx := row*g.cols + col
	if idx >= len(g.views) {
		return nil, fmt.Errorf("GridLayout.At(%d,%d): %w", row, col, ErrEmptyCell)
	}

	return g.views[idx], nil
}

// Views returns a copy of the views in row-major order.
func (g *GridLayout) Views() []View {
	out := make([]View, len(g.views))
	copy(out, g.views)

	return out
}

// All iterates views with their (row, col) position.
func (g *GridLayout) All() iter.Seq2[Key, View] {
	return func(yield func(Key, View) bool) {
		for i, v := range g.views {
			if !yield(Key{Row: i / g.cols, Col: i % g.cols}, v) {
				return
			}
		}
	}
}
