// SPDX-License-Identifier: MIT

package view

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
)

// Key is a two-dimensional AxisLayout coordinate.
type Key struct {
	Row, Col int
}

// Entry pairs a coordinate with the view stored there.
type Entry struct {
	Key  Key
	View View
}

// AxisLayout stores views under explicit coordinates.
// Its shape is (distinct Row values, distinct Col values); keys need not be
// contiguous, so {(0,0),(0,5),(3,0)} has shape (2,2).
// All cells share one Kind.
type AxisLayout struct {
	cells map[Key]View
	label string
}

// AxisOption configures an AxisLayout before creation.
type AxisOption func(l *AxisLayout)

// WithAxisLabel sets the layout label.
func WithAxisLabel(label string) AxisOption {
	return func(l *AxisLayout) { l.label = label }
}

// NewAxisLayout builds a layout from coordinate entries. An empty entry
// list is legal and yields shape (0, 0).
// Errors: ErrDuplicateKey, ErrNilView, ErrNotGridable, ErrMixedKinds.
// Complexity: O(N).
func NewAxisLayout(entries []Entry, opts ...AxisOption) (*AxisLayout, error) {
	l := &AxisLayout{cells: make(map[Key]View, len(entries))}
	for _, opt := range opts {
		opt(l)
	}

	for _, e := range entries {
		if _, dup := l.cells[e.Key]; dup {
			return nil, fmt.Errorf("NewAxisLayout: key %v: %w", e.Key, ErrDuplicateKey)
		}
		l.cells[e.Key] = e.View
	}
	if err := l.validate(); err != nil {
		return nil, fmt.Errorf("NewAxisLayout: %w", err)
	}

	return l, nil
}

// validate checks every cell in key order so the first error is stable.
func (l *AxisLayout) validate() error {
	var first View
	for _, k := range l.Keys() {
		v := l.cells[k]
		if v == nil {
			return fmt.Errorf("key %v: %w", k, ErrNilView)
		}
		switch v.Kind() {
		case KindElement, KindGrid:
		default:
			return fmt.Errorf("key %v: %s: %w", k, v.Kind(), ErrNotGridable)
		}
		if first == nil {
			first = v
			continue
		}
		if v.Kind() != first.Kind() {
			return fmt.Errorf("key %v: %s vs %s: %w", k, v.Kind(), first.Kind(), ErrMixedKinds)
		}
	}

	return nil
}

// Kind implements View.
func (l *AxisLayout) Kind() Kind { return KindAxis }

// Label returns the layout label.
func (l *AxisLayout) Label() string { return l.label }

// Len returns the number of cells.
func (l *AxisLayout) Len() int { return len(l.cells) }

// Shape returns (distinct row keys, distinct column keys).
func (l *AxisLayout) Shape() (rows, cols int) {
	return len(l.RowKeys()), len(l.ColKeys())
}

// Get returns the view stored at k.
func (l *AxisLayout) Get(k Key) (View, bool) {
	v, ok := l.cells[k]
	return v, ok
}

// Set returns a copy of l with v stored at k, replacing any previous cell.
func (l *AxisLayout) Set(k Key, v View) (*AxisLayout, error) {
	next := &AxisLayout{cells: make(map[Key]View, len(l.cells)+1), label: l.label}
	for kk, vv := range l.cells {
		next.cells[kk] = vv
	}
	next.cells[k] = v
	if err := next.validate(); err != nil {
		return nil, fmt.Errorf("AxisLayout.Set(%v): %w", k, err)
	}

	return next, nil
}

// Keys returns all coordinates sorted by Row, then Col.
func (l *AxisLayout) Keys() []Key {
	keys := make([]Key, 0, len(l.cells))
	for k := range l.cells {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compareKeys)

	return keys
}

// RowKeys returns the distinct Row values in ascending order.
func (l *AxisLayout) RowKeys() []int {
	return l.distinct(func(k Key) int { return k.Row })
}

// ColKeys returns the distinct Col values in ascending order.
func (l *AxisLayout) ColKeys() []int {
	return l.distinct(func(k Key) int { return k.Col })
}

func (l *AxisLayout) distinct(component func(Key) int) []int {
	seen := make(map[int]struct{}, len(l.cells))
	out := make([]int, 0, len(l.cells))
	for k := range l.cells {
		c := component(k)
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	slices.Sort(out)

	return out
}

// All iterates cells in Keys order.
func (l *AxisLayout) All() iter.Seq2[Key, View] {
	return func(yield func(Key, View) bool) {
		for _, k := range l.Keys() {
			if !yield(k, l.cells[k]) {
				return
			}
		}
	}
}

func compareKeys(a, b Key) int {
	if c := cmp.Compare(a.Row, b.Row); c != 0 {
		return c
	}

	return cmp.Compare(a.Col, b.Col)
}
