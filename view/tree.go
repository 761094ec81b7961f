// SPDX-License-Identifier: MIT

package view

import (
	"fmt"
	"iter"
	"strings"
)

// ViewTree is the flat, ordered composite produced by Combine.
// Entries are never themselves ViewTrees: nested trees are spliced in.
type ViewTree struct {
	views []View
}

// NewViewTree builds a ViewTree from views in order.
// *ViewTree arguments contribute their entries rather than themselves.
// Errors: ErrNilView if any argument is nil.
// Complexity: O(total entries).
func NewViewTree(views ...View) (*ViewTree, error) {
	out := make([]View, 0, len(views))
	for i, v := range views {
		if v == nil {
			return nil, fmt.Errorf("NewViewTree: argument %d: %w", i, ErrNilView)
		}
		if t, ok := v.(*ViewTree); ok {
			out = append(out, t.views...)
			continue
		}
		out = append(out, v)
	}

	return &ViewTree{views: out}, nil
}

// Combine joins a and b into a ViewTree, preserving left-to-right order.
// The result is a *ViewTree whatever the operand kinds.
func Combine(a, b View) (*ViewTree, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("Combine: %w", ErrNilView)
	}

	return NewViewTree(a, b)
}

// Kind implements View.
func (t *ViewTree) Kind() Kind { return KindTree }

// Len returns the number of entries.
func (t *ViewTree) Len() int { return len(t.views) }

// At returns the i-th entry.
func (t *ViewTree) At(i int) (View, error) {
	if i < 0 || i >= len(t.views) {
		return nil, fmt.Errorf("ViewTree.At(%d): %w", i, ErrOutOfRange)
	}

	return t.views[i], nil
}

// Views returns a copy of the entries in order.
func (t *ViewTree) Views() []View {
	out := make([]View, len(t.views))
	copy(out, t.views)

	return out
}

// All iterates entries with their index.
func (t *ViewTree) All() iter.Seq2[int, View] {
	return func(yield func(int, View) bool) {
		for i, v := range t.views {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Paths returns one attribute path per entry, in entry order.
// Elements map to "Group.Label" (or just "Group" when unlabelled), other
// views to their kind name. When several entries share a path, each of
// them gets a roman numeral suffix in order: "Element.A.I", "Element.A.II".
func (t *ViewTree) Paths() []string {
	base := make([]string, len(t.views))
	counts := make(map[string]int, len(t.views))
	for i, v := range t.views {
		base[i] = PathOf(v)
		counts[base[i]]++
	}

	out := make([]string, len(t.views))
	seen := make(map[string]int, len(counts))
	for i, p := range base {
		if counts[p] == 1 {
			out[i] = p
			continue
		}
		seen[p]++
		out[i] = p + "." + roman(seen[p])
	}

	return out
}

// Get resolves a path as returned by Paths.
func (t *ViewTree) Get(path string) (View, bool) {
	for i, p := range t.Paths() {
		if p == path {
			return t.views[i], true
		}
	}

	return nil, false
}

// PathOf returns the attribute path of v: "Group.Label" for elements (just
// "Group" when unlabelled), "AxisLayout.Label" for labelled axis layouts
// and the kind name otherwise.
func PathOf(v View) string {
	switch x := v.(type) {
	case *Element:
		if x.label == "" {
			return x.group
		}
		return x.group + "." + x.label
	case *AxisLayout:
		if x.label != "" {
			return x.Kind().String() + "." + x.label
		}
	}

	return v.Kind().String()
}

var romanTable = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// roman formats n >= 1 as a roman numeral.
func roman(n int) string {
	var sb strings.Builder
	for _, r := range romanTable {
		for n >= r.value {
			sb.WriteString(r.symbol)
			n -= r.value
		}
	}

	return sb.String()
}
