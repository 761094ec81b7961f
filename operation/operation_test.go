// SPDX-License-Identifier: MIT

package operation_test

import (
	"bytes"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvview/operation"
	"github.com/katalvlaran/lvview/view"
)

// split returns n relabelled copies of the element.
func split(n int) operation.Func {
	return func(e *view.Element) ([]view.View, error) {
		out := make([]view.View, n)
		for i := range out {
			out[i] = e.Relabel(e.Label() + string(rune('a'+i)))
		}
		return out, nil
	}
}

func labelOf(t *testing.T, v view.View) string {
	t.Helper()
	e, ok := v.(*view.Element)
	require.Truef(t, ok, "expected *view.Element, got %T", v)
	return e.Label()
}

// TestApply_ElementSingle returns the single output unchanged.
func TestApply_ElementSingle(t *testing.T) {
	op := operation.New("identity", split(1))

	out, err := op.Apply(view.NewElement(1, view.WithLabel("x")))
	require.NoError(t, err)
	assert.Equal(t, "xa", labelOf(t, out))
}

// TestApply_ElementFanOut collects several outputs into a GridLayout.
func TestApply_ElementFanOut(t *testing.T) {
	op := operation.New("split", split(3))

	out, err := op.Apply(view.NewElement(1, view.WithLabel("x")))
	require.NoError(t, err)
	g, ok := out.(*view.GridLayout)
	require.True(t, ok)

	rows, cols := g.Shape()
	assert.Equal(t, 1, rows)
	assert.Equal(t, 3, cols)
}

// TestApply_Axis keeps keys and splits outputs into one layout per index.
func TestApply_Axis(t *testing.T) {
	a := view.NewElement(1, view.WithLabel("a"))
	b := view.NewElement(2, view.WithLabel("b"))
	grid, err := view.NewAxisLayout([]view.Entry{
		{Key: view.Key{Row: 0, Col: 0}, View: a},
		{Key: view.Key{Row: 0, Col: 1}, View: b},
	}, view.WithAxisLabel("G"))
	require.NoError(t, err)

	t.Run("single output", func(t *testing.T) {
		out, err := operation.New("one", split(1)).Apply(grid)
		require.NoError(t, err)
		al, ok := out.(*view.AxisLayout)
		require.True(t, ok)
		assert.Equal(t, "G", al.Label())

		cell, ok := al.Get(view.Key{Row: 0, Col: 1})
		require.True(t, ok)
		assert.Equal(t, "ba", labelOf(t, cell))
	})

	t.Run("two outputs", func(t *testing.T) {
		out, err := operation.New("two", split(2)).Apply(grid)
		require.NoError(t, err)
		g, ok := out.(*view.GridLayout)
		require.True(t, ok)
		require.Equal(t, 2, g.Len())

		second, err := g.At(0, 1)
		require.NoError(t, err)
		al := second.(*view.AxisLayout)
		cell, ok := al.Get(view.Key{Row: 0, Col: 0})
		require.True(t, ok)
		assert.Equal(t, "ab", labelOf(t, cell))
	})
}

// TestApply_Errors covers empty, inconsistent and failing processing.
func TestApply_Errors(t *testing.T) {
	boom := errors.New("boom")
	a := view.NewElement(1, view.WithLabel("a"))
	b := view.NewElement(2, view.WithLabel("b"))
	grid, err := view.NewAxisLayout([]view.Entry{
		{Key: view.Key{Row: 0, Col: 0}, View: a},
		{Key: view.Key{Row: 1, Col: 0}, View: b},
	})
	require.NoError(t, err)

	uneven := operation.New("uneven", func(e *view.Element) ([]view.View, error) {
		if e.Label() == "a" {
			return split(1)(e)
		}
		return split(2)(e)
	})
	_, err = uneven.Apply(grid)
	assert.ErrorIs(t, err, operation.ErrInconsistentOutput)

	_, err = operation.New("none", split(0)).Apply(a)
	assert.ErrorIs(t, err, operation.ErrNoOutput)

	failing := operation.New("fail", func(*view.Element) ([]view.View, error) { return nil, boom })
	_, err = failing.Apply(grid)
	assert.ErrorIs(t, err, boom)

	tree, err := view.Combine(a, b)
	require.NoError(t, err)
	_, err = operation.New("tree", split(1)).Apply(tree)
	assert.ErrorIs(t, err, operation.ErrUnsupportedView)

	_, err = operation.New("nil", split(1)).Apply(nil)
	assert.ErrorIs(t, err, view.ErrNilView)
}

// TestApply_EmptyAxis maps an empty layout onto itself.
func TestApply_EmptyAxis(t *testing.T) {
	empty, err := view.NewAxisLayout(nil)
	require.NoError(t, err)

	out, err := operation.New("noop", split(2)).Apply(empty)
	require.NoError(t, err)
	assert.Same(t, empty, out)
}

// TestWithLogger records one line per processed element.
func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	op := operation.New("split", split(2), operation.WithLogger(log.New(&buf, "", 0)))

	_, err := op.Apply(view.NewElement(1, view.WithLabel("x")))
	require.NoError(t, err)
	assert.Equal(t, "split: element \"x\" -> 2 view(s)\n", buf.String())

	assert.Panics(t, func() { operation.WithLogger(nil) })
	assert.Panics(t, func() { operation.New("x", nil) })
}

// TestSelect filters by label suffix and group.
func TestSelect(t *testing.T) {
	a := view.NewElement(1, view.WithLabel("density_raw"))
	b := view.NewElement(2, view.WithLabel("density_fit"), view.WithGroup("Curve"))
	c := view.NewElement(3, view.WithLabel("counts_fit"))
	tree, err := view.NewViewTree(a, b, c)
	require.NoError(t, err)

	assert.Equal(t, []*view.Element{b, c}, operation.Select(tree, "_fit", ""))
	assert.Equal(t, []*view.Element{b}, operation.Select(tree, "_fit", "Curve"))
	assert.Equal(t, []*view.Element{a}, operation.Select(a, "raw", ""))
	assert.Empty(t, operation.Select(a, "fit", ""))

	adj, err := view.Attach(a, b)
	require.NoError(t, err)
	assert.Nil(t, operation.Select(adj, "", ""))
}
