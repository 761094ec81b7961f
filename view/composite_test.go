// SPDX-License-Identifier: MIT

package view_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvview/view"
)

const (
	data1 = "An example of arbitrary data"
	data2 = "Another example..."
	data3 = "A third example."
)

// fixture returns the three labelled elements shared by the composite tests.
func fixture() (v1, v2, v3 *view.Element) {
	v1 = view.NewElement(data1, view.WithLabel("View1"))
	v2 = view.NewElement(data2, view.WithLabel("View2"))
	v3 = view.NewElement(data3, view.WithLabel("View3"))
	return v1, v2, v3
}

// dataOf extracts the payload of an Element view or fails the test.
func dataOf(t *testing.T, v view.View) any {
	t.Helper()
	e, ok := v.(*view.Element)
	require.Truef(t, ok, "expected *view.Element, got %T", v)
	return e.Data()
}

// TestCombine_Elements verifies that combining two elements yields a ViewTree.
func TestCombine_Elements(t *testing.T) {
	v1, v2, _ := fixture()

	tree, err := view.Combine(v1, v2)
	require.NoError(t, err)
	assert.IsType(t, &view.ViewTree{}, tree)
	assert.Equal(t, view.KindTree, tree.Kind())
	assert.Equal(t, []view.View{v1, v2}, tree.Views())
}

// TestAdjoint_Single builds a one-slot layout from a single element.
func TestAdjoint_Single(t *testing.T) {
	v1, _, _ := fixture()

	l, err := view.NewAdjointLayout([]view.View{v1})
	require.NoError(t, err)
	assert.Equal(t, data1, dataOf(t, l.Main()))
	assert.Nil(t, l.Right())
	assert.Nil(t, l.Top())
	assert.Equal(t, 1, l.Len())
}

// TestAdjoint_Double attaches one element to another.
func TestAdjoint_Double(t *testing.T) {
	v1, v2, _ := fixture()

	l, err := view.Attach(v1, v2)
	require.NoError(t, err)
	assert.Equal(t, data1, dataOf(t, l.Main()))
	assert.Equal(t, data2, dataOf(t, l.Right()))
	assert.Nil(t, l.Top())
}

// TestAdjoint_Triple chains two attachments: view3 << view2 << view1.
func TestAdjoint_Triple(t *testing.T) {
	v1, v2, v3 := fixture()

	l := mustAttach(t, mustAttach(t, v3, v2), v1)
	assert.Equal(t, data3, dataOf(t, l.Main()))
	assert.Equal(t, data2, dataOf(t, l.Right()))
	assert.Equal(t, data1, dataOf(t, l.Top()))
}

// TestAdjoint_Iter checks iteration order main, right, top.
func TestAdjoint_Iter(t *testing.T) {
	v1, v2, v3 := fixture()
	l := mustAttach(t, mustAttach(t, v3, v2), v1)

	var got []any
	var positions []view.Position
	for pos, v := range l.All() {
		positions = append(positions, pos)
		got = append(got, dataOf(t, v))
	}
	assert.Equal(t, []any{data3, data2, data1}, got)
	assert.Equal(t, []view.Position{view.Main, view.Right, view.Top}, positions)
}

// TestAdjoint_CombineYieldsTree adds two adjoint layouts.
func TestAdjoint_CombineYieldsTree(t *testing.T) {
	v1, v2, v3 := fixture()
	l1 := mustAttach(t, v3, v2)
	l2 := mustAttach(t, v2, v1)

	tree, err := view.Combine(l1, l2)
	require.NoError(t, err)
	assert.Equal(t, view.KindTree, tree.Kind())
	assert.Equal(t, 2, tree.Len())
}

// TestGridLayout_Init keeps repeated views as distinct positions.
func TestGridLayout_Init(t *testing.T) {
	v1, v2, v3 := fixture()

	g, err := view.NewGridLayout([]view.View{v1, v2, v3, v2})
	require.NoError(t, err)
	rows, cols := g.Shape()
	assert.Equal(t, [2]int{1, 4}, [2]int{rows, cols})
}

// TestAxisLayout_Init infers the shape from distinct key components.
func TestAxisLayout_Init(t *testing.T) {
	v1, v2, v3 := fixture()

	g, err := view.NewAxisLayout([]view.Entry{
		{Key: view.Key{Row: 0, Col: 0}, View: v1},
		{Key: view.Key{Row: 0, Col: 1}, View: v2},
		{Key: view.Key{Row: 1, Col: 0}, View: v3},
		{Key: view.Key{Row: 1, Col: 1}, View: v2},
	})
	require.NoError(t, err)
	rows, cols := g.Shape()
	assert.Equal(t, [2]int{2, 2}, [2]int{rows, cols})
}

func mustAttach(t *testing.T, existing, v view.View) *view.AdjointLayout {
	t.Helper()
	l, err := view.Attach(existing, v)
	require.NoError(t, err)
	return l
}
