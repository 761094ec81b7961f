// SPDX-License-Identifier: MIT

package view_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvview/view"
)

// TestAttach_Errors covers full layouts, nil operands and unattachable kinds.
func TestAttach_Errors(t *testing.T) {
	v1, v2, v3 := fixture()
	full := mustAttach(t, mustAttach(t, v1, v2), v3)
	tree, err := view.Combine(v1, v2)
	require.NoError(t, err)
	grid, err := view.NewGridLayout([]view.View{v1})
	require.NoError(t, err)
	axis, err := view.NewAxisLayout([]view.Entry{{Key: view.Key{}, View: v1}})
	require.NoError(t, err)
	mainOnly, err := view.NewAdjointLayout([]view.View{v1})
	require.NoError(t, err)

	cases := []struct {
		name     string
		existing view.View
		v        view.View
		err      error
	}{
		{"Full", full, v1, view.ErrLayoutFull},
		{"NilExisting", nil, v1, view.ErrNilView},
		{"NilAttached", v1, nil, view.ErrNilView},
		{"TreeAttached", v1, tree, view.ErrNotAttachable},
		{"TreeMain", tree, v1, view.ErrNotAttachable},
		{"GridMain", grid, v1, view.ErrNotAttachable},
		{"AdjointAttached", v1, full, view.ErrNotAttachable},
		{"AxisRight", v1, axis, view.ErrNotAttachable},
		{"AxisTop", mustAttach(t, v1, v2), axis, view.ErrNotAttachable},
		{"AxisRightOfAdjoint", mainOnly, axis, view.ErrNotAttachable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := view.Attach(tc.existing, tc.v)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestAttach_DoesNotMutate verifies value semantics of chained attachment.
func TestAttach_DoesNotMutate(t *testing.T) {
	v1, v2, v3 := fixture()
	two := mustAttach(t, v1, v2)
	three := mustAttach(t, two, v3)

	assert.Equal(t, 2, two.Len())
	assert.Nil(t, two.Top())
	assert.Equal(t, 3, three.Len())
	assert.Same(t, v3, three.Top())
}

// TestAttach_AxisLayoutMain adjoins an element to a coordinate grid.
func TestAttach_AxisLayoutMain(t *testing.T) {
	v1, v2, _ := fixture()
	grid, err := view.NewAxisLayout([]view.Entry{{Key: view.Key{}, View: v1}})
	require.NoError(t, err)

	l, err := view.Attach(grid, v2)
	require.NoError(t, err)
	assert.Same(t, grid, l.Main())
}

// TestNewAdjointLayout_Bounds rejects empty and over-full slot lists.
func TestNewAdjointLayout_Bounds(t *testing.T) {
	v1, v2, v3 := fixture()

	_, err := view.NewAdjointLayout(nil)
	assert.ErrorIs(t, err, view.ErrEmptyLayout)

	_, err = view.NewAdjointLayout([]view.View{v1, v2, v3, v1})
	assert.ErrorIs(t, err, view.ErrLayoutFull)

	l, err := view.NewAdjointLayout([]view.View{v1, v2, v3})
	require.NoError(t, err)
	assert.Equal(t, []view.View{v1, v2, v3}, l.Views())
}

// TestWithSlot replaces and clears slots without touching the source.
func TestWithSlot(t *testing.T) {
	v1, v2, v3 := fixture()
	l := mustAttach(t, mustAttach(t, v1, v2), v3)

	cleared, err := l.WithSlot(view.Right, nil)
	require.NoError(t, err)
	assert.Equal(t, []view.View{v1, v3}, cleared.Views(), "iteration skips the empty right slot")
	assert.Equal(t, 3, l.Len(), "source layout unchanged")

	refilled, err := view.Attach(cleared, v2)
	require.NoError(t, err)
	got, ok := refilled.Get(view.Right)
	assert.True(t, ok)
	assert.Same(t, v2, got)

	_, err = l.WithSlot(view.Main, nil)
	assert.ErrorIs(t, err, view.ErrEmptyLayout)

	_, err = l.WithSlot(view.Position(7), v1)
	assert.ErrorIs(t, err, view.ErrInvalidPosition)

	axis, err := view.NewAxisLayout([]view.Entry{{Key: view.Key{}, View: v1}})
	require.NoError(t, err)
	_, err = l.WithSlot(view.Top, axis)
	assert.ErrorIs(t, err, view.ErrNotAttachable, "axis layouts only fit main")
	swapped, err := l.WithSlot(view.Main, axis)
	require.NoError(t, err)
	assert.Same(t, axis, swapped.Main())
}

// TestPosition_String names every slot.
func TestPosition_String(t *testing.T) {
	assert.Equal(t, "main", view.Main.String())
	assert.Equal(t, "right", view.Right.String())
	assert.Equal(t, "top", view.Top.String())
	assert.Equal(t, "Position(9)", view.Position(9).String())
}

// TestAdjoint_GetInvalidPosition reports an unpopulated result.
func TestAdjoint_GetInvalidPosition(t *testing.T) {
	v1, _, _ := fixture()
	l, err := view.NewAdjointLayout([]view.View{v1})
	require.NoError(t, err)

	_, ok := l.Get(view.Position(-1))
	assert.False(t, ok)
	_, ok = l.Get(view.Top)
	assert.False(t, ok)
}
