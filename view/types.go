// SPDX-License-Identifier: MIT

package view

// View is anything that can take part in a composition.
type View interface {
	// Kind reports which of the composition types the view is.
	Kind() Kind
}

// Kind enumerates the concrete view types.
type Kind int

const (
	// KindElement is a leaf *Element.
	KindElement Kind = iota
	// KindTree is a flat *ViewTree.
	KindTree
	// KindAdjoint is a positional *AdjointLayout.
	KindAdjoint
	// KindGrid is a sequence-based *GridLayout.
	KindGrid
	// KindAxis is a coordinate-keyed *AxisLayout.
	KindAxis
)

func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindTree:
		return "ViewTree"
	case KindAdjoint:
		return "AdjointLayout"
	case KindGrid:
		return "GridLayout"
	case KindAxis:
		return "AxisLayout"
	default:
		return "unknown"
	}
}

// Compile-time assertions for View conformance.
var (
	_ View = (*Element)(nil)
	_ View = (*ViewTree)(nil)
	_ View = (*AdjointLayout)(nil)
	_ View = (*GridLayout)(nil)
	_ View = (*AxisLayout)(nil)
)
