// SPDX-License-Identifier: MIT

package layoutdoc

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvview/plotly"
	"github.com/katalvlaran/lvview/raster"
	"github.com/katalvlaran/lvview/view"
)

// Built is the result of Document.Build.
type Built struct {
	// Root is the composed view.
	Root view.View
	// Elements indexes every document element by label.
	Elements map[string]*view.Element
}

// Build constructs all elements, then the composition tree.
// Stage 1: elements, rejecting missing and duplicate labels.
// Stage 2: layout nodes, resolving refs against Stage 1.
func (d *Document) Build() (*Built, error) {
	if len(d.Elements) == 0 {
		return nil, ErrNoElements
	}

	b := &Built{Elements: make(map[string]*view.Element, len(d.Elements))}
	order := make([]view.View, 0, len(d.Elements))
	for i, spec := range d.Elements {
		e, err := spec.build()
		if err != nil {
			return nil, fmt.Errorf("elements[%d]: %w", i, err)
		}
		if _, dup := b.Elements[spec.Label]; dup {
			return nil, fmt.Errorf("elements[%d]: %q: %w", i, spec.Label, ErrDuplicateLabel)
		}
		b.Elements[spec.Label] = e
		order = append(order, e)
	}

	switch {
	case d.Layout != nil:
		root, err := d.Layout.build(b.Elements, "layout")
		if err != nil {
			return nil, err
		}
		b.Root = root
	case len(order) == 1:
		b.Root = order[0]
	default:
		tree, err := view.NewViewTree(order...)
		if err != nil {
			return nil, err
		}
		b.Root = tree
	}

	return b, nil
}

func (s ElementSpec) build() (*view.Element, error) {
	if s.Label == "" {
		return nil, ErrMissingLabel
	}
	if s.Image == nil {
		opts := []view.ElementOption{view.WithLabel(s.Label)}
		if s.Group != "" {
			opts = append(opts, view.WithGroup(s.Group))
		}
		return view.NewElement(s.Text, opts...), nil
	}

	img, err := raster.NewImage(s.Image.X, s.Image.Y, s.Image.Z)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", s.Label, err)
	}
	group := s.Group
	if group == "" {
		group = raster.Group
	}

	return view.NewElement(img, view.WithGroup(group), view.WithLabel(s.Label)), nil
}

// build resolves one node; at is the node's location for error messages.
func (n *NodeSpec) build(elements map[string]*view.Element, at string) (view.View, error) {
	if n.Ref != "" {
		if n.Kind != "" {
			return nil, fmt.Errorf("%s: ref %q with kind %q: %w", at, n.Ref, n.Kind, ErrUnknownKind)
		}
		e, ok := elements[n.Ref]
		if !ok {
			return nil, fmt.Errorf("%s: %q: %w", at, n.Ref, ErrUnknownRef)
		}
		return e, nil
	}

	var (
		v   view.View
		err error
	)
	switch n.Kind {
	case KindTree:
		v, err = n.buildTree(elements, at)
	case KindAdjoint:
		v, err = n.buildAdjoint(elements, at)
	case KindGrid:
		v, err = n.buildGrid(elements, at)
	case KindAxis:
		v, err = n.buildAxis(elements, at)
	default:
		return nil, fmt.Errorf("%s: %q: %w", at, n.Kind, ErrUnknownKind)
	}
	if err != nil {
		return nil, err
	}

	return v, nil
}

func (n *NodeSpec) buildTree(elements map[string]*view.Element, at string) (view.View, error) {
	items, err := n.buildItems(elements, at)
	if err != nil {
		return nil, err
	}
	t, err := view.NewViewTree(items...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", at, err)
	}

	return t, nil
}

// buildAdjoint attaches items left to right: items[0] << items[1] << items[2].
func (n *NodeSpec) buildAdjoint(elements map[string]*view.Element, at string) (view.View, error) {
	items, err := n.buildItems(elements, at)
	if err != nil {
		return nil, err
	}
	l, err := view.NewAdjointLayout(items[:min(len(items), 1)])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", at, err)
	}
	for _, v := range items[1:] {
		if l, err = view.Attach(l, v); err != nil {
			return nil, fmt.Errorf("%s: %w", at, err)
		}
	}

	return l, nil
}

func (n *NodeSpec) buildGrid(elements map[string]*view.Element, at string) (view.View, error) {
	items, err := n.buildItems(elements, at)
	if err != nil {
		return nil, err
	}
	var opts []view.GridOption
	if n.Cols > 0 {
		opts = append(opts, view.WithCols(n.Cols))
	}
	g, err := view.NewGridLayout(items, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", at, err)
	}

	return g, nil
}

func (n *NodeSpec) buildAxis(elements map[string]*view.Element, at string) (view.View, error) {
	entries := make([]view.Entry, 0, len(n.Cells))
	for i := range n.Cells {
		c := &n.Cells[i]
		v, err := c.Node.build(elements, fmt.Sprintf("%s.cells[%d]", at, i))
		if err != nil {
			return nil, err
		}
		entries = append(entries, view.Entry{Key: view.Key{Row: c.Row, Col: c.Col}, View: v})
	}
	al, err := view.NewAxisLayout(entries, view.WithAxisLabel(n.Label))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", at, err)
	}

	return al, nil
}

func (n *NodeSpec) buildItems(elements map[string]*view.Element, at string) ([]view.View, error) {
	items := make([]view.View, 0, len(n.Items))
	for i := range n.Items {
		v, err := n.Items[i].build(elements, fmt.Sprintf("%s.items[%d]", at, i))
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}

	return items, nil
}

// PlotOptions translates the plot section into plotly options.
func (d *Document) PlotOptions() ([]plotly.Option, error) {
	if d.Plot == nil {
		return nil, nil
	}
	var opts []plotly.Option
	if d.Plot.InvertAxes {
		opts = append(opts, plotly.WithInvertAxes())
	}
	if d.Plot.CLim != nil {
		lim := d.Plot.CLim
		if len(lim) != 2 || !(lim[0] <= lim[1]) || math.IsInf(lim[0], 0) || math.IsInf(lim[1], 0) {
			return nil, fmt.Errorf("plot: %v: %w", d.Plot.CLim, ErrBadColorLimits)
		}
		opts = append(opts, plotly.WithColorLimits(lim[0], lim[1]))
	}

	return opts, nil
}

// PlotState builds the heatmap state of the plot target in b.
func (d *Document) PlotState(b *Built) (*plotly.PlotState, error) {
	if d.Plot == nil || d.Plot.Target == "" {
		return nil, ErrNoPlot
	}
	e, ok := b.Elements[d.Plot.Target]
	if !ok {
		return nil, fmt.Errorf("plot: %q: %w", d.Plot.Target, ErrUnknownRef)
	}
	opts, err := d.PlotOptions()
	if err != nil {
		return nil, err
	}

	return plotly.State(e, opts...)
}
