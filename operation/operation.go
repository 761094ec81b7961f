// SPDX-License-Identifier: MIT

package operation

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/katalvlaran/lvview/view"
)

// Func processes one element into output views.
type Func func(e *view.Element) ([]view.View, error)

// discard is the default sink: library code stays silent unless a logger
// is injected with WithLogger.
var discard = log.New(io.Discard, "", 0)

// Operation is a labelled Func plus the logger it reports through.
type Operation struct {
	Label   string
	Process Func
	logger  *log.Logger
}

// Option configures an Operation.
type Option func(op *Operation)

// WithLogger routes per-view progress messages to l. Panics on nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("operation: WithLogger(nil)")
	}
	return func(op *Operation) { op.logger = l }
}

// New builds an Operation. Panics when fn is nil.
func New(label string, fn Func, opts ...Option) *Operation {
	if fn == nil {
		panic("operation: New with nil Func")
	}
	op := &Operation{Label: label, Process: fn, logger: discard}
	for _, opt := range opts {
		opt(op)
	}

	return op
}

// Apply runs the operation over v. See the package doc for the fan-out rules.
func (op *Operation) Apply(v view.View) (view.View, error) {
	if v == nil {
		return nil, fmt.Errorf("%s: %w", op.Label, view.ErrNilView)
	}
	switch x := v.(type) {
	case *view.Element:
		return op.applyElement(x)
	case *view.AxisLayout:
		return op.applyAxis(x)
	default:
		return nil, fmt.Errorf("%s: %s: %w", op.Label, v.Kind(), ErrUnsupportedView)
	}
}

func (op *Operation) applyElement(e *view.Element) (view.View, error) {
	views, err := op.Process(e)
	if err != nil {
		return nil, fmt.Errorf("%s: element %q: %w", op.Label, e.Label(), err)
	}
	op.logger.Printf("%s: element %q -> %d view(s)", op.Label, e.Label(), len(views))

	switch len(views) {
	case 0:
		return nil, fmt.Errorf("%s: element %q: %w", op.Label, e.Label(), ErrNoOutput)
	case 1:
		return views[0], nil
	default:
		g, err := view.NewGridLayout(views)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op.Label, err)
		}
		return g, nil
	}
}

func (op *Operation) applyAxis(l *view.AxisLayout) (view.View, error) {
	var grids [][]view.Entry
	for key, cell := range l.All() {
		out, err := op.Apply(cell)
		if err != nil {
			return nil, fmt.Errorf("cell %v: %w", key, err)
		}
		outputs := []view.View{out}
		if g, ok := out.(*view.GridLayout); ok {
			outputs = g.Views()
		}

		if grids == nil {
			grids = make([][]view.Entry, len(outputs))
		} else if len(outputs) != len(grids) {
			return nil, fmt.Errorf("%s: cell %v: %d outputs, want %d: %w",
				op.Label, key, len(outputs), len(grids), ErrInconsistentOutput)
		}
		for i, o := range outputs {
			grids[i] = append(grids[i], view.Entry{Key: key, View: o})
		}
	}
	if grids == nil {
		// Nothing to process: an empty grid maps onto itself.
		return l, nil
	}

	layouts := make([]view.View, len(grids))
	for i, entries := range grids {
		al, err := view.NewAxisLayout(entries, view.WithAxisLabel(l.Label()))
		if err != nil {
			return nil, fmt.Errorf("%s: output %d: %w", op.Label, i, err)
		}
		layouts[i] = al
	}
	op.logger.Printf("%s: axis layout %q -> %d layout(s)", op.Label, l.Label(), len(layouts))

	if len(layouts) == 1 {
		return layouts[0], nil
	}
	g, err := view.NewGridLayout(layouts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op.Label, err)
	}

	return g, nil
}

// Select returns the elements of v whose label ends with suffix. v may be
// an Element or a ViewTree; other kinds select nothing. When group is
// non-empty, only elements of that group match.
func Select(v view.View, suffix, group string) []*view.Element {
	var candidates []view.View
	switch x := v.(type) {
	case *view.Element:
		candidates = []view.View{x}
	case *view.ViewTree:
		candidates = x.Views()
	default:
		return nil
	}

	var out []*view.Element
	for _, c := range candidates {
		e, ok := c.(*view.Element)
		if !ok || !strings.HasSuffix(e.Label(), suffix) {
			continue
		}
		if group != "" && e.Group() != group {
			continue
		}
		out = append(out, e)
	}

	return out
}
