// SPDX-License-Identifier: MIT

package view

import (
	"fmt"
	"iter"
)

// Position names one of the three adjoint slots.
type Position int

const (
	// Main is the primary slot; it is always populated.
	Main Position = iota
	// Right is the slot adjoined to the right of main.
	Right
	// Top is the slot adjoined above main.
	Top
)

// adjointSlots is the fixed capacity of an AdjointLayout.
const adjointSlots = 3

func (p Position) String() string {
	switch p {
	case Main:
		return "main"
	case Right:
		return "right"
	case Top:
		return "top"
	default:
		return fmt.Sprintf("Position(%d)", int(p))
	}
}

func (p Position) valid() bool { return p >= Main && p <= Top }

// AdjointLayout is a fixed three-slot record: main, right and top.
// Slots fill in that order and iteration always follows it, skipping
// empty slots. The zero value is not usable; build with NewAdjointLayout
// or Attach.
type AdjointLayout struct {
	slots [adjointSlots]View
}

// NewAdjointLayout fills main, right and top from views in order.
// Errors: ErrEmptyLayout for no views, ErrLayoutFull for more than three,
// ErrNilView / ErrNotAttachable for unusable entries.
func NewAdjointLayout(views []View) (*AdjointLayout, error) {
	if len(views) == 0 {
		return nil, fmt.Errorf("NewAdjointLayout: %w", ErrEmptyLayout)
	}
	if len(views) > adjointSlots {
		return nil, fmt.Errorf("NewAdjointLayout: %d views: %w", len(views), ErrLayoutFull)
	}

	l := &AdjointLayout{}
	for i, v := range views {
		if err := checkAttachable(Position(i), v); err != nil {
			return nil, fmt.Errorf("NewAdjointLayout: %s: %w", Position(i), err)
		}
		l.slots[i] = v
	}

	return l, nil
}

// Attach adjoins v to existing and returns the resulting layout.
//
//   - existing is a plain view: main=existing, right=v.
//   - existing is an AdjointLayout: v fills its first empty slot in
//     main, right, top order.
//
// Chained attachment therefore keeps the left-most operand as main:
// Attach(Attach(c, b), a) yields main=c, right=b, top=a.
// Neither operand is modified. An AxisLayout may only be main; elements
// fit any slot (ErrNotAttachable otherwise).
func Attach(existing, v View) (*AdjointLayout, error) {
	if existing == nil {
		return nil, fmt.Errorf("Attach: existing: %w", ErrNilView)
	}

	l, ok := existing.(*AdjointLayout)
	if !ok {
		return NewAdjointLayout([]View{existing, v})
	}
	for i := range l.slots {
		if l.slots[i] != nil {
			continue
		}
		if err := checkAttachable(Position(i), v); err != nil {
			return nil, fmt.Errorf("Attach: %s: %w", Position(i), err)
		}
		next := *l
		next.slots[i] = v
		return &next, nil
	}

	return nil, fmt.Errorf("Attach: %w", ErrLayoutFull)
}

// checkAttachable accepts elements in any slot and axis layouts in main.
func checkAttachable(pos Position, v View) error {
	if v == nil {
		return ErrNilView
	}
	switch v.Kind() {
	case KindElement:
		return nil
	case KindAxis:
		if pos == Main {
			return nil
		}
	}

	return fmt.Errorf("%s in %s: %w", v.Kind(), pos, ErrNotAttachable)
}

// Kind implements View.
func (l *AdjointLayout) Kind() Kind { return KindAdjoint }

// Main returns the main view.
func (l *AdjointLayout) Main() View { return l.slots[Main] }

// Right returns the right view, or nil when empty.
func (l *AdjointLayout) Right() View { return l.slots[Right] }

// Top returns the top view, or nil when empty.
func (l *AdjointLayout) Top() View { return l.slots[Top] }

// Get returns the view at pos and whether that slot is populated.
func (l *AdjointLayout) Get(pos Position) (View, bool) {
	if !pos.valid() {
		return nil, false
	}
	v := l.slots[pos]

	return v, v != nil
}

// Len returns the number of populated slots.
func (l *AdjointLayout) Len() int {
	n := 0
	for _, v := range l.slots {
		if v != nil {
			n++
		}
	}

	return n
}

// Views returns the populated slots in main, right, top order.
func (l *AdjointLayout) Views() []View {
	out := make([]View, 0, adjointSlots)
	for _, v := range l.All() {
		out = append(out, v)
	}

	return out
}

// All iterates populated slots in main, right, top order.
func (l *AdjointLayout) All() iter.Seq2[Position, View] {
	return func(yield func(Position, View) bool) {
		for i, v := range l.slots {
			if v == nil {
				continue
			}
			if !yield(Position(i), v) {
				return
			}
		}
	}
}

// WithSlot returns a copy of l with the slot at pos replaced by v.
// A nil v clears right or top; main can never be cleared.
func (l *AdjointLayout) WithSlot(pos Position, v View) (*AdjointLayout, error) {
	if !pos.valid() {
		return nil, fmt.Errorf("WithSlot(%s): %w", pos, ErrInvalidPosition)
	}
	if v == nil {
		if pos == Main {
			return nil, fmt.Errorf("WithSlot(%s): %w", pos, ErrEmptyLayout)
		}
	} else if err := checkAttachable(pos, v); err != nil {
		return nil, fmt.Errorf("WithSlot(%s): %w", pos, err)
	}

	next := *l
	next.slots[pos] = v

	return &next, nil
}
