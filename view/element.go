// SPDX-License-Identifier: MIT

package view

// DefaultGroup is the group assigned to elements built without WithGroup.
const DefaultGroup = "Element"

// Element is a leaf view: an opaque payload plus a group and a label.
// It is immutable once constructed.
type Element struct {
	data  any
	group string
	label string
}

// ElementOption configures an Element before creation.
type ElementOption func(e *Element)

// WithLabel sets the element label.
func WithLabel(label string) ElementOption {
	return func(e *Element) { e.label = label }
}

// WithGroup sets the element group. Panics on the empty string: every
// element belongs to a group and DefaultGroup already covers "none given".
func WithGroup(group string) ElementOption {
	if group == "" {
		panic("view: WithGroup(\"\")")
	}
	return func(e *Element) { e.group = group }
}

// NewElement wraps data into an Element.
func NewElement(data any, opts ...ElementOption) *Element {
	e := &Element{data: data, group: DefaultGroup}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Kind implements View.
func (e *Element) Kind() Kind { return KindElement }

// Data returns the wrapped payload.
func (e *Element) Data() any { return e.data }

// Label returns the element label (possibly empty).
func (e *Element) Label() string { return e.label }

// Group returns the element group.
func (e *Element) Group() string { return e.group }

// Relabel returns a copy of e with a new label; the payload is shared.
func (e *Element) Relabel(label string) *Element {
	return &Element{data: e.data, group: e.group, label: label}
}
