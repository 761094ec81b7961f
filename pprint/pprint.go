// SPDX-License-Identifier: MIT

package pprint

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/lvview/view"
)

// DefaultIndent is the number of spaces per nesting level.
const DefaultIndent = 3

var (
	kindStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	posStyle  = lipgloss.NewStyle().Faint(true)
	pathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// Printer formats view trees. The zero value prints plain text with
// DefaultIndent.
type Printer struct {
	// Styled enables lipgloss styling of kinds, positions and paths.
	Styled bool
	// Indent is the number of spaces per level; <= 0 means DefaultIndent.
	Indent int
}

// Sprint formats v with the zero Printer.
func Sprint(v view.View) string {
	return Printer{}.Sprint(v)
}

// Sprint formats v as a string.
func (p Printer) Sprint(v view.View) string {
	var sb strings.Builder
	p.write(&sb, 0, "", v, false)

	return sb.String()
}

// Fprint writes the formatted tree of v to w.
func (p Printer) Fprint(w io.Writer, v view.View) error {
	_, err := io.WriteString(w, p.Sprint(v))
	return err
}

// write prints v at depth. prefix is the already styled position or path
// printed before the view; inTree marks ViewTree entries whose prefix
// already names the element.
func (p Printer) write(sb *strings.Builder, depth int, prefix string, v view.View, inTree bool) {
	indent := p.Indent
	if indent <= 0 {
		indent = DefaultIndent
	}
	sb.WriteString(strings.Repeat(" ", depth*indent))
	if prefix != "" {
		sb.WriteString(prefix)
		sb.WriteByte(' ')
	}
	if v == nil {
		sb.WriteString(p.style(kindStyle, ":nil"))
		sb.WriteByte('\n')
		return
	}
	if !inTree && v.Kind() == view.KindElement {
		sb.WriteString(p.style(pathStyle, "."+view.PathOf(v)))
		sb.WriteByte(' ')
	}
	sb.WriteString(p.style(kindStyle, ":"+v.Kind().String()))
	sb.WriteString(shapeSuffix(v))
	sb.WriteByte('\n')

	switch x := v.(type) {
	case *view.ViewTree:
		paths := x.Paths()
		for i, child := range x.All() {
			p.write(sb, depth+1, p.style(pathStyle, "."+paths[i]), child, true)
		}
	case *view.AdjointLayout:
		for slot, child := range x.All() {
			p.write(sb, depth+1, p.style(posStyle, "["+slot.String()+"]"), child, false)
		}
	case *view.GridLayout:
		for k, child := range x.All() {
			p.write(sb, depth+1, p.style(posStyle, fmt.Sprintf("[%d,%d]", k.Row, k.Col)), child, false)
		}
	case *view.AxisLayout:
		for k, child := range x.All() {
			p.write(sb, depth+1, p.style(posStyle, fmt.Sprintf("(%d,%d)", k.Row, k.Col)), child, false)
		}
	}
}

func (p Printer) style(s lipgloss.Style, text string) string {
	if !p.Styled {
		return text
	}

	return s.Render(text)
}

func shapeSuffix(v view.View) string {
	switch x := v.(type) {
	case *view.GridLayout:
		r, c := x.Shape()
		return fmt.Sprintf(" (%dx%d)", r, c)
	case *view.AxisLayout:
		r, c := x.Shape()
		return fmt.Sprintf(" (%dx%d)", r, c)
	}

	return ""
}
