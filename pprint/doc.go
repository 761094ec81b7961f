// SPDX-License-Identifier: MIT

// Package pprint prints the structure of a composite view as an indented
// tree, one line per view:
//
//	:AdjointLayout
//	   [main] .Element.View3 :Element
//	   [right] .Element.View2 :Element
//	   [top] .Element.View1 :Element
//
// Elements print their attribute path before the kind, ViewTree entries
// print the disambiguated path from ViewTree.Paths, adjoint slots print
// [main]/[right]/[top], GridLayout cells [row,col] and AxisLayout cells
// (row,col). Grid and axis layouts append their shape.
//
// A Printer with Styled set renders kinds and positions through lipgloss.
package pprint
