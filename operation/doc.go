// SPDX-License-Identifier: MIT

// Package operation applies per-element processing across composite views.
//
// An Operation wraps a Func that turns one element into zero or more
// output views. Apply lifts it over the composites:
//
//   - Element: one output is returned as-is, several are collected into
//     a GridLayout.
//   - AxisLayout: every cell is processed in key order and output i of
//     each cell lands in the i-th result AxisLayout at the cell's key. A
//     single result layout is returned directly, several are collected
//     into a GridLayout.
//
// Select picks elements out of an Element or ViewTree by label suffix.
package operation
