// SPDX-License-Identifier: MIT

package operation

import "errors"

var (
	// ErrNoOutput indicates a Func that returned no views.
	ErrNoOutput = errors.New("operation: process returned no views")

	// ErrInconsistentOutput indicates cells of one AxisLayout producing
	// differing numbers of outputs.
	ErrInconsistentOutput = errors.New("operation: cells produced differing output counts")

	// ErrUnsupportedView indicates a view kind Apply cannot traverse.
	ErrUnsupportedView = errors.New("operation: unsupported view kind")
)
