// SPDX-License-Identifier: MIT

package layoutdoc

import "errors"

var (
	// ErrUnknownFormat indicates a file extension with no decoder.
	ErrUnknownFormat = errors.New("layoutdoc: unknown document format")

	// ErrSchema indicates a key the schema does not define; for YAML also a
	// value of the wrong type.
	ErrSchema = errors.New("layoutdoc: document does not match schema")

	// ErrMissingLabel indicates an element without a label.
	ErrMissingLabel = errors.New("layoutdoc: element label is required")

	// ErrDuplicateLabel indicates two elements sharing a label.
	ErrDuplicateLabel = errors.New("layoutdoc: duplicate element label")

	// ErrUnknownRef indicates a node referring to an undefined element.
	ErrUnknownRef = errors.New("layoutdoc: unknown element reference")

	// ErrUnknownKind indicates a node with an unsupported kind.
	ErrUnknownKind = errors.New("layoutdoc: unknown node kind")

	// ErrNoElements indicates a document with nothing to build.
	ErrNoElements = errors.New("layoutdoc: document has no elements")

	// ErrNoPlot indicates a plot request on a document without a plot target.
	ErrNoPlot = errors.New("layoutdoc: document has no plot target")

	// ErrBadColorLimits indicates a clim that is not [lo, hi] with lo <= hi.
	ErrBadColorLimits = errors.New("layoutdoc: clim must be [lo, hi] with lo <= hi")
)
