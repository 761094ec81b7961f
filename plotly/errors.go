// SPDX-License-Identifier: MIT

package plotly

import "errors"

// ErrUnsupportedView indicates a view that is not an Element wrapping a
// *raster.Image.
var ErrUnsupportedView = errors.New("plotly: view has no heatmap representation")
