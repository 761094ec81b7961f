// SPDX-License-Identifier: MIT

// Package matrix provides the row-major float64 grid used as the value
// plane of image elements.
//
// What:
//
//   - Dense stores r×c values in one flat slice (offset = i*c + j).
//   - FromRows / ToRows convert between [][]float64 and Dense.
//   - Transpose flips rows and columns into a fresh Dense.
//   - MinMax scans the finite extent of the values.
//
// Errors:
//
//   - ErrInvalidDimensions: non-positive rows or cols.
//   - ErrNonRectangular: FromRows input with ragged rows.
//   - ErrOutOfRange: At/Set index outside the shape.
//   - ErrNaNInf: NaN or ±Inf stored where finite values are required.
//
// Complexity:
//
//   - NewDense, FromRows, ToRows, Clone, Transpose, MinMax: O(r*c).
//   - At, Set: O(1).
package matrix
