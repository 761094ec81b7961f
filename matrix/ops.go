// SPDX-License-Identifier: MIT

package matrix

// Transpose returns a new c×r Dense with res[j][i] = m[i][j].
// The receiver is left untouched.
// Complexity: O(r*c) time and memory.
func (m *Dense) Transpose() *Dense {
	res := &Dense{r: m.c, c: m.r, data: make([]float64, len(m.data))}

	// data[i*cols + j] → res.data[j*rows + i]
	var i, j, baseSrc int
	for i = 0; i < m.r; i++ {
		baseSrc = i * m.c
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[baseSrc+j]
		}
	}

	return res
}

// MinMax returns the smallest and largest stored values.
// Dense never holds NaN/Inf and never has zero size, so the scan always
// starts from data[0].
// Complexity: O(r*c).
func (m *Dense) MinMax() (lo, hi float64) {
	lo, hi = m.data[0], m.data[0]
	for _, v := range m.data[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	return lo, hi
}
