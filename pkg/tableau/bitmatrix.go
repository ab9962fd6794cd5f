package tableau

import (
	"math/bits"
	"strings"
)

// BitMatrix is a dense GF(2) matrix stored as packed 64-bit words per row.
type BitMatrix struct {
	rows, cols int
	stride     int // words per row
	data       []uint64
}

// NewBitMatrix returns a zero matrix of the given shape.
func NewBitMatrix(rows, cols int) *BitMatrix {
	stride := (cols + 63) / 64
	return &BitMatrix{rows: rows, cols: cols, stride: stride, data: make([]uint64, rows*stride)}
}

// BitMatrixFrom builds a matrix from boolean rows. All rows must have the
// same length; it reports false otherwise.
func BitMatrixFrom(rows [][]bool) (*BitMatrix, bool) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	m := NewBitMatrix(len(rows), cols)
	for i, r := range rows {
		if len(r) != cols {
			return nil, false
		}
		for j, v := range r {
			if v {
				m.Set(i, j, true)
			}
		}
	}
	return m, true
}

// Rows returns the number of rows.
func (m *BitMatrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *BitMatrix) Cols() int { return m.cols }

// Get returns entry (i, j).
func (m *BitMatrix) Get(i, j int) bool {
	return m.data[i*m.stride+j/64]&(1<<(uint(j)%64)) != 0
}

// Set assigns entry (i, j).
func (m *BitMatrix) Set(i, j int, v bool) {
	w := &m.data[i*m.stride+j/64]
	bit := uint64(1) << (uint(j) % 64)
	if v {
		*w |= bit
	} else {
		*w &^= bit
	}
}

// Flip toggles entry (i, j).
func (m *BitMatrix) Flip(i, j int) {
	m.data[i*m.stride+j/64] ^= 1 << (uint(j) % 64)
}

// XorRow sets row dst to row dst XOR row src.
func (m *BitMatrix) XorRow(dst, src int) {
	d := m.row(dst)
	for k, w := range m.row(src) {
		d[k] ^= w
	}
}

// RowIsZero reports whether row i has no set bits.
func (m *BitMatrix) RowIsZero(i int) bool {
	for _, w := range m.row(i) {
		if w != 0 {
			return false
		}
	}
	return true
}

// AndPopCount returns the number of columns where both row i of m and row j
// of o are set. The matrices must have the same column count.
func (m *BitMatrix) AndPopCount(i int, o *BitMatrix, j int) int {
	a, b := m.row(i), o.row(j)
	n := 0
	for k := range a {
		n += bits.OnesCount64(a[k] & b[k])
	}
	return n
}

// SwapRows exchanges rows i and j.
func (m *BitMatrix) SwapRows(i, j int) {
	if i == j {
		return
	}
	a, b := m.row(i), m.row(j)
	for k := range a {
		a[k], b[k] = b[k], a[k]
	}
}

// Clone returns a deep copy.
func (m *BitMatrix) Clone() *BitMatrix {
	out := *m
	out.data = append([]uint64(nil), m.data...)
	return &out
}

// Equal reports whether two matrices have the same shape and entries.
func (m *BitMatrix) Equal(o *BitMatrix) bool {
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for k, w := range m.data {
		if o.data[k] != w {
			return false
		}
	}
	return true
}

// Bools returns the matrix as boolean rows.
func (m *BitMatrix) Bools() [][]bool {
	out := make([][]bool, m.rows)
	for i := range out {
		out[i] = make([]bool, m.cols)
		for j := range out[i] {
			out[i][j] = m.Get(i, j)
		}
	}
	return out
}

// RowString formats row i as a string of 0s and 1s.
func (m *BitMatrix) RowString(i int) string {
	var b strings.Builder
	for j := 0; j < m.cols; j++ {
		if m.Get(i, j) {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

func (m *BitMatrix) row(i int) []uint64 {
	return m.data[i*m.stride : (i+1)*m.stride]
}
