// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dyadic

import (
	"fmt"

	"github.com/qdmce/qdmce-go/bitvec"
)

// BlockMatrix is a binary matrix made of rows x cols dyadic blocks of
// size x size bits, each stored as its signature.
type BlockMatrix struct {
	rows, cols, size int
	// blocks[r][c] is the signature of the block at row r, column c.
	blocks [][]*bitvec.Vector
}

// NewBlockMatrix returns the zero block matrix.
func NewBlockMatrix(rows, cols, size int) *BlockMatrix {
	checkSize(size)
	m := &BlockMatrix{rows: rows, cols: cols, size: size, blocks: make([][]*bitvec.Vector, rows)}
	for r := range m.blocks {
		m.blocks[r] = make([]*bitvec.Vector, cols)
		for c := range m.blocks[r] {
			m.blocks[r][c] = bitvec.New(size)
		}
	}
	return m
}

// Rows returns the number of block rows.
func (m *BlockMatrix) Rows() int { return m.rows }

// Cols returns the number of block columns.
func (m *BlockMatrix) Cols() int { return m.cols }

// BlockSize returns the size of each block.
func (m *BlockMatrix) BlockSize() int { return m.size }

// Block returns a copy of the signature at row r, column c.
func (m *BlockMatrix) Block(r, c int) *bitvec.Vector {
	return m.blocks[r][c].Clone()
}

// SetBlock sets the signature at row r, column c to a copy of sig.
func (m *BlockMatrix) SetBlock(r, c int, sig *bitvec.Vector) {
	if sig.Len() != m.size {
		panic(fmt.Sprintf("dyadic: block of %d bits in a matrix of %d bit blocks", sig.Len(), m.size))
	}
	m.blocks[r][c] = sig.Clone()
}

// Clone returns a deep copy of m.
func (m *BlockMatrix) Clone() *BlockMatrix {
	out := NewBlockMatrix(m.rows, m.cols, m.size)
	for r := range m.blocks {
		for c, b := range m.blocks[r] {
			out.blocks[r][c] = b.Clone()
		}
	}
	return out
}

// Bit returns the entry at bit row i, bit column j of the expanded binary
// matrix.
func (m *BlockMatrix) Bit(i, j int) bool {
	r, c := i/m.size, j/m.size
	return m.blocks[r][c].Get((i % m.size) ^ (j % m.size))
}

func (m *BlockMatrix) swapRows(a, b int) {
	m.blocks[a], m.blocks[b] = m.blocks[b], m.blocks[a]
}

// scaleRow multiplies every block of row r by f.
func (m *BlockMatrix) scaleRow(r int, f *bitvec.Vector) {
	for c, b := range m.blocks[r] {
		m.blocks[r][c] = Multiply(f, b)
	}
}

// addScaledRow adds f times row src to row dst.
func (m *BlockMatrix) addScaledRow(dst, src int, f *bitvec.Vector) {
	for c, b := range m.blocks[src] {
		if b.IsZero() {
			continue
		}
		m.blocks[dst][c].Add(Multiply(f, b))
	}
}

// Eliminate reduces the square submatrix formed by the block columns
// [offset, offset+Rows()) to the identity using block row operations on the
// whole matrix. It reports false, leaving m partially reduced, if that
// submatrix is singular.
//
// Dyadic matrices form a local ring whose units are the regular blocks, so
// the submatrix is invertible exactly when every step finds a regular pivot.
func (m *BlockMatrix) Eliminate(offset int) bool {
	if offset < 0 || offset+m.rows > m.cols {
		panic(fmt.Sprintf("dyadic: cannot eliminate %d columns at offset %d of %d", m.rows, offset, m.cols))
	}
	// Gauss: unit upper triangular.
	for i := 0; i < m.rows; i++ {
		col := offset + i
		pivot := -1
		for r := i; r < m.rows; r++ {
			if IsRegular(m.blocks[r][col]) {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			return false
		}
		m.swapRows(i, pivot)
		inv, _ := Invert(m.blocks[i][col])
		m.scaleRow(i, inv)
		for r := i + 1; r < m.rows; r++ {
			if f := m.blocks[r][col]; !f.IsZero() {
				m.addScaledRow(r, i, f.Clone())
			}
		}
	}
	// Jordan: clear above the diagonal, last column first.
	for i := m.rows - 1; i > 0; i-- {
		col := offset + i
		for r := 0; r < i; r++ {
			if f := m.blocks[r][col]; !f.IsZero() {
				m.addScaledRow(r, i, f.Clone())
			}
		}
	}
	return true
}
