// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tensor

import (
	"fmt"

	"github.com/ajroetker/go-tensorreg/hwy"
)

// Matrix is a rows x cols dense tile backed by exactly rows*cols/W
// registers of W lanes.
//
// Element (r, c) sits at linear index r*cols+c (RowMajor) or c*rows+r
// (ColMajor); the register is index/W and the lane index%W. When the line
// length (cols for RowMajor, rows for ColMajor) is a multiple of W each
// register holds part of exactly one line, and loads, stores, products and
// transposes run a register at a time. Other shapes fall back to element
// loops.
//
// Matrix values are cheap headers over a register slice. Operations that
// return a Matrix allocate fresh registers, except TransposeType, which
// shares them.
type Matrix[T hwy.Numeric] struct {
	rows, cols int
	layout     Layout
	width      int
	regs       []hwy.Register[T]
}

// NewMatrix returns a zeroed rows x cols matrix whose register width comes
// from tag. It returns ErrInvalidShape or ErrNotTiled when the shape
// cannot be represented.
func NewMatrix[T hwy.Numeric](tag hwy.Tag, rows, cols int, layout Layout) (Matrix[T], error) {
	return newMatrix[T](hwy.LanesFor[T](tag), rows, cols, layout)
}

// MustMatrix is like NewMatrix but panics on error.
func MustMatrix[T hwy.Numeric](tag hwy.Tag, rows, cols int, layout Layout) Matrix[T] {
	m, err := NewMatrix[T](tag, rows, cols, layout)
	if err != nil {
		panic(err)
	}
	return m
}

// MatrixFromRegisters builds a matrix from an explicit register list.
// The count must equal rows*cols/W and every register must have width W.
// The registers are copied.
func MatrixFromRegisters[T hwy.Numeric](rows, cols int, layout Layout, regs ...hwy.Register[T]) (Matrix[T], error) {
	if len(regs) == 0 {
		return Matrix[T]{}, fmt.Errorf("%w: got none", ErrRegisterCount)
	}
	width := regs[0].Width()
	for i, r := range regs {
		if r.Width() != width {
			return Matrix[T]{}, fmt.Errorf("%w: register %d has %d lanes, want %d", ErrRegisterWidth, i, r.Width(), width)
		}
	}
	m, err := newMatrix[T](width, rows, cols, layout)
	if err != nil {
		return Matrix[T]{}, err
	}
	if len(regs) != len(m.regs) {
		return Matrix[T]{}, fmt.Errorf("%w: got %d, want %d", ErrRegisterCount, len(regs), len(m.regs))
	}
	copy(m.regs, regs)
	return m, nil
}

func newMatrix[T hwy.Numeric](width, rows, cols int, layout Layout) (Matrix[T], error) {
	if err := checkShape(rows, cols, width); err != nil {
		return Matrix[T]{}, err
	}
	regs := make([]hwy.Register[T], rows*cols/width)
	for i := range regs {
		regs[i] = hwy.NewRegister[T](width)
	}
	return Matrix[T]{rows: rows, cols: cols, layout: layout, width: width, regs: regs}, nil
}

// Rows returns the number of rows.
func (m Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m Matrix[T]) Cols() int { return m.cols }

// Layout returns the matrix layout.
func (m Matrix[T]) Layout() Layout { return m.layout }

// RegisterWidth returns W, the lane count of every register.
func (m Matrix[T]) RegisterWidth() int { return m.width }

// NumRegisters returns rows*cols/W.
func (m Matrix[T]) NumRegisters() int { return len(m.regs) }

// Register returns a copy of register i.
func (m Matrix[T]) Register(i int) hwy.Register[T] { return m.regs[i] }

// SetRegister replaces register i. r must have width W.
func (m *Matrix[T]) SetRegister(i int, r hwy.Register[T]) { m.regs[i] = r }

// Registers returns the backing register slice. It is shared with m.
func (m Matrix[T]) Registers() []hwy.Register[T] { return m.regs }

// Clone returns a deep copy of m.
func (m Matrix[T]) Clone() Matrix[T] {
	out := m
	out.regs = make([]hwy.Register[T], len(m.regs))
	copy(out.regs, m.regs)
	return out
}

// like returns a zeroed matrix of the same shape and layout.
func (m Matrix[T]) like() Matrix[T] {
	out := m
	out.regs = make([]hwy.Register[T], len(m.regs))
	for i := range out.regs {
		out.regs[i] = hwy.NewRegister[T](m.width)
	}
	return out
}

// lineShape returns (lineCount, lineLen).
func (m Matrix[T]) lineShape() (int, int) {
	return m.layout.lineShape(m.rows, m.cols)
}

// regsPerLine returns lineLen/W, or 0 when lines do not split evenly into
// registers.
func (m Matrix[T]) regsPerLine() int {
	_, lineLen := m.lineShape()
	if lineLen%m.width != 0 {
		return 0
	}
	return lineLen / m.width
}

func (m Matrix[T]) index(row, col int) int {
	line, pos := m.layout.linePos(row, col)
	_, lineLen := m.lineShape()
	return line*lineLen + pos
}

// Get returns element (row, col). Indices outside the matrix are
// undefined.
func (m Matrix[T]) Get(row, col int) T {
	idx := m.index(row, col)
	return m.regs[idx/m.width].Get(idx % m.width)
}

// Set writes val to element (row, col).
func (m *Matrix[T]) Set(val T, row, col int) {
	idx := m.index(row, col)
	m.regs[idx/m.width].Set(idx%m.width, val)
}

// Broadcast sets every element to v.
func (m *Matrix[T]) Broadcast(v T) {
	for i := range m.regs {
		m.regs[i].Broadcast(v)
	}
}

// Clear sets every element to zero.
func (m *Matrix[T]) Clear() {
	for i := range m.regs {
		m.regs[i].Zero()
	}
}

// Equal reports whether m and o have the same shape and elements. Layout
// and register width may differ.
func (m Matrix[T]) Equal(o Matrix[T]) bool {
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for r := range m.rows {
		for c := range m.cols {
			if m.Get(r, c) != o.Get(r, c) {
				return false
			}
		}
	}
	return true
}

func (m Matrix[T]) elementwise(o Matrix[T], op func(a, b hwy.Register[T]) hwy.Register[T]) Matrix[T] {
	out := m.Clone()
	for i := range min(len(m.regs), len(o.regs)) {
		out.regs[i] = op(m.regs[i], o.regs[i])
	}
	return out
}

// Add returns m + o element-wise. Operands must share shape and layout.
func (m Matrix[T]) Add(o Matrix[T]) Matrix[T] {
	return m.elementwise(o, hwy.Register[T].Add)
}

// Sub returns m - o element-wise.
func (m Matrix[T]) Sub(o Matrix[T]) Matrix[T] {
	return m.elementwise(o, hwy.Register[T].Sub)
}

// Mul returns m * o element-wise.
func (m Matrix[T]) Mul(o Matrix[T]) Matrix[T] {
	return m.elementwise(o, hwy.Register[T].Mul)
}

// Div returns m / o element-wise.
func (m Matrix[T]) Div(o Matrix[T]) Matrix[T] {
	return m.elementwise(o, hwy.Register[T].Div)
}

// MulAdd returns m*o + add element-wise.
func (m Matrix[T]) MulAdd(o, add Matrix[T]) Matrix[T] {
	out := m.Clone()
	for i := range min(len(m.regs), len(o.regs), len(add.regs)) {
		out.regs[i] = m.regs[i].MulAdd(o.regs[i], add.regs[i])
	}
	return out
}
