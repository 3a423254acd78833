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
	"errors"
	"fmt"
)

// Layout selects how matrix coordinates map onto the register array.
type Layout int

const (
	// RowMajor stores each row contiguously; columns are stride-one.
	RowMajor Layout = iota
	// ColMajor stores each column contiguously; rows are stride-one.
	ColMajor
)

// String returns "row-major" or "column-major".
func (l Layout) String() string {
	if l == ColMajor {
		return "column-major"
	}
	return "row-major"
}

// Transpose returns the opposite layout.
func (l Layout) Transpose() Layout {
	if l == ColMajor {
		return RowMajor
	}
	return ColMajor
}

// ContiguousDim returns the dimension (0 = rows, 1 = columns) whose
// elements are adjacent within a register under l.
func (l Layout) ContiguousDim() int {
	if l == ColMajor {
		return 0
	}
	return 1
}

// A matrix is handled internally as lineCount lines of lineLen elements:
// rows for row-major, columns for column-major. Every layout-dependent
// computation goes through these helpers so hot loops do not branch on
// the layout.

// lineShape returns (lineCount, lineLen) for a rows x cols matrix.
func (l Layout) lineShape(rows, cols int) (int, int) {
	if l == ColMajor {
		return cols, rows
	}
	return rows, cols
}

// lineStrides maps memory strides onto (lineStride, elemStride).
func (l Layout) lineStrides(rowStride, colStride int) (int, int) {
	if l == ColMajor {
		return colStride, rowStride
	}
	return rowStride, colStride
}

// linePos maps (row, col) onto (line, pos).
func (l Layout) linePos(row, col int) (int, int) {
	if l == ColMajor {
		return col, row
	}
	return row, col
}

var (
	// ErrInvalidShape is returned for non-positive matrix dimensions.
	ErrInvalidShape = errors.New("tensor: matrix dimensions must be positive")

	// ErrNotTiled is returned when rows*cols is not a multiple of the
	// register width.
	ErrNotTiled = errors.New("tensor: matrix does not fill an integral number of registers")

	// ErrRegisterCount is returned when the registers supplied to
	// MatrixFromRegisters do not match the matrix shape.
	ErrRegisterCount = errors.New("tensor: incompatible number of registers")

	// ErrRegisterWidth is returned when supplied registers differ in width.
	ErrRegisterWidth = errors.New("tensor: registers must share one width")

	// ErrShapeMismatch is returned when A.Cols() != B.Rows() in a matrix
	// product.
	ErrShapeMismatch = errors.New("tensor: inner matrix dimensions do not match")
)

func checkShape(rows, cols, width int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidShape, rows, cols)
	}
	if (rows*cols)%width != 0 {
		return fmt.Errorf("%w: %dx%d with %d lanes", ErrNotTiled, rows, cols, width)
	}
	return nil
}
