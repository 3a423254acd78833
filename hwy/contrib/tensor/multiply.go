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

// MultiplyKind names the kernel a MultiplyPlan runs.
type MultiplyKind int

const (
	// MultiplyScalar computes each output element with a scalar loop.
	MultiplyScalar MultiplyKind = iota
	// MultiplyRowAccumulate adds A[i][k] * (row k of B) into row i of C.
	MultiplyRowAccumulate
	// MultiplyColAccumulate adds (column k of A) * B[k][j] into column j of C.
	MultiplyColAccumulate
	// MultiplyDot computes C[i][j] as (row i of A) · (column j of B).
	MultiplyDot
	// MultiplyOuterProduct accumulates W x W blocks of C on a hwy.Tile from
	// outer products of A columns and B rows.
	MultiplyOuterProduct
)

var multiplyKindNames = [...]string{
	MultiplyScalar:        "scalar",
	MultiplyRowAccumulate: "row-accumulate",
	MultiplyColAccumulate: "column-accumulate",
	MultiplyDot:           "dot",
	MultiplyOuterProduct:  "outer-product",
}

func (k MultiplyKind) String() string {
	if int(k) < len(multiplyKindNames) {
		return multiplyKindNames[k]
	}
	return fmt.Sprintf("MultiplyKind(%d)", int(k))
}

// MultiplyPlan is a matrix product strategy chosen once for a pair of
// operand shapes and layouts. Plans are plain values and may be reused
// for any operands of the same shapes and layouts.
type MultiplyPlan[T hwy.Numeric] struct {
	kind    MultiplyKind
	m, k, n int
	layout  Layout
	width   int
}

// PlanMultiply selects the kernel for a * b. The result is
// a.Rows() x b.Cols(); its layout is column-major only when both operands
// are, and row-major otherwise.
//
// It returns ErrShapeMismatch when a.Cols() != b.Rows(),
// ErrRegisterWidth when the operands use different register widths, and
// ErrNotTiled when the result shape does not fill whole registers.
func PlanMultiply[T hwy.Numeric](a, b Matrix[T]) (MultiplyPlan[T], error) {
	if a.cols != b.rows {
		return MultiplyPlan[T]{}, fmt.Errorf("%w: %dx%d * %dx%d", ErrShapeMismatch, a.rows, a.cols, b.rows, b.cols)
	}
	if a.width != b.width {
		return MultiplyPlan[T]{}, fmt.Errorf("%w: %d and %d lanes", ErrRegisterWidth, a.width, b.width)
	}
	p := MultiplyPlan[T]{m: a.rows, k: a.cols, n: b.cols, width: a.width, layout: RowMajor}
	if a.layout == ColMajor && b.layout == ColMajor {
		p.layout = ColMajor
	}
	if err := checkShape(p.m, p.n, p.width); err != nil {
		return MultiplyPlan[T]{}, err
	}

	w := p.width
	switch {
	case a.layout == RowMajor && b.layout == RowMajor && p.n%w == 0:
		p.kind = MultiplyRowAccumulate
	case a.layout == ColMajor && b.layout == ColMajor && p.m%w == 0:
		p.kind = MultiplyColAccumulate
	case a.layout == RowMajor && b.layout == ColMajor && p.k%w == 0:
		p.kind = MultiplyDot
	case a.layout == ColMajor && b.layout == RowMajor && p.m%w == 0 && p.n%w == 0:
		p.kind = MultiplyOuterProduct
	default:
		p.kind = MultiplyScalar
	}
	return p, nil
}

// Kind returns the selected kernel.
func (p MultiplyPlan[T]) Kind() MultiplyKind { return p.kind }

// ResultShape returns the result dimensions.
func (p MultiplyPlan[T]) ResultShape() (rows, cols int) { return p.m, p.n }

// ResultLayout returns the result layout.
func (p MultiplyPlan[T]) ResultLayout() Layout { return p.layout }

// NewResult returns a zeroed matrix of the result shape and layout.
func (p MultiplyPlan[T]) NewResult() Matrix[T] {
	c, err := newMatrix[T](p.width, p.m, p.n, p.layout)
	if err != nil {
		// PlanMultiply already validated the shape.
		panic(err)
	}
	return c
}

// Multiply returns a * b.
func (p MultiplyPlan[T]) Multiply(a, b Matrix[T]) Matrix[T] {
	c := p.NewResult()
	p.accumulate(&c, a, b)
	return c
}

// MultiplyAccumulate adds a * b into acc. acc must have the result shape;
// a different layout or register width is allowed and is handled
// element by element.
func (p MultiplyPlan[T]) MultiplyAccumulate(a, b Matrix[T], acc *Matrix[T]) error {
	if acc.rows != p.m || acc.cols != p.n {
		return fmt.Errorf("%w: accumulator is %dx%d, product is %dx%d", ErrShapeMismatch, acc.rows, acc.cols, p.m, p.n)
	}
	if acc.layout == p.layout && acc.width == p.width {
		p.accumulate(acc, a, b)
		return nil
	}
	c := p.Multiply(a, b)
	for r := range p.m {
		for col := range p.n {
			acc.Set(acc.Get(r, col)+c.Get(r, col), r, col)
		}
	}
	return nil
}

func (p MultiplyPlan[T]) accumulate(c *Matrix[T], a, b Matrix[T]) {
	switch p.kind {
	case MultiplyRowAccumulate:
		rowAccumulate(c, a, b)
	case MultiplyColAccumulate:
		colAccumulate(c, a, b)
	case MultiplyDot:
		dotProduct(c, a, b)
	case MultiplyOuterProduct:
		outerProduct(c, a, b)
	default:
		scalarProduct(c, a, b)
	}
}

// rowAccumulate handles RowMajor x RowMajor into RowMajor with
// b.cols % W == 0.
func rowAccumulate[T hwy.Numeric](c *Matrix[T], a, b Matrix[T]) {
	rpl := b.cols / b.width
	for i := range a.rows {
		crow := c.regs[i*rpl : (i+1)*rpl]
		for k := range a.cols {
			s := a.Get(i, k)
			brow := b.regs[k*rpl : (k+1)*rpl]
			for d := range crow {
				crow[d] = brow[d].ScaleAdd(s, crow[d])
			}
		}
	}
}

// colAccumulate handles ColMajor x ColMajor into ColMajor with
// a.rows % W == 0.
func colAccumulate[T hwy.Numeric](c *Matrix[T], a, b Matrix[T]) {
	rpl := a.rows / a.width
	for j := range b.cols {
		ccol := c.regs[j*rpl : (j+1)*rpl]
		for k := range a.cols {
			s := b.Get(k, j)
			acol := a.regs[k*rpl : (k+1)*rpl]
			for d := range ccol {
				ccol[d] = acol[d].ScaleAdd(s, ccol[d])
			}
		}
	}
}

// dotProduct handles RowMajor x ColMajor into RowMajor with
// a.cols % W == 0: rows of a and columns of b are both register runs.
func dotProduct[T hwy.Numeric](c *Matrix[T], a, b Matrix[T]) {
	rpl := a.cols / a.width
	for i := range a.rows {
		arow := a.regs[i*rpl : (i+1)*rpl]
		for j := range b.cols {
			bcol := b.regs[j*rpl : (j+1)*rpl]
			var s T
			for d := range arow {
				s += arow[d].Dot(bcol[d])
			}
			c.Set(c.Get(i, j)+s, i, j)
		}
	}
}

// outerProduct handles ColMajor x RowMajor into RowMajor with
// a.rows % W == 0 and b.cols % W == 0. Each W x W output block is
// accumulated on a tile from K outer products, then added row by row.
func outerProduct[T hwy.Numeric](c *Matrix[T], a, b Matrix[T]) {
	w := a.width
	aRpl := a.rows / w
	bRpl := b.cols / w
	tile := hwy.NewTileDim[T](w)
	for bi := range aRpl {
		for bj := range bRpl {
			hwy.TileZero(&tile)
			for k := range a.cols {
				hwy.OuterProductAdd(&tile, a.regs[k*aRpl+bi], b.regs[k*bRpl+bj])
			}
			for i := range w {
				idx := (bi*w+i)*bRpl + bj
				c.regs[idx] = c.regs[idx].Add(hwy.TileReadRow(&tile, i))
			}
		}
	}
}

func scalarProduct[T hwy.Numeric](c *Matrix[T], a, b Matrix[T]) {
	for i := range a.rows {
		for j := range b.cols {
			s := c.Get(i, j)
			for k := range a.cols {
				s += a.Get(i, k) * b.Get(k, j)
			}
			c.Set(s, i, j)
		}
	}
}

// MatrixMultiply returns m * b.
func (m Matrix[T]) MatrixMultiply(b Matrix[T]) (Matrix[T], error) {
	p, err := PlanMultiply(m, b)
	if err != nil {
		return Matrix[T]{}, err
	}
	return p.Multiply(m, b), nil
}

// MatrixMultiplyAdd returns m*b + c.
func (m Matrix[T]) MatrixMultiplyAdd(b, c Matrix[T]) (Matrix[T], error) {
	p, err := PlanMultiply(m, b)
	if err != nil {
		return Matrix[T]{}, err
	}
	out := c.Clone()
	if err := p.MultiplyAccumulate(m, b, &out); err != nil {
		return Matrix[T]{}, err
	}
	return out, nil
}

// MatrixMultiplyAccumulate adds m * b into acc.
func (m Matrix[T]) MatrixMultiplyAccumulate(acc *Matrix[T], b Matrix[T]) error {
	p, err := PlanMultiply(m, b)
	if err != nil {
		return err
	}
	return p.MultiplyAccumulate(m, b, acc)
}
