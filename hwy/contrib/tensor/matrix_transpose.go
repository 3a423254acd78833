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
	"math/bits"

	"github.com/ajroetker/go-tensorreg/hwy"
)

// Transpose returns the cols x rows transpose of m in the same layout.
//
// When W is a power of two and both matrix dimensions are multiples of W,
// the matrix is processed as W x W register blocks: each block is
// transposed in registers with Eklundh's algorithm (log2(W) shuffle
// levels, see hwy.TransposeBlock) and written to the mirrored block
// position. Other shapes are transposed element by element.
func (m Matrix[T]) Transpose() Matrix[T] {
	out := m.like()
	out.rows, out.cols = m.cols, m.rows

	w := m.width
	lineCount, lineLen := m.lineShape()
	if bits.OnesCount(uint(w)) != 1 || lineLen%w != 0 || lineCount%w != 0 {
		for r := range m.rows {
			for c := range m.cols {
				out.Set(m.Get(r, c), c, r)
			}
		}
		return out
	}

	rpl := lineLen / w
	outRpl := lineCount / w
	blk := make([]hwy.Register[T], w)
	for bi := range lineCount / w {
		for bj := range rpl {
			for t := range w {
				blk[t] = m.regs[(bi*w+t)*rpl+bj]
			}
			hwy.TransposeBlock(blk)
			for t := range w {
				out.regs[(bj*w+t)*outRpl+bi] = blk[t]
			}
		}
	}
	return out
}

// InplaceTranspose replaces m with its transpose.
func (m *Matrix[T]) InplaceTranspose() {
	*m = m.Transpose()
}

// TransposeType returns m reinterpreted under the opposite layout: a
// rows x cols row-major matrix becomes the cols x rows column-major matrix
// with the same register contents, and vice versa. No data moves; the
// result shares m's registers, so element (i, j) of the result is element
// (j, i) of m.
func (m Matrix[T]) TransposeType() Matrix[T] {
	return Matrix[T]{
		rows:   m.cols,
		cols:   m.rows,
		layout: m.layout.Transpose(),
		width:  m.width,
		regs:   m.regs,
	}
}
