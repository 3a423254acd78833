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

package matmul

import (
	"github.com/ajroetker/go-tensorreg/hwy"
	"github.com/ajroetker/go-tensorreg/hwy/contrib/tensor"
)

// Transpose writes the cols x rows transpose of the row-major rows x cols
// matrix src to dst. Each W x W block is transposed in registers.
//
// Panics if src or dst is shorter than rows*cols.
func Transpose[T hwy.Numeric](src []T, rows, cols int, dst []T) {
	TransposeWith(hwy.ScalableTag[T]{}, src, rows, cols, dst)
}

// TransposeWith is Transpose with blocks sized by tag.
func TransposeWith[T hwy.Numeric](tag hwy.Tag, src []T, rows, cols int, dst []T) {
	if len(src) < rows*cols {
		panic("matmul: src slice too short")
	}
	if len(dst) < rows*cols {
		panic("matmul: dst slice too short")
	}
	if rows == 0 || cols == 0 {
		return
	}

	w := hwy.LanesFor[T](tag)
	block := tensor.MustMatrix[T](tag, w, w, tensor.RowMajor)
	in := tensor.RowMajorRef(src, rows, cols)
	out := tensor.RowMajorRef(dst, cols, rows)
	for r := 0; r < rows; r += w {
		nr := min(w, rows-r)
		for c := 0; c < cols; c += w {
			nc := min(w, cols-c)
			kind := kindOf(nr < w || nc < w)
			block.LoadRef(in.Sub(r, c, nr, nc, kind))
			block.InplaceTranspose()
			block.StoreRef(out.Sub(c, r, nc, nr, kind))
		}
	}
}
