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

// Package matvec computes matrix-vector products over row-major slices by
// walking them in register-sized tensor.Matrix tiles.
package matvec

import (
	"github.com/ajroetker/go-tensorreg/hwy"
	"github.com/ajroetker/go-tensorreg/hwy/contrib/tensor"
)

// MatVec computes the matrix-vector product: result = M * v
//
// Parameters:
//   - m: matrix in row-major order with shape [rows, cols]
//   - rows: number of rows in the matrix
//   - cols: number of columns in the matrix
//   - v: input vector of length cols
//   - result: output vector of length rows (must be pre-allocated)
//
// Each element result[i] is the dot product of row i with vector v.
//
// Panics if:
//   - len(m) < rows * cols
//   - len(v) < cols
//   - len(result) < rows
//
// Example:
//
//	// 2x3 matrix:
//	//   [1 2 3]
//	//   [4 5 6]
//	m := []float32{1, 2, 3, 4, 5, 6}
//	v := []float32{1, 0, 1}
//	result := make([]float32, 2)
//	MatVec(m, 2, 3, v, result)  // result = [4, 10]
func MatVec[T hwy.Numeric](m []T, rows, cols int, v, result []T) {
	MatVecWith(hwy.ScalableTag[T]{}, m, rows, cols, v, result)
}

// MatVecWith is MatVec with tiles sized by tag.
func MatVecWith[T hwy.Numeric](tag hwy.Tag, m []T, rows, cols int, v, result []T) {
	checkSizes(m, rows, cols, len(v), cols, len(result), rows)
	if rows == 0 || cols == 0 {
		clear(result[:rows])
		return
	}
	walk(tag, m, rows, cols, v, result, false)
}

// MatVecT computes result = Mᵀ * v for a row-major M of shape
// [rows, cols]: v has rows elements and result has cols elements.
// It reads M in place without materializing the transpose.
func MatVecT[T hwy.Numeric](m []T, rows, cols int, v, result []T) {
	MatVecTWith(hwy.ScalableTag[T]{}, m, rows, cols, v, result)
}

// MatVecTWith is MatVecT with tiles sized by tag.
func MatVecTWith[T hwy.Numeric](tag hwy.Tag, m []T, rows, cols int, v, result []T) {
	checkSizes(m, rows, cols, len(v), rows, len(result), cols)
	if rows == 0 || cols == 0 {
		clear(result[:cols])
		return
	}
	walk(tag, m, rows, cols, v, result, true)
}

func checkSizes[T any](m []T, rows, cols, lenV, wantV, lenResult, wantResult int) {
	if len(m) < rows*cols {
		panic("matrix slice too small")
	}
	if lenV < wantV {
		panic("vector slice too small")
	}
	if lenResult < wantResult {
		panic("result slice too small")
	}
}

// walk visits M in W x W tiles. Edge tiles are loaded as partial tiles, so
// their zero padding contributes nothing to the sums.
//
// For M * v, row block i accumulates tile(i, j) * v[j-block] and is stored
// once all column blocks are done. For Mᵀ * v, column block j accumulates
// v[i-block] * tile(i, j) instead.
func walk[T hwy.Numeric](tag hwy.Tag, m []T, rows, cols int, v, result []T, transposed bool) {
	w := hwy.LanesFor[T](tag)
	tile := tensor.MustMatrix[T](tag, w, w, tensor.RowMajor)
	src := tensor.RowMajorRef(m, rows, cols)
	x := tensor.NewFixedVector[T](tag, w)

	outer, inner := rows, cols
	if transposed {
		outer, inner = cols, rows
	}
	for o := 0; o < outer; o += w {
		no := min(w, outer-o)
		acc := tensor.NewFixedVector[T](tag, w)
		for i := 0; i < inner; i += w {
			ni := min(w, inner-i)
			kind := tensor.TileFull
			if no < w || ni < w {
				kind = tensor.TilePartial
			}
			if transposed {
				tile.LoadRef(src.Sub(i, o, ni, no, kind))
			} else {
				tile.LoadRef(src.Sub(o, i, no, ni, kind))
			}
			x.LoadRef(tensor.Slice(v, i, ni, partialIf(ni < w)))
			if transposed {
				tile.LeftMultiplyVectorAccumulate(&acc, x)
			} else {
				tile.RightMultiplyVectorAccumulate(&acc, x)
			}
		}
		acc.StoreRef(tensor.Slice(result, o, no, partialIf(no < w)))
	}
}

func partialIf(b bool) tensor.TileSize {
	if b {
		return tensor.TilePartial
	}
	return tensor.TileFull
}
