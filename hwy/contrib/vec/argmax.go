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

package vec

import (
	"github.com/ajroetker/go-tensorreg/hwy"
	"github.com/ajroetker/go-tensorreg/hwy/contrib/tensor"
)

// Argmax returns the index of the maximum value in v.
// If multiple elements have the maximum value, returns the first occurrence.
// NaN values are skipped; a slice of only NaN returns 0.
// Panics if the slice is empty.
func Argmax[T hwy.Numeric](v []T) int {
	if len(v) == 0 {
		panic("vec: Argmax called on empty slice")
	}
	return argBest(v, tensor.Vector[T].Max, func(a, b T) bool { return a > b })
}

// Argmin returns the index of the minimum value in v, with the same
// tie-breaking and NaN rules as Argmax.
// Panics if the slice is empty.
func Argmin[T hwy.Numeric](v []T) int {
	if len(v) == 0 {
		panic("vec: Argmin called on empty slice")
	}
	return argBest(v, tensor.Vector[T].Min, func(a, b T) bool { return a < b })
}

// argBest finds the winning chunk with register reductions and scans
// only that chunk for the first index holding the winning value. Chunks
// containing NaN fall back to a scalar scan, since register Max and Min
// do not order NaN.
func argBest[T hwy.Numeric](v []T, chunkOp func(tensor.Vector[T]) T, better func(a, b T) bool) int {
	tag := hwy.ScalableTag[T]{}
	x := tensor.NewStreamVector[T](tag, chunkLen[T](tag))

	bestIdx := -1
	var bestVal T
	consider := func(i int, val T) {
		if bestIdx < 0 || better(val, bestVal) {
			bestIdx, bestVal = i, val
		}
	}

	chunks(x.Capacity(), len(v), func(off, size int, kind tensor.TileSize) {
		part := v[off : off+size]
		if hasNaN(part) {
			for i, val := range part {
				if !isNaN(val) {
					consider(off+i, val)
				}
			}
			return
		}
		x.LoadRef(tensor.Slice(v, off, size, kind))
		val := chunkOp(x)
		if bestIdx >= 0 && !better(val, bestVal) {
			return
		}
		for i, e := range part {
			if e == val {
				consider(off+i, val)
				return
			}
		}
	})
	return max(bestIdx, 0)
}

// isNaN reports whether x is a floating-point NaN. It is always false for
// integer types.
func isNaN[T hwy.Numeric](x T) bool {
	return x != x
}

func hasNaN[T hwy.Numeric](v []T) bool {
	for _, x := range v {
		if isNaN(x) {
			return true
		}
	}
	return false
}
