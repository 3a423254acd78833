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

package dot

import (
	"github.com/ajroetker/go-tensorreg/hwy"
	"github.com/ajroetker/go-tensorreg/hwy/contrib/tensor"
)

// RegistersPerChunk is the number of registers each streaming chunk spans.
const RegistersPerChunk = 4

// Dot computes the dot product of a and b: Σ(a[i] * b[i]).
//
// If the slices have different lengths, the computation uses the minimum length.
// Returns 0 if either slice is empty.
//
// Example:
//
//	a := []float32{1, 2, 3}
//	b := []float32{4, 5, 6}
//	result := Dot(a, b) // 1*4 + 2*5 + 3*6 = 32
func Dot[T hwy.Numeric](a, b []T) T {
	return DotWith(hwy.ScalableTag[T]{}, a, b)
}

// DotWith is Dot with registers sized by tag.
func DotWith[T hwy.Numeric](tag hwy.Tag, a, b []T) T {
	n := min(len(a), len(b))
	if n == 0 {
		return 0
	}

	chunk := RegistersPerChunk * hwy.LanesFor[T](tag)
	va := tensor.NewStreamVector[T](tag, chunk)
	vb := tensor.NewStreamVector[T](tag, chunk)

	var sum T
	for off := 0; off < n; off += chunk {
		size := min(chunk, n-off)
		kind := tensor.TileFull
		if size < chunk {
			kind = tensor.TilePartial
		}
		va.LoadRef(tensor.Slice(a, off, size, kind))
		vb.LoadRef(tensor.Slice(b, off, size, kind))
		sum += va.Dot(vb)
	}
	return sum
}

// DotBatch computes the dot product of queries[i] and keys[i] for each i.
// Returns a slice of results with length min(len(queries), len(keys)).
//
// Example:
//
//	queries := [][]float32{{1, 2}, {3, 4}}
//	keys := [][]float32{{5, 6}, {7, 8}}
//	results := DotBatch(queries, keys) // [17, 53]
func DotBatch[T hwy.Numeric](queries, keys [][]T) []T {
	n := min(len(queries), len(keys))
	results := make([]T, n)
	for i := range n {
		results[i] = Dot(queries[i], keys[i])
	}
	return results
}
