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

// Package vec provides slice reductions and element-wise kernels built on
// streaming tensor vectors.
//
// Every function walks its input in chunks of ChunkRegisters registers.
// Full chunks run register at a time; the tail chunk is a partial tile
// whose vector length tracks the remaining elements.
package vec

import (
	"github.com/ajroetker/go-tensorreg/hwy"
	"github.com/ajroetker/go-tensorreg/hwy/contrib/tensor"
)

// ChunkRegisters is the number of registers in each streaming chunk.
const ChunkRegisters = 4

// chunks calls fn for every chunk of n elements with the chunk's offset,
// size and tile kind.
func chunks(chunk, n int, fn func(off, size int, kind tensor.TileSize)) {
	for off := 0; off < n; off += chunk {
		size := min(chunk, n-off)
		kind := tensor.TileFull
		if size < chunk {
			kind = tensor.TilePartial
		}
		fn(off, size, kind)
	}
}

func chunkLen[T hwy.Numeric](tag hwy.Tag) int {
	return ChunkRegisters * hwy.LanesFor[T](tag)
}

// Sum returns the sum of v. Returns 0 for an empty slice.
func Sum[T hwy.Numeric](v []T) T {
	tag := hwy.ScalableTag[T]{}
	x := tensor.NewStreamVector[T](tag, chunkLen[T](tag))
	var sum T
	chunks(x.Capacity(), len(v), func(off, size int, kind tensor.TileSize) {
		x.LoadRef(tensor.Slice(v, off, size, kind))
		sum += x.Sum()
	})
	return sum
}

// Max returns the largest element of v. The result is unspecified if v
// contains NaN. Panics if v is empty.
func Max[T hwy.Numeric](v []T) T {
	if len(v) == 0 {
		panic("vec: Max called on empty slice")
	}
	return reduce(v, tensor.Vector[T].Max, func(a, b T) T { return max(a, b) })
}

// Min returns the smallest element of v. The result is unspecified if v
// contains NaN. Panics if v is empty.
func Min[T hwy.Numeric](v []T) T {
	if len(v) == 0 {
		panic("vec: Min called on empty slice")
	}
	return reduce(v, tensor.Vector[T].Min, func(a, b T) T { return min(a, b) })
}

func reduce[T hwy.Numeric](v []T, chunkOp func(tensor.Vector[T]) T, combine func(T, T) T) T {
	tag := hwy.ScalableTag[T]{}
	x := tensor.NewStreamVector[T](tag, chunkLen[T](tag))
	acc := v[0]
	chunks(x.Capacity(), len(v), func(off, size int, kind tensor.TileSize) {
		x.LoadRef(tensor.Slice(v, off, size, kind))
		acc = combine(acc, chunkOp(x))
	})
	return acc
}

// MulAdd computes out[i] += x[i] * y[i] over the shortest of the three
// slices.
func MulAdd[T hwy.Numeric](x, y, out []T) {
	n := min(len(x), len(y), len(out))
	tag := hwy.ScalableTag[T]{}
	c := chunkLen[T](tag)
	vx := tensor.NewStreamVector[T](tag, c)
	vy := tensor.NewStreamVector[T](tag, c)
	vo := tensor.NewStreamVector[T](tag, c)
	chunks(c, n, func(off, size int, kind tensor.TileSize) {
		vx.LoadRef(tensor.Slice(x, off, size, kind))
		vy.LoadRef(tensor.Slice(y, off, size, kind))
		vo.LoadRef(tensor.Slice(out, off, size, kind))
		vx.FusedMultiplyAdd(vy, vo).StoreRef(tensor.Slice(out, off, size, kind))
	})
}

// Scale computes v[i] *= s in place.
func Scale[T hwy.Numeric](s T, v []T) {
	tag := hwy.ScalableTag[T]{}
	x := tensor.NewStreamVector[T](tag, chunkLen[T](tag))
	chunks(x.Capacity(), len(v), func(off, size int, kind tensor.TileSize) {
		ref := tensor.Slice(v, off, size, kind)
		x.LoadRef(ref)
		tensor.ScalarMul(s, x).StoreRef(ref)
	})
}
