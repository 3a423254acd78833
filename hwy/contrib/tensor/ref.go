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

// TileSize tells whether a tile spans the full static extent of the
// register type it is loaded into.
type TileSize int

const (
	// TileFull tiles cover the whole matrix or vector; Size is ignored.
	TileFull TileSize = iota
	// TilePartial tiles cover only Size elements per dimension; loads zero
	// everything outside that extent.
	TilePartial
)

// String returns "full" or "partial".
func (s TileSize) String() string {
	if s == TilePartial {
		return "partial"
	}
	return "full"
}

// TileRef describes a 2-D tile of a larger array. It is a view: Data is
// owned by the caller and must stay valid for the duration of a load or
// store.
//
// Element (r, c) of the tile lives at
//
//	Data[(Begin[0]+r)*Stride[0] + (Begin[1]+c)*Stride[1]]
//
// Bounds are the caller's responsibility; Go slice bounds checks are the
// only guard.
type TileRef[T any] struct {
	Data   []T
	Stride [2]int
	Begin  [2]int
	Size   [2]int
	Kind   TileSize

	// StrideOneDim is the dimension (0 = rows, 1 = columns) whose
	// elements are adjacent in memory.
	StrideOneDim int
}

// RowMajorRef returns a full reference to a packed rows x cols row-major
// array.
func RowMajorRef[T any](data []T, rows, cols int) TileRef[T] {
	return TileRef[T]{
		Data:         data,
		Stride:       [2]int{cols, 1},
		Size:         [2]int{rows, cols},
		StrideOneDim: 1,
	}
}

// ColMajorRef returns a full reference to a packed rows x cols
// column-major array.
func ColMajorRef[T any](data []T, rows, cols int) TileRef[T] {
	return TileRef[T]{
		Data:         data,
		Stride:       [2]int{1, rows},
		Size:         [2]int{rows, cols},
		StrideOneDim: 0,
	}
}

// Sub returns a reference to the numRows x numCols tile at (row, col).
func (r TileRef[T]) Sub(row, col, numRows, numCols int, kind TileSize) TileRef[T] {
	r.Begin = [2]int{row, col}
	r.Size = [2]int{numRows, numCols}
	r.Kind = kind
	return r
}

// Offset returns the index in Data of the tile origin.
func (r TileRef[T]) Offset() int {
	return r.Begin[0]*r.Stride[0] + r.Begin[1]*r.Stride[1]
}

// VectorRef describes a 1-D tile: Size elements starting at element Begin
// of Data, Stride elements apart.
type VectorRef[T any] struct {
	Data   []T
	Stride int
	Begin  int
	Size   int
	Kind   TileSize
}

// Slice returns a packed reference to data[begin:begin+size].
func Slice[T any](data []T, begin, size int, kind TileSize) VectorRef[T] {
	return VectorRef[T]{Data: data, Stride: 1, Begin: begin, Size: size, Kind: kind}
}
