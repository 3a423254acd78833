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

package hwy

// Tile is a 2D accumulator of size Dim × Dim backed by Dim registers,
// one per row.
//
// Tile instances should be created with NewTile and zeroed with TileZero.
// The primary operation is OuterProductAdd which accumulates outer products
// into the tile: Dim broadcast+FMA operations per call.
type Tile[T Numeric] struct {
	rows [MaxRegisterLanes]Register[T]
	dim  int
}

// NewTile creates a zero-initialized tile whose dimension is the lane count
// of registers under tag.
func NewTile[T Numeric](tag Tag) Tile[T] {
	return NewTileDim[T](LanesFor[T](tag))
}

// NewTileDim creates a zero-initialized dim × dim tile.
func NewTileDim[T Numeric](dim int) Tile[T] {
	var t Tile[T]
	t.dim = dim
	for i := range dim {
		t.rows[i] = NewRegister[T](dim)
	}
	return t
}

// Dim returns the tile dimension.
func (t *Tile[T]) Dim() int {
	return t.dim
}

// TileZero zeroes all elements of the tile.
func TileZero[T Numeric](tile *Tile[T]) {
	for i := range tile.dim {
		tile.rows[i].Zero()
	}
}

// OuterProductAdd accumulates an outer product into the tile:
//
//	tile[i][j] += row[i] * col[j]
func OuterProductAdd[T Numeric](tile *Tile[T], row, col Register[T]) {
	for i := range tile.dim {
		tile.rows[i] = col.ScaleAdd(row.lanes[i], tile.rows[i])
	}
}

// TileReadRow returns tile row rowIdx as a register.
func TileReadRow[T Numeric](tile *Tile[T], rowIdx int) Register[T] {
	return tile.rows[rowIdx]
}
