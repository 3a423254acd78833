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

import (
	"math"
	"testing"
)

func tileRegister(vals []float32) Register[float32] {
	r := NewRegister[float32](len(vals))
	r.LoadPacked(vals)
	return r
}

func TestNewTile(t *testing.T) {
	tag := FixedTag128[float32]{}
	tile := NewTile[float32](tag)
	dim := LanesFor[float32](tag)
	if tile.Dim() != dim {
		t.Errorf("tile.Dim() = %d, want %d", tile.Dim(), dim)
	}
	for i := range dim {
		row := TileReadRow(&tile, i)
		if row.Width() != dim {
			t.Errorf("row %d width = %d, want %d", i, row.Width(), dim)
		}
		for j, v := range row.Lanes() {
			if v != 0 {
				t.Errorf("tile[%d][%d] = %f, want 0", i, j, v)
			}
		}
	}
}

func TestTileZero(t *testing.T) {
	tile := NewTileDim[float32](4)
	OuterProductAdd(&tile, tileRegister([]float32{1, 2, 3, 4}), tileRegister([]float32{5, 6, 7, 8}))

	TileZero(&tile)

	for i := range 4 {
		for j, v := range TileReadRow(&tile, i).Lanes() {
			if v != 0 {
				t.Errorf("after TileZero: tile[%d][%d] = %f, want 0", i, j, v)
			}
		}
	}
}

func TestOuterProductAdd(t *testing.T) {
	for _, dim := range []int{1, 2, 4, 8} {
		rowData := make([]float32, dim)
		colData := make([]float32, dim)
		for i := range dim {
			rowData[i] = float32(i + 1)
			colData[i] = float32((i + 1) * 10)
		}

		tile := NewTileDim[float32](dim)
		OuterProductAdd(&tile, tileRegister(rowData), tileRegister(colData))

		for i := range dim {
			for j, got := range TileReadRow(&tile, i).Lanes() {
				want := rowData[i] * colData[j]
				if math.Abs(float64(got-want)) > 1e-6 {
					t.Errorf("dim=%d: tile[%d][%d] = %f, want %f", dim, i, j, got, want)
				}
			}
		}
	}
}

func TestOuterProductAddAccumulates(t *testing.T) {
	ones := tileRegister([]float32{1, 1, 1, 1})
	tile := NewTileDim[float32](4)

	// Accumulate 3 outer products
	OuterProductAdd(&tile, ones, ones)
	OuterProductAdd(&tile, ones, ones)
	OuterProductAdd(&tile, ones, ones)

	for i := range 4 {
		for j, got := range TileReadRow(&tile, i).Lanes() {
			if math.Abs(float64(got-3.0)) > 1e-6 {
				t.Errorf("tile[%d][%d] = %f, want 3.0", i, j, got)
			}
		}
	}
}

func BenchmarkOuterProductAdd(b *testing.B) {
	tile := NewTileDim[float32](8)
	row := tileRegister([]float32{1, 2, 3, 4, 5, 6, 7, 8})
	col := tileRegister([]float32{8, 7, 6, 5, 4, 3, 2, 1})
	for b.Loop() {
		OuterProductAdd(&tile, row, col)
	}
}
