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

// Package matmul multiplies and transposes matrices held in slices by
// partitioning them into tensor.Matrix tiles. Edge tiles are loaded as
// partial tiles, so any m, n and k are accepted.
package matmul

import (
	"github.com/ajroetker/go-tensorreg/hwy"
	"github.com/ajroetker/go-tensorreg/hwy/contrib/tensor"
	"github.com/samber/lo"
)

// MatMul computes C = A * B where:
//   - A is M x K (row-major)
//   - B is K x N (row-major)
//   - C is M x N (row-major)
//
// Panics if any slice is too short for its shape.
func MatMul[T hwy.Numeric](a, b, c []T, m, n, k int) {
	newDriver[T](hwy.ScalableTag[T]{}, DefaultConfig(), a, b, c, m, n, k, false).run()
}

// MatMulKLast computes C = A * Bᵀ where:
//   - A is M x K (row-major, K last)
//   - B is N x K (row-major, K last)
//   - C is M x N (row-major)
//
// B tiles are loaded as column-major K x N tiles, so rows of A meet
// columns of Bᵀ as register runs and each output element is a register
// dot product.
func MatMulKLast[T hwy.Numeric](a, b, c []T, m, n, k int) {
	newDriver[T](hwy.ScalableTag[T]{}, DefaultConfig(), a, b, c, m, n, k, true).run()
}

// MatMulWith is MatMul with registers sized by tag and tiles by cfg.
func MatMulWith[T hwy.Numeric](tag hwy.Tag, cfg Config, a, b, c []T, m, n, k int) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	newDriver[T](tag, cfg, a, b, c, m, n, k, false).run()
	return nil
}

// tileCoord is the origin of one output tile.
type tileCoord struct {
	row, col int
}

// driver holds everything needed to compute output tiles independently.
type driver[T hwy.Numeric] struct {
	tag     hwy.Tag
	tile    int
	m, n, k int
	a, b, c tensor.TileRef[T]
}

func newDriver[T hwy.Numeric](tag hwy.Tag, cfg Config, a, b, c []T, m, n, k int, kLast bool) *driver[T] {
	if len(a) < m*k {
		panic("matmul: A slice too short")
	}
	if len(b) < k*n {
		panic("matmul: B slice too short")
	}
	if len(c) < m*n {
		panic("matmul: C slice too short")
	}
	d := &driver[T]{
		tag:  tag,
		tile: max(cfg.TileLanes, 1) * hwy.LanesFor[T](tag),
		m:    m,
		n:    n,
		k:    k,
		a:    tensor.RowMajorRef(a, m, k),
		b:    tensor.RowMajorRef(b, k, n),
		c:    tensor.RowMajorRef(c, m, n),
	}
	if kLast {
		// B is N x K row-major, which is K x N column-major.
		d.b = tensor.ColMajorRef(b, k, n)
	}
	return d
}

// tiles lists the output tile origins in row-major order.
func (d *driver[T]) tiles() []tileCoord {
	rowTiles := (d.m + d.tile - 1) / d.tile
	colTiles := (d.n + d.tile - 1) / d.tile
	return lo.FlatMap(lo.Range(rowTiles), func(i int, _ int) []tileCoord {
		return lo.Map(lo.Range(colTiles), func(j int, _ int) tileCoord {
			return tileCoord{row: i * d.tile, col: j * d.tile}
		})
	})
}

func (d *driver[T]) run() {
	if d.m == 0 || d.n == 0 {
		return
	}
	w := newWorkspace(d)
	for _, tc := range d.tiles() {
		w.compute(tc)
	}
}

// workspace owns the tile registers used by one goroutine.
type workspace[T hwy.Numeric] struct {
	d      *driver[T]
	at, bt tensor.Matrix[T]
	acc    tensor.Matrix[T]
	plan   tensor.MultiplyPlan[T]
}

func newWorkspace[T hwy.Numeric](d *driver[T]) *workspace[T] {
	s := d.tile
	bLayout := tensor.RowMajor
	if d.b.StrideOneDim == 0 {
		bLayout = tensor.ColMajor
	}
	w := &workspace[T]{
		d:   d,
		at:  tensor.MustMatrix[T](d.tag, s, s, tensor.RowMajor),
		bt:  tensor.MustMatrix[T](d.tag, s, s, bLayout),
		acc: tensor.MustMatrix[T](d.tag, s, s, tensor.RowMajor),
	}
	plan, err := tensor.PlanMultiply(w.at, w.bt)
	if err != nil {
		// Square tiles of whole registers always form a valid product.
		panic(err)
	}
	w.plan = plan
	return w
}

// compute writes one output tile of C. A k of zero stores a zero tile.
func (w *workspace[T]) compute(tc tileCoord) {
	d, s := w.d, w.d.tile
	nr := min(s, d.m-tc.row)
	nc := min(s, d.n-tc.col)

	w.acc.Clear()
	for p := 0; p < d.k; p += s {
		nk := min(s, d.k-p)
		w.at.LoadRef(d.a.Sub(tc.row, p, nr, nk, kindOf(nr < s || nk < s)))
		w.bt.LoadRef(d.b.Sub(p, tc.col, nk, nc, kindOf(nk < s || nc < s)))
		if err := w.plan.MultiplyAccumulate(w.at, w.bt, &w.acc); err != nil {
			panic(err)
		}
	}
	w.acc.StoreRef(d.c.Sub(tc.row, tc.col, nr, nc, kindOf(nr < s || nc < s)))
}

func kindOf(partial bool) tensor.TileSize {
	if partial {
		return tensor.TilePartial
	}
	return tensor.TileFull
}
