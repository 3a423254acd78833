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
	"context"
	"sync"

	"github.com/ajroetker/go-tensorreg/hwy"
	"golang.org/x/sync/errgroup"
)

// ParallelMatMul computes C = A * B using parallel execution.
// Output tiles are handed to cfg.Workers goroutines through a work queue;
// each goroutine owns its tile registers and writes disjoint parts of C.
//
//   - A is M x K (row-major)
//   - B is K x N (row-major)
//   - C is M x N (row-major)
func ParallelMatMul[T hwy.Numeric](a, b, c []T, m, n, k int) {
	cfg := DefaultConfig()
	d := newDriver[T](hwy.ScalableTag[T]{}, cfg, a, b, c, m, n, k, false)

	// For small matrices, use single-threaded version
	if m*n*k < cfg.MinParallelOps || cfg.Workers == 1 {
		d.run()
		return
	}
	if m == 0 || n == 0 {
		return
	}

	tiles := d.tiles()
	work := make(chan tileCoord, len(tiles))
	for _, tc := range tiles {
		work <- tc
	}
	close(work)

	var wg sync.WaitGroup
	for range min(cfg.Workers, len(tiles)) {
		wg.Go(func() {
			w := newWorkspace(d)
			for tc := range work {
				w.compute(tc)
			}
		})
	}
	wg.Wait()
}

// ParallelMatMulContext is ParallelMatMul with an explicit register tag,
// configuration and context. It stops handing out tiles once ctx is
// cancelled and returns ctx's error; C is then only partially written.
func ParallelMatMulContext[T hwy.Numeric](ctx context.Context, tag hwy.Tag, cfg Config, a, b, c []T, m, n, k int) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	d := newDriver[T](tag, cfg, a, b, c, m, n, k, false)
	if m == 0 || n == 0 {
		return ctx.Err()
	}
	if m*n*k < cfg.MinParallelOps {
		if err := ctx.Err(); err != nil {
			return err
		}
		d.run()
		return nil
	}

	tiles := d.tiles()
	workers := min(cfg.Workers, len(tiles))
	g, ctx := errgroup.WithContext(ctx)
	for id := range workers {
		g.Go(func() error {
			w := newWorkspace(d)
			// Tiles are striped across workers: worker id takes id,
			// id+workers, id+2*workers, ...
			for i := id; i < len(tiles); i += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				w.compute(tiles[i])
			}
			return nil
		})
	}
	return g.Wait()
}
