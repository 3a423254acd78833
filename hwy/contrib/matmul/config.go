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
	"errors"
	"fmt"
	"runtime"
)

// Parallel tuning parameters
const (
	// MinParallelOps is the minimum number of operations before parallelizing
	MinParallelOps = 64 * 64 * 64

	// DefaultTileLanes is the default tile edge in registers.
	DefaultTileLanes = 2
)

// ErrInvalidConfig is returned when a Config cannot drive a product.
var ErrInvalidConfig = errors.New("matmul: invalid config")

// Config holds the knobs of the tiled drivers.
type Config struct {
	// Workers is the number of goroutines ParallelMatMul may run.
	Workers int

	// TileLanes is the edge of each output tile, in registers. A tile of
	// a T product at register width W is (TileLanes*W) x (TileLanes*W).
	TileLanes int

	// MinParallelOps is the m*n*k below which the parallel drivers run
	// sequentially.
	MinParallelOps int
}

// DefaultConfig returns a Config using every available CPU.
func DefaultConfig() Config {
	return Config{
		Workers:        runtime.GOMAXPROCS(0),
		TileLanes:      DefaultTileLanes,
		MinParallelOps: MinParallelOps,
	}
}

// Validate reports whether c can be used.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers %d must be positive", ErrInvalidConfig, c.Workers)
	}
	if c.TileLanes < 1 {
		return fmt.Errorf("%w: tile lanes %d must be positive", ErrInvalidConfig, c.TileLanes)
	}
	return nil
}
