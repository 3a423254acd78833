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

package matvec

import (
	"fmt"
	"testing"

	"github.com/ajroetker/go-tensorreg/hwy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatVecExample(t *testing.T) {
	m := []float32{1, 2, 3, 4, 5, 6}
	v := []float32{1, 0, 1}
	result := make([]float32, 2)
	MatVec(m, 2, 3, v, result)
	assert.Equal(t, []float32{4, 10}, result)

	rt := make([]float32, 3)
	MatVecT(m, 2, 3, []float32{1, 1}, rt)
	assert.Equal(t, []float32{5, 7, 9}, rt)
}

func TestMatVecShapes(t *testing.T) {
	for _, w := range []int{1, 2, 4, 8} {
		for _, shape := range [][2]int{{1, 1}, {3, 5}, {8, 8}, {9, 17}, {16, 4}, {2, 33}} {
			rows, cols := shape[0], shape[1]
			t.Run(fmt.Sprintf("w%d/%dx%d", w, rows, cols), func(t *testing.T) {
				tag := hwy.LaneTag[float64]{N: w}
				m := make([]float64, rows*cols)
				for i := range m {
					m[i] = float64(i%11 - 5)
				}
				v := make([]float64, max(rows, cols))
				for i := range v {
					v[i] = float64(i%3 + 1)
				}

				got := make([]float64, rows)
				MatVecWith(tag, m, rows, cols, v[:cols], got)
				for i := range rows {
					var want float64
					for j := range cols {
						want += m[i*cols+j] * v[j]
					}
					assert.Equal(t, want, got[i], "row %d", i)
				}

				gotT := make([]float64, cols)
				MatVecTWith(tag, m, rows, cols, v[:rows], gotT)
				for j := range cols {
					var want float64
					for i := range rows {
						want += m[i*cols+j] * v[i]
					}
					assert.Equal(t, want, gotT[j], "col %d", j)
				}
			})
		}
	}
}

func TestMatVecDoesNotWritePastResult(t *testing.T) {
	m := make([]int32, 3*4)
	for i := range m {
		m[i] = 1
	}
	result := []int32{0, 0, 0, -1, -1}
	MatVecWith(hwy.LaneTag[int32]{N: 4}, m, 3, 4, []int32{1, 1, 1, 1}, result)
	assert.Equal(t, []int32{4, 4, 4, -1, -1}, result)
}

func TestMatVecPanics(t *testing.T) {
	require.PanicsWithValue(t, "matrix slice too small", func() {
		MatVec(make([]float32, 5), 2, 3, make([]float32, 3), make([]float32, 2))
	})
	require.PanicsWithValue(t, "vector slice too small", func() {
		MatVec(make([]float32, 6), 2, 3, make([]float32, 2), make([]float32, 2))
	})
	require.PanicsWithValue(t, "result slice too small", func() {
		MatVecT(make([]float32, 6), 2, 3, make([]float32, 2), make([]float32, 2))
	})
}

func BenchmarkMatVec(b *testing.B) {
	for _, n := range []int{64, 256} {
		m := make([]float32, n*n)
		v := make([]float32, n)
		out := make([]float32, n)
		for i := range m {
			m[i] = float32(i % 7)
		}
		for i := range v {
			v[i] = 1
		}
		b.Run(fmt.Sprintf("%dx%d", n, n), func(b *testing.B) {
			for b.Loop() {
				MatVec(m, n, n, v, out)
			}
		})
	}
}
