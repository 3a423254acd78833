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
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func makeTestFloat32s(n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = float32((i*37)%101) - 50
	}
	return out
}

var sizes = []int{1, 3, 4, 8, 13, 16, 64, 65, 1000}

func TestSumMaxMin(t *testing.T) {
	for _, n := range sizes {
		t.Run(fmt.Sprintf("n%d", n), func(t *testing.T) {
			v := makeTestFloat32s(n)
			var sum float32
			hi, lo := v[0], v[0]
			for _, x := range v {
				sum += x
				hi = max(hi, x)
				lo = min(lo, x)
			}
			assert.Equal(t, sum, Sum(v))
			assert.Equal(t, hi, Max(v))
			assert.Equal(t, lo, Min(v))
		})
	}
	assert.Zero(t, Sum[int32](nil))
}

func TestMaxMinNegativeTail(t *testing.T) {
	// The zero padding of a partial chunk must not win.
	v := []int16{-5, -3, -9}
	assert.Equal(t, int16(-3), Max(v))
	assert.Equal(t, int16(-9), Min(v))
	assert.Equal(t, 1, Argmax(v))
	assert.Equal(t, 2, Argmin(v))
}

func TestArgmax(t *testing.T) {
	testCases := []struct {
		name   string
		values []float64
		argmax int
		argmin int
	}{
		{"single", []float64{1.5}, 0, 0},
		{"ties", []float64{3, 1, 3, 1}, 0, 1},
		{"nan skipped", []float64{math.NaN(), 2, math.NaN(), -1}, 1, 3},
		{"all nan", []float64{math.NaN(), math.NaN()}, 0, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.argmax, Argmax(tc.values))
			assert.Equal(t, tc.argmin, Argmin(tc.values))
		})
	}

	for _, n := range sizes {
		v := makeTestFloat32s(n)
		want := 0
		for i, x := range v {
			if x > v[want] {
				want = i
			}
		}
		assert.Equal(t, want, Argmax(v), "n=%d", n)
	}
}

func TestEmptyPanics(t *testing.T) {
	assert.PanicsWithValue(t, "vec: Argmax called on empty slice", func() { Argmax[float32](nil) })
	assert.PanicsWithValue(t, "vec: Argmin called on empty slice", func() { Argmin[float32](nil) })
	assert.PanicsWithValue(t, "vec: Max called on empty slice", func() { Max[uint8](nil) })
	assert.PanicsWithValue(t, "vec: Min called on empty slice", func() { Min[uint8](nil) })
}

func TestMulAddScale(t *testing.T) {
	for _, n := range sizes {
		x := makeTestFloat32s(n)
		y := makeTestFloat32s(n)
		out := make([]float32, n+2)
		out[n], out[n+1] = 7, 7
		for i := range n {
			out[i] = 1
		}
		MulAdd(x, y, out)
		for i := range n {
			assert.Equal(t, 1+x[i]*y[i], out[i], "n=%d i=%d", n, i)
		}
		assert.Equal(t, float32(7), out[n], "elements past the inputs must be untouched")

		Scale(2, x)
		for i, v := range makeTestFloat32s(n) {
			assert.Equal(t, 2*v, x[i])
		}
	}
}
