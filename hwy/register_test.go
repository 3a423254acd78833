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
	"slices"
	"testing"
)

func iota32(n int, start float32) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = start + float32(i)
	}
	return out
}

func TestLanesFor(t *testing.T) {
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"scalar f32", LanesFor[float32](ScalarTag[float32]{}), 1},
		{"128 f32", LanesFor[float32](FixedTag128[float32]{}), 4},
		{"256 f32", LanesFor[float32](FixedTag256[float32]{}), 8},
		{"512 f64", LanesFor[float64](FixedTag512[float64]{}), 8},
		{"512 int8", LanesFor[int8](FixedTag512[int8]{}), 64},
		{"lanes2 f64", LanesFor[float64](LaneTag[float64]{N: 2}), 2},
		{"lanes0 clamps", LanesFor[float32](LaneTag[float32]{N: 0}), 1},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: LanesFor = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
	if n := MaxLanes[float32](); n < 1 {
		t.Errorf("MaxLanes[float32]() = %d, want >= 1", n)
	}
}

func TestNewRegisterPanicsOnBadWidth(t *testing.T) {
	for _, w := range []int{0, -1, MaxRegisterLanes + 1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NewRegister(%d) did not panic", w)
				}
			}()
			NewRegister[float32](w)
		}()
	}
}

func TestRegisterLoadStorePacked(t *testing.T) {
	src := iota32(8, 1)
	r := NewRegister[float32](8)
	r.LoadPacked(src)
	dst := make([]float32, 8)
	r.StorePacked(dst)
	if !slices.Equal(dst, src) {
		t.Errorf("packed round trip = %v, want %v", dst, src)
	}
}

func TestRegisterLoadPackedNZeroFills(t *testing.T) {
	r := NewRegister[float32](4)
	r.Broadcast(7)
	r.LoadPackedN([]float32{1, 2, 3, 4}, 2)
	want := []float32{1, 2, 0, 0}
	if got := r.Lanes(); !slices.Equal(got, want) {
		t.Errorf("LoadPackedN = %v, want %v", got, want)
	}

	dst := []float32{9, 9, 9, 9}
	r.StorePackedN(dst, 3)
	if want := []float32{1, 2, 0, 9}; !slices.Equal(dst, want) {
		t.Errorf("StorePackedN = %v, want %v", dst, want)
	}
}

func TestRegisterStrided(t *testing.T) {
	src := iota32(12, 0)
	r := NewRegister[float32](4)
	r.LoadStrided(src, 3)
	if want := []float32{0, 3, 6, 9}; !slices.Equal(r.Lanes(), want) {
		t.Errorf("LoadStrided = %v, want %v", r.Lanes(), want)
	}

	r.Broadcast(5)
	r.LoadStridedN(src, 2, 3)
	if want := []float32{0, 2, 4, 0}; !slices.Equal(r.Lanes(), want) {
		t.Errorf("LoadStridedN = %v, want %v", r.Lanes(), want)
	}

	dst := make([]float32, 8)
	r.LoadPacked([]float32{1, 2, 3, 4})
	r.StoreStrided(dst, 2)
	if want := []float32{1, 0, 2, 0, 3, 0, 4, 0}; !slices.Equal(dst, want) {
		t.Errorf("StoreStrided = %v, want %v", dst, want)
	}

	dst = make([]float32, 8)
	r.StoreStridedN(dst, 2, 2)
	if want := []float32{1, 0, 2, 0, 0, 0, 0, 0}; !slices.Equal(dst, want) {
		t.Errorf("StoreStridedN = %v, want %v", dst, want)
	}
}

func TestRegisterArithmetic(t *testing.T) {
	a := NewRegister[float64](4)
	b := NewRegister[float64](4)
	c := NewRegister[float64](4)
	a.LoadPacked([]float64{1, 2, 3, 4})
	b.LoadPacked([]float64{2, 4, 6, 8})
	c.Broadcast(1)

	tests := []struct {
		name string
		got  Register[float64]
		want []float64
	}{
		{"Add", a.Add(b), []float64{3, 6, 9, 12}},
		{"Sub", b.Sub(a), []float64{1, 2, 3, 4}},
		{"Mul", a.Mul(b), []float64{2, 8, 18, 32}},
		{"Div", b.Div(a), []float64{2, 2, 2, 2}},
		{"MulAdd", a.MulAdd(b, c), []float64{3, 9, 19, 33}},
		{"MulSub", a.MulSub(b, c), []float64{1, 7, 17, 31}},
		{"Scale", a.Scale(3), []float64{3, 6, 9, 12}},
		{"ScaleAdd", a.ScaleAdd(2, c), []float64{3, 5, 7, 9}},
		{"Min", a.Min(c), []float64{1, 1, 1, 1}},
		{"Max", a.Max(c), []float64{1, 2, 3, 4}},
	}
	for _, tt := range tests {
		if got := tt.got.Lanes(); !slices.Equal(got, tt.want) {
			t.Errorf("%s = %v, want %v", tt.name, got, tt.want)
		}
	}

	// Operands are values; none of the above may have changed a.
	if want := []float64{1, 2, 3, 4}; !slices.Equal(a.Lanes(), want) {
		t.Errorf("a mutated to %v", a.Lanes())
	}
}

func TestRegisterReductions(t *testing.T) {
	r := NewRegister[int32](8)
	r.LoadPacked([]int32{5, -3, 9, 0, 2, 2, -7, 1})
	if got := r.ReduceSum(); got != 9 {
		t.Errorf("ReduceSum = %d, want 9", got)
	}
	if got := r.ReduceMin(); got != -7 {
		t.Errorf("ReduceMin = %d, want -7", got)
	}
	if got := r.ReduceMax(); got != 9 {
		t.Errorf("ReduceMax = %d, want 9", got)
	}
	o := NewRegister[int32](8)
	o.Broadcast(2)
	if got := r.Dot(o); got != 18 {
		t.Errorf("Dot = %d, want 18", got)
	}
}

func TestRegisterGetSet(t *testing.T) {
	r := NewRegister[uint16](4)
	r.Set(3, 42)
	if got := r.Get(3); got != 42 {
		t.Errorf("Get(3) = %d, want 42", got)
	}
	cp := r
	cp.Set(3, 1)
	if r.Get(3) != 42 {
		t.Errorf("copy aliased the original register")
	}
	if !r.Equal(r) || r.Equal(cp) {
		t.Errorf("Equal misreports")
	}
}

func TestTransposeShuffle(t *testing.T) {
	a := NewRegister[float32](4)
	b := NewRegister[float32](4)
	a.LoadPacked([]float32{0, 1, 2, 3})
	b.LoadPacked([]float32{10, 11, 12, 13})

	tests := []struct {
		name string
		got  Register[float32]
		want []float32
	}{
		{"left0", a.TransposeShuffleLeft(0, b), []float32{0, 10, 2, 12}},
		{"right0", a.TransposeShuffleRight(0, b), []float32{1, 11, 3, 13}},
		{"left1", a.TransposeShuffleLeft(1, b), []float32{0, 1, 10, 11}},
		{"right1", a.TransposeShuffleRight(1, b), []float32{2, 3, 12, 13}},
	}
	for _, tt := range tests {
		if got := tt.got.Lanes(); !slices.Equal(got, tt.want) {
			t.Errorf("%s = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestTransposeBlock(t *testing.T) {
	for _, w := range []int{1, 2, 4, 8, 16} {
		rows := make([]Register[float32], w)
		for i := range rows {
			rows[i] = NewRegister[float32](w)
			rows[i].LoadPacked(iota32(w, float32(i*w)))
		}
		TransposeBlock(rows)
		for i := range w {
			for j := range w {
				want := float32(j*w + i)
				if got := rows[i].Get(j); got != want {
					t.Errorf("w=%d: transposed[%d][%d] = %v, want %v", w, i, j, got, want)
				}
			}
		}
	}
}

func TestTransposeBlockDoesNotAllocate(t *testing.T) {
	rows := make([]Register[float64], 8)
	for i := range rows {
		rows[i] = NewRegister[float64](8)
	}
	if allocs := testing.AllocsPerRun(10, func() { TransposeBlock(rows) }); allocs != 0 {
		t.Errorf("TransposeBlock allocs = %v, want 0", allocs)
	}
}

func TestNoSimdEnv(t *testing.T) {
	for _, tc := range []struct {
		val  string
		want bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"1", true},
		{"yes", true},
	} {
		t.Setenv("HWY_NO_SIMD", tc.val)
		if got := NoSimdEnv(); got != tc.want {
			t.Errorf("HWY_NO_SIMD=%q: NoSimdEnv() = %v, want %v", tc.val, got, tc.want)
		}
	}
}

func TestDispatchDetected(t *testing.T) {
	if CurrentWidth() < 16 {
		t.Errorf("CurrentWidth() = %d, want >= 16", CurrentWidth())
	}
	if CurrentName() != CurrentLevel().String() {
		t.Errorf("CurrentName() = %q, want %q", CurrentName(), CurrentLevel().String())
	}
}

func BenchmarkTransposeBlock8(b *testing.B) {
	rows := make([]Register[float32], 8)
	for i := range rows {
		rows[i] = NewRegister[float32](8)
		rows[i].LoadPacked(iota32(8, float32(i*8)))
	}
	for b.Loop() {
		TransposeBlock(rows)
	}
}
