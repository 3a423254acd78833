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

import "fmt"

// MaxRegisterLanes is the largest lane count a Register can hold
// (64 int8 lanes in a 512-bit register).
const MaxRegisterLanes = 64

// Register is a fixed-width vector register of W lanes of T.
//
// This is the pure Go (scalar) implementation of the register contract:
// each operation loops over the W active lanes. Lanes at or beyond W are
// always zero.
//
// Register is a value type. Use NewRegister or RegisterFor to create one;
// the zero Register has no lanes.
type Register[T Numeric] struct {
	lanes [MaxRegisterLanes]T
	width int
}

// NewRegister returns a zeroed register of width lanes.
// Panics if width is not in [1, MaxRegisterLanes].
func NewRegister[T Numeric](width int) Register[T] {
	if width < 1 || width > MaxRegisterLanes {
		panic(fmt.Sprintf("hwy: register width %d out of range [1, %d]", width, MaxRegisterLanes))
	}
	return Register[T]{width: width}
}

// RegisterFor returns a zeroed register sized by tag.
func RegisterFor[T Numeric](tag Tag) Register[T] {
	return NewRegister[T](LanesFor[T](tag))
}

// Width returns the number of lanes.
func (r Register[T]) Width() int {
	return r.width
}

// Lanes returns a copy of the active lanes.
// This is primarily for testing and should not be used in performance-critical code.
func (r Register[T]) Lanes() []T {
	out := make([]T, r.width)
	copy(out, r.lanes[:r.width])
	return out
}

// Get returns lane i. i must be in [0, Width()).
func (r Register[T]) Get(i int) T {
	return r.lanes[i]
}

// Set writes lane i. i must be in [0, Width()).
func (r *Register[T]) Set(i int, v T) {
	r.lanes[i] = v
}

// Broadcast sets every lane to v.
func (r *Register[T]) Broadcast(v T) {
	for i := range r.width {
		r.lanes[i] = v
	}
}

// Zero clears every lane.
func (r *Register[T]) Zero() {
	var zero T
	r.Broadcast(zero)
}

// LoadPacked loads Width() contiguous elements from src.
// PRECONDITION: len(src) >= Width().
func (r *Register[T]) LoadPacked(src []T) {
	copy(r.lanes[:r.width], src[:r.width])
}

// LoadPackedN loads the first n contiguous elements of src and zeroes the
// remaining lanes. n is clamped to [0, Width()].
func (r *Register[T]) LoadPackedN(src []T, n int) {
	n = r.clamp(n)
	copy(r.lanes[:n], src[:n])
	r.zeroFrom(n)
}

// LoadStrided loads lane i from src[i*stride].
func (r *Register[T]) LoadStrided(src []T, stride int) {
	for i := range r.width {
		r.lanes[i] = src[i*stride]
	}
}

// LoadStridedN loads lane i from src[i*stride] for i < n and zeroes the
// remaining lanes.
func (r *Register[T]) LoadStridedN(src []T, stride, n int) {
	n = r.clamp(n)
	for i := range n {
		r.lanes[i] = src[i*stride]
	}
	r.zeroFrom(n)
}

// StorePacked writes all lanes contiguously to dst.
// PRECONDITION: len(dst) >= Width().
func (r Register[T]) StorePacked(dst []T) {
	copy(dst[:r.width], r.lanes[:r.width])
}

// StorePackedN writes the first n lanes contiguously to dst.
func (r Register[T]) StorePackedN(dst []T, n int) {
	n = r.clamp(n)
	copy(dst[:n], r.lanes[:n])
}

// StoreStrided writes lane i to dst[i*stride].
func (r Register[T]) StoreStrided(dst []T, stride int) {
	for i := range r.width {
		dst[i*stride] = r.lanes[i]
	}
}

// StoreStridedN writes lane i to dst[i*stride] for i < n.
func (r Register[T]) StoreStridedN(dst []T, stride, n int) {
	n = r.clamp(n)
	for i := range n {
		dst[i*stride] = r.lanes[i]
	}
}

// Add performs element-wise addition.
func (r Register[T]) Add(b Register[T]) Register[T] {
	for i := range r.width {
		r.lanes[i] += b.lanes[i]
	}
	return r
}

// Sub performs element-wise subtraction.
func (r Register[T]) Sub(b Register[T]) Register[T] {
	for i := range r.width {
		r.lanes[i] -= b.lanes[i]
	}
	return r
}

// Mul performs element-wise multiplication.
func (r Register[T]) Mul(b Register[T]) Register[T] {
	for i := range r.width {
		r.lanes[i] *= b.lanes[i]
	}
	return r
}

// Div performs element-wise division. Integer division by a zero lane
// panics.
func (r Register[T]) Div(b Register[T]) Register[T] {
	for i := range r.width {
		r.lanes[i] /= b.lanes[i]
	}
	return r
}

// MulAdd returns r*b + c.
func (r Register[T]) MulAdd(b, c Register[T]) Register[T] {
	for i := range r.width {
		r.lanes[i] = r.lanes[i]*b.lanes[i] + c.lanes[i]
	}
	return r
}

// MulSub returns r*b - c.
func (r Register[T]) MulSub(b, c Register[T]) Register[T] {
	for i := range r.width {
		r.lanes[i] = r.lanes[i]*b.lanes[i] - c.lanes[i]
	}
	return r
}

// Scale returns r * s.
func (r Register[T]) Scale(s T) Register[T] {
	for i := range r.width {
		r.lanes[i] *= s
	}
	return r
}

// ScaleAdd returns r*s + c, the broadcast form of MulAdd.
func (r Register[T]) ScaleAdd(s T, c Register[T]) Register[T] {
	for i := range r.width {
		r.lanes[i] = r.lanes[i]*s + c.lanes[i]
	}
	return r
}

// Min returns the element-wise minimum.
func (r Register[T]) Min(b Register[T]) Register[T] {
	for i := range r.width {
		if b.lanes[i] < r.lanes[i] {
			r.lanes[i] = b.lanes[i]
		}
	}
	return r
}

// Max returns the element-wise maximum.
func (r Register[T]) Max(b Register[T]) Register[T] {
	for i := range r.width {
		if b.lanes[i] > r.lanes[i] {
			r.lanes[i] = b.lanes[i]
		}
	}
	return r
}

// ReduceSum sums all lanes.
func (r Register[T]) ReduceSum() T {
	var sum T
	for i := range r.width {
		sum += r.lanes[i]
	}
	return sum
}

// ReduceMin returns the smallest lane.
func (r Register[T]) ReduceMin() T {
	m := r.lanes[0]
	for i := 1; i < r.width; i++ {
		if r.lanes[i] < m {
			m = r.lanes[i]
		}
	}
	return m
}

// ReduceMax returns the largest lane.
func (r Register[T]) ReduceMax() T {
	m := r.lanes[0]
	for i := 1; i < r.width; i++ {
		if r.lanes[i] > m {
			m = r.lanes[i]
		}
	}
	return m
}

// Dot returns the sum of the element-wise products of r and b.
func (r Register[T]) Dot(b Register[T]) T {
	var sum T
	for i := range r.width {
		sum += r.lanes[i] * b.lanes[i]
	}
	return sum
}

// Equal reports whether both registers have the same width and lanes.
func (r Register[T]) Equal(b Register[T]) bool {
	if r.width != b.width {
		return false
	}
	return r.lanes == b.lanes
}

// String formats the active lanes, e.g. "[1 2 3 4]".
func (r Register[T]) String() string {
	return fmt.Sprint(r.lanes[:r.width])
}

func (r *Register[T]) clamp(n int) int {
	return min(max(n, 0), r.width)
}

func (r *Register[T]) zeroFrom(n int) {
	var zero T
	for i := n; i < r.width; i++ {
		r.lanes[i] = zero
	}
}
