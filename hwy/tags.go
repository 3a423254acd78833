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
	"strconv"
	"unsafe"
)

// Tag is a register policy: it determines how many lanes a Register
// of a given element type holds.
type Tag interface {
	// Width returns the width in bytes (16 for 128-bit, 32 for 256-bit, etc.)
	Width() int

	// Name returns a human-readable name for this tag ("sse2", "avx2", etc.)
	Name() string
}

// LanesFor returns the number of T lanes a register under tag holds.
// The result is at least 1 and at most MaxRegisterLanes.
func LanesFor[T Numeric](tag Tag) int {
	var dummy T
	n := tag.Width() / int(unsafe.Sizeof(dummy))
	return min(max(n, 1), MaxRegisterLanes)
}

// MaxLanes returns the number of lanes for type T with the current
// SIMD width.
func MaxLanes[T Numeric]() int {
	return LanesFor[T](ScalableTag[T]{})
}

// ScalableTag adapts to the widest SIMD available at runtime.
// This is the recommended tag for most use cases.
//
// Usage:
//
//	tag := hwy.ScalableTag[float32]{}
//	maxLanes := tag.MaxLanes()
type ScalableTag[T Numeric] struct{}

// Width returns the current runtime SIMD width in bytes.
func (ScalableTag[T]) Width() int {
	return currentWidth
}

// Name returns the current runtime SIMD target name.
func (ScalableTag[T]) Name() string {
	return currentLevel.String()
}

// MaxLanes returns the maximum number of lanes for type T
// with the current SIMD width.
func (t ScalableTag[T]) MaxLanes() int {
	return LanesFor[T](t)
}

// ScalarTag is a one-lane register policy.
type ScalarTag[T Numeric] struct{}

// Width returns the size of a single T.
func (ScalarTag[T]) Width() int {
	var dummy T
	return int(unsafe.Sizeof(dummy))
}

// Name returns "scalar".
func (ScalarTag[T]) Name() string {
	return "scalar"
}

// FixedTag128 forces 128-bit registers (SSE, NEON).
type FixedTag128[T Numeric] struct{}

// Width returns 16 bytes (128 bits).
func (FixedTag128[T]) Width() int {
	return 16
}

// Name returns "128bit".
func (FixedTag128[T]) Name() string {
	return "128bit"
}

// MaxLanes returns the number of T values that fit in 128 bits.
func (t FixedTag128[T]) MaxLanes() int {
	return LanesFor[T](t)
}

// FixedTag256 forces 256-bit registers (AVX2).
type FixedTag256[T Numeric] struct{}

// Width returns 32 bytes (256 bits).
func (FixedTag256[T]) Width() int {
	return 32
}

// Name returns "256bit".
func (FixedTag256[T]) Name() string {
	return "256bit"
}

// MaxLanes returns the number of T values that fit in 256 bits.
func (t FixedTag256[T]) MaxLanes() int {
	return LanesFor[T](t)
}

// FixedTag512 forces 512-bit registers (AVX-512, SVE).
type FixedTag512[T Numeric] struct{}

// Width returns 64 bytes (512 bits).
func (FixedTag512[T]) Width() int {
	return 64
}

// Name returns "512bit".
func (FixedTag512[T]) Name() string {
	return "512bit"
}

// MaxLanes returns the number of T values that fit in 512 bits.
func (t FixedTag512[T]) MaxLanes() int {
	return LanesFor[T](t)
}

// LaneTag is a register policy with an explicit lane count. It is mostly
// useful in tests that need to exercise every supported width.
type LaneTag[T Numeric] struct {
	N int
}

// Width returns N elements worth of bytes.
func (t LaneTag[T]) Width() int {
	var dummy T
	return t.N * int(unsafe.Sizeof(dummy))
}

// Name returns "lanes<N>".
func (t LaneTag[T]) Name() string {
	return "lanes" + strconv.Itoa(t.N)
}
