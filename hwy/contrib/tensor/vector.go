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

package tensor

import (
	"fmt"
	"strings"

	"github.com/ajroetker/go-tensorreg/hwy"
)

// Vector is a 1-D sequence of elements held in one or more registers.
//
// Arithmetic is applied register by register. Binary operations on vectors
// of different logical lengths are defined: the result length is the
// shorter of the two.
type Vector[T hwy.Numeric] struct {
	regs   []hwy.Register[T]
	width  int // lanes of every register but possibly the last
	length int
	fixed  bool
}

// NewFixedVector returns a zeroed vector of exactly n elements. The last
// register is narrower than the tag's width when n is not a multiple of it.
// Panics if n < 1.
func NewFixedVector[T hwy.Numeric](tag hwy.Tag, n int) Vector[T] {
	return newFixedVector[T](hwy.LanesFor[T](tag), n)
}

// NewStreamVector returns a zeroed streaming vector able to hold at least
// n elements. Its capacity is rounded up to whole registers and its
// length starts at the capacity. Panics if n < 1.
func NewStreamVector[T hwy.Numeric](tag hwy.Tag, n int) Vector[T] {
	return newStreamVector[T](hwy.LanesFor[T](tag), n)
}

func newFixedVector[T hwy.Numeric](width, n int) Vector[T] {
	if n < 1 {
		panic(fmt.Sprintf("tensor: vector length %d must be positive", n))
	}
	full, partial := n/width, n%width
	regs := make([]hwy.Register[T], full, full+1)
	for i := range regs {
		regs[i] = hwy.NewRegister[T](width)
	}
	if partial > 0 {
		regs = append(regs, hwy.NewRegister[T](partial))
	}
	return Vector[T]{regs: regs, width: width, length: n, fixed: true}
}

func newStreamVector[T hwy.Numeric](width, n int) Vector[T] {
	if n < 1 {
		panic(fmt.Sprintf("tensor: vector length %d must be positive", n))
	}
	nregs := (n + width - 1) / width
	regs := make([]hwy.Register[T], nregs)
	for i := range regs {
		regs[i] = hwy.NewRegister[T](width)
	}
	return Vector[T]{regs: regs, width: width, length: nregs * width}
}

// IsFixed reports whether v is a fixed-length vector.
func (v Vector[T]) IsFixed() bool {
	return v.fixed
}

// Len returns the number of valid leading elements.
func (v Vector[T]) Len() int {
	return v.length
}

// Capacity returns the total number of lanes across all registers.
func (v Vector[T]) Capacity() int {
	if len(v.regs) == 0 {
		return 0
	}
	last := len(v.regs) - 1
	return last*v.width + v.regs[last].Width()
}

// NumRegisters returns the number of registers backing v.
func (v Vector[T]) NumRegisters() int {
	return len(v.regs)
}

// Register returns a copy of register i.
func (v Vector[T]) Register(i int) hwy.Register[T] {
	return v.regs[i]
}

// Clone returns a deep copy of v.
func (v Vector[T]) Clone() Vector[T] {
	out := v
	out.regs = make([]hwy.Register[T], len(v.regs))
	copy(out.regs, v.regs)
	return out
}

// like returns a zeroed vector with the same register structure as v.
func (v Vector[T]) like() Vector[T] {
	out := v
	out.regs = make([]hwy.Register[T], len(v.regs))
	for i, r := range v.regs {
		out.regs[i] = hwy.NewRegister[T](r.Width())
	}
	out.length = v.Capacity()
	return out
}

// Load loads Capacity() contiguous elements from src.
func (v *Vector[T]) Load(src []T) {
	v.LoadStridedN(src, 1, v.Capacity())
}

// LoadStrided loads Capacity() elements from src[0], src[stride], ...
func (v *Vector[T]) LoadStrided(src []T, stride int) {
	v.LoadStridedN(src, stride, v.Capacity())
}

// LoadStridedN loads length elements from src[0], src[stride], ... and
// sets Len() to length, clamped to Capacity().
//
// A fixed vector, or a streaming vector loaded to capacity, issues one
// register load per register; register k reads from offset k*stride*W.
// Otherwise the first length elements are assigned one at a time and the
// remaining elements are left unspecified.
//
// For fixed vectors src must hold Capacity() strided elements regardless
// of length.
func (v *Vector[T]) LoadStridedN(src []T, stride, length int) {
	length = min(length, v.Capacity())
	v.length = length
	if v.fixed || length == v.Capacity() {
		for k := range v.regs {
			off := k * stride * v.width
			if stride == 1 {
				v.regs[k].LoadPacked(src[off:])
			} else {
				v.regs[k].LoadStrided(src[off:], stride)
			}
		}
		return
	}
	for i := range length {
		v.Set(i, src[i*stride])
	}
}

// Store writes the vector contiguously to dst.
func (v Vector[T]) Store(dst []T) {
	v.StoreStrided(dst, 1)
}

// StoreStrided writes the vector to dst[0], dst[stride], ...
// The dispatch mirrors LoadStridedN: whole registers when the vector is
// fixed or full, otherwise the first Len() elements one at a time.
func (v Vector[T]) StoreStrided(dst []T, stride int) {
	if v.fixed || v.length == v.Capacity() {
		for k, r := range v.regs {
			off := k * stride * v.width
			if stride == 1 {
				r.StorePacked(dst[off:])
			} else {
				r.StoreStrided(dst[off:], stride)
			}
		}
		return
	}
	for i := range v.length {
		dst[i*stride] = v.Get(i)
	}
}

// LoadRef loads the 1-D tile described by ref. Full references load every
// register; partial references load ref.Size elements and zero the rest.
func (v *Vector[T]) LoadRef(ref VectorRef[T]) {
	src := ref.Data[ref.Begin*ref.Stride:]
	if ref.Kind == TileFull {
		v.LoadStrided(src, ref.Stride)
		return
	}
	for k := range v.regs {
		off := k * v.width
		n := ref.Size - off
		if n <= 0 {
			v.regs[k].Zero()
			continue
		}
		if ref.Stride == 1 {
			v.regs[k].LoadPackedN(src[off:], n)
		} else {
			v.regs[k].LoadStridedN(src[off*ref.Stride:], ref.Stride, n)
		}
	}
	v.length = min(ref.Size, v.Capacity())
}

// StoreRef stores the 1-D tile described by ref. Partial references write
// only the first ref.Size elements.
func (v Vector[T]) StoreRef(ref VectorRef[T]) {
	dst := ref.Data[ref.Begin*ref.Stride:]
	if ref.Kind == TileFull {
		v.StoreStrided(dst, ref.Stride)
		return
	}
	for k, r := range v.regs {
		off := k * v.width
		n := ref.Size - off
		if n <= 0 {
			break
		}
		if ref.Stride == 1 {
			r.StorePackedN(dst[off:], n)
		} else {
			r.StoreStridedN(dst[off*ref.Stride:], ref.Stride, n)
		}
	}
}

// Get returns element i by walking the register list.
// Reading past the last register returns the zero value; callers must not
// rely on this.
func (v Vector[T]) Get(i int) T {
	for _, r := range v.regs {
		if i < r.Width() {
			return r.Get(i)
		}
		i -= r.Width()
	}
	var zero T
	return zero
}

// Set writes element i. Writing past the last register is a no-op;
// callers must not rely on this.
func (v *Vector[T]) Set(i int, value T) {
	for k := range v.regs {
		w := v.regs[k].Width()
		if i < w {
			v.regs[k].Set(i, value)
			return
		}
		i -= w
	}
}

// Broadcast sets every element to value and the length to the capacity.
func (v *Vector[T]) Broadcast(value T) {
	for k := range v.regs {
		v.regs[k].Broadcast(value)
	}
	v.length = v.Capacity()
}

// binary applies op to each register pair; the result length is the
// shorter operand length.
func (v Vector[T]) binary(x Vector[T], op func(a, b hwy.Register[T]) hwy.Register[T]) Vector[T] {
	out := v.Clone()
	n := min(len(v.regs), len(x.regs))
	for k := range n {
		out.regs[k] = op(v.regs[k], x.regs[k])
	}
	out.length = min(v.length, x.length)
	return out
}

// Add returns v + x element-wise.
func (v Vector[T]) Add(x Vector[T]) Vector[T] {
	return v.binary(x, hwy.Register[T].Add)
}

// Sub returns v - x element-wise.
func (v Vector[T]) Sub(x Vector[T]) Vector[T] {
	return v.binary(x, hwy.Register[T].Sub)
}

// Mul returns v * x element-wise.
func (v Vector[T]) Mul(x Vector[T]) Vector[T] {
	return v.binary(x, hwy.Register[T].Mul)
}

// Div returns v / x element-wise. Lanes past the result length are left
// as in v, so the unused tail of a streaming vector never divides by zero.
func (v Vector[T]) Div(x Vector[T]) Vector[T] {
	out := v.Clone()
	out.length = min(v.length, x.length)
	for k := range min(len(v.regs), len(x.regs)) {
		lo := k * v.width
		if lo+v.regs[k].Width() <= out.length {
			out.regs[k] = v.regs[k].Div(x.regs[k])
			continue
		}
		for i := lo; i < out.length; i++ {
			out.Set(i, v.Get(i)/x.Get(i))
		}
	}
	return out
}

// VMin returns the element-wise minimum of v and x.
func (v Vector[T]) VMin(x Vector[T]) Vector[T] {
	return v.binary(x, hwy.Register[T].Min)
}

// VMax returns the element-wise maximum of v and x.
func (v Vector[T]) VMax(x Vector[T]) Vector[T] {
	return v.binary(x, hwy.Register[T].Max)
}

// FusedMultiplyAdd returns v*b + c.
func (v Vector[T]) FusedMultiplyAdd(b, c Vector[T]) Vector[T] {
	out := v.Clone()
	n := min(len(v.regs), len(b.regs), len(c.regs))
	for k := range n {
		out.regs[k] = v.regs[k].MulAdd(b.regs[k], c.regs[k])
	}
	out.length = min(v.length, b.length, c.length)
	return out
}

// FusedMultiplySubtract returns v*b - c.
func (v Vector[T]) FusedMultiplySubtract(b, c Vector[T]) Vector[T] {
	out := v.Clone()
	n := min(len(v.regs), len(b.regs), len(c.regs))
	for k := range n {
		out.regs[k] = v.regs[k].MulSub(b.regs[k], c.regs[k])
	}
	out.length = min(v.length, b.length, c.length)
	return out
}

// Sum returns the sum of the first Len() elements.
func (v Vector[T]) Sum() T {
	var sum T
	if v.length == v.Capacity() {
		for _, r := range v.regs {
			sum += r.ReduceSum()
		}
		return sum
	}
	for i := range v.length {
		sum += v.Get(i)
	}
	return sum
}

// Dot returns the dot product of v and x over the shorter length.
func (v Vector[T]) Dot(x Vector[T]) T {
	return v.Mul(x).Sum()
}

// Max returns the largest of the first Len() elements.
func (v Vector[T]) Max() T {
	if v.length == v.Capacity() {
		m := v.regs[0].ReduceMax()
		for _, r := range v.regs[1:] {
			m = max(m, r.ReduceMax())
		}
		return m
	}
	m := v.Get(0)
	for i := 1; i < v.length; i++ {
		m = max(m, v.Get(i))
	}
	return m
}

// Min returns the smallest of the first Len() elements.
func (v Vector[T]) Min() T {
	if v.length == v.Capacity() {
		m := v.regs[0].ReduceMin()
		for _, r := range v.regs[1:] {
			m = min(m, r.ReduceMin())
		}
		return m
	}
	m := v.Get(0)
	for i := 1; i < v.length; i++ {
		m = min(m, v.Get(i))
	}
	return m
}

// ScalarAdd returns s + v.
func ScalarAdd[T hwy.Numeric](s T, v Vector[T]) Vector[T] {
	return broadcastLike(s, v).Add(v)
}

// ScalarSub returns s - v.
func ScalarSub[T hwy.Numeric](s T, v Vector[T]) Vector[T] {
	return broadcastLike(s, v).Sub(v)
}

// ScalarMul returns s * v.
func ScalarMul[T hwy.Numeric](s T, v Vector[T]) Vector[T] {
	return broadcastLike(s, v).Mul(v)
}

// ScalarDiv returns s / v.
func ScalarDiv[T hwy.Numeric](s T, v Vector[T]) Vector[T] {
	return broadcastLike(s, v).Div(v)
}

func broadcastLike[T hwy.Numeric](s T, v Vector[T]) Vector[T] {
	b := v.like()
	b.Broadcast(s)
	return b
}

// String formats the first Len() elements, e.g. "Vector(3)[1, 2, 3]".
func (v Vector[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Vector(%d)[", v.length)
	for i := range v.length {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, v.Get(i))
	}
	sb.WriteString("]")
	return sb.String()
}
