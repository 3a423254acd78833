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

// Package hwy provides portable SIMD register values with runtime CPU
// dispatch.
//
// A Register holds a fixed number of lanes chosen by a register policy
// (a Tag). The lane count follows the hardware vector width detected at
// startup (ScalableTag) or a fixed width (FixedTag128, FixedTag256,
// FixedTag512, LaneTag). Registers are plain values: copying one never
// aliases the lanes of another.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-tensorreg/hwy"
//
//	w := hwy.LanesFor[float32](hwy.ScalableTag[float32]{})
//	a := hwy.NewRegister[float32](w)
//	b := hwy.NewRegister[float32](w)
//	a.LoadPacked(data1)
//	b.LoadPacked(data2)
//	sum := a.Add(b)
//	sum.StorePacked(output)
package hwy

// FloatsNative is a constraint for Go-native floating-point types.
type FloatsNative interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Numeric is a constraint for all types that can be stored in register
// lanes and support direct arithmetic (+, -, *, /).
type Numeric interface {
	FloatsNative | Integers
}
