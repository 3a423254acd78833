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

// Package dot provides dot products over slices of any length.
//
// # Dot Product Functions
//
//   - Dot(a, b) - dot product at the detected register width
//   - DotWith(tag, a, b) - dot product at an explicit register width
//   - DotBatch(queries, keys) - pairwise dot products
//
// # Algorithm
//
// The slices are consumed in chunks that fill a streaming tensor.Vector:
//  1. Full chunks are loaded a register at a time and reduced with
//     register multiply and horizontal sum.
//  2. The tail chunk is loaded as a partial tile; lanes past the end of the
//     slice are zero and the vector length tracks the valid elements.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-tensorreg/hwy/contrib/dot"
//
//	a := []float32{1, 2, 3, 4, 5, 6, 7, 8}
//	b := []float32{8, 7, 6, 5, 4, 3, 2, 1}
//	result := dot.Dot(a, b) // 120
package dot
