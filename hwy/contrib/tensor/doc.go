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

// Package tensor builds vectors and small dense matrices out of hwy
// registers.
//
// # Vectors
//
// A Vector is an ordered list of registers. A fixed vector has exactly the
// requested number of elements; its last register may be narrower than the
// others. A streaming vector rounds its capacity up to whole registers and
// tracks how many leading elements are valid at runtime:
//
//	v := tensor.NewStreamVector[float32](hwy.FixedTag128[float32]{}, 8)
//	v.LoadStridedN(data, 1, 5)
//	total := v.Sum() // sums the first five elements
//
// # Matrices
//
// A Matrix is a rows x cols tile whose elements are packed into whole
// registers in row-major or column-major order. Shapes that do not fill an
// integral number of registers are rejected by NewMatrix.
//
// Memory is described by a TileRef: a slice, per-dimension strides, the
// tile origin and extent, and which dimension is stride-one. LoadRef and
// StoreRef pick packed or strided access, and full or partial access, from
// the reference. Partial loads zero every element outside the tile extent.
//
//	ref := tensor.RowMajorRef(data, 64, 64).Sub(8, 8, 4, 4, tensor.TileFull)
//	m := tensor.MustMatrix[float32](hwy.FixedTag128[float32]{}, 4, 4, tensor.RowMajor)
//	m.LoadRef(ref)
//	mt := m.Transpose()
//
// TransposeType reinterprets a matrix under the opposite layout without
// touching its registers: a rows x cols row-major matrix and the
// corresponding cols x rows column-major matrix share one register layout.
//
// # Concurrency
//
// Vectors and matrices hold no shared state. Distinct values may be used
// from different goroutines; a single value must not be mutated
// concurrently. Matrix.TransposeType and Matrix.Registers share storage
// with their receiver.
package tensor
