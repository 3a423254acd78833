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

// TransposeShuffleLeft interleaves blocks of 1<<level lanes from r and
// other, keeping the lower block of each pair:
//
//	lane k = r[k]          if bit level of k is clear
//	lane k = other[k - b]  otherwise, b = 1<<level
//
// For level 0 this is the 2x2 transpose of rows {r, other}, row 0.
// Together with TransposeShuffleRight it is one butterfly stage of an
// in-register transpose; log2(Width()) stages transpose a Width x Width
// block held in Width registers.
func (r Register[T]) TransposeShuffleLeft(level int, other Register[T]) Register[T] {
	b := 1 << level
	out := Register[T]{width: r.width}
	for k := range r.width {
		if k&b == 0 {
			out.lanes[k] = r.lanes[k]
		} else {
			out.lanes[k] = other.lanes[k-b]
		}
	}
	return out
}

// TransposeShuffleRight is the counterpart of TransposeShuffleLeft that
// keeps the upper block of each pair:
//
//	lane k = r[k + b]   if bit level of k is clear
//	lane k = other[k]   otherwise
func (r Register[T]) TransposeShuffleRight(level int, other Register[T]) Register[T] {
	b := 1 << level
	out := Register[T]{width: r.width}
	for k := range r.width {
		if k&b == 0 {
			out.lanes[k] = r.lanes[k+b]
		} else {
			out.lanes[k] = other.lanes[k]
		}
	}
	return out
}

// TransposeBlock transposes the Width x Width block held in rows, where
// rows[i] is row i, using Eklundh's recursive block transpose: at level
// lvl every pair (i, i + 1<<lvl) differing only in bit lvl swaps half of
// its lanes in place.
// PRECONDITION: len(rows) == Width() of each register, a power of two.
func TransposeBlock[T Numeric](rows []Register[T]) {
	n := len(rows)
	for lvl := 0; 1<<lvl < n; lvl++ {
		b := 1 << lvl
		for lo := range n {
			if lo&b != 0 {
				continue
			}
			hi := lo + b
			rows[lo], rows[hi] = rows[lo].TransposeShuffleLeft(lvl, rows[hi]), rows[lo].TransposeShuffleRight(lvl, rows[hi])
		}
	}
}
