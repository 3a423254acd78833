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

// IsRefPacked reports whether a reference whose stride-one dimension is
// strideOneDim can be loaded with packed register loads: the stride-one
// dimension must be the one that is contiguous within m's registers.
func (m Matrix[T]) IsRefPacked(strideOneDim int) bool {
	return strideOneDim == m.layout.ContiguousDim()
}

// LoadRef loads the tile described by ref, choosing one of four
// strategies: packed or strided, full or partial.
func (m *Matrix[T]) LoadRef(ref TileRef[T]) {
	src := ref.Data[ref.Offset():]
	rs, cs := ref.Stride[0], ref.Stride[1]
	switch {
	case m.IsRefPacked(ref.StrideOneDim) && ref.Kind == TileFull:
		m.LoadPacked(src, rs, cs)
	case m.IsRefPacked(ref.StrideOneDim):
		m.LoadPackedNM(src, rs, cs, ref.Size[0], ref.Size[1])
	case ref.Kind == TileFull:
		m.LoadStrided(src, rs, cs)
	default:
		m.LoadStridedNM(src, rs, cs, ref.Size[0], ref.Size[1])
	}
}

// StoreRef stores m to the tile described by ref. Partial references
// write only the first Size[0] x Size[1] elements.
func (m Matrix[T]) StoreRef(ref TileRef[T]) {
	dst := ref.Data[ref.Offset():]
	rs, cs := ref.Stride[0], ref.Stride[1]
	switch {
	case m.IsRefPacked(ref.StrideOneDim) && ref.Kind == TileFull:
		m.StorePacked(dst, rs, cs)
	case m.IsRefPacked(ref.StrideOneDim):
		m.StorePackedNM(dst, rs, cs, ref.Size[0], ref.Size[1])
	case ref.Kind == TileFull:
		m.StoreStrided(dst, rs, cs)
	default:
		m.StoreStridedNM(dst, rs, cs, ref.Size[0], ref.Size[1])
	}
}

// LoadPacked loads a full matrix whose lines are stride-one.
//
// For RowMajor the columns must be stride-one and rows may have any
// stride; for ColMajor the reverse. When the line stride equals the line
// length the whole matrix is one contiguous block and register k loads
// from src[k*W:]. Otherwise each line is loaded separately
// ("semi-dense").
func (m *Matrix[T]) LoadPacked(src []T, rowStride, colStride int) {
	lineCount, lineLen := m.lineShape()
	lineStride, _ := m.layout.lineStrides(rowStride, colStride)
	w := m.width

	if lineStride == lineLen {
		for k := range m.regs {
			m.regs[k].LoadPacked(src[k*w:])
		}
		return
	}

	rpl := m.regsPerLine()
	if rpl == 0 {
		m.gather(src, lineStride, 1, lineCount, lineLen)
		return
	}
	for line := range lineCount {
		for d := range rpl {
			m.regs[line*rpl+d].LoadPacked(src[line*lineStride+d*w:])
		}
	}
}

// LoadStrided loads a full matrix with arbitrary strides.
func (m *Matrix[T]) LoadStrided(src []T, rowStride, colStride int) {
	lineCount, lineLen := m.lineShape()
	lineStride, elemStride := m.layout.lineStrides(rowStride, colStride)
	w := m.width

	rpl := m.regsPerLine()
	if rpl == 0 {
		m.gather(src, lineStride, elemStride, lineCount, lineLen)
		return
	}
	for line := range lineCount {
		for d := range rpl {
			m.regs[line*rpl+d].LoadStrided(src[line*lineStride+d*w*elemStride:], elemStride)
		}
	}
}

// LoadPackedNM loads the leading numRows x numCols elements of a matrix
// whose lines are stride-one and zeroes every other element.
func (m *Matrix[T]) LoadPackedNM(src []T, rowStride, colStride, numRows, numCols int) {
	lineStride, _ := m.layout.lineStrides(rowStride, colStride)
	m.loadPartial(src, lineStride, 1, numRows, numCols)
}

// LoadStridedNM loads the leading numRows x numCols elements with
// arbitrary strides and zeroes every other element.
func (m *Matrix[T]) LoadStridedNM(src []T, rowStride, colStride, numRows, numCols int) {
	lineStride, elemStride := m.layout.lineStrides(rowStride, colStride)
	m.loadPartial(src, lineStride, elemStride, numRows, numCols)
}

func (m *Matrix[T]) loadPartial(src []T, lineStride, elemStride, numRows, numCols int) {
	numLines, numElems := m.layout.lineShape(numRows, numCols)
	lineCount, _ := m.lineShape()
	w := m.width

	rpl := m.regsPerLine()
	if rpl == 0 {
		m.gather(src, lineStride, elemStride, numLines, numElems)
		return
	}
	for line := range lineCount {
		for d := range rpl {
			reg := &m.regs[line*rpl+d]
			n := numElems - d*w
			// Lines past the tile and lanes past its width must read as
			// zero, never as whatever the register held before.
			if line >= numLines || n <= 0 {
				reg.Zero()
				continue
			}
			off := line*lineStride + d*w*elemStride
			if elemStride == 1 {
				reg.LoadPackedN(src[off:], n)
			} else {
				reg.LoadStridedN(src[off:], elemStride, n)
			}
		}
	}
}

// gather loads element by element, zeroing everything outside
// numLines x numElems. It serves shapes whose lines straddle registers.
func (m *Matrix[T]) gather(src []T, lineStride, elemStride, numLines, numElems int) {
	_, lineLen := m.lineShape()
	w := m.width
	var zero T
	for k := range m.regs {
		for lane := range w {
			idx := k*w + lane
			line, pos := idx/lineLen, idx%lineLen
			if line < numLines && pos < numElems {
				m.regs[k].Set(lane, src[line*lineStride+pos*elemStride])
			} else {
				m.regs[k].Set(lane, zero)
			}
		}
	}
}

// StorePacked stores a full matrix whose lines are stride-one.
func (m Matrix[T]) StorePacked(dst []T, rowStride, colStride int) {
	lineCount, lineLen := m.lineShape()
	lineStride, _ := m.layout.lineStrides(rowStride, colStride)
	w := m.width

	if lineStride == lineLen {
		for k, r := range m.regs {
			r.StorePacked(dst[k*w:])
		}
		return
	}

	rpl := m.regsPerLine()
	if rpl == 0 {
		m.scatter(dst, lineStride, 1, lineCount, lineLen)
		return
	}
	for line := range lineCount {
		for d := range rpl {
			m.regs[line*rpl+d].StorePacked(dst[line*lineStride+d*w:])
		}
	}
}

// StoreStrided stores a full matrix with arbitrary strides.
func (m Matrix[T]) StoreStrided(dst []T, rowStride, colStride int) {
	lineCount, lineLen := m.lineShape()
	lineStride, elemStride := m.layout.lineStrides(rowStride, colStride)
	w := m.width

	rpl := m.regsPerLine()
	if rpl == 0 {
		m.scatter(dst, lineStride, elemStride, lineCount, lineLen)
		return
	}
	for line := range lineCount {
		for d := range rpl {
			m.regs[line*rpl+d].StoreStrided(dst[line*lineStride+d*w*elemStride:], elemStride)
		}
	}
}

// StorePackedNM stores the leading numRows x numCols elements of m to a
// destination whose lines are stride-one.
func (m Matrix[T]) StorePackedNM(dst []T, rowStride, colStride, numRows, numCols int) {
	lineStride, _ := m.layout.lineStrides(rowStride, colStride)
	m.storePartial(dst, lineStride, 1, numRows, numCols)
}

// StoreStridedNM stores the leading numRows x numCols elements of m with
// arbitrary strides.
func (m Matrix[T]) StoreStridedNM(dst []T, rowStride, colStride, numRows, numCols int) {
	lineStride, elemStride := m.layout.lineStrides(rowStride, colStride)
	m.storePartial(dst, lineStride, elemStride, numRows, numCols)
}

func (m Matrix[T]) storePartial(dst []T, lineStride, elemStride, numRows, numCols int) {
	numLines, numElems := m.layout.lineShape(numRows, numCols)
	lineCount, _ := m.lineShape()
	w := m.width

	rpl := m.regsPerLine()
	if rpl == 0 {
		m.scatter(dst, lineStride, elemStride, numLines, numElems)
		return
	}
	for line := range min(lineCount, numLines) {
		for d := range rpl {
			n := numElems - d*w
			if n <= 0 {
				break
			}
			off := line*lineStride + d*w*elemStride
			if elemStride == 1 {
				m.regs[line*rpl+d].StorePackedN(dst[off:], n)
			} else {
				m.regs[line*rpl+d].StoreStridedN(dst[off:], elemStride, n)
			}
		}
	}
}

func (m Matrix[T]) scatter(dst []T, lineStride, elemStride, numLines, numElems int) {
	_, lineLen := m.lineShape()
	w := m.width
	for k, r := range m.regs {
		for lane := range w {
			idx := k*w + lane
			line, pos := idx/lineLen, idx%lineLen
			if line < numLines && pos < numElems {
				dst[line*lineStride+pos*elemStride] = r.Get(lane)
			}
		}
	}
}
