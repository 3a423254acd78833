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

// RightMultiplyVector returns m * v, a fixed vector of Rows() elements.
// v must hold Cols() elements.
//
// Row-major matrices compute each result element as the dot product of a
// row register run with v; column-major matrices accumulate column
// registers scaled by v[j]. Both forms avoid moving data across registers.
func (m Matrix[T]) RightMultiplyVector(v Vector[T]) Vector[T] {
	if m.layout == RowMajor {
		return m.lineDot(v)
	}
	return m.lineAccumulate(v)
}

// LeftMultiplyVector returns v * m, a fixed vector of Cols() elements.
// v must hold Rows() elements.
func (m Matrix[T]) LeftMultiplyVector(v Vector[T]) Vector[T] {
	if m.layout == ColMajor {
		return m.lineDot(v)
	}
	return m.lineAccumulate(v)
}

// RightMultiplyVectorAccumulate adds m * v to acc.
func (m Matrix[T]) RightMultiplyVectorAccumulate(acc *Vector[T], v Vector[T]) {
	*acc = acc.Add(m.RightMultiplyVector(v))
}

// LeftMultiplyVectorAccumulate adds v * m to acc.
func (m Matrix[T]) LeftMultiplyVectorAccumulate(acc *Vector[T], v Vector[T]) {
	*acc = acc.Add(m.LeftMultiplyVector(v))
}

// lineDot returns result[line] = line · v.
func (m Matrix[T]) lineDot(v Vector[T]) Vector[T] {
	lineCount, lineLen := m.lineShape()
	out := newFixedVector[T](m.width, lineCount)

	rpl := m.regsPerLine()
	if rpl > 0 && v.width == m.width && len(v.regs) >= rpl {
		for line := range lineCount {
			var s T
			for d := range rpl {
				s += m.regs[line*rpl+d].Dot(v.regs[d])
			}
			out.Set(line, s)
		}
		return out
	}

	w := m.width
	for line := range lineCount {
		var s T
		for pos := range lineLen {
			idx := line*lineLen + pos
			s += m.regs[idx/w].Get(idx%w) * v.Get(pos)
		}
		out.Set(line, s)
	}
	return out
}

// lineAccumulate returns result = sum over lines of line * v[line].
func (m Matrix[T]) lineAccumulate(v Vector[T]) Vector[T] {
	lineCount, lineLen := m.lineShape()
	out := newFixedVector[T](m.width, lineLen)

	rpl := m.regsPerLine()
	if rpl > 0 {
		for line := range lineCount {
			s := v.Get(line)
			for d := range rpl {
				out.regs[d] = m.regs[line*rpl+d].ScaleAdd(s, out.regs[d])
			}
		}
		return out
	}

	w := m.width
	for line := range lineCount {
		s := v.Get(line)
		for pos := range lineLen {
			idx := line*lineLen + pos
			out.Set(pos, out.Get(pos)+m.regs[idx/w].Get(idx%w)*s)
		}
	}
	return out
}
