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
	"testing"

	"github.com/ajroetker/go-tensorreg/hwy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// naiveProduct computes a*b element by element.
func naiveProduct(a, b Matrix[float32]) [][]float32 {
	out := make([][]float32, a.Rows())
	for i := range out {
		out[i] = make([]float32, b.Cols())
		for j := range out[i] {
			for k := range a.Cols() {
				out[i][j] += a.Get(i, k) * b.Get(k, j)
			}
		}
	}
	return out
}

func requireProduct(t *testing.T, want [][]float32, got Matrix[float32]) {
	t.Helper()
	require.Equal(t, len(want), got.Rows())
	require.Equal(t, len(want[0]), got.Cols())
	for i := range want {
		for j := range want[i] {
			assert.Equal(t, want[i][j], got.Get(i, j), "(%d,%d)", i, j)
		}
	}
}

func TestPlanMultiplyKinds(t *testing.T) {
	tests := []struct {
		name       string
		w          int
		a, b       [2]int
		la, lb     Layout
		wantKind   MultiplyKind
		wantLayout Layout
	}{
		{"rm x rm", 4, [2]int{4, 8}, [2]int{8, 4}, RowMajor, RowMajor, MultiplyRowAccumulate, RowMajor},
		{"cm x cm", 4, [2]int{4, 8}, [2]int{8, 4}, ColMajor, ColMajor, MultiplyColAccumulate, ColMajor},
		{"rm x cm", 4, [2]int{4, 8}, [2]int{8, 4}, RowMajor, ColMajor, MultiplyDot, RowMajor},
		{"cm x rm", 4, [2]int{4, 8}, [2]int{8, 4}, ColMajor, RowMajor, MultiplyOuterProduct, RowMajor},
		{"rm x rm unaligned", 4, [2]int{4, 4}, [2]int{4, 2}, RowMajor, RowMajor, MultiplyScalar, RowMajor},
		{"cm x cm unaligned", 4, [2]int{2, 4}, [2]int{4, 4}, ColMajor, ColMajor, MultiplyScalar, ColMajor},
		{"rm x cm unaligned", 4, [2]int{4, 2}, [2]int{2, 4}, RowMajor, ColMajor, MultiplyScalar, RowMajor},
		{"cm x rm unaligned", 4, [2]int{2, 8}, [2]int{8, 4}, ColMajor, RowMajor, MultiplyScalar, RowMajor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := filled(t, tt.w, tt.a[0], tt.a[1], tt.la)
			b := filled(t, tt.w, tt.b[0], tt.b[1], tt.lb)
			p, err := PlanMultiply(a, b)
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, p.Kind(), "got %s", p.Kind())
			assert.Equal(t, tt.wantLayout, p.ResultLayout())
			rows, cols := p.ResultShape()
			assert.Equal(t, tt.a[0], rows)
			assert.Equal(t, tt.b[1], cols)

			requireProduct(t, naiveProduct(a, b), p.Multiply(a, b))
		})
	}
}

func TestPlanMultiplyErrors(t *testing.T) {
	a := filled(t, 4, 4, 8, RowMajor)

	_, err := PlanMultiply(a, filled(t, 4, 4, 8, RowMajor))
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = PlanMultiply(a, filled(t, 2, 8, 4, RowMajor))
	assert.ErrorIs(t, err, ErrRegisterWidth)

	// 4x8 * 8x1 is a 4x1 result: four elements still fill one register.
	_, err = PlanMultiply(a, filled(t, 4, 8, 1, RowMajor))
	assert.NoError(t, err)

	// 2x4 * 4x1 would be a 2x1 result, which cannot fill a 4-lane register.
	_, err = PlanMultiply(filled(t, 4, 2, 4, RowMajor), filled(t, 4, 4, 1, RowMajor))
	assert.ErrorIs(t, err, ErrNotTiled)

	_, err = a.MatrixMultiply(a)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	acc := filled(t, 4, 8, 8, RowMajor)
	assert.ErrorIs(t, a.MatrixMultiplyAccumulate(&acc, a.TransposeType()), ErrShapeMismatch)
}

func TestMatrixMultiplyAllLayouts(t *testing.T) {
	for _, w := range []int{1, 2, 4, 8} {
		for _, la := range layouts {
			for _, lb := range layouts {
				t.Run(fmt.Sprintf("w%d/%s*%s", w, la, lb), func(t *testing.T) {
					a := filled(t, w, 8, 16, la)
					b := filled(t, w, 16, 8, lb)
					want := naiveProduct(a, b)

					c, err := a.MatrixMultiply(b)
					require.NoError(t, err)
					requireProduct(t, want, c)

					// Accumulating into a copy of the product doubles it.
					require.NoError(t, a.MatrixMultiplyAccumulate(&c, b))
					for i := range want {
						for j := range want[i] {
							want[i][j] *= 2
						}
					}
					requireProduct(t, want, c)
				})
			}
		}
	}
}

func TestMatrixMultiplyAdd(t *testing.T) {
	a := filled(t, 4, 4, 4, ColMajor)
	b := filled(t, 4, 4, 4, RowMajor)
	c := MustMatrix[float32](hwy.LaneTag[float32]{N: 4}, 4, 4, ColMajor)
	c.Broadcast(1)

	got, err := a.MatrixMultiplyAdd(b, c)
	require.NoError(t, err)
	assert.Equal(t, ColMajor, got.Layout(), "result keeps the addend's layout")

	want := naiveProduct(a, b)
	for i := range want {
		for j := range want[i] {
			want[i][j]++
		}
	}
	requireProduct(t, want, got)
	assert.Equal(t, float32(1), c.Get(0, 0), "addend must not be modified")
}

func TestMultiplyAccumulateMixedLayout(t *testing.T) {
	a := filled(t, 4, 4, 4, RowMajor)
	b := filled(t, 4, 4, 4, RowMajor)
	acc := MustMatrix[float32](hwy.LaneTag[float32]{N: 2}, 4, 4, ColMajor)

	p, err := PlanMultiply(a, b)
	require.NoError(t, err)
	require.NoError(t, p.MultiplyAccumulate(a, b, &acc))
	requireProduct(t, naiveProduct(a, b), acc)
}

func TestMatrixMultiplyIdentity(t *testing.T) {
	id := MustMatrix[float32](hwy.LaneTag[float32]{N: 4}, 4, 4, RowMajor)
	for i := range 4 {
		id.Set(1, i, i)
	}
	m := filled(t, 4, 4, 4, RowMajor)

	left, err := id.MatrixMultiply(m)
	require.NoError(t, err)
	assert.True(t, left.Equal(m))

	right, err := m.MatrixMultiply(id)
	require.NoError(t, err)
	assert.True(t, right.Equal(m))

	// (A*B)^T == B^T * A^T
	ab, err := m.MatrixMultiply(m.Transpose())
	require.NoError(t, err)
	btat, err := m.Transpose().Transpose().MatrixMultiply(m.Transpose())
	require.NoError(t, err)
	assert.True(t, ab.Transpose().Equal(btat))
}

func BenchmarkMatrixMultiply(b *testing.B) {
	for _, la := range layouts {
		for _, lb := range layouts {
			b.Run(fmt.Sprintf("%s*%s", la, lb), func(b *testing.B) {
				x := MustMatrix[float32](hwy.LaneTag[float32]{N: 8}, 16, 16, la)
				y := MustMatrix[float32](hwy.LaneTag[float32]{N: 8}, 16, 16, lb)
				x.Broadcast(1)
				y.Broadcast(2)
				p, err := PlanMultiply(x, y)
				if err != nil {
					b.Fatal(err)
				}
				for b.Loop() {
					_ = p.Multiply(x, y)
				}
			})
		}
	}
}
