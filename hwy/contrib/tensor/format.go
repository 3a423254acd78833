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
)

// String returns the multi-line dump of m.
func (m Matrix[T]) String() string {
	return m.Format(false)
}

// Format renders m for debugging:
//
//	Matrix(2x2)
//	[ [1, 2],
//	  [3, 4] ]
//
// With oneLine set the same text is produced without line breaks:
// "Matrix(2x2)[ [1, 2], [3, 4] ]". The output is not meant to be parsed.
func (m Matrix[T]) Format(oneLine bool) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Matrix(%dx%d)", m.rows, m.cols)
	sep := ",\n  "
	if oneLine {
		sep = ", "
	} else {
		sb.WriteByte('\n')
	}
	sb.WriteString("[ ")
	for r := range m.rows {
		if r > 0 {
			sb.WriteString(sep)
		}
		sb.WriteByte('[')
		for c := range m.cols {
			if c > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprint(&sb, m.Get(r, c))
		}
		sb.WriteByte(']')
	}
	sb.WriteString(" ]")
	if !oneLine {
		sb.WriteByte('\n')
	}
	return sb.String()
}
