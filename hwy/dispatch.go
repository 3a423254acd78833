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
	"os"
	"strings"
)

// DispatchLevel identifies the instruction set whose register width
// ScalableTag reports.
type DispatchLevel int

const (
	DispatchScalar DispatchLevel = iota
	DispatchSSE2
	DispatchAVX2
	DispatchAVX512
	DispatchNEON
	DispatchSVE
)

// String returns the lower-case target name ("avx2", "neon", ...).
func (l DispatchLevel) String() string {
	switch l {
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	case DispatchSVE:
		return "sve"
	default:
		return "scalar"
	}
}

// Set once by the per-arch init in dispatch_*.go.
var (
	currentLevel DispatchLevel
	currentWidth int
	currentName  string
)

// CurrentLevel returns the detected dispatch level.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the detected register width in bytes.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns the detected target name.
func CurrentName() string {
	return currentName
}

// NoSimdEnv reports whether HWY_NO_SIMD is set to a truthy value.
// When set, ScalableTag reports the scalar dispatch level.
func NoSimdEnv() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("HWY_NO_SIMD")))
	switch v {
	case "", "0", "false", "no", "off":
		return false
	}
	return true
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16 // Use 16-byte vectors even in scalar mode for consistency
	currentName = "scalar"
}
