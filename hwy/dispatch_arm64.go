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

//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	detectCPUFeatures()
}

func detectCPUFeatures() {
	// SVE vector length is implementation defined; without a way to read
	// it from Go we report the 128-bit minimum, which is also the NEON width.
	switch {
	case cpu.ARM64.HasSVE:
		currentLevel = DispatchSVE
	default:
		currentLevel = DispatchNEON
	}
	currentWidth = 16
	currentName = currentLevel.String()
}

// HasFMA reports whether the CPU has fused multiply-add.
// ASIMD always includes FMLA.
func HasFMA() bool {
	return cpu.ARM64.HasASIMD
}
