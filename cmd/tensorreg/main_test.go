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

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-tensorreg/hwy"
	"github.com/ajroetker/go-tensorreg/hwy/contrib/tensor"
)

func TestParsePolicy(t *testing.T) {
	tag, err := parsePolicy("256bit")
	require.NoError(t, err)
	assert.Equal(t, 8, hwy.LanesFor[float32](tag))

	tag, err = parsePolicy(" Lanes2 ")
	require.NoError(t, err)
	assert.Equal(t, 2, hwy.LanesFor[float32](tag))

	_, err = parsePolicy("lanes0")
	assert.Error(t, err)
	_, err = parsePolicy("avx9000")
	assert.Error(t, err)

	assert.Len(t, allPolicies(), len(policyNames))
}

func TestDemo(t *testing.T) {
	var out bytes.Buffer
	err := runDemo(&out, demoOptions{policy: "128bit", layout: "row", size: 4, oneLine: true})
	require.NoError(t, err)

	s := out.String()
	assert.Contains(t, s, "M = Matrix(4x4)[ [1, 2, 3, 4], [5, 6, 7, 8], [9, 10, 11, 12], [13, 14, 15, 16] ]")
	assert.Contains(t, s, "Transpose(M) = Matrix(4x4)[ [1, 5, 9, 13],")
	assert.Contains(t, s, "M * e0 = Vector(4)[1, 5, 9, 13]")
	assert.Contains(t, s, "M * Mᵀ strategy: dot")
}

func TestDemoErrors(t *testing.T) {
	var out bytes.Buffer
	err := runDemo(&out, demoOptions{policy: "128bit", layout: "row", size: 3})
	assert.ErrorIs(t, err, tensor.ErrNotTiled)

	err = runDemo(&out, demoOptions{policy: "128bit", layout: "diagonal", size: 4})
	assert.Error(t, err)
}

func TestInfo(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"info"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "128bit")
	assert.Contains(t, out.String(), "Scalar")
}
