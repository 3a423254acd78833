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
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/ajroetker/go-tensorreg/hwy"
	"github.com/ajroetker/go-tensorreg/hwy/contrib/tensor"
)

// policyNames lists the names accepted by --policy besides "lanesN".
var policyNames = []string{"scalable", "scalar", "128bit", "256bit", "512bit"}

// parsePolicy maps a --policy value to a float32 register tag.
func parsePolicy(name string) (hwy.Tag, error) {
	switch name = strings.ToLower(strings.TrimSpace(name)); name {
	case "scalable":
		return hwy.ScalableTag[float32]{}, nil
	case "scalar":
		return hwy.ScalarTag[float32]{}, nil
	case "128bit":
		return hwy.FixedTag128[float32]{}, nil
	case "256bit":
		return hwy.FixedTag256[float32]{}, nil
	case "512bit":
		return hwy.FixedTag512[float32]{}, nil
	}
	if n, ok := strings.CutPrefix(name, "lanes"); ok {
		lanes, err := strconv.Atoi(n)
		if err != nil || lanes < 1 || lanes > hwy.MaxRegisterLanes {
			return nil, fmt.Errorf("invalid lane count %q", n)
		}
		return hwy.LaneTag[float32]{N: lanes}, nil
	}
	return nil, fmt.Errorf("unknown policy %q (want one of %s, or lanesN)", name, strings.Join(policyNames, ", "))
}

// allPolicies returns the tag for every named policy.
func allPolicies() []hwy.Tag {
	return lo.Map(policyNames, func(name string, _ int) hwy.Tag {
		tag, _ := parsePolicy(name)
		return tag
	})
}

func parseLayout(name string) (tensor.Layout, error) {
	switch strings.ToLower(name) {
	case "row", "row-major", "rm":
		return tensor.RowMajor, nil
	case "col", "column", "column-major", "cm":
		return tensor.ColMajor, nil
	}
	return 0, fmt.Errorf("unknown layout %q (want row or col)", name)
}
