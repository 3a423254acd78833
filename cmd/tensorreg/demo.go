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
	"io"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-tensorreg/hwy"
	"github.com/ajroetker/go-tensorreg/hwy/contrib/tensor"
)

type demoOptions struct {
	policy  string
	layout  string
	size    int
	oneLine bool
}

func newDemoCmd() *cobra.Command {
	opts := demoOptions{}
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Load a matrix, transpose it and multiply it",
		Long: `demo loads the values 1..N*N into an N x N matrix and prints the
matrix, its transpose, its layout-flipped view, the product with the first
unit vector and the multiply strategy chosen for M * Mᵀ.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd.OutOrStdout(), opts)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.policy, "policy", "128bit", "register policy: scalable, scalar, 128bit, 256bit, 512bit or lanesN")
	f.StringVar(&opts.layout, "layout", "row", "matrix layout: row or col")
	f.IntVar(&opts.size, "size", 4, "matrix edge length")
	f.BoolVar(&opts.oneLine, "one-line", false, "print each matrix on a single line")
	return cmd
}

func runDemo(out io.Writer, opts demoOptions) error {
	tag, err := parsePolicy(opts.policy)
	if err != nil {
		return err
	}
	layout, err := parseLayout(opts.layout)
	if err != nil {
		return err
	}
	n := opts.size

	m, err := tensor.NewMatrix[float32](tag, n, n, layout)
	if err != nil {
		return fmt.Errorf("%s with %d lanes: %w", tag.Name(), hwy.LanesFor[float32](tag), err)
	}
	data := make([]float32, n*n)
	for i := range data {
		data[i] = float32(i + 1)
	}
	m.LoadRef(tensor.RowMajorRef(data, n, n))

	fmt.Fprintf(out, "policy %s, %d lanes, %s, %d registers\n\n",
		tag.Name(), m.RegisterWidth(), m.Layout(), m.NumRegisters())
	fmt.Fprintf(out, "M = %s\n", m.Format(opts.oneLine))
	fmt.Fprintf(out, "Transpose(M) = %s\n", m.Transpose().Format(opts.oneLine))

	flipped := m.TransposeType()
	fmt.Fprintf(out, "TransposeType(M) (%s) = %s\n", flipped.Layout(), flipped.Format(opts.oneLine))

	e0 := tensor.NewFixedVector[float32](tag, n)
	e0.Set(0, 1)
	fmt.Fprintf(out, "M * e0 = %s\n", m.RightMultiplyVector(e0))

	plan, err := tensor.PlanMultiply(m, flipped)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "M * Mᵀ strategy: %s\n", plan.Kind())
	fmt.Fprintf(out, "M * Mᵀ = %s\n", plan.Multiply(m, flipped).Format(opts.oneLine))
	return nil
}
