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
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ajroetker/go-tensorreg/hwy"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the dispatch level and register lanes per policy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeInfo(cmd.OutOrStdout())
		},
	}
}

func writeInfo(out io.Writer) error {
	fmt.Fprintf(out, "Dispatch: %s (%d bytes)\n", hwy.CurrentName(), hwy.CurrentWidth())
	fmt.Fprintf(out, "HWY_NO_SIMD: %v\n\n", hwy.NoSimdEnv())

	title := cases.Title(language.English)
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Policy\tBytes\tFloat32 lanes\tMax tile")
	for _, tag := range allPolicies() {
		w := hwy.LanesFor[float32](tag)
		fmt.Fprintf(tw, "%s\t%d\t%d\t%dx%d\n", title.String(tag.Name()), tag.Width(), w, w, w)
	}
	return tw.Flush()
}
