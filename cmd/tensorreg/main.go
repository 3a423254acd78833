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

// Command tensorreg inspects the register policies available on this
// machine and runs small tensor register demonstrations.
//
// Usage:
//
//	tensorreg info
//	tensorreg demo --policy 256bit --layout col --one-line
package main

import (
	"log"

	"github.com/spf13/cobra"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("tensorreg: ")
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tensorreg",
		Short:         "Inspect and exercise SIMD tensor registers",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.AddCommand(newInfoCmd(), newDemoCmd())
	return root
}
