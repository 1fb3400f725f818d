// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"io"

	"github.com/consensys/go-fol/pkg/catalog"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the catalogue of named sentences.",
	Run: func(cmd *cobra.Command, args []string) {
		listEntries(cmd.OutOrStdout(), catalog.All())
	},
}

func listEntries(out io.Writer, entries []catalog.Entry) {
	width := 0
	//
	for _, e := range entries {
		width = max(width, len(e.Name))
	}
	//
	for _, e := range entries {
		fmt.Fprintf(out, "%-*s  %s\n", width, e.Name, e.Description)
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
}
