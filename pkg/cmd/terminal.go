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
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	ansiGreen = "\033[32m"
	ansiRed   = "\033[31m"
	ansiReset = "\033[0m"
)

// Determine whether to colour output.  An explicit flag wins, otherwise colour
// is used only when stdout is a terminal.
func ansiEscapes(cmd *cobra.Command) bool {
	if cmd.Flags().Changed("ansi-escapes") {
		return GetFlag(cmd, "ansi-escapes")
	}
	//
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Render a truth value, optionally in colour.
func verdict(val bool, ansi bool) string {
	switch {
	case !ansi && val:
		return "true"
	case !ansi:
		return "false"
	case val:
		return ansiGreen + "true" + ansiReset
	default:
		return ansiRed + "false" + ansiReset
	}
}
