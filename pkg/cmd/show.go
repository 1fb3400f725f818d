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
	"os"

	"github.com/consensys/go-fol/pkg/catalog"
	"github.com/consensys/go-fol/pkg/logic"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [flags] [name...]",
	Short: "Print named sentences in quantifier notation.",
	Long: `Print one or more sentences from the catalogue (or all of them) in
quantifier notation.  Each sentence is printed with variable names starting
afresh.`,
	Run: func(cmd *cobra.Command, args []string) {
		entries, err := lookupEntries(args)
		if err != nil {
			log.Error(err)
			os.Exit(2)
		}
		//
		showEntries(cmd.OutOrStdout(), entries, GetString(cmd, "prefix"), GetFlag(cmd, "negate"))
	},
}

func showEntries(out io.Writer, entries []catalog.Entry, prefix string, negate bool) {
	for _, e := range entries {
		sentence := e.Sentence
		//
		if negate {
			sentence = sentence.Not()
		}
		//
		fmt.Fprintf(out, "%s: %s\n", e.Name, sentence.Format(logic.NewNameSupplyWithPrefix(prefix)))
	}
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().String("prefix", "x", "prefix for variable names")
	showCmd.Flags().Bool("negate", false, "show the negation of each sentence")
}
