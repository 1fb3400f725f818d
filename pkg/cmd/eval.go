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
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/consensys/go-fol/pkg/catalog"
	"github.com/consensys/go-fol/pkg/config"
	"github.com/consensys/go-fol/pkg/logic"
	"github.com/consensys/go-fol/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] [name...]",
	Short: "Evaluate named sentences against a set of witnesses.",
	Long: `Evaluate one or more sentences from the catalogue (or all of them).
	By default, each sentence is evaluated against its own witnesses.  A YAML
	witness file can be given instead, which is then used for every sentence.
	Evaluation over unbounded witnesses does not terminate unless a decision
	is reached.`,
	Run: func(cmd *cobra.Command, args []string) {
		var cfg evalConfig
		//
		entries, err := lookupEntries(args)
		if err != nil {
			log.Error(err)
			os.Exit(2)
		}
		//
		cfg.parallel = GetFlag(cmd, "parallel")
		cfg.workers = GetUint(cmd, "workers")
		cfg.batch = GetUint(cmd, "batch")
		cfg.stats = GetFlag(cmd, "stats")
		cfg.ansiEscapes = ansiEscapes(cmd)
		//
		if filename := GetString(cmd, "witnesses"); filename != "" {
			if cfg.witnesses, err = readWitnesses(filename); err != nil {
				log.Error(err)
				os.Exit(2)
			}
		}
		//
		if errs := evalEntries(cmd.OutOrStdout(), entries, cfg); len(errs) > 0 {
			// Report errors
			for _, e := range errs {
				log.Error(e)
			}
			// Error signal
			os.Exit(1)
		}
	},
}

// evalConfig holds the options of the eval command.
type evalConfig struct {
	// Witnesses to use for all sentences, or nil to use the catalogue's.
	witnesses logic.WitnessSource
	// Fan out the outermost quantifier across goroutines.
	parallel bool
	// Maximum number of goroutines (0 for one per processor).
	workers uint
	// Number of witnesses drawn per parallel batch (0 for one per worker).
	batch uint
	// Report evaluation statistics.
	stats bool
	// Colour verdicts.
	ansiEscapes bool
}

func readWitnesses(filename string) (logic.WitnessSource, error) {
	cfg, err := config.Load(filename)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	//
	return cfg.Witnesses()
}

// Evaluate each entry in turn, printing its verdict.  Entries which fail to
// evaluate are reported in the returned errors, and do not prevent the
// remaining entries from being evaluated.
func evalEntries(out io.Writer, entries []catalog.Entry, cfg evalConfig) []error {
	var errs []error
	//
	for _, e := range entries {
		var witnesses = cfg.witnesses
		//
		if witnesses == nil {
			witnesses = e.Witnesses()
		}
		//
		perf := util.NewPerfStats()
		val, stats, err := evalSentence(e.Sentence, witnesses, cfg)
		//
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", e.Name, err))
			continue
		}
		//
		perf.Log(e.Name)
		//
		if cfg.stats {
			fmt.Fprintf(out, "%s: %s (%s)\n", e.Name, verdict(val, cfg.ansiEscapes), stats)
		} else {
			fmt.Fprintf(out, "%s: %s\n", e.Name, verdict(val, cfg.ansiEscapes))
		}
	}
	//
	return errs
}

func evalSentence(s logic.Sentence, witnesses logic.WitnessSource, cfg evalConfig) (bool, logic.Stats, error) {
	var (
		val   bool
		stats logic.Stats
		err   error
	)
	//
	if cfg.parallel {
		val, stats, err = logic.EvaluateParallel(s, witnesses, cfg.workers, cfg.batch)
	} else {
		evaluator := logic.NewEvaluator(witnesses)
		val, err = evaluator.Evaluate(s)
		stats = evaluator.Stats()
	}
	//
	if errors.Is(err, logic.ErrNoWitnesses) {
		err = fmt.Errorf("%w (see --witnesses)", err)
	}
	//
	return val, stats, err
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().String("witnesses", "", "YAML file of witnesses to use for every sentence")
	evalCmd.Flags().Bool("parallel", false, "evaluate the outermost quantifier in parallel")
	evalCmd.Flags().Uint("workers", 0, "number of parallel workers (0 for one per processor)")
	evalCmd.Flags().Uint("batch", 0, "number of witnesses per parallel batch (0 for one per worker)")
	evalCmd.Flags().Bool("stats", false, "report evaluation statistics")
	evalCmd.Flags().Bool("ansi-escapes", false, "colour verdicts (default is to colour when writing to a terminal)")
}
