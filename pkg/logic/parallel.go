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
package logic

import (
	"runtime"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// EvaluateParallel evaluates a sentence like Evaluate, except that the bodies
// of the outermost quantifier are evaluated concurrently across witnesses.
// Witnesses are drawn in batches, and a batch is only drawn once the previous
// one is fully evaluated without reaching a decision.  Results within a batch
// are examined in enumeration order, so the outcome (including any error or
// client panic) is exactly that of Evaluate.  Nested quantifiers are evaluated
// sequentially.  Client predicates and the witness source must be safe for
// concurrent use.  A zero workers defaults to GOMAXPROCS, and a zero batch
// defaults to the number of workers.
func EvaluateParallel(sentence Sentence, witnesses WitnessSource, workers uint, batch uint) (bool, Stats, error) {
	if workers == 0 {
		workers = uint(runtime.GOMAXPROCS(0))
	}
	//
	if batch == 0 {
		batch = workers
	}
	//
	if !sentence.IsQuantified() {
		evaluator := NewEvaluator(witnesses)
		val, err := evaluator.Evaluate(sentence)
		//
		return val, evaluator.Stats(), err
	}
	//
	return evalParallel(sentence.quant, witnesses, workers, batch)
}

// outcome of evaluating the body of a quantifier for one witness.
type outcome struct {
	value    bool
	err      error
	panicked bool
	panic    any
	stats    Stats
}

func evalParallel(q *Quantification, witnesses WitnessSource, workers uint, batch uint) (bool, Stats, error) {
	var stats Stats
	//
	decisive, err := decisiveValue(q.quantifier)
	if err != nil {
		return false, stats, err
	}
	//
	enumerator, err := witnesses.Witnesses(q.domain, 0)
	if err != nil {
		return false, stats, err
	}
	//
	stats.Quantifiers++
	//
	for enumerator.HasNext() {
		var (
			group errgroup.Group
			items = make([]any, 0, batch)
		)
		// Draw the next batch
		for uint(len(items)) < batch && enumerator.HasNext() {
			items = append(items, enumerator.Next())
		}
		//
		outcomes := make([]outcome, len(items))
		//
		group.SetLimit(int(workers))
		//
		for i, witness := range items {
			i, witness := i, witness
			group.Go(func() error {
				outcomes[i] = evalOutcome(q, witness, witnesses)
				return nil
			})
		}
		//
		_ = group.Wait()
		// Examine outcomes in enumeration order
		for i, o := range outcomes {
			stats.Witnesses++
			stats = stats.Add(o.stats)
			//
			switch {
			case o.panicked:
				panic(o.panic)
			case o.err != nil:
				return false, stats, o.err
			case o.value == decisive:
				log.Debugf("%s ∈ %s decided %t by witness %v (parallel)", q.quantifier.Glyph(), q.domain,
					decisive, items[i])

				return decisive, stats, nil
			}
		}
	}
	//
	return !decisive, stats, nil
}

func evalOutcome(q *Quantification, witness any, witnesses WitnessSource) (result outcome) {
	evaluator := NewEvaluator(witnesses)
	// Client panics are handed back to the calling goroutine.
	defer func() {
		if r := recover(); r != nil {
			result = outcome{panicked: true, panic: r, stats: evaluator.Stats()}
		}
	}()
	//
	val, err := evaluator.evalWitness(q, witness, 0)
	//
	return outcome{value: val, err: err, stats: evaluator.Stats()}
}
