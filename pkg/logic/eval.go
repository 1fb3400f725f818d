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
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Evaluate reduces a sentence to a truth value, drawing the witnesses for each
// quantifier from a given source.  An existential quantifier holds as soon as
// one witness satisfies its body, and fails when the witnesses are exhausted
// (in particular, when there are none).  Dually, a universal quantifier fails
// as soon as one witness falsifies its body, and otherwise holds.  Evaluation
// does not terminate for an unbounded enumerator on which no decision is
// reached.  Panics raised by client predicates or substitutions are not
// recovered.
func Evaluate(sentence Sentence, witnesses WitnessSource) (bool, error) {
	return NewEvaluator(witnesses).Evaluate(sentence)
}

// Stats summarises the work performed by an evaluator.
type Stats struct {
	// Number of quantifier instances evaluated
	Quantifiers uint
	// Number of witnesses drawn
	Witnesses uint
	// Number of atomic formulas evaluated
	Atoms uint
}

// Add combines two sets of statistics.
func (s Stats) Add(o Stats) Stats {
	return Stats{s.Quantifiers + o.Quantifiers, s.Witnesses + o.Witnesses, s.Atoms + o.Atoms}
}

func (s Stats) String() string {
	return fmt.Sprintf("%d quantifiers, %d witnesses, %d atoms", s.Quantifiers, s.Witnesses, s.Atoms)
}

// Evaluator evaluates sentences against a witness source, whilst accumulating
// statistics.  An evaluator is not safe for concurrent use.
type Evaluator struct {
	witnesses WitnessSource
	stats     Stats
}

// NewEvaluator constructs an evaluator for a given witness source.
func NewEvaluator(witnesses WitnessSource) *Evaluator {
	return &Evaluator{witnesses, Stats{}}
}

// Stats returns the statistics accumulated by this evaluator so far.
func (p *Evaluator) Stats() Stats {
	return p.stats
}

// Evaluate a sentence to a truth value.
func (p *Evaluator) Evaluate(sentence Sentence) (bool, error) {
	return p.eval(sentence, 0)
}

func (p *Evaluator) eval(sentence Sentence, depth uint) (bool, error) {
	switch {
	case sentence.IsAtomic():
		p.stats.Atoms++
		return sentence.delta.Evaluate(), nil
	case sentence.IsQuantified():
		return p.evalQuantified(sentence.quant, depth)
	}
	//
	return false, fmt.Errorf("%w: neither atomic nor quantified", ErrInvalidSentence)
}

func (p *Evaluator) evalQuantified(q *Quantification, depth uint) (bool, error) {
	decisive, err := decisiveValue(q.quantifier)
	if err != nil {
		return false, err
	}
	//
	witnesses, err := p.witnesses.Witnesses(q.domain, depth)
	if err != nil {
		return false, err
	}
	//
	p.stats.Quantifiers++
	//
	for witnesses.HasNext() {
		witness := witnesses.Next()
		p.stats.Witnesses++
		//
		val, err := p.evalWitness(q, witness, depth)
		if err != nil {
			return false, err
		} else if val == decisive {
			log.Debugf("%s ∈ %s (depth %d) decided %t by witness %v", q.quantifier.Glyph(), q.domain, depth,
				decisive, witness)

			return decisive, nil
		}
	}
	//
	return !decisive, nil
}

func (p *Evaluator) evalWitness(q *Quantification, witness any, depth uint) (bool, error) {
	body, err := q.instantiate(witness)
	if err != nil {
		return false, err
	}
	//
	return p.eval(body, depth+1)
}

// decisiveValue returns the truth value of a body which immediately decides a
// quantifier.
func decisiveValue(q Quantifier) (bool, error) {
	switch q {
	case EXISTS:
		return true, nil
	case FORALL:
		return false, nil
	}
	//
	return false, fmt.Errorf("%w: unknown %s", ErrInvalidSentence, q)
}
