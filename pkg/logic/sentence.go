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

import "fmt"

// Formula captures anything which can be lifted into a sentence.  Both Delta0
// formulas and sentences themselves are formulas, where lifting a sentence
// simply returns it.
type Formula interface {
	Sentence() Sentence
}

// Sentence represents a first-order sentence which is either atomic (i.e. a
// Delta0 formula) or quantified.  A quantified sentence consists of a
// quantifier, a domain and a substitution mapping elements of that domain to
// further sentences.  Sentences are immutable and are kept in
// quantifier-prefix normal form by the connectives: combining a quantified
// sentence with another always leaves the quantifier outermost.
type Sentence struct {
	delta *Delta0
	quant *Quantification
}

// Quantification is the payload of a quantified sentence.
type Quantification struct {
	quantifier Quantifier
	domain     Descriptor
	body       func(variable) Sentence
}

// NewQuantification constructs the payload of a quantified sentence from a
// quantifier, a domain and a typed substitution.  A nil substitution yields a
// payload which NewSentence rejects.
func NewQuantification[T any](q Quantifier, domain Domain[T], body func(Term[T]) Sentence) Quantification {
	if body == nil {
		return Quantification{q, domain.Descriptor, nil}
	}
	//
	return Quantification{q, domain.Descriptor, func(v variable) Sentence {
		return body(termOf[T](v))
	}}
}

// Quantifier returns the quantifier of this quantification.
func (q Quantification) Quantifier() Quantifier {
	return q.quantifier
}

// Domain returns the domain this quantification ranges over.
func (q Quantification) Domain() Descriptor {
	return q.domain
}

// NewSentence constructs a sentence which is either atomic or quantified.
// Exactly one of the two must be given, otherwise ErrInvalidSentence is
// returned.
func NewSentence(delta *Delta0, quant *Quantification) (Sentence, error) {
	switch {
	case delta != nil && quant != nil:
		return Sentence{}, fmt.Errorf("%w: both atomic and quantified", ErrInvalidSentence)
	case delta == nil && quant == nil:
		return Sentence{}, fmt.Errorf("%w: neither atomic nor quantified", ErrInvalidSentence)
	case delta != nil:
		if delta.truth == nil {
			return Sentence{}, fmt.Errorf("%w: formula %q has no evaluator", ErrInvalidSentence, delta.symbol)
		}
		//
		d := *delta

		return Sentence{delta: &d}, nil
	case quant.body == nil:
		return Sentence{}, fmt.Errorf("%w: quantifier without substitution", ErrInvalidSentence)
	}
	//
	q := *quant

	return Sentence{quant: &q}, nil
}

// Atomic lifts a formula into a sentence.  Lifting a sentence returns it
// unchanged, so callers need not know whether they hold one already.
func Atomic(f Formula) Sentence {
	return f.Sentence()
}

// Exists constructs a sentence which holds when some element of the domain
// satisfies the body.  A nil body gives an invalid sentence.
func Exists[T any](domain Domain[T], body func(Term[T]) Sentence) Sentence {
	return quantified(NewQuantification(EXISTS, domain, body))
}

// ForAll constructs a sentence which holds when every element of the domain
// satisfies the body.  A nil body gives an invalid sentence.
func ForAll[T any](domain Domain[T], body func(Term[T]) Sentence) Sentence {
	return quantified(NewQuantification(FORALL, domain, body))
}

func quantified(q Quantification) Sentence {
	if q.body == nil {
		return Sentence{}
	}
	//
	return Sentence{quant: &q}
}

// ExistsInt is Exists over the integers.
func ExistsInt(body func(Term[int]) Sentence) Sentence {
	return Exists(Integers, body)
}

// ForAllInt is ForAll over the integers.
func ForAllInt(body func(Term[int]) Sentence) Sentence {
	return ForAll(Integers, body)
}

// SentenceTrue returns the atomic sentence for logical truth.
func SentenceTrue() Sentence {
	return True.Sentence()
}

// SentenceFalse returns the atomic sentence for logical falsehood.
func SentenceFalse() Sentence {
	return False.Sentence()
}

// Disjunction returns the disjunction of zero or more sentences, where the
// empty disjunction is false.
func Disjunction(sentences ...Sentence) Sentence {
	result := SentenceFalse()
	//
	for _, s := range sentences {
		result = result.Or(s)
	}
	//
	return result
}

// Conjunction returns the conjunction of zero or more sentences, where the
// empty conjunction is true.
func Conjunction(sentences ...Sentence) Sentence {
	result := SentenceTrue()
	//
	for _, s := range sentences {
		result = result.And(s)
	}
	//
	return result
}

// Implies returns the material implication a ⇒ b (i.e. ¬a ∨ b).
func Implies(a Sentence, b Sentence) Sentence {
	return a.Not().Or(b)
}

// Sentence implements Formula, returning this sentence unchanged.
func (p Sentence) Sentence() Sentence {
	return p
}

// IsAtomic checks whether this is a Delta0 formula lifted into a sentence.
func (p Sentence) IsAtomic() bool {
	return p.delta != nil && p.quant == nil
}

// IsQuantified checks whether this sentence is quantified.
func (p Sentence) IsQuantified() bool {
	return p.quant != nil && p.delta == nil
}

// IsValid checks whether this sentence is exactly one of atomic or
// quantified.  Only the zero value of Sentence is invalid.
func (p Sentence) IsValid() bool {
	return p.IsAtomic() || p.IsQuantified()
}

// Delta returns the formula of an atomic sentence.
func (p Sentence) Delta() (Delta0, bool) {
	if p.delta == nil {
		return Delta0{}, false
	}
	//
	return *p.delta, true
}

// Quantifier returns the quantifier of a quantified sentence, or zero for an
// atomic sentence.
func (p Sentence) Quantifier() Quantifier {
	if p.quant == nil {
		return 0
	}
	//
	return p.quant.quantifier
}

// Domain returns the domain of a quantified sentence, or the zero descriptor
// for an atomic sentence.
func (p Sentence) Domain() Descriptor {
	if p.quant == nil {
		return Descriptor{}
	}
	//
	return p.quant.domain
}

// Instantiate applies the substitution of a quantified sentence to a witness.
// This fails for atomic sentences, and for witnesses which are not elements of
// the sentence's domain.
func (p Sentence) Instantiate(witness any) (Sentence, error) {
	if !p.IsQuantified() {
		return Sentence{}, fmt.Errorf("%w: only quantified sentences can be instantiated", ErrInvalidSentence)
	}
	//
	return p.quant.instantiate(witness)
}

func (q *Quantification) instantiate(witness any) (Sentence, error) {
	if !q.domain.Admits(witness) {
		return Sentence{}, fmt.Errorf("%w: %v (%T) ∉ %s", ErrWitnessType, witness, witness, q.domain)
	}
	//
	return q.body(variable{"", witness, true}), nil
}

// Depth returns the length of the quantifier prefix of this sentence, as seen
// when printing it.
func (p Sentence) Depth() uint {
	depth := uint(0)
	//
	for s := p; s.IsQuantified(); depth++ {
		s = s.quant.body(variable{name: "_"})
	}
	//
	return depth
}

// Or returns the disjunction of this sentence with another.
func (p Sentence) Or(o Sentence) Sentence {
	return combine(disjunction, p, o)
}

// And returns the conjunction of this sentence with another.
func (p Sentence) And(o Sentence) Sentence {
	return combine(conjunction, p, o)
}

// Not returns the negation of this sentence.  Negating a quantified sentence
// switches to the dual quantifier and negates the body.
func (p Sentence) Not() Sentence {
	switch {
	case p.is(True):
		return SentenceFalse()
	case p.is(False):
		return SentenceTrue()
	case p.IsQuantified():
		q := p.quant
		//
		return Sentence{quant: &Quantification{q.quantifier.Dual(), q.domain, func(v variable) Sentence {
			return q.body(v).Not()
		}}}
	case p.IsAtomic():
		return p.delta.Not().Sentence()
	}
	// Invalid sentences remain invalid.
	return p
}

// Equals determines whether two sentences are the same.  Atomic sentences are
// compared as Delta0 formulas, which forces their evaluation when their
// symbols agree.  Quantified sentences are the same when they share a
// quantifier and a domain, and their bodies print identically.
func (p Sentence) Equals(o Sentence) bool {
	switch {
	case p.IsAtomic() && o.IsAtomic():
		return p.delta.Equals(*o.delta)
	case p.IsQuantified() && o.IsQuantified():
		return p.quant.quantifier == o.quant.quantifier && p.quant.domain == o.quant.domain &&
			p.Format(NewNameSupply()) == o.Format(NewNameSupply())
	}
	//
	return !p.IsValid() && !o.IsValid()
}

// Format renders this sentence using a given supply of variable names.  Each
// quantifier takes one fresh name from the supply, and its substitution is
// applied to a placeholder carrying that name.
func (p Sentence) Format(names *NameSupply) string {
	switch {
	case p.IsAtomic():
		return p.delta.symbol
	case p.IsQuantified():
		q := p.quant
		name := names.Fresh()
		body := q.body(variable{name: name})
		//
		return fmt.Sprintf("%s %s ∈ %s, %s", q.quantifier.Glyph(), name, q.domain, body.Format(names))
	}
	//
	return "<invalid>"
}

// String renders this sentence using the process-wide name supply.  Hence,
// variable names differ between calls.
func (p Sentence) String() string {
	return p.Format(names)
}

// is checks whether this sentence is atomic, and equal to a given formula.
func (p Sentence) is(delta Delta0) bool {
	return p.IsAtomic() && p.delta.Equals(delta)
}

type connective uint8

const (
	disjunction connective = iota
	conjunction
)

// combine two sentences with a given connective.  Constants are absorbed
// first.  Then, if either side is quantified, the connective is pushed into its
// body so the quantifier remains outermost.  Otherwise, the underlying Delta0
// formulas are combined.
func combine(op connective, a Sentence, b Sentence) Sentence {
	// Annihilator and identity of the connective
	zero, unit := True, False
	if op == conjunction {
		zero, unit = False, True
	}
	//
	switch {
	case a.is(zero) || b.is(zero):
		return zero.Sentence()
	case a.is(unit):
		return b
	case b.is(unit):
		return a
	case a.IsQuantified():
		q := a.quant
		//
		return Sentence{quant: &Quantification{q.quantifier, q.domain, func(v variable) Sentence {
			return combine(op, q.body(v), b)
		}}}
	case b.IsQuantified():
		return combine(op, b, a)
	case !a.IsAtomic() || !b.IsAtomic():
		return Sentence{}
	case op == disjunction:
		return a.delta.Or(*b.delta).Sentence()
	default:
		return a.delta.And(*b.delta).Sentence()
	}
}
