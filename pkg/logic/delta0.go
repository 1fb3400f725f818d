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

// Delta0 represents a quantifier-free formula.  Every formula carries a
// printable symbol alongside a deferred evaluator, where the latter is only
// invoked when the formula itself is evaluated.  Formulas are immutable, and
// combining them never forces the evaluation of their operands.
type Delta0 struct {
	symbol string
	truth  func() bool
}

// True is the canonical formula for logical truth.
var True = Delta0{"True", func() bool { return true }}

// False is the canonical formula for logical falsehood.
var False = Delta0{"False", func() bool { return false }}

// Atom constructs a leaf formula from a symbol and an evaluator.  The evaluator
// may be arbitrarily expensive, and is called every time the formula (or
// anything built from it) is evaluated.
func Atom(symbol string, truth func() bool) Delta0 {
	if truth == nil {
		panic("atom requires an evaluator")
	}
	//
	return Delta0{symbol, truth}
}

// Evaluate this formula, returning its truth value.
func (p Delta0) Evaluate() bool {
	return p.truth()
}

// Or returns the disjunction of this formula with another.  Logical truth
// absorbs a disjunction, whilst logical falsehood is its identity.
func (p Delta0) Or(o Delta0) Delta0 {
	switch {
	case p.IsTrue() || o.IsTrue():
		return True
	case p.IsFalse():
		return o
	case o.IsFalse():
		return p
	}
	//
	return Delta0{
		symbol: "(" + p.symbol + ") | (" + o.symbol + ")",
		truth:  func() bool { return p.truth() || o.truth() },
	}
}

// And returns the conjunction of this formula with another.  Logical falsehood
// absorbs a conjunction, whilst logical truth is its identity.
func (p Delta0) And(o Delta0) Delta0 {
	switch {
	case p.IsFalse() || o.IsFalse():
		return False
	case p.IsTrue():
		return o
	case o.IsTrue():
		return p
	}
	//
	return Delta0{
		symbol: "(" + p.symbol + ") & (" + o.symbol + ")",
		truth:  func() bool { return p.truth() && o.truth() },
	}
}

// Not returns the logical negation of this formula.
func (p Delta0) Not() Delta0 {
	switch {
	case p.IsTrue():
		return False
	case p.IsFalse():
		return True
	}
	//
	return Delta0{
		symbol: "~(" + p.symbol + ")",
		truth:  func() bool { return !p.truth() },
	}
}

// Equals determines whether two formulas have the same symbol and the same
// truth value.  Symbols are compared first, but when they agree both formulas
// are evaluated.  Thus, an equality check can run arbitrary client code.  Use
// SameSymbol for a purely structural comparison.
func (p Delta0) Equals(o Delta0) bool {
	return p.symbol == o.symbol && p.truth() == o.truth()
}

// SameSymbol determines whether two formulas print identically, without
// evaluating either of them.
func (p Delta0) SameSymbol(o Delta0) bool {
	return p.symbol == o.symbol
}

// IsTrue checks whether this formula equals the canonical truth formula.
func (p Delta0) IsTrue() bool {
	return p.Equals(True)
}

// IsFalse checks whether this formula equals the canonical falsehood formula.
func (p Delta0) IsFalse() bool {
	return p.Equals(False)
}

// Sentence lifts this formula into an atomic sentence.
func (p Delta0) Sentence() Sentence {
	return Sentence{delta: &p}
}

func (p Delta0) String() string {
	return p.symbol
}
