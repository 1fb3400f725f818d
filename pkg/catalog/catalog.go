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
// Package catalog holds a collection of named sentences, together with the
// witnesses they are normally evaluated against.
package catalog

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/go-fol/pkg/domain"
	"github.com/consensys/go-fol/pkg/logic"
)

// Entry is a named sentence.
type Entry struct {
	// Name identifies this entry.
	Name string
	// Description is a one-line summary of the sentence.
	Description string
	// Sentence being described.
	Sentence logic.Sentence
	// Witnesses constructs the default witnesses for this sentence.
	Witnesses func() *logic.Witnesses
}

// All returns every entry of the catalogue, in a fixed order.
func All() []Entry {
	return []Entry{
		{"exists-even", "some integer is even", existsEven(), smallInts},
		{"forall-even", "every integer is even", forallEven(), smallInts},
		{"minimum", "some integer is below every integer", minimum(), smallInts},
		{"no-maximum", "every integer is below some integer", noMaximum(), smallInts},
		{"even-divisible", "every even integer is divisible by two", evenDivisible(), smallInts},
		{"large-natural", "some natural number is at least 100 (over all naturals)", largeNatural(), allNaturals},
		{"excluded-middle", "every truth value either holds or does not", excludedMiddle(), truthValues},
		{"field-roots", "every field element has a square root", fieldRoots(), smallField},
		{"field-non-residue", "some non-zero field element is not a square", fieldNonResidue(), smallField},
	}
}

// Lookup the entry with a given name.
func Lookup(name string) (Entry, bool) {
	for _, e := range All() {
		if e.Name == name {
			return e, true
		}
	}
	//
	return Entry{}, false
}

// ============================================================================
// Sentences
// ============================================================================

func existsEven() logic.Sentence {
	return logic.ExistsInt(func(n logic.Term[int]) logic.Sentence {
		return logic.Atomic(domain.Even(n))
	})
}

func forallEven() logic.Sentence {
	return logic.ForAllInt(func(n logic.Term[int]) logic.Sentence {
		return logic.Atomic(domain.Even(n))
	})
}

func minimum() logic.Sentence {
	return logic.ExistsInt(func(x logic.Term[int]) logic.Sentence {
		return logic.ForAllInt(func(y logic.Term[int]) logic.Sentence {
			return logic.Atomic(domain.LessEq(x, y))
		})
	})
}

func noMaximum() logic.Sentence {
	return logic.ForAllInt(func(x logic.Term[int]) logic.Sentence {
		return logic.ExistsInt(func(y logic.Term[int]) logic.Sentence {
			return logic.Atomic(domain.Less(x, y))
		})
	})
}

func evenDivisible() logic.Sentence {
	two := logic.Const(2)
	//
	return logic.ForAllInt(func(n logic.Term[int]) logic.Sentence {
		return logic.Implies(logic.Atomic(domain.Even(n)), logic.Atomic(domain.Divides(two, n)))
	})
}

func largeNatural() logic.Sentence {
	hundred := logic.Const[uint](100)
	//
	return logic.Exists(domain.Naturals, func(n logic.Term[uint]) logic.Sentence {
		return logic.Atomic(domain.LessEq(hundred, n))
	})
}

func excludedMiddle() logic.Sentence {
	return logic.ForAll(domain.Booleans, func(b logic.Term[bool]) logic.Sentence {
		p := logic.Atomic(domain.Holds(b))
		return p.Or(p.Not())
	})
}

func fieldRoots() logic.Sentence {
	return logic.ForAll(domain.Field, func(x logic.Term[fr.Element]) logic.Sentence {
		return logic.Exists(domain.Field, func(y logic.Term[fr.Element]) logic.Sentence {
			return logic.Atomic(domain.FieldSquareOf(y, x))
		})
	})
}

func fieldNonResidue() logic.Sentence {
	return logic.Exists(domain.Field, func(x logic.Term[fr.Element]) logic.Sentence {
		return logic.Atomic(domain.FieldIsZero(x).Or(domain.FieldIsSquare(x)).Not())
	})
}

// ============================================================================
// Witnesses
// ============================================================================

func smallInts() *logic.Witnesses {
	return logic.Provide(logic.NewWitnesses(), domain.Integers, domain.IntRange(0, 5))
}

func allNaturals() *logic.Witnesses {
	return logic.Provide(logic.NewWitnesses(), domain.Naturals, domain.AllNaturals)
}

func truthValues() *logic.Witnesses {
	return logic.Provide(logic.NewWitnesses(), domain.Booleans, domain.TruthValues)
}

func smallField() *logic.Witnesses {
	return logic.Provide(logic.NewWitnesses(), domain.Field, domain.FieldElements(8))
}
