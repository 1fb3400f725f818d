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
// Package domain provides the standard domains over which sentences are
// quantified, along with predicates and witness supplies for each.
package domain

import (
	"cmp"
	"fmt"

	"github.com/consensys/go-fol/pkg/logic"
	"github.com/consensys/go-fol/pkg/util/collection/enum"
)

// Integers is the domain of (machine) integers.
var Integers = logic.Integers

// Naturals is the domain of natural numbers.
var Naturals = logic.NewDomain[uint]("ℕ")

// Booleans is the domain of truth values.
var Booleans = logic.NewDomain[bool]("𝔹")

// IntRange supplies the integers in the half-open range [from .. to).
func IntRange(from int, to int) func() enum.Enumerator[int] {
	return func() enum.Enumerator[int] {
		return enum.Range(from, to)
	}
}

// NatRange supplies the natural numbers in the half-open range [from .. to).
func NatRange(from uint, to uint) func() enum.Enumerator[uint] {
	return func() enum.Enumerator[uint] {
		return enum.Range(from, to)
	}
}

// AllNaturals supplies every natural number in ascending order.  Quantifiers
// over this supply only terminate when a decisive witness exists.
func AllNaturals() enum.Enumerator[uint] {
	return enum.From[uint](0)
}

// TruthValues supplies both truth values.
func TruthValues() enum.Enumerator[bool] {
	return enum.Finite(false, true)
}

// Even holds when n is divisible by two.
func Even(n logic.Term[int]) logic.Delta0 {
	return logic.Atom(fmt.Sprintf("even(%s)", n), func() bool {
		return n.Value()%2 == 0
	})
}

// Divides holds when d divides n.  Zero divides only itself.
func Divides(d logic.Term[int], n logic.Term[int]) logic.Delta0 {
	return logic.Atom(fmt.Sprintf("%s|%s", d, n), func() bool {
		if d.Value() == 0 {
			return n.Value() == 0
		}
		//
		return n.Value()%d.Value() == 0
	})
}

// LessEq holds when x <= y.
func LessEq[T cmp.Ordered](x logic.Term[T], y logic.Term[T]) logic.Delta0 {
	return logic.Atom(fmt.Sprintf("%s<=%s", x, y), func() bool {
		return x.Value() <= y.Value()
	})
}

// Less holds when x < y.
func Less[T cmp.Ordered](x logic.Term[T], y logic.Term[T]) logic.Delta0 {
	return logic.Atom(fmt.Sprintf("%s<%s", x, y), func() bool {
		return x.Value() < y.Value()
	})
}

// Equal holds when x == y.
func Equal[T comparable](x logic.Term[T], y logic.Term[T]) logic.Delta0 {
	return logic.Atom(fmt.Sprintf("%s=%s", x, y), func() bool {
		return x.Value() == y.Value()
	})
}

// Holds lifts a boolean variable into a formula.
func Holds(b logic.Term[bool]) logic.Delta0 {
	return logic.Atom(b.String(), b.Value)
}
