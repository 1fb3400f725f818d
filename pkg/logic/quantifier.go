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

// Quantifier identifies how a quantified sentence ranges over its domain.
type Quantifier uint8

const (
	// EXISTS holds when at least one witness satisfies the body.
	EXISTS Quantifier = iota + 1
	// FORALL holds when no witness falsifies the body.
	FORALL
)

// Glyph returns the usual logical symbol for this quantifier.
func (q Quantifier) Glyph() string {
	switch q {
	case EXISTS:
		return "∃"
	case FORALL:
		return "∀"
	default:
		return "?"
	}
}

// Dual returns the quantifier obtained by pushing a negation through this one
// (i.e. ¬∃x.φ ≡ ∀x.¬φ and vice-versa).  Unknown quantifiers are returned
// unchanged.
func (q Quantifier) Dual() Quantifier {
	switch q {
	case EXISTS:
		return FORALL
	case FORALL:
		return EXISTS
	default:
		return q
	}
}

// IsValid checks whether this is a known quantifier.
func (q Quantifier) IsValid() bool {
	return q == EXISTS || q == FORALL
}

func (q Quantifier) String() string {
	switch q {
	case EXISTS:
		return "exists"
	case FORALL:
		return "forall"
	default:
		return fmt.Sprintf("quantifier(%d)", uint8(q))
	}
}
