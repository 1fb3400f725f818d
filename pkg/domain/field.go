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
package domain

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/go-fol/pkg/logic"
	"github.com/consensys/go-fol/pkg/util/collection/enum"
)

// Field is the scalar field of the BLS12-377 curve.
var Field = logic.NewDomain[fr.Element]("𝔽")

// FieldElement constructs the field element corresponding to a given value.
func FieldElement(value uint64) fr.Element {
	return fr.NewElement(value)
}

// FieldElements supplies the first n field elements, starting from zero.
func FieldElements(n uint64) func() enum.Enumerator[fr.Element] {
	return func() enum.Enumerator[fr.Element] {
		return enum.Map(enum.Range[uint64](0, n), fr.NewElement)
	}
}

// FieldRange supplies the field elements in the half-open range [from .. to).
func FieldRange(from uint64, to uint64) func() enum.Enumerator[fr.Element] {
	return func() enum.Enumerator[fr.Element] {
		return enum.Map(enum.Range(from, to), fr.NewElement)
	}
}

// FieldEqual holds when x = y.
func FieldEqual(x logic.Term[fr.Element], y logic.Term[fr.Element]) logic.Delta0 {
	return logic.Atom(fmt.Sprintf("%s=%s", x, y), func() bool {
		xv, yv := x.Value(), y.Value()
		return xv.Equal(&yv)
	})
}

// FieldIsZero holds when x = 0.
func FieldIsZero(x logic.Term[fr.Element]) logic.Delta0 {
	return logic.Atom(fmt.Sprintf("%s=0", x), func() bool {
		xv := x.Value()
		return xv.IsZero()
	})
}

// FieldSquareOf holds when y² = x.
func FieldSquareOf(y logic.Term[fr.Element], x logic.Term[fr.Element]) logic.Delta0 {
	return logic.Atom(fmt.Sprintf("%s²=%s", y, x), func() bool {
		var square fr.Element
		//
		xv, yv := x.Value(), y.Value()
		square.Square(&yv)
		//
		return square.Equal(&xv)
	})
}

// FieldInverseOf holds when x·y = 1.
func FieldInverseOf(y logic.Term[fr.Element], x logic.Term[fr.Element]) logic.Delta0 {
	return logic.Atom(fmt.Sprintf("%s·%s=1", x, y), func() bool {
		var product fr.Element
		//
		xv, yv := x.Value(), y.Value()
		product.Mul(&xv, &yv)
		//
		return product.IsOne()
	})
}

// FieldIsSquare holds when x is a quadratic residue (or zero).  Unlike
// quantifying over the field, this is decided directly using the Legendre
// symbol.
func FieldIsSquare(x logic.Term[fr.Element]) logic.Delta0 {
	return logic.Atom(fmt.Sprintf("square(%s)", x), func() bool {
		xv := x.Value()
		return xv.Legendre() >= 0
	})
}
