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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Delta0_01(t *testing.T) {
	assert.Equal(t, "True", True.String())
	assert.Equal(t, "False", False.String())
	assert.True(t, True.Evaluate())
	assert.False(t, False.Evaluate())
}

func Test_Delta0_02(t *testing.T) {
	p := flag("p", true)
	// Truth absorbs disjunction
	assert.True(t, p.Or(True).Equals(True))
	assert.True(t, True.Or(p).Equals(True))
	// Falsehood is identity for disjunction
	assert.True(t, p.Or(False).Equals(p))
	assert.True(t, False.Or(p).Equals(p))
}

func Test_Delta0_03(t *testing.T) {
	p := flag("p", true)
	// Falsehood absorbs conjunction
	assert.True(t, p.And(False).Equals(False))
	assert.True(t, False.And(p).Equals(False))
	// Truth is identity for conjunction
	assert.True(t, p.And(True).Equals(p))
	assert.True(t, True.And(p).Equals(p))
}

func Test_Delta0_04(t *testing.T) {
	assert.True(t, True.Not().Equals(False))
	assert.True(t, False.Not().Equals(True))
}

func Test_Delta0_05(t *testing.T) {
	p, q := flag("p", true), flag("q", false)
	//
	assert.Equal(t, "(p) | (q)", p.Or(q).String())
	assert.Equal(t, "(p) & (q)", p.And(q).String())
	assert.Equal(t, "~(p)", p.Not().String())
	assert.Equal(t, "(~(p)) | ((p) & (q))", p.Not().Or(p.And(q)).String())
}

func Test_Delta0_06(t *testing.T) {
	for _, pv := range []bool{false, true} {
		for _, qv := range []bool{false, true} {
			p, q := flag("p", pv), flag("q", qv)
			//
			assert.Equal(t, pv || qv, p.Or(q).Evaluate())
			assert.Equal(t, pv && qv, p.And(q).Evaluate())
			assert.Equal(t, !pv, p.Not().Evaluate())
			// De Morgan
			assert.Equal(t, p.Or(q).Not().Evaluate(), p.Not().And(q.Not()).Evaluate())
			assert.Equal(t, p.And(q).Not().Evaluate(), p.Not().Or(q.Not()).Evaluate())
			// Double negation
			assert.Equal(t, pv, p.Not().Not().Evaluate())
		}
	}
}

func Test_Delta0_07(t *testing.T) {
	// Combining formulas never evaluates them.
	p, pcount := counted("p", true)
	q, qcount := counted("q", false)
	r := p.Or(q).And(p.Not()).Or(q.And(True)).Not()
	//
	assert.Equal(t, 0, *pcount)
	assert.Equal(t, 0, *qcount)
	// But evaluation does
	r.Evaluate()
	assert.Positive(t, *pcount)
}

func Test_Delta0_08(t *testing.T) {
	// Disjunction short-circuits.
	p, _ := counted("p", true)
	q, qcount := counted("q", false)
	//
	assert.True(t, p.Or(q).Evaluate())
	assert.Equal(t, 0, *qcount)
}

func Test_Delta0_09(t *testing.T) {
	// Same symbol, different truth.
	p, q := flag("p", true), flag("p", false)
	assert.True(t, p.SameSymbol(q))
	assert.False(t, p.Equals(q))
	// Different symbol, same truth.
	assert.False(t, flag("p", true).Equals(flag("q", true)))
}

func Test_Delta0_10(t *testing.T) {
	// A formula which prints as True but does not hold is not the canonical
	// truth formula.
	impostor := flag("True", false)
	assert.False(t, impostor.IsTrue())
	assert.Equal(t, "(True) | (p)", impostor.Or(flag("p", true)).String())
}

func Test_Delta0_11(t *testing.T) {
	assert.Panics(t, func() { Atom("p", nil) })
}

func Test_Delta0_12(t *testing.T) {
	s := Atomic(flag("p", true))
	require.True(t, s.IsAtomic())
	//
	d, ok := s.Delta()
	assert.True(t, ok)
	assert.Equal(t, "p", d.String())
}

// flag constructs an atom with a fixed truth value.
func flag(symbol string, value bool) Delta0 {
	return Atom(symbol, func() bool { return value })
}

// counted constructs an atom which counts how often it is evaluated.
func counted(symbol string, value bool) (Delta0, *int) {
	var count int
	//
	return Atom(symbol, func() bool {
		count++
		return value
	}), &count
}

// even is the predicate n % 2 == 0
func even(n Term[int]) Delta0 {
	return Atom(fmt.Sprintf("even(%s)", n), func() bool { return n.Value()%2 == 0 })
}

// lessEq is the predicate x <= y
func lessEq(x Term[int], y Term[int]) Delta0 {
	return Atom(fmt.Sprintf("%s<=%s", x, y), func() bool { return x.Value() <= y.Value() })
}
