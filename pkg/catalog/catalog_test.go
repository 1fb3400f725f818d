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
package catalog

import (
	"testing"

	"github.com/consensys/go-fol/pkg/domain"
	"github.com/consensys/go-fol/pkg/logic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Catalog_01(t *testing.T) {
	expected := map[string]bool{
		"exists-even":     true,
		"forall-even":     false,
		"minimum":         true,
		"no-maximum":      false,
		"even-divisible":  true,
		"large-natural":   true,
		"excluded-middle": true,
		"field-roots":     false,
	}
	//
	for name, value := range expected {
		e, ok := Lookup(name)
		require.True(t, ok, name)
		//
		actual, err := logic.Evaluate(e.Sentence, e.Witnesses())
		require.NoError(t, err, name)
		assert.Equal(t, value, actual, name)
	}
}

func Test_Catalog_02(t *testing.T) {
	// Agrees with checking each of the small elements directly
	expected := false
	//
	for i := uint64(1); i < 8; i++ {
		x := domain.FieldElement(i)
		expected = expected || x.Legendre() < 0
	}
	//
	e, _ := Lookup("field-non-residue")
	actual, err := logic.Evaluate(e.Sentence, e.Witnesses())
	require.NoError(t, err)
	assert.Equal(t, expected, actual)
}

func Test_Catalog_03(t *testing.T) {
	seen := make(map[string]bool)
	//
	for _, e := range All() {
		assert.False(t, seen[e.Name], e.Name)
		assert.NotEmpty(t, e.Description)
		assert.True(t, e.Sentence.IsValid())
		seen[e.Name] = true
	}
	//
	_, ok := Lookup("nothing")
	assert.False(t, ok)
}

func Test_Catalog_04(t *testing.T) {
	e, _ := Lookup("even-divisible")
	assert.Equal(t, "∀ x_1 ∈ ℤ, (~(even(x_1))) | (2|x_1)", e.Sentence.Format(logic.NewNameSupply()))
	//
	e, _ = Lookup("field-roots")
	assert.Equal(t, "∀ x_1 ∈ 𝔽, ∃ x_2 ∈ 𝔽, x_2²=x_1", e.Sentence.Format(logic.NewNameSupply()))
}
