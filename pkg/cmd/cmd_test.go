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
package cmd

import (
	"bytes"
	"testing"

	"github.com/consensys/go-fol/pkg/catalog"
	"github.com/consensys/go-fol/pkg/config"
	"github.com/consensys/go-fol/pkg/logic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_List_01(t *testing.T) {
	var out bytes.Buffer
	//
	listEntries(&out, catalog.All())
	assert.Contains(t, out.String(), "exists-even ")
	assert.Contains(t, out.String(), "some integer is even\n")
}

func Test_Show_01(t *testing.T) {
	var out bytes.Buffer
	//
	entries, err := lookupEntries([]string{"minimum"})
	require.NoError(t, err)
	//
	showEntries(&out, entries, "x", false)
	showEntries(&out, entries, "v", true)
	assert.Equal(t, "minimum: ∃ x_1 ∈ ℤ, ∀ x_2 ∈ ℤ, x_1<=x_2\nminimum: ∀ v_1 ∈ ℤ, ∃ v_2 ∈ ℤ, ~(v_1<=v_2)\n",
		out.String())
}

func Test_Lookup_01(t *testing.T) {
	entries, err := lookupEntries(nil)
	require.NoError(t, err)
	assert.Len(t, entries, len(catalog.All()))
	//
	_, err = lookupEntries([]string{"exists-even", "nothing"})
	assert.ErrorContains(t, err, "nothing")
}

func Test_Eval_01(t *testing.T) {
	var out bytes.Buffer
	//
	entries, err := lookupEntries([]string{"exists-even", "forall-even", "minimum"})
	require.NoError(t, err)
	//
	errs := evalEntries(&out, entries, evalConfig{})
	assert.Empty(t, errs)
	assert.Equal(t, "exists-even: true\nforall-even: false\nminimum: true\n", out.String())
}

func Test_Eval_02(t *testing.T) {
	var out bytes.Buffer
	//
	entries, err := lookupEntries([]string{"exists-even", "forall-even", "minimum"})
	require.NoError(t, err)
	//
	errs := evalEntries(&out, entries, evalConfig{parallel: true, workers: 2, batch: 2})
	assert.Empty(t, errs)
	assert.Equal(t, "exists-even: true\nforall-even: false\nminimum: true\n", out.String())
}

func Test_Eval_03(t *testing.T) {
	// Witnesses from a file apply to every sentence, and sentences over
	// other domains fail.
	var out bytes.Buffer
	//
	cfg, err := config.Parse([]byte("domains:\n  ℤ: {values: [1, 3, 5, 7]}\n"))
	require.NoError(t, err)
	witnesses, err := cfg.Witnesses()
	require.NoError(t, err)
	entries, err := lookupEntries([]string{"exists-even", "excluded-middle", "forall-even"})
	require.NoError(t, err)
	//
	errs := evalEntries(&out, entries, evalConfig{witnesses: witnesses})
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], logic.ErrNoWitnesses)
	assert.ErrorContains(t, errs[0], "excluded-middle")
	assert.Equal(t, "exists-even: false\nforall-even: false\n", out.String())
}

func Test_Eval_04(t *testing.T) {
	var out bytes.Buffer
	//
	entries, err := lookupEntries([]string{"exists-even"})
	require.NoError(t, err)
	//
	errs := evalEntries(&out, entries, evalConfig{stats: true, ansiEscapes: true})
	assert.Empty(t, errs)
	assert.Equal(t, "exists-even: \033[32mtrue\033[0m (1 quantifiers, 1 witnesses, 1 atoms)\n", out.String())
}

func Test_Verdict_01(t *testing.T) {
	assert.Equal(t, "true", verdict(true, false))
	assert.Equal(t, "false", verdict(false, false))
	assert.Equal(t, ansiRed+"false"+ansiReset, verdict(false, true))
}
