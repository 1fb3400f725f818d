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
	"sync"
	"testing"

	"github.com/consensys/go-fol/pkg/util/collection/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Parallel_01(t *testing.T) {
	sentences := []Sentence{existsEven(), forallEven(), minimum(), minimum().Not(), SentenceTrue(),
		existsEven().Or(forallEven()), Atomic(flag("p", false))}
	witnesses := []*Witnesses{ints(), ints(1), ints(2), ints(1, 3, 5, 7), ints(1, 3, 4, 7), ints(2, 4, 6), ints(2, 3, 4)}
	//
	for _, s := range sentences {
		for _, w := range witnesses {
			for _, workers := range []uint{1, 2, 4} {
				for _, batch := range []uint{0, 1, 3} {
					expected, err := Evaluate(s, w)
					require.NoError(t, err)
					actual, _, err := EvaluateParallel(s, w, workers, batch)
					require.NoError(t, err)
					assert.Equal(t, expected, actual)
				}
			}
		}
	}
}

func Test_Parallel_02(t *testing.T) {
	// A decision before an erroneous witness hides the error, as it does for
	// sequential evaluation.
	w := NewWitnesses().ProvideAny(Integers.Descriptor, func() enum.Enumerator[any] {
		return enum.Finite[any](1, 2, "three")
	})
	//
	val, _, err := EvaluateParallel(existsEven(), w, 4, 8)
	require.NoError(t, err)
	assert.True(t, val)
	//
	_, _, err = EvaluateParallel(forallEven(), w, 4, 8)
	require.NoError(t, err)
	//
	_, _, err = EvaluateParallel(existsEven().Not().Not().And(Atomic(flag("p", true))), w, 4, 8)
	require.NoError(t, err)
}

func Test_Parallel_03(t *testing.T) {
	w := NewWitnesses().ProvideAny(Integers.Descriptor, func() enum.Enumerator[any] {
		return enum.Finite[any](1, "two", 4)
	})
	//
	_, _, err := EvaluateParallel(existsEven(), w, 2, 2)
	assert.ErrorIs(t, err, ErrWitnessType)
}

func Test_Parallel_04(t *testing.T) {
	s := ExistsInt(func(n Term[int]) Sentence {
		return Atomic(Atom("boom", func() bool {
			if n.Value() == 3 {
				panic("boom")
			}

			return n.Value() > 10
		}))
	})
	//
	assert.PanicsWithValue(t, "boom", func() { _, _, _ = EvaluateParallel(s, ints(1, 2, 3, 4), 2, 4) })
	// Decided before the panicking witness
	val, _, err := EvaluateParallel(s, ints(11, 3), 2, 2)
	require.NoError(t, err)
	assert.True(t, val)
}

func Test_Parallel_05(t *testing.T) {
	// Unbounded enumerators are drawn in batches
	var (
		mux   sync.Mutex
		drawn int
	)
	//
	w := Provide(NewWitnesses(), Integers, func() enum.Enumerator[int] {
		return enum.Map(enum.From(1), func(i int) int {
			mux.Lock()
			drawn++
			mux.Unlock()

			return i
		})
	})
	//
	val, stats, err := EvaluateParallel(ExistsInt(func(n Term[int]) Sentence {
		return Atomic(Atom("big", func() bool { return n.Value() >= 10 }))
	}), w, 2, 4)
	//
	require.NoError(t, err)
	assert.True(t, val)
	assert.Equal(t, 12, drawn)
	assert.Equal(t, uint(10), stats.Witnesses)
}

func Test_Parallel_06(t *testing.T) {
	_, _, err := EvaluateParallel(Sentence{}, NewWitnesses(), 0, 0)
	assert.ErrorIs(t, err, ErrInvalidSentence)
	//
	_, _, err = EvaluateParallel(existsEven(), NewWitnesses(), 0, 0)
	assert.ErrorIs(t, err, ErrNoWitnesses)
}

func Test_NameSupply_01(t *testing.T) {
	var (
		wg    sync.WaitGroup
		mux   sync.Mutex
		names = NewNameSupply()
		seen  = make(map[string]bool)
	)
	//
	for i := 0; i < 100; i++ {
		wg.Add(1)
		//
		go func() {
			defer wg.Done()
			//
			name := names.Fresh()
			mux.Lock()
			seen[name] = true
			mux.Unlock()
		}()
	}
	//
	wg.Wait()
	assert.Len(t, seen, 100)
	assert.True(t, seen["x_1"])
	assert.True(t, seen["x_100"])
}

func Test_NameSupply_02(t *testing.T) {
	names := NewNameSupplyWithPrefix("v")
	assert.Equal(t, "v_1", names.Fresh())
	assert.Equal(t, "v_2", names.Fresh())
}
