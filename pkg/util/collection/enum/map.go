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
package enum

// Map constructs an enumerator which applies a given projection to each item
// of another enumerator, as it is visited.
func Map[S, T any](enum Enumerator[S], projection func(S) T) Enumerator[T] {
	return &mapEnumerator[S, T]{enum, projection}
}

// Erase converts an enumerator over a specific type into one over values of
// any type.
func Erase[T any](enum Enumerator[T]) Enumerator[any] {
	return Map(enum, func(item T) any { return item })
}

type mapEnumerator[S, T any] struct {
	enum       Enumerator[S]
	projection func(S) T
}

// HasNext checks whether or not there are any items remaining to visit.
//
//nolint:revive
func (p *mapEnumerator[S, T]) HasNext() bool {
	return p.enum.HasNext()
}

// Next returns the next item, and advance the enumerator.
//
//nolint:revive
func (p *mapEnumerator[S, T]) Next() T {
	return p.projection(p.enum.Next())
}
