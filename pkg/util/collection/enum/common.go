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

// Enumerator abstracts the process of iterating over a sequence of witnesses.
// Enumerators are consumed as they are visited and may be unbounded.
type Enumerator[T any] interface {
	// Check whether or not there are any items remaining to visit.
	HasNext() bool

	// Get the next item, and advanced the enumerator.
	Next() T
}

// Predicate abstracts the notion of a function which identifies something.
type Predicate[T any] func(T) bool

// Find returns the index of the first item matching a given predicate, or
// return false if no match is found.  This drains the enumerator up to (and
// including) the matching item.  Find does not terminate on an unbounded
// enumerator without a match.
func Find[T any](enum Enumerator[T], predicate Predicate[T]) (uint, bool) {
	index := uint(0)

	for enum.HasNext() {
		if predicate(enum.Next()) {
			return index, true
		}

		index++
	}
	// Failed to find it
	return 0, false
}

// Collect allocates a new array containing all items of this enumerator.
// This drains the enumerator.
func Collect[T any](enum Enumerator[T]) []T {
	var items = make([]T, 0)
	//
	for enum.HasNext() {
		items = append(items, enum.Next())
	}
	//
	return items
}
