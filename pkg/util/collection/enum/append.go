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

// Append constructs an enumerator from an array of zero or more enumerators.
// Items are drawn from each enumerator in turn, so any enumerator following an
// unbounded one is never reached.
func Append[T any](enumerators ...Enumerator[T]) Enumerator[T] {
	return &appendEnumerator[T]{enumerators}
}

type appendEnumerator[T any] struct {
	enums []Enumerator[T]
}

// HasNext checks whether or not there are any items remaining to visit.
//
//nolint:revive
func (p *appendEnumerator[T]) HasNext() bool {
	// Drop exhausted enumerators
	for len(p.enums) > 0 && !p.enums[0].HasNext() {
		p.enums = p.enums[1:]
	}
	//
	return len(p.enums) > 0
}

// Next returns the next item, and advance the enumerator.
//
//nolint:revive
func (p *appendEnumerator[T]) Next() T {
	if !p.HasNext() {
		panic("enumerator exhausted")
	}
	//
	return p.enums[0].Next()
}
