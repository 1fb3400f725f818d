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

// Take constructs an enumerator which yields at most n items from a given
// enumerator.  This is the usual way to bound an unbounded enumerator.
func Take[T any](n uint, enum Enumerator[T]) Enumerator[T] {
	return &takeEnumerator[T]{n, enum}
}

type takeEnumerator[T any] struct {
	// Number of items left to take
	count uint
	enum  Enumerator[T]
}

// HasNext checks whether or not there are any items remaining to visit.
//
//nolint:revive
func (p *takeEnumerator[T]) HasNext() bool {
	return p.count > 0 && p.enum.HasNext()
}

// Next returns the next item, and advance the enumerator.
//
//nolint:revive
func (p *takeEnumerator[T]) Next() T {
	p.count--
	return p.enum.Next()
}
