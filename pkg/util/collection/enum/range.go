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

// Integer captures the built-in integer types over which ranges can be
// enumerated.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Range constructs an enumerator over the half-open range [start .. end).  An
// empty enumerator is returned when end <= start.
func Range[T Integer](start T, end T) Enumerator[T] {
	return &rangeEnumerator[T]{start, end, true, false}
}

// From constructs an unbounded enumerator start, start+1, start+2, ... which
// only ends if the underlying integer type overflows.
func From[T Integer](start T) Enumerator[T] {
	return &rangeEnumerator[T]{start, start, false, false}
}

type rangeEnumerator[T Integer] struct {
	index T
	end   T
	// Indicates whether end is meaningful.
	bounded bool
	// Set when an unbounded enumerator wraps around.
	wrapped bool
}

// HasNext checks whether or not there are any items remaining to visit.
//
//nolint:revive
func (p *rangeEnumerator[T]) HasNext() bool {
	if p.bounded {
		return p.index < p.end
	}
	//
	return !p.wrapped
}

// Next returns the next item, and advance the enumerator.
//
//nolint:revive
func (p *rangeEnumerator[T]) Next() T {
	next := p.index
	p.index++
	//
	if !p.bounded && p.index < next {
		p.wrapped = true
	}
	//
	return next
}
