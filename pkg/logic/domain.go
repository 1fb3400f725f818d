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

import "reflect"

// Descriptor identifies the domain of a quantified variable, independently of
// its element type.  Descriptors are comparable and are used both for display
// and for selecting the witnesses over which a quantifier is evaluated.  Two
// descriptors are the same domain when they share a name and an element type.
type Descriptor struct {
	name string
	typ  reflect.Type
}

// Name returns the display name of this domain.
func (d Descriptor) Name() string {
	return d.name
}

// Type returns the Go type of elements in this domain.
func (d Descriptor) Type() reflect.Type {
	return d.typ
}

// Admits checks whether a given value can be bound to a variable ranging over
// this domain.
func (d Descriptor) Admits(value any) bool {
	if d.typ == nil {
		return false
	} else if value == nil {
		// Only interface domains can hold nil
		return d.typ.Kind() == reflect.Interface
	}
	//
	// Witnesses are converted by type assertion, so concrete domains need an
	// exact match.
	if d.typ.Kind() == reflect.Interface {
		return reflect.TypeOf(value).Implements(d.typ)
	}
	//
	return reflect.TypeOf(value) == d.typ
}

func (d Descriptor) String() string {
	return d.name
}

// Domain is a descriptor carrying the element type of the domain, such that
// substitutions over the domain can be typed.
type Domain[T any] struct {
	Descriptor
}

// NewDomain constructs a domain with a given display name, ranging over values
// of type T.
func NewDomain[T any](name string) Domain[T] {
	return Domain[T]{Descriptor{name, reflect.TypeOf((*T)(nil)).Elem()}}
}

// Integers is the default domain for quantified variables.
var Integers = NewDomain[int]("ℤ")
