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

import "fmt"

// Term is what a substitution receives for its quantified variable.  During
// evaluation a term is bound to a witness drawn from the variable's domain.
// During printing, however, a term is only a placeholder carrying the fresh
// name chosen for the variable, and no domain element is ever materialised.
// Predicates should therefore build their symbols from String(), and only
// call Value() inside their (deferred) evaluators.
type Term[T any] struct {
	name  string
	value T
	bound bool
}

// Const constructs a term bound to a given value.
func Const[T any](value T) Term[T] {
	return Term[T]{"", value, true}
}

// Placeholder constructs an unbound term standing for a named variable.
func Placeholder[T any](name string) Term[T] {
	var empty T
	return Term[T]{name, empty, false}
}

// IsPlaceholder checks whether this term stands for a named variable, rather
// than being bound to a value.
func (t Term[T]) IsPlaceholder() bool {
	return !t.bound
}

// Name returns the variable name of a placeholder, or the empty string for a
// bound term.
func (t Term[T]) Name() string {
	return t.name
}

// Value returns the witness bound to this term, or panics for a placeholder.
func (t Term[T]) Value() T {
	if !t.bound {
		panic(fmt.Sprintf("placeholder %s has no value", t.name))
	}
	//
	return t.value
}

func (t Term[T]) String() string {
	if !t.bound {
		return t.name
	} else if s, ok := any(&t.value).(fmt.Stringer); ok {
		// Covers values whose String method has a pointer receiver.
		return s.String()
	}
	//
	return fmt.Sprint(t.value)
}

// variable is the untyped form of a term, as passed through a quantification.
type variable struct {
	name  string
	value any
	bound bool
}

func termOf[T any](v variable) Term[T] {
	if !v.bound {
		return Placeholder[T](v.name)
	} else if v.value == nil {
		var empty T
		return Const(empty)
	}
	//
	return Const(v.value.(T))
}
