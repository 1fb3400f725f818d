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
	"fmt"

	"github.com/consensys/go-fol/pkg/util/collection/enum"
)

// WitnessSource supplies the witnesses over which quantifiers are evaluated.
// Witnesses are requested once for every quantifier instance visited, given
// the quantifier's domain and its nesting depth (where the outermost
// quantifier has depth 0).  Each request must return a fresh enumerator.
// Sources used for parallel evaluation must be safe for concurrent use.
type WitnessSource interface {
	Witnesses(domain Descriptor, depth uint) (enum.Enumerator[any], error)
}

// WitnessFunc adapts a function into a WitnessSource.
type WitnessFunc func(domain Descriptor, depth uint) (enum.Enumerator[any], error)

// Witnesses implementation for WitnessSource interface.
func (f WitnessFunc) Witnesses(domain Descriptor, depth uint) (enum.Enumerator[any], error) {
	return f(domain, depth)
}

// Witnesses is a WitnessSource which holds witnesses for each domain, and
// (optionally) for specific nesting levels.  A level-specific supply takes
// precedence over the supply for its domain, which allows nested quantifiers
// over the same domain to range over different witnesses.  Once populated, a
// Witnesses is safe for concurrent use.
type Witnesses struct {
	domains map[Descriptor]func() enum.Enumerator[any]
	levels  map[uint]levelSupply
}

type levelSupply struct {
	domain    Descriptor
	enumerate func() enum.Enumerator[any]
}

// NewWitnesses constructs an empty witness source.
func NewWitnesses() *Witnesses {
	return &Witnesses{
		domains: make(map[Descriptor]func() enum.Enumerator[any]),
		levels:  make(map[uint]levelSupply),
	}
}

// Provide witnesses for all quantifiers over a given domain.  The enumerate
// function is called once for every quantifier instance evaluated.
func Provide[T any](w *Witnesses, domain Domain[T], enumerate func() enum.Enumerator[T]) *Witnesses {
	return w.ProvideAny(domain.Descriptor, erase(enumerate))
}

// ProvideValues provides a fixed set of witnesses for all quantifiers over a
// given domain.
func ProvideValues[T any](w *Witnesses, domain Domain[T], values ...T) *Witnesses {
	return Provide(w, domain, func() enum.Enumerator[T] { return enum.Finite(values...) })
}

// ProvideAt provides witnesses for the quantifier(s) at a given nesting depth,
// which must range over the given domain.
func ProvideAt[T any](w *Witnesses, depth uint, domain Domain[T], enumerate func() enum.Enumerator[T]) *Witnesses {
	return w.ProvideAnyAt(depth, domain.Descriptor, erase(enumerate))
}

// ProvideValuesAt provides a fixed set of witnesses for the quantifier(s) at a
// given nesting depth.
func ProvideValuesAt[T any](w *Witnesses, depth uint, domain Domain[T], values ...T) *Witnesses {
	return ProvideAt(w, depth, domain, func() enum.Enumerator[T] { return enum.Finite(values...) })
}

// ProvideAny provides untyped witnesses for a given domain.  Witnesses which
// are not elements of the domain are reported during evaluation.
func (p *Witnesses) ProvideAny(domain Descriptor, enumerate func() enum.Enumerator[any]) *Witnesses {
	p.domains[domain] = enumerate
	return p
}

// ProvideAnyAt provides untyped witnesses for a given nesting depth.
func (p *Witnesses) ProvideAnyAt(depth uint, domain Descriptor, enumerate func() enum.Enumerator[any]) *Witnesses {
	p.levels[depth] = levelSupply{domain, enumerate}
	return p
}

// Witnesses implementation for WitnessSource interface.
func (p *Witnesses) Witnesses(domain Descriptor, depth uint) (enum.Enumerator[any], error) {
	if level, ok := p.levels[depth]; ok {
		if level.domain != domain {
			return nil, fmt.Errorf("%w: depth %d supplies %s, quantifier ranges over %s", ErrDomainMismatch,
				depth, level.domain, domain)
		}
		//
		return level.enumerate(), nil
	} else if enumerate, ok := p.domains[domain]; ok {
		return enumerate(), nil
	}
	//
	return nil, fmt.Errorf("%w %s (depth %d)", ErrNoWitnesses, domain, depth)
}

func erase[T any](enumerate func() enum.Enumerator[T]) func() enum.Enumerator[any] {
	return func() enum.Enumerator[any] {
		return enum.Erase(enumerate())
	}
}
