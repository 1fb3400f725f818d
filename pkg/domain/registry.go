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
package domain

import (
	"fmt"
	"math"
	"math/big"
	"slices"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/go-fol/pkg/logic"
	"github.com/consensys/go-fol/pkg/util/collection/enum"
)

// Entry describes a standard domain, and how witnesses for it are read from
// untyped values (e.g. those decoded from a configuration file).
type Entry struct {
	// Domain being described
	Descriptor logic.Descriptor
	// Convert an untyped value into an element of this domain.
	parse func(any) (any, error)
	// Supply the elements in a half-open range, or fail if the domain is not
	// ordered.
	span func(int64, int64) (func() enum.Enumerator[any], error)
}

// Parse converts an untyped value into an element of this domain.
func (e Entry) Parse(value any) (any, error) {
	return e.parse(value)
}

// Span supplies the elements of this domain in the half-open range [from ..
// to).
func (e Entry) Span(from int64, to int64) (func() enum.Enumerator[any], error) {
	if to < from {
		return nil, fmt.Errorf("empty range %d..%d for %s", from, to, e.Descriptor)
	}
	//
	return e.span(from, to)
}

var registry = map[string]Entry{
	Integers.Name(): {Integers.Descriptor, parseInt, spanInt},
	Naturals.Name(): {Naturals.Descriptor, parseNat, spanNat},
	Booleans.Name(): {Booleans.Descriptor, parseBool, spanBool},
	Field.Name():    {Field.Descriptor, parseField, spanField},
}

// Lookup the standard domain with a given name.
func Lookup(name string) (Entry, bool) {
	e, ok := registry[name]
	return e, ok
}

// Names returns the names of all standard domains, in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	//
	for n := range registry {
		names = append(names, n)
	}
	//
	slices.Sort(names)

	return names
}

func parseInt(value any) (any, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		if v >= math.MinInt && v <= math.MaxInt {
			return int(v), nil
		}
	case uint64:
		if v <= math.MaxInt {
			return int(v), nil
		}
	default:
		return nil, fmt.Errorf("%v (%T) is not an integer", value, value)
	}
	//
	return nil, fmt.Errorf("%v is out of range for %s", value, Integers)
}

func spanInt(from int64, to int64) (func() enum.Enumerator[any], error) {
	return func() enum.Enumerator[any] {
		return enum.Erase(enum.Range(int(from), int(to)))
	}, nil
}

func parseNat(value any) (any, error) {
	switch v := value.(type) {
	case int:
		if v >= 0 {
			return uint(v), nil
		}
	case int64:
		if v >= 0 && uint64(v) <= math.MaxUint {
			return uint(v), nil
		}
	case uint64:
		if v <= math.MaxUint {
			return uint(v), nil
		}
	default:
		return nil, fmt.Errorf("%v (%T) is not an integer", value, value)
	}
	//
	return nil, fmt.Errorf("%v is not a natural number", value)
}

func spanNat(from int64, to int64) (func() enum.Enumerator[any], error) {
	if from < 0 {
		return nil, fmt.Errorf("%d is not a natural number", from)
	}
	//
	return func() enum.Enumerator[any] {
		return enum.Erase(enum.Range(uint(from), uint(to)))
	}, nil
}

func parseBool(value any) (any, error) {
	if v, ok := value.(bool); ok {
		return v, nil
	}
	//
	return nil, fmt.Errorf("%v (%T) is not a truth value", value, value)
}

func spanBool(from int64, to int64) (func() enum.Enumerator[any], error) {
	return nil, fmt.Errorf("%s is not ordered", Booleans)
}

func parseField(value any) (any, error) {
	var (
		number big.Int
		elem   fr.Element
	)
	//
	switch v := value.(type) {
	case int:
		number.SetInt64(int64(v))
	case int64:
		number.SetInt64(v)
	case uint64:
		number.SetUint64(v)
	case string:
		if _, ok := number.SetString(v, 0); !ok {
			return nil, fmt.Errorf("%q is not a field element", v)
		}
	default:
		return nil, fmt.Errorf("%v (%T) is not a field element", value, value)
	}
	// Negative values wrap around the modulus
	number.Mod(&number, fr.Modulus())
	elem.SetBigInt(&number)
	//
	return elem, nil
}

func spanField(from int64, to int64) (func() enum.Enumerator[any], error) {
	if from < 0 {
		return nil, fmt.Errorf("field ranges must start from zero or above (not %d)", from)
	}
	//
	elements := FieldRange(uint64(from), uint64(to))
	//
	return func() enum.Enumerator[any] {
		return enum.Erase(elements())
	}, nil
}
