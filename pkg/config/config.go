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
// Package config reads the witnesses used to evaluate sentences from YAML
// documents.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/consensys/go-fol/pkg/domain"
	"github.com/consensys/go-fol/pkg/logic"
	"github.com/consensys/go-fol/pkg/util/collection/enum"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// WitnessConfig describes the witnesses for each domain, and (optionally)
// for specific nesting levels.  For example:
//
//	domains:
//	  ℤ: {values: [1, 3, 4, 7]}
//	  𝔽: {range: {from: 0, to: 8}}
//	levels:
//	  - {depth: 1, domain: ℤ, values: [0, 1, 2]}
type WitnessConfig struct {
	Domains map[string]Supply `yaml:"domains" validate:"dive,keys,required,endkeys"`
	Levels  []LevelSupply     `yaml:"levels" validate:"dive"`
}

// Supply gives the witnesses for a domain as either an explicit list of values
// or a half-open range.
type Supply struct {
	Values []any  `yaml:"values" validate:"required_without=Range,excluded_with=Range"`
	Range  *Range `yaml:"range" validate:"required_without=Values,excluded_with=Values"`
}

// LevelSupply gives the witnesses for quantifiers at a given nesting depth.
type LevelSupply struct {
	Depth  uint   `yaml:"depth"`
	Domain string `yaml:"domain" validate:"required"`
	Supply `yaml:",inline"`
}

// Range is the half-open range [From .. To).
type Range struct {
	From int64 `yaml:"from"`
	To   int64 `yaml:"to" validate:"gtefield=From"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads a witness configuration from a given file.
func Load(filename string) (*WitnessConfig, error) {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	//
	return Parse(bytes)
}

// Parse a witness configuration from a YAML document, and check it is well
// formed.
func Parse(bytes []byte) (*WitnessConfig, error) {
	var cfg WitnessConfig
	//
	if err := yaml.Unmarshal(bytes, &cfg); err != nil {
		return nil, err
	} else if err := validate.Struct(&cfg); err != nil {
		return nil, err
	}
	//
	return &cfg, nil
}

// Witnesses constructs the witness source described by this configuration.
// Every domain must name one of the standard domains, and every value must be
// an element of its domain.
func (p *WitnessConfig) Witnesses() (*logic.Witnesses, error) {
	var (
		witnesses = logic.NewWitnesses()
		errs      []error
	)
	//
	for name, supply := range p.Domains {
		entry, enumerate, err := supply.resolve(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		//
		witnesses.ProvideAny(entry.Descriptor, enumerate)
	}
	//
	for _, level := range p.Levels {
		entry, enumerate, err := level.resolve(level.Domain)
		if err != nil {
			errs = append(errs, fmt.Errorf("depth %d: %w", level.Depth, err))
			continue
		}
		//
		witnesses.ProvideAnyAt(level.Depth, entry.Descriptor, enumerate)
	}
	//
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	//
	return witnesses, nil
}

func (p Supply) resolve(name string) (domain.Entry, func() enum.Enumerator[any], error) {
	entry, ok := domain.Lookup(name)
	if !ok {
		return entry, nil, fmt.Errorf("unknown domain %q", name)
	} else if p.Range != nil {
		enumerate, err := entry.Span(p.Range.From, p.Range.To)
		return entry, enumerate, err
	}
	//
	values := make([]any, len(p.Values))
	//
	for i, v := range p.Values {
		value, err := entry.Parse(v)
		if err != nil {
			return entry, nil, fmt.Errorf("domain %s: %w", name, err)
		}
		//
		values[i] = value
	}
	//
	return entry, func() enum.Enumerator[any] { return enum.Finite(values...) }, nil
}
