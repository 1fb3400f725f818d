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
	"sync"
)

// NameSupply produces fresh variable names for printing quantified
// sentences.  A supply is safe for concurrent use.  Printing with a freshly
// constructed supply is deterministic.
type NameSupply struct {
	mux     sync.Mutex
	prefix  string
	counter uint
}

// NewNameSupply constructs a supply of names x_1, x_2, etc.
func NewNameSupply() *NameSupply {
	return NewNameSupplyWithPrefix("x")
}

// NewNameSupplyWithPrefix constructs a supply of names with a given prefix.
func NewNameSupplyWithPrefix(prefix string) *NameSupply {
	return &NameSupply{prefix: prefix}
}

// Fresh returns a name which this supply has not returned before (since it was
// last reset).
func (p *NameSupply) Fresh() string {
	p.mux.Lock()
	defer p.mux.Unlock()
	//
	p.counter++

	return fmt.Sprintf("%s_%d", p.prefix, p.counter)
}

// Reset this supply so that names are reissued from the beginning.
func (p *NameSupply) Reset() {
	p.mux.Lock()
	p.counter = 0
	p.mux.Unlock()
}

// names is the process-wide supply used by Sentence.String.
var names = NewNameSupply()
