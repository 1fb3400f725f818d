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

import "errors"

// ErrInvalidSentence signals a sentence which is neither atomic nor
// quantified, which is both, or which carries an unknown quantifier.
var ErrInvalidSentence = errors.New("invalid sentence")

// ErrNoWitnesses signals that no witnesses were supplied for the domain of a
// quantifier being evaluated.
var ErrNoWitnesses = errors.New("no witnesses for domain")

// ErrDomainMismatch signals that witnesses supplied for a given nesting level
// range over a different domain from the quantifier at that level.
var ErrDomainMismatch = errors.New("witness domain mismatch")

// ErrWitnessType signals a witness which is not an element of the domain it
// was supplied for.
var ErrWitnessType = errors.New("witness not in domain")
