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
package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_PerfStats_01(t *testing.T) {
	perf := NewPerfStats()
	//
	data := make([][]byte, 0, 16)
	for i := 0; i < 16; i++ {
		data = append(data, make([]byte, 1024))
	}
	//
	usage := perf.Usage()
	assert.Len(t, data, 16)
	assert.GreaterOrEqual(t, usage.Elapsed, time.Duration(0))
	assert.Contains(t, usage.String(), "GC events")
}

func Test_PerfStats_02(t *testing.T) {
	usage := Usage{1500 * time.Millisecond, 3 * 1024 * 1024, 2}
	assert.Equal(t, "1.500s using 3 Mb (2 GC events)", usage.String())
}
