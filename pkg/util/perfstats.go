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
	"fmt"
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
)

// PerfStats records the time, memory allocated and garbage collections at a
// given point, so the cost of some work (e.g. evaluating a sentence) can be
// reported afterwards.
type PerfStats struct {
	// Starting time
	startTime time.Time
	// Starting total memory allocation (in bytes)
	startMem uint64
	// Starting number of gc events
	startGc uint32
}

// Usage summarises the resources consumed since a snapshot was taken.
type Usage struct {
	Elapsed time.Duration
	// Bytes allocated
	Allocated uint64
	// Number of gc events
	Collections uint32
}

func (u Usage) String() string {
	return fmt.Sprintf("%0.3fs using %d Mb (%d GC events)", u.Elapsed.Seconds(), u.Allocated/1024/1024,
		u.Collections)
}

// NewPerfStats takes a snapshot of the current time and memory allocation.
func NewPerfStats() *PerfStats {
	var m runtime.MemStats
	//
	startTime := time.Now()
	//
	runtime.ReadMemStats(&m)
	//
	return &PerfStats{startTime, m.TotalAlloc, m.NumGC}
}

// Usage returns the resources consumed since this snapshot was taken.
func (p *PerfStats) Usage() Usage {
	var m runtime.MemStats
	//
	runtime.ReadMemStats(&m)
	//
	return Usage{time.Since(p.startTime), m.TotalAlloc - p.startMem, m.NumGC - p.startGc}
}

// Log the resources consumed since this snapshot was taken, at debug level.
func (p *PerfStats) Log(prefix string) {
	log.Debugf("%s took %s", prefix, p.Usage())
}
