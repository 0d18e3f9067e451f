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
package sim

import (
	"github.com/consensys/karamul/pkg/trace"
	"github.com/consensys/karamul/pkg/util"
)

// Run drives every row of a stimulus trace through a fresh unit, returning
// the register contents observed after each tick.
func Run(tr *trace.Trace) []uint32 {
	stats := util.NewPerfStats()
	//
	unit := NewUnit()
	out := make([]uint32, tr.Height())
	//
	for i := 0; i < tr.Height(); i++ {
		unit.Tick(tr.X[i], tr.Y[i], tr.Enable[i])
		out[i] = unit.Result()
	}
	//
	stats.Log("Simulation")
	//
	return out
}

// Record runs a stimulus trace and returns a copy of it carrying the
// simulated output column, suitable for writing out or checking against.
func Record(tr *trace.Trace) *trace.Trace {
	return tr.WithOut(Run(tr))
}
