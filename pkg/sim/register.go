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

// Package sim models the synchronous wrapper around the combinational
// multiplier: a single clock-gated 32-bit result register, advanced one tick
// at a time.
package sim

import "github.com/consensys/karamul/pkg/logic"

// Unit is the registered multiplier.  It owns exactly one piece of state, the
// 32-bit result register, which is mutated only by Tick.  A freshly
// constructed Unit holds zero.  Unit is not safe for concurrent ticking; the
// clock is a single logical thread.
type Unit struct {
	result uint32
}

// NewUnit constructs a unit with the result register cleared.
func NewUnit() *Unit {
	return &Unit{}
}

// Tick advances the unit by one clock edge.  When enable is asserted the
// register captures the product of the operands presented on this tick;
// otherwise it holds its previous value, whatever the operands are.
func (u *Unit) Tick(x, y uint16, enable bool) {
	if enable {
		u.result = logic.Multiply16(x, y)
	}
}

// Result reads the register as of the last completed tick, without side
// effects.
func (u *Unit) Result() uint32 {
	return u.result
}

// Reset clears the result register, as a hardware reset line would.
func (u *Unit) Reset() {
	u.result = 0
}
