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

// Package logic models the combinational datapath of a registered 16x16-bit
// multiplier: an 8-bit prefix adder and a Karatsuba-style three-multiplication
// decomposition built on top of it.  Everything in this package is a pure
// function of its inputs; all arithmetic is performed at explicitly stated
// bit widths, with wraparound semantics matching fixed-width hardware.
package logic

// Bit widths of the intermediate signals are enforced with explicit masks,
// rather than relying on the width of the host integer type.
const (
	// Mask18 truncates a value to the 18 bits of the cross-term datapath.
	Mask18 uint32 = 0x3FFFF
)

// hi returns the upper byte of a 16-bit operand.
func hi(x uint16) uint8 {
	return uint8(x >> 8)
}

// lo returns the lower byte of a 16-bit operand.
func lo(x uint16) uint8 {
	return uint8(x)
}
