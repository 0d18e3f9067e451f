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

// Decomposition captures every intermediate signal of the multiplier
// datapath, so that the individual terms can be inspected (e.g. when
// reporting a counterexample, or via "karamul compute --expand").
type Decomposition struct {
	// Upper and lower bytes of the two operands.
	XHi, XLo uint8
	YHi, YLo uint8
	// Direct partial products XHi*YHi and XLo*YLo.  An 8x8-bit product
	// always fits in 16 bits, so neither is truncated.
	P1, P2 uint16
	// Sums of each operand's bytes, produced by the prefix adder.  These are
	// 9-bit values ({carry, sum}, at most 510) held zero-extended in a
	// 16-bit word, which is the width at which the datapath multiplies them.
	ABSum, CDSum uint16
	// Product of the two byte sums, truncated to 18 bits.
	P3Mult uint32
	// Cross term: P3Mult - P1 - P2 as an 18-bit subtraction.  Whenever
	// P3Mult >= P1 + P2 this equals XHi*YLo + XLo*YHi exactly; otherwise it
	// wraps modulo 2^18, just as the hardware subtractor would.
	P3 uint32
	// Recombined 32-bit product.
	Product uint32
}

// Decompose16 evaluates the full multiplier datapath on a pair of 16-bit
// operands, returning all intermediate terms.
func Decompose16(x, y uint16) Decomposition {
	var d Decomposition
	// Split both operands into bytes.
	d.XHi, d.XLo = hi(x), lo(x)
	d.YHi, d.YLo = hi(y), lo(y)
	// Direct partial products.
	d.P1 = uint16(d.XHi) * uint16(d.YHi)
	d.P2 = uint16(d.XLo) * uint16(d.YLo)
	// Byte sums via the prefix adder, with the carry forming bit 8.
	abLo, abCarry := Add8(d.XHi, d.XLo)
	cdLo, cdCarry := Add8(d.YHi, d.YLo)
	//
	d.ABSum = uint16(abLo)
	if abCarry {
		d.ABSum |= 1 << 8
	}
	//
	d.CDSum = uint16(cdLo)
	if cdCarry {
		d.CDSum |= 1 << 8
	}
	// Cross multiply of the zero-extended byte sums, typed to 18 bits.  The
	// operands are at most 510 so the mask never actually discards anything
	// here; it states the width of the wire.
	d.P3Mult = (uint32(d.ABSum) * uint32(d.CDSum)) & Mask18
	// 18-bit subtraction of both partial products.  Wraparound, should it
	// ever occur, is deliberate (see Decomposition.P3).
	d.P3 = (d.P3Mult - uint32(d.P1) - uint32(d.P2)) & Mask18
	// Weighted recombination at 32-bit width.
	d.Product = (uint32(d.P1) << 16) + (d.P3 << 8) + uint32(d.P2)
	//
	return d
}

// Multiply16 multiplies two 16-bit operands via the three-multiplication
// decomposition, producing their exact 32-bit product.
func Multiply16(x, y uint16) uint32 {
	return Decompose16(x, y).Product
}
