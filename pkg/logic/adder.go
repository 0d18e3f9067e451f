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

// Add8 adds two 8-bit values using the generate/propagate carry recurrence of
// the prefix adder, returning the 8-bit sum along with the carry out.  The
// recurrence is evaluated bit-by-bit rather than via the native add so that
// the result is reproducible at the level of individual carry signals: for
// each position, G[i] = a[i] & b[i] generates a carry locally whilst
// P[i] = a[i] ^ b[i] propagates an incoming one.
func Add8(a, b uint8) (uint8, bool) {
	g := a & b
	p := a ^ b
	// Carry word, where bit i holds the carry into position i.  Bit 8 is the
	// overall carry out.  There is never a carry into position 0.
	var c uint16
	//
	for i := uint(1); i <= 8; i++ {
		gi := uint16(g>>(i-1)) & 1
		pi := uint16(p>>(i-1)) & 1
		ci := (pi & ((c >> (i - 1)) & 1)) | gi
		c |= ci << i
	}
	// Sum[i] = P[i] ^ C[i]
	return p ^ uint8(c), (c >> 8) == 1
}
