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

// Package trace defines the column-oriented stimulus format consumed by the
// simulator.  A trace holds one row per clock tick: two 16-bit operand
// columns, a 1-bit enable column and, for recorded traces, a 32-bit output
// column.  Out-of-range values are rejected when a trace is constructed, so
// the simulator itself never sees an ill-formed row.
package trace

import "fmt"

// Column names as they appear in trace files.
const (
	ColX      = "X"
	ColY      = "Y"
	ColEnable = "EN"
	ColOut    = "OUT"
)

// Trace is a fixed-schema stimulus table.  All columns have the same height;
// Out is nil unless the trace carries recorded outputs.
type Trace struct {
	X      []uint16
	Y      []uint16
	Enable []bool
	Out    []uint32
}

// Height returns the number of ticks in this trace.
func (p *Trace) Height() int {
	return len(p.X)
}

// HasOut reports whether this trace carries a recorded output column.
func (p *Trace) HasOut() bool {
	return p.Out != nil
}

// WithOut returns a copy of this trace carrying the given output column,
// which must match the trace height.
func (p *Trace) WithOut(out []uint32) *Trace {
	if len(out) != p.Height() {
		panic(fmt.Sprintf("output column height %d does not match trace height %d", len(out), p.Height()))
	}
	//
	return &Trace{X: p.X, Y: p.Y, Enable: p.Enable, Out: out}
}

// Slice returns a view of the ticks in the half-open range [start, end).
func (p *Trace) Slice(start, end int) *Trace {
	q := &Trace{X: p.X[start:end], Y: p.Y[start:end], Enable: p.Enable[start:end]}
	//
	if p.Out != nil {
		q.Out = p.Out[start:end]
	}
	//
	return q
}

// ===================================================================
// Raw column conversion
// ===================================================================

// fromColumns converts a raw column map, as decoded from a trace file, into a
// validated trace.  The map must contain the three stimulus columns (plus
// optionally OUT), all of the same height, with every value within its
// column's bit width.
func fromColumns(columns map[string][]uint64) (*Trace, error) {
	for name := range columns {
		switch name {
		case ColX, ColY, ColEnable, ColOut:
			// fine
		default:
			return nil, fmt.Errorf("unknown column %s", name)
		}
	}
	//
	x, err := requireColumn(columns, ColX, 16)
	if err != nil {
		return nil, err
	}
	//
	y, err := requireColumn(columns, ColY, 16)
	if err != nil {
		return nil, err
	}
	//
	en, err := requireColumn(columns, ColEnable, 1)
	if err != nil {
		return nil, err
	}
	// Sanity check all columns have a uniform height.
	if len(y) != len(x) || len(en) != len(x) {
		return nil, fmt.Errorf("ragged trace (columns of height %d, %d, %d)", len(x), len(y), len(en))
	}
	//
	tr := &Trace{
		X:      make([]uint16, len(x)),
		Y:      make([]uint16, len(y)),
		Enable: make([]bool, len(en)),
	}
	//
	for i := range x {
		tr.X[i] = uint16(x[i])
		tr.Y[i] = uint16(y[i])
		tr.Enable[i] = en[i] == 1
	}
	// Output column is optional.
	if raw, ok := columns[ColOut]; ok {
		if err := validateColumn(ColOut, 32, raw); err != nil {
			return nil, err
		} else if len(raw) != len(x) {
			return nil, fmt.Errorf("ragged trace (column %s of height %d, expected %d)", ColOut, len(raw), len(x))
		}
		//
		tr.Out = make([]uint32, len(raw))
		for i := range raw {
			tr.Out[i] = uint32(raw[i])
		}
	}
	//
	return tr, nil
}

// toColumns converts a trace back into the raw column map written to trace
// files.
func (p *Trace) toColumns() map[string][]uint64 {
	columns := make(map[string][]uint64, 4)
	x := make([]uint64, p.Height())
	y := make([]uint64, p.Height())
	en := make([]uint64, p.Height())
	//
	for i := 0; i < p.Height(); i++ {
		x[i] = uint64(p.X[i])
		y[i] = uint64(p.Y[i])
		//
		if p.Enable[i] {
			en[i] = 1
		}
	}
	//
	columns[ColX] = x
	columns[ColY] = y
	columns[ColEnable] = en
	//
	if p.Out != nil {
		out := make([]uint64, p.Height())
		for i, v := range p.Out {
			out[i] = uint64(v)
		}
		//
		columns[ColOut] = out
	}
	//
	return columns
}

func requireColumn(columns map[string][]uint64, name string, bitwidth uint) ([]uint64, error) {
	raw, ok := columns[name]
	if !ok {
		return nil, fmt.Errorf("missing column %s", name)
	}
	//
	if err := validateColumn(name, bitwidth, raw); err != nil {
		return nil, err
	}
	//
	return raw, nil
}

func validateColumn(name string, bitwidth uint, values []uint64) error {
	bound := uint64(1) << bitwidth
	//
	for row, v := range values {
		if v >= bound {
			return fmt.Errorf("column %s out-of-bounds (row %d, value %d)", name, row, v)
		}
	}
	//
	return nil
}
