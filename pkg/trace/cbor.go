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
package trace

import "github.com/fxamacker/cbor/v2"

// FromCborBytes parses a trace expressed in CBOR, the binary sibling of the
// JSON format holding the same column map.
func FromCborBytes(data []byte) (*Trace, error) {
	var rawData map[string][]uint64
	//
	if err := cbor.Unmarshal(data, &rawData); err != nil {
		return nil, err
	}
	//
	return fromColumns(rawData)
}

// ToCborBytes writes a trace in CBOR.
func ToCborBytes(tr *Trace) ([]byte, error) {
	return cbor.Marshal(tr.toColumns())
}
