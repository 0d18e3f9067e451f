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

import "encoding/json"

// FromJsonBytes parses a trace expressed in JSON notation.  For example,
// {"X": [0], "Y": [1], "EN": [1]} is a trace containing a single tick.
func FromJsonBytes(data []byte) (*Trace, error) {
	var rawData map[string][]uint64
	// Attempt to unmarshall
	if jsonErr := json.Unmarshal(data, &rawData); jsonErr != nil {
		return nil, jsonErr
	}
	//
	return fromColumns(rawData)
}

// ToJsonBytes writes a trace in JSON notation.
func ToJsonBytes(tr *Trace) ([]byte, error) {
	return json.Marshal(tr.toColumns())
}
