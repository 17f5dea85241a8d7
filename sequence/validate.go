// Copyright 2026 The UniqSeq Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sequence

import "fmt"

// Duplicate reports two positions in a sequence holding the same value.
// It indicates a logic defect in whichever generator produced the sequence;
// callers decide whether to treat it as fatal.
type Duplicate struct {
	I, J  int
	Value uint32
}

func (d *Duplicate) String() string {
	return fmt.Sprintf("seq[%d] == seq[%d] == %d", d.I, d.J, d.Value)
}

// Validate scans seq for repeated values. It returns nil when every value is
// distinct, otherwise the first collision in emission order.
func Validate(seq []uint32) *Duplicate {
	seen := make(map[uint32]int, len(seq))
	for j, v := range seq {
		if i, ok := seen[v]; ok {
			return &Duplicate{I: i, J: j, Value: v}
		}
		seen[v] = j
	}
	return nil
}
