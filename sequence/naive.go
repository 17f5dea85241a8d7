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

import "math/rand/v2"

var _ Generator = (*naive)(nil)

// naive draws uniformly and rescans everything accepted so far to reject
// duplicates. Time grows quadratically with the number of emitted values;
// it exists as a correctness and benchmark baseline, not for production use.
type naive struct {
	size uint64
	rng  *rand.Rand
	seen []uint32
}

func newNaive(rangeSize, seed uint64) (*naive, error) {
	if rangeSize == 0 {
		return nil, ErrZeroRange
	}
	if rangeSize > maxPrime32 {
		rangeSize = maxPrime32
	}
	return &naive{
		size: rangeSize,
		rng:  rand.New(rand.NewPCG(seed, seed)),
	}, nil
}

// Next blocks forever once the range is exhausted; callers keep the number
// of draws at or below the range.
func (n *naive) Next() uint32 {
	for {
		candidate := uint32(n.rng.Uint64N(n.size))
		dup := false
		for _, v := range n.seen {
			if v == candidate {
				dup = true
				break
			}
		}
		if !dup {
			n.seen = append(n.seen, candidate)
			return candidate
		}
	}
}

func (n *naive) Take(count int) []uint32 {
	return take(n, count)
}
