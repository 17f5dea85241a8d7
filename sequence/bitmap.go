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

var _ Generator = (*bitmap)(nil)

// bitmap draws uniformly and rejects duplicates with a one-bit-per-value
// seen table. O(1) lookups, but the table costs range/8 bytes up front no
// matter how few values are taken.
type bitmap struct {
	size uint64
	rng  *rand.Rand
	seen []uint64
}

func newBitmap(rangeSize, seed uint64) (*bitmap, error) {
	if rangeSize == 0 {
		return nil, ErrZeroRange
	}
	if rangeSize > maxPrime32 {
		rangeSize = maxPrime32
	}
	return &bitmap{
		size: rangeSize,
		rng:  rand.New(rand.NewPCG(seed, seed)),
		seen: make([]uint64, (rangeSize+63)/64),
	}, nil
}

// Next blocks forever once the range is exhausted; callers keep the number
// of draws at or below the range.
func (b *bitmap) Next() uint32 {
	for {
		candidate := uint32(b.rng.Uint64N(b.size))
		word, bit := candidate>>6, uint64(1)<<(candidate&63)
		if b.seen[word]&bit == 0 {
			b.seen[word] |= bit
			return candidate
		}
	}
}

func (b *bitmap) Take(count int) []uint32 {
	return take(b, count)
}
