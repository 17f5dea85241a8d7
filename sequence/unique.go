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

import "errors"

var ErrZeroRange = errors.New("sequence: range must be at least 1")

var _ Generator = (*UniqueSeq)(nil)

// UniqueSeq walks a permutation of a finite field, emitting every integer in
// [0, range) exactly once per period with four words of state and no
// bookkeeping of past values. Inspired by
// http://preshing.com/20121224/how-to-generate-a-sequence-of-unique-random-integers
//
// The field modulus is the smallest prime p >= range with p ≡ 3 (mod 4),
// over which modular squaring folds into a bijection (see permute). Since p
// is slightly larger than the range, Next cycle-walks: candidates landing in
// the thin band [range, p) are skipped. The band is small relative to p, so
// the expected number of retries per value is a small constant, independent
// of how many values have been emitted.
type UniqueSeq struct {
	index   uint32
	offset  uint32
	prime   uint32
	size    uint32
	clamped bool
}

// NewUniqueSeq builds a generator over [0, rangeSize) whose emission order
// is a pure function of seed. Ranges above 4294967291 (the largest 32-bit
// prime) are clamped to it: construction succeeds, Clamped reports true, and
// the effective range is 4294967291.
func NewUniqueSeq(rangeSize, seed uint64) (*UniqueSeq, error) {
	if rangeSize == 0 {
		return nil, ErrZeroRange
	}

	clamped := false
	if rangeSize > maxPrime32 {
		rangeSize = maxPrime32
		clamped = true
	}
	prime, err := suitablePrime(rangeSize)
	if err != nil {
		return nil, err
	}

	u := &UniqueSeq{
		offset:  uint32(prime - rangeSize),
		prime:   uint32(prime),
		size:    uint32(rangeSize),
		clamped: clamped,
	}
	// Scramble the starting cursor as a function of the seed: permute,
	// shift by prime + offset, permute again. The shift is reduced mod
	// prime so the cursor invariant index < prime holds from the start.
	s := uint64(u.permute(uint32(seed % prime)))
	u.index = u.permute(uint32((s + prime + uint64(u.offset)) % prime))

	return u, nil
}

// permute maps [0, prime) onto itself. Squaring mod p alone is 2-to-1
// because x² ≡ (p-x)² (mod p); folding the upper half of the domain onto
// the negated residue restores injectivity. Inputs at or above the prime
// pass through unchanged, a case only reachable transiently while
// cycle-walking, never in emitted output.
func (u *UniqueSeq) permute(x uint32) uint32 {
	if x >= u.prime {
		return x
	}
	residue := uint32(uint64(x) * uint64(x) % uint64(u.prime))
	if x <= u.prime/2 {
		return residue
	}
	return u.prime - residue
}

// Next returns the next value in [0, range). Over any window of range
// emissions starting at a period boundary, every value appears exactly
// once; after the full period the sequence repeats from the start.
//
// The permutation is composed twice per step so that adjacent cursor
// positions do not produce visually correlated outputs. The composition
// depth is fixed: changing it preserves uniqueness but reorders every
// sequence, so it is part of the emission-order contract.
func (u *UniqueSeq) Next() uint32 {
	for {
		res := u.permute(u.permute(u.index))
		u.index = (u.index + 1) % u.prime
		if res < u.size {
			return res
		}
	}
}

// Take returns the next count values in emission order. Values are pairwise
// distinct as long as count does not exceed the range.
func (u *UniqueSeq) Take(count int) []uint32 {
	return take(u, count)
}

// Clamped reports whether the requested range exceeded the 32-bit prime
// ceiling and was reduced to it.
func (u *UniqueSeq) Clamped() bool {
	return u.clamped
}
