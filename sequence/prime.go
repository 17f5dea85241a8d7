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

import (
	"errors"
	"math/big"
)

// maxPrime32 is the largest prime representable in 32 bits. It satisfies
// p % 4 == 3, so it doubles as the ceiling of the prime search and as the
// clamp value for oversized ranges.
const maxPrime32 = 4294967291

var ErrPrimeSearch = errors.New("sequence: prime search exceeded the 32-bit bound")

// nextPrime returns the smallest prime strictly greater than n.
// ProbablyPrime(0) is deterministic for all inputs below 2^64.
func nextPrime(n uint64) uint64 {
	p := n + 1
	if p <= 2 {
		return 2
	}
	if p%2 == 0 {
		p++
	}
	for !big.NewInt(int64(p)).ProbablyPrime(0) {
		p += 2
	}
	return p
}

// suitablePrime returns the smallest prime p >= n with p % 4 == 3. The
// congruence is what lets the quadratic residue map fold into a bijection
// over [0, p). Since maxPrime32 itself qualifies, the search terminates for
// every n <= maxPrime32; the bound check only fires for inputs past the
// supported 32-bit space.
func suitablePrime(n uint64) (uint64, error) {
	if n > maxPrime32 {
		return 0, ErrPrimeSearch
	}
	if n < 3 {
		return 3, nil
	}
	p := n - 1
	for {
		p = nextPrime(p)
		if p > maxPrime32 {
			return 0, ErrPrimeSearch
		}
		if p%4 == 3 {
			return p, nil
		}
	}
}
