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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextPrime(t *testing.T) {
	cases := map[uint64]uint64{
		0:  2,
		1:  2,
		2:  3,
		3:  5,
		7:  11,
		13: 17,
		89: 97,
	}
	for n, want := range cases {
		assert.Equal(t, want, nextPrime(n), "nextPrime(%d)", n)
	}
}

func TestSuitablePrime(t *testing.T) {
	cases := map[uint64]uint64{
		1:          3,
		2:          3,
		3:          3,
		4:          7, // 5 is prime but 5 % 4 == 1
		8:          11,
		10:         11,
		100:        103,
		1000:       1019,
		maxPrime32: maxPrime32,
	}
	for n, want := range cases {
		got, err := suitablePrime(n)
		require.NoError(t, err, "suitablePrime(%d)", n)
		assert.Equal(t, want, got, "suitablePrime(%d)", n)
		assert.EqualValues(t, 3, got%4)
	}
}

func TestSuitablePrime_BeyondCeiling(t *testing.T) {
	_, err := suitablePrime(maxPrime32 + 1)
	require.ErrorIs(t, err, ErrPrimeSearch)
}
