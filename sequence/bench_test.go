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

package sequence_test

import (
	"fmt"
	"testing"

	"uniqseq/sequence"
)

// benchTake measures a fresh generator per iteration: rejection-based
// strategies get slower as they fill up, so reusing one would skew them.
func benchTake(b *testing.B, strategy string, rangeSize uint64, count int) {
	b.Run(fmt.Sprintf("%s/range=%d/count=%d", strategy, rangeSize, count), func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			gen, err := sequence.NewGenerator(strategy, rangeSize, uint64(i))
			if err != nil {
				b.Fatal(err)
			}
			_ = gen.Take(count)
		}
	})
}

func BenchmarkTake(b *testing.B) {
	for _, strategy := range sequence.Strategies() {
		benchTake(b, strategy, 10_000, 1_000)
		benchTake(b, strategy, 10_000, 9_000)
	}
	// Large sparse universe, constant-memory strategy only.
	benchTake(b, sequence.StrategyQPR, 100_000_000, 10_000)
}

func BenchmarkNext(b *testing.B) {
	gen, err := sequence.NewUniqueSeq(1_000_000, 1)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gen.Next()
	}
}
