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

// Package sequence generates sequences of distinct pseudo-random integers
// drawn from [0, range) without replacement.
//
// The primary strategy (StrategyQPR) is a quadratic-residue permutation of
// the range: O(1) time and memory per value, with every value in the range
// emitted exactly once per period. The naive and bitmap strategies are
// rejection-sampling baselines kept for validation and benchmarking.
package sequence

import (
	"errors"
	"fmt"
)

const (
	StrategyQPR    = "qpr"
	StrategyNaive  = "naive"
	StrategyBitmap = "bitmap"
)

var ErrUnknownStrategy = errors.New("sequence: unknown strategy")

// Generator emits values from [0, range). Implementations are not safe for
// concurrent use; distinct instances are fully independent.
type Generator interface {
	Next() uint32
	Take(count int) []uint32
}

// Strategies lists the known strategy names.
func Strategies() []string {
	return []string{StrategyQPR, StrategyNaive, StrategyBitmap}
}

// NewGenerator builds the named strategy over [0, rangeSize), seeded with
// seed. Ranges above 4294967291 are clamped (see NewUniqueSeq).
func NewGenerator(strategy string, rangeSize, seed uint64) (Generator, error) {
	switch strategy {
	case StrategyQPR:
		return NewUniqueSeq(rangeSize, seed)
	case StrategyNaive:
		return newNaive(rangeSize, seed)
	case StrategyBitmap:
		return newBitmap(rangeSize, seed)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
}

func take(g Generator, count int) []uint32 {
	out := make([]uint32, count)
	for i := range out {
		out[i] = g.Next()
	}
	return out
}
