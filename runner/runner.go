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

package runner

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/bmizerany/perks/quantile"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"uniqseq/sequence"
)

type stats struct {
	batches int64
	values  int64
	elapsed time.Duration
	latency *quantile.Stream
}

func newStats() *stats {
	return &stats{
		latency: quantile.NewTargeted(0.50, 0.95, 0.99, 1.0),
	}
}

// Run executes the workload: for every (universe, band, strategy)
// combination it sweeps the band's counts, constructing a fresh generator
// per count, timing each Take and feeding per-batch latencies into quantile
// streams. With Validate set, every produced sequence is scanned for
// duplicates and the run aborts on the first collision.
func Run(wl *Workload) error {
	runID := uuid.New()
	slog.Info("Starting benchmark run",
		slog.String("runId", runID.String()),
		slog.Uint64("seed", wl.Seed),
		slog.Bool("validate", wl.Validate))
	runStart := time.Now()

	for _, u := range wl.Universes {
		bands := u.Bands
		if len(bands) == 0 {
			bands = make([]string, 0, len(wl.Bands))
			for _, b := range wl.Bands {
				bands = append(bands, b.Name)
			}
		}
		strategies := u.Strategies
		if len(strategies) == 0 {
			strategies = wl.Strategies
		}

		for _, bandName := range bands {
			band := wl.band(bandName)
			for _, strategy := range strategies {
				st := newStats()
				if err := sweep(wl, u.Size, band, strategy, st); err != nil {
					return err
				}
				printStats(u.Size, bandName, strategy, st)
			}
		}
	}

	slog.Info("Benchmark run complete",
		slog.String("runId", runID.String()),
		slog.Duration("elapsed", time.Since(runStart)))
	return nil
}

func sweep(wl *Workload, size uint64, band *CountBand, strategy string, st *stats) error {
	start := max(uint64(band.Start*float64(size)), 1)
	end := uint64(band.End * float64(size))
	step := max(uint64(band.Step*float64(size)), 1)

	for count := start; count < end; count += step {
		gen, err := sequence.NewGenerator(strategy, size, wl.Seed)
		if err != nil {
			return errors.Wrapf(err, "failed to build %q generator", strategy)
		}

		batchStart := time.Now()
		seq := gen.Take(int(count))
		elapsed := time.Since(batchStart)

		st.batches++
		st.values += int64(count)
		st.elapsed += elapsed
		st.latency.Insert(float64(elapsed.Microseconds()) / 1000.0)

		if wl.Validate {
			if dup := sequence.Validate(seq); dup != nil {
				return errors.Errorf("strategy %q produced a duplicate at universe %d, count %d: %s",
					strategy, size, count, dup)
			}
		}
	}
	return nil
}

func printStats(size uint64, band, strategy string, st *stats) {
	rate := 0.0
	if st.elapsed > 0 {
		rate = float64(st.values) / st.elapsed.Seconds()
	}
	slog.Info(fmt.Sprintf(
		"Stats - universe %9d  band %-6s  %-6s: %9.0f values/s  batch ms: 50%% %7.1f - 95%% %7.1f - 99%% %7.1f - max %7.1f",
		size, band, strategy,
		rate,
		st.latency.Query(0.50),
		st.latency.Query(0.95),
		st.latency.Query(0.99),
		st.latency.Query(1.0)),
		slog.Int64("batches", st.batches))
}
