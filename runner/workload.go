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
	"os"
	"slices"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"uniqseq/sequence"
)

// CountBand describes a sweep of sequence lengths as fractions of the
// universe size: counts run from Start*size up to (but excluding) End*size
// in steps of Step*size.
type CountBand struct {
	Name  string  `yaml:"name"`
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`
	Step  float64 `yaml:"step"`
}

// UniverseSweep selects which bands and strategies run against one universe
// size. Empty Bands or Strategies fall back to the workload-level lists;
// overriding Strategies is how impracticable combinations (naive over a
// billion-value universe) are kept out of a run.
type UniverseSweep struct {
	Size       uint64   `yaml:"size"`
	Bands      []string `yaml:"bands,omitempty"`
	Strategies []string `yaml:"strategies,omitempty"`
}

type Workload struct {
	Seed       uint64          `yaml:"seed"`
	Validate   bool            `yaml:"validate"`
	Strategies []string        `yaml:"strategies"`
	Bands      []CountBand     `yaml:"bands"`
	Universes  []UniverseSweep `yaml:"universes"`
}

// Load reads and validates a workload YAML document.
func Load(path string) (*Workload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read workload")
	}
	wl := &Workload{}
	if err = yaml.Unmarshal(data, wl); err != nil {
		return nil, errors.Wrap(err, "failed to parse workload")
	}
	if err = wl.validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid workload %q", path)
	}
	return wl, nil
}

func (w *Workload) validate() error {
	if len(w.Universes) == 0 {
		return errors.New("no universes configured")
	}
	if len(w.Bands) == 0 {
		return errors.New("no count bands configured")
	}
	for _, s := range w.Strategies {
		if !slices.Contains(sequence.Strategies(), s) {
			return errors.Errorf("unknown strategy %q", s)
		}
	}
	for _, b := range w.Bands {
		if b.Name == "" {
			return errors.New("count band without a name")
		}
		if b.Start <= 0 || b.End > 1 || b.Start >= b.End || b.Step <= 0 {
			return errors.Errorf("band %q: fractions must satisfy 0 < start < end <= 1, step > 0", b.Name)
		}
	}
	for _, u := range w.Universes {
		if u.Size == 0 {
			return errors.New("universe size must be at least 1")
		}
		for _, name := range u.Bands {
			if w.band(name) == nil {
				return errors.Errorf("universe %d references unknown band %q", u.Size, name)
			}
		}
		for _, s := range u.Strategies {
			if !slices.Contains(sequence.Strategies(), s) {
				return errors.Errorf("universe %d: unknown strategy %q", u.Size, s)
			}
		}
		if len(u.Strategies) == 0 && len(w.Strategies) == 0 {
			return errors.Errorf("universe %d has no strategies", u.Size)
		}
	}
	return nil
}

func (w *Workload) band(name string) *CountBand {
	for i := range w.Bands {
		if w.Bands[i].Name == name {
			return &w.Bands[i]
		}
	}
	return nil
}

// DefaultWorkload reproduces the standard sweep: three universe sizes
// exercised by every strategy across small, medium, high and full count
// bands, plus a billion-value universe where only the constant-memory
// strategies are practicable.
func DefaultWorkload() *Workload {
	return &Workload{
		Seed:       1,
		Validate:   false,
		Strategies: sequence.Strategies(),
		Bands: []CountBand{
			{Name: "small", Start: 0.01, End: 0.1, Step: 0.001},
			{Name: "medium", Start: 0.4, End: 0.6, Step: 0.1},
			{Name: "high", Start: 0.8, End: 1.0, Step: 0.1},
			{Name: "full", Start: 0.05, End: 1.0, Step: 0.5},
		},
		Universes: []UniverseSweep{
			{Size: 1_000},
			{Size: 10_000},
			{Size: 100_000},
			{
				Size:       1_000_000_000,
				Bands:      []string{"full"},
				Strategies: []string{sequence.StrategyQPR, sequence.StrategyBitmap},
			},
		},
	}
}
