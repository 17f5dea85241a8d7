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

package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"uniqseq/internal/logging"
	"uniqseq/runner"
	"uniqseq/sequence"
)

var (
	rootCmd = &cobra.Command{
		Use:   "uniqseq",
		Short: "Unique pseudo-random sequence generator and benchmark",
	}

	workloadCfgPath string

	benchCmd = &cobra.Command{
		Use:   "bench",
		Short: "Benchmark the generation strategies over a workload sweep",
		RunE:  runBench,
	}

	genRange      uint64
	genCount      int
	genSeed       uint64
	genSeedString string
	genStrategy   string
	genRate       float64

	genCmd = &cobra.Command{
		Use:   "gen",
		Short: "Emit a sequence of distinct integers to stdout",
		RunE:  runGen,
	}
)

func init() {
	benchCmd.Flags().StringVar(&workloadCfgPath, "workload", "", "Path to workload YAML (empty runs the built-in sweep)")

	genCmd.Flags().Uint64Var(&genRange, "range", 0, "Exclusive upper bound of the output domain")
	genCmd.Flags().IntVar(&genCount, "count", 0, "Number of values to emit")
	genCmd.Flags().Uint64Var(&genSeed, "seed", 1, "Numeric seed determining the emission order")
	genCmd.Flags().StringVar(&genSeedString, "seed-string", "", "Derive the seed by hashing this string (overrides --seed)")
	genCmd.Flags().StringVar(&genStrategy, "strategy", sequence.StrategyQPR,
		fmt.Sprintf("Generation strategy (%s)", strings.Join(sequence.Strategies(), ", ")))
	genCmd.Flags().Float64Var(&genRate, "rate", 0, "Pace emission at this many values per second (0 = unpaced)")
	_ = genCmd.MarkFlagRequired("range")
	_ = genCmd.MarkFlagRequired("count")

	rootCmd.AddCommand(benchCmd, genCmd)
}

func runBench(*cobra.Command, []string) error {
	logging.ConfigureLogger()

	wl := runner.DefaultWorkload()
	if workloadCfgPath != "" {
		var err error
		if wl, err = runner.Load(workloadCfgPath); err != nil {
			return err
		}
		slog.Info("Loaded workload", slog.String("path", workloadCfgPath))
	}
	return runner.Run(wl)
}

func runGen(cmd *cobra.Command, _ []string) error {
	logging.ConfigureLogger()

	seed := genSeed
	if genSeedString != "" {
		seed = xxhash.Sum64String(genSeedString)
	}

	gen, err := sequence.NewGenerator(genStrategy, genRange, seed)
	if err != nil {
		return err
	}

	var limiter *rate.Limiter
	if genRate > 0 {
		limiter = rate.NewLimiter(rate.Limit(genRate), 1)
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for i := 0; i < genCount; i++ {
		if limiter != nil {
			if err = limiter.Wait(cmd.Context()); err != nil {
				return err
			}
		}
		if _, err = fmt.Fprintln(w, gen.Next()); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
