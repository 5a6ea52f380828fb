package main

import (
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"github.com/exascience/bitonic/sort"
)

// benchRange bounds the random input values.
const benchRange = 1145141919.810

var benchInfo = "time every sorter on random float64 input"
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: benchInfo,
	Long:  benchInfo,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadBenchConfig(viper.GetViper())
		if err != nil {
			return err
		}
		return runBench(cmd, cfg)
	},
}

func init() {
	benchCmd.Flags().Int("size", 1000000, "number of elements to sort")
	benchCmd.Flags().Int("iterations", 10, "number of timed runs per sorter")
	benchCmd.Flags().Int("parallel", 8, "goroutine budget (0-255); the parallel bitonic sorter gets twice as many")
	benchCmd.Flags().Int64("seed", 1, "seed for the random input")
}

type benchConfig struct {
	Size        int
	Iterations  int
	Parallelism uint8
	Seed        int64
}

func loadBenchConfig(v *viper.Viper) (cfg benchConfig, err error) {
	cfg.Size = v.GetInt("size")
	cfg.Iterations = v.GetInt("iterations")
	cfg.Seed = v.GetInt64("seed")
	if cfg.Size < 0 {
		return cfg, fmt.Errorf("invalid size: %v", cfg.Size)
	}
	if cfg.Iterations < 1 {
		return cfg, fmt.Errorf("invalid number of iterations: %v", cfg.Iterations)
	}
	p := v.GetInt("parallel")
	if p < 0 || p > 255 {
		return cfg, fmt.Errorf("invalid parallelism: %v", p)
	}
	cfg.Parallelism = uint8(p)
	return cfg, nil
}

type benchCase struct {
	name string
	sort func([]float64)
}

func benchCases(p uint8) []benchCase {
	double := uint8(min(2*int(p), 255))
	return []benchCase{
		{"ParallelSort", func(s []float64) { sort.ParallelSort(s, p) }},
		{"BitonicSort", sort.BitonicSort[float64]},
		{"ParallelBitonicSort", func(s []float64) { sort.ParallelBitonicSort(s, double) }},
		{"StandardLibrarySort", slices.Sort[[]float64]},
	}
}

type benchResult struct {
	Name   string
	Mean   time.Duration
	StdDev time.Duration
	Median time.Duration
}

func makeRandomInput(size int, seed int64) []float64 {
	r := rand.New(rand.NewSource(seed))
	result := make([]float64, size)
	for i := range result {
		result[i] = (2*r.Float64() - 1) * benchRange
	}
	return result
}

func measure(c benchCase, input []float64, iterations int, p uint8) (benchResult, error) {
	data := make([]float64, len(input))
	samples := make([]float64, iterations)
	for i := range samples {
		copy(data, input)
		start := time.Now()
		c.sort(data)
		elapsed := time.Since(start)
		if !sort.IsSorted(data, p) {
			return benchResult{}, fmt.Errorf("%s produced unsorted output", c.name)
		}
		logger.Debug("bench run",
			zap.String("sorter", c.name),
			zap.Int("iteration", i),
			zap.Duration("elapsed", elapsed))
		samples[i] = float64(elapsed)
	}
	mean, stdDev := stat.MeanStdDev(samples, nil)
	if iterations == 1 {
		stdDev = 0
	}
	sort.BitonicSort(samples)
	median := stat.Quantile(0.5, stat.Empirical, samples, nil)
	return benchResult{
		Name:   c.name,
		Mean:   time.Duration(mean),
		StdDev: time.Duration(stdDev),
		Median: time.Duration(median),
	}, nil
}

func runBench(cmd *cobra.Command, cfg benchConfig) error {
	logger.Info("bench start",
		zap.Int("size", cfg.Size),
		zap.Int("iterations", cfg.Iterations),
		zap.Uint8("parallelism", cfg.Parallelism),
		zap.Int64("seed", cfg.Seed))
	input := makeRandomInput(cfg.Size, cfg.Seed)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-20s %14s %14s %14s\n", "sorter", "mean", "stddev", "median")
	for _, c := range benchCases(cfg.Parallelism) {
		r, err := measure(c, input, cfg.Iterations, cfg.Parallelism)
		if err != nil {
			logger.Error("bench failed", zap.String("sorter", c.name), zap.Error(err))
			return err
		}
		logger.Info("bench result",
			zap.String("sorter", r.Name),
			zap.Duration("mean", r.Mean),
			zap.Duration("stddev", r.StdDev),
			zap.Duration("median", r.Median))
		fmt.Fprintf(out, "%-20s %14v %14v %14v\n", r.Name, r.Mean, r.StdDev, r.Median)
	}
	return nil
}
