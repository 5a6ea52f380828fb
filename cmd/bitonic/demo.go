package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/exascience/bitonic/sort"
)

var demoInput = []float64{3.1, 8.2, 3.4, 2.22, 4.44}

var demoInfo = "sort a small example with every sorter"
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: demoInfo,
	Long:  demoInfo,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, run := range demoRuns() {
			nums := slices.Clone(demoInput)
			run.sort(nums)
			logger.Debug("demo sorted", zap.String("sorter", run.name), zap.Float64s("result", nums))
			if _, err := fmt.Fprintf(out, "%-20s %v\n", run.name, nums); err != nil {
				return err
			}
		}
		return nil
	},
}

type demoRun struct {
	name string
	sort func([]float64)
}

func demoRuns() []demoRun {
	return []demoRun{
		{"BitonicSort", sort.BitonicSort[float64]},
		{"ParallelBitonicSort", func(s []float64) { sort.ParallelBitonicSort(s, 2) }},
		{"ParallelSort", func(s []float64) { sort.ParallelSort(s, 8) }},
	}
}
