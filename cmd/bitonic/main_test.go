package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs(args)
	require.NoError(t, RootCmd.Execute())
	return out.String()
}

func TestDemo(t *testing.T) {
	out := execute(t, "demo")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		assert.True(t, strings.HasSuffix(line, "[2.22 3.1 3.4 4.44 8.2]"), line)
	}
}

func TestBench(t *testing.T) {
	out := execute(t, "bench", "--size", "1000", "--iterations", "3", "--parallel", "4")
	for _, c := range benchCases(4) {
		assert.Contains(t, out, c.name)
	}
}

func TestBenchSingleIteration(t *testing.T) {
	r, err := measure(benchCases(2)[0], makeRandomInput(100, 7), 1, 2)
	require.NoError(t, err)
	assert.Zero(t, r.StdDev)
	assert.Equal(t, r.Mean, r.Median)
}

func TestLoadBenchConfig(t *testing.T) {
	v := viper.New()
	v.SetEnvPrefix("bitonic")
	v.AutomaticEnv()
	v.SetDefault("iterations", 1)

	t.Setenv("BITONIC_PARALLEL", "300")
	_, err := loadBenchConfig(v)
	assert.Error(t, err)

	t.Setenv("BITONIC_PARALLEL", "255")
	t.Setenv("BITONIC_SIZE", "12")
	cfg, err := loadBenchConfig(v)
	require.NoError(t, err)
	assert.Equal(t, uint8(255), cfg.Parallelism)
	assert.Equal(t, 12, cfg.Size)

	v.Set("iterations", 0)
	_, err = loadBenchConfig(v)
	assert.Error(t, err)
}

func TestMakeRandomInput(t *testing.T) {
	a := makeRandomInput(50, 3)
	b := makeRandomInput(50, 3)
	assert.Equal(t, a, b)
	for _, x := range a {
		assert.LessOrEqual(t, x, benchRange)
		assert.GreaterOrEqual(t, x, -benchRange)
	}
}
