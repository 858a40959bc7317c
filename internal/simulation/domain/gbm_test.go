package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pricing "github.com/wyfcoding/optionslab/internal/pricing/domain"
)

func defaultConfig() RunConfig {
	return RunConfig{
		Drift:        0.05,
		Volatility:   0.2,
		Horizon:      1,
		Steps:        100,
		InitialValue: 100,
		PathCount:    10,
		SeedBase:     42,
	}
}

func TestLCGSampler_Reproducible(t *testing.T) {
	a := NewLCGSampler(12345)
	b := NewLCGSampler(12345)

	for i := 0; i < 1000; i++ {
		assert.Equal(t, a.Norm(), b.Norm(), "draw %d diverged", i)
	}
}

func TestLCGSampler_NegativeSeed(t *testing.T) {
	g := NewLCGSampler(-7)
	for i := 0; i < 100; i++ {
		z := g.Norm()
		require.False(t, math.IsNaN(z))
		require.False(t, math.IsInf(z, 0))
	}
}

func TestLCGSampler_RoughlyStandardNormal(t *testing.T) {
	g := NewLCGSampler(99)
	const n = 20000

	sum, sumSq := 0.0, 0.0
	for i := 0; i < n; i++ {
		z := g.Norm()
		sum += z
		sumSq += z * z
	}

	mean := sum / n
	variance := sumSq/n - mean*mean

	// 演示级生成器，只要求大致符合 N(0,1)
	assert.InDelta(t, 0.0, mean, 0.05)
	assert.InDelta(t, 1.0, variance, 0.1)
}

func TestSimulateRun_Shape(t *testing.T) {
	cfg := defaultConfig()
	result, err := SimulateRun(cfg, nil)
	require.NoError(t, err)

	require.Len(t, result.Times, cfg.Steps+1)
	require.Len(t, result.Paths, cfg.PathCount)
	require.Len(t, result.Expected, cfg.Steps+1)

	assert.Equal(t, 0.0, result.Times[0])
	assert.InDelta(t, cfg.Horizon, result.Times[cfg.Steps], 1e-12)

	for _, path := range result.Paths {
		require.Len(t, path, cfg.Steps+1)
		assert.Equal(t, cfg.InitialValue, path[0])
	}
}

func TestSimulateRun_SeededReproducibility(t *testing.T) {
	cfg := defaultConfig()

	first, err := SimulateRun(cfg, nil)
	require.NoError(t, err)
	second, err := SimulateRun(cfg, nil)
	require.NoError(t, err)

	// 相同种子 ⇒ 各条路径逐位一致
	assert.Equal(t, first.Paths, second.Paths)
}

func TestSimulateRun_PathsIndependent(t *testing.T) {
	cfg := defaultConfig()
	result, err := SimulateRun(cfg, nil)
	require.NoError(t, err)

	// 不同种子的路径不应完全相同
	assert.NotEqual(t, result.Paths[0], result.Paths[1])
}

func TestSimulateRun_RandSampler(t *testing.T) {
	cfg := defaultConfig()
	factory := func(seed int64) NormalSampler { return NewRandSampler(seed) }

	first, err := SimulateRun(cfg, factory)
	require.NoError(t, err)
	second, err := SimulateRun(cfg, factory)
	require.NoError(t, err)

	assert.Equal(t, first.Paths, second.Paths)
}

func TestExpectedPath(t *testing.T) {
	values := ExpectedPath(100, 0.05, 1, 10)
	require.Len(t, values, 11)

	assert.Equal(t, 100.0, values[0])
	assert.InDelta(t, 100*math.Exp(0.05), values[10], 1e-9)

	// 正漂移下严格递增
	for i := 1; i < len(values); i++ {
		assert.Greater(t, values[i], values[i-1])
	}
}

func TestSimulatePath_ZeroVolFollowsDrift(t *testing.T) {
	// sigma=0 时欧拉路径是确定的：S_{t+1} = S_t*(1+mu*dt)
	path := SimulatePath(100, 0.05, 0, 1, 100, NewLCGSampler(1))

	expected := 100.0
	dt := 1.0 / 100
	for i := 1; i < len(path); i++ {
		expected *= 1 + 0.05*dt
		assert.InDelta(t, expected, path[i], 1e-9)
	}
}

func TestRunConfig_Validate(t *testing.T) {
	cases := map[string]func(*RunConfig){
		"zero initial":   func(c *RunConfig) { c.InitialValue = 0 },
		"zero horizon":   func(c *RunConfig) { c.Horizon = 0 },
		"zero steps":     func(c *RunConfig) { c.Steps = 0 },
		"zero paths":     func(c *RunConfig) { c.PathCount = 0 },
		"negative sigma": func(c *RunConfig) { c.Volatility = -0.1 },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := defaultConfig()
			mutate(&cfg)
			_, err := SimulateRun(cfg, nil)
			assert.ErrorIs(t, err, pricing.ErrInvalidInput)
		})
	}
}
