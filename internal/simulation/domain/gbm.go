package domain

import (
	"fmt"
	"math"

	pricing "github.com/wyfcoding/optionslab/internal/pricing/domain"
)

// RunConfig 一次模拟运行的全部参数
type RunConfig struct {
	Drift        float64 // 漂移 mu (年化)
	Volatility   float64 // 扩散 sigma (年化)
	Horizon      float64 // 时间跨度 (年)
	Steps        int     // 时间步数
	InitialValue float64 // 初始价格 S0
	PathCount    int     // 路径条数
	SeedBase     int64   // 种子基数，每条路径派生独立种子
}

// Validate 校验模拟参数
func (c RunConfig) Validate() error {
	if c.InitialValue <= 0 {
		return fmt.Errorf("%w: initial value must be positive, got %v", pricing.ErrInvalidInput, c.InitialValue)
	}
	if c.Horizon <= 0 {
		return fmt.Errorf("%w: horizon must be positive, got %v", pricing.ErrInvalidInput, c.Horizon)
	}
	if c.Steps <= 0 {
		return fmt.Errorf("%w: steps must be positive, got %d", pricing.ErrInvalidInput, c.Steps)
	}
	if c.PathCount <= 0 {
		return fmt.Errorf("%w: path count must be positive, got %d", pricing.ErrInvalidInput, c.PathCount)
	}
	if c.Volatility < 0 {
		return fmt.Errorf("%w: volatility must be non-negative, got %v", pricing.ErrInvalidInput, c.Volatility)
	}
	return nil
}

// RunResult 模拟结果：时间轴、各条随机路径与确定性期望路径
type RunResult struct {
	Times    []float64   `json:"times"`
	Paths    [][]float64 `json:"paths"`
	Expected []float64   `json:"expected"`
}

// SamplerFactory 按路径下标派生采样器
type SamplerFactory func(seed int64) NormalSampler

// SimulatePath 按欧拉离散生成一条 GBM 路径：
// S_{t+1} = S_t + mu*S_t*dt + sigma*S_t*sqrt(dt)*Z
func SimulatePath(s0, drift, volatility, horizon float64, steps int, sampler NormalSampler) []float64 {
	dt := horizon / float64(steps)
	sqrtDt := math.Sqrt(dt)

	values := make([]float64, steps+1)
	values[0] = s0
	for i := 1; i <= steps; i++ {
		z := sampler.Norm()
		prev := values[i-1]
		values[i] = prev + drift*prev*dt + volatility*prev*sqrtDt*z
	}
	return values
}

// ExpectedPath GBM 的确定性期望路径 S0*exp(mu*t)，与随机路径并排展示
func ExpectedPath(s0, drift, horizon float64, steps int) []float64 {
	dt := horizon / float64(steps)
	values := make([]float64, steps+1)
	for i := 0; i <= steps; i++ {
		values[i] = s0 * math.Exp(drift*dt*float64(i))
	}
	return values
}

// SimulateRun 生成 PathCount 条独立路径与期望路径。
// 第 i 条路径的种子为 SeedBase+i，路径之间不共享采样器状态。
func SimulateRun(cfg RunConfig, newSampler SamplerFactory) (RunResult, error) {
	if err := cfg.Validate(); err != nil {
		return RunResult{}, err
	}
	if newSampler == nil {
		newSampler = func(seed int64) NormalSampler { return NewLCGSampler(seed) }
	}

	dt := cfg.Horizon / float64(cfg.Steps)
	times := make([]float64, cfg.Steps+1)
	for i := 0; i <= cfg.Steps; i++ {
		times[i] = dt * float64(i)
	}

	paths := make([][]float64, cfg.PathCount)
	for i := range paths {
		sampler := newSampler(cfg.SeedBase + int64(i))
		paths[i] = SimulatePath(cfg.InitialValue, cfg.Drift, cfg.Volatility, cfg.Horizon, cfg.Steps, sampler)
	}

	return RunResult{
		Times:    times,
		Paths:    paths,
		Expected: ExpectedPath(cfg.InitialValue, cfg.Drift, cfg.Horizon, cfg.Steps),
	}, nil
}
