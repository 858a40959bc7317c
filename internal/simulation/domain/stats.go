package domain

import (
	"errors"
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	pricing "github.com/wyfcoding/optionslab/internal/pricing/domain"
)

// ErrNoPaths 没有可统计的路径
var ErrNoPaths = errors.New("no simulated paths")

// PathStatistics 终端价格的汇总统计
type PathStatistics struct {
	Mean   float64 `json:"mean"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	StdDev float64 `json:"std_dev"`
}

// TerminalValues 提取每条路径的终端价格
func TerminalValues(paths [][]float64) []float64 {
	finals := make([]float64, 0, len(paths))
	for _, path := range paths {
		if len(path) == 0 {
			continue
		}
		finals = append(finals, path[len(path)-1])
	}
	return finals
}

// CalculatePathStatistics 计算终端价格的均值/极值/标准差
func CalculatePathStatistics(paths [][]float64) (PathStatistics, error) {
	finals := TerminalValues(paths)
	if len(finals) == 0 {
		return PathStatistics{}, ErrNoPaths
	}

	mean, err := stats.Mean(finals)
	if err != nil {
		return PathStatistics{}, fmt.Errorf("failed to calculate mean: %w", err)
	}
	minVal, err := stats.Min(finals)
	if err != nil {
		return PathStatistics{}, fmt.Errorf("failed to calculate min: %w", err)
	}
	maxVal, err := stats.Max(finals)
	if err != nil {
		return PathStatistics{}, fmt.Errorf("failed to calculate max: %w", err)
	}
	stdDev, err := stats.StandardDeviation(finals)
	if err != nil {
		return PathStatistics{}, fmt.Errorf("failed to calculate standard deviation: %w", err)
	}

	return PathStatistics{Mean: mean, Min: minVal, Max: maxVal, StdDev: stdDev}, nil
}

// MonteCarloPrice 用模拟路径的终端价格估计欧式期权价格：折现后的平均收益。
// 漂移取 RunConfig.Drift，因此仅当 drift 取无风险利率时才是风险中性估计。
func MonteCarloPrice(optionType pricing.OptionType, paths [][]float64, strike, riskFreeRate, horizon float64) (float64, error) {
	if !optionType.IsValid() {
		return 0, pricing.ErrInvalidOptionType
	}
	finals := TerminalValues(paths)
	if len(finals) == 0 {
		return 0, ErrNoPaths
	}

	total := 0.0
	for _, s := range finals {
		total += pricing.IntrinsicValue(optionType, s, strike)
	}

	avg := total / float64(len(finals))
	return avg * math.Exp(-riskFreeRate*horizon), nil
}
