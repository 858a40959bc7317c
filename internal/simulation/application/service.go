// Package application 模拟服务的应用层：种子派生、限额校验、路径生成与统计汇总
package application

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	pricing "github.com/wyfcoding/optionslab/internal/pricing/domain"
	"github.com/wyfcoding/optionslab/internal/simulation/domain"
	"github.com/wyfcoding/optionslab/pkg/metrics"
)

// Limits 单次模拟请求的资源上限
type Limits struct {
	MaxPaths int
	MaxSteps int
}

// SimulationService 处理布朗运动模拟
type SimulationService struct {
	logger     *slog.Logger
	metrics    *metrics.Metrics
	newSampler domain.SamplerFactory
	limits     Limits
	now        func() time.Time
}

// NewSimulationService 构造函数。sampler 为 nil 时使用默认的 LCG 采样器，
// metrics 可为 nil（测试场景）。
func NewSimulationService(logger *slog.Logger, m *metrics.Metrics, newSampler domain.SamplerFactory, limits Limits) *SimulationService {
	return &SimulationService{
		logger:     logger,
		metrics:    m,
		newSampler: newSampler,
		limits:     limits,
		now:        time.Now,
	}
}

// Run 执行一轮模拟
func (s *SimulationService) Run(ctx context.Context, cmd RunCommand) (*RunDTO, error) {
	if s.limits.MaxPaths > 0 && cmd.PathCount > s.limits.MaxPaths {
		return nil, fmt.Errorf("%w: path count %d exceeds limit %d", pricing.ErrInvalidInput, cmd.PathCount, s.limits.MaxPaths)
	}
	if s.limits.MaxSteps > 0 && cmd.Steps > s.limits.MaxSteps {
		return nil, fmt.Errorf("%w: steps %d exceeds limit %d", pricing.ErrInvalidInput, cmd.Steps, s.limits.MaxSteps)
	}

	seedBase := s.now().UnixNano()
	if cmd.Seed != nil {
		seedBase = *cmd.Seed
	}

	cfg := domain.RunConfig{
		Drift:        cmd.Drift,
		Volatility:   cmd.Volatility,
		Horizon:      cmd.Horizon,
		Steps:        cmd.Steps,
		InitialValue: cmd.InitialValue,
		PathCount:    cmd.PathCount,
		SeedBase:     seedBase,
	}

	start := s.now()
	result, err := domain.SimulateRun(cfg, s.newSampler)
	if err != nil {
		return nil, fmt.Errorf("failed to simulate paths: %w", err)
	}

	if s.metrics != nil {
		s.metrics.SimulationPathsTotal.Add(float64(cmd.PathCount))
		s.metrics.SimulationDuration.Observe(time.Since(start).Seconds())
	}

	pathStats, err := domain.CalculatePathStatistics(result.Paths)
	if err != nil {
		return nil, fmt.Errorf("failed to compute path statistics: %w", err)
	}

	dto := &RunDTO{
		Times:    result.Times,
		Paths:    result.Paths,
		Expected: result.Expected,
		Stats:    pathStats,
	}

	if cmd.Strike > 0 {
		optionType := pricing.OptionType(cmd.OptionType)
		if cmd.OptionType == "" {
			optionType = pricing.OptionTypeCall
		}
		mcPrice, err := domain.MonteCarloPrice(optionType, result.Paths, cmd.Strike, cmd.RiskFreeRate, cmd.Horizon)
		if err != nil {
			return nil, fmt.Errorf("failed to estimate monte carlo price: %w", err)
		}
		rounded := decimal.NewFromFloat(mcPrice).Round(6)
		dto.MonteCarloPrice = &rounded
	}

	s.logger.InfoContext(ctx, "simulation completed",
		"paths", cmd.PathCount, "steps", cmd.Steps, "horizon", cmd.Horizon, "seeded", cmd.Seed != nil)

	return dto, nil
}
