// Package application 图表服务的应用层：把 UI 的扫描请求翻译成生成器调用
package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wyfcoding/optionslab/internal/charting/domain"
	pricing "github.com/wyfcoding/optionslab/internal/pricing/domain"
	"github.com/wyfcoding/optionslab/pkg/metrics"
)

// ChartingService 处理图表数据生成
type ChartingService struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewChartingService 构造函数，metrics 可为 nil（测试场景）
func NewChartingService(logger *slog.Logger, m *metrics.Metrics) *ChartingService {
	return &ChartingService{logger: logger, metrics: m}
}

func (s *ChartingService) countPoints(series []domain.ChartSeries) {
	if s.metrics == nil {
		return
	}
	total := 0
	for _, cs := range series {
		total += len(cs.Points)
	}
	s.metrics.SeriesPointsTotal.Add(float64(total))
}

func toPricingInput(req SweepRequest) pricing.PricingInput {
	return pricing.PricingInput{
		S:     req.Underlying,
		K:     req.Strike,
		T:     req.Maturity,
		R:     req.RiskFreeRate,
		Sigma: req.Volatility,
	}
}

// PriceSeries 标的价格扫描下的期权价格曲线
func (s *ChartingService) PriceSeries(ctx context.Context, req SweepRequest) (*SeriesDTO, error) {
	series, err := domain.PriceByUnderlying(pricing.OptionType(req.Type), toPricingInput(req), req.Range, req.Points)
	if err != nil {
		return nil, fmt.Errorf("failed to generate price series: %w", err)
	}

	s.countPoints([]domain.ChartSeries{series})
	s.logger.DebugContext(ctx, "price series generated", "type", req.Type, "points", len(series.Points))
	return &SeriesDTO{Series: series}, nil
}

// VolatilitySeries 每个波动率档位一条价格曲线
func (s *ChartingService) VolatilitySeries(ctx context.Context, req SweepRequest) (*MultiSeriesDTO, error) {
	all, err := domain.PriceByUnderlyingAndVolatility(
		pricing.OptionType(req.Type), toPricingInput(req),
		req.MinVol, req.MaxVol, req.VolStep, req.Range, req.Points)
	if err != nil {
		return nil, fmt.Errorf("failed to generate volatility series: %w", err)
	}

	s.countPoints(all)
	s.logger.DebugContext(ctx, "volatility series generated", "type", req.Type, "series", len(all))
	return &MultiSeriesDTO{Series: all}, nil
}

// DeltaSeries 每个波动率档位一条 Delta 曲线
func (s *ChartingService) DeltaSeries(ctx context.Context, req SweepRequest) (*MultiSeriesDTO, error) {
	all, err := domain.DeltaByUnderlyingAndVolatility(
		pricing.OptionType(req.Type), toPricingInput(req),
		req.MinVol, req.MaxVol, req.VolStep, req.Range, req.Points)
	if err != nil {
		return nil, fmt.Errorf("failed to generate delta series: %w", err)
	}

	s.countPoints(all)
	return &MultiSeriesDTO{Series: all}, nil
}

// GreeksByVolatility 平值下全量 Greeks 随波动率的变化
func (s *ChartingService) GreeksByVolatility(ctx context.Context, req SweepRequest) (*GreeksTableDTO, error) {
	rows, err := domain.GreeksByVolatilityAtTheMoney(
		pricing.OptionType(req.Type), toPricingInput(req),
		req.MinVol, req.MaxVol, req.VolStep)
	if err != nil {
		return nil, fmt.Errorf("failed to generate greeks table: %w", err)
	}

	return &GreeksTableDTO{Rows: rows}, nil
}
