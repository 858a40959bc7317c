// Package application 期权定价服务的应用层：请求到领域输入的转换与结果封装
package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/wyfcoding/optionslab/internal/pricing/domain"
	"github.com/wyfcoding/optionslab/pkg/metrics"
)

// resultScale 对外展示的结果精度（小数位）
const resultScale = 6

// PricingService 处理定价相关的读操作
type PricingService struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewPricingService 构造函数，metrics 可为 nil（测试场景）
func NewPricingService(logger *slog.Logger, m *metrics.Metrics) *PricingService {
	return &PricingService{logger: logger, metrics: m}
}

func toDomainInput(req EvaluateRequest) domain.PricingInput {
	return domain.PricingInput{
		S:     req.Underlying,
		K:     req.Strike,
		T:     req.Maturity,
		R:     req.RiskFreeRate,
		Sigma: req.Volatility,
	}
}

// Price 计算期权理论价格
func (s *PricingService) Price(ctx context.Context, req EvaluateRequest) (*PriceDTO, error) {
	optionType := domain.OptionType(req.Type)

	price, err := domain.Price(optionType, toDomainInput(req))
	if err != nil {
		return nil, fmt.Errorf("failed to price option: %w", err)
	}
	if s.metrics != nil {
		s.metrics.PriceEvaluationsTotal.Inc()
	}

	s.logger.DebugContext(ctx, "option priced",
		"type", req.Type, "underlying", req.Underlying, "strike", req.Strike, "price", price)

	return &PriceDTO{
		Type:  string(optionType),
		Price: decimal.NewFromFloat(price).Round(resultScale),
	}, nil
}

// Greeks 计算解析 Greeks
func (s *PricingService) Greeks(ctx context.Context, req EvaluateRequest) (*GreeksDTO, error) {
	optionType := domain.OptionType(req.Type)

	greeks, err := domain.CalculateGreeks(optionType, toDomainInput(req))
	if err != nil {
		return nil, fmt.Errorf("failed to calculate greeks: %w", err)
	}
	if s.metrics != nil {
		s.metrics.GreeksEvaluationsTotal.Inc()
	}

	return &GreeksDTO{
		Type:  string(optionType),
		Delta: greeks.Delta,
		Gamma: greeks.Gamma,
		Theta: greeks.Theta,
		Vega:  greeks.Vega,
		Rho:   greeks.Rho,
	}, nil
}

// ImpliedVolatility 从市场价格反解隐含波动率
func (s *PricingService) ImpliedVolatility(ctx context.Context, req ImpliedVolRequest) (*ImpliedVolDTO, error) {
	optionType := domain.OptionType(req.Type)
	in := domain.PricingInput{
		S: req.Underlying,
		K: req.Strike,
		T: req.Maturity,
		R: req.RiskFreeRate,
		// Sigma 由求解器迭代，不从请求读取
	}

	iv, err := domain.ImpliedVolatility(optionType, in, req.MarketPrice)
	if err != nil {
		return nil, fmt.Errorf("failed to solve implied volatility: %w", err)
	}

	s.logger.InfoContext(ctx, "implied volatility solved",
		"type", req.Type, "market_price", req.MarketPrice, "implied_vol", iv)

	return &ImpliedVolDTO{
		Type:       string(optionType),
		ImpliedVol: decimal.NewFromFloat(iv).Round(resultScale),
	}, nil
}
