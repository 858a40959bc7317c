// Package domain 期权定价服务的领域模型：Black-Scholes 定价、Greeks 计算与隐含波动率求解
package domain

import (
	"errors"
	"fmt"
)

// OptionType 期权类型
type OptionType string

const (
	OptionTypeCall OptionType = "CALL" // 看涨期权
	OptionTypePut  OptionType = "PUT"  // 看跌期权
)

// IsValid 校验期权类型
func (t OptionType) IsValid() bool {
	return t == OptionTypeCall || t == OptionTypePut
}

var (
	// ErrInvalidInput 无效的定价输入
	ErrInvalidInput = errors.New("invalid pricing input")
	// ErrInvalidOptionType 无效的期权类型
	ErrInvalidOptionType = errors.New("invalid option type")
)

// PricingInput Black-Scholes 模型输入
type PricingInput struct {
	S     float64 // 标的资产价格
	K     float64 // 执行价格
	T     float64 // 到期时间 (年)
	R     float64 // 无风险利率
	Sigma float64 // 波动率 (年化)
}

// Validate 校验定价输入。T=0 是合法的到期边界，σ 仅在 T>0 时要求为正。
func (in PricingInput) Validate() error {
	if in.S <= 0 {
		return fmt.Errorf("%w: underlying price must be positive, got %v", ErrInvalidInput, in.S)
	}
	if in.K <= 0 {
		return fmt.Errorf("%w: strike price must be positive, got %v", ErrInvalidInput, in.K)
	}
	if in.T < 0 {
		return fmt.Errorf("%w: time to maturity must be non-negative, got %v", ErrInvalidInput, in.T)
	}
	if in.T > 0 && in.Sigma < 0 {
		return fmt.Errorf("%w: volatility must be non-negative, got %v", ErrInvalidInput, in.Sigma)
	}
	return nil
}
