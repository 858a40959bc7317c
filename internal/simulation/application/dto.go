package application

import (
	"github.com/shopspring/decimal"

	"github.com/wyfcoding/optionslab/internal/simulation/domain"
)

// RunCommand 发起一次布朗运动模拟
type RunCommand struct {
	Drift        float64 `json:"drift"`
	Volatility   float64 `json:"volatility"`
	Horizon      float64 `json:"horizon" binding:"required"`
	Steps        int     `json:"steps" binding:"required"`
	InitialValue float64 `json:"initial_value" binding:"required"`
	PathCount    int     `json:"path_count" binding:"required"`

	// Seed 可选：给定时整轮模拟可复现；缺省时由服务端掺入时钟
	Seed *int64 `json:"seed,omitempty"`

	// Strike 可选：给定时附带蒙特卡洛期权价格估计
	Strike       float64 `json:"strike,omitempty"`
	OptionType   string  `json:"option_type,omitempty"`
	RiskFreeRate float64 `json:"risk_free_rate,omitempty"`
}

// RunDTO 一次模拟的完整结果
type RunDTO struct {
	Times    []float64             `json:"times"`
	Paths    [][]float64           `json:"paths"`
	Expected []float64             `json:"expected"`
	Stats    domain.PathStatistics `json:"stats"`

	// MonteCarloPrice 仅在请求携带 strike 时出现
	MonteCarloPrice *decimal.Decimal `json:"mc_price,omitempty"`
}
