package application

import "github.com/shopspring/decimal"

// EvaluateRequest 单点定价/Greeks 请求
type EvaluateRequest struct {
	Type         string  `json:"type" binding:"required"`
	Underlying   float64 `json:"underlying_price" binding:"required"`
	Strike       float64 `json:"strike_price" binding:"required"`
	Maturity     float64 `json:"time_to_maturity"`
	RiskFreeRate float64 `json:"risk_free_rate"`
	Volatility   float64 `json:"volatility"`
}

// PriceDTO 定价结果
type PriceDTO struct {
	Type  string          `json:"type"`
	Price decimal.Decimal `json:"price"`
}

// GreeksDTO Greeks 结果。Theta 为每日值，Vega/Rho 对应 1 个百分点变动
type GreeksDTO struct {
	Type  string  `json:"type"`
	Delta float64 `json:"delta"`
	Gamma float64 `json:"gamma"`
	Theta float64 `json:"theta"`
	Vega  float64 `json:"vega"`
	Rho   float64 `json:"rho"`
}

// ImpliedVolRequest 隐含波动率请求
type ImpliedVolRequest struct {
	Type         string  `json:"type" binding:"required"`
	Underlying   float64 `json:"underlying_price" binding:"required"`
	Strike       float64 `json:"strike_price" binding:"required"`
	Maturity     float64 `json:"time_to_maturity"`
	RiskFreeRate float64 `json:"risk_free_rate"`
	MarketPrice  float64 `json:"market_price" binding:"required"`
}

// ImpliedVolDTO 隐含波动率结果
type ImpliedVolDTO struct {
	Type       string          `json:"type"`
	ImpliedVol decimal.Decimal `json:"implied_vol"`
}
