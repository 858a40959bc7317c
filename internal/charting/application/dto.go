package application

import "github.com/wyfcoding/optionslab/internal/charting/domain"

// SweepRequest 参数扫描请求。Range/Points 为 0 时使用默认值
type SweepRequest struct {
	Type         string  `json:"type" binding:"required"`
	Underlying   float64 `json:"underlying_price"`
	Strike       float64 `json:"strike_price" binding:"required"`
	Maturity     float64 `json:"time_to_maturity"`
	RiskFreeRate float64 `json:"risk_free_rate"`
	Volatility   float64 `json:"volatility"`

	MinVol  float64 `json:"min_vol"`
	MaxVol  float64 `json:"max_vol"`
	VolStep float64 `json:"vol_step"`
	Range   float64 `json:"range"`
	Points  int     `json:"points"`
}

// SeriesDTO 单曲线结果
type SeriesDTO struct {
	Series domain.ChartSeries `json:"series"`
}

// MultiSeriesDTO 多曲线结果（每个波动率档位一条）
type MultiSeriesDTO struct {
	Series []domain.ChartSeries `json:"series"`
}

// GreeksTableDTO 平值 Greeks 随波动率变化的表格，行内波动率为小数形式
type GreeksTableDTO struct {
	Rows []domain.GreeksRow `json:"rows"`
}
