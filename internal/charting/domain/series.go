// Package domain 图表数据生成：对定价引擎做参数扫描，产出可直接渲染的数据序列
package domain

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/wyfcoding/optionslab/internal/pricing/domain"
)

// ChartPoint 单个绘图点
type ChartPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ChartSeries 一条曲线，Label 标识曲线（如波动率档位），点按 X 升序排列
type ChartSeries struct {
	Label  string       `json:"label"`
	Points []ChartPoint `json:"points"`
}

// GreeksRow 单个波动率档位下的完整 Greeks。
// Volatility 为小数形式（0.10 表示 10%），百分号展示由前端负责。
type GreeksRow struct {
	Volatility float64 `json:"volatility"`
	Delta      float64 `json:"delta"`
	Gamma      float64 `json:"gamma"`
	Theta      float64 `json:"theta"`
	Vega       float64 `json:"vega"`
	Rho        float64 `json:"rho"`
}

const (
	// DefaultPriceRange 标的价格扫描的默认相对区间（±30%）
	DefaultPriceRange = 0.3
	// DefaultPoints 扫描的默认采样点数
	DefaultPoints = 50
)

// volEpsilon 上界判定的容差：maxVol 恰好落在网格上时不因浮点误差被剔除
const volEpsilon = 0.0001

// volLevels 生成 [minVol, maxVol] 上按 step 等距的波动率档位。
// 采用下标递推而非浮点累加，档位不会超出 maxVol+volEpsilon，档位值保留两位小数。
func volLevels(minVol, maxVol, step float64) ([]float64, error) {
	if step <= 0 {
		return nil, fmt.Errorf("%w: volatility step must be positive, got %v", domain.ErrInvalidInput, step)
	}
	if maxVol < minVol {
		return nil, fmt.Errorf("%w: volatility range inverted [%v, %v]", domain.ErrInvalidInput, minVol, maxVol)
	}

	steps := int(math.Floor((maxVol - minVol + volEpsilon) / step))
	levels := make([]float64, 0, steps+1)
	for i := 0; i <= steps; i++ {
		vol := decimal.NewFromFloat(minVol + float64(i)*step).Round(2)
		levels = append(levels, vol.InexactFloat64())
	}
	return levels, nil
}

// priceGrid 生成以 center 为中心、±rel 相对区间的价格网格，points+1 个采样点。
func priceGrid(center, rel float64, points int) []float64 {
	low := center * (1 - rel)
	width := 2 * rel * center
	grid := make([]float64, 0, points+1)
	for i := 0; i <= points; i++ {
		grid = append(grid, low+width*float64(i)/float64(points))
	}
	return grid
}

// PriceByUnderlying 标的价格扫描：x = 标的价格（围绕当前 S ±rel），y = 期权价格。
func PriceByUnderlying(optionType domain.OptionType, in domain.PricingInput, rel float64, points int) (ChartSeries, error) {
	if err := in.Validate(); err != nil {
		return ChartSeries{}, err
	}
	if rel <= 0 {
		rel = DefaultPriceRange
	}
	if points <= 0 {
		points = DefaultPoints
	}

	series := ChartSeries{
		Label:  string(optionType),
		Points: make([]ChartPoint, 0, points+1),
	}
	for _, s := range priceGrid(in.S, rel, points) {
		eval := in
		eval.S = s
		price, err := domain.Price(optionType, eval)
		if err != nil {
			return ChartSeries{}, err
		}
		series.Points = append(series.Points, ChartPoint{X: s, Y: price})
	}
	return series, nil
}

// PriceByUnderlyingAndVolatility 双重扫描：每个波动率档位一条曲线，
// x 轴以执行价 K 为中心（而非 S），所有曲线共享同一 x 域。
func PriceByUnderlyingAndVolatility(optionType domain.OptionType, in domain.PricingInput, minVol, maxVol, volStep, rel float64, points int) ([]ChartSeries, error) {
	return sweepByVolatility(optionType, in, minVol, maxVol, volStep, rel, points,
		func(oType domain.OptionType, eval domain.PricingInput) (float64, error) {
			return domain.Price(oType, eval)
		})
}

// DeltaByUnderlyingAndVolatility 与 PriceByUnderlyingAndVolatility 相同的扫描结构，y = Delta。
func DeltaByUnderlyingAndVolatility(optionType domain.OptionType, in domain.PricingInput, minVol, maxVol, volStep, rel float64, points int) ([]ChartSeries, error) {
	return sweepByVolatility(optionType, in, minVol, maxVol, volStep, rel, points,
		func(oType domain.OptionType, eval domain.PricingInput) (float64, error) {
			greeks, err := domain.CalculateGreeks(oType, eval)
			if err != nil {
				return 0, err
			}
			return greeks.Delta, nil
		})
}

func sweepByVolatility(optionType domain.OptionType, in domain.PricingInput, minVol, maxVol, volStep, rel float64, points int, eval func(domain.OptionType, domain.PricingInput) (float64, error)) ([]ChartSeries, error) {
	// x 域以 K 为中心，S 仅作为校验基准，缺省时取 K
	if in.S == 0 {
		in.S = in.K
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if rel <= 0 {
		rel = DefaultPriceRange
	}
	if points <= 0 {
		points = DefaultPoints
	}

	levels, err := volLevels(minVol, maxVol, volStep)
	if err != nil {
		return nil, err
	}

	grid := priceGrid(in.K, rel, points)
	result := make([]ChartSeries, 0, len(levels))
	for _, vol := range levels {
		series := ChartSeries{
			Label:  fmt.Sprintf("%.2f", vol),
			Points: make([]ChartPoint, 0, len(grid)),
		}
		for _, s := range grid {
			point := in
			point.S = s
			point.Sigma = vol
			y, err := eval(optionType, point)
			if err != nil {
				return nil, err
			}
			series.Points = append(series.Points, ChartPoint{X: s, Y: y})
		}
		result = append(result, series)
	}
	return result, nil
}

// GreeksByVolatilityAtTheMoney 固定 S=K（平值），只扫波动率，每个档位返回完整 Greeks。
func GreeksByVolatilityAtTheMoney(optionType domain.OptionType, in domain.PricingInput, minVol, maxVol, volStep float64) ([]GreeksRow, error) {
	// 平值约定：S 固定为 K，调用方无需提供标的价格
	in.S = in.K
	if err := in.Validate(); err != nil {
		return nil, err
	}
	levels, err := volLevels(minVol, maxVol, volStep)
	if err != nil {
		return nil, err
	}

	rows := make([]GreeksRow, 0, len(levels))
	for _, vol := range levels {
		atm := in
		atm.Sigma = vol
		greeks, err := domain.CalculateGreeks(optionType, atm)
		if err != nil {
			return nil, err
		}
		rows = append(rows, GreeksRow{
			Volatility: vol,
			Delta:      greeks.Delta,
			Gamma:      greeks.Gamma,
			Theta:      greeks.Theta,
			Vega:       greeks.Vega,
			Rho:        greeks.Rho,
		})
	}
	return rows, nil
}

// ApproximateDelta 用中心差分数值逼近 Delta，用于与解析 Delta 的交叉验证展示。
// 两者应在 O(eps²) 内一致。
func ApproximateDelta(optionType domain.OptionType, in domain.PricingInput, eps float64) (float64, error) {
	if eps <= 0 {
		eps = 0.01
	}

	up := in
	up.S = in.S + eps
	down := in
	down.S = in.S - eps

	priceUp, err := domain.Price(optionType, up)
	if err != nil {
		return 0, err
	}
	priceDown, err := domain.Price(optionType, down)
	if err != nil {
		return 0, err
	}
	return (priceUp - priceDown) / (2 * eps), nil
}
