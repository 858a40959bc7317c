package domain

import (
	"math"
)

// Greeks 期权敏感度指标。
// Theta 为每日值（年化后除以 365），Vega/Rho 对应 1 个百分点的变动。
type Greeks struct {
	Delta float64
	Gamma float64
	Theta float64
	Vega  float64
	Rho   float64
}

// CalculateGreeks 计算欧式期权的解析 Greeks。
//
// T<=0 边界：实值期权 Delta 为 +1（Call）/ -1（Put），其余 Greeks 全为 0。
func CalculateGreeks(optionType OptionType, in PricingInput) (Greeks, error) {
	if !optionType.IsValid() {
		return Greeks{}, ErrInvalidOptionType
	}
	if err := in.Validate(); err != nil {
		return Greeks{}, err
	}

	if in.T <= 0 {
		return expiryGreeks(optionType, in), nil
	}
	if in.Sigma == 0 {
		// 无波动时价格退化为 max(S - K*e^{-rT}, 0)，Delta 按贴现执行价的实值方向取 ±1
		frozen := in
		frozen.K = in.K * math.Exp(-in.R*in.T)
		return expiryGreeks(optionType, frozen), nil
	}

	d1 := D1(in)
	d2 := d1 - in.Sigma*math.Sqrt(in.T)
	pdfD1 := NormPDF(d1)
	discK := in.K * math.Exp(-in.R*in.T)

	var greeks Greeks
	greeks.Gamma = pdfD1 / (in.S * in.Sigma * math.Sqrt(in.T))
	greeks.Vega = in.S * math.Sqrt(in.T) * pdfD1 / 100

	if optionType == OptionTypeCall {
		greeks.Delta = NormCDF(d1)
		greeks.Theta = (-in.S*pdfD1*in.Sigma/(2*math.Sqrt(in.T)) - in.R*discK*NormCDF(d2)) / 365
		greeks.Rho = discK * in.T * NormCDF(d2) / 100
	} else {
		greeks.Delta = NormCDF(d1) - 1
		greeks.Theta = (-in.S*pdfD1*in.Sigma/(2*math.Sqrt(in.T)) + in.R*discK*NormCDF(-d2)) / 365
		greeks.Rho = -discK * in.T * NormCDF(-d2) / 100
	}

	return greeks, nil
}

// expiryGreeks 到期时的退化 Greeks：只剩方向性的 Delta。
func expiryGreeks(optionType OptionType, in PricingInput) Greeks {
	var g Greeks
	if optionType == OptionTypeCall && in.S > in.K {
		g.Delta = 1
	}
	if optionType == OptionTypePut && in.S < in.K {
		g.Delta = -1
	}
	return g
}
