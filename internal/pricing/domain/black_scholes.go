package domain

import (
	"math"
)

// D1 计算 Black-Scholes 公式中的 d1。要求 T>0 且 sigma>0。
func D1(in PricingInput) float64 {
	return (math.Log(in.S/in.K) + (in.R+0.5*in.Sigma*in.Sigma)*in.T) / (in.Sigma * math.Sqrt(in.T))
}

// D2 计算 Black-Scholes 公式中的 d2 = d1 - sigma*sqrt(T)。
func D2(in PricingInput) float64 {
	return D1(in) - in.Sigma*math.Sqrt(in.T)
}

// IntrinsicValue 期权内在价值，T=0 时的价格边界。
func IntrinsicValue(optionType OptionType, s, k float64) float64 {
	if optionType == OptionTypeCall {
		return math.Max(s-k, 0)
	}
	return math.Max(k-s, 0)
}

// Price 计算欧式期权的 Black-Scholes 理论价格（无分红）。
//
// T<=0 时退化为内在价值，不再引用 d1/d2（避免除零）。
// sigma=0 时价格是确定的：折现后的内在价值。
func Price(optionType OptionType, in PricingInput) (float64, error) {
	if !optionType.IsValid() {
		return 0, ErrInvalidOptionType
	}
	if err := in.Validate(); err != nil {
		return 0, err
	}

	if in.T <= 0 {
		return IntrinsicValue(optionType, in.S, in.K), nil
	}

	if in.Sigma == 0 {
		// 无波动时价格确定：Call = max(S - K*e^{-rT}, 0)，Put 对称
		disc := in.K * math.Exp(-in.R*in.T)
		if optionType == OptionTypeCall {
			return math.Max(in.S-disc, 0), nil
		}
		return math.Max(disc-in.S, 0), nil
	}

	d1 := D1(in)
	d2 := d1 - in.Sigma*math.Sqrt(in.T)

	if optionType == OptionTypeCall {
		return in.S*NormCDF(d1) - in.K*math.Exp(-in.R*in.T)*NormCDF(d2), nil
	}
	return in.K*math.Exp(-in.R*in.T)*NormCDF(-d2) - in.S*NormCDF(-d1), nil
}
