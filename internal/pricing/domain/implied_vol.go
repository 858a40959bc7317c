package domain

import (
	"errors"
	"math"
)

// ErrIVNotConverged 隐含波动率迭代未收敛
var ErrIVNotConverged = errors.New("implied volatility did not converge")

const (
	ivInitialGuess  = 0.3
	ivTolerance     = 0.0001
	ivMaxIterations = 100
	ivFloor         = 0.001
)

// ImpliedVolatility 用牛顿法从市场价格反解隐含波动率。
//
// 市场价格低于无套利下界（内在价值折现后）时无解，返回 ErrIVNotConverged。
func ImpliedVolatility(optionType OptionType, in PricingInput, marketPrice float64) (float64, error) {
	if !optionType.IsValid() {
		return 0, ErrInvalidOptionType
	}
	if err := in.Validate(); err != nil {
		return 0, err
	}
	if in.T <= 0 || marketPrice <= 0 {
		return 0, ErrIVNotConverged
	}

	sigma := ivInitialGuess
	for iter := 0; iter < ivMaxIterations; iter++ {
		trial := in
		trial.Sigma = sigma

		price, err := Price(optionType, trial)
		if err != nil {
			return 0, err
		}

		diff := price - marketPrice
		if math.Abs(diff) < ivTolerance {
			return sigma, nil
		}

		// vega 这里用原始量纲（未除以 100）作为牛顿法导数
		d1 := D1(trial)
		vega := trial.S * math.Sqrt(trial.T) * NormPDF(d1)
		if vega == 0 {
			break
		}

		sigma -= diff / vega
		if sigma < ivFloor {
			sigma = ivFloor
		}
	}

	return 0, ErrIVNotConverged
}
