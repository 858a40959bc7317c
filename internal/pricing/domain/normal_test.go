package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormCDF(t *testing.T) {
	assert.InDelta(t, 0.5, NormCDF(0), 1e-12)

	// 对称性：N(-x) = 1 - N(x)
	for x := -10.0; x <= 10.0; x += 0.25 {
		assert.InDelta(t, 1-NormCDF(x), NormCDF(-x), 1e-9, "x=%v", x)
	}

	// 已知参考值
	assert.InDelta(t, 0.8413447460685429, NormCDF(1), 1e-9)
	assert.InDelta(t, 0.9772498680518208, NormCDF(2), 1e-9)
	assert.InDelta(t, 0.022750131948179195, NormCDF(-2), 1e-9)

	// 尾部饱和到 0/1
	assert.Equal(t, 0.0, NormCDF(-40))
	assert.Equal(t, 1.0, NormCDF(40))
}

func TestNormPDF(t *testing.T) {
	assert.InDelta(t, 1/math.Sqrt(2*math.Pi), NormPDF(0), 1e-12)

	// 偶函数
	for x := 0.0; x <= 5.0; x += 0.5 {
		assert.Equal(t, NormPDF(x), NormPDF(-x), "x=%v", x)
	}

	// pdf 是 cdf 的导数（中心差分校验）
	const h = 1e-6
	for x := -3.0; x <= 3.0; x += 0.5 {
		numeric := (NormCDF(x+h) - NormCDF(x-h)) / (2 * h)
		assert.InDelta(t, NormPDF(x), numeric, 1e-6, "x=%v", x)
	}
}
