// Package domain 布朗运动模拟的领域模型：正态采样器、GBM 路径生成与路径统计
package domain

import (
	"math"
	"math/rand"
)

// NormalSampler 产生近似标准正态分布的随机数。
// 契约：同一种实现在相同种子下产生相同序列（路径可复现）。
type NormalSampler interface {
	Norm() float64
}

// LCG 常数，演示用途的轻量生成器，不具备统计学强度
const (
	lcgMultiplier = 9301
	lcgIncrement  = 49297
	lcgModulus    = 233280
)

// LCGSampler 线性同余 + Box-Muller 的正态采样器。
// 仅用于图表演示的可复现性，不可用于任何需要统计严格性的场景。
type LCGSampler struct {
	seed int64
}

// NewLCGSampler 创建以 seed 初始化的采样器
func NewLCGSampler(seed int64) *LCGSampler {
	s := seed % lcgModulus
	if s < 0 {
		s += lcgModulus
	}
	return &LCGSampler{seed: s}
}

// uniform 返回 (0,1) 上的伪随机数并推进内部状态
func (g *LCGSampler) uniform() float64 {
	g.seed = (g.seed*lcgMultiplier + lcgIncrement) % lcgModulus
	return float64(g.seed) / lcgModulus
}

// Norm 通过 Box-Muller 变换产生一个近似标准正态随机数
func (g *LCGSampler) Norm() float64 {
	u1 := g.uniform()
	u2 := g.uniform()
	if u1 <= 0 {
		u1 = 1.0 / lcgModulus
	}
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}

// RandSampler 基于 math/rand 的正态采样器，可替换 LCGSampler 的生产实现
type RandSampler struct {
	rng *rand.Rand
}

// NewRandSampler 创建以 seed 初始化的采样器
func NewRandSampler(seed int64) *RandSampler {
	return &RandSampler{rng: rand.New(rand.NewSource(seed))}
}

// Norm 返回一个标准正态随机数
func (g *RandSampler) Norm() float64 {
	return g.rng.NormFloat64()
}
