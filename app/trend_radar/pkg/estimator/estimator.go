// Package estimator 定义合成数据策略：生成服务不提供的数值字段由这里统一估算。
//
// 所有取值区间都是闭区间，Jitter 为半开区间 [0.8, 1.2)。
package estimator

import (
	"math/rand/v2"
	"sync"

	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/model"
)

const (
	VelocityMin, VelocityMax       = 60, 99
	ChangeMin, ChangeMax           = 20, 519
	SignalCountMin, SignalCountMax = 500, 2499
	WhaleCountMin, WhaleCountMax   = 2, 16
	ConfidenceMin, ConfidenceMax   = 80, 99
	JitterMin, JitterMax           = 0.8, 1.2
)

// sparklineLength 每个时间窗口的数据点数量
var sparklineLength = map[model.TimeFrame]int{
	model.TimeFrame1H:  12,
	model.TimeFrame6H:  12,
	model.TimeFrame24H: 24,
	model.TimeFrame7D:  14,
	model.TimeFrame1M:  30,
}

// Estimator 合成数据估算器
type Estimator interface {
	// Velocity 综合评分 [60, 99]
	Velocity() int
	// Change 变化百分比 [20, 519]
	Change() int
	// SignalCount 原始信号数 [500, 2499]
	SignalCount() int
	// WhaleCount 巨鲸数量 [2, 16]
	WhaleCount() int
	// Confidence AI 置信度 [80, 99]
	Confidence() int
	// Jitter 价格抖动系数 [0.8, 1.2)
	Jitter() float64
	// Sparkline 五个时间窗口的走势数据
	Sparkline() map[model.TimeFrame][]model.Point
}

// Random 基于伪随机数的估算器，可并发使用
type Random struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandom 创建随机估算器，相同 seed 产生相同序列
func NewRandom(seed uint64) *Random {
	return &Random{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

var _ Estimator = (*Random)(nil)

func (r *Random) between(lo, hi int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return lo + r.rnd.IntN(hi-lo+1)
}

func (r *Random) Velocity() int    { return r.between(VelocityMin, VelocityMax) }
func (r *Random) Change() int      { return r.between(ChangeMin, ChangeMax) }
func (r *Random) SignalCount() int { return r.between(SignalCountMin, SignalCountMax) }
func (r *Random) WhaleCount() int  { return r.between(WhaleCountMin, WhaleCountMax) }
func (r *Random) Confidence() int  { return r.between(ConfidenceMin, ConfidenceMax) }

func (r *Random) Jitter() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return JitterMin + r.rnd.Float64()*(JitterMax-JitterMin)
}

// Sparkline 从 50 开始做有界随机游走
func (r *Random) Sparkline() map[model.TimeFrame][]model.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[model.TimeFrame][]model.Point, len(model.TimeFrames))
	for _, tf := range model.TimeFrames {
		n := sparklineLength[tf]
		pts := make([]model.Point, n)
		v := 50.0
		for i := range pts {
			v += r.rnd.Float64()*20 - 8 // 略微上扬
			if v < 0 {
				v = 0
			}
			if v > 100 {
				v = 100
			}
			pts[i] = model.Point{Value: v}
		}
		out[tf] = pts
	}
	return out
}

// Static 返回固定值的估算器，用于测试
type Static struct {
	VelocityValue    int
	ChangeValue      int
	SignalCountValue int
	WhaleCountValue  int
	ConfidenceValue  int
	JitterValue      float64
	SparklineValue   float64
}

var _ Estimator = Static{}

func (s Static) Velocity() int    { return s.VelocityValue }
func (s Static) Change() int      { return s.ChangeValue }
func (s Static) SignalCount() int { return s.SignalCountValue }
func (s Static) WhaleCount() int  { return s.WhaleCountValue }
func (s Static) Confidence() int  { return s.ConfidenceValue }
func (s Static) Jitter() float64  { return s.JitterValue }

func (s Static) Sparkline() map[model.TimeFrame][]model.Point {
	out := make(map[model.TimeFrame][]model.Point, len(model.TimeFrames))
	for _, tf := range model.TimeFrames {
		pts := make([]model.Point, sparklineLength[tf])
		for i := range pts {
			pts[i] = model.Point{Value: s.SparklineValue}
		}
		out[tf] = pts
	}
	return out
}
