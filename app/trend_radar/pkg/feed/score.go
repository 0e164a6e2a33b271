package feed

import (
	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/model"
)

// DefaultSourceWeight 未登记数据源的权重
const DefaultSourceWeight = 0.5

// ScoreBreakdown 趋势评分的组成部分，仅用于展示：
// 原始信号数 × 数据源权重 + 上下文速度，总分取记录自带的 velocity
type ScoreBreakdown struct {
	RawSignals      int     `json:"rawSignals"`
	SourceWeight    float64 `json:"sourceWeight"`
	ContextVelocity float64 `json:"contextVelocity"`
	TotalScore      int     `json:"totalScore"`
}

// Breakdown 计算评分拆解
func Breakdown(t model.TrendRecord, sources []model.Source) ScoreBreakdown {
	weight := DefaultSourceWeight
	for _, s := range sources {
		if s.Name == t.Source && s.Reputation > 0 {
			weight = s.Reputation
			break
		}
	}
	return ScoreBreakdown{
		RawSignals:      t.SignalCount,
		SourceWeight:    weight,
		ContextVelocity: t.Metrics.ContextVelocity,
		TotalScore:      t.Velocity,
	}
}
