// Package feed 实现趋势流的过滤与排序。
//
// Filter 是纯函数：相同输入和相同 now 得到相同输出，可在每次渲染时重复调用。
package feed

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/model"
)

// CapFilter 加密货币市值分层过滤
type CapFilter string

const (
	CapAll  CapFilter = "ALL"
	CapHigh CapFilter = "HIGH_CAP"
	CapLow  CapFilter = "LOW_CAP"
)

// timeLimits 各时间窗口允许的最大年龄
var timeLimits = map[model.TimeFrame]time.Duration{
	model.TimeFrame1H:  time.Hour,
	model.TimeFrame6H:  6 * time.Hour,
	model.TimeFrame24H: 24 * time.Hour,
	model.TimeFrame7D:  7 * 24 * time.Hour,
	model.TimeFrame1M:  30 * 24 * time.Hour,
}

// TimeLimit 返回窗口对应的最大年龄，未知窗口按 24H 处理
func TimeLimit(tf model.TimeFrame) time.Duration {
	if d, ok := timeLimits[tf]; ok {
		return d
	}
	return timeLimits[model.TimeFrame24H]
}

// Query 过滤条件
type Query struct {
	Category  model.Category
	TimeFrame model.TimeFrame
	// MinVelocity 绑定的是 change 字段，而不是 velocity 字段（界面上标注为 "Velocity"）
	MinVelocity int
	// Cap 只在 Category 为 CRYPTO 时生效
	Cap CapFilter
}

// Filter 依次按分类、市值分层、变化阈值、时间窗口过滤，然后按 change 降序稳定排序
func Filter(candidates []model.TrendRecord, q Query, now time.Time) []model.TrendRecord {
	maxAge := TimeLimit(q.TimeFrame).Milliseconds()
	nowMs := now.UnixMilli()

	out := make([]model.TrendRecord, 0, len(candidates))
	for _, t := range candidates {
		if t.Category != q.Category {
			continue
		}
		if q.Category == model.CategoryCrypto && !matchCap(t, q.Cap) {
			continue
		}
		if t.Change < q.MinVelocity {
			continue
		}
		if nowMs-t.TimestampValue > maxAge {
			continue
		}
		out = append(out, t)
	}

	slices.SortStableFunc(out, func(a, b model.TrendRecord) int {
		return b.Change - a.Change
	})
	return out
}

func matchCap(t model.TrendRecord, c CapFilter) bool {
	switch c {
	case CapHigh:
		return t.CryptoMetrics != nil && t.CryptoMetrics.IsHighCap
	case CapLow:
		return t.CryptoMetrics != nil && !t.CryptoMetrics.IsHighCap
	default:
		return true
	}
}

// ParseQuery 从字符串参数构造查询，空值使用默认：24H、最小变化 0、ALL
func ParseQuery(category, timeFrame string, minVelocity int, capFilter string) (Query, error) {
	q := Query{
		Category:    model.Category(strings.ToUpper(strings.TrimSpace(category))),
		TimeFrame:   model.TimeFrame24H,
		MinVelocity: minVelocity,
		Cap:         CapAll,
	}
	if !q.Category.Valid() {
		return Query{}, fmt.Errorf("unknown category %q", category)
	}
	if timeFrame != "" {
		q.TimeFrame = model.TimeFrame(strings.ToUpper(strings.TrimSpace(timeFrame)))
		if !q.TimeFrame.Valid() {
			return Query{}, fmt.Errorf("unknown time frame %q", timeFrame)
		}
	}
	if minVelocity < 0 {
		return Query{}, fmt.Errorf("min velocity must be >= 0, got %d", minVelocity)
	}
	if capFilter != "" {
		q.Cap = CapFilter(strings.ToUpper(strings.TrimSpace(capFilter)))
		switch q.Cap {
		case CapAll, CapHigh, CapLow:
		default:
			return Query{}, fmt.Errorf("unknown cap filter %q", capFilter)
		}
	}
	return q, nil
}
