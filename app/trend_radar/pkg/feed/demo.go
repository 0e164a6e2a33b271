package feed

import (
	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/model"
)

const (
	// DemoVisible 演示模式下可见的条数
	DemoVisible = 2
	// DemoHiddenSlots 演示模式下固定展示的占位数量
	DemoHiddenSlots = 12
)

// DemoView 演示模式视图，只是对过滤结果的截断，不参与过滤
type DemoView struct {
	Visible     []model.TrendRecord `json:"visible"`
	HiddenSlots int                 `json:"hiddenSlots"`
}

// Demo 取前 DemoVisible 条，并报告固定数量的占位
func Demo(records []model.TrendRecord) DemoView {
	n := min(len(records), DemoVisible)
	return DemoView{
		Visible:     records[:n:n],
		HiddenSlots: DemoHiddenSlots,
	}
}

// Full 非演示模式视图
func Full(records []model.TrendRecord) DemoView {
	return DemoView{Visible: records}
}
