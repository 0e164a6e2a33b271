// Package detail 编排单条趋势的详情流程：选中 → 深度分析 → 生成构建产物。
//
// 状态迁移：
//
//	NO_SELECTION → SELECTED → ANALYZING → ANALYZED → (BUILDING → BUILT)*
//
// 分析失败回到 SELECTED，构建失败回到 ANALYZED。重新选中会清空全部派生状态，
// 之前发起但尚未返回的调用结果会被丢弃。
package detail

import (
	"context"
	"errors"
	"sync"

	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/model"
)

// Phase 流程阶段
type Phase string

const (
	PhaseNoSelection Phase = "NO_SELECTION"
	PhaseSelected    Phase = "SELECTED"
	PhaseAnalyzing   Phase = "ANALYZING"
	PhaseAnalyzed    Phase = "ANALYZED"
	PhaseBuilding    Phase = "BUILDING"
	PhaseBuilt       Phase = "BUILT"
)

var (
	ErrNoSelection  = errors.New("detail: no trend selected")
	ErrNotAnalyzed  = errors.New("detail: trend has not been analyzed")
	ErrInFlight     = errors.New("detail: another request is in flight")
	ErrUnknownAsset = errors.New("detail: unknown asset type")
	// ErrSuperseded 调用期间选中了别的趋势，结果已丢弃
	ErrSuperseded = errors.New("detail: selection changed while request was in flight")
)

// Service 详情流程依赖的生成能力，*engine.Engine 实现了它
type Service interface {
	AnalyzeTrendDeepDive(ctx context.Context, trend model.TrendRecord) *model.DeepAnalysisResult
	GenerateBuilderAsset(ctx context.Context, trend model.TrendRecord, assetType model.AssetType) *model.BuilderOutput
}

// Snapshot 某一时刻的只读视图
type Snapshot struct {
	Phase     Phase                     `json:"phase"`
	Trend     *model.TrendRecord        `json:"trend,omitempty"`
	Analysis  *model.DeepAnalysisResult `json:"analysis,omitempty"`
	AssetType model.AssetType           `json:"assetType,omitempty"`
	Output    *model.BuilderOutput      `json:"output,omitempty"`
}

// Flow 一个会话内的详情流程，可并发调用
type Flow struct {
	svc Service

	mu        sync.Mutex
	phase     Phase
	trend     *model.TrendRecord
	analysis  *model.DeepAnalysisResult
	assetType model.AssetType
	output    *model.BuilderOutput
	// epoch 每次选中递增，用于识别过期结果
	epoch uint64
}

// New 创建流程
func New(svc Service) *Flow {
	return &Flow{svc: svc, phase: PhaseNoSelection}
}

// Select 选中趋势并清空派生状态
func (f *Flow) Select(trend model.TrendRecord) Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.epoch++
	f.phase = PhaseSelected
	f.trend = &trend
	f.analysis = nil
	f.assetType = ""
	f.output = nil
	return f.snapshotLocked()
}

// Clear 取消选中
func (f *Flow) Clear() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.epoch++
	f.phase = PhaseNoSelection
	f.trend = nil
	f.analysis = nil
	f.assetType = ""
	f.output = nil
	return f.snapshotLocked()
}

// Analyze 对当前选中的趋势做深度分析
func (f *Flow) Analyze(ctx context.Context) (Snapshot, error) {
	f.mu.Lock()
	switch f.phase {
	case PhaseNoSelection:
		f.mu.Unlock()
		return f.Snapshot(), ErrNoSelection
	case PhaseAnalyzing, PhaseBuilding:
		f.mu.Unlock()
		return f.Snapshot(), ErrInFlight
	}
	f.phase = PhaseAnalyzing
	f.analysis = nil
	f.assetType = ""
	f.output = nil
	epoch, trend := f.epoch, *f.trend
	f.mu.Unlock()

	result := f.svc.AnalyzeTrendDeepDive(ctx, trend)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.epoch != epoch {
		return f.snapshotLocked(), ErrSuperseded
	}
	if result == nil {
		f.phase = PhaseSelected
	} else {
		f.phase = PhaseAnalyzed
		f.analysis = result
	}
	return f.snapshotLocked(), nil
}

// Build 基于已完成的分析生成一种构建产物，同一时间只允许一个
func (f *Flow) Build(ctx context.Context, assetType model.AssetType) (Snapshot, error) {
	if !assetType.Valid() {
		return f.Snapshot(), ErrUnknownAsset
	}

	f.mu.Lock()
	switch f.phase {
	case PhaseNoSelection:
		f.mu.Unlock()
		return f.Snapshot(), ErrNoSelection
	case PhaseSelected:
		f.mu.Unlock()
		return f.Snapshot(), ErrNotAnalyzed
	case PhaseAnalyzing, PhaseBuilding:
		f.mu.Unlock()
		return f.Snapshot(), ErrInFlight
	}
	f.phase = PhaseBuilding
	f.assetType = assetType
	f.output = nil
	epoch, trend := f.epoch, *f.trend
	f.mu.Unlock()

	output := f.svc.GenerateBuilderAsset(ctx, trend, assetType)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.epoch != epoch {
		return f.snapshotLocked(), ErrSuperseded
	}
	if output == nil {
		f.phase = PhaseAnalyzed
		f.assetType = ""
	} else {
		f.phase = PhaseBuilt
		f.output = output
	}
	return f.snapshotLocked(), nil
}

// Snapshot 返回当前状态
func (f *Flow) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked()
}

func (f *Flow) snapshotLocked() Snapshot {
	s := Snapshot{
		Phase:     f.phase,
		Analysis:  f.analysis,
		AssetType: f.assetType,
		Output:    f.output,
	}
	if f.trend != nil {
		t := *f.trend
		s.Trend = &t
	}
	return s
}
