package detail

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/model"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeService struct {
	analysis *model.DeepAnalysisResult
	output   *model.BuilderOutput
	// gate 非空时调用会阻塞直到收到信号
	gate    chan struct{}
	started chan struct{}

	analyzed []string
	built    []model.AssetType
}

func (f *fakeService) wait() {
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.gate != nil {
		<-f.gate
	}
}

func (f *fakeService) AnalyzeTrendDeepDive(_ context.Context, trend model.TrendRecord) *model.DeepAnalysisResult {
	f.wait()
	f.analyzed = append(f.analyzed, trend.ID)
	return f.analysis
}

func (f *fakeService) GenerateBuilderAsset(_ context.Context, trend model.TrendRecord, assetType model.AssetType) *model.BuilderOutput {
	f.wait()
	f.built = append(f.built, assetType)
	return f.output
}

var (
	trendA = model.TrendRecord{ID: "a", Title: "A"}
	trendB = model.TrendRecord{ID: "b", Title: "B"}

	analysis = &model.DeepAnalysisResult{Summary: "s", Surveillance: model.Surveillance{Sustainability: model.SustainMedium}}
	course   = &model.BuilderOutput{Type: model.AssetCourse, Course: &model.CourseOutline{Title: "c"}}
)

func TestHappyPath(t *testing.T) {
	svc := &fakeService{analysis: analysis, output: course}
	f := New(svc)
	ctx := context.Background()

	assert.Equal(t, PhaseNoSelection, f.Snapshot().Phase)

	snap := f.Select(trendA)
	assert.Equal(t, PhaseSelected, snap.Phase)
	require.NotNil(t, snap.Trend)
	assert.Equal(t, "a", snap.Trend.ID)

	snap, err := f.Analyze(ctx)
	require.NoError(t, err)
	assert.Equal(t, PhaseAnalyzed, snap.Phase)
	assert.Same(t, analysis, snap.Analysis)

	snap, err = f.Build(ctx, model.AssetCourse)
	require.NoError(t, err)
	assert.Equal(t, PhaseBuilt, snap.Phase)
	assert.Equal(t, model.AssetCourse, snap.AssetType)
	assert.Same(t, course, snap.Output)
	assert.Same(t, analysis, snap.Analysis)

	// 已构建后可以继续构建其他类型
	svc.output = &model.BuilderOutput{Type: model.AssetSaaS, Concepts: []model.SaaSConcept{{Name: "x"}}}
	snap, err = f.Build(ctx, model.AssetSaaS)
	require.NoError(t, err)
	assert.Equal(t, model.AssetSaaS, snap.AssetType)
	assert.Equal(t, []model.AssetType{model.AssetCourse, model.AssetSaaS}, svc.built)
}

func TestGuards(t *testing.T) {
	f := New(&fakeService{})
	ctx := context.Background()

	_, err := f.Analyze(ctx)
	assert.ErrorIs(t, err, ErrNoSelection)
	_, err = f.Build(ctx, model.AssetDomains)
	assert.ErrorIs(t, err, ErrNoSelection)

	f.Select(trendA)
	_, err = f.Build(ctx, model.AssetDomains)
	assert.ErrorIs(t, err, ErrNotAnalyzed)
	_, err = f.Build(ctx, "PODCAST")
	assert.ErrorIs(t, err, ErrUnknownAsset)
}

func TestAbsentAnalysisReturnsToSelected(t *testing.T) {
	svc := &fakeService{}
	f := New(svc)
	f.Select(trendA)

	snap, err := f.Analyze(context.Background())
	require.NoError(t, err)
	assert.Equal(t, PhaseSelected, snap.Phase)
	assert.Nil(t, snap.Analysis)

	// 可以重试
	svc.analysis = analysis
	snap, err = f.Analyze(context.Background())
	require.NoError(t, err)
	assert.Equal(t, PhaseAnalyzed, snap.Phase)
	assert.Equal(t, []string{"a", "a"}, svc.analyzed)
}

func TestAbsentBuildReturnsToAnalyzed(t *testing.T) {
	svc := &fakeService{analysis: analysis}
	f := New(svc)
	f.Select(trendA)
	_, err := f.Analyze(context.Background())
	require.NoError(t, err)

	snap, err := f.Build(context.Background(), model.AssetLandingPage)
	require.NoError(t, err)
	assert.Equal(t, PhaseAnalyzed, snap.Phase)
	assert.Nil(t, snap.Output)
	assert.Empty(t, snap.AssetType)
	assert.Same(t, analysis, snap.Analysis)
}

func TestSelectResetsDerivedState(t *testing.T) {
	f := New(&fakeService{analysis: analysis, output: course})
	ctx := context.Background()
	f.Select(trendA)
	_, _ = f.Analyze(ctx)
	_, _ = f.Build(ctx, model.AssetCourse)

	snap := f.Select(trendB)
	assert.Equal(t, PhaseSelected, snap.Phase)
	assert.Equal(t, "b", snap.Trend.ID)
	assert.Nil(t, snap.Analysis)
	assert.Nil(t, snap.Output)
	assert.Empty(t, snap.AssetType)

	snap = f.Clear()
	assert.Equal(t, PhaseNoSelection, snap.Phase)
	assert.Nil(t, snap.Trend)
}

func TestInFlightAndStaleResult(t *testing.T) {
	svc := &fakeService{analysis: analysis, gate: make(chan struct{}), started: make(chan struct{})}
	f := New(svc)
	f.Select(trendA)

	type result struct {
		snap Snapshot
		err  error
	}
	done := make(chan result)
	go func() {
		s, err := f.Analyze(context.Background())
		done <- result{s, err}
	}()
	<-svc.started

	assert.Equal(t, PhaseAnalyzing, f.Snapshot().Phase)
	_, err := f.Analyze(context.Background())
	assert.ErrorIs(t, err, ErrInFlight)
	_, err = f.Build(context.Background(), model.AssetCourse)
	assert.ErrorIs(t, err, ErrInFlight)

	// 调用期间切换选中，旧结果必须丢弃
	f.Select(trendB)
	svc.gate <- struct{}{}
	r := <-done
	assert.ErrorIs(t, r.err, ErrSuperseded)

	snap := f.Snapshot()
	assert.Equal(t, PhaseSelected, snap.Phase)
	assert.Equal(t, "b", snap.Trend.ID)
	assert.Nil(t, snap.Analysis)
}

func TestSnapshotIsACopy(t *testing.T) {
	f := New(&fakeService{})
	f.Select(trendA)
	snap := f.Snapshot()
	snap.Trend.Title = "mutated"
	assert.Equal(t, "A", f.Snapshot().Trend.Title)
}
