package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/config"
	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/model"
)

type fakeRadar struct {
	analysis *model.DeepAnalysisResult
	creative *model.Creative
	saasReq  model.SaaSConceptRequest
}

func (f *fakeRadar) Ready() bool { return true }

func (f *fakeRadar) DiscoverDomains(ctx context.Context, keyword, category string) []model.DomainAsset {
	return []model.DomainAsset{{Name: keyword, TLD: ".ai", RelatedTrend: keyword}}
}

func (f *fakeRadar) GenerateSaaSBlueprints(ctx context.Context, req model.SaaSConceptRequest) []model.SaaSBlueprint {
	f.saasReq = req
	return nil
}

func (f *fakeRadar) GenerateAffiliateStrategies(ctx context.Context, niche, productType string) []model.AffiliateStrategy {
	return []model.AffiliateStrategy{{Angle: "FOMO", Headline: niche}}
}

func (f *fakeRadar) FetchLiveCryptoTrends(ctx context.Context) []model.TrendRecord {
	return []model.TrendRecord{{
		ID: "cryp-live", Category: model.CategoryCrypto, Change: 999, TimestampValue: nowMillis(),
		CryptoMetrics: &model.CryptoMetrics{IsHighCap: false},
	}}
}

func (f *fakeRadar) AnalyzeTrendDeepDive(ctx context.Context, trend model.TrendRecord) *model.DeepAnalysisResult {
	return f.analysis
}

func (f *fakeRadar) GenerateBuilderAsset(ctx context.Context, trend model.TrendRecord, assetType model.AssetType) *model.BuilderOutput {
	return &model.BuilderOutput{Type: assetType, LandingPage: &model.LandingPageCopy{Headline: trend.Title}}
}

func (f *fakeRadar) GenerateCreative(ctx context.Context, prompt string) *model.Creative {
	return f.creative
}

func run(t *testing.T, fake *fakeRadar, args ...string) (string, error) {
	t.Helper()
	t.Setenv("TREND_RADAR_API_KEY", "")

	orig := newRadar
	newRadar = func(context.Context, *config.Config) (radar, error) { return fake, nil }
	t.Cleanup(func() { newRadar = orig })

	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}, args...))
	err := root.Execute()
	return stdout.String(), err
}

func TestFeedCmd(t *testing.T) {
	out, err := run(t, &fakeRadar{}, "feed", "--category", "code", "--timeframe", "24H")
	require.NoError(t, err)

	var res feedResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Len(t, res.Visible, 2)
	assert.Equal(t, "code-002", res.Visible[0].ID)
	assert.Equal(t, 2, res.Total)

	out, err = run(t, &fakeRadar{}, "feed", "--category", "CODE", "--timeframe", "1M", "--demo")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Len(t, res.Visible, 2)
	assert.Equal(t, 12, res.HiddenSlots)

	_, err = run(t, &fakeRadar{}, "feed", "--category", "SPORTS")
	assert.Error(t, err)
}

func TestFeedCmdLiveCrypto(t *testing.T) {
	out, err := run(t, &fakeRadar{}, "feed", "--category", "CRYPTO", "--cap", "LOW_CAP", "--live")
	require.NoError(t, err)

	var res feedResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.NotEmpty(t, res.Visible)
	assert.Equal(t, "cryp-live", res.Visible[0].ID)

	out, err = run(t, &fakeRadar{}, "feed", "--category", "CRYPTO", "--cap", "LOW_CAP")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	for _, r := range res.Visible {
		assert.NotEqual(t, "cryp-live", r.ID)
	}
}

func TestGenerationCmds(t *testing.T) {
	out, err := run(t, &fakeRadar{}, "domains", "agents")
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "agents"`)

	fake := &fakeRadar{}
	out, err = run(t, fake, "saas", "dental clinics", "--complexity", "no_code")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, out)
	assert.Equal(t, model.ComplexityNoCode, fake.saasReq.Complexity)
	assert.Equal(t, "dental clinics", fake.saasReq.Niche)

	_, err = run(t, &fakeRadar{}, "saas", "x", "--complexity", "hard")
	assert.Error(t, err)

	out, err = run(t, &fakeRadar{}, "affiliate", "agents")
	require.NoError(t, err)
	assert.Contains(t, out, "FOMO")
}

func TestAnalyzeAndBuildCmds(t *testing.T) {
	analysis := &model.DeepAnalysisResult{Summary: "ok"}

	out, err := run(t, &fakeRadar{analysis: analysis}, "analyze", "code-001")
	require.NoError(t, err)
	assert.Contains(t, out, `"phase": "ANALYZED"`)

	out, err = run(t, &fakeRadar{analysis: analysis}, "build", "code-001", "landing_page")
	require.NoError(t, err)
	assert.Contains(t, out, `"phase": "BUILT"`)
	assert.Contains(t, out, `"landingPage"`)

	_, err = run(t, &fakeRadar{}, "build", "code-001", "COURSE")
	assert.Error(t, err, "build must fail when the analysis is absent")

	_, err = run(t, &fakeRadar{analysis: analysis}, "analyze", "nope")
	assert.Error(t, err)
	_, err = run(t, &fakeRadar{analysis: analysis}, "build", "code-001", "PODCAST")
	assert.Error(t, err)
}

func TestCreativeCmd(t *testing.T) {
	out, err := run(t, &fakeRadar{}, "creative", "neon")
	require.NoError(t, err)
	assert.Equal(t, "null\n", out)

	file := filepath.Join(t.TempDir(), "ad.png")
	fake := &fakeRadar{creative: &model.Creative{Prompt: "neon", MIMEType: "image/png", Data: []byte{1, 2, 3}}}
	out, err = run(t, fake, "creative", "neon", "--out", file)
	require.NoError(t, err)
	assert.Contains(t, out, `"bytes": 3`)

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, data)
}

func TestScoreCmd(t *testing.T) {
	out, err := run(t, &fakeRadar{}, "score", "code-001")
	require.NoError(t, err)
	assert.Contains(t, out, "sourceWeight")
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Setenv("TREND_RADAR_API_KEY", "k")
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "k", cfg.LLM.APIKey)
	assert.Equal(t, config.DefaultTimeout, cfg.Generation.Timeout)
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}
