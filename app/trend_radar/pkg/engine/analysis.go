package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/llm"
	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/logger"
	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/model"
)

// AnalyzeTrendDeepDive 对单条趋势做取证式分析，失败时返回 nil
func (e *Engine) AnalyzeTrendDeepDive(ctx context.Context, trend model.TrendRecord) *model.DeepAnalysisResult {
	const op = "AnalyzeTrendDeepDive"

	req := &llm.Request{
		Prompt:   fmt.Sprintf(analysisPrompt, trend.Title, trend.Description, trend.Source),
		Schema:   analysisSchema,
		JSONOnly: true,
	}
	var result model.DeepAnalysisResult
	if !e.call(ctx, op, req, &result) {
		return nil
	}
	if strings.TrimSpace(result.Summary) == "" {
		logger.Log.Errorf("[%s] 响应缺少 summary", op)
		return nil
	}

	s := model.Sustainability(strings.ToUpper(strings.TrimSpace(string(result.Surveillance.Sustainability))))
	switch s {
	case model.SustainFlash, model.SustainShort, model.SustainMedium, model.SustainLong:
		result.Surveillance.Sustainability = s
	default:
		logger.Log.Errorf("[%s] sustainability 取值非法: %q", op, result.Surveillance.Sustainability)
		return nil
	}
	return &result
}

type builderPayload struct {
	Domains     []model.DomainIdea  `json:"domains"`
	Concepts    []model.SaaSConcept `json:"concepts"`
	Title       string              `json:"title"`
	Audience    string              `json:"audience"`
	Modules     []string            `json:"modules"`
	Headline    string              `json:"headline"`
	Subheadline string              `json:"subheadline"`
	Benefits    []string            `json:"benefits"`
	CTA         string              `json:"cta"`
}

// GenerateBuilderAsset 为趋势生成指定类型的构建产物，未知类型或结构不符时返回 nil
func (e *Engine) GenerateBuilderAsset(ctx context.Context, trend model.TrendRecord, assetType model.AssetType) *model.BuilderOutput {
	const op = "GenerateBuilderAsset"

	if !assetType.Valid() {
		logger.Log.Errorf("[%s] 未知产物类型: %s", op, assetType)
		return nil
	}
	req := &llm.Request{
		Prompt:   fmt.Sprintf(builderPrompts[assetType], trend.Title),
		Schema:   builderSchemas[assetType],
		JSONOnly: true,
	}
	var p builderPayload
	if !e.call(ctx, op, req, &p) {
		return nil
	}

	out := &model.BuilderOutput{Type: assetType}
	switch assetType {
	case model.AssetDomains:
		out.Domains = p.Domains
	case model.AssetSaaS:
		out.Concepts = p.Concepts
	case model.AssetCourse:
		if p.Title != "" || len(p.Modules) > 0 {
			out.Course = &model.CourseOutline{Title: p.Title, Audience: p.Audience, Modules: p.Modules}
		}
	case model.AssetLandingPage:
		if p.Headline != "" {
			out.LandingPage = &model.LandingPageCopy{Headline: p.Headline, Subheadline: p.Subheadline, Benefits: p.Benefits, CTA: p.CTA}
		}
	}
	if out.Empty() {
		logger.Log.Errorf("[%s] %s 响应结构不符", op, assetType)
		return nil
	}
	return out
}
