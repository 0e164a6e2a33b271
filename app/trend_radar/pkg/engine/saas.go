package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/llm"
	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/logger"
	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/model"
)

type saasPayload struct {
	Blueprints []model.SaaSBlueprint `json:"blueprints"`
}

type affiliatePayload struct {
	Strategies []model.AffiliateStrategy `json:"strategies"`
}

// GenerateSaaSBlueprints 生成 Micro-SaaS 蓝图
func (e *Engine) GenerateSaaSBlueprints(ctx context.Context, r model.SaaSConceptRequest) []model.SaaSBlueprint {
	const op = "GenerateSaaSBlueprints"

	complexity := r.Complexity
	if complexity == "" {
		complexity = model.ComplexityLowCode
	}
	req := &llm.Request{
		Prompt:   fmt.Sprintf(saasPrompt, r.Niche, r.TrendContext, r.Audience, complexity),
		Schema:   saasSchema,
		JSONOnly: true,
		Model:    e.cfg.LLM.ReasoningModel,
	}
	var payload saasPayload
	if !e.call(ctx, op, req, &payload) {
		return nil
	}

	out := make([]model.SaaSBlueprint, 0, len(payload.Blueprints))
	for _, b := range payload.Blueprints {
		if strings.TrimSpace(b.Title) == "" {
			continue
		}
		out = append(out, b)
	}
	logger.Log.Infof("[%s] 细分领域 [%s] 生成 %d 个蓝图", op, r.Niche, len(out))
	return out
}

// GenerateAffiliateStrategies 生成三个联盟营销角度
func (e *Engine) GenerateAffiliateStrategies(ctx context.Context, niche, productType string) []model.AffiliateStrategy {
	const op = "GenerateAffiliateStrategies"

	req := &llm.Request{
		Prompt:   fmt.Sprintf(affiliatePrompt, niche, productType),
		Schema:   affiliateSchema,
		JSONOnly: true,
		Model:    e.cfg.LLM.ReasoningModel,
	}
	var payload affiliatePayload
	if !e.call(ctx, op, req, &payload) {
		return nil
	}

	out := make([]model.AffiliateStrategy, 0, len(payload.Strategies))
	for _, s := range payload.Strategies {
		if strings.TrimSpace(s.Headline) == "" && strings.TrimSpace(s.Angle) == "" {
			continue
		}
		out = append(out, s)
	}
	logger.Log.Infof("[%s] 细分领域 [%s] 生成 %d 个营销角度", op, niche, len(out))
	return out
}
