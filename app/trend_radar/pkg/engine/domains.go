package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/llm"
	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/logger"
	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/model"
)

// PriceHistoryPoints 合成价格历史的点数
const PriceHistoryPoints = 10

type domainPayload struct {
	Domains []model.DomainAsset `json:"domains"`
}

// DiscoverDomains 针对关键词发现候选域名
func (e *Engine) DiscoverDomains(ctx context.Context, keyword, category string) []model.DomainAsset {
	const op = "DiscoverDomains"

	req := &llm.Request{
		Prompt:   fmt.Sprintf(domainPrompt, keyword, category, e.cfg.Generation.DomainCount),
		Schema:   domainSchema,
		JSONOnly: true,
	}
	var payload domainPayload
	if !e.call(ctx, op, req, &payload) {
		return nil
	}
	if payload.Domains == nil {
		logger.Log.Errorf("[%s] 响应缺少 domains 字段", op)
		return nil
	}

	out := make([]model.DomainAsset, 0, len(payload.Domains))
	for _, d := range payload.Domains {
		if strings.TrimSpace(d.Name) == "" {
			continue
		}
		base, ok := ParseEstValue(d.EstValue)
		if !ok {
			logger.Log.Warnf("[%s] 域名 %s 估值 %q 无法解析，跳过", op, d.Name, d.EstValue)
			continue
		}
		d.ID = "dom-" + uuid.NewString()
		d.AIConfidence = e.est.Confidence()
		d.RelatedTrend = keyword
		d.PriceHistory = e.priceHistory(base)
		out = append(out, d)
	}
	logger.Log.Infof("[%s] 关键词 [%s] 发现 %d 个域名", op, keyword, len(out))
	return out
}

// priceHistory 以估值为基准逐点抖动 ±20%
func (e *Engine) priceHistory(base decimal.Decimal) []model.PricePoint {
	points := make([]model.PricePoint, PriceHistoryPoints)
	for j := range points {
		v := base.Mul(decimal.NewFromFloat(e.est.Jitter())).Round(2)
		points[j] = model.PricePoint{
			Date:  fmt.Sprintf("-%dd", PriceHistoryPoints-j),
			Value: v.InexactFloat64(),
		}
	}
	return points
}

// ParseEstValue 从 "$12,500" 这类展示字符串中取出数值，只保留数字与小数点
func ParseEstValue(s string) (decimal.Decimal, bool) {
	var sb strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			sb.WriteRune(r)
		}
	}
	if sb.Len() == 0 {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(sb.String())
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
