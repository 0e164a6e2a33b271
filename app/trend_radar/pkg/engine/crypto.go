package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/llm"
	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/logger"
	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/model"
	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/search"
)

const (
	ClusterHighCap = "High Cap Memes"
	ClusterLowCap  = "Low Cap Gems"

	liveSource       = "DexScreener"
	defaultInflow    = "+$50k"
	unknownAge       = "Unknown"
	groundingResults = 6
	// 搜索摘要短于该长度时抓取原文补全
	shortSnippet   = 300
	maxContextRune = 1500
)

var liveMetrics = model.TrendMetrics{
	AnomalyConfidence: 85,
	ClusterCentrality: 90,
	ContextVelocity:   4.2,
	Volatility:        95,
}

type cryptoToken struct {
	Name             string          `json:"name"`
	Symbol           string          `json:"symbol"`
	MarketCap        string          `json:"marketCap"`
	MarketCapValue   decimal.Decimal `json:"marketCapValue"`
	Volume24h        string          `json:"volume24h"`
	Liquidity        string          `json:"liquidity"`
	TrendingReason   string          `json:"trendingReason"`
	SmartMoneySignal string          `json:"smartMoneySignal"`
	SmartMoneyInflow string          `json:"smartMoneyInflow"`
	ContractAge      string          `json:"contractAge"`
	Platform         string          `json:"platform"`
}

// cryptoPayload 逐个代币解码，单个代币字段类型不对时只丢弃该代币
type cryptoPayload struct {
	Tokens []json.RawMessage `json:"tokens"`
}

// FetchLiveCryptoTrends 联网发现当前热门代币并转换为 CRYPTO 趋势
func (e *Engine) FetchLiveCryptoTrends(ctx context.Context) []model.TrendRecord {
	const op = "FetchLiveCryptoTrends"
	if !e.Ready() {
		logger.Log.Warnf("[%s] 未配置生成服务凭证，跳过调用", op)
		return nil
	}

	prompt := cryptoPrompt
	if grounding := e.grounding(ctx); grounding != "" {
		prompt = grounding + "\n\n" + cryptoPrompt
	}
	req := &llm.Request{Prompt: prompt, WebSearch: true}

	var payload cryptoPayload
	if !e.call(ctx, op, req, &payload) {
		return nil
	}
	if payload.Tokens == nil {
		logger.Log.Errorf("[%s] 响应缺少 tokens 字段", op)
		return nil
	}

	nowMs := e.now().UnixMilli()
	out := make([]model.TrendRecord, 0, len(payload.Tokens))
	for i, raw := range payload.Tokens {
		var t cryptoToken
		if err := json.Unmarshal(raw, &t); err != nil {
			logger.Log.Warnf("[%s] 第 %d 个代币解析失败，跳过: %v", op, i, err)
			continue
		}
		if strings.TrimSpace(t.Symbol) == "" {
			continue
		}
		out = append(out, e.tokenToTrend(t, nowMs))
	}
	logger.Log.Infof("[%s] 获取到 %d 个实时代币", op, len(out))
	return out
}

func (e *Engine) tokenToTrend(t cryptoToken, nowMs int64) model.TrendRecord {
	signal := normalizeSignal(t.SmartMoneySignal)

	metrics := model.NewCryptoMetrics(t.MarketCap, t.MarketCapValue, t.Liquidity, t.Volume24h)
	metrics.SmartMoney = &model.SmartMoney{
		Inflow:     orDefault(t.SmartMoneyInflow, defaultInflow),
		WhaleCount: e.est.WhaleCount(),
		Signal:     signal,
	}
	metrics.ContractAge = orDefault(t.ContractAge, unknownAge)

	cluster := ClusterLowCap
	if metrics.IsHighCap {
		cluster = ClusterHighCap
	}

	return model.TrendRecord{
		ID:             "cryp-" + uuid.NewString(),
		Title:          fmt.Sprintf("$%s (%s)", t.Symbol, t.Name),
		Description:    t.TrendingReason,
		Category:       model.CategoryCrypto,
		Velocity:       e.est.Velocity(),
		Volume:         t.Volume24h,
		Source:         liveSource,
		Change:         e.est.Change(),
		Tags:           []string{t.Platform, "Meme", "DeFi"},
		Novelty:        80,
		SignalCount:    e.est.SignalCount(),
		Timestamp:      "Live",
		TimestampValue: nowMs,
		Sparkline:      e.est.Sparkline(),
		Cluster:        cluster,
		IsAnomaly:      signal == model.SignalAccumulation,
		Metrics:        liveMetrics,
		CryptoMetrics:  metrics,
	}
}

func normalizeSignal(s string) model.SmartMoneySignal {
	switch sig := model.SmartMoneySignal(strings.ToUpper(strings.TrimSpace(s))); sig {
	case model.SignalAccumulation, model.SignalDumping:
		return sig
	default:
		return model.SignalNeutral
	}
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

// grounding 用检索结果构造上下文，检索不可用或失败时返回空串
func (e *Engine) grounding(ctx context.Context) string {
	if e.searcher == nil {
		return ""
	}
	resp, err := e.searcher.Search(ctx, &search.Request{
		Query:      "trending meme coins DexScreener CoinGecko GeckoTerminal",
		Topic:      "news",
		TimeRange:  search.TimeRangeDay,
		MaxResults: groundingResults,
	})
	if err != nil {
		logger.Log.Errorf("联网检索失败，继续无上下文生成: %v", err)
		return ""
	}

	var sb strings.Builder
	n := 0
	for _, item := range resp.Results {
		content := item.Content
		if len(content) < shortSnippet && item.URL != "" {
			fetched, err := e.fetch(ctx, item.URL)
			if err == nil && len(fetched) > len(content) {
				content = fetched
			}
		}
		content = truncateRunes(strings.TrimSpace(content), maxContextRune)
		if content == "" {
			continue
		}
		n++
		fmt.Fprintf(&sb, "Result %d:\nTitle: %s\nURL: %s\n%s\n\n", n, item.Title, item.URL, content)
	}
	if n == 0 {
		return ""
	}
	logger.Log.Debugf("联网检索得到 %d 条上下文", n)
	return "Recent web search results (use them as grounding):\n\n" + strings.TrimSpace(sb.String())
}

func truncateRunes(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit])
}
