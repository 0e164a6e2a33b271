package factory

import (
	"context"
	"fmt"

	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/config"
	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/llm"
	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/llm/gemini"
	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/llm/openai"
)

// NewGenerator 根据配置创建生成客户端。
// 未配置凭证时返回 nil, nil，引擎据此直接返回空结果而不发起请求。
func NewGenerator(ctx context.Context, cfg *config.Config) (llm.Generator, error) {
	if !cfg.HasCredential() {
		return nil, nil
	}

	switch cfg.LLM.Provider {
	case "", "gemini":
		c, err := gemini.New(ctx, gemini.Config{
			APIKey:     cfg.LLM.APIKey,
			BaseURL:    cfg.LLM.BaseURL,
			Model:      cfg.LLM.Model,
			ImageModel: cfg.LLM.ImageModel,
		})
		if err != nil {
			return nil, err
		}
		return c, nil
	case "openai":
		c, err := openai.New(ctx, cfg.LLM.BaseURL, cfg.LLM.APIKey, cfg.LLM.Model)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.LLM.Provider)
	}
}
