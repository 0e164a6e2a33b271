package server

import (
	"context"
	"time"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/trend_radar/app/display/internal/conf"
	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/config"
	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/engine"
	llmFactory "github.com/iWorld-y/trend_radar/app/trend_radar/pkg/llm/factory"
	trLogger "github.com/iWorld-y/trend_radar/app/trend_radar/pkg/logger"
	searchFactory "github.com/iWorld-y/trend_radar/app/trend_radar/pkg/search/factory"
)

// toConfig 将 internal/conf.Radar 转换为 pkg/config.Config
func toConfig(c *conf.Radar) *config.Config {
	cfg := &config.Config{}
	if c == nil {
		return cfg
	}
	if c.Llm != nil {
		cfg.LLM = config.LLMConfig{
			Provider:       c.Llm.Provider,
			BaseURL:        c.Llm.BaseUrl,
			APIKey:         c.Llm.ApiKey,
			Model:          c.Llm.Model,
			ReasoningModel: c.Llm.ReasoningModel,
			ImageModel:     c.Llm.ImageModel,
		}
	}
	if c.Search != nil {
		cfg.Search.Provider = c.Search.Provider
		if c.Search.Tavily != nil {
			cfg.Search.Tavily = config.TavilyConfig{APIKey: c.Search.Tavily.ApiKey, Endpoint: c.Search.Tavily.Endpoint}
		}
		if c.Search.Searxng != nil {
			cfg.Search.SearXNG = config.SearXNGConfig{BaseURL: c.Search.Searxng.BaseUrl, Timeout: int(c.Search.Searxng.Timeout)}
		}
	}
	if c.Generation != nil {
		if d, err := time.ParseDuration(c.Generation.Timeout); err == nil {
			cfg.Generation.Timeout = d
		}
		cfg.Generation.DomainCount = int(c.Generation.DomainCount)
	}
	if c.Log != nil {
		cfg.Log = config.LogConfig{Level: c.Log.Level, File: c.Log.File}
	}
	if c.Concurrency != nil {
		cfg.Concurrency = config.ConcurrencyConfig{QPS: int(c.Concurrency.Qps), RPM: int(c.Concurrency.Rpm)}
	}
	return cfg
}

// NewRadarEngine 初始化 trend_radar 生成引擎。未配置凭证时引擎仍然可用，所有生成操作返回空结果。
func NewRadarEngine(c *conf.Radar, logger log.Logger) (*engine.Engine, func(), error) {
	helper := log.NewHelper(logger)
	cfg := toConfig(c)
	config.ApplyEnv(cfg)
	cfg.SetDefaults()

	// 初始化日志
	if err := trLogger.InitLogger(cfg.Log.Level, cfg.Log.File); err != nil {
		helper.Errorf("Failed to init trend_radar logger: %v", err)
		_ = trLogger.InitLogger("info", "") // 降级处理
	}

	gen, err := llmFactory.NewGenerator(context.Background(), cfg)
	if err != nil {
		helper.Errorf("Failed to init generator: %v", err)
		return nil, nil, err
	}
	if gen == nil {
		helper.Warn("未配置生成服务凭证，生成类操作将返回空结果")
	}

	var opts []engine.Option
	searcher, err := searchFactory.NewSearcher(cfg)
	if err != nil {
		helper.Errorf("Failed to init searcher: %v", err)
		return nil, nil, err
	}
	if searcher != nil {
		opts = append(opts, engine.WithSearcher(searcher))
	}

	eng := engine.New(cfg, gen, opts...)
	cleanup := func() {
		helper.Info("Cleaning up trend_radar engine")
	}
	return eng, cleanup, nil
}
