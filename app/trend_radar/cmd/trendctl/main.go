// trendctl 在命令行中使用趋势流和生成引擎，结果以 JSON 输出到 stdout，日志输出到 stderr。
package main

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/config"
	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/engine"
	llmFactory "github.com/iWorld-y/trend_radar/app/trend_radar/pkg/llm/factory"
	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/logger"
	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/model"
	searchFactory "github.com/iWorld-y/trend_radar/app/trend_radar/pkg/search/factory"
)

// radar 命令行用到的生成能力，*engine.Engine 实现了它
type radar interface {
	Ready() bool
	DiscoverDomains(ctx context.Context, keyword, category string) []model.DomainAsset
	GenerateSaaSBlueprints(ctx context.Context, req model.SaaSConceptRequest) []model.SaaSBlueprint
	GenerateAffiliateStrategies(ctx context.Context, niche, productType string) []model.AffiliateStrategy
	FetchLiveCryptoTrends(ctx context.Context) []model.TrendRecord
	AnalyzeTrendDeepDive(ctx context.Context, trend model.TrendRecord) *model.DeepAnalysisResult
	GenerateBuilderAsset(ctx context.Context, trend model.TrendRecord, assetType model.AssetType) *model.BuilderOutput
	GenerateCreative(ctx context.Context, prompt string) *model.Creative
}

// newRadar 测试中替换为假实现
var newRadar = func(ctx context.Context, cfg *config.Config) (radar, error) {
	gen, err := llmFactory.NewGenerator(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if gen == nil {
		logger.Log.Warn("未配置生成服务凭证，生成类命令将返回空结果")
	}

	var opts []engine.Option
	searcher, err := searchFactory.NewSearcher(cfg)
	if err != nil {
		return nil, err
	}
	if searcher != nil {
		opts = append(opts, engine.WithSearcher(searcher))
	}
	return engine.New(cfg, gen, opts...), nil
}

// loadConfig 读取配置文件，文件不存在时使用默认配置
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.LoadConfig(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = &config.Config{}
		cfg.SetDefaults()
	} else if err != nil {
		return nil, err
	}
	config.ApplyEnv(cfg)
	return cfg, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
