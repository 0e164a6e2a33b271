package usecase

import (
	"context"

	"github.com/google/wire"

	"github.com/iWorld-y/trend_radar/app/display/internal/domain"
	"github.com/iWorld-y/trend_radar/app/display/internal/repo"
	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/detail"
	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/model"
)

// ProviderSet 业务逻辑层 Provider 集合
var ProviderSet = wire.NewSet(
	NewSessionUseCase,
	NewFeedUseCase,
	NewGenerationUseCase,
	NewDetailUseCase,
)

// Generator 生成能力，*engine.Engine 实现了它
type Generator interface {
	detail.Service

	Ready() bool
	DiscoverDomains(ctx context.Context, keyword, category string) []model.DomainAsset
	GenerateSaaSBlueprints(ctx context.Context, req model.SaaSConceptRequest) []model.SaaSBlueprint
	GenerateAffiliateStrategies(ctx context.Context, niche, productType string) []model.AffiliateStrategy
	FetchLiveCryptoTrends(ctx context.Context) []model.TrendRecord
	GenerateCreative(ctx context.Context, prompt string) *model.Creative
}

// findTrend 依次在静态趋势和会话的实时代币中查找
func findTrend(ctx context.Context, trends repo.TrendRepo, s *domain.Session, id string) (model.TrendRecord, bool) {
	if t, ok := trends.GetTrend(ctx, id); ok {
		return t, true
	}
	live, _ := s.LiveCrypto()
	for _, t := range live {
		if t.ID == id {
			return t, true
		}
	}
	return model.TrendRecord{}, false
}
