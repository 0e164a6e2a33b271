package usecase

import (
	"context"
	"strings"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/model"
)

// GenerationUseCase 独立的生成操作：域名、SaaS、联盟营销、广告素材
type GenerationUseCase struct {
	gen Generator
	log *log.Helper
}

// NewGenerationUseCase 创建生成操作实例
func NewGenerationUseCase(gen Generator, logger log.Logger) *GenerationUseCase {
	return &GenerationUseCase{gen: gen, log: log.NewHelper(logger)}
}

// Ready 是否配置了生成服务凭证
func (uc *GenerationUseCase) Ready() bool {
	return uc.gen.Ready()
}

func required(field, v string) error {
	if strings.TrimSpace(v) == "" {
		return errors.BadRequest("MISSING_FIELD", field+" is required")
	}
	return nil
}

// Domains 域名发现
func (uc *GenerationUseCase) Domains(ctx context.Context, keyword, category string) ([]model.DomainAsset, error) {
	if err := required("keyword", keyword); err != nil {
		return nil, err
	}
	return uc.gen.DiscoverDomains(ctx, keyword, category), nil
}

// SaaS 蓝图生成
func (uc *GenerationUseCase) SaaS(ctx context.Context, req model.SaaSConceptRequest) ([]model.SaaSBlueprint, error) {
	if err := required("niche", req.Niche); err != nil {
		return nil, err
	}
	switch req.Complexity {
	case "", model.ComplexityNoCode, model.ComplexityLowCode, model.ComplexityFullCode:
	default:
		return nil, errors.BadRequest("INVALID_COMPLEXITY", "complexity must be NO_CODE, LOW_CODE or FULL_CODE")
	}
	return uc.gen.GenerateSaaSBlueprints(ctx, req), nil
}

// Affiliate 联盟营销角度
func (uc *GenerationUseCase) Affiliate(ctx context.Context, niche, productType string) ([]model.AffiliateStrategy, error) {
	if err := required("niche", niche); err != nil {
		return nil, err
	}
	return uc.gen.GenerateAffiliateStrategies(ctx, niche, productType), nil
}

// Creative 广告素材，生成失败时返回 nil 而不是错误
func (uc *GenerationUseCase) Creative(ctx context.Context, prompt string) (*model.Creative, error) {
	if err := required("prompt", prompt); err != nil {
		return nil, err
	}
	return uc.gen.GenerateCreative(ctx, prompt), nil
}
