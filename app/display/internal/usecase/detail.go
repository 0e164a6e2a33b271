package usecase

import (
	"context"
	stderrors "errors"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/trend_radar/app/display/internal/domain"
	"github.com/iWorld-y/trend_radar/app/display/internal/repo"
	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/detail"
	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/model"
)

// DetailUseCase 详情流程
type DetailUseCase struct {
	trends repo.TrendRepo
	log    *log.Helper
}

// NewDetailUseCase 创建详情流程实例
func NewDetailUseCase(trends repo.TrendRepo, logger log.Logger) *DetailUseCase {
	return &DetailUseCase{trends: trends, log: log.NewHelper(logger)}
}

// Get 当前详情状态
func (uc *DetailUseCase) Get(ctx context.Context, s *domain.Session) detail.Snapshot {
	return s.Detail.Snapshot()
}

// Select 选中趋势
func (uc *DetailUseCase) Select(ctx context.Context, s *domain.Session, trendID string) (detail.Snapshot, error) {
	t, ok := findTrend(ctx, uc.trends, s, trendID)
	if !ok {
		return s.Detail.Snapshot(), ErrTrendNotFound
	}
	return s.Detail.Select(t), nil
}

// Analyze 深度分析当前趋势
func (uc *DetailUseCase) Analyze(ctx context.Context, s *domain.Session) (detail.Snapshot, error) {
	snap, err := s.Detail.Analyze(ctx)
	return snap, uc.convert(err)
}

// Build 生成构建产物
func (uc *DetailUseCase) Build(ctx context.Context, s *domain.Session, assetType model.AssetType) (detail.Snapshot, error) {
	snap, err := s.Detail.Build(ctx, assetType)
	return snap, uc.convert(err)
}

func (uc *DetailUseCase) convert(err error) error {
	switch {
	case err == nil:
		return nil
	case stderrors.Is(err, detail.ErrUnknownAsset):
		return errors.BadRequest("UNKNOWN_ASSET_TYPE", err.Error())
	case stderrors.Is(err, detail.ErrNoSelection):
		return errors.BadRequest("NO_SELECTION", err.Error())
	case stderrors.Is(err, detail.ErrNotAnalyzed):
		return errors.Conflict("NOT_ANALYZED", err.Error())
	case stderrors.Is(err, detail.ErrInFlight):
		return errors.Conflict("IN_FLIGHT", err.Error())
	case stderrors.Is(err, detail.ErrSuperseded):
		return errors.Conflict("SUPERSEDED", err.Error())
	default:
		return errors.InternalServer("DETAIL_FAILED", err.Error())
	}
}
