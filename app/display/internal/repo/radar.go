package repo

import (
	"context"

	"github.com/iWorld-y/trend_radar/app/display/internal/domain"
	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/model"
)

// TrendRepo 静态趋势与数据源
type TrendRepo interface {
	// ListTrends 返回全部静态趋势
	ListTrends(ctx context.Context) []model.TrendRecord
	// ListSources 返回全部数据源
	ListSources(ctx context.Context) []model.Source
	// GetTrend 根据 ID 获取静态趋势
	GetTrend(ctx context.Context, id string) (model.TrendRecord, bool)
}

// SessionRepo 会话存储
type SessionRepo interface {
	Get(ctx context.Context, id string) (*domain.Session, bool)
	Save(ctx context.Context, s *domain.Session)
}
