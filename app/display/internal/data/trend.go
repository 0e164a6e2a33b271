package data

import (
	"context"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/trend_radar/app/display/internal/repo"
	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/model"
)

type trendRepo struct {
	data *Data
	log  *log.Helper
}

func NewTrendRepo(data *Data, logger log.Logger) repo.TrendRepo {
	return &trendRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

func (r *trendRepo) ListTrends(ctx context.Context) []model.TrendRecord {
	return r.data.store.Trends()
}

func (r *trendRepo) ListSources(ctx context.Context) []model.Source {
	return r.data.store.Sources()
}

func (r *trendRepo) GetTrend(ctx context.Context, id string) (model.TrendRecord, bool) {
	return r.data.store.Find(id)
}
