package usecase

import (
	"context"
	"time"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/trend_radar/app/display/internal/domain"
	"github.com/iWorld-y/trend_radar/app/display/internal/repo"
	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/feed"
	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/model"
)

// ErrTrendNotFound 趋势不存在
var ErrTrendNotFound = errors.NotFound("TREND_NOT_FOUND", "trend not found")

// FeedResult 趋势流查询结果
type FeedResult struct {
	feed.DemoView
	Total int `json:"total"`
	// Live 本会话是否已加载实时代币
	Live bool `json:"live"`
}

// FeedUseCase 趋势流
type FeedUseCase struct {
	trends repo.TrendRepo
	gen    Generator
	now    func() time.Time
	log    *log.Helper
}

// NewFeedUseCase 创建趋势流实例
func NewFeedUseCase(trends repo.TrendRepo, gen Generator, logger log.Logger) *FeedUseCase {
	return &FeedUseCase{trends: trends, gen: gen, now: time.Now, log: log.NewHelper(logger)}
}

// List 过滤排序。CRYPTO 分类在会话内首次以非演示模式查看时拉取一次实时代币。
func (uc *FeedUseCase) List(ctx context.Context, s *domain.Session, q feed.Query, demo bool) FeedResult {
	candidates := uc.trends.ListTrends(ctx)

	var loaded bool
	if q.Category == model.CategoryCrypto {
		var live []model.TrendRecord
		live, loaded = s.LiveCrypto()
		// 演示模式只展示静态数据，不触发联网生成
		if !loaded && !demo && uc.gen.Ready() {
			var fetched bool
			live, fetched = s.EnsureLiveCrypto(func() []model.TrendRecord {
				return uc.gen.FetchLiveCryptoTrends(ctx)
			})
			loaded = true
			if fetched {
				uc.log.WithContext(ctx).Infof("会话 %s 首次加载实时代币 %d 条", s.ID, len(live))
			}
		}
		candidates = append(candidates, live...)
	}

	records := feed.Filter(candidates, q, uc.now())
	view := feed.Full(records)
	if demo {
		view = feed.Demo(records)
	}
	return FeedResult{DemoView: view, Total: len(records), Live: loaded}
}

// RefreshCrypto 重新拉取实时代币，整体替换上一次的结果
func (uc *FeedUseCase) RefreshCrypto(ctx context.Context, s *domain.Session) []model.TrendRecord {
	live := uc.gen.FetchLiveCryptoTrends(ctx)
	s.ReplaceLiveCrypto(live)
	uc.log.WithContext(ctx).Infof("会话 %s 刷新实时代币 %d 条", s.ID, len(live))
	return live
}

// Sources 数据源列表
func (uc *FeedUseCase) Sources(ctx context.Context) []model.Source {
	return uc.trends.ListSources(ctx)
}

// Score 趋势评分拆解
func (uc *FeedUseCase) Score(ctx context.Context, s *domain.Session, id string) (feed.ScoreBreakdown, error) {
	t, ok := findTrend(ctx, uc.trends, s, id)
	if !ok {
		return feed.ScoreBreakdown{}, ErrTrendNotFound
	}
	return feed.Breakdown(t, uc.trends.ListSources(ctx)), nil
}
