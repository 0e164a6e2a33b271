package service

import (
	"context"

	"github.com/go-kratos/kratos/v2/transport/http"

	"github.com/iWorld-y/trend_radar/app/display/internal/domain"
	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/model"
)

// SessionHeader 会话标识请求头，缺失或非法时服务端签发新的 uuid 并在响应头中返回
const SessionHeader = "X-Session-ID"

const (
	OperationRadarListTrends    = "/trend_radar.v1.Radar/ListTrends"
	OperationRadarListSources   = "/trend_radar.v1.Radar/ListSources"
	OperationRadarScore         = "/trend_radar.v1.Radar/Score"
	OperationRadarRefreshCrypto = "/trend_radar.v1.Radar/RefreshCrypto"
	OperationRadarDomains       = "/trend_radar.v1.Radar/Domains"
	OperationRadarSaaS          = "/trend_radar.v1.Radar/SaaS"
	OperationRadarAffiliate     = "/trend_radar.v1.Radar/Affiliate"
	OperationRadarCreative      = "/trend_radar.v1.Radar/Creative"
	OperationRadarGetDetail     = "/trend_radar.v1.Radar/GetDetail"
	OperationRadarSelectTrend   = "/trend_radar.v1.Radar/SelectTrend"
	OperationRadarAnalyze       = "/trend_radar.v1.Radar/Analyze"
	OperationRadarBuild         = "/trend_radar.v1.Radar/Build"
)

func RegisterRadarHTTPServer(srv *http.Server, s *RadarService) {
	r := srv.Route("/")
	r.GET("/healthz", func(ctx http.Context) error {
		return ctx.Result(200, s.Health(ctx))
	})
	r.GET("/api/trends", handler(s, OperationRadarListTrends, bindTrendsQuery, s.ListTrends))
	r.GET("/api/sources", handler(s, OperationRadarListSources, bindNothing, s.ListSources))
	r.GET("/api/trends/{id}/score", handler(s, OperationRadarScore, bindScoreVars, s.Score))
	r.POST("/api/crypto/refresh", handler(s, OperationRadarRefreshCrypto, bindNothing, s.RefreshCrypto))
	r.POST("/api/domains", handler(s, OperationRadarDomains, bindBody[DomainsReq], s.Domains))
	r.POST("/api/saas", handler(s, OperationRadarSaaS, bindBody[model.SaaSConceptRequest], s.SaaS))
	r.POST("/api/affiliate", handler(s, OperationRadarAffiliate, bindBody[AffiliateReq], s.Affiliate))
	r.POST("/api/creatives", handler(s, OperationRadarCreative, bindBody[CreativeReq], s.Creative))
	r.GET("/api/detail", handler(s, OperationRadarGetDetail, bindNothing, s.GetDetail))
	r.POST("/api/detail/select", handler(s, OperationRadarSelectTrend, bindBody[SelectReq], s.SelectTrend))
	r.POST("/api/detail/analyze", handler(s, OperationRadarAnalyze, bindNothing, s.Analyze))
	r.POST("/api/detail/build", handler(s, OperationRadarBuild, bindBody[BuildReq], s.Build))
}

// handler 解析请求、绑定会话并经过服务端中间件调用业务方法
func handler[Req, Resp any](
	s *RadarService,
	operation string,
	bind func(http.Context, *Req) error,
	call func(context.Context, *domain.Session, *Req) (Resp, error),
) http.HandlerFunc {
	return func(ctx http.Context) error {
		var in Req
		if err := bind(ctx, &in); err != nil {
			return err
		}
		sess := s.ucSession.Resolve(ctx, ctx.Header().Get(SessionHeader))
		ctx.Response().Header().Set(SessionHeader, sess.ID)

		http.SetOperation(ctx, operation)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(ctx, sess, req.(*Req))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out)
	}
}

func bindNothing(http.Context, *Empty) error { return nil }

// bindBody 空请求体视为零值
func bindBody[Req any](ctx http.Context, in *Req) error {
	if ctx.Request().ContentLength == 0 {
		return nil
	}
	return ctx.Bind(in)
}

func bindTrendsQuery(ctx http.Context, in *ListTrendsReq) error {
	q := ctx.Query()
	in.Category = q.Get("category")
	in.TimeFrame = q.Get("timeframe")
	in.MinVelocity = q.Get("min_velocity")
	in.Cap = q.Get("cap")
	in.Demo = q.Get("demo")
	return nil
}

func bindScoreVars(ctx http.Context, in *ScoreReq) error {
	in.ID = ctx.Vars().Get("id")
	return nil
}
