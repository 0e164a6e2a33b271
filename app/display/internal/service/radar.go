package service

import (
	"context"
	"strconv"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"

	"github.com/iWorld-y/trend_radar/app/display/internal/domain"
	"github.com/iWorld-y/trend_radar/app/display/internal/usecase"
	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/detail"
	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/feed"
	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/model"
)

// ProviderSet 服务层 Provider 集合
var ProviderSet = wire.NewSet(NewRadarService)

type RadarService struct {
	ucSession *usecase.SessionUseCase
	ucFeed    *usecase.FeedUseCase
	ucGen     *usecase.GenerationUseCase
	ucDetail  *usecase.DetailUseCase
	log       *log.Helper
}

func NewRadarService(
	ucSession *usecase.SessionUseCase,
	ucFeed *usecase.FeedUseCase,
	ucGen *usecase.GenerationUseCase,
	ucDetail *usecase.DetailUseCase,
	logger log.Logger,
) *RadarService {
	return &RadarService{
		ucSession: ucSession,
		ucFeed:    ucFeed,
		ucGen:     ucGen,
		ucDetail:  ucDetail,
		log:       log.NewHelper(logger),
	}
}

type ListTrendsReq struct {
	Category    string
	TimeFrame   string
	MinVelocity string
	Cap         string
	Demo        string
}

type ListSourcesReply struct {
	Sources []model.Source `json:"sources"`
}

type ScoreReq struct {
	ID string
}

type RefreshCryptoReply struct {
	Trends []model.TrendRecord `json:"trends"`
}

type DomainsReq struct {
	Keyword  string `json:"keyword"`
	Category string `json:"category"`
}

type DomainsReply struct {
	Domains []model.DomainAsset `json:"domains"`
}

type SaaSReply struct {
	Blueprints []model.SaaSBlueprint `json:"blueprints"`
}

type AffiliateReq struct {
	Niche       string `json:"niche"`
	ProductType string `json:"productType"`
}

type AffiliateReply struct {
	Strategies []model.AffiliateStrategy `json:"strategies"`
}

type CreativeReq struct {
	Prompt string `json:"prompt"`
}

// CreativeReply 生成失败时 Creative 为 null
type CreativeReply struct {
	Creative *model.Creative `json:"creative"`
}

type SelectReq struct {
	TrendID string `json:"trendId"`
}

type BuildReq struct {
	AssetType model.AssetType `json:"assetType"`
}

type Empty struct{}

type HealthReply struct {
	Status string `json:"status"`
	// GenerationReady 是否配置了生成服务凭证，未配置时所有生成操作返回空结果
	GenerationReady bool `json:"generationReady"`
}

func (s *RadarService) ListTrends(ctx context.Context, sess *domain.Session, req *ListTrendsReq) (*usecase.FeedResult, error) {
	minVelocity := 0
	if req.MinVelocity != "" {
		v, err := strconv.Atoi(req.MinVelocity)
		if err != nil {
			return nil, errors.BadRequest("INVALID_QUERY", "min_velocity must be an integer")
		}
		minVelocity = v
	}
	var demo bool
	if req.Demo != "" {
		v, err := strconv.ParseBool(req.Demo)
		if err != nil {
			return nil, errors.BadRequest("INVALID_QUERY", "demo must be a boolean")
		}
		demo = v
	}
	q, err := feed.ParseQuery(req.Category, req.TimeFrame, minVelocity, req.Cap)
	if err != nil {
		return nil, errors.BadRequest("INVALID_QUERY", err.Error())
	}

	res := s.ucFeed.List(ctx, sess, q, demo)
	res.Visible = orEmpty(res.Visible)
	return &res, nil
}

func (s *RadarService) ListSources(ctx context.Context, _ *domain.Session, _ *Empty) (*ListSourcesReply, error) {
	return &ListSourcesReply{Sources: orEmpty(s.ucFeed.Sources(ctx))}, nil
}

func (s *RadarService) Score(ctx context.Context, sess *domain.Session, req *ScoreReq) (*feed.ScoreBreakdown, error) {
	b, err := s.ucFeed.Score(ctx, sess, req.ID)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *RadarService) RefreshCrypto(ctx context.Context, sess *domain.Session, _ *Empty) (*RefreshCryptoReply, error) {
	return &RefreshCryptoReply{Trends: orEmpty(s.ucFeed.RefreshCrypto(ctx, sess))}, nil
}

func (s *RadarService) Domains(ctx context.Context, _ *domain.Session, req *DomainsReq) (*DomainsReply, error) {
	domains, err := s.ucGen.Domains(ctx, req.Keyword, req.Category)
	if err != nil {
		return nil, err
	}
	return &DomainsReply{Domains: orEmpty(domains)}, nil
}

func (s *RadarService) SaaS(ctx context.Context, _ *domain.Session, req *model.SaaSConceptRequest) (*SaaSReply, error) {
	blueprints, err := s.ucGen.SaaS(ctx, *req)
	if err != nil {
		return nil, err
	}
	return &SaaSReply{Blueprints: orEmpty(blueprints)}, nil
}

func (s *RadarService) Affiliate(ctx context.Context, _ *domain.Session, req *AffiliateReq) (*AffiliateReply, error) {
	strategies, err := s.ucGen.Affiliate(ctx, req.Niche, req.ProductType)
	if err != nil {
		return nil, err
	}
	return &AffiliateReply{Strategies: orEmpty(strategies)}, nil
}

func (s *RadarService) Creative(ctx context.Context, _ *domain.Session, req *CreativeReq) (*CreativeReply, error) {
	c, err := s.ucGen.Creative(ctx, req.Prompt)
	if err != nil {
		return nil, err
	}
	return &CreativeReply{Creative: c}, nil
}

func (s *RadarService) GetDetail(ctx context.Context, sess *domain.Session, _ *Empty) (*detail.Snapshot, error) {
	snap := s.ucDetail.Get(ctx, sess)
	return &snap, nil
}

func (s *RadarService) SelectTrend(ctx context.Context, sess *domain.Session, req *SelectReq) (*detail.Snapshot, error) {
	if req.TrendID == "" {
		snap := sess.Detail.Clear()
		return &snap, nil
	}
	snap, err := s.ucDetail.Select(ctx, sess, req.TrendID)
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

func (s *RadarService) Analyze(ctx context.Context, sess *domain.Session, _ *Empty) (*detail.Snapshot, error) {
	snap, err := s.ucDetail.Analyze(ctx, sess)
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

func (s *RadarService) Build(ctx context.Context, sess *domain.Session, req *BuildReq) (*detail.Snapshot, error) {
	snap, err := s.ucDetail.Build(ctx, sess, req.AssetType)
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

func (s *RadarService) Health(ctx context.Context) *HealthReply {
	return &HealthReply{Status: "ok", GenerationReady: s.ucGen.Ready()}
}

// orEmpty 让空结果序列化为 [] 而不是 null
func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
