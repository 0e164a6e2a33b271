package usecase

import (
	"context"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"

	"github.com/iWorld-y/trend_radar/app/display/internal/domain"
	"github.com/iWorld-y/trend_radar/app/display/internal/repo"
	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/detail"
)

// SessionUseCase 会话管理
type SessionUseCase struct {
	repo repo.SessionRepo
	gen  Generator
	log  *log.Helper
}

// NewSessionUseCase 创建会话管理实例
func NewSessionUseCase(repo repo.SessionRepo, gen Generator, logger log.Logger) *SessionUseCase {
	return &SessionUseCase{repo: repo, gen: gen, log: log.NewHelper(logger)}
}

// Resolve 获取会话，不存在或 ID 不是合法 uuid 时新建
func (uc *SessionUseCase) Resolve(ctx context.Context, id string) *domain.Session {
	if _, err := uuid.Parse(id); err != nil {
		id = uuid.NewString()
	} else if s, ok := uc.repo.Get(ctx, id); ok {
		return s
	}

	s := domain.NewSession(id, detail.New(uc.gen), time.Now())
	uc.repo.Save(ctx, s)
	uc.log.WithContext(ctx).Infof("创建会话 %s", id)
	return s
}
