package data

import (
	"context"
	"time"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/trend_radar/app/display/internal/domain"
	"github.com/iWorld-y/trend_radar/app/display/internal/repo"
)

type sessionRepo struct {
	data *Data
	log  *log.Helper
}

func NewSessionRepo(data *Data, logger log.Logger) repo.SessionRepo {
	return &sessionRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

// Get 获取会话，顺带回收空闲超时的会话
func (r *sessionRepo) Get(ctx context.Context, id string) (*domain.Session, bool) {
	now := r.data.now()

	r.data.mu.Lock()
	defer r.data.mu.Unlock()
	r.evictLocked(ctx, now)

	s, ok := r.data.sessions[id]
	if ok {
		s.Touch(now)
	}
	return s, ok
}

// Save 保存会话。不携带会话头的请求每次都会新建会话，所以这里同样需要回收。
func (r *sessionRepo) Save(ctx context.Context, s *domain.Session) {
	now := r.data.now()

	r.data.mu.Lock()
	defer r.data.mu.Unlock()
	r.evictLocked(ctx, now)

	s.Touch(now)
	r.data.sessions[s.ID] = s
}

// evictLocked 删除空闲超过 TTL 的会话，调用方需持有 data.mu
func (r *sessionRepo) evictLocked(ctx context.Context, now time.Time) {
	for sid, s := range r.data.sessions {
		if now.Sub(s.IdleSince()) > r.data.sessionTTL {
			delete(r.data.sessions, sid)
			r.log.WithContext(ctx).Debugf("回收空闲会话 %s", sid)
		}
	}
}
