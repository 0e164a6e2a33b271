package data

import (
	"sync"
	"time"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/trend_radar/app/display/internal/conf"
	"github.com/iWorld-y/trend_radar/app/display/internal/domain"
	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/fixture"
)

// DefaultSessionTTL 会话默认空闲回收时间
const DefaultSessionTTL = 2 * time.Hour

type Data struct {
	store *fixture.Store

	mu         sync.Mutex
	sessions   map[string]*domain.Session
	sessionTTL time.Duration
	now        func() time.Time
}

func NewData(c *conf.Radar, logger log.Logger) (*Data, func(), error) {
	store, err := fixture.NewStore(time.Now())
	if err != nil {
		return nil, nil, err
	}

	ttl := DefaultSessionTTL
	if c != nil && c.Session != nil && c.Session.Ttl != "" {
		d, err := time.ParseDuration(c.Session.Ttl)
		if err != nil || d <= 0 {
			log.NewHelper(logger).Warnf("session.ttl %q 无效，使用默认值 %s", c.Session.Ttl, DefaultSessionTTL)
		} else {
			ttl = d
		}
	}

	d := &Data{
		store:      store,
		sessions:   make(map[string]*domain.Session),
		sessionTTL: ttl,
		now:        time.Now,
	}
	cleanup := func() {
		log.NewHelper(logger).Info("closing the data resources")
		d.mu.Lock()
		d.sessions = make(map[string]*domain.Session)
		d.mu.Unlock()
	}
	return d, cleanup, nil
}
