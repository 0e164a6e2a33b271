package server

import (
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/logging"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	"github.com/go-kratos/kratos/v2/transport/http"
	"github.com/rs/cors"

	"github.com/iWorld-y/trend_radar/app/display/internal/conf"
	"github.com/iWorld-y/trend_radar/app/display/internal/service"
)

func NewHTTPServer(c *conf.Server, s *service.RadarService, logger log.Logger) *http.Server {
	var opts = []http.ServerOption{
		http.Middleware(
			recovery.Recovery(),
			logging.Server(logger),
		),
	}
	if c.Http == nil {
		c.Http = &conf.HTTP{}
	}
	if c.Http.Addr != "" {
		opts = append(opts, http.Address(c.Http.Addr))
	}
	if c.Http.Timeout != "" {
		d, err := time.ParseDuration(c.Http.Timeout)
		if err != nil {
			log.NewHelper(logger).Warnf("http.timeout %q 无效，使用默认超时: %v", c.Http.Timeout, err)
		} else {
			opts = append(opts, http.Timeout(d))
		}
	}
	opts = append(opts, http.Filter(newCORS(c.Http.CorsOrigins).Handler))

	srv := http.NewServer(opts...)
	service.RegisterRadarHTTPServer(srv, s)
	return srv
}

// newCORS 前端单页应用与服务分开部署时需要跨域，会话头要允许读写
func newCORS(origins []string) *cors.Cors {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", service.SessionHeader},
		ExposedHeaders: []string{service.SessionHeader},
	})
}
