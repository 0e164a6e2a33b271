package server

import (
	"github.com/google/wire"

	"github.com/iWorld-y/trend_radar/app/display/internal/data"
	"github.com/iWorld-y/trend_radar/app/display/internal/service"
	"github.com/iWorld-y/trend_radar/app/display/internal/usecase"
	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/engine"
)

// ProviderSet 是展示服务的依赖注入 Provider 集合
var ProviderSet = wire.NewSet(
	// Server providers
	NewHTTPServer,
	NewRadarEngine,
	wire.Bind(new(usecase.Generator), new(*engine.Engine)),

	// Data providers
	data.NewData,
	data.NewTrendRepo,
	data.NewSessionRepo,

	// UseCase providers
	usecase.ProviderSet,

	// Service providers
	service.ProviderSet,
)
