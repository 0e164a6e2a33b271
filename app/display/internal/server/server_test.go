package server

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iWorld-y/trend_radar/app/display/internal/conf"
	"github.com/iWorld-y/trend_radar/app/display/internal/data"
	"github.com/iWorld-y/trend_radar/app/display/internal/service"
	"github.com/iWorld-y/trend_radar/app/display/internal/usecase"
)

func TestToConfig(t *testing.T) {
	cfg := toConfig(&conf.Radar{
		Llm:         &conf.LLM{Provider: "openai", BaseUrl: "http://llm", ApiKey: "k", Model: "m", ReasoningModel: "r", ImageModel: "i"},
		Search:      &conf.Search{Provider: "searxng", Searxng: &conf.SearXNG{BaseUrl: "http://sx", Timeout: 5}},
		Generation:  &conf.Generation{Timeout: "45s", DomainCount: 8},
		Concurrency: &conf.Concurrency{Qps: 3, Rpm: 90},
	})

	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "r", cfg.LLM.ReasoningModel)
	assert.Equal(t, "http://sx", cfg.Search.SearXNG.BaseURL)
	assert.Equal(t, 45*time.Second, cfg.Generation.Timeout)
	assert.Equal(t, 8, cfg.Generation.DomainCount)
	assert.Equal(t, 90, cfg.Concurrency.RPM)

	assert.NotNil(t, toConfig(nil))
}

func TestNewRadarEngineWithoutCredential(t *testing.T) {
	t.Setenv("TREND_RADAR_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	eng, cleanup, err := NewRadarEngine(&conf.Radar{}, log.DefaultLogger)
	require.NoError(t, err)
	defer cleanup()
	assert.False(t, eng.Ready())
}

func TestNewRadarEngineBadProvider(t *testing.T) {
	t.Setenv("TREND_RADAR_API_KEY", "k")
	_, _, err := NewRadarEngine(&conf.Radar{Llm: &conf.LLM{Provider: "claude"}}, log.DefaultLogger)
	assert.Error(t, err)
}

func TestHTTPServerCORS(t *testing.T) {
	t.Setenv("TREND_RADAR_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	logger := log.DefaultLogger

	eng, cleanup, err := NewRadarEngine(&conf.Radar{}, logger)
	require.NoError(t, err)
	defer cleanup()
	d, dataCleanup, err := data.NewData(&conf.Radar{}, logger)
	require.NoError(t, err)
	defer dataCleanup()

	trends := data.NewTrendRepo(d, logger)
	svc := service.NewRadarService(
		usecase.NewSessionUseCase(data.NewSessionRepo(d, logger), eng, logger),
		usecase.NewFeedUseCase(trends, eng, logger),
		usecase.NewGenerationUseCase(eng, logger),
		usecase.NewDetailUseCase(trends, logger),
		logger,
	)
	srv := NewHTTPServer(&conf.Server{Http: &conf.HTTP{CorsOrigins: []string{"http://localhost:5173"}}}, svc, logger)

	req := httptest.NewRequest("OPTIONS", "/api/trends", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "GET")
	// 浏览器发送的预检请求头名称是小写的
	req.Header.Set("Access-Control-Request-Headers", strings.ToLower(service.SessionHeader))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest("GET", "/healthz", nil)
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	assert.Equal(t, 200, rec.Code)
	assert.JSONEq(t, `{"status":"ok","generationReady":false}`, rec.Body.String())
}

func TestHTTPServerInvalidTimeout(t *testing.T) {
	t.Setenv("TREND_RADAR_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	var buf bytes.Buffer
	logger := log.NewStdLogger(&buf)

	eng, engCleanup, err := NewRadarEngine(&conf.Radar{}, logger)
	require.NoError(t, err)
	defer engCleanup()
	d, cleanup, err := data.NewData(&conf.Radar{}, logger)
	require.NoError(t, err)
	defer cleanup()
	trends := data.NewTrendRepo(d, logger)
	svc := service.NewRadarService(
		usecase.NewSessionUseCase(data.NewSessionRepo(d, logger), eng, logger),
		usecase.NewFeedUseCase(trends, eng, logger),
		usecase.NewGenerationUseCase(eng, logger),
		usecase.NewDetailUseCase(trends, logger),
		logger,
	)
	srv := NewHTTPServer(&conf.Server{Http: &conf.HTTP{Timeout: "soon"}}, svc, logger)

	assert.Contains(t, buf.String(), "http.timeout")
	assert.Contains(t, buf.String(), "soon")

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))
	assert.Equal(t, 200, rec.Code)
}
