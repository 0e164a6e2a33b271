// Package engine 封装全部生成操作。
//
// 每个操作都走同一条调用路径：凭证检查 → 限流 → 单次超时 → 调用生成服务 →
// 提取首个合法 JSON 对象 → 结构校验 → 后处理。任何失败只记录日志，
// 调用方得到的永远是空切片或 nil，不会拿到错误。
package engine

import (
	"context"
	"errors"
	"time"

	"github.com/bytedance/gg/gson"
	"github.com/go-shiori/go-readability"
	"golang.org/x/time/rate"

	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/config"
	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/estimator"
	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/jsonx"
	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/llm"
	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/logger"
	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/search"
)

// Fetcher 抓取网页正文
type Fetcher func(ctx context.Context, url string) (string, error)

// Engine 生成引擎，可并发使用
type Engine struct {
	cfg      *config.Config
	gen      llm.Generator
	searcher search.Searcher
	est      estimator.Estimator
	fetch    Fetcher
	now      func() time.Time
	limiter  *rate.Limiter
}

// Option 引擎选项
type Option func(*Engine)

// WithSearcher 为实时发现注入联网检索
func WithSearcher(s search.Searcher) Option {
	return func(e *Engine) { e.searcher = s }
}

// WithEstimator 替换合成数据估算器
func WithEstimator(est estimator.Estimator) Option {
	return func(e *Engine) { e.est = est }
}

// WithClock 替换时钟
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithFetcher 替换正文抓取
func WithFetcher(f Fetcher) Option {
	return func(e *Engine) { e.fetch = f }
}

// New 创建引擎。gen 为 nil 时所有操作直接返回空结果。
func New(cfg *config.Config, gen llm.Generator, opts ...Option) *Engine {
	cfg.SetDefaults()

	e := &Engine{
		cfg:     cfg,
		gen:     gen,
		est:     estimator.NewRandom(uint64(time.Now().UnixNano())),
		fetch:   fetchAndCleanContent,
		now:     time.Now,
		limiter: rate.NewLimiter(rate.Limit(float64(cfg.Concurrency.RPM)/60.0), cfg.Concurrency.QPS),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Ready 是否可以发起生成调用
func (e *Engine) Ready() bool {
	return e.gen != nil && e.cfg.HasCredential()
}

// call 执行一次文本生成并把首个合法 JSON 对象解码到 out
func (e *Engine) call(ctx context.Context, op string, req *llm.Request, out any) bool {
	text, ok := e.generate(ctx, op, req)
	if !ok {
		return false
	}
	if err := jsonx.Decode(text, out); err != nil {
		logger.Log.Errorf("[%s] 解析响应失败: %v", op, err)
		return false
	}
	logger.Log.Debugf("[%s] 解析结果: %s", op, gson.ToString(out))
	return true
}

func (e *Engine) generate(ctx context.Context, op string, req *llm.Request) (string, bool) {
	if !e.Ready() {
		logger.Log.Warnf("[%s] 未配置生成服务凭证，跳过调用", op)
		return "", false
	}
	if err := e.limiter.Wait(ctx); err != nil {
		logger.Log.Errorf("[%s] 等待限流失败: %v", op, err)
		return "", false
	}

	ctx, cancel := context.WithTimeout(ctx, e.cfg.Generation.Timeout)
	defer cancel()

	start := time.Now()
	text, err := e.gen.Generate(ctx, req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			logger.Log.Errorf("[%s] 生成调用超时 (%s)", op, e.cfg.Generation.Timeout)
		} else {
			logger.Log.Errorf("[%s] 生成调用失败: %v", op, err)
		}
		return "", false
	}
	logger.Log.Debugf("[%s] 生成完成，耗时 %s，响应长度 %d", op, time.Since(start).Round(time.Millisecond), len(text))
	return text, true
}

func fetchAndCleanContent(_ context.Context, url string) (string, error) {
	article, err := readability.FromURL(url, 30*time.Second)
	if err != nil {
		return "", err
	}
	return article.TextContent, nil
}
