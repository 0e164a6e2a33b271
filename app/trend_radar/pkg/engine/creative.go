package engine

import (
	"context"
	"strings"

	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/llm"
	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/logger"
	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/model"
)

// GenerateCreative 根据图片提示词生成一张广告素材，失败或提供方不支持时返回 nil
func (e *Engine) GenerateCreative(ctx context.Context, prompt string) *model.Creative {
	const op = "GenerateCreative"

	if strings.TrimSpace(prompt) == "" {
		return nil
	}
	if !e.Ready() {
		logger.Log.Warnf("[%s] 未配置生成服务凭证，跳过调用", op)
		return nil
	}
	ig, ok := e.gen.(llm.ImageGenerator)
	if !ok {
		logger.Log.Errorf("[%s] %v", op, llm.ErrImageUnsupported)
		return nil
	}
	if err := e.limiter.Wait(ctx); err != nil {
		logger.Log.Errorf("[%s] 等待限流失败: %v", op, err)
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, e.cfg.Generation.Timeout)
	defer cancel()

	img, err := ig.GenerateImage(ctx, &llm.ImageRequest{Prompt: prompt, Model: e.cfg.LLM.ImageModel})
	if err == nil && (img == nil || len(img.Data) == 0) {
		err = llm.ErrEmptyResponse
	}
	if err != nil {
		logger.Log.Errorf("[%s] 图片生成失败: %v", op, err)
		return nil
	}
	logger.Log.Infof("[%s] 生成图片 %s，%d 字节", op, img.MIMEType, len(img.Data))
	return &model.Creative{Prompt: prompt, MIMEType: img.MIMEType, Data: img.Data}
}
