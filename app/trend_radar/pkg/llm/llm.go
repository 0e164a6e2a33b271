// Package llm 定义与具体厂商无关的文本/图片生成接口。
//
// 引擎只依赖这里的 Generator / ImageGenerator，具体实现见 openai 与 gemini 子包。
package llm

import (
	"context"
	"errors"
)

var (
	// ErrNoCredential 未配置凭证
	ErrNoCredential = errors.New("llm: no credential configured")
	// ErrImageUnsupported 当前提供方不支持图片生成
	ErrImageUnsupported = errors.New("llm: image generation not supported by provider")
	// ErrEmptyResponse 服务返回了空内容
	ErrEmptyResponse = errors.New("llm: empty response")
)

// Request 一次文本生成请求
type Request struct {
	System string
	Prompt string
	// Schema 声明的输出结构，为空时只要求 JSON
	Schema *Schema
	// JSONOnly 要求服务只返回 JSON
	JSONOnly bool
	// WebSearch 允许服务联网搜索
	WebSearch bool
	// Model 为空时使用提供方默认模型
	Model string
}

// Generator 文本生成
type Generator interface {
	Generate(ctx context.Context, req *Request) (string, error)
}

// ImageRequest 图片生成请求
type ImageRequest struct {
	Prompt   string
	Model    string
	MIMEType string
}

// Image 生成的图片
type Image struct {
	MIMEType string
	Data     []byte
}

// ImageGenerator 图片生成，是可选能力
type ImageGenerator interface {
	GenerateImage(ctx context.Context, req *ImageRequest) (*Image, error)
}
