// Package gemini 基于 google.golang.org/genai 实现 llm.Generator 与 llm.ImageGenerator。
package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/llm"
)

const (
	DefaultModel      = "gemini-2.5-flash"
	DefaultImageModel = "imagen-4.0-generate-001"
)

// Client Gemini 生成客户端
type Client struct {
	client     *genai.Client
	model      string
	imageModel string
}

var (
	_ llm.Generator      = (*Client)(nil)
	_ llm.ImageGenerator = (*Client)(nil)
)

// Config 客户端配置
type Config struct {
	APIKey     string
	BaseURL    string // 为空时使用官方地址
	Model      string
	ImageModel string
}

// New 创建客户端
func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, llm.ErrNoCredential
	}
	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("创建 GenAI 客户端失败: %w", err)
	}

	c := &Client{client: client, model: cfg.Model, imageModel: cfg.ImageModel}
	if c.model == "" {
		c.model = DefaultModel
	}
	if c.imageModel == "" {
		c.imageModel = DefaultImageModel
	}
	return c, nil
}

// Generate 实现 llm.Generator
func (c *Client) Generate(ctx context.Context, req *llm.Request) (string, error) {
	modelName := req.Model
	if modelName == "" {
		modelName = c.model
	}

	resp, err := c.client.Models.GenerateContent(ctx, modelName, genai.Text(req.Prompt), buildConfig(req))
	if err != nil {
		return "", err
	}
	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", llm.ErrEmptyResponse
	}
	return text, nil
}

// buildConfig 联网搜索工具与 JSON 响应格式不能同时使用，
// 开启搜索时只在提示词中要求 JSON，由调用方从文本中提取。
func buildConfig(req *llm.Request) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{}
	if req.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	if req.WebSearch {
		cfg.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
		return cfg
	}
	if req.JSONOnly || req.Schema != nil {
		cfg.ResponseMIMEType = "application/json"
	}
	if req.Schema != nil {
		cfg.ResponseSchema = toGenAISchema(req.Schema)
	}
	return cfg
}

func toGenAISchema(s *llm.Schema) *genai.Schema {
	if s == nil {
		return nil
	}
	out := &genai.Schema{
		Type:     toGenAIType(s.Type),
		Enum:     s.Enum,
		Required: s.Required,
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for k, v := range s.Properties {
			out.Properties[k] = toGenAISchema(v)
		}
	}
	if s.Items != nil {
		out.Items = toGenAISchema(s.Items)
	}
	return out
}

func toGenAIType(t llm.Type) genai.Type {
	switch t {
	case llm.TypeObject:
		return genai.TypeObject
	case llm.TypeArray:
		return genai.TypeArray
	case llm.TypeNumber:
		return genai.TypeNumber
	case llm.TypeInteger:
		return genai.TypeInteger
	case llm.TypeBoolean:
		return genai.TypeBoolean
	default:
		return genai.TypeString
	}
}

// GenerateImage 实现 llm.ImageGenerator
func (c *Client) GenerateImage(ctx context.Context, req *llm.ImageRequest) (*llm.Image, error) {
	modelName := req.Model
	if modelName == "" {
		modelName = c.imageModel
	}
	mime := req.MIMEType
	if mime == "" {
		mime = "image/png"
	}

	resp, err := c.client.Models.GenerateImages(ctx, modelName, req.Prompt, &genai.GenerateImagesConfig{
		NumberOfImages: 1,
		OutputMIMEType: mime,
	})
	if err != nil {
		return nil, err
	}
	if len(resp.GeneratedImages) == 0 || resp.GeneratedImages[0].Image == nil || len(resp.GeneratedImages[0].Image.ImageBytes) == 0 {
		return nil, llm.ErrEmptyResponse
	}
	img := resp.GeneratedImages[0].Image
	if img.MIMEType != "" {
		mime = img.MIMEType
	}
	return &llm.Image{MIMEType: mime, Data: img.ImageBytes}, nil
}
