// Package openai 基于 eino 的 OpenAI 兼容接口实现 llm.Generator。
package openai

import (
	"context"
	"fmt"
	"strings"

	einoopenai "github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/llm"
)

const defaultSystem = "你是一个 JSON 生成器。请只输出 JSON 字符串。"

// Client OpenAI 兼容的生成客户端
type Client struct {
	chatModel model.BaseChatModel
}

var _ llm.Generator = (*Client)(nil)

// New 创建客户端
func New(ctx context.Context, baseURL, apiKey, modelName string) (*Client, error) {
	if apiKey == "" {
		return nil, llm.ErrNoCredential
	}
	cm, err := einoopenai.NewChatModel(ctx, &einoopenai.ChatModelConfig{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Model:   modelName,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM 初始化失败: %w", err)
	}
	return &Client{chatModel: cm}, nil
}

// NewWithModel 使用已有的 ChatModel
func NewWithModel(cm model.BaseChatModel) *Client {
	return &Client{chatModel: cm}
}

// Generate 实现 llm.Generator。
// 该接口没有原生的结构化输出与联网能力，输出结构直接写入提示词，WebSearch 被忽略。
func (c *Client) Generate(ctx context.Context, req *llm.Request) (string, error) {
	system := req.System
	if system == "" && (req.JSONOnly || req.Schema != nil) {
		system = defaultSystem
	}

	var messages []*schema.Message
	if system != "" {
		messages = append(messages, schema.SystemMessage(system))
	}
	messages = append(messages, schema.UserMessage(renderPrompt(req)))

	var opts []model.Option
	if req.Model != "" {
		opts = append(opts, model.WithModel(req.Model))
	}

	resp, err := c.chatModel.Generate(ctx, messages, opts...)
	if err != nil {
		return "", err
	}
	if resp == nil || strings.TrimSpace(resp.Content) == "" {
		return "", llm.ErrEmptyResponse
	}
	return resp.Content, nil
}

func renderPrompt(req *llm.Request) string {
	if req.Schema == nil {
		if req.JSONOnly {
			return req.Prompt + "\n\nRETURN JSON ONLY."
		}
		return req.Prompt
	}
	var sb strings.Builder
	sb.WriteString(req.Prompt)
	sb.WriteString("\n\nRETURN JSON ONLY, matching this JSON Schema exactly (no markdown):\n")
	sb.WriteString(req.Schema.String())
	return sb.String()
}
