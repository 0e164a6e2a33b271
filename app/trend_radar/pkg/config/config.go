package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// 凭证相关的环境变量
const (
	EnvAPIKey       = "TREND_RADAR_API_KEY"
	EnvGeminiAPIKey = "GEMINI_API_KEY"
	EnvOpenAIAPIKey = "OPENAI_API_KEY"
)

// 默认值
const (
	DefaultTimeout     = 60 * time.Second
	DefaultRPM         = 60
	DefaultQPS         = 1
	DefaultDomainCount = 20
)

// Config 项目配置结构体
type Config struct {
	LLM         LLMConfig         `yaml:"llm"`
	Search      SearchConfig      `yaml:"search"`
	Generation  GenerationConfig  `yaml:"generation"`
	Log         LogConfig         `yaml:"log"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
}

// LLMConfig LLM 相关配置
type LLMConfig struct {
	Provider       string `yaml:"provider"` // gemini or openai
	BaseURL        string `yaml:"base_url"`
	APIKey         string `yaml:"api_key"`
	Model          string `yaml:"model"`
	ReasoningModel string `yaml:"reasoning_model"` // SaaS / 联盟营销这类长文本任务使用
	ImageModel     string `yaml:"image_model"`
}

// SearchConfig 搜索相关配置，用于实时加密货币发现的联网上下文
type SearchConfig struct {
	Provider string        `yaml:"provider"`
	Tavily   TavilyConfig  `yaml:"tavily"`
	SearXNG  SearXNGConfig `yaml:"searxng"`
}

// TavilyConfig Tavily 配置
type TavilyConfig struct {
	APIKey   string `yaml:"api_key"`
	Endpoint string `yaml:"endpoint"`
}

// SearXNGConfig SearXNG 配置
type SearXNGConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout int    `yaml:"timeout"`
}

// GenerationConfig 生成调用配置
type GenerationConfig struct {
	Timeout     time.Duration `yaml:"timeout"`      // 单次调用超时，不重试
	DomainCount int           `yaml:"domain_count"` // 域名发现请求的候选数量
}

// LogConfig 日志相关配置
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// ConcurrencyConfig 并发控制配置
type ConcurrencyConfig struct {
	QPS int `yaml:"qps"`
	RPM int `yaml:"rpm"`
}

// LoadConfig 从指定路径加载配置
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.SetDefaults()

	return &cfg, nil
}

// SetDefaults 填充缺省值
func (c *Config) SetDefaults() {
	if c.LLM.Provider == "" {
		c.LLM.Provider = "gemini"
	}
	if c.Generation.Timeout <= 0 {
		c.Generation.Timeout = DefaultTimeout
	}
	if c.Generation.DomainCount <= 0 {
		c.Generation.DomainCount = DefaultDomainCount
	}
	if c.Concurrency.RPM <= 0 {
		c.Concurrency.RPM = DefaultRPM
	}
	if c.Concurrency.QPS <= 0 {
		c.Concurrency.QPS = DefaultQPS
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// ApplyEnv 加载 .env（不存在时忽略）并用环境变量覆盖凭证
func ApplyEnv(c *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(EnvAPIKey); v != "" {
		c.LLM.APIKey = v
		return
	}
	if c.LLM.APIKey != "" {
		return
	}
	switch c.LLM.Provider {
	case "openai":
		c.LLM.APIKey = os.Getenv(EnvOpenAIAPIKey)
	default:
		c.LLM.APIKey = os.Getenv(EnvGeminiAPIKey)
	}
}

// HasCredential 是否配置了生成服务凭证
func (c *Config) HasCredential() bool {
	return c.LLM.APIKey != ""
}
