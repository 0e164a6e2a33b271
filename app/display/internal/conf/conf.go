package conf

type Bootstrap struct {
	Server *Server
	Radar  *Radar
}

type Server struct {
	Http *HTTP
}

type HTTP struct {
	Addr    string
	Timeout string
	// CorsOrigins 允许跨域访问的来源，为空时允许全部
	CorsOrigins []string `json:"cors_origins"`
}

type Radar struct {
	Llm         *LLM         `json:"llm"`
	Search      *Search      `json:"search"`
	Generation  *Generation  `json:"generation"`
	Session     *Session     `json:"session"`
	Log         *Log         `json:"log"`
	Concurrency *Concurrency `json:"concurrency"`
}

type LLM struct {
	Provider       string `json:"provider"`
	BaseUrl        string `json:"base_url"`
	ApiKey         string `json:"api_key"`
	Model          string `json:"model"`
	ReasoningModel string `json:"reasoning_model"`
	ImageModel     string `json:"image_model"`
}

type Search struct {
	Provider string   `json:"provider"`
	Tavily   *Tavily  `json:"tavily"`
	Searxng  *SearXNG `json:"searxng"`
}

type Tavily struct {
	ApiKey   string `json:"api_key"`
	Endpoint string `json:"endpoint"`
}

type SearXNG struct {
	BaseUrl string `json:"base_url"`
	Timeout int32  `json:"timeout"`
}

type Generation struct {
	Timeout     string `json:"timeout"`
	DomainCount int32  `json:"domain_count"`
}

type Session struct {
	// Ttl 会话空闲多久后被回收
	Ttl string `json:"ttl"`
}

type Log struct {
	Level string `json:"level"`
	File  string `json:"file"`
}

type Concurrency struct {
	Qps int32 `json:"qps"`
	Rpm int32 `json:"rpm"`
}
