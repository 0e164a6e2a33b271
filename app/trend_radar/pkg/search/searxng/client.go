package searxng

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/search"
)

// 部分公开实例会拦截默认的 Go User-Agent
const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Client 自建 SearXNG 实例的客户端
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient timeout 单位为秒，0 表示 30 秒
func NewClient(baseURL string, timeout int) *Client {
	t := time.Duration(timeout) * time.Second
	if t == 0 {
		t = 30 * time.Second
	}
	return &Client{baseURL: baseURL, client: &http.Client{Timeout: t}}
}

var _ search.Searcher = (*Client)(nil)

type SearchResponse struct {
	Query   string         `json:"query"`
	Results []SearchResult `json:"results"`
}

type SearchResult struct {
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}

// searchURL 构造 /search 的 JSON 查询地址
func (c *Client) searchURL(req *search.Request) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("searxng: invalid base url: %w", err)
	}
	u.Path = "/search"

	category := "general"
	if req.IsNews() {
		category = "news"
	}
	q := url.Values{}
	q.Set("q", req.Query)
	q.Set("format", "json")
	q.Set("categories", category)
	if req.TimeRange != "" {
		q.Set("time_range", req.TimeRange)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Search SearXNG 不支持条数参数，结果在本地截断到 Limit
func (c *Client) Search(ctx context.Context, req *search.Request) (*search.Response, error) {
	target, err := c.searchURL(req)
	if err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("searxng: create request: %w", err)
	}
	httpReq.Header.Set("User-Agent", userAgent)

	res, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("searxng: request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("searxng api error (status %d): %s", res.StatusCode, body)
	}

	var out SearchResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("searxng: decode response: %w", err)
	}

	limit := req.Limit()
	results := make([]search.Result, 0, min(limit, len(out.Results)))
	for _, r := range out.Results {
		if len(results) == limit {
			break
		}
		results = append(results, search.Result{Title: r.Title, URL: r.URL, Content: r.Content, Score: r.Score})
	}
	return &search.Response{Results: results}, nil
}
