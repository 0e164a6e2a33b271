// Package search 为实时发现提供联网检索上下文。
package search

import "context"

// Searcher 检索服务，实现方只需要返回标题、链接和摘要
type Searcher interface {
	Search(ctx context.Context, req *Request) (*Response, error)
}

// 两个服务商共用的时间窗口取值
const (
	TimeRangeDay   = "day"
	TimeRangeWeek  = "week"
	TimeRangeMonth = "month"
)

// DefaultMaxResults MaxResults 未设置时的条数
const DefaultMaxResults = 5

// Request 检索请求
type Request struct {
	Query string
	// Topic "news" 或 "general"，其余取值按 general 处理
	Topic      string
	MaxResults int
	// TimeRange 只返回该窗口内发布的结果，为空表示不限
	TimeRange string
}

// Limit 返回有效的结果条数上限
func (r *Request) Limit() int {
	if r.MaxResults > 0 {
		return r.MaxResults
	}
	return DefaultMaxResults
}

// IsNews 是否按新闻检索
func (r *Request) IsNews() bool {
	return r.Topic == "news"
}

type Response struct {
	Results []Result
}

// Result 单条结果，Content 为服务商给出的摘要，可能很短
type Result struct {
	Title   string
	URL     string
	Content string
	Score   float64
}
