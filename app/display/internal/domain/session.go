package domain

import (
	"sync"
	"time"

	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/detail"
	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/model"
)

// Session 一个浏览会话的内存状态，重启后全部丢失
type Session struct {
	ID        string
	CreatedAt time.Time
	Detail    *detail.Flow

	mu         sync.Mutex
	loadMu     sync.Mutex
	lastSeen   time.Time
	liveCrypto []model.TrendRecord
	liveLoaded bool
}

// NewSession 创建会话
func NewSession(id string, flow *detail.Flow, now time.Time) *Session {
	return &Session{ID: id, CreatedAt: now, Detail: flow, lastSeen: now}
}

// Touch 记录最近访问时间
func (s *Session) Touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

// IdleSince 返回最近访问时间
func (s *Session) IdleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// LiveCrypto 返回本会话拉取过的实时代币，以及是否已经拉取过
func (s *Session) LiveCrypto() ([]model.TrendRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.TrendRecord(nil), s.liveCrypto...), s.liveLoaded
}

// ReplaceLiveCrypto 用新一次拉取的结果整体替换，不做去重合并
func (s *Session) ReplaceLiveCrypto(records []model.TrendRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.liveCrypto = append([]model.TrendRecord(nil), records...)
	s.liveLoaded = true
}

// EnsureLiveCrypto 尚未拉取过时执行 fetch 并保存结果，并发调用时只有一个会真正拉取，
// 其余等待并复用其结果。fetched 表示本次调用是否执行了 fetch。
func (s *Session) EnsureLiveCrypto(fetch func() []model.TrendRecord) (records []model.TrendRecord, fetched bool) {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()
	if live, ok := s.LiveCrypto(); ok {
		return live, false
	}
	live := fetch()
	s.ReplaceLiveCrypto(live)
	return live, true
}
