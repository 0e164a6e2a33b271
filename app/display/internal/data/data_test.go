package data

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iWorld-y/trend_radar/app/display/internal/conf"
	"github.com/iWorld-y/trend_radar/app/display/internal/domain"
)

func TestNewDataSessionTTL(t *testing.T) {
	d, cleanup, err := NewData(&conf.Radar{Session: &conf.Session{Ttl: "5m"}}, log.DefaultLogger)
	require.NoError(t, err)
	defer cleanup()
	assert.Equal(t, 5*time.Minute, d.sessionTTL)

	d2, cleanup2, err := NewData(nil, log.DefaultLogger)
	require.NoError(t, err)
	defer cleanup2()
	assert.Equal(t, DefaultSessionTTL, d2.sessionTTL)
}

func TestSessionRepoExpiresIdleSessions(t *testing.T) {
	d, cleanup, err := NewData(&conf.Radar{Session: &conf.Session{Ttl: "1h"}}, log.DefaultLogger)
	require.NoError(t, err)
	defer cleanup()

	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	d.now = func() time.Time { return now }

	r := NewSessionRepo(d, log.DefaultLogger)
	ctx := context.Background()
	r.Save(ctx, domain.NewSession("s1", nil, now))

	_, ok := r.Get(ctx, "s1")
	assert.True(t, ok)

	now = now.Add(59 * time.Minute)
	_, ok = r.Get(ctx, "s1")
	assert.True(t, ok, "access refreshes idle time")

	now = now.Add(61 * time.Minute)
	_, ok = r.Get(ctx, "s1")
	assert.False(t, ok)
}

func TestNewDataInvalidSessionTTL(t *testing.T) {
	for _, ttl := range []string{"two hours", "-5m", "0s"} {
		var buf bytes.Buffer
		d, cleanup, err := NewData(&conf.Radar{Session: &conf.Session{Ttl: ttl}}, log.NewStdLogger(&buf))
		require.NoError(t, err)
		assert.Equal(t, DefaultSessionTTL, d.sessionTTL, ttl)
		assert.Contains(t, buf.String(), "session.ttl", ttl)
		cleanup()
	}
}

func TestSessionRepoSaveEvictsIdleSessions(t *testing.T) {
	d, cleanup, err := NewData(&conf.Radar{Session: &conf.Session{Ttl: "1m"}}, log.DefaultLogger)
	require.NoError(t, err)
	defer cleanup()

	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	d.now = func() time.Time { return now }

	// 不带会话头的客户端只会触发 Save
	r := NewSessionRepo(d, log.DefaultLogger)
	ctx := context.Background()
	for i := 0; i < 1000; i++ {
		r.Save(ctx, domain.NewSession(fmt.Sprintf("s%d", i), nil, now))
		now = now.Add(time.Hour)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	assert.Len(t, d.sessions, 1)
	assert.Contains(t, d.sessions, "s999")
}

func TestTrendRepo(t *testing.T) {
	d, cleanup, err := NewData(nil, log.DefaultLogger)
	require.NoError(t, err)
	defer cleanup()

	r := NewTrendRepo(d, log.DefaultLogger)
	ctx := context.Background()
	assert.NotEmpty(t, r.ListTrends(ctx))
	assert.NotEmpty(t, r.ListSources(ctx))

	tr, ok := r.GetTrend(ctx, "crypto-001")
	require.True(t, ok)
	assert.Equal(t, "crypto-001", tr.ID)
	_, ok = r.GetTrend(ctx, "missing")
	assert.False(t, ok)
}
