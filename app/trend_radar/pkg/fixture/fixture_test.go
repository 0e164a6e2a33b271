package fixture

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/model"
)

func TestNewStore(t *testing.T) {
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	s, err := NewStore(now)
	require.NoError(t, err)

	trends := s.Trends()
	require.NotEmpty(t, trends)

	ids := map[string]bool{}
	perCategory := map[model.Category]int{}
	for _, tr := range trends {
		assert.False(t, ids[tr.ID], "duplicate id %s", tr.ID)
		ids[tr.ID] = true
		perCategory[tr.Category]++

		assert.LessOrEqual(t, tr.TimestampValue, now.UnixMilli())
		assert.Len(t, tr.Series(model.TimeFrame24H), 24)
		if tr.Category == model.CategoryCrypto {
			assert.NotNil(t, tr.CryptoMetrics, "crypto fixture %s lacks metrics", tr.ID)
		} else {
			assert.Nil(t, tr.CryptoMetrics)
		}
	}
	for _, c := range model.Categories {
		assert.Positive(t, perCategory[c], "no fixtures for %s", c)
	}
}

func TestCryptoFixturesCapTier(t *testing.T) {
	s, err := NewStore(time.Now())
	require.NoError(t, err)

	pepe, ok := s.Find("crypto-001")
	require.True(t, ok)
	assert.True(t, pepe.CryptoMetrics.IsHighCap)
	require.NotNil(t, pepe.CryptoMetrics.SmartMoney)
	assert.Equal(t, model.SignalAccumulation, pepe.CryptoMetrics.SmartMoney.Signal)

	giga, ok := s.Find("crypto-002")
	require.True(t, ok)
	assert.False(t, giga.CryptoMetrics.IsHighCap)
}

func TestTrendsReturnsCopies(t *testing.T) {
	s, err := NewStore(time.Now())
	require.NoError(t, err)

	first := s.Trends()
	first[0].Title = "mutated"
	first[0].Tags[0] = "mutated"
	first[0].Sparkline[model.TimeFrame1H][0].Value = -1

	again := s.Trends()
	assert.NotEqual(t, "mutated", again[0].Title)
	assert.NotEqual(t, "mutated", again[0].Tags[0])
	assert.NotEqual(t, -1.0, again[0].Sparkline[model.TimeFrame1H][0].Value)
}

func TestTimestampsRelativeToNow(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s, err := NewStore(now)
	require.NoError(t, err)

	tr, ok := s.Find("code-001") // age: 2h
	require.True(t, ok)
	assert.Equal(t, now.Add(-2*time.Hour).UnixMilli(), tr.TimestampValue)
	assert.Equal(t, "2h ago", tr.Timestamp)
}

func TestParseRejectsDuplicates(t *testing.T) {
	_, err := parse([]byte(`
trends:
  - {id: a, category: CODE}
  - {id: a, category: CODE}
`), time.Now())
	require.Error(t, err)
}

func TestParseRejectsUnknownCategory(t *testing.T) {
	_, err := parse([]byte("trends:\n  - {id: a, category: SPORTS}\n"), time.Now())
	require.Error(t, err)
}

func TestFormatAge(t *testing.T) {
	assert.Equal(t, "Live", FormatAge(10*time.Second))
	assert.Equal(t, "30m ago", FormatAge(30*time.Minute))
	assert.Equal(t, "5h ago", FormatAge(5*time.Hour))
	assert.Equal(t, "3d ago", FormatAge(72*time.Hour))
}

func TestSourcesHaveReputation(t *testing.T) {
	s, err := NewStore(time.Now())
	require.NoError(t, err)
	for _, src := range s.Sources() {
		assert.Greater(t, src.Reputation, 0.0, src.Name)
		assert.LessOrEqual(t, src.Reputation, 1.0, src.Name)
	}
}
