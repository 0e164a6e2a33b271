// Package fixture 提供静态趋势样本和数据源信誉表，进程启动时构造一次，之后只读。
package fixture

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/estimator"
	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/model"
)

//go:embed data/trends.yaml
var rawFixtures []byte

// sparklineSeed 固定种子，保证同一份样本的走势图稳定
const sparklineSeed = 20240501

type document struct {
	Trends  []trendFixture `yaml:"trends"`
	Sources []model.Source `yaml:"sources"`
}

type trendFixture struct {
	ID          string             `yaml:"id"`
	Title       string             `yaml:"title"`
	Description string             `yaml:"description"`
	Category    model.Category     `yaml:"category"`
	Velocity    int                `yaml:"velocity"`
	Volume      string             `yaml:"volume"`
	Source      string             `yaml:"source"`
	Change      int                `yaml:"change"`
	Tags        []string           `yaml:"tags"`
	Novelty     int                `yaml:"novelty"`
	SignalCount int                `yaml:"signalCount"`
	Age         time.Duration      `yaml:"age"`
	Cluster     string             `yaml:"cluster"`
	IsAnomaly   bool               `yaml:"isAnomaly"`
	Metrics     model.TrendMetrics `yaml:"metrics"`
	Crypto      *cryptoFixture     `yaml:"crypto"`
}

type cryptoFixture struct {
	MarketCap      string  `yaml:"marketCap"`
	MarketCapValue float64 `yaml:"marketCapValue"`
	Liquidity      string  `yaml:"liquidity"`
	Volume24h      string  `yaml:"volume24h"`
	ContractAge    string  `yaml:"contractAge"`
	SmartMoney     *struct {
		Inflow     string                 `yaml:"inflow"`
		WhaleCount int                    `yaml:"whaleCount"`
		Signal     model.SmartMoneySignal `yaml:"signal"`
	} `yaml:"smartMoney"`
}

// Store 静态样本仓库
type Store struct {
	trends  []model.TrendRecord
	sources []model.Source
}

// NewStore 解析内置样本，时间戳相对 now 计算
func NewStore(now time.Time) (*Store, error) {
	return parse(rawFixtures, now)
}

func parse(data []byte, now time.Time) (*Store, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}

	est := estimator.NewRandom(sparklineSeed)
	seen := make(map[string]struct{}, len(doc.Trends))
	trends := make([]model.TrendRecord, 0, len(doc.Trends))
	for _, f := range doc.Trends {
		if _, dup := seen[f.ID]; dup {
			return nil, fmt.Errorf("duplicate fixture id %q", f.ID)
		}
		seen[f.ID] = struct{}{}
		if !f.Category.Valid() {
			return nil, fmt.Errorf("fixture %q: unknown category %q", f.ID, f.Category)
		}

		t := model.TrendRecord{
			ID:             f.ID,
			Title:          f.Title,
			Description:    f.Description,
			Category:       f.Category,
			Velocity:       f.Velocity,
			Volume:         f.Volume,
			Source:         f.Source,
			Change:         f.Change,
			Tags:           f.Tags,
			Novelty:        f.Novelty,
			SignalCount:    f.SignalCount,
			Timestamp:      FormatAge(f.Age),
			TimestampValue: now.Add(-f.Age).UnixMilli(),
			Sparkline:      est.Sparkline(),
			Cluster:        f.Cluster,
			IsAnomaly:      f.IsAnomaly,
			Metrics:        f.Metrics,
		}
		if c := f.Crypto; c != nil {
			t.CryptoMetrics = model.NewCryptoMetrics(c.MarketCap, decimal.NewFromFloat(c.MarketCapValue), c.Liquidity, c.Volume24h)
			t.CryptoMetrics.ContractAge = c.ContractAge
			if sm := c.SmartMoney; sm != nil {
				t.CryptoMetrics.SmartMoney = &model.SmartMoney{Inflow: sm.Inflow, WhaleCount: sm.WhaleCount, Signal: sm.Signal}
			}
		}
		trends = append(trends, t)
	}

	return &Store{trends: trends, sources: doc.Sources}, nil
}

// Trends 返回样本副本，调用方修改不会影响仓库
func (s *Store) Trends() []model.TrendRecord {
	out := make([]model.TrendRecord, len(s.trends))
	for i, t := range s.trends {
		out[i] = cloneTrend(t)
	}
	return out
}

// Sources 返回数据源副本
func (s *Store) Sources() []model.Source {
	out := make([]model.Source, len(s.sources))
	copy(out, s.sources)
	return out
}

// Find 按 id 查找样本
func (s *Store) Find(id string) (model.TrendRecord, bool) {
	for _, t := range s.trends {
		if t.ID == id {
			return cloneTrend(t), true
		}
	}
	return model.TrendRecord{}, false
}

func cloneTrend(t model.TrendRecord) model.TrendRecord {
	t.Tags = append([]string(nil), t.Tags...)
	spark := make(map[model.TimeFrame][]model.Point, len(t.Sparkline))
	for k, v := range t.Sparkline {
		spark[k] = append([]model.Point(nil), v...)
	}
	t.Sparkline = spark
	if t.CryptoMetrics != nil {
		cm := *t.CryptoMetrics
		if cm.SmartMoney != nil {
			sm := *cm.SmartMoney
			cm.SmartMoney = &sm
		}
		t.CryptoMetrics = &cm
	}
	return t
}

// FormatAge 将时间偏移格式化为展示用字符串
func FormatAge(age time.Duration) string {
	switch {
	case age < time.Minute:
		return "Live"
	case age < time.Hour:
		return fmt.Sprintf("%dm ago", int(age.Minutes()))
	case age < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(age.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(age.Hours()/24))
	}
}
