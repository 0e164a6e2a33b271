package model

import (
	"github.com/shopspring/decimal"
)

// Category 趋势分类（封闭集合）
type Category string

const (
	CategoryCode     Category = "CODE"
	CategorySocial   Category = "SOCIAL"
	CategoryMarket   Category = "MARKET"
	CategoryBusiness Category = "BUSINESS"
	CategoryCrypto   Category = "CRYPTO"
)

// Categories 全部分类，顺序固定
var Categories = []Category{CategoryCode, CategorySocial, CategoryMarket, CategoryBusiness, CategoryCrypto}

// Valid 判断分类是否属于封闭集合
func (c Category) Valid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

// TimeFrame 图表/过滤使用的时间窗口
type TimeFrame string

const (
	TimeFrame1H  TimeFrame = "1H"
	TimeFrame6H  TimeFrame = "6H"
	TimeFrame24H TimeFrame = "24H"
	TimeFrame7D  TimeFrame = "7D"
	TimeFrame1M  TimeFrame = "1M"
)

// TimeFrames 五个固定窗口
var TimeFrames = []TimeFrame{TimeFrame1H, TimeFrame6H, TimeFrame24H, TimeFrame7D, TimeFrame1M}

// Valid 判断窗口是否合法
func (tf TimeFrame) Valid() bool {
	for _, v := range TimeFrames {
		if tf == v {
			return true
		}
	}
	return false
}

// Point 图表数据点
type Point struct {
	Value float64 `json:"value"`
}

// TrendMetrics 趋势的子指标，仅用于展示
type TrendMetrics struct {
	AnomalyConfidence float64 `json:"anomalyConfidence" yaml:"anomalyConfidence"`
	ClusterCentrality float64 `json:"clusterCentrality" yaml:"clusterCentrality"`
	ContextVelocity   float64 `json:"contextVelocity" yaml:"contextVelocity"`
	Volatility        float64 `json:"volatility" yaml:"volatility"`
}

// SmartMoneySignal 聪明钱信号
type SmartMoneySignal string

const (
	SignalAccumulation SmartMoneySignal = "ACCUMULATION"
	SignalDumping      SmartMoneySignal = "DUMPING"
	SignalNeutral      SmartMoneySignal = "NEUTRAL"
)

// SmartMoney 聪明钱数据块
type SmartMoney struct {
	Inflow     string           `json:"inflow"`
	WhaleCount int              `json:"whaleCount"`
	Signal     SmartMoneySignal `json:"signal"`
}

// HighCapThreshold 高市值分界线（含），单位美元
var HighCapThreshold = decimal.NewFromInt(100_000_000)

// CryptoMetrics 加密货币专属指标，仅 CRYPTO 分类存在
type CryptoMetrics struct {
	MarketCap   string      `json:"marketCap"`
	IsHighCap   bool        `json:"isHighCap"`
	Liquidity   string      `json:"liquidity"`
	Volume24h   string      `json:"volume24h"`
	SmartMoney  *SmartMoney `json:"smartMoney,omitempty"`
	ContractAge string      `json:"contractAge,omitempty"`
}

// NewCryptoMetrics 根据原始市值数值构造指标，IsHighCap 只在此处计算
func NewCryptoMetrics(marketCap string, marketCapValue decimal.Decimal, liquidity, volume24h string) *CryptoMetrics {
	return &CryptoMetrics{
		MarketCap: marketCap,
		IsHighCap: IsHighCap(marketCapValue),
		Liquidity: liquidity,
		Volume24h: volume24h,
	}
}

// IsHighCap 市值 >= 1 亿美元即为高市值
func IsHighCap(marketCapValue decimal.Decimal) bool {
	return marketCapValue.GreaterThanOrEqual(HighCapThreshold)
}

// TrendRecord 一条被观测的趋势信号
type TrendRecord struct {
	ID             string                `json:"id"`
	Title          string                `json:"title"`
	Description    string                `json:"description"`
	Category       Category              `json:"category"`
	Velocity       int                   `json:"velocity"`
	Volume         string                `json:"volume"`
	Source         string                `json:"source"`
	Change         int                   `json:"change"`
	Tags           []string              `json:"tags"`
	Novelty        int                   `json:"novelty"`
	SignalCount    int                   `json:"signalCount"`
	Timestamp      string                `json:"timestamp"`
	TimestampValue int64                 `json:"timestampValue"` // epoch 毫秒，过滤以此为准
	Sparkline      map[TimeFrame][]Point `json:"sparklineData"`
	Cluster        string                `json:"cluster"`
	IsAnomaly      bool                  `json:"isAnomaly"`
	Metrics        TrendMetrics          `json:"metrics"`
	CryptoMetrics  *CryptoMetrics        `json:"cryptoMetrics,omitempty"`
}

// Series 返回指定窗口的图表数据，缺失时回退到 24H
func (t *TrendRecord) Series(tf TimeFrame) []Point {
	if pts, ok := t.Sparkline[tf]; ok && len(pts) > 0 {
		return pts
	}
	return t.Sparkline[TimeFrame24H]
}

// SourceStatus 数据源状态
type SourceStatus string

const (
	SourceOnline  SourceStatus = "online"
	SourceDelay   SourceStatus = "delay"
	SourceOffline SourceStatus = "offline"
)

// Source 数据源及其信誉
type Source struct {
	ID           string       `json:"id" yaml:"id"`
	Name         string       `json:"name" yaml:"name"`
	Category     string       `json:"category" yaml:"category"`
	Status       SourceStatus `json:"status" yaml:"status"`
	SignalsToday int          `json:"signalsToday" yaml:"signalsToday"`
	Intensity    int          `json:"intensity" yaml:"intensity"`
	Reputation   float64      `json:"reputation" yaml:"reputation"`
}
