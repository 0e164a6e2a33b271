package model

// DomainStatus 域名状态
type DomainStatus string

const (
	DomainAvailable DomainStatus = "AVAILABLE"
	DomainAuction   DomainStatus = "AUCTION"
	DomainExpired   DomainStatus = "EXPIRED"
	DomainPremium   DomainStatus = "PREMIUM"
)

// RiskLevel 法律风险等级
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// SocialHandles 各平台同名账号是否可注册
type SocialHandles struct {
	Twitter   bool `json:"twitter"`
	Instagram bool `json:"instagram"`
	TikTok    bool `json:"tiktok"`
}

// Whois 注册信息
type Whois struct {
	Registrar string `json:"registrar"`
	Created   string `json:"created"`
	Expiry    string `json:"expiry"`
}

// PricePoint 价格历史点
type PricePoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// DomainAsset 候选域名及估值信息
type DomainAsset struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	TLD           string        `json:"tld"`
	Status        DomainStatus  `json:"status"`
	Price         string        `json:"price"`
	EstValue      string        `json:"estValue"`
	Brandability  float64       `json:"brandability"`
	SEOValue      float64       `json:"seoValue"`
	Backlinks     int           `json:"backlinks"`
	Age           string        `json:"age"`
	SocialHandles SocialHandles `json:"socialHandles"`
	RelatedTrend  string        `json:"relatedTrend,omitempty"`
	AIConfidence  int           `json:"aiConfidence"`
	LegalRisk     RiskLevel     `json:"legalRisk"`
	PriceHistory  []PricePoint  `json:"priceHistory,omitempty"`
	Whois         *Whois        `json:"whois,omitempty"`
}

// Complexity SaaS 构建复杂度
type Complexity string

const (
	ComplexityNoCode   Complexity = "NO_CODE"
	ComplexityLowCode  Complexity = "LOW_CODE"
	ComplexityFullCode Complexity = "FULL_CODE"
)

// SaaSConceptRequest SaaS 蓝图生成请求
type SaaSConceptRequest struct {
	Niche        string     `json:"niche"`
	TrendContext string     `json:"trendContext"`
	Audience     string     `json:"audience"`
	Complexity   Complexity `json:"complexity"`
}

// TechStack 技术栈
type TechStack struct {
	Frontend string `json:"frontend"`
	Backend  string `json:"backend"`
	DB       string `json:"db"`
	AI       string `json:"ai,omitempty"`
}

// SaaSPersona 用户画像
type SaaSPersona struct {
	Role      string `json:"role"`
	PainPoint string `json:"painPoint"`
	Goal      string `json:"goal"`
}

// SaaSBlueprint 生成的产品蓝图
type SaaSBlueprint struct {
	Title          string        `json:"title"`
	OneLiner       string        `json:"oneLiner"`
	Problem        string        `json:"problem"`
	Solution       string        `json:"solution"`
	TargetAudience string        `json:"targetAudience"`
	Monetization   []string      `json:"monetization"`
	TechStack      TechStack     `json:"techStack"`
	CoreFeatures   []string      `json:"coreFeatures"`
	Wireframe      string        `json:"wireframe"`
	MarketingPlan  []string      `json:"marketingPlan"`
	TimeToMarket   string        `json:"timeToMarket"`
	RiskAnalysis   string        `json:"riskAnalysis"`
	DataModel      []string      `json:"dataModel"`
	SEOStrategy    []string      `json:"seoStrategy"`
	EmailSequence  []string      `json:"emailSequence"`
	SocialContent  []string      `json:"socialContent"`
	Personas       []SaaSPersona `json:"personas"`
}

// AffiliateStrategy 联盟营销角度
type AffiliateStrategy struct {
	Angle           string   `json:"angle"`
	Headline        string   `json:"headline"`
	Subheadline     string   `json:"subheadline"`
	CTA             string   `json:"cta"`
	EmailSubject    string   `json:"emailSubject"`
	ImagePrompts    []string `json:"imagePrompts"`
	AdCopy          string   `json:"adCopy"`
	TargetAudience  string   `json:"targetAudience"`
	LandingPageCopy string   `json:"landingPageCopy"`
}

// Creative 由图片提示词生成的广告素材
type Creative struct {
	Prompt   string `json:"prompt"`
	MIMEType string `json:"mimeType"`
	Data     []byte `json:"data"`
}

// Sustainability 趋势持续性
type Sustainability string

const (
	SustainFlash  Sustainability = "FLASH"
	SustainShort  Sustainability = "SHORT"
	SustainMedium Sustainability = "MEDIUM"
	SustainLong   Sustainability = "LONG"
)

// Surveillance 取证式分析的结构化部分
type Surveillance struct {
	Trigger         string         `json:"trigger"`
	Drivers         string         `json:"drivers"`
	PlatformVector  string         `json:"platformVector"`
	Audience        string         `json:"audience"`
	Sustainability  Sustainability `json:"sustainability"`
	Forecast        string         `json:"forecast"`
	Risks           []string       `json:"risks"`
	ClusterAnalysis string         `json:"clusterAnalysis"`
}

// DeepAnalysisResult 单条趋势的深度解读
type DeepAnalysisResult struct {
	Summary              string       `json:"summary"`
	Surveillance         Surveillance `json:"surveillance"`
	MarketUses           []string     `json:"marketUses"`
	BusinessModels       []string     `json:"businessModels"`
	CompetitiveLandscape string       `json:"competitiveLandscape"`
}

// AssetType 构建器产物类型
type AssetType string

const (
	AssetDomains     AssetType = "DOMAINS"
	AssetSaaS        AssetType = "SAAS"
	AssetCourse      AssetType = "COURSE"
	AssetLandingPage AssetType = "LANDING_PAGE"
)

// Valid 判断产物类型是否合法
func (a AssetType) Valid() bool {
	switch a {
	case AssetDomains, AssetSaaS, AssetCourse, AssetLandingPage:
		return true
	}
	return false
}

// DomainIdea 构建器生成的简要域名
type DomainIdea struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Value  string `json:"value"`
}

// SaaSConcept 构建器生成的简要 SaaS 概念
type SaaSConcept struct {
	Name  string `json:"name"`
	Pitch string `json:"pitch"`
	Stack string `json:"stack"`
}

// CourseOutline 课程大纲
type CourseOutline struct {
	Title    string   `json:"title"`
	Audience string   `json:"audience"`
	Modules  []string `json:"modules"`
}

// LandingPageCopy 落地页文案
type LandingPageCopy struct {
	Headline    string   `json:"headline"`
	Subheadline string   `json:"subheadline"`
	Benefits    []string `json:"benefits"`
	CTA         string   `json:"cta"`
}

// BuilderOutput 构建器产物，只有与 Type 对应的字段有值
type BuilderOutput struct {
	Type        AssetType        `json:"type"`
	Domains     []DomainIdea     `json:"domains,omitempty"`
	Concepts    []SaaSConcept    `json:"concepts,omitempty"`
	Course      *CourseOutline   `json:"course,omitempty"`
	LandingPage *LandingPageCopy `json:"landingPage,omitempty"`
}

// Empty 与 Type 对应的内容是否为空
func (b *BuilderOutput) Empty() bool {
	switch b.Type {
	case AssetDomains:
		return len(b.Domains) == 0
	case AssetSaaS:
		return len(b.Concepts) == 0
	case AssetCourse:
		return b.Course == nil
	case AssetLandingPage:
		return b.LandingPage == nil
	}
	return true
}
