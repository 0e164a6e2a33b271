package engine

import (
	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/llm"
	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/model"
)

const domainPrompt = `Act as a High-Frequency Domain Sniper.
Target Niche: %s
Category: %s

Generate %d high-value, available (or expired/auction) domain names relevant to this niche.
Prioritize short, brandable, or keyword-rich .com, .io, .ai, .app domains.

For each domain estimate:
- Status (AVAILABLE, AUCTION, EXPIRED)
- Market Value (Est. Resale Price)
- Registration Cost
- SEO Value (Search Volume + Keyword Difficulty proxy)
- Brandability Score (Memorability, Phonetics)
- Legal Risk (Trademark collision probability)
- Whois details (mock registrar)`

const saasPrompt = `Act as a Product Architect & Venture Builder.
Create 3 distinct Micro-SaaS Blueprints based on:
- Niche: %s (%s)
- Audience: %s
- Complexity: %s

For each concept, provide a DEEP tactical plan:
1. Pitch & Problem/Solution
2. Monetization & Tech Stack
3. Wireframe Description
4. Go-To-Market Plan
5. Data Model (Key tables/schemas)
6. SEO Strategy (3-5 key terms/topics)
7. Email Sequence (3 subject lines for onboarding)
8. User Personas (2-3 key profiles)`

const affiliatePrompt = `Act as a world-class Direct Response Copywriter and Affiliate Marketer.

Context: The user wants to promote an affiliate offer or create a landing page for the following trend/niche.
Niche/Trend: %s
Product Type: %s (e.g. Course, Software, Physical Product, Service)

Generate exactly 3 distinct marketing angles (e.g. Fear of Missing Out, Gain/Greed, Curiosity/Novelty).

For EACH angle, provide:
1. A high-converting Headline & Subheadline.
2. A Call to Action (CTA).
3. An Email Subject Line for cold outreach.
4. 3 Detailed AI Image Prompts to create ad creatives.
5. Short Ad Copy (Facebook/TikTok style).
6. Complete Landing Page Copy (Hero, Benefits, Social Proof placeholder, Closing). Markdown is allowed.`

const cryptoPrompt = `Use web search to find the current top trending meme coins and crypto tokens on DexScreener, CoinGecko, and GeckoTerminal RIGHT NOW.

Strictly identify two groups:
1. High Cap Memes (Market Cap >= $100 Million)
2. Low Cap Memes (Market Cap $200k - $100 Million)

For each coin, extract or estimate:
- Market Cap (approximate)
- 24h Volume
- Liquidity
- A brief reason why it is trending
- "Smart Money" sentiment (Accumulation vs Dumping)

RETURN ONLY A RAW JSON OBJECT. Do not use markdown formatting.
Structure:
{
  "tokens": [
    {
      "name": "string",
      "symbol": "string",
      "marketCap": "string (e.g. $150M)",
      "marketCapValue": number (raw USD value),
      "volume24h": "string",
      "liquidity": "string",
      "trendingReason": "string",
      "smartMoneySignal": "ACCUMULATION" | "DUMPING" | "NEUTRAL",
      "smartMoneyInflow": "string",
      "contractAge": "string",
      "platform": "string"
    }
  ]
}`

const analysisPrompt = `Act as a Senior Forensic Trend Analyst.
Analyze: "%s".
Context: %s
Source: %s

Generate a structured Surveillance Grid response.`

var builderPrompts = map[model.AssetType]string{
	model.AssetDomains:     `Generate 5 available domains for "%s".`,
	model.AssetSaaS:        `Create 3 Micro-SaaS concepts for "%s".`,
	model.AssetCourse:      `Outline an AI Course for "%s".`,
	model.AssetLandingPage: `Write landing page copy for "%s".`,
}

var domainSchema = llm.Object(map[string]*llm.Schema{
	"domains": llm.Array(llm.Object(map[string]*llm.Schema{
		"name":         llm.String(),
		"tld":          llm.String(),
		"status":       llm.Enum(string(model.DomainAvailable), string(model.DomainAuction), string(model.DomainExpired)),
		"price":        llm.String(),
		"estValue":     llm.String(),
		"brandability": llm.Number(),
		"seoValue":     llm.Number(),
		"backlinks":    llm.Integer(),
		"age":          llm.String(),
		"legalRisk":    llm.Enum(string(model.RiskLow), string(model.RiskMedium), string(model.RiskHigh)),
		"socialHandles": llm.Object(map[string]*llm.Schema{
			"twitter":   llm.Boolean(),
			"instagram": llm.Boolean(),
			"tiktok":    llm.Boolean(),
		}),
		"whois": llm.Object(map[string]*llm.Schema{
			"registrar": llm.String(),
			"created":   llm.String(),
			"expiry":    llm.String(),
		}),
	})),
})

var saasSchema = llm.Object(map[string]*llm.Schema{
	"blueprints": llm.Array(llm.Object(map[string]*llm.Schema{
		"title":          llm.String(),
		"oneLiner":       llm.String(),
		"problem":        llm.String(),
		"solution":       llm.String(),
		"targetAudience": llm.String(),
		"monetization":   llm.Strings(),
		"techStack": llm.Object(map[string]*llm.Schema{
			"frontend": llm.String(),
			"backend":  llm.String(),
			"db":       llm.String(),
			"ai":       llm.String(),
		}),
		"coreFeatures":  llm.Strings(),
		"wireframe":     llm.String(),
		"marketingPlan": llm.Strings(),
		"timeToMarket":  llm.String(),
		"riskAnalysis":  llm.String(),
		"dataModel":     llm.Strings(),
		"seoStrategy":   llm.Strings(),
		"emailSequence": llm.Strings(),
		"socialContent": llm.Strings(),
		"personas": llm.Array(llm.Object(map[string]*llm.Schema{
			"role":      llm.String(),
			"painPoint": llm.String(),
			"goal":      llm.String(),
		})),
	})),
})

var affiliateSchema = llm.Object(map[string]*llm.Schema{
	"strategies": llm.Array(llm.Object(map[string]*llm.Schema{
		"angle":           llm.String(),
		"headline":        llm.String(),
		"subheadline":     llm.String(),
		"cta":             llm.String(),
		"emailSubject":    llm.String(),
		"imagePrompts":    llm.Strings(),
		"adCopy":          llm.String(),
		"targetAudience":  llm.String(),
		"landingPageCopy": llm.String(),
	})),
})

var analysisSchema = llm.Object(map[string]*llm.Schema{
	"summary": llm.String(),
	"surveillance": llm.Object(map[string]*llm.Schema{
		"trigger":        llm.String(),
		"drivers":        llm.String(),
		"platformVector": llm.String(),
		"audience":       llm.String(),
		"sustainability": llm.Enum(
			string(model.SustainFlash), string(model.SustainShort),
			string(model.SustainMedium), string(model.SustainLong),
		),
		"forecast":        llm.String(),
		"risks":           llm.Strings(),
		"clusterAnalysis": llm.String(),
	}),
	"marketUses":           llm.Strings(),
	"businessModels":       llm.Strings(),
	"competitiveLandscape": llm.String(),
})

var builderSchemas = map[model.AssetType]*llm.Schema{
	model.AssetDomains: llm.Object(map[string]*llm.Schema{
		"domains": llm.Array(llm.Object(map[string]*llm.Schema{
			"name":   llm.String(),
			"status": llm.String(),
			"value":  llm.String(),
		})),
	}),
	model.AssetSaaS: llm.Object(map[string]*llm.Schema{
		"concepts": llm.Array(llm.Object(map[string]*llm.Schema{
			"name":  llm.String(),
			"pitch": llm.String(),
			"stack": llm.String(),
		})),
	}),
	model.AssetCourse: llm.Object(map[string]*llm.Schema{
		"title":    llm.String(),
		"audience": llm.String(),
		"modules":  llm.Strings(),
	}),
	model.AssetLandingPage: llm.Object(map[string]*llm.Schema{
		"headline":    llm.String(),
		"subheadline": llm.String(),
		"benefits":    llm.Strings(),
		"cta":         llm.String(),
	}),
}
