package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/detail"
	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/feed"
	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/fixture"
	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/logger"
	"github.com/iWorld-y/trend_radar/app/trend_radar/pkg/model"
)

// cli 一次命令执行的上下文
type cli struct {
	configPath string
	logLevel   string

	radar radar
	store *fixture.Store
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:   "trendctl",
		Short: "Trend radar command line",
		Long: `Browse the trend feed and run generation tasks from the command line.

Generation commands need an API key in TREND_RADAR_API_KEY, GEMINI_API_KEY
or OPENAI_API_KEY. Without one they print empty results.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "configs/config.yaml", "config file path")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "override log level")

	root.AddCommand(
		c.feedCmd(),
		c.scoreCmd(),
		c.domainsCmd(),
		c.saasCmd(),
		c.affiliateCmd(),
		c.cryptoCmd(),
		c.analyzeCmd(),
		c.buildCmd(),
		c.creativeCmd(),
	)
	return root
}

func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(c.configPath)
	if err != nil {
		return fmt.Errorf("无法加载配置文件: %w", err)
	}
	if c.logLevel != "" {
		cfg.Log.Level = c.logLevel
	}
	if err := logger.InitLogger(cfg.Log.Level, cfg.Log.File); err != nil {
		return fmt.Errorf("无法初始化日志: %w", err)
	}
	// stdout 只留给 JSON 结果
	logger.SetOutput(cmd.ErrOrStderr())

	c.store, err = fixture.NewStore(time.Now())
	if err != nil {
		return err
	}
	c.radar, err = newRadar(cmd.Context(), cfg)
	return err
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// feedResult 与 HTTP 接口的 /api/trends 输出一致
type feedResult struct {
	feed.DemoView
	Total int `json:"total"`
}

func (c *cli) feedCmd() *cobra.Command {
	var (
		category, timeFrame, capFilter string
		minVelocity                    int
		demo, live                     bool
	)
	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Filter and sort the trend feed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q, err := feed.ParseQuery(category, timeFrame, minVelocity, capFilter)
			if err != nil {
				return err
			}
			candidates := c.store.Trends()
			if live && q.Category == model.CategoryCrypto {
				candidates = append(candidates, c.radar.FetchLiveCryptoTrends(cmd.Context())...)
			}
			records := feed.Filter(candidates, q, time.Now())
			view := feed.Full(records)
			if demo {
				view = feed.Demo(records)
			}
			if view.Visible == nil {
				view.Visible = []model.TrendRecord{}
			}
			return printJSON(cmd, feedResult{DemoView: view, Total: len(records)})
		},
	}
	cmd.Flags().StringVar(&category, "category", string(model.CategoryCode), "CODE, SOCIAL, MARKET, BUSINESS or CRYPTO")
	cmd.Flags().StringVar(&timeFrame, "timeframe", string(model.TimeFrame24H), "1H, 6H, 24H, 7D or 1M")
	cmd.Flags().IntVar(&minVelocity, "min-velocity", 0, "minimum change")
	cmd.Flags().StringVar(&capFilter, "cap", string(feed.CapAll), "ALL, HIGH_CAP or LOW_CAP (CRYPTO only)")
	cmd.Flags().BoolVar(&demo, "demo", false, "demo view: two visible records and hidden slots")
	cmd.Flags().BoolVar(&live, "live", false, "include live crypto discovery (CRYPTO only)")
	return cmd
}

func (c *cli) scoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score <trend-id>",
		Short: "Show the score breakdown of a trend",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := c.trend(args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, feed.Breakdown(t, c.store.Sources()))
		},
	}
}

func (c *cli) domainsCmd() *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "domains <keyword>",
		Short: "Discover candidate domain names for a keyword",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd, orEmpty(c.radar.DiscoverDomains(cmd.Context(), args[0], category)))
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "trend category used as context")
	return cmd
}

func (c *cli) saasCmd() *cobra.Command {
	var req model.SaaSConceptRequest
	var complexity string
	cmd := &cobra.Command{
		Use:   "saas <niche>",
		Short: "Generate SaaS blueprints for a niche",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Niche = args[0]
			req.Complexity = model.Complexity(strings.ToUpper(complexity))
			switch req.Complexity {
			case model.ComplexityNoCode, model.ComplexityLowCode, model.ComplexityFullCode:
			default:
				return fmt.Errorf("unknown complexity %q", complexity)
			}
			return printJSON(cmd, orEmpty(c.radar.GenerateSaaSBlueprints(cmd.Context(), req)))
		},
	}
	cmd.Flags().StringVar(&req.TrendContext, "context", "", "trend context")
	cmd.Flags().StringVar(&req.Audience, "audience", "", "target audience")
	cmd.Flags().StringVar(&complexity, "complexity", string(model.ComplexityLowCode), "NO_CODE, LOW_CODE or FULL_CODE")
	return cmd
}

func (c *cli) affiliateCmd() *cobra.Command {
	var productType string
	cmd := &cobra.Command{
		Use:   "affiliate <niche>",
		Short: "Generate affiliate marketing angles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd, orEmpty(c.radar.GenerateAffiliateStrategies(cmd.Context(), args[0], productType)))
		},
	}
	cmd.Flags().StringVar(&productType, "product-type", "Digital Product", "product type")
	return cmd
}

func (c *cli) cryptoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "crypto",
		Short: "Discover live crypto trends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printJSON(cmd, orEmpty(c.radar.FetchLiveCryptoTrends(cmd.Context())))
		},
	}
}

func (c *cli) analyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <trend-id>",
		Short: "Run the forensic deep dive on a trend",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flow, err := c.selected(args[0])
			if err != nil {
				return err
			}
			snap, err := flow.Analyze(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, snap)
		},
	}
}

func (c *cli) buildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build <trend-id> <DOMAINS|SAAS|COURSE|LANDING_PAGE>",
		Short: "Analyze a trend and generate a builder asset",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			assetType := model.AssetType(strings.ToUpper(args[1]))
			if !assetType.Valid() {
				return fmt.Errorf("unknown asset type %q", args[1])
			}
			flow, err := c.selected(args[0])
			if err != nil {
				return err
			}
			snap, err := flow.Analyze(cmd.Context())
			if err != nil {
				return err
			}
			if snap.Phase != detail.PhaseAnalyzed {
				return fmt.Errorf("深度分析未返回结果，无法生成 %s", assetType)
			}
			if snap, err = flow.Build(cmd.Context(), assetType); err != nil {
				return err
			}
			return printJSON(cmd, snap)
		},
	}
}

func (c *cli) creativeCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "creative <prompt>",
		Short: "Render an ad creative from an image prompt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			creative := c.radar.GenerateCreative(cmd.Context(), args[0])
			if creative == nil {
				return printJSON(cmd, nil)
			}
			if out == "" {
				return printJSON(cmd, creative)
			}
			if err := os.WriteFile(out, creative.Data, 0o644); err != nil {
				return err
			}
			logger.Log.Infof("图片已写入 %s", out)
			return printJSON(cmd, map[string]any{
				"prompt":   creative.Prompt,
				"mimeType": creative.MIMEType,
				"file":     out,
				"bytes":    len(creative.Data),
			})
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the image to this file instead of printing base64")
	return cmd
}

func (c *cli) trend(id string) (model.TrendRecord, error) {
	t, ok := c.store.Find(id)
	if !ok {
		return model.TrendRecord{}, fmt.Errorf("trend %q not found", id)
	}
	return t, nil
}

func (c *cli) selected(id string) (*detail.Flow, error) {
	t, err := c.trend(id)
	if err != nil {
		return nil, err
	}
	flow := detail.New(c.radar)
	flow.Select(t)
	return flow, nil
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
