package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nwadvisor/networth-advisor/internal/calculation"
	"github.com/nwadvisor/networth-advisor/internal/compare"
	"github.com/nwadvisor/networth-advisor/internal/config"
	"github.com/nwadvisor/networth-advisor/internal/domain"
	"github.com/nwadvisor/networth-advisor/internal/output"
)

// zapLogger adapts a zap SugaredLogger to the calculation.Logger surface.
type zapLogger struct {
	sugar *zap.SugaredLogger
}

func (l zapLogger) Debugf(format string, args ...any) { l.sugar.Debugf(format, args...) }
func (l zapLogger) Infof(format string, args ...any)  { l.sugar.Infof(format, args...) }
func (l zapLogger) Warnf(format string, args ...any)  { l.sugar.Warnf(format, args...) }
func (l zapLogger) Errorf(format string, args ...any) { l.sugar.Errorf(format, args...) }

func newLogger(debugMode bool) (zapLogger, func()) {
	cfg := zap.NewProductionConfig()
	if debugMode {
		cfg = zap.NewDevelopmentConfig()
	}
	logger, err := cfg.Build()
	if err != nil {
		// Logging must never stop an analysis from running.
		return zapLogger{sugar: zap.NewNop().Sugar()}, func() {}
	}
	return zapLogger{sugar: logger.Sugar()}, func() { _ = logger.Sync() }
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagSettings string
	flagStrategy string
	flagFormat   string
	flagDebug    bool
)

func loadSettings(cmd *cobra.Command) (*config.Settings, error) {
	v := config.NewViper()
	if cmd.Flags().Changed("strategy") {
		v.Set("strategy", flagStrategy)
	}
	if cmd.Flags().Changed("format") {
		v.Set("output_format", flagFormat)
	}
	if cmd.Flags().Changed("debug") {
		v.Set("debug", flagDebug)
	}
	return config.LoadSettings(v, flagSettings)
}

func newEngine(settings *config.Settings) (*calculation.Engine, func()) {
	logger, flush := newLogger(settings.Debug)
	engine := calculation.NewEngine()
	if settings.Debug {
		engine.Logger = logger
		engine.Debug = true
	}
	return engine, flush
}

func loadDocument(path string) (*config.Document, error) {
	return config.NewInputParser().LoadFromFile(path)
}

var rootCmd = &cobra.Command{
	Use:   "nwadvisor",
	Short: "Net worth and debt payoff advisor",
	Long:  "Analyzes a financial profile: net worth, debt payoff strategies, tax-aware liquidation, projections, and recommendations",
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [profile-file]",
	Short: "Run the full analysis and render a report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		doc, err := loadDocument(args[0])
		if err != nil {
			return err
		}

		engine, flush := newEngine(settings)
		defer flush()

		analysis, err := engine.Analyze(cmd.Context(), calculation.AnalysisRequest{
			Profile:  doc.Profile,
			Lots:     doc.ResolveLots(),
			Strategy: settings.Strategy,
		})
		if err != nil {
			return err
		}
		return output.GenerateReport(analysis, settings.OutputFormat)
	},
}

var payoffCmd = &cobra.Command{
	Use:   "payoff [profile-file]",
	Short: "Compare debt payoff strategies",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		doc, err := loadDocument(args[0])
		if err != nil {
			return err
		}

		set := calculation.ComparePayoffStrategies(
			doc.Profile.OpenLiabilities(), doc.Profile.Assumptions.ExtraMonthly, false)
		comparison := compare.BuildComparison(set, args[0])

		switch settings.OutputFormat {
		case "json":
			out, err := (&compare.JSONFormatter{Pretty: true}).Format(comparison)
			if err != nil {
				return err
			}
			fmt.Println(out)
		case "csv":
			out, err := (&compare.CSVFormatter{}).Format(comparison)
			if err != nil {
				return err
			}
			fmt.Print(out)
		default:
			fmt.Print((&compare.TableFormatter{}).Format(comparison))
		}
		return nil
	},
}

var liquidateCmd = &cobra.Command{
	Use:   "liquidate [profile-file]",
	Short: "Compare immediate vs tax-optimized asset sales",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		doc, err := loadDocument(args[0])
		if err != nil {
			return err
		}
		lots := doc.ResolveLots()
		if len(lots) == 0 {
			return fmt.Errorf("profile %s selects no lots for sale (add a 'sale' section)", args[0])
		}

		engine, flush := newEngine(settings)
		defer flush()

		analysis, err := engine.Analyze(cmd.Context(), calculation.AnalysisRequest{
			Profile:  doc.Profile,
			Lots:     lots,
			Strategy: settings.Strategy,
		})
		if err != nil {
			return err
		}
		return output.GenerateReport(analysis, settings.OutputFormat)
	},
}

var projectCmd = &cobra.Command{
	Use:   "project [profile-file]",
	Short: "Project net worth month by month",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		doc, err := loadDocument(args[0])
		if err != nil {
			return err
		}

		months, _ := cmd.Flags().GetInt("months")
		if months <= 0 {
			months = doc.Profile.Assumptions.ProjectionMonths
		}
		points := calculation.Project(months, doc.Profile)

		analysis := &calculation.Analysis{Projection: points}
		if settings.OutputFormat == "json" {
			return output.NewReportGenerator().GenerateJSONReport(analysis)
		}
		return output.NewReportGenerator().GenerateCSVReport(analysis)
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "nwadvisor %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Version)
			}
		},
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagSettings, "settings", "", "optional settings file")
	rootCmd.PersistentFlags().StringVar(&flagStrategy, "strategy", string(domain.StrategyAvalanche), "payoff strategy (avalanche, snowball, hybrid, minimum)")
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "console", "output format (console, json, csv)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")

	projectCmd.Flags().Int("months", 0, "projection horizon in months (default: profile setting)")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(payoffCmd)
	rootCmd.AddCommand(liquidateCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
