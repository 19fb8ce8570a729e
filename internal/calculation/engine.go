package calculation

import (
	"context"
	"fmt"

	"github.com/nwadvisor/networth-advisor/internal/domain"
)

// Engine orchestrates the full analysis pipeline over a validated
// profile. All stages are pure functions over snapshots; the engine adds
// boundary validation, logging, and cancellation between stages.
type Engine struct {
	Logger Logger
	Debug  bool
}

// NewEngine returns an engine that logs nowhere until a Logger is set.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// AnalysisRequest bundles one analysis run's inputs. Lots are optional;
// without them the liquidation comparison is skipped.
type AnalysisRequest struct {
	Profile domain.Profile
	Lots    []domain.AssetLot

	// Strategy leads the liquidation comparison. Empty means avalanche.
	Strategy domain.Strategy

	CaptureMonths bool
}

// Validate checks the request at the boundary so every downstream stage
// can assume clean, non-negative inputs.
func (r AnalysisRequest) Validate() error {
	if err := r.Profile.Validate(); err != nil {
		return fmt.Errorf("profile: %w", err)
	}
	if r.Strategy != "" && !domain.ValidStrategy(r.Strategy) {
		return fmt.Errorf("unknown strategy %q", r.Strategy)
	}
	for i, lot := range r.Lots {
		if err := lot.Validate(); err != nil {
			return fmt.Errorf("lot %d: %w", i, err)
		}
	}
	return nil
}

// Analysis is the complete, immutable output of one run. Plain data so
// it can cross a goroutine boundary or be rendered by any formatter.
type Analysis struct {
	Summary         NetWorthSummary          `json:"summary"`
	CashFlow        CashFlowAnalysis         `json:"cashFlow"`
	Strategies      StrategySet              `json:"strategies"`
	Liquidation     *LiquidationComparison   `json:"liquidation,omitempty"`
	Projection      []domain.ProjectionPoint `json:"projection,omitempty"`
	Recommendations []domain.Recommendation  `json:"recommendations"`
}

// Analyze runs the whole pipeline: summary, cash flow, strategy
// comparison, optional liquidation comparison, projection, and
// recommendations. The context is checked between stages; a cancelled
// run returns ctx.Err with no partial result.
func (e *Engine) Analyze(ctx context.Context, req AnalysisRequest) (*Analysis, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	profile := req.Profile

	e.Logger.Infof("Starting analysis: %d assets, %d liabilities, %d lots selected",
		len(profile.Assets), len(profile.Liabilities), len(req.Lots))

	analysis := &Analysis{
		Summary:  Summarize(profile),
		CashFlow: AnalyzeCashFlow(profile),
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	analysis.Strategies = ComparePayoffStrategies(
		profile.OpenLiabilities(), profile.Assumptions.ExtraMonthly, req.CaptureMonths)
	e.Logger.Debugf("Strategy comparison done: avalanche %d months, minimum %d months",
		analysis.Strategies.Avalanche.MonthsToDebtFree,
		analysis.Strategies.Minimum.MonthsToDebtFree)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if len(req.Lots) > 0 {
		strategy := req.Strategy
		if strategy == "" {
			strategy = domain.StrategyAvalanche
		}
		comparison := CompareLiquidationStrategies(LiquidationPlan{
			Lots:          req.Lots,
			Liabilities:   profile.OpenLiabilities(),
			Tax:           profile.Tax,
			Strategy:      strategy,
			ExtraMonthly:  profile.Assumptions.ExtraMonthly,
			CaptureMonths: req.CaptureMonths,
		})
		analysis.Liquidation = &comparison
		e.Logger.Debugf("Liquidation comparison done: recommended %s, net benefit $%s",
			comparison.Recommended, comparison.NetBenefit.StringFixed(2))
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	if months := profile.Assumptions.ProjectionMonths; months > 0 {
		analysis.Projection = Project(months, profile)
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	analysis.Recommendations = Recommend(profile, analysis.Strategies)
	e.Logger.Infof("Analysis complete: %d recommendations", len(analysis.Recommendations))
	return analysis, nil
}

// AnalysisResult is what AnalyzeAsync delivers on its channel.
type AnalysisResult struct {
	Analysis *Analysis
	Err      error
}

// AnalyzeAsync runs Analyze on a worker goroutine and delivers exactly
// one result on the returned channel. Cancelling the context makes the
// worker return early; the result is simply discarded state, there is no
// partial cleanup to do.
func (e *Engine) AnalyzeAsync(ctx context.Context, req AnalysisRequest) <-chan AnalysisResult {
	ch := make(chan AnalysisResult, 1)
	go func() {
		analysis, err := e.Analyze(ctx, req)
		ch <- AnalysisResult{Analysis: analysis, Err: err}
	}()
	return ch
}
