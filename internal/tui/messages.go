package tui

import (
	"github.com/nwadvisor/networth-advisor/internal/calculation"
	"github.com/nwadvisor/networth-advisor/internal/config"
)

// Scene represents the different screens in the TUI.
type Scene int

const (
	SceneSummary Scene = iota
	SceneStrategies
	SceneLiquidation
	SceneRecommendations
	SceneHelp
)

// String returns a human-readable name for a scene.
func (s Scene) String() string {
	switch s {
	case SceneSummary:
		return "Summary"
	case SceneStrategies:
		return "Strategies"
	case SceneLiquidation:
		return "Liquidation"
	case SceneRecommendations:
		return "Recommendations"
	case SceneHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// Message types for the Bubble Tea update cycle.

// ProfileLoadedMsg signals the profile file has been parsed.
type ProfileLoadedMsg struct {
	Document *config.Document
}

// AnalysisStartedMsg signals an analysis run has begun.
type AnalysisStartedMsg struct{}

// AnalysisCompleteMsg signals an analysis run has finished.
type AnalysisCompleteMsg struct {
	Analysis *calculation.Analysis
	Err      error
}

// ErrorMsg displays an error to the user.
type ErrorMsg struct {
	Err error
}
