package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nwadvisor/networth-advisor/internal/calculation"
	"github.com/nwadvisor/networth-advisor/internal/config"
)

// Model is the entire application state. All simulation results arrive
// as immutable values over messages; the update loop never runs a
// simulation itself.
type Model struct {
	// Navigation
	currentScene Scene

	// Terminal dimensions
	width  int
	height int

	// Input data
	profilePath string
	document    *config.Document

	// Calculation engine
	engine *calculation.Engine

	// Latest completed analysis
	analysis *calculation.Analysis

	// Error state
	err error

	// Loading state
	loading        bool
	loadingMessage string
	spinner        spinner.Model
}

// NewModel creates the application model for a profile path.
func NewModel(profilePath string) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(ColorPrimary)

	return Model{
		currentScene: SceneSummary,
		profilePath:  profilePath,
		engine:       calculation.NewEngine(),
		width:        80,
		height:       24,
		loading:      true,
		spinner:      s,
	}
}

// Init starts loading the profile (required by tea.Model).
func (m Model) Init() tea.Cmd {
	return tea.Batch(loadProfileCmd(m.profilePath), m.spinner.Tick)
}

// loadProfileCmd returns a command that parses the profile file.
func loadProfileCmd(path string) tea.Cmd {
	return func() tea.Msg {
		doc, err := config.NewInputParser().LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ProfileLoadedMsg{Document: doc}
	}
}

// analyzeCmd returns a command that runs the full analysis on a worker
// goroutine and delivers the immutable result as a message.
func analyzeCmd(engine *calculation.Engine, doc *config.Document) tea.Cmd {
	return func() tea.Msg {
		analysis, err := engine.Analyze(context.Background(), calculation.AnalysisRequest{
			Profile:       doc.Profile,
			Lots:          doc.ResolveLots(),
			CaptureMonths: true,
		})
		return AnalysisCompleteMsg{Analysis: analysis, Err: err}
	}
}
