package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case ProfileLoadedMsg:
		m.document = msg.Document
		m.loading = true
		m.loadingMessage = "Running analysis..."
		return m, tea.Batch(analyzeCmd(m.engine, msg.Document), m.spinner.Tick)

	case AnalysisStartedMsg:
		m.loading = true
		m.loadingMessage = "Running analysis..."
		return m, nil

	case AnalysisCompleteMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
		} else {
			m.analysis = msg.Analysis
			m.err = nil
		}
		return m, nil

	case ErrorMsg:
		m.loading = false
		m.err = msg.Err
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKeyPress processes keyboard input.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "1":
		m.currentScene = SceneSummary
	case "2":
		m.currentScene = SceneStrategies
	case "3":
		m.currentScene = SceneLiquidation
	case "4":
		m.currentScene = SceneRecommendations
	case "?", "h":
		m.currentScene = SceneHelp

	case "r":
		// Re-run the analysis on the already-loaded document.
		if m.document != nil && !m.loading {
			m.loading = true
			m.loadingMessage = "Running analysis..."
			return m, tea.Batch(analyzeCmd(m.engine, m.document), m.spinner.Tick)
		}

	case "tab":
		m.currentScene = (m.currentScene + 1) % (SceneHelp + 1)
	}
	return m, nil
}
