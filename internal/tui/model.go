package tui

import (
	"dirsize/internal/model"
	"dirsize/internal/session"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// AppModel holds the TUI state.
type AppModel struct {
	// Input
	TranscriptPath string
	Thresholds     model.Thresholds

	// Data
	Analysis *session.Analysis
	Loading  bool
	Err      error

	// UI State
	SelectedIdx int // Index into FilteredIndices
	WindowSize  tea.WindowSizeMsg

	// View Modes
	HighlightUnder bool // Mark directories counted by the bounded-sum query ('u')

	// Search State
	InputMode       bool
	InputBuffer     textinput.Model
	FilteredIndices []int // Indices of Result.Directories to show
	SearchActive    bool

	// Components
	DetailsViewport viewport.Model
}

// InitialModel returns the initial state.
func InitialModel(path string, thresholds model.Thresholds) AppModel {
	ti := textinput.New()
	ti.Placeholder = "Directory name..."
	ti.CharLimit = 50
	ti.Width = 20

	return AppModel{
		TranscriptPath:  path,
		Thresholds:      thresholds,
		Loading:         true,
		InputBuffer:     ti,
		HighlightUnder:  true,
		DetailsViewport: viewport.New(40, 10),
	}
}

// Init starts the analysis in the background.
func (m AppModel) Init() tea.Cmd {
	return InitAnalysisCmd(m.TranscriptPath, m.Thresholds)
}

func (m AppModel) result() model.AnalysisResult {
	if m.Analysis == nil {
		return model.AnalysisResult{}
	}
	return m.Analysis.Result
}

// selected returns the highlighted directory, if any.
func (m AppModel) selected() (model.DirInfo, bool) {
	if m.SelectedIdx < 0 || m.SelectedIdx >= len(m.FilteredIndices) {
		return model.DirInfo{}, false
	}
	return m.result().Directories[m.FilteredIndices[m.SelectedIdx]], true
}
