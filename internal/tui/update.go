package tui

import (
	"strings"

	"dirsize/internal/model"
	"dirsize/internal/session"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// MsgAnalysisReady indicates that the transcript has been analyzed.
type MsgAnalysisReady struct {
	Analysis *session.Analysis
}

// MsgError indicates an error occurred.
type MsgError error

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		m.DetailsViewport.Width = msg.Width / 2
		m.DetailsViewport.Height = msg.Height - 8 // minus title, footer, borders
		m.refreshDetails()
		return m, nil

	case MsgAnalysisReady:
		m.Loading = false
		m.Analysis = msg.Analysis
		m.resetFilter()
		m.SelectedIdx = 0
		m.refreshDetails()
		return m, nil

	case MsgError:
		m.Err = msg
		m.Loading = false
		return m, nil

	case tea.KeyMsg:
		if m.InputMode {
			switch msg.Type {
			case tea.KeyEnter:
				// Keep the filter, leave the input box.
				m.InputMode = false
				m.InputBuffer.Blur()
				m.performSearch()
				return m, nil
			case tea.KeyEsc:
				m.clearSearch()
				return m, nil
			}
			m.InputBuffer, cmd = m.InputBuffer.Update(msg)
			m.performSearch()
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			if m.SearchActive {
				m.clearSearch()
				return m, nil
			}
		case "up", "k":
			if m.SelectedIdx > 0 {
				m.SelectedIdx--
				m.refreshDetails()
			}
		case "down", "j":
			if m.SelectedIdx < len(m.FilteredIndices)-1 {
				m.SelectedIdx++
				m.refreshDetails()
			}
		case "g", "home":
			m.SelectedIdx = 0
			m.refreshDetails()
		case "G", "end":
			if len(m.FilteredIndices) > 0 {
				m.SelectedIdx = len(m.FilteredIndices) - 1
				m.refreshDetails()
			}
		case "pgup", "pgdown":
			m.DetailsViewport, cmd = m.DetailsViewport.Update(msg)
			return m, cmd
		case "u":
			m.HighlightUnder = !m.HighlightUnder
		case "c":
			m.jumpToCandidate()
		case "/":
			m.InputMode = true
			m.InputBuffer.Focus()
			m.InputBuffer.SetValue("")
			return m, textinput.Blink
		}
	}

	return m, cmd
}

func (m *AppModel) resetFilter() {
	dirs := m.result().Directories
	m.FilteredIndices = make([]int, len(dirs))
	for i := range dirs {
		m.FilteredIndices[i] = i
	}
}

func (m *AppModel) clearSearch() {
	m.InputMode = false
	m.InputBuffer.Blur()
	m.InputBuffer.SetValue("")
	m.SearchActive = false
	m.performSearch()
}

func (m *AppModel) performSearch() {
	term := strings.ToLower(m.InputBuffer.Value())
	if term == "" {
		m.SearchActive = false
		m.resetFilter()
	} else {
		m.SearchActive = true
		var result []int
		for i, d := range m.result().Directories {
			if strings.Contains(strings.ToLower(d.Path), term) {
				result = append(result, i)
			}
		}
		m.FilteredIndices = result
	}

	// Bounds check
	if m.SelectedIdx >= len(m.FilteredIndices) {
		if len(m.FilteredIndices) > 0 {
			m.SelectedIdx = len(m.FilteredIndices) - 1
		} else {
			m.SelectedIdx = 0
		}
	}
	m.refreshDetails()
}

// jumpToCandidate selects the delete candidate, dropping any filter that hides it.
func (m *AppModel) jumpToCandidate() {
	for {
		for i, idx := range m.FilteredIndices {
			if m.result().Directories[idx].Candidate {
				m.SelectedIdx = i
				m.refreshDetails()
				return
			}
		}
		if !m.SearchActive {
			return
		}
		m.clearSearch()
	}
}

func (m *AppModel) refreshDetails() {
	m.DetailsViewport.SetContent(m.detailsContent())
	m.DetailsViewport.GotoTop()
}

// InitAnalysisCmd analyzes the transcript in background.
func InitAnalysisCmd(path string, thresholds model.Thresholds) tea.Cmd {
	return func() tea.Msg {
		analysis, err := session.NewAnalyzer(thresholds).AnalyzeFile(path)
		if err != nil {
			return MsgError(err)
		}
		return MsgAnalysisReady{Analysis: analysis}
	}
}
