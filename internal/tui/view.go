package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dirsize/internal/model"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	selectedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	normalStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	underStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("81"))
	candidateStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)

	borderColor = lipgloss.Color("63")
	activeColor = lipgloss.Color("205")
)

func (m AppModel) View() string {
	if m.Loading {
		return "\n  Replaying transcript... please wait.\n"
	}
	if m.Err != nil {
		return fmt.Sprintf("\n  Error: %v\n\n  Press q to quit.\n", m.Err)
	}

	// Subtracting 6 for horizontal margin (borders x2 + buffer)
	// Subtracting 6 for vertical margin (title, footer, borders)
	netWidth := m.WindowSize.Width - 6
	if netWidth < 40 {
		netWidth = 40
	}
	leftWidth := netWidth / 2
	rightWidth := netWidth - leftWidth

	boxHeight := m.WindowSize.Height - 6
	if boxHeight < 6 {
		boxHeight = 6
	}
	interiorHeight := boxHeight - 2

	// LEFT PANEL: directory list
	var leftView strings.Builder
	leftView.WriteString(titleStyle.Render("Directories"))
	leftView.WriteString("\n\n")

	dirs := m.result().Directories
	visibleItems := interiorHeight - 2
	if visibleItems < 1 {
		visibleItems = 1
	}
	startIdx := 0
	endIdx := len(m.FilteredIndices)
	if len(m.FilteredIndices) > visibleItems {
		if m.SelectedIdx >= visibleItems/2 {
			startIdx = m.SelectedIdx - (visibleItems / 2)
		}
		if startIdx+visibleItems > len(m.FilteredIndices) {
			startIdx = len(m.FilteredIndices) - visibleItems
		}
		endIdx = startIdx + visibleItems
	}

	sizeWidth := len(fmt.Sprint(m.result().TotalSize))
	for i := startIdx; i < endIdx; i++ {
		d := dirs[m.FilteredIndices[i]]

		icon := model.IconOK
		style := normalStyle
		switch {
		case d.Candidate:
			icon = model.IconCandidate
			style = candidateStyle
		case d.UnderLimit && m.HighlightUnder:
			icon = model.IconUnder
			style = underStyle
		}

		name := d.Name
		if m.SearchActive {
			// Depth is meaningless once rows are filtered out.
			name = d.Path
		} else {
			name = strings.Repeat("  ", d.Depth) + model.IconDir + " " + name
		}
		line := fmt.Sprintf("%*d %s %s", sizeWidth, d.Size, icon, name)

		line = truncate(line, leftWidth-2)

		if i == m.SelectedIdx {
			style = selectedStyle
		}
		leftView.WriteString(style.Render(line))
		leftView.WriteString("\n")
	}
	if len(m.FilteredIndices) == 0 {
		leftView.WriteString(dimStyle.Render("No matching directories"))
	}

	left := lipgloss.NewStyle().
		Width(leftWidth).
		Height(interiorHeight).
		Border(lipgloss.NormalBorder()).
		BorderForeground(activeColor).
		Render(strings.TrimSuffix(leftView.String(), "\n"))

	// RIGHT PANEL: details of the selected directory
	vp := m.DetailsViewport
	vp.Width = rightWidth
	vp.Height = interiorHeight
	right := lipgloss.NewStyle().
		Width(rightWidth).
		Height(interiorHeight).
		Border(lipgloss.NormalBorder()).
		BorderForeground(borderColor).
		Render(vp.View())

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	return lipgloss.JoinVertical(lipgloss.Left, m.header(), body, m.footer())
}

func (m AppModel) header() string {
	res := m.result()
	candidate := "nothing"
	if res.Candidate != nil {
		candidate = fmt.Sprintf("%s (%d)", res.Candidate.Path, res.Candidate.Size)
	}
	return titleStyle.Render("dirsize "+model.Version) + dimStyle.Render(fmt.Sprintf(
		"  total %d · under %d: %d · must free %d · delete %s",
		res.TotalSize, res.Thresholds.Limit, res.SumUnderLimit, res.RequiredFree, candidate))
}

func (m AppModel) footer() string {
	if m.InputMode {
		return "Filter: " + m.InputBuffer.View() + dimStyle.Render("  (enter: keep, esc: clear)")
	}
	help := "↑/↓ move · / filter · u toggle small · c candidate · pgup/pgdn scroll · q quit"
	if m.SearchActive {
		help = fmt.Sprintf("filter %q · esc clear · ", m.InputBuffer.Value()) + help
	}
	return dimStyle.Render(help)
}

// detailsContent renders the selected directory and its direct children.
func (m AppModel) detailsContent() string {
	d, ok := m.selected()
	if !ok || m.Analysis == nil {
		return dimStyle.Render("Nothing selected")
	}
	res := m.result()

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(d.Path))
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "Size:     %d\n", d.Size)
	if res.TotalSize > 0 {
		fmt.Fprintf(&sb, "Share:    %.1f%% of total\n", float64(d.Size)*100/float64(res.TotalSize))
	}
	fmt.Fprintf(&sb, "Files:    %d\n", d.Files)
	fmt.Fprintf(&sb, "Subdirs:  %d\n", d.Subdirs)
	if d.UnderLimit {
		sb.WriteString(underStyle.Render(fmt.Sprintf("Counted: under the %d limit", res.Thresholds.Limit)))
		sb.WriteString("\n")
	}
	if d.Candidate {
		sb.WriteString(candidateStyle.Render(fmt.Sprintf("Delete this to free %d (need %d)", d.Size, res.RequiredFree)))
		sb.WriteString("\n")
	}

	node := m.Analysis.Tree.Find(d.Path)
	if node == nil || node.Len() == 0 {
		sb.WriteString("\n")
		sb.WriteString(dimStyle.Render("(no recorded contents)"))
		return sb.String()
	}

	sb.WriteString("\nContents\n")
	for _, c := range node.Children() {
		icon := model.IconFile
		name := c.Name()
		if c.IsDir() {
			icon = model.IconDir
			name += "/"
		}
		fmt.Fprintf(&sb, "  %s %-24s %d\n", icon, name, m.Analysis.Sizes.SizeOf(c))
	}
	return sb.String()
}

// truncate shortens s to at most width runes, marking the cut with "...".
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width || width < 4 {
		return s
	}
	return string(runes[:width-3]) + "..."
}
