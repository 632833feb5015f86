package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

const (
	helpText     = "↑/k ↓/j move • enter open • e edit • s save • r reload • q quit"
	minTreeWidth = 20
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	dirStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	cursorStyle   = lipgloss.NewStyle().Reverse(true)
	issueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle     = lipgloss.NewStyle().Faint(true)
	treePaneStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			PaddingRight(1)
	previewPaneStyle = lipgloss.NewStyle().PaddingLeft(1)
)

// listHeight is the number of tree rows that fit on screen, leaving room
// for the title, status and help lines.
func (m *Model) listHeight() int {
	return max(1, m.height-3)
}

func (m *Model) treeWidth() int {
	return max(minTreeWidth, m.width/3)
}

func (m *Model) render() string {
	title := titleStyle.Render(truncate(m.root, m.width))

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		treePaneStyle.Render(m.renderTree()),
		previewPaneStyle.Render(m.renderPreview()),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		body,
		m.renderStatus(),
		helpStyle.Render(truncate(helpText, m.width)),
	)
}

func (m *Model) renderTree() string {
	w := m.treeWidth()

	if len(m.rows) == 0 {
		return lipgloss.NewStyle().Width(w).Render("(no files)")
	}

	end := min(len(m.rows), m.offset+m.listHeight())
	lines := make([]string, 0, end-m.offset)

	for i := m.offset; i < end; i++ {
		row := m.rows[i]

		name := row.Name
		if row.IsDir() {
			name += "/"
		}

		text := truncate(strings.Repeat("  ", row.Depth)+name, w)
		text += strings.Repeat(" ", max(0, w-runewidth.StringWidth(text)))

		switch {
		case i == m.cursor:
			text = cursorStyle.Render(text)
		case row.IsDir():
			text = dirStyle.Render(text)
		}

		lines = append(lines, text)
	}

	return strings.Join(lines, "\n")
}

func (m *Model) renderPreview() string {
	w := max(1, m.width-m.treeWidth()-3)

	path := m.session.Path()
	if path == "" {
		return "no file open"
	}

	lines := []string{titleStyle.Render(truncate(path, w)), ""}

	for l := range strings.SplitSeq(m.session.Preview(), "\n") {
		lines = append(lines, truncate(l, w))
	}

	for _, d := range m.session.Diagnostics() {
		lines = append(lines, issueStyle.Render(truncate(fmt.Sprintf("line %d: %v", d.Line, d.Err), w)))
	}

	for _, issue := range m.session.Lint() {
		lines = append(lines, issueStyle.Render(truncate(issue.Error(), w)))
	}

	return strings.Join(lines, "\n")
}

func (m *Model) renderStatus() string {
	status := m.status
	if status == "" && m.tail != nil {
		status = m.tail.Last()
	}

	status = truncate(status, m.width)
	if m.failed {
		return errorStyle.Render(status)
	}

	return status
}

func truncate(s string, w int) string {
	return runewidth.Truncate(s, w, "…")
}
