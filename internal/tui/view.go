package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	contentWidth := max(10, m.width)
	bodyW, bodyH := m.bodySize()

	// Header
	title := " genuary ─ terminal sketches "
	if m.screen == screenSketch && m.active != nil {
		title += "─ " + m.active.Name() + " "
	}
	header := lipgloss.NewStyle().Width(contentWidth).Render(titleStyle.Render(title))

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View())
	}

	var main string
	switch {
	case m.pasteMode:
		main = m.ta.View()
	case m.screen == screenSketch && m.active != nil:
		main = m.active.Render(bodyW, bodyH)
	default:
		main = boxStyle.Render(m.tbl.View())
	}
	// plain canvas: no border, no background highlight
	mainView := lipgloss.NewStyle().Width(bodyW).Height(bodyH).MaxHeight(bodyH).Render(main)

	body := mainView
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mainView)
	}

	// Footer / help
	status := dimStyle.Render(" " + m.status + " ")
	footer := lipgloss.NewStyle().Width(contentWidth).Render(lipgloss.JoinVertical(lipgloss.Left, status, m.renderHelp()))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	var keys []string
	switch {
	case m.pasteMode:
		keys = []string{"Enter triangulate", "Esc cancel"}
	case m.screen == screenSketch && m.active != nil:
		keys = append(keys, m.active.Help()...)
		keys = append(keys, "Esc calendar")
	default:
		keys = []string{"↑↓ select", "Enter open", "Esc back to sketch"}
	}
	keys = append(keys, "1-3 sketch", "Tab files", "p paste", "h help", "q quit")
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
