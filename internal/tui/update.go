package tui

import (
	"fmt"
	"strings"
	"time"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"genuary/internal/points"
	"genuary/internal/sketch"
)

// maxFrameStep caps dt after a stall so animations do not jump.
const maxFrameStep = 250 * time.Millisecond

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
	case frameMsg:
		now := time.Time(msg)
		if m.screen == screenSketch && m.active != nil && !m.pasteMode {
			dt := m.frame
			if !m.lastFrame.IsZero() {
				dt = min(now.Sub(m.lastFrame), maxFrameStep)
			}
			m.active.Tick(dt)
		}
		m.lastFrame = now
		return m, m.tick()
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			return m.updatePaste(msg)
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
			}
			m.resize()
			return m, nil
		case "p":
			m.pasteMode = true
			m.ta.SetValue("")
			m.ta.Focus()
			m.status = "paste mode"
			return m, nil
		case "h":
			m.helpVisible = !m.helpVisible
			return m, nil
		case "1", "2", "3":
			m.openSketch(sketch.Names[int(msg.String()[0]-'1')])
			return m, nil
		}
		if m.showSidebar {
			switch msg.String() {
			case "enter":
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
				return m, nil
			case "up", "down", "k", "j", "/", "pgup", "pgdown":
				var cmd tea.Cmd
				m.l, cmd = m.l.Update(msg)
				return m, cmd
			}
		}
		if m.screen == screenSketch {
			return m.updateSketch(msg)
		}
		return m.updateCalendar(msg)
	}
	return m, nil
}

func (m Model) updateCalendar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.openSelectedDay()
		return m, nil
	case "esc":
		if m.active != nil {
			m.screen = screenSketch
			m.status = "sketch: " + m.active.Name()
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.tbl, cmd = m.tbl.Update(msg)
	if c, ok := m.selectedChallenge(); ok {
		m.status = fmt.Sprintf("day %d  %s", c.Day, c.Status())
	}
	return m, cmd
}

func (m Model) updateSketch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.screen = screenCalendar
		m.status = m.calendarSummary()
		return m, nil
	}
	if st, ok := m.active.Key(msg.String()); ok {
		m.status = st
	}
	return m, nil
}

func (m Model) updatePaste(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pasteMode = false
		m.ta.Blur()
		m.status = "paste cancelled"
		return m, nil
	case "enter":
		w := strings.TrimSpace(m.ta.Value())
		if w == "" {
			m.status = "paste: empty"
			return m, nil
		}
		pts, err := points.ParseWKT(w)
		if err != nil {
			m.status = "wkt error: " + err.Error()
			return m, nil
		}
		m.pasteMode = false
		m.ta.Blur()
		m.selPath = ""
		m.usePoints(pts, fmt.Sprintf("pasted %d points", len(pts)/2))
		return m, nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

// resize recomputes component sizes from the window size.
func (m *Model) resize() {
	content := max(4, m.height-headerHeight-footerHeight)
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, content-2)
	}
	w := m.width
	if m.showSidebar {
		w -= sidebarWidth + 1
	}
	m.tbl.SetWidth(max(10, w-4))
	m.tbl.SetHeight(max(3, content-3))
	m.ta.SetWidth(max(10, w))
	m.ta.SetHeight(min(content, 12))
}

// bodySize is the area left for the calendar or sketch.
func (m Model) bodySize() (int, int) {
	w := max(10, m.width)
	if m.showSidebar {
		w -= sidebarWidth + 1
	}
	return max(8, w), max(4, m.height-headerHeight-footerHeight)
}
