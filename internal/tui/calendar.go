package tui

import (
	"fmt"
	"strings"

	table "github.com/charmbracelet/bubbles/table"

	"genuary/internal/calendar"
)

func newCalendarTable(cal *calendar.Calendar) table.Model {
	cols := []table.Column{
		{Title: "Day", Width: 4},
		{Title: "Prompt", Width: 44},
		{Title: "Credit", Width: 24},
		{Title: "Status", Width: 12},
		{Title: "Sketch", Width: 12},
	}
	var rows []table.Row
	if cal != nil {
		rows = make([]table.Row, 0, len(cal.Challenges))
		for _, c := range cal.Challenges {
			rows = append(rows, table.Row{
				fmt.Sprintf("%d", c.Day),
				c.Prompt,
				c.Credit,
				c.Status(),
				strings.Join(c.Sketches, ","),
			})
		}
	}
	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	st := table.DefaultStyles()
	st.Header = st.Header.BorderStyle(boxStyle.GetBorderStyle()).BorderForeground(borderCol).BorderBottom(true).Bold(true)
	st.Selected = st.Selected.Foreground(baseFg).Background(accentFg)
	t.SetStyles(st)
	return t
}

// selectedChallenge returns the challenge under the table cursor.
func (m Model) selectedChallenge() (calendar.Challenge, bool) {
	if m.cal == nil {
		return calendar.Challenge{}, false
	}
	i := m.tbl.Cursor()
	if i < 0 || i >= len(m.cal.Challenges) {
		return calendar.Challenge{}, false
	}
	return m.cal.Challenges[i], true
}

// openSelectedDay opens the first sketch of the highlighted day, or the next
// one if that sketch is already showing.
func (m *Model) openSelectedDay() {
	c, ok := m.selectedChallenge()
	if !ok {
		return
	}
	if len(c.Sketches) == 0 {
		m.status = fmt.Sprintf("day %d has no terminal sketch", c.Day)
		return
	}
	name := c.Sketches[0]
	if m.active != nil {
		for i, s := range c.Sketches {
			if s == m.active.Name() {
				name = c.Sketches[(i+1)%len(c.Sketches)]
				break
			}
		}
	}
	m.openSketch(name)
}

func (m Model) calendarSummary() string {
	if m.cal == nil {
		return ""
	}
	return fmt.Sprintf("%d/%d days completed", m.cal.Completed(), len(m.cal.Challenges))
}
