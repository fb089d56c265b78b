package tui

import (
	"math/rand/v2"
	"os"
	"time"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"genuary/internal/calendar"
	"genuary/internal/config"
	"genuary/internal/sketch"
)

type screen int

const (
	screenCalendar screen = iota
	screenSketch
)

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
)

type Model struct {
	width  int
	height int

	cfg config.Config
	rng *rand.Rand
	cal *calendar.Calendar

	screen      screen
	showSidebar bool
	helpVisible bool

	status string

	// calendar
	tbl table.Model

	// file explorer
	cwd     string
	l       list.Model
	selPath string

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// sketch
	active    sketch.Sketch
	points    []float32
	frame     time.Duration
	lastFrame time.Time
}

func New(cfg config.Config, cal *calendar.Calendar) Model {
	m := Model{
		cfg:         cfg,
		rng:         sketch.NewRand(cfg.Seed),
		cal:         cal,
		helpVisible: true,
		status:      "genuary ready",
		frame:       time.Second / time.Duration(max(1, cfg.FPS)),
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Point files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste WKT points here (MULTIPOINT, LINESTRING, POLYGON). Press Enter to triangulate; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	m.tbl = newCalendarTable(cal)
	m.refreshDir()
	return m
}

// NewWithSketch opens a sketch at launch.
func NewWithSketch(cfg config.Config, cal *calendar.Calendar, name string, pts []float32) Model {
	m := New(cfg, cal)
	m.points = pts
	m.openSketch(name)
	return m
}

type frameMsg time.Time

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.frame, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m Model) Init() tea.Cmd { return m.tick() }

// openSketch replaces the active sketch. Failures stay on the current screen.
func (m *Model) openSketch(name string) {
	s, err := sketch.New(name, sketch.Env{Config: m.cfg, Rand: m.rng, Points: m.points})
	if err != nil {
		m.status = "sketch error: " + err.Error()
		return
	}
	m.active = s
	m.screen = screenSketch
	m.lastFrame = time.Time{}
	m.status = "sketch: " + name
}
