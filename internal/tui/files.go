package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"genuary/internal/logx"
	"genuary/internal/points"
	"genuary/internal/sketch"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !points.Supported(name) {
			continue
		}
		items = append(items, fileItem{
			title: name,
			desc:  strings.ToLower(filepath.Ext(name)),
			path:  filepath.Join(m.cwd, name),
		})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no point files in current directory"
	}
}

// loadPath reads a point file and triangulates it in the mesh sketch.
func (m *Model) loadPath(p string) {
	m.selPath = p
	pts, err := points.Load(p)
	if err != nil {
		m.status = "load error: " + err.Error()
		return
	}
	m.usePoints(pts, "loaded: "+filepath.Base(p))
}

// usePoints hands a point set to the mesh sketch, opening it if needed.
func (m *Model) usePoints(pts []float32, label string) {
	if ms, ok := m.active.(*sketch.Mesh); ok {
		if err := ms.SetPoints(pts); err != nil {
			m.status = "mesh error: " + err.Error()
			return
		}
		m.points = pts
		m.status = label + "  " + ms.Status()
		return
	}
	prev := m.points
	m.points = pts
	m.openSketch("mesh")
	if ms, ok := m.active.(*sketch.Mesh); ok {
		m.status = label + "  " + ms.Status()
		return
	}
	m.points = prev
	logx.Logger().Warn("point set rejected", "label", label, "values", len(pts))
	m.status = fmt.Sprintf("%s  (%s)", label, m.status)
}
