// Package preview implements the bitview terminal previewer: a list of
// generated guide images and image files next to a braille rendering of the
// selected bitmap.
package preview

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/bitpaint"
	"github.com/gogpu/bitpaint/config"
	"github.com/gogpu/bitpaint/convert"
)

const sidebarWidth = 28

// Model is the bubbletea model of the previewer.
type Model struct {
	width  int
	height int

	cfg config.Config

	showSidebar bool
	helpVisible bool
	l           list.Model

	// current image
	name string
	base *bitpaint.Bitmap
	view *bitpaint.Bitmap

	// view operations, applied to base in this order
	edge    bool
	invert  bool
	quarter int

	status string
}

// New returns a previewer listing the built-in generators and the image
// files in dir.
func New(cfg config.Config, dir string) Model {
	m := Model{
		cfg:         cfg,
		showSidebar: true,
		helpVisible: true,
		status:      "bitview ready",
	}
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Images"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)

	srcs := builtinSources(cfg)
	if dir != "" {
		files, err := fileSources(dir, cfg.Render.Threshold)
		if err != nil {
			m.status = "read dir error: " + err.Error()
		}
		srcs = append(srcs, files...)
	}
	m.l.SetItems(listItems(srcs))
	if len(srcs) > 0 {
		m.load(srcs[0])
	}
	return m
}

// NewWithPath returns a previewer that starts with the image file at path.
func NewWithPath(cfg config.Config, path string) Model {
	m := New(cfg, filepath.Dir(path))
	m.load(fileSource(path, cfg.Render.Threshold))
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.l.SetSize(sidebarWidth-2, max(1, m.height-3))
	case tea.KeyMsg:
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.showSidebar = !m.showSidebar
		case "enter":
			if src, ok := m.l.SelectedItem().(source); ok {
				m.load(src)
			}
		case "i":
			m.invert = !m.invert
			m.apply()
			m.status = fmt.Sprintf("invert: %v", m.invert)
		case "e":
			m.edge = !m.edge
			m.apply()
			m.status = fmt.Sprintf("edges: %v", m.edge)
		case "r":
			m.quarter = (m.quarter + 1) % 4
			m.apply()
			m.status = fmt.Sprintf("rotation: %d°", 90*m.quarter)
		case "0":
			m.reset()
			m.apply()
			m.status = "view reset"
		case "s":
			m.save()
		case "h":
			m.helpVisible = !m.helpVisible
		}
	}
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) reset() {
	m.edge, m.invert, m.quarter = false, false, 0
}

// load replaces the current image and resets the view operations.
func (m *Model) load(src source) {
	bm, err := src.load()
	if err != nil {
		m.status = "load error: " + err.Error()
		return
	}
	m.name, m.base = src.title, bm
	m.reset()
	m.apply()
	m.status = fmt.Sprintf("loaded: %s  %dx%d  %d on", m.name, bm.Width(), bm.Height(), bm.Count())
}

func (m *Model) apply() {
	if m.base == nil {
		m.view = nil
		return
	}
	v := m.base
	if m.edge {
		v = v.EdgeDetect()
	}
	if m.invert {
		v = v.Invert()
	}
	if m.quarter != 0 {
		v = v.Rotate(float64(v.Width())/2, float64(v.Height())/2, float64(90*m.quarter), true, bitpaint.Black)
	}
	m.view = v
}

// save writes the current view as a PNG into the configured output
// directory, creating the directory if needed.
func (m *Model) save() {
	if m.view == nil {
		m.status = "nothing to save"
		return
	}
	p, err := m.cfg.Palette()
	if err != nil {
		m.status = "save error: " + err.Error()
		return
	}
	name := strings.TrimSuffix(m.name, filepath.Ext(m.name))
	name = strings.ReplaceAll(name, " ", "-") + ".png"
	if err := os.MkdirAll(m.cfg.Paths.Output, 0o755); err != nil {
		m.status = "save error: " + err.Error()
		return
	}
	path := filepath.Join(m.cfg.Paths.Output, name)
	if err := convert.SavePNG(path, m.view, p, nil); err != nil {
		m.status = "save error: " + err.Error()
		return
	}
	m.status = "saved: " + path
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	headerHeight := 1
	footerHeight := 1
	contentHeight := max(4, m.height-headerHeight-footerHeight)
	contentWidth := max(10, m.width)

	header := titleStyle.Render(" bitview ─ monochrome bitmap previewer ")
	header = lipgloss.NewStyle().Width(contentWidth).Render(header)

	imageWidth := contentWidth
	if m.showSidebar {
		imageWidth -= sidebarWidth + 1
	}
	imageWidth = max(8, imageWidth)

	var body string
	if m.view == nil {
		body = dimStyle.Render("no image")
	} else {
		body = boxStyle.Render(BrailleString(m.view, imageWidth-2, contentHeight-2))
	}
	body = lipgloss.NewStyle().Width(imageWidth).Height(contentHeight).Render(body)
	if m.showSidebar {
		sidebar := lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View())
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", body)
	}

	status := dimStyle.Render(" " + m.status + " ")
	footer := lipgloss.NewStyle().Width(contentWidth).Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, status, m.renderHelp()))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"Enter open",
		"Tab list",
		"i invert",
		"e edges",
		"r rotate",
		"0 reset",
		"s save",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
