// internal/tui/browse.go
// Package tui provides an interactive Bubble Tea browser for paging through
// the chunks of a single document.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mwiater/temno/internal/chunker"
	"github.com/mwiater/temno/internal/util"
)

// maxTitleRunes bounds the file name shown in the header.
const maxTitleRunes = 60

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	metaStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// model is the Bubble Tea model for the chunk browser.
type model struct {
	file     string
	method   chunker.Method
	chunks   []chunker.Chunk
	index    int
	viewport viewport.Model
	ready    bool
	width    int
	height   int
}

// initialModel creates a browser over the chunks of one file.
func initialModel(file string, method chunker.Method, chunks []chunker.Chunk) model {
	vp := viewport.New(80, 20)
	m := model{
		file:     file,
		method:   method,
		chunks:   chunks,
		viewport: vp,
	}
	m.setChunkContent()
	return m
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "left", "h":
			if m.index > 0 {
				m.index--
				m.setChunkContent()
			}
			return m, nil
		case "right", "l":
			if m.index < len(m.chunks)-1 {
				m.index++
				m.setChunkContent()
			}
			return m, nil
		case "home", "g":
			m.index = 0
			m.setChunkContent()
			return m, nil
		case "end", "G":
			if len(m.chunks) > 0 {
				m.index = len(m.chunks) - 1
				m.setChunkContent()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		headerHeight := 2
		footerHeight := 1
		m.viewport.Width = msg.Width
		m.viewport.Height = util.Max(msg.Height-headerHeight-footerHeight, 1)
		m.ready = true
		m.setChunkContent()
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m model) View() string {
	title := util.TruncateRunes(m.file, maxTitleRunes)
	if len(m.chunks) == 0 {
		return headerStyle.Render(title) + "\n" + metaStyle.Render("No chunks to browse.") + "\n"
	}
	c := m.chunks[m.index]
	header := headerStyle.Render(title) + "\n" + metaStyle.Render(fmt.Sprintf(
		"chunk %d/%d · method=%s · words=%d · offset=%d",
		m.index+1, len(m.chunks), m.method, c.Words, c.Offset,
	))
	footer := footerStyle.Render("←/→ chunk · ↑/↓ scroll · q quit")
	return header + "\n" + m.viewport.View() + "\n" + footer
}

func (m *model) setChunkContent() {
	if len(m.chunks) == 0 {
		m.viewport.SetContent("")
		return
	}
	m.viewport.SetContent(m.chunks[m.index].Text)
	m.viewport.GotoTop()
}

// Browse opens the interactive chunk browser for one file.
func Browse(file string, method chunker.Method, chunks []chunker.Chunk) error {
	p := tea.NewProgram(initialModel(file, method, chunks), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
