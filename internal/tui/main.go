// Copyright (c) 2026 Neomantra Corp
//
// AppModel adapts the teacher's tabbed-page Bubble Tea shell
// (header/footer chrome, numbered page-focus keys, help view) from a
// multi-page download browser to a two-page store browser: Designations
// lists registered schemas, Query runs 4-D bounding-box lookups against
// loaded records.

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/neomantra/elucidator-go"
)

// Config configures the store browser TUI.
type Config struct {
	Store *elucidator.Store
}

// Run starts the Bubble Tea program over config's store until the user quits.
func Run(config Config) error {
	model := NewAppModel(config)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

//////////////////////////////////////////////////////////////////////////////

type AppModel struct {
	config Config

	pages       []tea.Model
	pageNames   []string
	currentPage int

	width            int
	height           int
	help             help.Model
	keyMap           AppKeyMap
	headerStyle      lipgloss.Style
	footerStyle      lipgloss.Style
	inactiveTabStyle lipgloss.Style
	activeTabStyle   lipgloss.Style
}

func NewAppModel(config Config) AppModel {
	m := AppModel{
		config:      config,
		currentPage: 0,
		pageNames:   []string{"1-Designations", "2-Query"},
		pages: []tea.Model{
			NewDesignationsPage(config),
			NewQueryPage(config),
		},
		width:  20,
		height: 10,
		help:   help.New(),
		keyMap: DefaultAppKeyMap(),
		headerStyle: lipgloss.NewStyle().
			Foreground(colorSand).
			Background(colorSlateDark),
		footerStyle: lipgloss.NewStyle().
			Foreground(colorSand).
			Background(colorSlateDark),
		inactiveTabStyle: lipgloss.NewStyle().
			Foreground(colorSand).
			Background(colorSlateDark),
		activeTabStyle: lipgloss.NewStyle().
			Foreground(colorSand).
			Background(colorTeal),
	}
	return m
}

///////////////////////////////////////////////////////////////////////////////
// AppKeyMap

type AppKeyMap struct {
	Quit              key.Binding
	FocusDesignations key.Binding
	FocusQuery        key.Binding
	Refresh           key.Binding
}

func DefaultAppKeyMap() AppKeyMap {
	return AppKeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
		FocusDesignations: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "designations"),
		),
		FocusQuery: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "query"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
	}
}

// FullHelp implements help.KeyMap.
func (m *AppKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{m.Quit, m.FocusDesignations, m.FocusQuery, m.Refresh}}
}

// ShortHelp implements help.KeyMap.
func (m AppKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{m.Quit, m.FocusDesignations, m.FocusQuery, m.Refresh}
}

//////////////////////////////////////////////////////////////////////////////
// BubbleTea interface

func (m AppModel) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, page := range m.pages {
		cmds = append(cmds, page.Init())
	}
	return tea.Batch(cmds...)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keyMap.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keyMap.FocusDesignations):
			m.currentPage = 0
		case key.Matches(msg, m.keyMap.FocusQuery):
			m.currentPage = 1
		case key.Matches(msg, m.keyMap.Refresh):
			var cmds []tea.Cmd
			for i := range m.pages {
				pageModel, cmd := m.pages[i].Update(RefreshMsg{})
				m.pages[i] = pageModel
				cmds = append(cmds, cmd)
			}
			return m, tea.Batch(cmds...)
		}

		// only the active page gets key events
		pageModel, cmd := m.pages[m.currentPage].Update(msg)
		m.pages[m.currentPage] = pageModel
		return m, cmd
	}

	var cmds []tea.Cmd
	for i := range m.pages {
		pageModel, cmd := m.pages[i].Update(msg)
		m.pages[i] = pageModel
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m AppModel) View() string {
	viewStr := m.headerView() + "\n"
	if m.currentPage < 0 || m.currentPage >= len(m.pages) {
		viewStr += "Error: bad page\n"
	} else {
		viewStr += m.pages[m.currentPage].View() + "\n"
	}
	viewStr += m.footerView()
	return viewStr
}

///////////////////////////////////////////////////////////////////////////////

func (m *AppModel) headerView() string {
	header := m.headerStyle.Render(" elucidator-tui   ")
	for i, name := range m.pageNames {
		if i == m.currentPage {
			header += m.activeTabStyle.Render("[ " + name + " ]")
		} else {
			header += m.inactiveTabStyle.Render("| " + name + " |")
		}
		header += m.headerStyle.Render(" ")
	}

	restOfLine := maxInt(0, m.width-lipgloss.Width(header))
	header += m.headerStyle.Render(strings.Repeat(" ", restOfLine))
	return header
}

func (m *AppModel) footerView() string {
	return m.help.View(&m.keyMap)
}
