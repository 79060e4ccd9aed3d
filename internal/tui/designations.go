// Copyright (c) 2026 Neomantra Corp
//
// DesignationsPageModel lists every registered designation and its member
// layout, adapted from the teacher's DatasetsPageModel (a two-table
// dataset/schema browser) down to a single table since a designation's
// members are already a small, synchronously-available list.

package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/neomantra/elucidator-go"
)

type DesignationsPageModel struct {
	config Config

	names []string
	tbl   table.Model

	width, height int
}

func NewDesignationsPage(config Config) DesignationsPageModel {
	tbl := table.New(table.WithColumns([]table.Column{
		{Title: "Designation", Width: 20},
		{Title: "Members", Width: 50},
	}), table.WithStyles(sharedTableStyles), table.WithFocused(true))

	m := DesignationsPageModel{
		config: config,
		width:  20,
		height: 10,
		tbl:    tbl,
	}
	m.reload()
	return m
}

func (m *DesignationsPageModel) reload() {
	names := m.config.Store.DesignationNames()
	sort.Strings(names)
	m.names = names

	rows := make([]table.Row, len(names))
	for i, name := range names {
		d, _ := m.config.Store.Designation(name)
		rows[i] = table.Row{name, describeMembers(d)}
	}
	m.tbl.SetRows(rows)
}

func describeMembers(d elucidator.Designation) string {
	parts := make([]string, len(d.Members))
	for i, mem := range d.Members {
		switch mem.Sizing.Kind {
		case elucidator.Singleton:
			parts[i] = fmt.Sprintf("%s:%s", mem.Identifier, mem.Dtype)
		case elucidator.Fixed:
			parts[i] = fmt.Sprintf("%s:%s[%d]", mem.Identifier, mem.Dtype, mem.Sizing.Count)
		case elucidator.Dynamic:
			parts[i] = fmt.Sprintf("%s:%s[]", mem.Identifier, mem.Dtype)
		}
	}
	return strings.Join(parts, ", ")
}

//////////////////////////////////////////////////////////////////////////////
// BubbleTea interface

func (m DesignationsPageModel) Init() tea.Cmd { return nil }

func (m DesignationsPageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil
	case RefreshMsg:
		m.reload()
		return m, nil
	}
	var cmd tea.Cmd
	m.tbl, cmd = m.tbl.Update(msg)
	return m, cmd
}

func (m DesignationsPageModel) View() string {
	return borderStyle.Render(m.tbl.View())
}

func (m *DesignationsPageModel) updateSizes() {
	m.tbl.SetHeight(maxInt(0, m.height-4))
	m.tbl.SetWidth(maxInt(0, m.width-2))
}

// RefreshMsg is broadcast to every page when the user asks for a refresh; the
// designations page reloads its table from the underlying store, picking up
// any designation registered since it was last built.
type RefreshMsg struct{}
