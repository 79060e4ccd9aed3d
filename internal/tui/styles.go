// Copyright (c) 2026 Neomantra Corp

package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

var (
	colorSlateDark  = lipgloss.Color("#233043")
	colorSlateLight = lipgloss.Color("#4F6D7A")
	colorAmber      = lipgloss.Color("#C9682B")
	colorTeal       = lipgloss.Color("#3E8E82")
	colorSand       = lipgloss.Color("#F0D9A8")

	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true).
			BorderForeground(colorSlateLight)

	sharedTableStyles = table.Styles{
		Header:   lipgloss.NewStyle().Bold(true).Foreground(colorAmber).Padding(0, 1),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(colorTeal),
		Cell:     lipgloss.NewStyle().Padding(0, 1),
	}

	errorStyle = lipgloss.NewStyle().Foreground(colorAmber)
)
