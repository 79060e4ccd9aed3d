// Copyright (c) 2026 Neomantra Corp
//
// QueryPageModel is a small form over Store.GetInBB: tab between the 4-D box
// fields, designation and epsilon, and press enter to run the query and
// populate a results table. Adapted from the teacher's page-as-tea.Model
// convention; the text-input form itself has no analogue in the teacher
// (dbn-go-tui never takes free-form numeric input), so its layout follows
// bubbles/textinput's own documented multi-field pattern instead.

package tui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/neomantra/elucidator-go"
)

var queryFieldLabels = []string{
	"designation", "epsilon",
	"xmin", "xmax", "ymin", "ymax", "zmin", "zmax", "tmin", "tmax",
}

type QueryPageModel struct {
	config Config

	inputs   []textinput.Model
	focused  int
	lastErr  error
	resTable table.Model

	width, height int
}

func NewQueryPage(config Config) QueryPageModel {
	inputs := make([]textinput.Model, len(queryFieldLabels))
	for i, label := range queryFieldLabels {
		ti := textinput.New()
		ti.Placeholder = label
		ti.Prompt = label + ": "
		if i >= 1 {
			ti.SetValue("0")
		}
		inputs[i] = ti
	}
	inputs[0].Focus()

	tbl := table.New(table.WithStyles(sharedTableStyles))

	return QueryPageModel{
		config:   config,
		inputs:   inputs,
		focused:  0,
		resTable: tbl,
		width:    20,
		height:   10,
	}
}

//////////////////////////////////////////////////////////////////////////////
// BubbleTea interface

func (m QueryPageModel) Init() tea.Cmd { return nil }

func (m QueryPageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resTable.SetWidth(maxInt(0, m.width-2))
		m.resTable.SetHeight(maxInt(0, m.height-2-len(m.inputs)))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			m.focusNext()
			return m, nil
		case "shift+tab", "up":
			m.focusPrev()
			return m, nil
		case "enter":
			m.runQuery()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m *QueryPageModel) focusNext() {
	m.inputs[m.focused].Blur()
	m.focused = (m.focused + 1) % len(m.inputs)
	m.inputs[m.focused].Focus()
}

func (m *QueryPageModel) focusPrev() {
	m.inputs[m.focused].Blur()
	m.focused = (m.focused - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focused].Focus()
}

func (m *QueryPageModel) runQuery() {
	designation := strings.TrimSpace(m.inputs[0].Value())
	epsilon, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[1].Value()), 64)
	if err != nil {
		m.lastErr = fmt.Errorf("epsilon: %w", err)
		return
	}
	coords := make([]float64, 8)
	for i := 0; i < 8; i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[2+i].Value()), 64)
		if err != nil {
			m.lastErr = fmt.Errorf("%s: %w", queryFieldLabels[2+i], err)
			return
		}
		coords[i] = v
	}
	bb := elucidator.Box{
		XMin: coords[0], XMax: coords[1],
		YMin: coords[2], YMax: coords[3],
		ZMin: coords[4], ZMax: coords[5],
		TMin: coords[6], TMax: coords[7],
	}

	records, err := m.config.Store.GetInBB(bb, designation, epsilon)
	if err != nil {
		m.lastErr = err
		m.resTable.SetColumns(nil)
		m.resTable.SetRows(nil)
		return
	}
	m.lastErr = nil
	m.resTable.SetColumns(resultColumns(records))
	m.resTable.SetRows(resultRows(records))
}

func resultColumns(records []map[string]elucidator.Value) []table.Column {
	fieldSet := make(map[string]bool)
	for _, rec := range records {
		for field := range rec {
			fieldSet[field] = true
		}
	}
	fields := make([]string, 0, len(fieldSet))
	for field := range fieldSet {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	cols := make([]table.Column, len(fields))
	for i, f := range fields {
		cols[i] = table.Column{Title: f, Width: 16}
	}
	return cols
}

func resultRows(records []map[string]elucidator.Value) []table.Row {
	cols := resultColumns(records)
	rows := make([]table.Row, len(records))
	for i, rec := range records {
		row := make(table.Row, len(cols))
		for j, col := range cols {
			if v, ok := rec[col.Title]; ok {
				row[j] = renderValue(v)
			}
		}
		rows[i] = row
	}
	return rows
}

// renderValue is the TUI's counterpart to the CLI's formatValue, kept
// independent since the two presentation layers have no shared dependency.
// Every branch uses the As*/AsVec* accessor matching the value's own Dtype,
// the only conversion the lattice guarantees succeeds for every numeric kind
// (including u64/i64, which cannot widen into f64).
func renderValue(v elucidator.Value) string {
	if v.Dtype() == elucidator.Str {
		s, _ := v.AsString()
		return s
	}
	if v.IsArray() {
		return "[" + renderArray(v) + "]"
	}
	switch v.Dtype() {
	case elucidator.Byte:
		x, _ := v.AsU8()
		return strconv.FormatUint(uint64(x), 10)
	case elucidator.U16:
		x, _ := v.AsU16()
		return strconv.FormatUint(uint64(x), 10)
	case elucidator.U32:
		x, _ := v.AsU32()
		return strconv.FormatUint(uint64(x), 10)
	case elucidator.U64:
		x, _ := v.AsU64()
		return strconv.FormatUint(x, 10)
	case elucidator.I8:
		x, _ := v.AsI8()
		return strconv.FormatInt(int64(x), 10)
	case elucidator.I16:
		x, _ := v.AsI16()
		return strconv.FormatInt(int64(x), 10)
	case elucidator.I32:
		x, _ := v.AsI32()
		return strconv.FormatInt(int64(x), 10)
	case elucidator.I64:
		x, _ := v.AsI64()
		return strconv.FormatInt(x, 10)
	case elucidator.F32:
		x, _ := v.AsF32()
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case elucidator.F64:
		x, _ := v.AsF64()
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func renderArray(v elucidator.Value) string {
	var parts []string
	switch v.Dtype() {
	case elucidator.Byte:
		xs, _ := v.AsVecU8()
		for _, x := range xs {
			parts = append(parts, strconv.FormatUint(uint64(x), 10))
		}
	case elucidator.U16:
		xs, _ := v.AsVecU16()
		for _, x := range xs {
			parts = append(parts, strconv.FormatUint(uint64(x), 10))
		}
	case elucidator.U32:
		xs, _ := v.AsVecU32()
		for _, x := range xs {
			parts = append(parts, strconv.FormatUint(uint64(x), 10))
		}
	case elucidator.U64:
		xs, _ := v.AsVecU64()
		for _, x := range xs {
			parts = append(parts, strconv.FormatUint(x, 10))
		}
	case elucidator.I8:
		xs, _ := v.AsVecI8()
		for _, x := range xs {
			parts = append(parts, strconv.FormatInt(int64(x), 10))
		}
	case elucidator.I16:
		xs, _ := v.AsVecI16()
		for _, x := range xs {
			parts = append(parts, strconv.FormatInt(int64(x), 10))
		}
	case elucidator.I32:
		xs, _ := v.AsVecI32()
		for _, x := range xs {
			parts = append(parts, strconv.FormatInt(int64(x), 10))
		}
	case elucidator.I64:
		xs, _ := v.AsVecI64()
		for _, x := range xs {
			parts = append(parts, strconv.FormatInt(x, 10))
		}
	case elucidator.F32:
		xs, _ := v.AsVecF32()
		for _, x := range xs {
			parts = append(parts, strconv.FormatFloat(float64(x), 'g', -1, 32))
		}
	case elucidator.F64:
		xs, _ := v.AsVecF64()
		for _, x := range xs {
			parts = append(parts, strconv.FormatFloat(x, 'g', -1, 64))
		}
	}
	return strings.Join(parts, ",")
}

func (m QueryPageModel) View() string {
	var b strings.Builder
	for _, ti := range m.inputs {
		b.WriteString(ti.View())
		b.WriteString("\n")
	}
	if m.lastErr != nil {
		b.WriteString(errorStyle.Render(m.lastErr.Error()))
		b.WriteString("\n")
	}
	b.WriteString(borderStyle.Render(m.resTable.View()))
	return lipgloss.NewStyle().Render(b.String())
}
