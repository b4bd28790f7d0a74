package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/JLReitz/ShmitWare/data"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#5F5FD7")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#87CEEB"))

	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	hexStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD787"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	focusedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#5F5FD7"))
)

// editableField indexes one mutable scalar slot of the packet.
type editableField struct {
	index int
	field data.Field
}

type interactiveModel struct {
	name     string
	packet   *data.Packet
	editable []editableField
	inputs   []textinput.Model
	focus    int
	parseErr string
}

func runInteractive(schema *schemaFile, layout *data.Layout) error {
	packet := data.NewPacket(layout)

	var editable []editableField
	for i := 0; i < layout.NumFields(); i++ {
		f := layout.Field(i)
		if f.Kind == data.KindConstBits || f.Kind == data.KindPacket {
			continue
		}
		editable = append(editable, editableField{index: i, field: f})
	}

	inputs := make([]textinput.Model, len(editable))
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = "0"
		ti.CharLimit = 20
		ti.Width = 20
		if i == 0 {
			ti.Focus()
		}
		inputs[i] = ti
	}

	m := interactiveModel{
		name:     schema.Name,
		packet:   packet,
		editable: editable,
		inputs:   inputs,
	}
	_, err := tea.NewProgram(m).Run()
	return err
}

func (m interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "down", "enter":
			m.setFocus((m.focus + 1) % max(len(m.inputs), 1))
			return m, nil
		case "shift+tab", "up":
			m.setFocus((m.focus - 1 + max(len(m.inputs), 1)) % max(len(m.inputs), 1))
			return m, nil
		}
	}

	var cmd tea.Cmd
	if len(m.inputs) > 0 {
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		m.applyInputs()
	}
	return m, cmd
}

func (m *interactiveModel) setFocus(i int) {
	if len(m.inputs) == 0 {
		return
	}
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

// applyInputs reparses every input into the packet, noting the first bad
// value.
func (m *interactiveModel) applyInputs() {
	m.parseErr = ""
	for i, ef := range m.editable {
		raw := strings.TrimSpace(m.inputs[i].Value())
		if raw == "" {
			m.packet.SetUint(ef.index, 0)
			continue
		}
		v, err := strconv.ParseUint(raw, 0, 64)
		if err != nil {
			if b, berr := strconv.ParseBool(raw); berr == nil {
				m.packet.SetBool(ef.index, b)
				continue
			}
			if m.parseErr == "" {
				m.parseErr = fmt.Sprintf("%s: %q is not a value", m.label(ef), raw)
			}
			continue
		}
		m.packet.SetUint(ef.index, v)
	}
}

func (m *interactiveModel) label(ef editableField) string {
	if ef.field.Name != "" {
		return ef.field.Name
	}
	return fmt.Sprintf("field#%d", ef.index)
}

func (m interactiveModel) View() string {
	var b strings.Builder

	name := m.name
	if name == "" {
		name = "packet"
	}
	layout := m.packet.Layout()
	b.WriteString(titleStyle.Render(fmt.Sprintf(" %s — %d bits / %d bytes ",
		name, layout.SizeBits(), layout.SizeBytes())))
	b.WriteString("\n\n")

	for i, ef := range m.editable {
		marker := "  "
		label := fmt.Sprintf("%-16s %-8s %3d bits", m.label(ef), ef.field.Kind, ef.field.SizeBits)
		if i == m.focus {
			marker = "> "
			label = focusedStyle.Render(label)
		}
		b.WriteString(marker + label + "  " + m.inputs[i].View() + "\n")
	}

	buf := make([]byte, layout.SizeBytes())
	cursor := uint(0)
	b.WriteString("\n" + headerStyle.Render("encoded") + "\n")
	if r := data.EncodePacket(m.packet, buf, &cursor); r.IsFailure() {
		b.WriteString(errorStyle.Render("encoding failed") + "\n")
	} else {
		b.WriteString(hexStyle.Render(hexDump(buf)) + "\n")
	}

	if m.parseErr != "" {
		b.WriteString(errorStyle.Render(m.parseErr) + "\n")
	}
	b.WriteString("\n" + helpStyle.Render("tab/shift+tab: move · esc: quit") + "\n")
	return b.String()
}
