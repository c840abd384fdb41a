// Package tui implements the interactive menu shell of the assistant.
package tui

import (
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/R4ns0m101/physika/internal/calculator"
	"github.com/R4ns0m101/physika/internal/history"
	"github.com/R4ns0m101/physika/internal/kinematics"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00cccc")).Bold(true)
	subStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
	pointerSty  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff")).Bold(true)
	activeSty   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true)
	accentSty   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff88ff"))
	inactiveSty = lipgloss.NewStyle().Foreground(lipgloss.Color("#555566"))
	faintSty    = lipgloss.NewStyle().Foreground(lipgloss.Color("#444455"))
	keySty      = lipgloss.NewStyle().Foreground(lipgloss.Color("#00aaaa")).Bold(true)
	errSty      = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444")).Bold(true)
	okSty       = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff88")).Bold(true)
)

const (
	stateMenu = iota
	stateTopics
	stateInput
	stateResult
	stateHistory
	stateClear
)

var menuItems = []string{"Motion Calculations", "Show History", "Clear History", "Exit"}

type model struct {
	state, cursor int

	calc  *calculator.Calculator
	log   *history.Log
	limit int

	topics []string

	rule       kinematics.Rule
	quantities []kinematics.Quantity
	inputs     *kinematics.InputSet
	qCursor    int
	editing    bool
	editBuf    string

	result   *kinematics.Result
	solveErr error

	confirmBuf string
	status     string

	width, height int
}

func newModel(calc *calculator.Calculator, hist *history.Log, limit int) model {
	return model{
		calc:   calc,
		log:    hist,
		limit:  limit,
		topics: calc.Registry().Topics(),
		width:  80, height: 24,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateTopics:
		return m.topicsKey(msg)
	case stateInput:
		return m.inputKey(msg)
	case stateResult:
		return m.resultKey(msg)
	case stateHistory:
		return m.historyKey(msg)
	case stateClear:
		return m.clearKey(msg)
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.status = ""
		switch m.cursor {
		case 0:
			m.state, m.cursor = stateTopics, 0
		case 1:
			m.state = stateHistory
		case 2:
			m.state, m.confirmBuf = stateClear, ""
		case 3:
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) topicsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.state, m.cursor = stateMenu, 0
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.topics)-1 {
			m.cursor++
		}
	case "enter", " ":
		rule, err := m.calc.Registry().Get(m.topics[m.cursor])
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.rule = rule
		m.quantities = rule.Quantities()
		m.inputs = kinematics.NewInputSet(m.quantities...)
		m.state, m.qCursor = stateInput, 0
		m.editing, m.editBuf = false, ""
	}
	return m, nil
}

func (m model) inputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			q := m.quantities[m.qCursor]
			buf := strings.TrimSpace(m.editBuf)
			if buf == "" {
				m.inputs.Unset(q)
			} else {
				val, err := strconv.ParseFloat(buf, 64)
				if err != nil {
					m.status = "invalid number, enter a value or leave empty for unknown"
					m.editBuf = ""
					return m, nil
				}
				m.inputs.Set(q, val)
			}
			m.editing, m.editBuf, m.status = false, "", ""
		case "esc":
			m.editing, m.editBuf = false, ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				c := msg.String()[0]
				if (c >= '0' && c <= '9') || c == '.' || c == '-' {
					m.editBuf += string(c)
				}
			}
		}
		return m, nil
	}
	switch msg.String() {
	case "q", "esc":
		m.state, m.cursor, m.status = stateTopics, 0, ""
	case "up", "k":
		if m.qCursor > 0 {
			m.qCursor--
		}
	case "down", "j":
		if m.qCursor < len(m.quantities)-1 {
			m.qCursor++
		}
	case "enter", " ":
		m.editing = true
		if v, ok := m.inputs.Get(m.quantities[m.qCursor]); ok {
			m.editBuf = fmt.Sprintf("%g", v)
		} else {
			m.editBuf = ""
		}
	case "u":
		m.inputs.Unset(m.quantities[m.qCursor])
	case "s":
		m.result, m.solveErr = m.calc.Solve(m.rule.Topic(), m.inputs)
		m.state = stateResult
	}
	return m, nil
}

func (m model) resultKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "r":
		// back to the same topic with the inputs kept
		m.state, m.status = stateInput, ""
	default:
		m.state, m.cursor = stateMenu, 0
	}
	return m, nil
}

func (m model) historyKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.state, m.cursor = stateMenu, 0
	return m, nil
}

func (m model) clearKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if strings.EqualFold(strings.TrimSpace(m.confirmBuf), "yes") {
			if err := m.log.Clear(); err != nil {
				m.status = err.Error()
			} else {
				m.status = "history cleared"
			}
		} else {
			m.status = "history not cleared"
		}
		m.state, m.cursor, m.confirmBuf = stateMenu, 0, ""
	case "esc":
		m.state, m.cursor, m.confirmBuf = stateMenu, 0, ""
	case "backspace":
		if len(m.confirmBuf) > 0 {
			m.confirmBuf = m.confirmBuf[:len(m.confirmBuf)-1]
		}
	default:
		if len(msg.String()) == 1 {
			m.confirmBuf += msg.String()
		}
	}
	return m, nil
}

func (m model) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateTopics:
		return m.viewTopics()
	case stateInput:
		return m.viewInput()
	case stateResult:
		return m.viewResult()
	case stateHistory:
		return m.viewHistory()
	case stateClear:
		return m.viewClear()
	}
	return ""
}

func (m model) header(title, sub string) string {
	return "\n\n    " + titleStyle.Render(title) + "\n    " + subStyle.Render(sub) +
		"\n    " + subStyle.Render("─────────────────────────") + "\n\n"
}

func (m model) hints(pairs ...string) string {
	var b strings.Builder
	b.WriteString("\n    ")
	for i := 0; i+1 < len(pairs); i += 2 {
		if i > 0 {
			b.WriteString(subStyle.Render("  "))
		}
		b.WriteString(keySty.Render(pairs[i]))
		b.WriteString(subStyle.Render(" " + pairs[i+1]))
	}
	b.WriteString("\n")
	return b.String()
}

func (m model) viewMenu() string {
	var b strings.Builder
	b.WriteString(m.header("PHYSIKA", "high school physics assistant"))
	for i, item := range menuItems {
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("    %s %s\n", pointerSty.Render("▸"), activeSty.Render(item)))
		} else {
			b.WriteString(fmt.Sprintf("      %s\n", inactiveSty.Render(item)))
		}
	}
	if m.status != "" {
		b.WriteString("\n    " + okSty.Render(m.status) + "\n")
	}
	b.WriteString(m.hints("j/k", "navigate", "enter", "select", "q", "quit"))
	return b.String()
}

func (m model) viewTopics() string {
	var b strings.Builder
	b.WriteString(m.header("MOTION", "choose a formula family"))
	for i, topic := range m.topics {
		rule, err := m.calc.Registry().Get(topic)
		if err != nil {
			continue
		}
		desc := strings.Join(rule.Formulas(), "   ")
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n", pointerSty.Render("▸"),
				activeSty.Render(fmt.Sprintf("%-20s", rule.Title())), accentSty.Render(desc)))
		} else {
			b.WriteString(fmt.Sprintf("      %s  %s\n",
				inactiveSty.Render(fmt.Sprintf("%-20s", rule.Title())), faintSty.Render(desc)))
		}
	}
	b.WriteString(m.hints("j/k", "navigate", "enter", "select", "esc", "back"))
	return b.String()
}

func (m model) viewInput() string {
	var b strings.Builder
	b.WriteString(m.header(strings.ToUpper(m.rule.Title()), strings.Join(m.rule.Formulas(), "   ")))
	b.WriteString("    " + subStyle.Render("enter known values, leave unknown empty") + "\n\n")
	for i, q := range m.quantities {
		name := fmt.Sprintf("%s (%s)", kinematics.Label(q), kinematics.Unit(q))
		valStr := "unknown"
		if v, ok := m.inputs.Get(q); ok {
			valStr = fmt.Sprintf("%g", v)
		}
		if m.editing && i == m.qCursor {
			valStr = m.editBuf + "_"
		}
		if i == m.qCursor {
			b.WriteString(fmt.Sprintf("    %s %s %s\n", pointerSty.Render("▸"),
				activeSty.Render(fmt.Sprintf("%-24s", name)), accentSty.Render(valStr)))
		} else {
			b.WriteString(fmt.Sprintf("      %s %s\n",
				inactiveSty.Render(fmt.Sprintf("%-24s", name)), faintSty.Render(valStr)))
		}
	}
	if m.status != "" {
		b.WriteString("\n    " + errSty.Render(m.status) + "\n")
	}
	b.WriteString(m.hints("enter", "edit", "u", "mark unknown", "s", "solve", "esc", "back"))
	return b.String()
}

func (m model) viewResult() string {
	var b strings.Builder
	b.WriteString(m.header("RESULT", m.rule.Title()))
	if m.solveErr != nil {
		b.WriteString("    " + errSty.Render("calculation error: "+m.solveErr.Error()) + "\n")
	} else {
		if m.result.Formula != "" {
			b.WriteString("    " + subStyle.Render("formula: ") + accentSty.Render(m.result.Formula) + "\n\n")
		}
		for _, q := range m.rule.Quantities() {
			if v, ok := m.result.Values[q]; ok {
				b.WriteString(fmt.Sprintf("    %s %s\n",
					activeSty.Render(fmt.Sprintf("%-24s", kinematics.Label(q))),
					okSty.Render(fmt.Sprintf("%.2f %s", v, kinematics.Unit(q)))))
			}
		}
	}
	b.WriteString(m.hints("r", "adjust inputs", "any key", "menu"))
	return b.String()
}

func (m model) viewHistory() string {
	var b strings.Builder
	entries := m.log.Tail(m.limit)
	b.WriteString(m.header("HISTORY", fmt.Sprintf("last %d of %d calculations", len(entries), m.log.Len())))
	if len(entries) == 0 {
		b.WriteString("    " + subStyle.Render("no calculation history") + "\n")
	}
	for _, e := range entries {
		b.WriteString(fmt.Sprintf("    %s  %s\n", faintSty.Render(e.Timestamp), activeSty.Render(e.Topic)))
		b.WriteString("      " + subStyle.Render("inputs:  "+formatInputs(e.Inputs)) + "\n")
		b.WriteString("      " + subStyle.Render("results: "+formatResults(e.Results)) + "\n")
	}
	b.WriteString(m.hints("any key", "back"))
	return b.String()
}

func (m model) viewClear() string {
	var b strings.Builder
	b.WriteString(m.header("CLEAR HISTORY", fmt.Sprintf("%d entries will be removed", m.log.Len())))
	b.WriteString("    " + activeSty.Render("type \"yes\" to confirm: ") + accentSty.Render(m.confirmBuf+"_") + "\n")
	b.WriteString(m.hints("enter", "confirm", "esc", "cancel"))
	return b.String()
}

func formatInputs(inputs map[string]*float64) string {
	parts := make([]string, 0, len(inputs))
	for name, v := range inputs {
		if v == nil {
			parts = append(parts, name+"=?")
		} else {
			parts = append(parts, fmt.Sprintf("%s=%g", name, *v))
		}
	}
	sort.Strings(parts)
	return strings.Join(parts, " ")
}

func formatResults(results map[string]any) string {
	parts := make([]string, 0, len(results))
	for name, v := range results {
		switch val := v.(type) {
		case float64:
			parts = append(parts, fmt.Sprintf("%s=%.2f", name, val))
		default:
			parts = append(parts, fmt.Sprintf("%s=%v", name, val))
		}
	}
	sort.Strings(parts)
	return strings.Join(parts, " ")
}

// Run starts the interactive shell and blocks until the user exits. The
// history log is flushed on the way out regardless of how the program
// ends.
func Run(calc *calculator.Calculator, hist *history.Log, limit int) error {
	defer func() {
		if err := hist.Save(); err != nil {
			log.Printf("warning: could not save history: %v", err)
		}
	}()
	_, err := tea.NewProgram(newModel(calc, hist, limit), tea.WithAltScreen()).Run()
	return err
}
