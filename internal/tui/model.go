package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sligocki/bbc/internal/engine"
	"github.com/sligocki/bbc/internal/machine"
	"github.com/sligocki/bbc/internal/tape"
)

const (
	maxSpeed     = 30
	historyLimit = 1_000_000
	headerHeight = 5
	footerHeight = 1
)

var (
	hintStyle   = lipgloss.NewStyle().Faint(true)
	valueStyle  = lipgloss.NewStyle().Bold(true)
	stateStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	failedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	barStyle    = lipgloss.NewStyle().Reverse(true).Padding(0, 1)
)

type Model struct {
	conf    tape.Configuration
	machine *machine.Machine
	blocks  []tape.Tape
	speed   uint8
	reason  engine.StopReason
	history *History

	viewport    viewport.Model
	width       int
	height      int
	viewportSet bool
}

func NewModel(conf tape.Configuration, m *machine.Machine, blocks []tape.Tape, speed uint8) Model {
	if speed > maxSpeed {
		speed = maxSpeed
	}
	return Model{
		conf:    conf,
		machine: m,
		blocks:  blocks,
		speed:   speed,
		reason:  engine.StopBudgetReached,
		history: NewHistory(historyLimit),
	}
}

func (m Model) Init() tea.Cmd { return nil }

// canStep reports whether advancing is allowed: only a budget stop is
// resumable, every other stop reason requires a rewind first.
func (m Model) canStep() bool {
	return m.reason == engine.StopBudgetReached
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.height = typed.Height
		content := typed.Height - headerHeight - footerHeight
		if content < 1 {
			content = 1
		}
		if !m.viewportSet {
			m.viewport = viewport.New(typed.Width, content)
			m.viewportSet = true
		} else {
			m.viewport.Width = typed.Width
			m.viewport.Height = content
		}
		m.viewport.SetContent(m.renderConfiguration())
		return m, nil
	case tea.KeyMsg:
		switch typed.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "j":
			return m.stepForward(), nil
		case "k":
			return m.rewind(), nil
		case "h":
			if m.speed > 0 {
				m.speed--
			}
			return m, nil
		case "l":
			if m.speed < maxSpeed {
				m.speed++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) stepForward() Model {
	if !m.canStep() {
		return m
	}
	m.history.Push(snapshot{speed: m.speed, reason: m.reason, conf: m.conf.Clone()})
	m.reason = engine.StepMany(&m.conf, m.machine, m.blocks, engine.StepConfig{
		StepLimit: m.conf.Steps + uint64(1)<<m.speed,
	})
	m.viewport.SetContent(m.renderConfiguration())
	return m
}

func (m Model) rewind() Model {
	s, ok := m.history.Pop()
	if !ok {
		return m
	}
	m.conf = s.conf
	m.reason = s.reason
	m.viewport.SetContent(m.renderConfiguration())
	return m
}

func (m Model) renderConfiguration() string {
	rendered := tape.FormatStyled(m.conf)
	if m.width > 0 {
		return lipgloss.NewStyle().Width(m.width).Render(rendered)
	}
	return rendered
}

func (m Model) View() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  speed: 2^%d == %s\n",
		hintStyle.Render("j: step  k: rewind  h: slower  l: faster  q: quit"),
		m.speed,
		valueStyle.Render(fmt.Sprintf("%d", uint64(1)<<m.speed)))
	fmt.Fprintf(&b, "history: %s\n", valueStyle.Render(fmt.Sprintf("%d", m.history.Len())))
	b.WriteString(speedStack(m.history))
	b.WriteString("\n")

	state := stateStyle.Render(m.reason.String())
	if !m.canStep() {
		state = failedStyle.Render(m.reason.String())
	}
	fmt.Fprintf(&b, "state: %s\n\n", state)

	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(barStyle.Render(fmt.Sprintf("step %d", m.conf.Steps)))
	return b.String()
}

// speedStack renders the recent history's speeds as letters, 'a' for 2^0
// upward, newest last.
func speedStack(h *History) string {
	var b strings.Builder
	for _, speed := range h.Speeds(100) {
		b.WriteByte('a' + speed)
	}
	return b.String()
}
