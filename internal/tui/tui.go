// Package tui is the terminal front end: a narration log, a status
// panel, and a one-line input that doubles as a push-to-talk control.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/ewhitmore/blindkeep/internal/engine"
)

const (
	agentName       = "Narrator"
	placeholderText = "Speak (ctrl+t) or type your command here..."
)

var (
	logPanelStyle = lipgloss.NewStyle().
			PaddingTop(1).
			PaddingBottom(1).
			PaddingLeft(3)

	metaPanelStyle = lipgloss.NewStyle().
			PaddingTop(1).
			PaddingRight(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	narratorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	listeningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")). // yellow
			Bold(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

type engineEventMsg struct {
	event engine.Event
}

// logLine is one rendered entry in the narration log.
type logLine struct {
	speaker string // "", "Narrator", "You"
	text    string
	style   lipgloss.Style
}

// Model is the BubbleTea model that runs the UI.
// https://github.com/charmbracelet/bubbletea
type Model struct {
	engine *engine.Engine

	logViewport  viewport.Model
	metaViewport viewport.Model
	textarea     textarea.Model

	lines     []logLine
	partial   string // accumulating capture deltas
	listening bool

	mode     engine.Mode
	playerHP int
	bossHP   int

	ready  bool
	width  int
	height int
}

// New creates the UI for an engine whose Run loop is already started.
func New(e *engine.Engine) Model {
	ta := textarea.New()
	ta.Placeholder = placeholderText
	ta.Focus()
	ta.Prompt = promptStyle.Render(":: ")
	ta.CharLimit = 500
	ta.SetWidth(50)
	ta.SetHeight(1)
	ta.ShowLineNumbers = false

	logVp := viewport.New(50, 20)
	logVp.MouseWheelEnabled = true

	return Model{
		engine:       e,
		textarea:     ta,
		logViewport:  logVp,
		metaViewport: viewport.New(20, 20),
		mode:         engine.ModeExploring,
		playerHP:     100,
		bossHP:       -1,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.waitForEvent())
}

// waitForEvent blocks on the engine's event stream and re-arms itself
// from Update after every delivery.
func (m Model) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.engine.Events()
		if !ok {
			return tea.Quit()
		}
		return engineEventMsg{event: ev}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		mvCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		logWidth := int(float64(m.width)*0.75) - 4
		metaWidth := m.width - logWidth - 6

		m.logViewport.Width = logWidth - 2
		m.logViewport.Height = m.height - 6
		m.metaViewport.Width = metaWidth - 2
		m.metaViewport.Height = m.height - 4
		m.textarea.SetWidth(logWidth - 4)

		m.ready = true
		m.writeLogContent()
		m.metaViewport.SetContent(m.writeMetadata())

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyCtrlT:
			// Push-to-talk toggle: first press starts listening, second
			// finalizes the transcript.
			if m.listening {
				m.engine.StopCapture()
				m.listening = false
			} else {
				m.engine.StartCapture()
				m.listening = true
				m.partial = ""
			}
			m.metaViewport.SetContent(m.writeMetadata())
			return m, nil

		case tea.KeyEnter:
			input := strings.TrimSpace(m.textarea.Value())
			if input == "" {
				return m, nil
			}
			m.textarea.Reset()
			m.appendLine(logLine{speaker: "You", text: input, style: userStyle})
			m.engine.Submit(input)
			return m, nil
		}

	case engineEventMsg:
		m.applyEvent(msg.event)
		return m, m.waitForEvent()
	}

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.logViewport, vpCmd = m.logViewport.Update(msg)
	m.metaViewport, mvCmd = m.metaViewport.Update(msg)

	return m, tea.Batch(tiCmd, vpCmd, mvCmd)
}

func (m *Model) applyEvent(ev engine.Event) {
	m.mode = ev.Mode
	m.playerHP = ev.PlayerHP
	m.bossHP = ev.BossHP

	switch ev.Kind {
	case engine.EventNarration:
		m.appendLine(logLine{speaker: agentName, text: ev.Text, style: narratorStyle})

	case engine.EventTranscriptDelta:
		m.partial += ev.Text
		m.writeLogContent()

	case engine.EventTranscript:
		m.partial = ""
		m.listening = false
		m.appendLine(logLine{speaker: "You", text: ev.Text, style: userStyle})

	case engine.EventStatus:
		m.appendLine(logLine{text: ev.Text, style: statusStyle})

	case engine.EventError:
		m.partial = ""
		m.listening = false
		m.appendLine(logLine{text: ev.Text, style: errorStyle})

	case engine.EventGameOver, engine.EventVictory:
		m.appendLine(logLine{text: ev.Text, style: titleStyle})
	}

	m.metaViewport.SetContent(m.writeMetadata())
}

func (m *Model) appendLine(line logLine) {
	m.lines = append(m.lines, line)
	m.writeLogContent()
}

// writeLogContent reformats the whole log for the current width, the
// way the viewport expects on resize.
func (m *Model) writeLogContent() {
	logWidth := m.logViewport.Width - 6
	if logWidth < 10 {
		logWidth = 10
	}

	var content strings.Builder
	content.WriteString(titleStyle.Render("BLINDKEEP") + "\n\n")
	content.WriteString("You cannot see. Listen, and speak your moves.\n\n")
	content.WriteString(separatorStyle.Render(strings.Repeat("─", logWidth)) + "\n\n")

	for _, line := range m.lines {
		if line.speaker != "" {
			prefix := line.style.Render(line.speaker + ": ")
			content.WriteString(prefix + wordwrap.String(line.text, logWidth-len(line.speaker)-2) + "\n\n")
			continue
		}
		content.WriteString(line.style.Render(wordwrap.String(line.text, logWidth)) + "\n\n")
	}

	if m.partial != "" {
		content.WriteString(listeningStyle.Render("▸ ") + wordwrap.String(m.partial, logWidth-2) + "\n")
	}

	m.logViewport.SetContent(content.String())
	m.logViewport.GotoBottom()
}

func (m *Model) writeMetadata() string {
	var content strings.Builder
	content.WriteString(titleStyle.Render("THE KEEP") + "\n\n")

	content.WriteString("Health:\n")
	content.WriteString(fmt.Sprintf("%d\n\n", m.playerHP))

	if m.bossHP >= 0 {
		content.WriteString("Foe:\n")
		content.WriteString(fmt.Sprintf("%d\n\n", m.bossHP))
	}

	content.WriteString("State:\n")
	if m.listening {
		content.WriteString(listeningStyle.Render("listening") + "\n\n")
	} else {
		content.WriteString(string(m.mode) + "\n\n")
	}

	content.WriteString("Commands:\n")
	content.WriteString("• Ctrl+T: Talk\n")
	content.WriteString("• Enter: Send\n")
	content.WriteString("• Ctrl+C: Quit\n")

	return content.String()
}

func (m Model) View() string {
	if !m.ready {
		return "Waking the keep..."
	}

	logPanel := logPanelStyle.Render(
		m.logViewport.View() + "\n\n" + m.textarea.View(),
	)
	metaPanel := metaPanelStyle.Render(m.metaViewport.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, logPanel, metaPanel)
}
