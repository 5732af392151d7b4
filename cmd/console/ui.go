package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/digitalquest/quest-engine/pkg/game"
)

const PlaceHolderText = "Type a command..."

var (
	gamePanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(1).
			PaddingLeft(3).
			PaddingRight(0)

	metaPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(0).
			PaddingLeft(0).
			PaddingRight(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	gameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	alertStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // yellow

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Align(lipgloss.Center)
)

type entryKind int

const (
	entryGame entryKind = iota
	entryUser
	entryAlert
	entryNotice
)

type entry struct {
	kind entryKind
	text string
}

// ConsoleUI is the BubbleTea model that runs the UI.
// https://github.com/charmbracelet/bubbletea
type ConsoleUI struct {
	engine       *game.Engine
	gameViewport viewport.Model
	metaViewport viewport.Model
	textarea     textarea.Model
	transcript   []entry
	ready        bool
	width        int
	height       int

	showQuitModal bool
	statusNotice  string
}

func NewConsoleUI(engine *game.Engine, hasSave bool) ConsoleUI {
	ta := textarea.New()
	ta.Placeholder = PlaceHolderText
	ta.Focus()
	ta.Prompt = promptStyle.Render("> ")
	ta.CharLimit = 200
	ta.SetWidth(50)
	ta.SetHeight(1)
	ta.ShowLineNumbers = false

	gameVp := viewport.New(50, 20)
	gameVp.MouseWheelEnabled = true
	metaVp := viewport.New(20, 20)

	transcript := []entry{{kind: entryGame, text: engine.Describe()}}
	if hasSave {
		transcript = append(transcript, entry{
			kind: entryNotice,
			text: "A saved game was found. Type 'load' to restore your previous progress.",
		})
	}

	return ConsoleUI{
		engine:       engine,
		textarea:     ta,
		gameViewport: gameVp,
		metaViewport: metaVp,
		transcript:   transcript,
	}
}

func (m ConsoleUI) Init() tea.Cmd {
	return textarea.Blink
}

func (m ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}

	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		gameWidth := int(float64(m.width)*0.75) - 4
		metaWidth := m.width - gameWidth - 6

		m.gameViewport.Width = gameWidth - 2
		m.gameViewport.Height = m.height - 7
		m.metaViewport.Width = metaWidth - 2
		m.metaViewport.Height = m.height - 4
		m.textarea.SetWidth(gameWidth - 4)

		m.ready = true
		m.writeTranscript()
		m.metaViewport.SetContent(m.writeMetadata())

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.showQuitModal = true
			return m, nil

		case tea.KeyCtrlS:
			// Copy the session ID so it can be pasted into API requests.
			id := m.engine.State().ID.String()
			if err := clipboard.WriteAll(id); err != nil {
				m.statusNotice = "Could not copy session ID to clipboard."
			} else {
				m.statusNotice = "Session ID copied to clipboard."
			}
			m.metaViewport.SetContent(m.writeMetadata())
			return m, nil

		case tea.KeyEnter:
			input := strings.TrimSpace(m.textarea.Value())
			if input == "" {
				return m, nil
			}
			m.textarea.Reset()
			m.runCommand(input)
			return m, nil
		}
	}

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.gameViewport, vpCmd = m.gameViewport.Update(msg)

	return m, tea.Batch(tiCmd, vpCmd)
}

// runCommand feeds one input line to the engine and appends the
// exchange to the transcript.
func (m *ConsoleUI) runCommand(input string) {
	m.transcript = append(m.transcript, entry{kind: entryUser, text: "> " + input})

	result, err := m.engine.ProcessCommand(context.Background(), input)
	if err != nil {
		m.transcript = append(m.transcript, entry{kind: entryAlert, text: "Error: " + err.Error()})
	} else {
		kind := entryGame
		if result.PlayerDied {
			kind = entryAlert
		}
		m.transcript = append(m.transcript, entry{kind: kind, text: result.Message})
	}

	m.writeTranscript()
	m.metaViewport.SetContent(m.writeMetadata())
}

// writeTranscript reformats the whole transcript for the current
// viewport width.
func (m *ConsoleUI) writeTranscript() {
	gameWidth := m.gameViewport.Width - 6
	if gameWidth < 20 {
		gameWidth = 20
	}

	var content strings.Builder
	content.WriteString(titleStyle.Render("DIGITAL QUEST") + "\n\n")
	content.WriteString("Type commands below to explore the digital world.\n\n")
	content.WriteString(separatorStyle.Render(strings.Repeat("─", gameWidth)) + "\n\n")

	for _, e := range m.transcript {
		wrapped := wordwrap.String(e.text, gameWidth)
		switch e.kind {
		case entryUser:
			content.WriteString(userStyle.Render(wrapped))
		case entryAlert:
			content.WriteString(alertStyle.Render(wrapped))
		case entryNotice:
			content.WriteString(noticeStyle.Render(wrapped))
		default:
			content.WriteString(gameStyle.Render(wrapped))
		}
		content.WriteString("\n\n")
	}

	m.gameViewport.SetContent(content.String())
	m.gameViewport.GotoBottom()
}

func (m *ConsoleUI) writeMetadata() string {
	gs := m.engine.State()
	w := m.engine.World()

	var content strings.Builder
	content.WriteString(titleStyle.Render("STATUS") + "\n\n")

	content.WriteString("Session:\n")
	content.WriteString(gs.ID.String()[:8] + "...\n\n")

	if loc, ok := w.Locations[gs.CurrentLocation]; ok {
		content.WriteString("Location:\n")
		content.WriteString(loc.Name + "\n\n")
	}

	fmt.Fprintf(&content, "Health: %d\n", gs.Health)
	fmt.Fprintf(&content, "Score:  %d\n\n", gs.Score)

	content.WriteString("Inventory:\n")
	items := w.CarriedItems()
	if len(items) == 0 {
		content.WriteString("Empty\n")
	} else {
		for _, item := range items {
			content.WriteString("• " + item.Name + "\n")
		}
	}

	content.WriteString("\n")
	content.WriteString("Keys:\n")
	content.WriteString("• Ctrl+C: Quit\n")
	content.WriteString("• Ctrl+S: Copy session ID\n")
	content.WriteString("• Enter: Send\n")

	if m.statusNotice != "" {
		content.WriteString("\n" + noticeStyle.Render(m.statusNotice) + "\n")
	}

	return content.String()
}

func (m ConsoleUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc, tea.KeyEnter:
			return m, tea.Quit
		default:
			switch msg.String() {
			case "y", "Y":
				return m, tea.Quit
			case "n", "N":
				m.showQuitModal = false
				m.textarea.Focus()
				return m, textarea.Blink
			}
		}
	}

	return m, nil
}

func (m ConsoleUI) renderQuitModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Quit Game?"))
	content.WriteString("\n\n")
	content.WriteString("Unsaved progress will be lost. Type 'save' first to keep it.")
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Press Y to quit, N to continue"))

	modal := modalStyle.Width(50).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m ConsoleUI) View() string {
	if m.showQuitModal {
		return m.renderQuitModal()
	}
	if !m.ready {
		return "\n  Initializing..."
	}

	gameWidth := int(float64(m.width)*0.75) - 4
	metaWidth := m.width - gameWidth - 6

	gamePanel := gamePanelStyle.Width(gameWidth).Height(m.height - 3).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.gameViewport.View(),
			"",
			separatorStyle.Render(strings.Repeat("─", gameWidth-4)),
			m.textarea.View(),
		),
	)

	metaPanel := metaPanelStyle.Width(metaWidth).Height(m.height - 2).Render(
		m.metaViewport.View(),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, gamePanel, metaPanel)
}
