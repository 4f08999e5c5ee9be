package controller

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// TUI implements the interactive pieces of the UI using Bubble Tea.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI writing to output.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// ConfirmDeletion runs an interactive prompt; deletion proceeds only when the
// user types yes (or y) and confirms with enter.
func (p *TUI) ConfirmDeletion(count int) (bool, error) {
	program := tea.NewProgram(newConfirmModel(count), tea.WithOutput(p.output))

	final, err := program.Run()
	if err != nil {
		return false, fmt.Errorf("confirmation prompt: %w", err)
	}

	model, ok := final.(confirmModel)
	if !ok {
		return false, nil
	}

	return model.confirmed, nil
}

// confirmModel is the Bubble Tea model behind the deletion prompt.
type confirmModel struct {
	input     textinput.Model
	count     int
	confirmed bool
}

func newConfirmModel(count int) confirmModel {
	input := textinput.New()
	input.Placeholder = "no"
	input.CharLimit = 8
	input.Width = 10
	input.Focus()

	return confirmModel{
		input: input,
		count: count,
	}
}

func (cm confirmModel) Init() tea.Cmd {
	return textinput.Blink
}

func (cm confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			answer := strings.ToLower(strings.TrimSpace(cm.input.Value()))
			cm.confirmed = answer == "y" || answer == "yes"

			return cm, tea.Quit

		case tea.KeyCtrlC, tea.KeyEsc:
			cm.confirmed = false

			return cm, tea.Quit
		}
	}

	var cmd tea.Cmd
	cm.input, cmd = cm.input.Update(msg)

	return cm, cmd
}

func (cm confirmModel) View() string {
	var b strings.Builder

	b.WriteString(warnStyle.Render(fmt.Sprintf("About to delete %d file(s).", cm.count)))
	b.WriteString("\n")
	b.WriteString(promptStyle.Render("Type yes to confirm: "))
	b.WriteString(cm.input.View())
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("(enter confirms, esc aborts)"))
	b.WriteString("\n")

	return b.String()
}
