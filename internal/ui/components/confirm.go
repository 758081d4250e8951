package components

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"rodomopo/internal/ui/theme"
)

// ErrPromptAborted is returned when the user leaves the prompt with esc or ctrl+c.
var ErrPromptAborted = errors.New("prompt aborted")

// Confirm is a yes/no line prompt. Enter submits; anything other than
// y/yes/n/no is rejected and the prompt stays open.
type Confirm struct {
	question string
	input    string
	invalid  bool
	done     bool
	answer   bool
	aborted  bool
}

func NewConfirm(question string) Confirm {
	return Confirm{question: question}
}

func (c Confirm) Answer() (bool, error) {
	if c.aborted {
		return false, ErrPromptAborted
	}
	return c.answer, nil
}

func (c Confirm) Done() bool { return c.done }

func (c Confirm) Init() tea.Cmd { return nil }

func (c Confirm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || c.done {
		return c, nil
	}
	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc, tea.KeyCtrlD:
		c.done, c.aborted = true, true
		return c, tea.Quit
	case tea.KeyEnter:
		switch strings.ToLower(strings.TrimSpace(c.input)) {
		case "y", "yes":
			c.done, c.answer = true, true
			return c, tea.Quit
		case "n", "no":
			c.done, c.answer = true, false
			return c, tea.Quit
		}
		c.invalid = true
		c.input = ""
	case tea.KeyBackspace:
		if r := []rune(c.input); len(r) > 0 {
			c.input = string(r[:len(r)-1])
		}
	case tea.KeyRunes, tea.KeySpace:
		c.input += string(key.Runes)
		c.invalid = false
	}
	return c, nil
}

func (c Confirm) View() string {
	var b strings.Builder
	b.WriteString(theme.Hot.Render(c.question))
	b.WriteString(" ")
	b.WriteString(c.input)
	if c.invalid && !c.done {
		b.WriteString("\n")
		b.WriteString(theme.Muted.Render("Invalid input. It should be yes or no"))
	}
	b.WriteString("\n")
	return b.String()
}

// Ask runs a Confirm on in/out until the user answers or aborts.
func Ask(ctx context.Context, in io.Reader, out io.Writer, question string) (bool, error) {
	program := tea.NewProgram(NewConfirm(question), tea.WithInput(in), tea.WithOutput(out), tea.WithContext(ctx))
	final, err := program.Run()
	if err != nil {
		return false, fmt.Errorf("run prompt: %w", err)
	}
	confirm, ok := final.(Confirm)
	if !ok {
		return false, fmt.Errorf("prompt returned %T", final)
	}
	return confirm.Answer()
}
