package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// QuizState tracks where a QuizModel is in its lifecycle.
type QuizState int

const (
	QuizAsking QuizState = iota
	QuizSolved
	QuizAborted
)

// QuizModel is the interactive cloze prompt. Enter submits a guess; the
// guess must equal the answer exactly.
type QuizModel struct {
	input    textinput.Model
	styles   Styles
	masked   string
	answer   string
	word     string
	state    QuizState
	attempts int
	feedback string
}

// NewQuizModel prepares a quiz for one masked sentence.
func NewQuizModel(masked, answer, word string, styles Styles) QuizModel {
	ti := textinput.New()
	ti.Placeholder = "type the missing text"
	ti.Prompt = "> "
	ti.Focus()

	return QuizModel{
		input:  ti,
		styles: styles,
		masked: masked,
		answer: answer,
		word:   word,
	}
}

func (m QuizModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m QuizModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc, tea.KeyCtrlD:
			m.state = QuizAborted
			return m, tea.Quit
		case tea.KeyEnter:
			m.attempts++
			if m.input.Value() == m.answer {
				m.state = QuizSolved
				m.feedback = "Correct!"
				return m, tea.Quit
			}
			m.feedback = "Not quite, try again."
			m.input.Reset()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m QuizModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Label.Render("Fill in the blank"))
	b.WriteString("\n\n  ")
	b.WriteString(m.styles.Cloze.Render(m.masked))
	b.WriteString("\n\n")

	switch m.state {
	case QuizSolved:
		b.WriteString(m.styles.Success.Render(m.feedback))
		if m.word != "" {
			b.WriteString(" " + m.styles.Help.Render("("+m.word+")"))
		}
		b.WriteString("\n")
		return b.String()
	case QuizAborted:
		b.WriteString(m.styles.Help.Render("Quiz aborted."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.feedback != "" {
		b.WriteString(m.styles.Retry.Render(m.feedback))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Help.Render("enter: submit • esc: quit"))
	b.WriteString("\n")
	return b.String()
}

// State reports whether the quiz was solved or aborted.
func (m QuizModel) State() QuizState { return m.state }

// Attempts counts submitted guesses.
func (m QuizModel) Attempts() int { return m.attempts }
