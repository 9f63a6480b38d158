package main

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jeanpaul/clv/internal/cloze"
	"github.com/jeanpaul/clv/internal/storage"
	"github.com/jeanpaul/clv/internal/tui"
	"github.com/jeanpaul/clv/internal/vocab"
)

// interactiveInput rejects a store streamed on stdin for commands that read
// the user's keys from it.
func (a *app) interactiveInput(command string) error {
	if a.files != nil && a.files.Input == storage.StdStream {
		return fmt.Errorf("%w: %s reads answers from stdin and cannot load the store from it", vocab.ErrInvalidArguments, command)
	}
	return nil
}

func newClozeCmd(a *app) *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "cloze",
		Short: "Quiz yourself on a random example",
		Long: `Picks a random example containing a {braced} span, hides the span and
asks for it until the answer matches exactly. End of input or Ctrl+C
leaves the quiz. Answers are read from stdin, so --input - is rejected.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.interactiveInput("cloze"); err != nil {
				return err
			}
			store := a.load()
			card, err := cloze.Pick(store, a.rng)
			if err != nil {
				return err
			}
			a.logger.Debug("cloze card picked",
				zap.String("word", card.Word), zap.String("lang", card.Lang))

			out := cmd.OutOrStdout()
			if interactive {
				return a.runClozeTUI(cmd, card)
			}

			q := &cloze.Quiz{In: a.stdin, Out: out, Styles: a.styles}
			res, err := q.Run(cmd.Context(), card)
			if errors.Is(err, cloze.ErrAborted) {
				fmt.Fprintln(out, a.styles.Help.Render("Quiz aborted."))
				return nil
			}
			if err != nil {
				return err
			}
			a.logger.Debug("cloze solved", zap.Int("attempts", res.Attempts))
			return nil
		},
	}

	cmd.Flags().BoolVar(&interactive, "tui", false, "run the quiz as a full-screen terminal UI")
	return cmd
}

func (a *app) runClozeTUI(cmd *cobra.Command, card cloze.Card) error {
	model := tui.NewQuizModel(card.Masked, card.Answer, card.Word, a.styles)
	p := tea.NewProgram(model,
		tea.WithContext(cmd.Context()),
		tea.WithInput(a.stdin),
		tea.WithOutput(cmd.OutOrStdout()),
	)

	final, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("cloze: %w", err)
	}
	if m, ok := final.(tui.QuizModel); ok {
		a.logger.Debug("cloze finished",
			zap.Bool("solved", m.State() == tui.QuizSolved), zap.Int("attempts", m.Attempts()))
	}
	return nil
}
