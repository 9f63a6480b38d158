package cloze

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jeanpaul/clv/internal/tui"
)

// ErrAborted ends a quiz that was not answered: end of input or a
// cancelled context.
var ErrAborted = errors.New("quiz aborted")

// Result summarises a finished quiz.
type Result struct {
	Attempts int
}

// Quiz runs the line-oriented guessing loop.
type Quiz struct {
	In     io.Reader
	Out    io.Writer
	Styles tui.Styles
}

type readResult struct {
	line string
	err  error
}

// Run shows the masked sentence and prompts until the guess equals the
// answer exactly. There is no attempt limit.
func (q *Quiz) Run(ctx context.Context, c Card) (Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan readResult)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(q.In)
		for sc.Scan() {
			select {
			case lines <- readResult{line: sc.Text()}:
			case <-ctx.Done():
				return
			}
		}
		if err := sc.Err(); err != nil {
			select {
			case lines <- readResult{err: err}:
			case <-ctx.Done():
			}
		}
	}()

	fmt.Fprintln(q.Out, q.Styles.Cloze.Render(c.Masked))

	var res Result
	for {
		fmt.Fprint(q.Out, q.Styles.Help.Render("> "))
		select {
		case <-ctx.Done():
			fmt.Fprintln(q.Out)
			return res, fmt.Errorf("%w: %w", ErrAborted, ctx.Err())
		case r, ok := <-lines:
			if !ok {
				fmt.Fprintln(q.Out)
				return res, ErrAborted
			}
			if r.err != nil {
				return res, fmt.Errorf("read guess: %w", r.err)
			}
			res.Attempts++
			if r.line == c.Answer {
				fmt.Fprintln(q.Out, q.Styles.Success.Render("Correct!"))
				return res, nil
			}
			fmt.Fprintln(q.Out, q.Styles.Retry.Render("Not quite, try again."))
		}
	}
}
