package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/jeanpaul/clv/internal/cloze"
	"github.com/jeanpaul/clv/internal/render"
	"github.com/jeanpaul/clv/internal/storage"
	"github.com/jeanpaul/clv/internal/vocab"
)

func withWriter(opts Options, fn func(io.Writer) error) error {
	if opts.Path == "" {
		if opts.W == nil {
			return fmt.Errorf("%w: no export destination", vocab.ErrInvalidArguments)
		}
		return fn(opts.W)
	}
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		return err
	}
	return storage.WriteFileAtomic(opts.Path, buf.Bytes(), 0o644)
}

func writeCSV(w io.Writer, entries []vocab.Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return err
	}
	for _, e := range entries {
		if err := cw.Write(row(e)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Markdown renders entries as a glossary document.
func Markdown(entries []vocab.Entry) string {
	var b strings.Builder
	b.WriteString("# Vocabulary\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "\n## %s *(%s)*\n\n", e.Word, e.Lang)
		for i, d := range e.Definitions {
			if d == "" {
				continue
			}
			fmt.Fprintf(&b, "%d. %s\n", i+1, d)
		}
		if len(e.Examples) > 0 {
			b.WriteString("\n")
			for _, ex := range e.Examples {
				fmt.Fprintf(&b, "> %s\n", cloze.Strip(ex))
			}
		}
		if len(e.Tags) > 0 {
			fmt.Fprintf(&b, "\n`%s`\n", render.TagLine(e.Tags))
		}
	}
	return b.String()
}

func writeMarkdown(w io.Writer, entries []vocab.Entry, opts Options) error {
	md := Markdown(entries)
	if opts.Render {
		width := opts.Width
		if width <= 0 {
			width = 80
		}
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return fmt.Errorf("markdown renderer: %w", err)
		}
		out, err := r.Render(md)
		if err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		md = out
	}
	_, err := io.WriteString(w, md)
	return err
}
