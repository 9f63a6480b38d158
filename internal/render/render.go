// Package render formats vocabulary entries for the terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jeanpaul/clv/internal/cloze"
	"github.com/jeanpaul/clv/internal/tui"
	"github.com/jeanpaul/clv/internal/vocab"
)

// WordWidth is the width of the entry column in List.
const WordWidth = 10

// LangWidth is the width of the lang column in List.
const LangWidth = 4

var ordinals = []rune("①②③④⑤⑥⑦⑧⑨⑩")

// Ordinal returns the marker for a 1-based definition slot. Slots past the
// glyph table fall back to "11.", "12.", ...
func Ordinal(slot int) string {
	if slot >= 1 && slot <= len(ordinals) {
		return string(ordinals[slot-1])
	}
	return fmt.Sprintf("%d.", slot)
}

// Definitions renders one line per non-empty definition. The first line is
// unpadded; later lines are indented by columnWidth+10 so they sit under the
// definition column of List. Ordinals follow the original slot positions.
func Definitions(defs []string, columnWidth int) string {
	var lines []string
	pad := strings.Repeat(" ", columnWidth+10)
	for i, d := range defs {
		if d == "" {
			continue
		}
		prefix := ""
		if len(lines) > 0 {
			prefix = pad
		}
		lines = append(lines, prefix+Ordinal(i+1)+" "+d)
	}
	return strings.Join(lines, "\n")
}

// Printer writes listings and lookups to w.
type Printer struct {
	w      io.Writer
	styles tui.Styles
}

// NewPrinter returns a Printer using styles.
func NewPrinter(w io.Writer, styles tui.Styles) *Printer {
	return &Printer{w: w, styles: styles}
}

// TagLine renders tags as "#a, #b".
func TagLine(tags []string) string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = "#" + t
	}
	return strings.Join(out, ", ")
}

// List prints the entries as a table.
func (p *Printer) List(entries []vocab.Entry, showTags bool) {
	fmt.Fprintf(p.w, "%-*s | %s | %s\n", WordWidth, "entry", "lang", "definition")
	fmt.Fprintf(p.w, "%s-+-%s-+--------------\n", strings.Repeat("-", WordWidth), strings.Repeat("-", LangWidth))
	for _, e := range entries {
		fmt.Fprintf(p.w, "%-*s | %-*s | %s\n", WordWidth, e.Word, LangWidth, e.Lang, Definitions(e.Definitions, WordWidth))
		if showTags && len(e.Tags) > 0 {
			fmt.Fprintln(p.w, p.styles.Tag.Render(TagLine(e.Tags)))
		}
	}
}

// Lookup prints one entry in full. Cloze braces are stripped from examples
// unless showCloze is set.
func (p *Printer) Lookup(e vocab.Entry, showCloze bool) {
	fmt.Fprintf(p.w, "%s %s\n", p.styles.Word.Render(e.Word), p.styles.Lang.Render("("+e.Lang+")"))

	for i, d := range e.Definitions {
		if d == "" {
			continue
		}
		fmt.Fprintf(p.w, "  %s %s\n", p.styles.Ordinal.Render(Ordinal(i+1)), d)
	}

	if len(e.Examples) > 0 {
		fmt.Fprintln(p.w, p.styles.Label.Render("Examples:"))
		for _, ex := range e.Examples {
			if !showCloze {
				ex = cloze.Strip(ex)
			}
			fmt.Fprintf(p.w, "  - %s\n", ex)
		}
	}

	if len(e.Tags) > 0 {
		fmt.Fprintln(p.w, p.styles.Tag.Render(TagLine(e.Tags)))
	}
}
