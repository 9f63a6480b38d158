// Package export writes vocabulary snapshots in formats other tools read:
// CSV, XLSX, Markdown and SQLite.
package export

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jeanpaul/clv/internal/vocab"
)

// Format names an export target.
type Format string

const (
	FormatCSV      Format = "csv"
	FormatXLSX     Format = "xlsx"
	FormatMarkdown Format = "md"
	FormatSQLite   Format = "sqlite"
)

// Formats lists every supported format.
var Formats = []Format{FormatCSV, FormatXLSX, FormatMarkdown, FormatSQLite}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == strings.ToLower(s) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: unknown export format %q", vocab.ErrInvalidArguments, s)
}

// NeedsFile reports whether the format can only be written to a path.
func (f Format) NeedsFile() bool {
	return f == FormatXLSX || f == FormatSQLite
}

// Options control an export run.
type Options struct {
	// Path is the destination file. Streamed formats fall back to W.
	Path string
	W    io.Writer

	// Render pretty-prints Markdown for the terminal.
	Render bool
	Width  int
}

var columns = []string{"word", "lang", "definitions", "tags", "examples"}

const listSep = "; "

func row(e vocab.Entry) []string {
	return []string{
		e.Word,
		e.Lang,
		strings.Join(nonEmpty(e.Definitions), listSep),
		strings.Join(e.Tags, listSep),
		strings.Join(e.Examples, listSep),
	}
}

func nonEmpty(defs []string) []string {
	out := make([]string, 0, len(defs))
	for _, d := range defs {
		if d != "" {
			out = append(out, d)
		}
	}
	return out
}

// Write exports entries in format f.
func Write(ctx context.Context, f Format, entries []vocab.Entry, opts Options) error {
	if f.NeedsFile() && opts.Path == "" {
		return fmt.Errorf("%w: %s export needs a destination file", vocab.ErrInvalidArguments, f)
	}

	switch f {
	case FormatCSV:
		return withWriter(opts, func(w io.Writer) error { return writeCSV(w, entries) })
	case FormatMarkdown:
		return withWriter(opts, func(w io.Writer) error { return writeMarkdown(w, entries, opts) })
	case FormatXLSX:
		return writeXLSX(opts.Path, entries)
	case FormatSQLite:
		return writeSQLite(ctx, opts.Path, entries)
	default:
		return fmt.Errorf("%w: unknown export format %q", vocab.ErrInvalidArguments, f)
	}
}
