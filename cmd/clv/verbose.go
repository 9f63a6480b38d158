package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"

	"github.com/jeanpaul/clv/internal/vocab"
)

func entryJSON(e vocab.Entry, indent bool) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(e); err != nil {
		return fmt.Sprintf("<unencodable entry: %v>", err)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// entryDiff is a unified diff of the indented JSON of two entries, or ""
// when they are equal.
func entryDiff(before, after vocab.Entry) string {
	a := entryJSON(before, true) + "\n"
	b := entryJSON(after, true) + "\n"
	edits := myers.ComputeEdits(span.URIFromPath("entry.json"), a, b)
	if len(edits) == 0 {
		return ""
	}
	return fmt.Sprint(gotextdiff.ToUnified("before", "after", a, edits))
}

// echo prints the affected record in verbose mode. Either side may be nil
// for additions and deletions.
func (a *app) echo(w io.Writer, before, after *vocab.Entry) {
	if !a.verbose {
		return
	}
	if before != nil {
		fmt.Fprintln(w, "Before:")
		fmt.Fprintln(w, entryJSON(*before, false))
	}
	if after != nil {
		if before != nil {
			fmt.Fprintln(w, "After:")
		}
		fmt.Fprintln(w, entryJSON(*after, false))
	}
	if before != nil && after != nil {
		if d := entryDiff(*before, *after); d != "" {
			fmt.Fprint(w, d)
		}
	}
}
