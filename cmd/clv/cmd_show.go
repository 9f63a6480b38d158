package main

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jeanpaul/clv/internal/render"
	"github.com/jeanpaul/clv/internal/tui"
	"github.com/jeanpaul/clv/internal/vocab"
)

// filterFlags are shared by list, browse and export.
type filterFlags struct {
	tags    string
	pattern string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.tags, "tags", "", "only entries carrying all of these comma separated tags")
	cmd.Flags().StringVar(&f.pattern, "match", "", "only words matching this glob pattern")
}

// filter builds the entry filter. The language comes from the optional
// positional argument, else the --lang flag; the configured default
// language does not narrow a listing.
func (f *filterFlags) filter(a *app, args []string) (vocab.Filter, error) {
	flt := vocab.Filter{
		Lang:    a.lang,
		Tags:    vocab.ParseTags(f.tags),
		Pattern: f.pattern,
	}
	if len(args) > 0 {
		flt.Lang = args[0]
	}
	return flt, flt.Validate()
}

func newListCmd(a *app) *cobra.Command {
	var (
		showTags bool
		ff       filterFlags
	)

	cmd := &cobra.Command{
		Use:   "list [lang]",
		Short: "List entries",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flt, err := ff.filter(a, args)
			if err != nil {
				return err
			}
			store := a.load()
			render.NewPrinter(cmd.OutOrStdout(), a.styles).List(store.Select(flt), showTags)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showTags, "show-tags", "t", false, "print tags under each entry")
	ff.register(cmd)
	return cmd
}

func newLookupCmd(a *app) *cobra.Command {
	var showCloze bool

	cmd := &cobra.Command{
		Use:   "lookup <word> [lang]",
		Short: "Show everything about a word",
		Long: `Shows definitions, examples and tags of word. Without a language the
most recent entry for word in any language is shown.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			word, lang := args[0], a.lang
			if len(args) > 1 {
				lang = args[1]
			}
			store := a.load()

			var idx int
			if lang == "" {
				idx = store.FindWord(word)
			} else {
				idx = store.Find(word, lang)
			}
			if idx == vocab.NotFound {
				return &vocab.NotFoundError{Word: word, Lang: lang}
			}

			render.NewPrinter(cmd.OutOrStdout(), a.styles).Lookup(store.At(idx), showCloze)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showCloze, "cloze", false, "keep cloze braces in examples")
	return cmd
}

func newBrowseCmd(a *app) *cobra.Command {
	var ff filterFlags

	cmd := &cobra.Command{
		Use:   "browse [lang]",
		Short: "Pick an entry from an interactive list",
		Long: `Opens a filterable list of entries. Press / to filter, enter to show
the highlighted entry and esc to leave. Keys are read from stdin, so
--input - is rejected.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.interactiveInput("browse"); err != nil {
				return err
			}
			flt, err := ff.filter(a, args)
			if err != nil {
				return err
			}
			entries := a.load().Select(flt)

			p := tea.NewProgram(tui.NewBrowseModel(entries),
				tea.WithContext(cmd.Context()),
				tea.WithInput(a.stdin),
				tea.WithOutput(cmd.OutOrStdout()),
				tea.WithAltScreen(),
			)
			final, err := p.Run()
			if errors.Is(err, tea.ErrProgramKilled) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("browse: %w", err)
			}

			m, ok := final.(tui.BrowseModel)
			if !ok {
				return nil
			}
			if e, picked := m.Selected(); picked {
				render.NewPrinter(cmd.OutOrStdout(), a.styles).Lookup(e, false)
			}
			return nil
		},
	}

	ff.register(cmd)
	return cmd
}
