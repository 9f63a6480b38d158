package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jeanpaul/clv/internal/vocab"
)

func newAddCmd(a *app) *cobra.Command {
	var appendDef bool

	cmd := &cobra.Command{
		Use:   "add <word> [definition]",
		Short: "Add a word to the vocabulary",
		Long: `Adds a new entry for word in the current language.

With --append the definition is added to an existing entry instead of
creating a second record for the same word.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			word, lang := args[0], a.language()
			definition := ""
			if len(args) > 1 {
				definition = args[1]
			}
			out := a.messages(cmd)
			store := a.load()

			if existing := store.Find(word, lang); existing != vocab.NotFound {
				if appendDef {
					before := store.At(existing).Clone()
					if _, err := store.SetDefinition(word, lang, definition, vocab.SlotUnset, true); err != nil {
						return err
					}
					if err := a.save(store); err != nil {
						return err
					}
					after := store.At(existing)
					fmt.Fprintf(out, "Added a definition to %s!\n", word)
					a.echo(out, &before, &after)
					return nil
				}
				a.logger.Warn("entry already exists, the new record will shadow it",
					zap.String("word", word), zap.String("lang", lang))
			}

			idx := store.Add(word, lang, definition)
			if err := a.save(store); err != nil {
				return err
			}
			added := store.At(idx)
			fmt.Fprintf(out, "Successfully added %s!\n", word)
			a.echo(out, nil, &added)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&appendDef, "append", "a", false, "add the definition to an existing entry")
	return cmd
}

func newEditCmd(a *app) *cobra.Command {
	var (
		slot      int
		appendDef bool
	)

	cmd := &cobra.Command{
		Use:   "edit <word> <definition>",
		Short: "Overwrite or append a definition",
		Long: `Edits a definition of word. Choose exactly one of:
  --slot N   overwrite definition number N (as shown by list/lookup)
  --append   add another definition`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			word, definition, lang := args[0], args[1], a.language()
			if appendDef && cmd.Flags().Changed("slot") {
				return fmt.Errorf("%w: cannot add and edit a definition at the same time", vocab.ErrInvalidArguments)
			}
			if !cmd.Flags().Changed("slot") {
				slot = vocab.SlotUnset
			}

			out := a.messages(cmd)
			store := a.load()

			var before vocab.Entry
			if idx := store.Find(word, lang); idx != vocab.NotFound {
				before = store.At(idx).Clone()
			}

			idx, err := store.SetDefinition(word, lang, definition, slot, appendDef)
			if err != nil {
				return err
			}
			if err := a.save(store); err != nil {
				return err
			}

			after := store.At(idx)
			fmt.Fprintf(out, "Successfully edited %s!\n", word)
			a.echo(out, &before, &after)
			return nil
		},
	}

	cmd.Flags().IntVarP(&slot, "slot", "n", vocab.SlotUnset, "definition number to overwrite")
	cmd.Flags().BoolVarP(&appendDef, "append", "a", false, "append a new definition")
	return cmd
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <word>",
		Short: "Delete an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			word := args[0]
			out := a.messages(cmd)
			store := a.load()

			removed, err := store.Delete(word, a.language())
			if err != nil {
				return err
			}
			if err := a.save(store); err != nil {
				return err
			}

			fmt.Fprintf(out, "Successfully deleted %s!\n", word)
			a.echo(out, &removed, nil)
			return nil
		},
	}
}
