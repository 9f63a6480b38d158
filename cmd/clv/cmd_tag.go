package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jeanpaul/clv/internal/cloze"
)

func newTagCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tag <word> <tag>",
		Short: "Tag an entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			word, tag := args[0], args[1]
			out := a.messages(cmd)
			store := a.load()

			idx, added, err := store.AddTag(word, a.language(), tag)
			if err != nil {
				return err
			}
			if err := a.save(store); err != nil {
				return err
			}
			if !added {
				fmt.Fprintf(out, "%s is already tagged #%s\n", word, tag)
				return nil
			}

			after := store.At(idx)
			fmt.Fprintf(out, "Tagged %s with #%s\n", word, tag)
			a.echo(out, nil, &after)
			return nil
		},
	}
}

func newUntagCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "untag <word> <tag>",
		Short: "Remove a tag from an entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			word, tag := args[0], args[1]
			out := a.messages(cmd)
			store := a.load()

			idx, removed, err := store.RemoveTag(word, a.language(), tag)
			if err != nil {
				return err
			}
			if err := a.save(store); err != nil {
				return err
			}
			if removed == 0 {
				fmt.Fprintf(out, "%s is not tagged #%s\n", word, tag)
				return nil
			}

			after := store.At(idx)
			fmt.Fprintf(out, "Removed #%s from %s\n", tag, word)
			a.echo(out, nil, &after)
			return nil
		},
	}
}

func newExampleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "example <word> <sentence>",
		Short: "Add an example sentence",
		Long: `Adds an example sentence to word. Wrap the part to quiz on in braces,
e.g. "Le {chat} dort", to make the example available to "clv cloze".`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			word, sentence := args[0], args[1]
			out := a.messages(cmd)
			store := a.load()

			idx, err := store.AddExample(word, a.language(), sentence)
			if err != nil {
				return err
			}
			if err := a.save(store); err != nil {
				return err
			}

			if _, ok := cloze.Parse(sentence); !ok && strings.Contains(sentence, "{") {
				a.logger.Warn("example has an unclosed brace and will not be used for cloze",
					zap.String("word", word), zap.String("example", sentence))
			}

			after := store.At(idx)
			fmt.Fprintf(out, "Added an example to %s!\n", word)
			a.echo(out, nil, &after)
			return nil
		},
	}
}
