package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jeanpaul/clv/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Read and change settings",
		// Replaces the root hook so a broken config file can still be fixed.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.configFile == "" {
				a.configFile = config.Path()
			}
			return nil
		},
	}

	get := &cobra.Command{
		Use:       "get [key]",
		Short:     "Print a setting, or all of them",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: config.Keys,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configFile)
			if err != nil {
				return err
			}
			keys := config.Keys
			if len(args) == 1 {
				keys = args
			}
			for _, k := range keys {
				v, err := cfg.Get(k)
				if err != nil {
					return err
				}
				if len(args) == 1 {
					fmt.Fprintln(cmd.OutOrStdout(), v)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", k, v)
				}
			}
			return nil
		},
	}

	set := &cobra.Command{
		Use:       "set <key> <value>",
		Short:     "Change a setting in the config file",
		Args:      cobra.ExactArgs(2),
		ValidArgs: config.Keys,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Set(a.configFile, args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s to %q\n", args[0], args[1])
			return nil
		},
	}

	path := &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), a.configFile)
		},
	}

	cmd.AddCommand(get, set, path)
	return cmd
}
