package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jeanpaul/clv/internal/export"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		format   string
		file     string
		rendered bool
		ff       filterFlags
	)

	names := make([]string, len(export.Formats))
	for i, f := range export.Formats {
		names[i] = string(f)
	}

	cmd := &cobra.Command{
		Use:   "export [lang]",
		Short: "Export entries to another format",
		Long: `Writes the selected entries as csv, xlsx, md or sqlite. csv and md go to
stdout unless --file is given; xlsx and sqlite always need --file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			flt, err := ff.filter(a, args)
			if err != nil {
				return err
			}

			entries := a.load().Select(flt)
			opts := export.Options{
				Path:   file,
				W:      cmd.OutOrStdout(),
				Render: rendered,
				Width:  80,
			}
			if err := export.Write(cmd.Context(), f, entries, opts); err != nil {
				return err
			}

			a.logger.Debug("export finished",
				zap.String("format", string(f)), zap.Int("entries", len(entries)))
			if file != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d entries to %s\n", len(entries), file)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(export.FormatCSV), "output format: "+strings.Join(names, ", "))
	cmd.Flags().StringVar(&file, "file", "", "destination file")
	cmd.Flags().BoolVar(&rendered, "render", false, "render Markdown for the terminal")
	ff.register(cmd)
	return cmd
}
