package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jeanpaul/clv/internal/config"
	"github.com/jeanpaul/clv/internal/logging"
	"github.com/jeanpaul/clv/internal/storage"
	"github.com/jeanpaul/clv/internal/tui"
	"github.com/jeanpaul/clv/internal/vocab"
)

// app carries everything one invocation needs. Command handlers receive it
// explicitly instead of reading package state.
type app struct {
	// Global flags
	configFile string
	input      string
	output     string
	lang       string
	verbose    bool

	stdin  io.Reader
	styles tui.Styles
	rng    *rand.Rand

	cfg    *config.Config
	logger *zap.Logger
	files  *storage.FileStore
}

func newApp() *app {
	return &app{
		stdin:  os.Stdin,
		styles: tui.DefaultStyles(),
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "clv",
		Short: "A CLI for all your vocab needs",
		Long: `clv keeps a personal vocabulary file: words with numbered definitions,
tags and example sentences. Wrap part of an example in {braces} to quiz
yourself on it later with "clv cloze".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file (default $XDG_CONFIG_HOME/clv/config.yaml)")
	pf.StringVarP(&a.input, "input", "i", "", "vocabulary file to read (- for stdin)")
	pf.StringVarP(&a.output, "output", "o", "", "vocabulary file to write (- for stdout, default: input)")
	pf.StringVarP(&a.lang, "lang", "l", "", "language of the entry (default: config language)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "echo affected records and enable debug logs")

	root.AddCommand(
		newAddCmd(a),
		newEditCmd(a),
		newDeleteCmd(a),
		newTagCmd(a),
		newUntagCmd(a),
		newExampleCmd(a),
		newListCmd(a),
		newLookupCmd(a),
		newBrowseCmd(a),
		newClozeCmd(a),
		newExportCmd(a),
		newConfigCmd(a),
	)
	return root
}

// setup loads the config and builds the logger and file store.
func (a *app) setup(cmd *cobra.Command) error {
	path := a.configFile
	if path == "" {
		path = config.Path()
	}
	a.configFile = path

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if a.logger == nil {
		logger, err := logging.New(cfg.Log, a.verbose)
		if err != nil {
			return err
		}
		a.logger = logger
	}

	in, out := cfg.StorePaths(a.input, a.output)
	a.files = storage.New(in, out)
	a.files.Stdin = a.stdin
	a.files.Stdout = cmd.OutOrStdout()
	return nil
}

// language is the --lang flag, else the configured default.
func (a *app) language() string {
	if a.lang != "" {
		return a.lang
	}
	return a.cfg.Language
}

// load reads the vocabulary file. An unreadable file is reported and
// replaced by an empty store.
func (a *app) load() *vocab.Store {
	res := a.files.Load()
	switch res.Status {
	case storage.StatusCorrupt:
		a.logger.Warn("vocabulary file is unreadable, starting with an empty store",
			zap.String("path", a.files.Input), zap.Error(res.Err))
	case storage.StatusNew:
		a.logger.Debug("no vocabulary yet, starting a new store", zap.String("path", a.files.Input))
	default:
		a.logger.Debug("vocabulary loaded",
			zap.String("path", a.files.Input), zap.Int("entries", res.Store.Len()))
	}
	return res.Store
}

func (a *app) save(s *vocab.Store) error {
	if err := a.files.Save(s); err != nil {
		return fmt.Errorf("save vocabulary: %w", err)
	}
	a.logger.Debug("vocabulary saved", zap.String("path", a.files.Output), zap.Int("entries", s.Len()))
	return nil
}

// messages is where human-facing output goes. It moves to stderr when the
// store itself is streamed to stdout.
func (a *app) messages(cmd *cobra.Command) io.Writer {
	if a.files != nil && a.files.Output == storage.StdStream {
		return cmd.ErrOrStderr()
	}
	return cmd.OutOrStdout()
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a := newApp()
	if err := newRootCmd(a).ExecuteContext(ctx); err != nil {
		if a.logger != nil {
			_ = a.logger.Sync()
		}
		fatal(a.styles, "%s", err)
	}
}

func fatal(styles tui.Styles, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(os.Stderr, styles.Error.Render("error: "+msg))
	os.Exit(1)
}
