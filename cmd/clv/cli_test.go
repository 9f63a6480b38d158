package main

import (
	"bytes"
	"encoding/csv"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jeanpaul/clv/internal/storage"
	"github.com/jeanpaul/clv/internal/tui"
	"github.com/jeanpaul/clv/internal/vocab"
)

type harness struct {
	t      *testing.T
	dir    string
	store  string
	config string
	stdin  string
	logs   *observer.ObservedLogs
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	return &harness{
		t:      t,
		dir:    dir,
		store:  filepath.Join(dir, "vocab.clvdb"),
		config: filepath.Join(dir, "config.yaml"),
	}
}

// run executes one clv invocation against the harness store.
func (h *harness) run(args ...string) (string, string, error) {
	h.t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	h.logs = logs

	a := newApp()
	a.stdin = strings.NewReader(h.stdin)
	a.styles = tui.PlainStyles()
	a.rng = rand.New(rand.NewPCG(1, 2))
	a.logger = zap.New(core)

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(a)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", h.config, "--input", h.store}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func (h *harness) mustRun(args ...string) string {
	h.t.Helper()
	out, _, err := h.run(args...)
	require.NoError(h.t, err, "clv %s", strings.Join(args, " "))
	return out
}

func (h *harness) entries() []vocab.Entry {
	h.t.Helper()
	res := storage.New(h.store, "").Load()
	require.Equal(h.t, storage.StatusLoaded, res.Status)
	return res.Store.Entries()
}

func TestAddAndLookup(t *testing.T) {
	h := newHarness(t)

	out := h.mustRun("add", "chat", "cat", "--lang", "fr")
	assert.Equal(t, "Successfully added chat!\n", out)

	h.mustRun("edit", "chat", "chatting", "--append", "-l", "fr")
	h.mustRun("example", "chat", "Le {chat} dort", "-l", "fr")
	h.mustRun("tag", "chat", "animal", "-l", "fr")

	out = h.mustRun("lookup", "chat", "fr")
	assert.Equal(t, "chat (fr)\n  ① cat\n  ② chatting\nExamples:\n  - Le chat dort\n#animal\n", out)

	out = h.mustRun("lookup", "chat", "--cloze")
	assert.Contains(t, out, "  - Le {chat} dort\n")
}

func TestAdd_DefaultLanguageFromConfig(t *testing.T) {
	h := newHarness(t)
	h.mustRun("add", "dog", "a pet")

	entries := h.entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "en", entries[0].Lang)
	assert.Equal(t, []string{"a pet"}, entries[0].Definitions)
}

func TestAdd_DuplicateShadowsAndWarns(t *testing.T) {
	h := newHarness(t)
	h.mustRun("add", "dog", "first")
	h.mustRun("add", "dog", "second")

	assert.Equal(t, 1, h.logs.FilterMessageSnippet("already exists").Len())
	assert.Len(t, h.entries(), 2)

	out := h.mustRun("lookup", "dog")
	assert.Contains(t, out, "① second")
}

func TestAdd_Append(t *testing.T) {
	h := newHarness(t)
	h.mustRun("add", "dog", "first")
	out := h.mustRun("add", "dog", "second", "--append")

	assert.Equal(t, "Added a definition to dog!\n", out)
	entries := h.entries()
	require.Len(t, entries, 1)
	assert.Equal(t, []string{"first", "second"}, entries[0].Definitions)
}

func TestEdit(t *testing.T) {
	h := newHarness(t)
	h.mustRun("add", "dog", "first")

	t.Run("overwrite slot", func(t *testing.T) {
		out := h.mustRun("edit", "dog", "hound", "--slot", "1")
		assert.Equal(t, "Successfully edited dog!\n", out)
		assert.Equal(t, []string{"hound"}, h.entries()[0].Definitions)
	})

	t.Run("slot out of range", func(t *testing.T) {
		_, _, err := h.run("edit", "dog", "x", "--slot", "3")
		assert.ErrorIs(t, err, vocab.ErrSlotOutOfRange)
		assert.EqualError(t, err, "dog only has 1 definitions (requested 3)")
	})

	t.Run("append and slot together", func(t *testing.T) {
		_, _, err := h.run("edit", "dog", "x", "--slot", "1", "--append")
		assert.ErrorIs(t, err, vocab.ErrInvalidArguments)
	})

	t.Run("neither append nor slot", func(t *testing.T) {
		_, _, err := h.run("edit", "dog", "x")
		assert.ErrorIs(t, err, vocab.ErrInvalidArguments)
	})

	t.Run("unknown word", func(t *testing.T) {
		_, _, err := h.run("edit", "cat", "x", "--append")
		assert.ErrorIs(t, err, vocab.ErrEntryNotFound)
	})

	assert.Equal(t, []string{"hound"}, h.entries()[0].Definitions)
}

func TestEdit_VerboseShowsDiff(t *testing.T) {
	h := newHarness(t)
	h.mustRun("add", "dog", "first")

	out := h.mustRun("edit", "dog", "hound", "-n", "1", "-v")
	assert.Contains(t, out, "Before:\n{\"word\":\"dog\",\"lang\":\"en\",\"definitions\":[\"first\"],\"tags\":[],\"examples\":[]}\n")
	assert.Contains(t, out, "After:\n")
	assert.Contains(t, out, "--- before\n+++ after\n")
	assert.Contains(t, out, "-    \"first\"\n+    \"hound\"\n")
}

func TestTagAndUntag(t *testing.T) {
	h := newHarness(t)
	h.mustRun("add", "dog", "a pet")

	h.mustRun("tag", "dog", "animal")
	out := h.mustRun("tag", "dog", "animal")
	assert.Equal(t, "dog is already tagged #animal\n", out)
	assert.Equal(t, []string{"animal"}, h.entries()[0].Tags)

	out = h.mustRun("untag", "dog", "animal")
	assert.Equal(t, "Removed #animal from dog\n", out)
	assert.Empty(t, h.entries()[0].Tags)

	out = h.mustRun("untag", "dog", "animal")
	assert.Equal(t, "dog is not tagged #animal\n", out)

	_, _, err := h.run("tag", "cat", "animal")
	assert.ErrorIs(t, err, vocab.ErrEntryNotFound)
}

func TestExample_UnclosedBraceWarns(t *testing.T) {
	h := newHarness(t)
	h.mustRun("add", "dog", "a pet")
	h.mustRun("example", "dog", "the {dog barks")

	assert.Equal(t, 1, h.logs.FilterMessageSnippet("unclosed brace").Len())
	assert.Equal(t, []string{"the {dog barks"}, h.entries()[0].Examples)
}

func TestDelete(t *testing.T) {
	h := newHarness(t)
	h.mustRun("add", "dog", "a pet")
	h.mustRun("add", "cat", "another pet")

	out := h.mustRun("delete", "dog")
	assert.Equal(t, "Successfully deleted dog!\n", out)
	entries := h.entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "cat", entries[0].Word)

	_, _, err := h.run("delete", "dog")
	assert.ErrorIs(t, err, vocab.ErrEntryNotFound)
}

func TestList(t *testing.T) {
	h := newHarness(t)
	h.mustRun("add", "dog", "a pet")
	h.mustRun("add", "chat", "cat", "-l", "fr")
	h.mustRun("tag", "chat", "animal", "-l", "fr")
	h.mustRun("add", "chien", "dog", "-l", "fr")

	out := h.mustRun("list")
	assert.Equal(t, strings.Join([]string{
		"entry      | lang | definition",
		"-----------+------+--------------",
		"dog        | en   | ① a pet",
		"chat       | fr   | ① cat",
		"chien      | fr   | ① dog",
		"",
	}, "\n"), out)

	out = h.mustRun("list", "fr", "--tags", "animal", "--show-tags")
	assert.Contains(t, out, "chat       | fr   | ① cat\n#animal\n")
	assert.NotContains(t, out, "chien")

	out = h.mustRun("list", "--match", "ch*")
	assert.NotContains(t, out, "dog        |")
	assert.Contains(t, out, "chien")

	_, _, err := h.run("list", "--match", "[")
	assert.ErrorIs(t, err, vocab.ErrInvalidArguments)
}

func TestLookup_NotFound(t *testing.T) {
	h := newHarness(t)
	h.mustRun("add", "dog", "a pet")

	_, _, err := h.run("lookup", "dog", "fr")
	assert.ErrorIs(t, err, vocab.ErrEntryNotFound)
	assert.EqualError(t, err, `could not find entry "dog" (fr)`)
}

func TestCorruptStoreIsReplaced(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, os.WriteFile(h.store, []byte("{not json"), 0o644))

	h.mustRun("add", "dog", "a pet")
	assert.Equal(t, 1, h.logs.FilterMessageSnippet("unreadable").Len())
	assert.Len(t, h.entries(), 1)
}

func TestCloze(t *testing.T) {
	h := newHarness(t)
	h.mustRun("add", "chat", "cat", "-l", "fr")
	h.mustRun("example", "chat", "Le {chat} dort", "-l", "fr")

	h.stdin = "chien\nchat\n"
	out := h.mustRun("cloze")
	assert.Contains(t, out, "Le {...} dort\n")
	assert.Contains(t, out, "Not quite, try again.\n")
	assert.Contains(t, out, "Correct!\n")
}

func TestCloze_EndOfInputAborts(t *testing.T) {
	h := newHarness(t)
	h.mustRun("add", "chat", "cat", "-l", "fr")
	h.mustRun("example", "chat", "Le {chat} dort", "-l", "fr")

	h.stdin = "chien\n"
	out := h.mustRun("cloze")
	assert.Contains(t, out, "Quiz aborted.\n")
	assert.NotContains(t, out, "Correct!")
}

func TestCloze_NoCandidates(t *testing.T) {
	h := newHarness(t)
	h.mustRun("add", "dog", "a pet")

	_, _, err := h.run("cloze")
	assert.ErrorIs(t, err, vocab.ErrNoClozeAvailable)
}

func TestInteractiveCommandsRejectStdinStore(t *testing.T) {
	h := newHarness(t)
	h.stdin = `[{"word":"chat","lang":"fr","definitions":["cat"],"tags":[],"examples":["Le {chat} dort"]}]`

	for _, name := range []string{"cloze", "browse"} {
		t.Run(name, func(t *testing.T) {
			_, _, err := h.run(name, "--input", "-")
			assert.ErrorIs(t, err, vocab.ErrInvalidArguments)
		})
	}
}

func TestStdoutStream(t *testing.T) {
	h := newHarness(t)
	h.mustRun("add", "dog", "a pet")

	stdout, stderr, err := h.run("tag", "dog", "animal", "--output", "-")
	require.NoError(t, err)
	assert.Equal(t, "Tagged dog with #animal\n", stderr)
	assert.Equal(t, `[{"word":"dog","lang":"en","definitions":["a pet"],"tags":["animal"],"examples":[]}]`+"\n", stdout)

	// The store file itself is untouched.
	assert.Empty(t, h.entries()[0].Tags)
}

func TestUnchangedTagsStillWriteOutput(t *testing.T) {
	h := newHarness(t)
	h.mustRun("add", "dog", "a pet")
	h.mustRun("tag", "dog", "animal")
	want := `[{"word":"dog","lang":"en","definitions":["a pet"],"tags":["animal"],"examples":[]}]` + "\n"

	stdout, stderr, err := h.run("tag", "dog", "animal", "--output", "-")
	require.NoError(t, err)
	assert.Equal(t, "dog is already tagged #animal\n", stderr)
	assert.Equal(t, want, stdout)

	stdout, stderr, err = h.run("untag", "dog", "missing", "--output", "-")
	require.NoError(t, err)
	assert.Equal(t, "dog is not tagged #missing\n", stderr)
	assert.Equal(t, want, stdout)

	copyPath := filepath.Join(h.dir, "copy.clvdb")
	h.mustRun("untag", "dog", "missing", "--output", copyPath)
	res := storage.New(copyPath, "").Load()
	require.Equal(t, storage.StatusLoaded, res.Status)
	assert.Equal(t, []string{"animal"}, res.Store.At(0).Tags)
}

func TestExport(t *testing.T) {
	h := newHarness(t)
	h.mustRun("add", "dog", "a pet")
	h.mustRun("add", "chat", "cat", "-l", "fr")

	out := h.mustRun("export", "fr")
	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"word", "lang", "definitions", "tags", "examples"},
		{"chat", "fr", "cat", "", ""},
	}, records)

	path := filepath.Join(h.dir, "vocab.xlsx")
	out = h.mustRun("export", "--format", "xlsx", "--file", path)
	assert.Equal(t, "Exported 2 entries to "+path+"\n", out)
	assert.FileExists(t, path)

	_, _, err = h.run("export", "--format", "sqlite")
	assert.ErrorIs(t, err, vocab.ErrInvalidArguments)

	_, _, err = h.run("export", "--format", "pdf")
	assert.ErrorIs(t, err, vocab.ErrInvalidArguments)
}

func TestConfig(t *testing.T) {
	h := newHarness(t)

	out := h.mustRun("config", "get", "language")
	assert.Equal(t, "en\n", out)

	h.mustRun("config", "set", "language", "fr")
	out = h.mustRun("config", "get", "language")
	assert.Equal(t, "fr\n", out)

	h.mustRun("add", "chat", "cat")
	assert.Equal(t, "fr", h.entries()[0].Lang)

	_, _, err := h.run("config", "set", "log.level", "loud")
	assert.Error(t, err)

	_, _, err = h.run("config", "get", "colour")
	assert.Error(t, err)

	out = h.mustRun("config", "path")
	assert.Equal(t, h.config+"\n", out)
}
