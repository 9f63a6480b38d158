package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeanpaul/clv/internal/vocab"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileIsNew(t *testing.T) {
	fs := New(filepath.Join(t.TempDir(), "absent.clvdb"), "")

	res := fs.Load()

	assert.Equal(t, StatusNew, res.Status)
	assert.NoError(t, res.Err)
	assert.Zero(t, res.Store.Len())
}

func TestLoad_EmptyFileIsNew(t *testing.T) {
	res := New(writeFile(t, "main.clvdb", "  \n"), "").Load()

	assert.Equal(t, StatusNew, res.Status)
	assert.Zero(t, res.Store.Len())
}

func TestLoad_InvalidJSONIsCorrupt(t *testing.T) {
	res := New(writeFile(t, "main.clvdb", `[{"word": "chat",`), "").Load()

	assert.Equal(t, StatusCorrupt, res.Status)
	assert.Error(t, res.Err)
	require.NotNil(t, res.Store)
	assert.Zero(t, res.Store.Len())
}

func TestLoad_WrongShapeIsCorrupt(t *testing.T) {
	res := New(writeFile(t, "main.clvdb", `{"word": "chat"}`), "").Load()

	assert.Equal(t, StatusCorrupt, res.Status)
	assert.Contains(t, res.Err.Error(), "schema validation failed")
}

func TestLoad_LegacyEntries(t *testing.T) {
	res := New(writeFile(t, "main.clvdb", `[{"word":"chat","lang":"fr","definitions":["cat",null]}]`), "").Load()

	require.Equal(t, StatusLoaded, res.Status)
	e := res.Store.At(0)
	assert.Equal(t, []string{"cat", ""}, e.Definitions)
	assert.Equal(t, []string{}, e.Tags)
	assert.Equal(t, []string{}, e.Examples)
}

func TestLoad_Stdin(t *testing.T) {
	fs := New(StdStream, filepath.Join(t.TempDir(), "out.clvdb"))
	fs.Stdin = strings.NewReader(`[{"word":"a","lang":"en","definitions":["x"],"tags":[],"examples":[]}]`)

	res := fs.Load()

	require.Equal(t, StatusLoaded, res.Status)
	assert.Equal(t, 0, res.Store.Find("a", "en"))
}

func TestSave_RoundTripIsByteIdentical(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "main.clvdb")
	fs := New(path, "")

	s := vocab.NewStore(
		vocab.Entry{Word: "chat", Lang: "fr", Definitions: []string{"cat", "", "<talk>"}, Tags: []string{"noun"}, Examples: []string{"Le {chat} dort"}},
		vocab.Entry{Word: "über", Lang: "de", Definitions: []string{"over"}},
	)
	require.NoError(t, fs.Save(s))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	res := fs.Load()
	require.Equal(t, StatusLoaded, res.Status)
	require.NoError(t, fs.Save(res.Store))
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
	assert.Contains(t, string(first), `"<talk>"`, "HTML escaping is off")
	assert.True(t, bytes.HasPrefix(first, []byte(`[{"word":"chat","lang":"fr",`)))
}

func TestSave_EmptyStoreIsArray(t *testing.T) {
	data, err := Encode(vocab.NewStore())
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestSave_Stdout(t *testing.T) {
	var out bytes.Buffer
	fs := New(StdStream, StdStream)
	fs.Stdout = &out

	require.NoError(t, fs.Save(vocab.NewStore(vocab.NewEntry("a", "en", "x"))))

	assert.Equal(t, `[{"word":"a","lang":"en","definitions":["x"],"tags":[],"examples":[]}]`+"\n", out.String())
}

func TestWriteFileAtomic_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.clvdb")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	require.NoError(t, WriteFileAtomic(path, []byte("new"), 0o644))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestLoadStatus_String(t *testing.T) {
	assert.Equal(t, "corrupt", StatusCorrupt.String())
	assert.Equal(t, "LoadStatus(9)", LoadStatus(9).String())
}
