// Package storage reads and writes the vocabulary file.
package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jeanpaul/clv/internal/schema"
	"github.com/jeanpaul/clv/internal/vocab"
)

// StdStream is the path that selects stdin for loading and stdout for saving.
const StdStream = "-"

// LoadStatus classifies the outcome of Load.
type LoadStatus int

const (
	// StatusNew means there was nothing to read: a missing or empty file.
	StatusNew LoadStatus = iota
	// StatusLoaded means the file decoded cleanly.
	StatusLoaded
	// StatusCorrupt means the file existed but could not be used.
	StatusCorrupt
)

func (s LoadStatus) String() string {
	switch s {
	case StatusNew:
		return "new"
	case StatusLoaded:
		return "loaded"
	case StatusCorrupt:
		return "corrupt"
	default:
		return fmt.Sprintf("LoadStatus(%d)", int(s))
	}
}

// LoadResult carries the loaded store. Store is never nil; a corrupt file
// yields an empty store and the cause in Err.
type LoadResult struct {
	Store  *vocab.Store
	Status LoadStatus
	Err    error
}

// FileStore moves a vocab.Store between memory and disk.
type FileStore struct {
	Input  string
	Output string

	// Stdin and Stdout back the "-" path.
	Stdin  io.Reader
	Stdout io.Writer
}

// New returns a FileStore reading input and writing output. An empty
// output writes back to input.
func New(input, output string) *FileStore {
	if output == "" {
		output = input
	}
	return &FileStore{
		Input:  input,
		Output: output,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
	}
}

// Load reads the input. It never fails; see LoadResult.
func (f *FileStore) Load() LoadResult {
	data, err := f.read()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return LoadResult{Store: vocab.NewStore(), Status: StatusNew}
		}
		return corrupt(err)
	}
	return Decode(data)
}

func (f *FileStore) read() ([]byte, error) {
	if f.Input == StdStream {
		return io.ReadAll(f.Stdin)
	}
	return os.ReadFile(f.Input)
}

func corrupt(err error) LoadResult {
	return LoadResult{Store: vocab.NewStore(), Status: StatusCorrupt, Err: err}
}

// Decode parses a store document.
func Decode(data []byte) LoadResult {
	if len(bytes.TrimSpace(data)) == 0 {
		return LoadResult{Store: vocab.NewStore(), Status: StatusNew}
	}
	if err := schema.Store().Validate(data); err != nil {
		return corrupt(err)
	}

	var entries []vocab.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return corrupt(fmt.Errorf("decode store: %w", err))
	}
	return LoadResult{Store: vocab.NewStore(entries...), Status: StatusLoaded}
}

// Encode renders the store as a compact JSON array followed by a newline.
func Encode(s *vocab.Store) ([]byte, error) {
	entries := s.Entries()
	if entries == nil {
		entries = []vocab.Entry{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(entries); err != nil {
		return nil, fmt.Errorf("encode store: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes the whole store to the output, replacing the file atomically.
func (f *FileStore) Save(s *vocab.Store) error {
	data, err := Encode(s)
	if err != nil {
		return err
	}
	if f.Output == StdStream {
		_, err := f.Stdout.Write(data)
		return err
	}
	return WriteFileAtomic(f.Output, data, 0o644)
}

// WriteFileAtomic writes data to a temp file beside path and renames it into
// place, so readers see either the old or the new content.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("chmod %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
