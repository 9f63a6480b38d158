package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jeanpaul/clv/internal/storage"
)

// Keys lists the settings accepted by Get and Set.
var Keys = []string{"language", "input", "output", "log.level", "log.format"}

func checkKey(key string) error {
	if !slices.Contains(Keys, key) {
		return fmt.Errorf("config: unknown key %q (known keys: %s)", key, strings.Join(Keys, ", "))
	}
	return nil
}

// Get returns the effective value of key.
func (c *Config) Get(key string) (string, error) {
	if err := checkKey(key); err != nil {
		return "", err
	}
	switch key {
	case "language":
		return c.Language, nil
	case "input":
		return c.Input, nil
	case "output":
		return c.Output, nil
	case "log.level":
		return c.Log.Level, nil
	default:
		return c.Log.Format, nil
	}
}

// Set writes key=value into the YAML file at path, keeping any other keys
// already there. The result must still validate.
func Set(path, key, value string) error {
	if err := checkKey(key); err != nil {
		return err
	}

	doc := map[string]any{}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("config: parse %s: %w", path, err)
		}
		if doc == nil {
			doc = map[string]any{}
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return fmt.Errorf("config: %w", err)
	}

	setNested(doc, strings.Split(key, "."), value)

	out, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}

	check := DefaultConfig()
	if err := yaml.Unmarshal(out, check); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := check.Validate(); err != nil {
		return err
	}

	return storage.WriteFileAtomic(path, out, 0o644)
}

func setNested(doc map[string]any, parts []string, value string) {
	for _, p := range parts[:len(parts)-1] {
		next, ok := doc[p].(map[string]any)
		if !ok {
			next = map[string]any{}
			doc[p] = next
		}
		doc = next
	}
	doc[parts[len(parts)-1]] = value
}
