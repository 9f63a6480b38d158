package schema

import (
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// StoreSchema describes the on-disk vocabulary document. Older files may
// omit tags and examples, and definition slots may be null.
const StoreSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["word"],
    "properties": {
      "word":        {"type": "string"},
      "lang":        {"type": "string"},
      "definitions": {"type": "array", "items": {"type": ["string", "null"]}},
      "tags":        {"type": "array", "items": {"type": "string"}},
      "examples":    {"type": "array", "items": {"type": "string"}}
    }
  }
}`

// Validator checks JSON documents against a compiled schema.
type Validator struct {
	schema *gojsonschema.Schema
}

// NewValidator compiles schemaJSON.
func NewValidator(schemaJSON string) (*Validator, error) {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("invalid schema definition: %w", err)
	}
	return &Validator{schema: s}, nil
}

var (
	storeOnce      sync.Once
	storeValidator *Validator
)

// Store returns the validator for StoreSchema.
func Store() *Validator {
	storeOnce.Do(func() {
		v, err := NewValidator(StoreSchema)
		if err != nil {
			panic(err)
		}
		storeValidator = v
	})
	return storeValidator
}

// Validate checks doc against the schema.
func (v *Validator) Validate(doc []byte) error {
	result, err := v.schema.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return fmt.Errorf("validation execution failed: %w", err)
	}

	if result.Valid() {
		return nil
	}

	var errs []string
	for _, desc := range result.Errors() {
		errs = append(errs, desc.String())
	}
	return fmt.Errorf("schema validation failed:\n- %s", dumpErrors(errs))
}

// dumpErrors keeps the first three messages.
func dumpErrors(errs []string) string {
	if len(errs) <= 3 {
		return strings.Join(errs, "\n- ")
	}
	return strings.Join(errs[:3], "\n- ") + fmt.Sprintf("... and %d more", len(errs)-3)
}
