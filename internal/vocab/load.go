package vocab

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	_ "embed"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed vocabulary_schema.json
var schemaJSON string

//go:embed default_vocabulary.json
var defaultJSON []byte

// Load reads a vocabulary configuration file, validates it against the
// vocabulary JSON Schema, and compiles it. Any failure is a ConfigError.
func Load(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{
			Message: fmt.Sprintf("failed to read vocabulary file %s", path),
			Cause:   err,
		}
	}
	return Parse(data)
}

// Default returns the built-in vocabulary shipped with the binary.
func Default() (*Vocabulary, error) {
	return Parse(defaultJSON)
}

// Parse validates raw JSON against the vocabulary schema and compiles it.
func Parse(data []byte) (*Vocabulary, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schemaJSON),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, &ConfigError{Message: "vocabulary is not valid JSON", Cause: err}
	}
	if !result.Valid() {
		messages := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			messages = append(messages, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
		}
		return nil, &ConfigError{
			Message: "vocabulary does not match schema: " + strings.Join(messages, "; "),
		}
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, &ConfigError{Message: "failed to decode vocabulary JSON", Cause: err}
	}

	return New(file.Skills)
}
