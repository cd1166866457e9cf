// Package manifest validates generated composer manifests against the
// bundled JSON Schema.
package manifest

import (
	"embed"
	"fmt"
	"os"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/composer.schema.json
var schemaFS embed.FS

// Issue describes a single schema violation.
type Issue struct {
	Field       string
	Description string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Field, i.Description)
}

// ValidateFile validates the composer.json at path. A nil, empty slice
// means the manifest is valid.
func ValidateFile(path string) ([]Issue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Validate(data)
}

// Validate validates raw composer.json bytes.
func Validate(data []byte) ([]Issue, error) {
	schemaBytes, err := schemaFS.ReadFile("schemas/composer.schema.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded schema: %w", err)
	}

	schemaLoader := gojsonschema.NewBytesLoader(schemaBytes)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	if result.Valid() {
		return nil, nil
	}

	issues := make([]Issue, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		issues = append(issues, Issue{Field: e.Field(), Description: e.Description()})
	}
	return issues, nil
}
