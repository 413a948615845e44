package project

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// ValidateDocument checks a project file against the embedded document
// schema. It returns the schema violation (wrapped) when the document is
// structurally invalid, and nil when it conforms.
func ValidateDocument(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read project: %w", err)
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse project: %w", err)
	}

	// The validator speaks JSON values; round-trip the yaml document
	// through encoding/json to normalize numbers and map keys.
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to normalize project document: %w", err)
	}
	var normalized any
	if err := json.Unmarshal(raw, &normalized); err != nil {
		return fmt.Errorf("failed to normalize project document: %w", err)
	}

	schema, err := jsonschema.CompileString("project.schema.json", documentSchema)
	if err != nil {
		return fmt.Errorf("failed to compile document schema: %w", err)
	}

	if err := schema.Validate(normalized); err != nil {
		return fmt.Errorf("project document is invalid: %w", err)
	}
	return nil
}
