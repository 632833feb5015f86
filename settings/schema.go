package settings

import (
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
)

// SchemaDraft is the JSON Schema dialect of [Schema].
const SchemaDraft = "https://json-schema.org/draft/2020-12/schema"

// Schema returns the indented JSON Schema describing [File].
func Schema() ([]byte, error) {
	s, err := jsonschema.For[File](nil)
	if err != nil {
		return nil, fmt.Errorf("inferring settings schema: %w", err)
	}

	s.Schema = SchemaDraft
	s.Title = "headercommenter settings"

	out, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding settings schema: %w", err)
	}

	return append(out, '\n'), nil
}
