package vocab

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const extrasSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["categories"],
  "properties": {
    "categories": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["title", "items"],
        "properties": {
          "title": {"type": "string", "minLength": 1},
          "items": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["en", "es"],
              "properties": {
                "en": {"type": "string", "minLength": 1},
                "es": {"type": "string", "minLength": 1}
              }
            }
          }
        }
      }
    }
  }
}`

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(extrasSchema))
	if err != nil {
		return nil, err
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("extras.schema.json", doc); err != nil {
		return nil, err
	}
	return compiler.Compile("extras.schema.json")
})

func validate(data []byte) error {
	schema, err := compileSchema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := schema.Validate(inst); err != nil {
		return fmt.Errorf("invalid extras: %w", err)
	}
	return nil
}
