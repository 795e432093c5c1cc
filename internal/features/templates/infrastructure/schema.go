package infrastructure

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const templatesSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "minProperties": 1,
  "additionalProperties": {
    "type": "object",
    "required": ["prefix", "suffix"],
    "properties": {
      "prefix": {"type": "string"},
      "suffix": {"type": "string"}
    }
  }
}`

const practicesSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "minProperties": 1,
  "additionalProperties": {
    "type": "object",
    "required": [
      "detailed_format", "step_instructions", "concise_format", "constraints",
      "example_format", "output_format", "optimization_hint"
    ],
    "properties": {
      "detailed_format":   {"type": "string"},
      "step_instructions": {"type": "string"},
      "concise_format":    {"type": "string"},
      "constraints":       {"type": "string"},
      "example_format":    {"type": "string"},
      "output_format":     {"type": "string"},
      "optimization_hint": {"type": "string"}
    }
  }
}`

var schemaPrinter = message.NewPrinter(language.English)

var (
	templatesSchema = mustCompileSchema(templatesSchemaJSON, "prompt_templates.schema.json")
	practicesSchema = mustCompileSchema(practicesSchemaJSON, "model_best_practices.schema.json")
)

func mustCompileSchema(raw, name string) *jsonschema.Schema {
	var doc any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		panic(fmt.Sprintf("failed to parse embedded %s: %v", name, err))
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, doc); err != nil {
		panic(fmt.Sprintf("failed to add %s resource: %v", name, err))
	}
	sch, err := compiler.Compile(name)
	if err != nil {
		panic(fmt.Sprintf("failed to compile %s: %v", name, err))
	}
	return sch
}

// validateDocument returns one message per schema violation, or nil.
func validateDocument(schema *jsonschema.Schema, doc any) []string {
	err := schema.Validate(doc)
	if err == nil {
		return nil
	}
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return []string{fmt.Sprintf("schema: %v", err)}
	}
	var errs []string
	collectSchemaErrors(ve, &errs)
	return errs
}

func collectSchemaErrors(ve *jsonschema.ValidationError, errs *[]string) {
	if len(ve.Causes) == 0 {
		loc := "/"
		if len(ve.InstanceLocation) > 0 {
			loc = "/" + strings.Join(ve.InstanceLocation, "/")
		}
		*errs = append(*errs, fmt.Sprintf("%s: %s", loc, ve.ErrorKind.LocalizedString(schemaPrinter)))
		return
	}
	for _, cause := range ve.Causes {
		collectSchemaErrors(cause, errs)
	}
}
