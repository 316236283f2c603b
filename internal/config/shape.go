package config

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed document.schema.json
var documentSchemaJSON string

var (
	documentSchemaOnce sync.Once
	documentSchema     *gojsonschema.Schema
	documentSchemaErr  error
)

func compiledSchema() (*gojsonschema.Schema, error) {
	documentSchemaOnce.Do(func() {
		documentSchema, documentSchemaErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(documentSchemaJSON))
	})
	return documentSchema, documentSchemaErr
}

// checkShape validates required keys and value types of a raw document.
// Every failure is reported as ErrMalformedDocument.
func checkShape(doc map[string]interface{}) error {
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("failed to compile document schema: %w", err)
	}

	result, err := schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return ValidationErrors{malformed("", "%v", err)}
	}
	if result.Valid() {
		return nil
	}

	var errs ValidationErrors
	for _, desc := range result.Errors() {
		errs = append(errs, malformed(schemaField(desc), "%s", desc.Description()))
	}
	return errs
}

// schemaField turns a gojsonschema error location into a dotted document path.
func schemaField(desc gojsonschema.ResultError) string {
	field := desc.Field()
	if field == gojsonschema.STRING_ROOT_SCHEMA_PROPERTY {
		field = ""
	}
	if desc.Type() != "required" {
		return field
	}
	prop, _ := desc.Details()["property"].(string)
	if field == "" {
		return prop
	}
	return field + "." + prop
}
