package validation

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// SchemaValidator validates JSON documents against named JSON schemas
type SchemaValidator interface {
	ValidateBytes(data []byte, schemaName string) error
}

type schemaValidator struct {
	fsys     fs.FS
	mu       sync.Mutex
	compiler *jsonschema.Compiler
	schemas  map[string]*jsonschema.Schema
}

// NewSchemaValidator creates a validator that reads schema files from fsys.
// Schema names are paths inside fsys.
func NewSchemaValidator(fsys fs.FS) SchemaValidator {
	return &schemaValidator{
		fsys:     fsys,
		compiler: jsonschema.NewCompiler(),
		schemas:  make(map[string]*jsonschema.Schema),
	}
}

// ValidateBytes validates JSON data bytes against a schema
func (v *schemaValidator) ValidateBytes(data []byte, schemaName string) error {
	schema, err := v.loadSchema(schemaName)
	if err != nil {
		return fmt.Errorf("failed to load schema %s: %w", schemaName, err)
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse JSON data: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return formatValidationError(err)
	}

	return nil
}

// loadSchema compiles a schema once and caches it
func (v *schemaValidator) loadSchema(name string) (*jsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if schema, ok := v.schemas[name]; ok {
		return schema, nil
	}

	raw, err := fs.ReadFile(v.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}

	var schemaJSON interface{}
	if err := json.Unmarshal(raw, &schemaJSON); err != nil {
		return nil, fmt.Errorf("failed to parse schema JSON: %w", err)
	}

	url := resourceURL(name)
	if err := v.compiler.AddResource(url, schemaJSON); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}

	schema, err := v.compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	v.schemas[name] = schema
	return schema, nil
}

// resourceURL gives an embedded schema a stable absolute location so the
// compiler never tries to resolve it against the working directory
func resourceURL(name string) string {
	return "mem:///" + strings.TrimPrefix(name, "/")
}

// formatValidationError formats validation errors to be user-friendly
func formatValidationError(err error) error {
	if validationErr, ok := err.(*jsonschema.ValidationError); ok {
		var errors []string
		collectErrors(validationErr, &errors)
		return fmt.Errorf("schema validation failed:\n%s", strings.Join(errors, "\n"))
	}
	return fmt.Errorf("validation error: %w", err)
}

// collectErrors recursively collects all validation errors
func collectErrors(err *jsonschema.ValidationError, errors *[]string) {
	if msg := formatError(err); msg != "" {
		*errors = append(*errors, msg)
	}
	for _, cause := range err.Causes {
		collectErrors(cause, errors)
	}
}

// formatError formats a single validation error
func formatError(err *jsonschema.ValidationError) string {
	location := strings.Join(err.InstanceLocation, "/")
	if location == "" {
		location = "(root)"
	} else {
		location = "/" + location
	}

	keywords := ""
	if err.ErrorKind != nil {
		if keywordPath := err.ErrorKind.KeywordPath(); len(keywordPath) > 0 {
			keywords = strings.Join(keywordPath, ".")
		}
	}

	if keywords != "" {
		return fmt.Sprintf("  - at %s: %s validation failed", location, keywords)
	}
	return fmt.Sprintf("  - at %s: validation failed", location)
}
