package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/ashleyclx/yapper/internal/utils"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed config.schema.json
var schemaJSON string

const schemaURL = "https://github.com/ashleyclx/yapper/config.schema.json"

// ErrInvalidConfig is matched by every ValidationError.
var ErrInvalidConfig = errors.New("invalid configuration")

// ValidationError describes one schema violation.
type ValidationError struct {
	File    string
	Path    string
	Message string
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	if e.File != "" {
		b.WriteString(e.File)
		b.WriteString(": ")
	}
	if e.Path != "" {
		b.WriteString(e.Path)
		b.WriteString(": ")
	}
	b.WriteString(e.Message)
	return b.String()
}

func (e *ValidationError) Unwrap() error { return ErrInvalidConfig }

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func configSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaURL, strings.NewReader(schemaJSON)); err != nil {
			schemaErr = fmt.Errorf("add schema: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile(schemaURL)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("compile schema: %w", schemaErr)
		}
	})
	return compiledSchema, schemaErr
}

// SchemaJSON returns the embedded config JSON Schema.
func SchemaJSON() string {
	return schemaJSON
}

// validateDocument validates a decoded document against the config schema.
// The document is round-tripped through JSON so TOML integer and datetime
// values reach the validator as JSON types.
func validateDocument(file string, doc any) error {
	schema, err := configSchema()
	if err != nil {
		return err
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal config for validation: %w", err)
	}
	var obj interface{}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("unmarshal config for validation: %w", err)
	}

	if err := schema.Validate(obj); err != nil {
		var ve *jsonschema.ValidationError
		if !errors.As(err, &ve) {
			return err
		}
		var errs []error
		collectSchemaErrors(file, ve, &errs)
		if len(errs) == 0 {
			return &ValidationError{File: file, Message: ve.Message}
		}
		return errors.Join(errs...)
	}
	return nil
}

func collectSchemaErrors(file string, err *jsonschema.ValidationError, result *[]error) {
	if err == nil {
		return
	}

	if len(err.Causes) == 0 {
		*result = append(*result, &ValidationError{
			File:    file,
			Path:    utils.JSONPointerToPath(err.InstanceLocation),
			Message: err.Message,
		})
		return
	}

	for _, cause := range err.Causes {
		collectSchemaErrors(file, cause, result)
	}
}

// Validate checks the merged configuration against the config schema.
func (c *Config) Validate() error {
	return validateDocument("", c)
}
