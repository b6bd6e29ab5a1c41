// Package schema validates JSON documents against named JSON Schemas and
// decodes them onto typed values.
package schema

import "fmt"

// Schema is a named JSON Schema definition.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// ErrInvalid indicates a document is malformed JSON or does not conform
// to its schema.
type ErrInvalid struct {
	Schema string
	Err    error
}

func (e *ErrInvalid) Error() string {
	return fmt.Sprintf("invalid %s document: %v", e.Schema, e.Err)
}

func (e *ErrInvalid) Unwrap() error { return e.Err }
