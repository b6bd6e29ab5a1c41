package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// schemaCache caches compiled JSON schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// Validate checks raw JSON against s.
// Returns *ErrInvalid on failure.
func Validate(s *Schema, raw []byte) error {
	_, err := validate(s, raw)
	return err
}

// Decode validates raw against s and unmarshals it onto dst. Fields absent
// from raw keep whatever value dst already holds, so callers seed dst with
// defaults first.
//
// The validated document is what gets decoded: integral numbers written
// with a fraction or exponent (3.0, 2e0) satisfy "integer" in the schema
// and are rewritten so they also decode into Go integer fields.
func Decode(s *Schema, raw []byte, dst any) error {
	doc, err := validate(s, raw)
	if err != nil {
		return err
	}
	canonical, err := json.Marshal(normalizeNumbers(doc))
	if err != nil {
		return &ErrInvalid{Schema: s.Name, Err: fmt.Errorf("decode: %w", err)}
	}
	if err := json.Unmarshal(canonical, dst); err != nil {
		return &ErrInvalid{Schema: s.Name, Err: fmt.Errorf("decode: %w", err)}
	}
	return nil
}

func validate(s *Schema, raw []byte) (any, error) {
	if s == nil {
		return nil, fmt.Errorf("validate: nil schema")
	}

	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, &ErrInvalid{Schema: s.Name, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	compiled, err := compiled(s)
	if err != nil {
		return nil, &ErrInvalid{Schema: s.Name, Err: fmt.Errorf("compile schema: %w", err)}
	}

	if err := compiled.Validate(parsed); err != nil {
		return nil, &ErrInvalid{Schema: s.Name, Err: fmt.Errorf("schema validation failed: %w", err)}
	}
	return parsed, nil
}

// normalizeNumbers rewrites integral json.Number values in place to plain
// integer literals. Other values are returned unchanged.
func normalizeNumbers(v any) any {
	switch v := v.(type) {
	case map[string]any:
		for k, e := range v {
			v[k] = normalizeNumbers(e)
		}
		return v
	case []any:
		for i, e := range v {
			v[i] = normalizeNumbers(e)
		}
		return v
	case json.Number:
		if !strings.ContainsAny(string(v), ".eE") {
			return v
		}
		r, ok := new(big.Rat).SetString(string(v))
		if !ok || !r.IsInt() {
			return v
		}
		return json.Number(r.Num().String())
	}
	return v
}

// compiled returns a cached compiled schema or compiles and caches it.
func compiled(s *Schema) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(s.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The compiler wants a generic JSON value; round-trip the definition
	// so Go-typed literals ([]string, int) become []any and float64.
	defBytes, err := json.Marshal(s.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	defParsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(defBytes))
	if err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	c.AssertFormat()
	url := fmt.Sprintf("schema://%s.json", s.Name)
	if err := c.AddResource(url, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	sch, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(s.Name, sch)
	return sch, nil
}
