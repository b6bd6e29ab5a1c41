package schema

import (
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "test-object",
		Description: "A test object",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"name":  map[string]any{"type": "string"},
				"age":   map[string]any{"type": "integer", "minimum": 0},
				"grade": map[string]any{"type": "string", "enum": []any{"A", "B", "C"}},
				"seen":  map[string]any{"type": []any{"string", "null"}, "format": "date-time"},
			},
			"required": []any{"name", "age"},
		},
	}
}

func TestValidate_Valid(t *testing.T) {
	if err := Validate(testSchema(), []byte(`{"name":"Alice","age":10,"grade":"A"}`)); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing required", `{"name":"Charlie"}`},
		{"wrong type", `{"name":"Dave","age":"ten"}`},
		{"invalid enum", `{"name":"Eve","age":9,"grade":"D"}`},
		{"below minimum", `{"name":"Fay","age":-1}`},
		{"bad date-time", `{"name":"Gus","age":3,"seen":"yesterday"}`},
		{"malformed", `{not json}`},
		{"empty", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(testSchema(), []byte(tt.raw))
			if err == nil {
				t.Fatal("expected error")
			}
			var inv *ErrInvalid
			if !errors.As(err, &inv) {
				t.Fatalf("expected *ErrInvalid, got %T", err)
			}
			if inv.Schema != "test-object" {
				t.Errorf("Schema = %q, want test-object", inv.Schema)
			}
		})
	}
}

func TestValidate_NullableDateTime(t *testing.T) {
	for _, raw := range []string{
		`{"name":"A","age":1,"seen":null}`,
		`{"name":"A","age":1,"seen":"2025-01-02T03:04:05.123Z"}`,
	} {
		if err := Validate(testSchema(), []byte(raw)); err != nil {
			t.Errorf("Validate(%s): %v", raw, err)
		}
	}
}

func TestDecode_KeepsDefaults(t *testing.T) {
	type person struct {
		Name  string `json:"name"`
		Age   int    `json:"age"`
		Grade string `json:"grade"`
	}
	p := person{Grade: "B"}

	if err := Decode(testSchema(), []byte(`{"name":"Bob","age":8}`), &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.Name != "Bob" || p.Age != 8 {
		t.Errorf("decoded = %+v", p)
	}
	if p.Grade != "B" {
		t.Errorf("Grade = %q, want default B", p.Grade)
	}
}

func TestDecode_InvalidLeavesDst(t *testing.T) {
	type person struct {
		Name string `json:"name"`
	}
	p := person{Name: "default"}

	if err := Decode(testSchema(), []byte(`{"name":1}`), &p); err == nil {
		t.Fatal("expected error")
	}
	if p.Name != "default" {
		t.Errorf("Name = %q, want untouched default", p.Name)
	}
}

func TestValidate_NilSchema(t *testing.T) {
	if err := Validate(nil, []byte(`{}`)); err == nil {
		t.Fatal("expected error for nil schema")
	}
}

func TestDecode_IntegralNumbersWithFraction(t *testing.T) {
	type person struct {
		Name string `json:"name"`
		Age  int    `json:"age"`
	}

	tests := []struct {
		raw  string
		want int
	}{
		{`{"name":"Ann","age":3.0}`, 3},
		{`{"name":"Ann","age":2e0}`, 2},
		{`{"name":"Ann","age":1.5E1}`, 15},
		{`{"name":"Ann","age":7}`, 7},
	}

	for _, tt := range tests {
		if err := Validate(testSchema(), []byte(tt.raw)); err != nil {
			t.Fatalf("%s: validate: %v", tt.raw, err)
		}
		var p person
		if err := Decode(testSchema(), []byte(tt.raw), &p); err != nil {
			t.Fatalf("%s: decode: %v", tt.raw, err)
		}
		if p.Age != tt.want || p.Name != "Ann" {
			t.Errorf("%s: decoded = %+v, want age %d", tt.raw, p, tt.want)
		}
	}
}

func TestDecode_FractionalNumberRejected(t *testing.T) {
	var p struct {
		Age int `json:"age"`
	}
	if err := Decode(testSchema(), []byte(`{"name":"Ann","age":2.5}`), &p); err == nil {
		t.Fatal("expected error for non-integral age")
	}
}
