package schema

import (
	"encoding/json"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	yaml "gopkg.in/yaml.v3"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// JSONSchema is a JSON-encoded schema that supports unmarshalling from both
// JSON and YAML sources. When unmarshalling from YAML, the YAML node is first
// decoded to a native Go value and then marshalled to JSON bytes.
type JSONSchema json.RawMessage

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewJSONSchema creates a JSONSchema from raw JSON bytes.
func NewJSONSchema(data json.RawMessage) JSONSchema {
	return JSONSchema(data)
}

// ToSchema derives the JSON schema document for the type T, which is
// typically the argument struct of a function tool. Field names follow the
// json struct tags, and the jsonschema tag supplies descriptions.
func ToSchema[T any]() (JSONSchema, error) {
	s, err := jsonschema.For[T](nil)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return JSONSchema(data), nil
}

////////////////////////////////////////////////////////////////////////////////
// METHODS

// Bytes returns the underlying JSON bytes.
func (s JSONSchema) Bytes() []byte {
	return []byte(s)
}

// Value decodes the schema into a generic JSON value
func (s JSONSchema) Value() (map[string]any, error) {
	if len(s) == 0 {
		return nil, nil
	}
	var v map[string]any
	if err := json.Unmarshal(s, &v); err != nil {
		return nil, err
	}
	return v, nil
}

////////////////////////////////////////////////////////////////////////////////
// JSON MARSHALLING

func (s JSONSchema) MarshalJSON() ([]byte, error) {
	if len(s) == 0 {
		return []byte("null"), nil
	}
	return []byte(s), nil
}

func (s *JSONSchema) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = nil
		return nil
	}
	*s = append((*s)[:0], data...)
	return nil
}

////////////////////////////////////////////////////////////////////////////////
// YAML UNMARSHALLING

func (s *JSONSchema) UnmarshalYAML(node *yaml.Node) error {
	var v any
	if err := node.Decode(&v); err != nil {
		return err
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	*s = data
	return nil
}
