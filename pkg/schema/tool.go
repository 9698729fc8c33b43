package schema

import (
	"encoding/json"

	// Packages
	llm "github.com/mutablelogic/go-llm-sdk"
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type ToolType string

// Tool is a function the model may call
type Tool struct {
	Type     ToolType     `json:"type" yaml:"type"`
	Function FunctionInfo `json:"function" yaml:"function"`
}

// FunctionInfo describes a function tool. Parameters is the JSON schema
// of the function arguments.
type FunctionInfo struct {
	Description string     `json:"description,omitempty" yaml:"description"`
	Name        string     `json:"name" yaml:"name"`
	Parameters  JSONSchema `json:"parameters" yaml:"parameters"`
}

// ToolCall is a request from the model to call a tool
type ToolCall struct {
	ID       string       `json:"id"`
	Type     ToolType     `json:"type"`
	Function FunctionCall `json:"function"`
}

// FunctionCall holds the name of the function to call, and the arguments
// as the JSON-encoded string the model produced
type FunctionCall struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ToolTypeFunction ToolType = "function"
	DefaultToolType           = ToolTypeFunction
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewFunctionTool returns a function tool whose parameters are the JSON
// schema of T
func NewFunctionTool[T any](name, description string) (Tool, error) {
	if name == "" {
		return Tool{}, llm.ErrMissingField.With("name")
	}
	parameters, err := ToSchema[T]()
	if err != nil {
		return Tool{}, err
	}
	return NewTool(name, description, parameters), nil
}

// NewTool returns a function tool with an existing parameter schema
func NewTool(name, description string, parameters JSONSchema) Tool {
	return Tool{
		Type: DefaultToolType,
		Function: FunctionInfo{
			Name:        name,
			Description: description,
			Parameters:  parameters,
		},
	}
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (t Tool) String() string {
	return types.Stringify(t)
}

func (c ToolCall) String() string {
	return types.Stringify(c)
}

func (t ToolType) String() string {
	return string(t)
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Name returns the name of the function
func (t Tool) Name() string {
	return t.Function.Name
}

// Decode unmarshals the function arguments into v
func (c FunctionCall) Decode(v any) error {
	if c.Arguments == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(c.Arguments), v); err != nil {
		return llm.ErrDecode.Wrap(err)
	}
	return nil
}
