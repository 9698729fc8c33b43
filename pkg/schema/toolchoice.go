package schema

import (
	"bytes"
	"encoding/json"

	// Packages
	llm "github.com/mutablelogic/go-llm-sdk"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// ToolChoice controls which tool, if any, the model calls. It is one of
// ToolChoiceNone, ToolChoiceAuto or a ToolChoiceFunction.
type ToolChoice interface {
	json.Marshaler
	toolChoice()
}

// ToolChoiceMode is the string form of a tool choice
type ToolChoiceMode string

// ToolChoiceFunction forces the model to call the named function
type ToolChoiceFunction struct {
	Name string
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// The model does not call any tool
	ToolChoiceNone ToolChoiceMode = "none"

	// The model decides whether to call a tool
	ToolChoiceAuto ToolChoiceMode = "auto"

	DefaultToolChoice = ToolChoiceNone
)

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (m ToolChoiceMode) String() string {
	return string(m)
}

func (f ToolChoiceFunction) String() string {
	return f.Name
}

////////////////////////////////////////////////////////////////////////////////
// JSON MARSHALLING

func (m ToolChoiceMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(m))
}

func (f ToolChoiceFunction) MarshalJSON() ([]byte, error) {
	type function struct {
		Type ToolType `json:"type"`
		Name string   `json:"name"`
	}
	return json.Marshal(struct {
		Function function `json:"function"`
	}{function{ToolTypeFunction, f.Name}})
}

// DecodeToolChoice decodes either a "none" or "auto" string, or a
// function object
func DecodeToolChoice(data []byte) (ToolChoice, error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var mode string
		if err := json.Unmarshal(data, &mode); err != nil {
			return nil, llm.ErrDecode.Wrap(err)
		}
		switch ToolChoiceMode(mode) {
		case ToolChoiceNone, ToolChoiceAuto:
			return ToolChoiceMode(mode), nil
		default:
			return nil, llm.ErrDecode.Withf("unknown tool choice %q", mode)
		}
	}
	var v struct {
		Function *struct {
			Type ToolType `json:"type"`
			Name string   `json:"name"`
		} `json:"function"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, llm.ErrDecode.Wrap(err)
	}
	if v.Function == nil || v.Function.Name == "" {
		return nil, llm.ErrDecode.With("tool choice function name")
	}
	return ToolChoiceFunction{Name: v.Function.Name}, nil
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (ToolChoiceMode) toolChoice()     {}
func (ToolChoiceFunction) toolChoice() {}
