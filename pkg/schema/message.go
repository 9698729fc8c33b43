package schema

import (
	"encoding/json"

	// Packages
	llm "github.com/mutablelogic/go-llm-sdk"
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Message is one turn of a chat conversation. It is implemented by
// SystemMessage, UserMessage, AssistantMessage and ToolMessage, and is
// serialized with a "role" discriminator.
type Message interface {
	// Return the role of the message: system, user, assistant or tool
	Role() string

	message()
}

// Messages is a list of messages, which can be decoded from JSON by
// dispatching on the role of each element
type Messages []Message

// SystemMessage sets the behaviour of the assistant
type SystemMessage struct {
	Content string `json:"content"`
	Name    string `json:"name,omitempty"` // Optional participant name
}

// UserMessage is a prompt from the end user
type UserMessage struct {
	Content string `json:"content"`
	Name    string `json:"name,omitempty"` // Optional participant name
}

// AssistantMessage is a reply from the model. Content is nil when the
// model responds only with tool calls.
type AssistantMessage struct {
	Content   *string    `json:"content,omitempty"`
	Name      string     `json:"name,omitempty"`
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`
}

// ToolMessage carries the result of a tool call back to the model
type ToolMessage struct {
	Content    string `json:"content"`
	ToolCallID string `json:"tool_call_id"`
}

var _ Message = SystemMessage{}
var _ Message = UserMessage{}
var _ Message = AssistantMessage{}
var _ Message = ToolMessage{}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Message role constants
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewSystemMessage returns a system message. An empty name means the
// message has no participant name.
func NewSystemMessage(content, name string) SystemMessage {
	return SystemMessage{Content: content, Name: name}
}

// NewUserMessage returns a user message. An empty name means the
// message has no participant name.
func NewUserMessage(content, name string) UserMessage {
	return UserMessage{Content: content, Name: name}
}

// NewAssistantMessage returns an assistant message with text content,
// used to replay a previous reply in a conversation
func NewAssistantMessage(content string) AssistantMessage {
	return AssistantMessage{Content: types.Ptr(content)}
}

// NewToolMessage returns the result of the tool call with the given id
func NewToolMessage(content, toolCallID string) ToolMessage {
	return ToolMessage{Content: content, ToolCallID: toolCallID}
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (m SystemMessage) String() string {
	return types.Stringify(m)
}

func (m UserMessage) String() string {
	return types.Stringify(m)
}

func (m AssistantMessage) String() string {
	return types.Stringify(m)
}

func (m ToolMessage) String() string {
	return types.Stringify(m)
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (SystemMessage) Role() string    { return RoleSystem }
func (UserMessage) Role() string      { return RoleUser }
func (AssistantMessage) Role() string { return RoleAssistant }
func (ToolMessage) Role() string      { return RoleTool }

// Text returns the text content of the reply, or an empty string
func (m AssistantMessage) Text() string {
	if m.Content == nil {
		return ""
	}
	return *m.Content
}

////////////////////////////////////////////////////////////////////////////////
// JSON MARSHALLING

func (m SystemMessage) MarshalJSON() ([]byte, error) {
	type alias SystemMessage
	return json.Marshal(struct {
		Role string `json:"role"`
		alias
	}{RoleSystem, alias(m)})
}

func (m UserMessage) MarshalJSON() ([]byte, error) {
	type alias UserMessage
	return json.Marshal(struct {
		Role string `json:"role"`
		alias
	}{RoleUser, alias(m)})
}

func (m AssistantMessage) MarshalJSON() ([]byte, error) {
	type alias AssistantMessage
	return json.Marshal(struct {
		Role string `json:"role"`
		alias
	}{RoleAssistant, alias(m)})
}

func (m ToolMessage) MarshalJSON() ([]byte, error) {
	type alias ToolMessage
	return json.Marshal(struct {
		Role string `json:"role"`
		alias
	}{RoleTool, alias(m)})
}

// DecodeMessage decodes a single message, using the role to select
// the message type
func DecodeMessage(data []byte) (Message, error) {
	var probe struct {
		Role string `json:"role"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, llm.ErrDecode.Wrap(err)
	}
	switch probe.Role {
	case RoleSystem:
		return decodeAs[SystemMessage](data)
	case RoleUser:
		return decodeAs[UserMessage](data)
	case RoleAssistant:
		return decodeAs[AssistantMessage](data)
	case RoleTool:
		return decodeAs[ToolMessage](data)
	default:
		return nil, llm.ErrDecode.Withf("unknown message role %q", probe.Role)
	}
}

func (m *Messages) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return llm.ErrDecode.Wrap(err)
	}
	result := make(Messages, 0, len(raw))
	for _, item := range raw {
		message, err := DecodeMessage(item)
		if err != nil {
			return err
		}
		result = append(result, message)
	}
	*m = result
	return nil
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (SystemMessage) message()    {}
func (UserMessage) message()      {}
func (AssistantMessage) message() {}
func (ToolMessage) message()      {}

func decodeAs[T Message](data []byte) (Message, error) {
	var m T
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, llm.ErrDecode.Wrap(err)
	}
	return m, nil
}
