package protocol

// MCPProtocolVersion is the MCP protocol version spoken by clients of this server
const MCPProtocolVersion = "2024-11-05"

// Content types
const (
	ContentTypeText = "text"
)

// Implementation holds implementation details reported during initialize
type Implementation struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Tool represents an MCP tool descriptor
type Tool struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	InputSchema ToolInputSchema `json:"inputSchema"`
}

// ToolInputSchema is the JSON schema of a tool's arguments object
type ToolInputSchema struct {
	Type       string                    `json:"type"`
	Properties map[string]PropertySchema `json:"properties,omitempty"`
	Required   []string                  `json:"required,omitempty"`
}

// PropertySchema describes a single argument
type PropertySchema struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

// Clone returns a deep copy of the tool so callers cannot mutate registered descriptors
func (t Tool) Clone() Tool {
	clone := t
	if t.InputSchema.Properties != nil {
		clone.InputSchema.Properties = make(map[string]PropertySchema, len(t.InputSchema.Properties))
		for name, prop := range t.InputSchema.Properties {
			clone.InputSchema.Properties[name] = prop
		}
	}
	if t.InputSchema.Required != nil {
		clone.InputSchema.Required = append([]string(nil), t.InputSchema.Required...)
	}
	return clone
}

// IsRequired reports whether the named argument is required by the schema
func (s ToolInputSchema) IsRequired(name string) bool {
	for _, required := range s.Required {
		if required == name {
			return true
		}
	}
	return false
}

// ToolCallResult represents the result of calling a tool
type ToolCallResult struct {
	Content []Content `json:"content"`
	IsError bool      `json:"isError,omitempty"`
}

// Content represents content in a message
type Content struct {
	Type string `json:"type"` // text
	Text string `json:"text,omitempty"`
}

// NewTextContent creates a text content entry
func NewTextContent(text string) Content {
	return Content{Type: ContentTypeText, Text: text}
}

// NewTextResult creates a tool result holding a single text entry
func NewTextResult(text string) *ToolCallResult {
	return &ToolCallResult{
		Content: []Content{NewTextContent(text)},
	}
}
