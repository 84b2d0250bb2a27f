package protocol

import (
	"errors"
	"fmt"
)

// MCPError represents an MCP-specific error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

// Error implements the error interface
func (e *MCPError) Error() string {
	if e.Data != nil {
		return fmt.Sprintf("MCP error %d: %s (data: %v)", e.Code, e.Message, e.Data)
	}
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// MCP-specific Error Codes (starting from -32000 as per JSON-RPC spec)
const (
	// Tool errors
	ErrorToolNotFound     = -32020
	ErrorInvalidToolInput = -32023
)

// NewToolNotFoundError creates a new tool not found error
func NewToolNotFoundError(toolName string) *MCPError {
	return &MCPError{
		Code:    ErrorToolNotFound,
		Message: fmt.Sprintf("Unknown tool: %s", toolName),
		Data:    map[string]string{"tool": toolName},
	}
}

// NewInvalidToolInputError creates a new invalid tool input error
func NewInvalidToolInputError(message string) *MCPError {
	return &MCPError{
		Code:    ErrorInvalidToolInput,
		Message: message,
	}
}

// IsToolNotFound reports whether err carries an unknown tool error
func IsToolNotFound(err error) bool {
	return hasCode(err, ErrorToolNotFound)
}

// IsInvalidToolInput reports whether err carries an invalid argument error
func IsInvalidToolInput(err error) bool {
	return hasCode(err, ErrorInvalidToolInput)
}

// ToolName returns the tool named by an unknown tool error, if any
func ToolName(err error) (string, bool) {
	var mcpErr *MCPError
	if !errors.As(err, &mcpErr) || mcpErr.Code != ErrorToolNotFound {
		return "", false
	}
	data, ok := mcpErr.Data.(map[string]string)
	if !ok {
		return "", false
	}
	name, ok := data["tool"]
	return name, ok
}

func hasCode(err error, code int) bool {
	var mcpErr *MCPError
	return errors.As(err, &mcpErr) && mcpErr.Code == code
}
