// Package mcp serves the Model Context Protocol endpoint over HTTP. One
// POST route accepts JSON-RPC 2.0 requests and dispatches the MCP
// lifecycle and tools methods to the tool registry.
package mcp

import "encoding/json"

// MCP spec version this server implements.
const protocolVersion = "2024-11-05"

// JSON-RPC 2.0 error codes.
const (
	ErrParse          = -32700
	ErrInvalidRequest = -32600
	ErrMethodNotFound = -32601
	ErrInvalidParams  = -32602
	ErrInternal       = -32603
)

// Request is a JSON-RPC 2.0 request or notification.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// Response is a JSON-RPC 2.0 response.
type Response struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id,omitempty"`
	Result  interface{} `json:"result,omitempty"`
	Error   *Error      `json:"error,omitempty"`
}

// Error is a JSON-RPC 2.0 error object.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Tool is the MCP wire representation of one tool definition.
type Tool struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	InputSchema InputSchema `json:"inputSchema"`
}

// InputSchema is the JSON-schema descriptor of a tool's arguments.
type InputSchema struct {
	Type       string              `json:"type"`
	Properties map[string]Property `json:"properties"`
	Required   []string            `json:"required,omitempty"`
}

// Property describes one input schema field.
type Property struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// ServerCapabilities advertises what this server supports (tools only).
type ServerCapabilities struct {
	Tools *ToolsCapability `json:"tools,omitempty"`
}

// ToolsCapability is intentionally empty; listChanged is not supported.
type ToolsCapability struct{}

// TextContent is the single content block a tool result is delivered in.
type TextContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}
