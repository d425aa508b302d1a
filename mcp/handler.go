package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fdatools/openfda-mcp/logging"
	"github.com/fdatools/openfda-mcp/tools"
)

// Handler serves the MCP endpoint. It is stateless apart from the cached
// tool definitions, so a single instance serves all connections.
type Handler struct {
	client tools.Fetcher

	// Cached tool definitions
	tools []Tool
}

// NewHandler builds a handler over the given fetch client.
func NewHandler(client tools.Fetcher) *Handler {
	h := &Handler{client: client}
	h.tools = defineTools()
	return h
}

// ServeHTTP accepts one JSON-RPC request per POST body. Notifications get
// a 202 with no body.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeResponse(w, errorResponse(nil, ErrParse, "Parse error"))
		return
	}

	resp := h.handle(r.Context(), &req)
	if resp == nil {
		w.WriteHeader(http.StatusAccepted)
		return
	}
	writeResponse(w, resp)
}

func (h *Handler) handle(ctx context.Context, req *Request) *Response {
	switch req.Method {
	// Lifecycle
	case "initialize":
		return h.handleInitialize(req)
	case "initialized", "notifications/initialized":
		return nil // Notification, no response
	case "ping":
		return &Response{JSONRPC: "2.0", ID: req.ID, Result: map[string]interface{}{}}

	// Tools
	case "tools/list":
		return &Response{
			JSONRPC: "2.0",
			ID:      req.ID,
			Result:  map[string]interface{}{"tools": h.tools},
		}
	case "tools/call":
		return h.handleToolsCall(ctx, req)

	default:
		return errorResponse(req.ID, ErrMethodNotFound, "Method not found")
	}
}

func (h *Handler) handleInitialize(req *Request) *Response {
	return &Response{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"protocolVersion": protocolVersion,
			"serverInfo": map[string]string{
				"name":    "fda-drug-tools",
				"version": "1.0.0",
			},
			"capabilities": ServerCapabilities{
				Tools: &ToolsCapability{},
			},
		},
	}
}

func (h *Handler) handleToolsCall(ctx context.Context, req *Request) *Response {
	var params struct {
		Name      string          `json:"name"`
		Arguments json.RawMessage `json:"arguments"`
	}
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return errorResponse(req.ID, ErrInvalidParams, err.Error())
	}

	var args tools.Params
	if len(params.Arguments) > 0 {
		if err := json.Unmarshal(params.Arguments, &args); err != nil {
			return errorResponse(req.ID, ErrInvalidParams, err.Error())
		}
	}

	result, err := tools.Execute(ctx, h.client, params.Name, args)
	if err != nil {
		logging.Warn("Tool call failed", "tool", params.Name, "error", err)
		code := ErrInternal
		if errors.Is(err, tools.ErrUnknownTool) {
			code = ErrInvalidParams
		}
		return errorResponse(req.ID, code, err.Error())
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return errorResponse(req.ID, ErrInternal, err.Error())
	}

	return &Response{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []TextContent{
				{Type: "text", Text: string(payload)},
			},
		},
	}
}

// defineTools maps the tool registry into MCP wire definitions. Every
// tool shares the same filter schema.
func defineTools() []Tool {
	defs := tools.All()
	out := make([]Tool, len(defs))
	for i, d := range defs {
		out[i] = Tool{
			Name:        d.Name,
			Description: d.Description,
			InputSchema: filterSchema(),
		}
	}
	return out
}

func filterSchema() InputSchema {
	return InputSchema{
		Type: "object",
		Properties: map[string]Property{
			"drug_name": {
				Type:        "string",
				Description: "Drug brand, generic or substance name",
			},
			"manufacturer": {
				Type:        "string",
				Description: "Manufacturer name",
			},
			"dosage_form": {
				Type:        "string",
				Description: "Dosage form (e.g. TABLET, CAPSULE)",
			},
			"route": {
				Type:        "string",
				Description: "Route of administration (e.g. ORAL)",
			},
			"ndc": {
				Type:        "string",
				Description: "National Drug Code, hyphenated or digits only",
			},
			"limit": {
				Type:        "integer",
				Description: "Maximum number of label records to fetch (1-10, default 3)",
			},
			"exact_match": {
				Type:        "boolean",
				Description: "Match the drug name exactly instead of as a substring",
			},
		},
	}
}

func errorResponse(id interface{}, code int, message string) *Response {
	return &Response{
		JSONRPC: "2.0",
		ID:      id,
		Error:   &Error{Code: code, Message: message},
	}
}

func writeResponse(w http.ResponseWriter, resp *Response) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logging.Error("Failed to encode MCP response", "error", err)
	}
}
