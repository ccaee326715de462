package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

type ListLocalesHandler struct {
	NewClient ClientFactory
}

func (h *ListLocalesHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	apiKey, err := requireString(req.GetArguments(), "api_key")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	payload, err := h.NewClient(apiKey).ListLocales(ctx)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(payload)), nil
}
