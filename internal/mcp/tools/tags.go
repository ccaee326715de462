package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

type ListTagsHandler struct {
	NewClient ClientFactory
}

func (h *ListTagsHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	apiKey, err := requireString(req.GetArguments(), "api_key")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	payload, err := h.NewClient(apiKey).ListTags(ctx)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(payload)), nil
}

type TagAssetHandler struct {
	NewClient ClientFactory
}

func (h *TagAssetHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	apiKey, err := requireString(args, "api_key")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	id, err := requireString(args, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	tag, err := requireString(args, "tag")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	payload, err := h.NewClient(apiKey).TagAsset(ctx, id, tag)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(payload)), nil
}

type UntagAssetHandler struct {
	NewClient ClientFactory
}

func (h *UntagAssetHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	apiKey, err := requireString(args, "api_key")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	id, err := requireString(args, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	tag, err := requireString(args, "tag")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	payload, err := h.NewClient(apiKey).UntagAsset(ctx, id, tag)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(payload)), nil
}
