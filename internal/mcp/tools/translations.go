package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

type GetTranslationsHandler struct {
	NewClient ClientFactory
}

func (h *GetTranslationsHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	apiKey, err := requireString(args, "api_key")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	id, err := requireString(args, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	payload, err := h.NewClient(apiKey).GetTranslations(ctx, id)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(payload)), nil
}

type GetTranslationHandler struct {
	NewClient ClientFactory
}

func (h *GetTranslationHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	apiKey, err := requireString(args, "api_key")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	id, err := requireString(args, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	locale, err := requireString(args, "locale")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	payload, err := h.NewClient(apiKey).GetTranslation(ctx, id, locale)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(payload)), nil
}

type UpdateTranslationHandler struct {
	NewClient ClientFactory
}

func (h *UpdateTranslationHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	apiKey, err := requireString(args, "api_key")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	id, err := requireString(args, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	locale, err := requireString(args, "locale")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	// text is required but may be "": an empty string explicitly marks the
	// translation as untranslated.
	text, err := requireText(args, "text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	payload, err := h.NewClient(apiKey).UpdateTranslation(ctx, id, locale, text)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(payload)), nil
}
