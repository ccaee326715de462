package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/loco-mcp/internal/loco"
)

type ListAssetsHandler struct {
	NewClient ClientFactory
}

func (h *ListAssetsHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	apiKey, err := requireString(args, "api_key")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	filter, err := optionalString(args, "filter")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	payload, err := h.NewClient(apiKey).ListAssets(ctx, filter)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(payload)), nil
}

type GetAssetHandler struct {
	NewClient ClientFactory
}

func (h *GetAssetHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	apiKey, err := requireString(args, "api_key")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	id, err := requireString(args, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	payload, err := h.NewClient(apiKey).GetAsset(ctx, id)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(payload)), nil
}

type CreateAssetHandler struct {
	NewClient ClientFactory
}

func (h *CreateAssetHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	apiKey, err := requireString(args, "api_key")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	asset := loco.NewAsset{}
	if asset.ID, err = optionalString(args, "id"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if asset.Text, err = optionalString(args, "text"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if asset.Type, err = optionalAssetType(args); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if asset.Context, err = optionalString(args, "context"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if asset.Notes, err = optionalString(args, "notes"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	payload, err := h.NewClient(apiKey).CreateAsset(ctx, asset)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(payload)), nil
}

type UpdateAssetHandler struct {
	NewClient ClientFactory
}

func (h *UpdateAssetHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	apiKey, err := requireString(args, "api_key")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	id, err := requireString(args, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	patch := loco.AssetPatch{}
	if patch.Type, err = optionalAssetType(args); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if patch.Context, err = optionalString(args, "context"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if patch.Notes, err = optionalString(args, "notes"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	payload, err := h.NewClient(apiKey).UpdateAsset(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(payload)), nil
}

type DeleteAssetHandler struct {
	NewClient ClientFactory
}

func (h *DeleteAssetHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	apiKey, err := requireString(args, "api_key")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	id, err := requireString(args, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	payload, err := h.NewClient(apiKey).DeleteAsset(ctx, id)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(payload)), nil
}
