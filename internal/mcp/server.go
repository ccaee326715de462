package mcp

import (
	"context"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/roivaz/loco-mcp/internal/logging"
)

const (
	serverName    = "loco-mcp"
	serverVersion = "1.0.0"
)

type ToolAdapter interface {
	ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

type Server struct {
	MCP     *server.MCPServer
	HTTP    *server.StreamableHTTPServer
	Handler http.Handler
}

// apiKeyDescription is shared by every tool: each call is self-contained and
// authenticates itself, there is no ambient credential storage.
const apiKeyDescription = "Loco API key used to authenticate this single call"

// toolDefinitions declares the operation catalogue with the mcp-go builder
// pattern: name, description and parameter schema per tool.
var toolDefinitions = map[string]mcp.Tool{
	"loco_list_locales": mcp.NewTool("loco_list_locales",
		mcp.WithDescription("List the project's locales with their plural rules and translation progress."),
		mcp.WithString("api_key", mcp.Required(), mcp.Description(apiKeyDescription)),
	),
	"loco_list_assets": mcp.NewTool("loco_list_assets",
		mcp.WithDescription("List translatable assets. Optionally narrow the listing with a Loco filter expression (e.g. 'onboarding,!draft' for assets tagged onboarding but not draft)."),
		mcp.WithString("api_key", mcp.Required(), mcp.Description(apiKeyDescription)),
		mcp.WithString("filter",
			mcp.Description("Optional: Loco filter expression matching tags; omit to list every asset"),
		),
	),
	"loco_get_asset": mcp.NewTool("loco_get_asset",
		mcp.WithDescription("Retrieve a single asset by id, including context, notes, tags, aliases and translation progress."),
		mcp.WithString("api_key", mcp.Required(), mcp.Description(apiKeyDescription)),
		mcp.WithString("id", mcp.Required(), mcp.Description("Asset identifier (e.g. 'greeting.title')")),
	),
	"loco_create_asset": mcp.NewTool("loco_create_asset",
		mcp.WithDescription("Create a new translatable asset. Omitted fields are left to the remote service's defaults."),
		mcp.WithString("api_key", mcp.Required(), mcp.Description(apiKeyDescription)),
		mcp.WithString("id", mcp.Description("Optional: explicit asset identifier; the service derives one from the text when omitted")),
		mcp.WithString("text", mcp.Description("Optional: source-language text of the asset")),
		mcp.WithString("type",
			mcp.Description("Optional: asset content type"),
			mcp.Enum("text", "html", "xml", "plural"),
		),
		mcp.WithString("context", mcp.Description("Optional: context note shown to translators")),
		mcp.WithString("notes", mcp.Description("Optional: free-form developer notes")),
	),
	"loco_update_asset": mcp.NewTool("loco_update_asset",
		mcp.WithDescription("Update an asset's properties. Only supplied fields change; an explicit empty string clears a field."),
		mcp.WithString("api_key", mcp.Required(), mcp.Description(apiKeyDescription)),
		mcp.WithString("id", mcp.Required(), mcp.Description("Asset identifier")),
		mcp.WithString("type",
			mcp.Description("Optional: asset content type"),
			mcp.Enum("text", "html", "xml", "plural"),
		),
		mcp.WithString("context", mcp.Description("Optional: context note shown to translators")),
		mcp.WithString("notes", mcp.Description("Optional: free-form developer notes")),
	),
	"loco_delete_asset": mcp.NewTool("loco_delete_asset",
		mcp.WithDescription("Permanently delete an asset and all of its translations."),
		mcp.WithString("api_key", mcp.Required(), mcp.Description(apiKeyDescription)),
		mcp.WithString("id", mcp.Required(), mcp.Description("Asset identifier")),
	),
	"loco_get_translations": mcp.NewTool("loco_get_translations",
		mcp.WithDescription("Retrieve an asset's translations across all project locales."),
		mcp.WithString("api_key", mcp.Required(), mcp.Description(apiKeyDescription)),
		mcp.WithString("id", mcp.Required(), mcp.Description("Asset identifier")),
	),
	"loco_get_translation": mcp.NewTool("loco_get_translation",
		mcp.WithDescription("Retrieve an asset's translation in one locale, including status, revision and author."),
		mcp.WithString("api_key", mcp.Required(), mcp.Description(apiKeyDescription)),
		mcp.WithString("id", mcp.Required(), mcp.Description("Asset identifier")),
		mcp.WithString("locale", mcp.Required(), mcp.Description("Locale code (e.g. 'fr', 'pt-BR')")),
	),
	"loco_update_translation": mcp.NewTool("loco_update_translation",
		mcp.WithDescription("Replace the translated text for an asset in one locale. An empty string explicitly marks the translation as untranslated."),
		mcp.WithString("api_key", mcp.Required(), mcp.Description(apiKeyDescription)),
		mcp.WithString("id", mcp.Required(), mcp.Description("Asset identifier")),
		mcp.WithString("locale", mcp.Required(), mcp.Description("Locale code (e.g. 'fr', 'pt-BR')")),
		mcp.WithString("text", mcp.Required(), mcp.Description("New translated text; pass an empty string to mark the translation as untranslated")),
	),
	"loco_list_tags": mcp.NewTool("loco_list_tags",
		mcp.WithDescription("List the project's tag names."),
		mcp.WithString("api_key", mcp.Required(), mcp.Description(apiKeyDescription)),
	),
	"loco_tag_asset": mcp.NewTool("loco_tag_asset",
		mcp.WithDescription("Add a tag to an asset, creating the tag if it does not exist yet."),
		mcp.WithString("api_key", mcp.Required(), mcp.Description(apiKeyDescription)),
		mcp.WithString("id", mcp.Required(), mcp.Description("Asset identifier")),
		mcp.WithString("tag", mcp.Required(), mcp.Description("Tag name to add")),
	),
	"loco_untag_asset": mcp.NewTool("loco_untag_asset",
		mcp.WithDescription("Remove a tag from an asset. The tag itself is not deleted."),
		mcp.WithString("api_key", mcp.Required(), mcp.Description(apiKeyDescription)),
		mcp.WithString("id", mcp.Required(), mcp.Description("Asset identifier")),
		mcp.WithString("tag", mcp.Required(), mcp.Description("Tag name to remove")),
	),
}

func New(cfg Config) *Server {
	mcpServer := server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(true),
	)

	log := logging.New(cfg.Logger.Logr()).WithName("mcp")
	for name, adapter := range cfg.ToolAdapters {
		tool, ok := toolDefinitions[name]
		if !ok {
			log.Info("skipping adapter with no tool definition", "tool", name)
			continue
		}
		mcpServer.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return adapter.ToolAdapter(ctx, req)
		})
		log.Debug("registered tool", "tool", name)
	}

	httpServer := server.NewStreamableHTTPServer(mcpServer, cfg.Options...)

	return &Server{
		MCP:     mcpServer,
		HTTP:    httpServer,
		Handler: httpServer,
	}
}

// ServeStdio blocks serving the MCP protocol over stdin/stdout until the
// stream closes or the context is cancelled upstream.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.MCP)
}
