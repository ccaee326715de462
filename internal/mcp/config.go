package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/roivaz/loco-mcp/internal/config"
	"github.com/roivaz/loco-mcp/internal/loco"
	"github.com/roivaz/loco-mcp/internal/logging"
	"github.com/roivaz/loco-mcp/internal/mcp/tools"
)

type Config struct {
	ToolAdapters map[string]ToolAdapter
	Options      []server.StreamableHTTPOption
	Logger       logging.Logger
}

// DefaultConfig wires the full tool catalogue against the configured Loco
// endpoint. Every handler builds its own adapter instance from the api_key
// supplied with the call, so concurrent callers may use different
// credentials without sharing any state.
func DefaultConfig() Config {
	newClient := func(apiKey string) *loco.Client {
		return loco.New(loco.Config{
			APIKey:  apiKey,
			BaseURL: config.APIURL(),
			Scheme:  config.AuthScheme(),
		})
	}

	return Config{
		ToolAdapters: map[string]ToolAdapter{
			"loco_list_locales":       &tools.ListLocalesHandler{NewClient: newClient},
			"loco_list_assets":        &tools.ListAssetsHandler{NewClient: newClient},
			"loco_get_asset":          &tools.GetAssetHandler{NewClient: newClient},
			"loco_create_asset":       &tools.CreateAssetHandler{NewClient: newClient},
			"loco_update_asset":       &tools.UpdateAssetHandler{NewClient: newClient},
			"loco_delete_asset":       &tools.DeleteAssetHandler{NewClient: newClient},
			"loco_get_translations":   &tools.GetTranslationsHandler{NewClient: newClient},
			"loco_get_translation":    &tools.GetTranslationHandler{NewClient: newClient},
			"loco_update_translation": &tools.UpdateTranslationHandler{NewClient: newClient},
			"loco_list_tags":          &tools.ListTagsHandler{NewClient: newClient},
			"loco_tag_asset":          &tools.TagAssetHandler{NewClient: newClient},
			"loco_untag_asset":        &tools.UntagAssetHandler{NewClient: newClient},
		},
		Options: []server.StreamableHTTPOption{
			server.WithEndpointPath("/mcp"),
			server.WithStateLess(true),
		},
		Logger: logging.New(logging.DefaultLogger(config.LogLevel())),
	}
}
