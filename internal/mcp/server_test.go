package mcp

import (
	"slices"
	"testing"
)

func TestEveryAdapterHasAToolDefinition(t *testing.T) {
	cfg := DefaultConfig()
	for name := range cfg.ToolAdapters {
		if _, ok := toolDefinitions[name]; !ok {
			t.Errorf("adapter %s has no tool definition", name)
		}
	}
	for name := range toolDefinitions {
		if _, ok := cfg.ToolAdapters[name]; !ok {
			t.Errorf("tool %s has no adapter wired", name)
		}
	}
	if len(toolDefinitions) != 12 {
		t.Fatalf("expected the twelve catalogue operations, got %d", len(toolDefinitions))
	}
}

func TestEveryToolRequiresAPIKey(t *testing.T) {
	// Each call is self-contained: the credential arrives as an explicit
	// parameter, never from ambient state.
	for name, tool := range toolDefinitions {
		if !slices.Contains(tool.InputSchema.Required, "api_key") {
			t.Errorf("tool %s does not require api_key", name)
		}
	}
}

func TestServerConstruction(t *testing.T) {
	srv := New(DefaultConfig())
	if srv.MCP == nil {
		t.Fatal("expected MCP server")
	}
	if srv.Handler == nil {
		t.Fatal("expected HTTP handler")
	}
}
