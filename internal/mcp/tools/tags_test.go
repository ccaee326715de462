package tools

import (
	"context"
	"net/http"
	"testing"
)

func TestTagAssetHandlerFormBody(t *testing.T) {
	srv, call := newBackend(t, http.StatusOK, `{"name":"urgent"}`)
	h := &TagAssetHandler{NewClient: testFactory(srv.URL)}

	res, err := h.ToolAdapter(context.Background(), callRequest(map[string]any{
		"api_key": "k1",
		"id":      "greeting",
		"tag":     "urgent",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(t, res))
	}
	if call.method != http.MethodPost || call.escapedPath != "/assets/greeting/tags" {
		t.Fatalf("unexpected request %s %s", call.method, call.escapedPath)
	}
	if call.body != "name=urgent" {
		t.Fatalf("unexpected form body %q", call.body)
	}
}

func TestUntagAssetHandlerEscapesSegments(t *testing.T) {
	srv, call := newBackend(t, http.StatusOK, `{"status":200,"message":"Tag removed"}`)
	h := &UntagAssetHandler{NewClient: testFactory(srv.URL)}

	res, err := h.ToolAdapter(context.Background(), callRequest(map[string]any{
		"api_key": "k1",
		"id":      "a b",
		"tag":     "urgent",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(t, res))
	}
	if call.method != http.MethodDelete || call.escapedPath != "/assets/a%20b/tags/urgent.json" {
		t.Fatalf("unexpected request %s %s", call.method, call.escapedPath)
	}
}

func TestListTagsHandlerRequiresKey(t *testing.T) {
	srv, call := newBackend(t, http.StatusOK, `["urgent"]`)
	h := &ListTagsHandler{NewClient: testFactory(srv.URL)}

	res, err := h.ToolAdapter(context.Background(), callRequest(map[string]any{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IsError {
		t.Fatal("expected tool error for missing api_key")
	}
	if call.method != "" {
		t.Fatal("no network call may happen before validation passes")
	}
}
