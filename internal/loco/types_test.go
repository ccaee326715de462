package loco

import (
	"encoding/json"
	"testing"
)

// The entity structs mirror the remote service's wire format. This pins the
// field mapping against a realistic document of each shape.

func TestAssetWireShape(t *testing.T) {
	doc := `{
		"id": "greeting.title",
		"type": "text",
		"context": "Shown on the welcome screen",
		"notes": "Keep it short",
		"format": "printf",
		"plurals": 2,
		"tags": ["onboarding", "urgent"],
		"aliases": {"ios": "greeting_title"},
		"progress": {"translated": 3, "untranslated": 1, "flagged": 0}
	}`
	var a Asset
	if err := json.Unmarshal([]byte(doc), &a); err != nil {
		t.Fatalf("unmarshal asset: %v", err)
	}
	if a.ID != "greeting.title" || a.Type != "text" || a.Plurals != 2 {
		t.Fatalf("unexpected asset %+v", a)
	}
	if len(a.Tags) != 2 || a.Aliases["ios"] != "greeting_title" {
		t.Fatalf("unexpected asset %+v", a)
	}
	if a.Progress == nil || a.Progress.Translated != 3 {
		t.Fatalf("unexpected progress %+v", a.Progress)
	}
}

func TestLocaleAndTranslationWireShape(t *testing.T) {
	doc := `{
		"translation": "Bonjour",
		"translated": true,
		"flagged": false,
		"status": "translated",
		"revision": 4,
		"author": "amelie",
		"locale": {
			"code": "fr",
			"name": "French",
			"plurals": {"length": 2, "equation": "n > 1", "forms": ["one", "other"]},
			"progress": {"translated": 10, "untranslated": 2, "flagged": 1, "words": 57}
		}
	}`
	var tr Translation
	if err := json.Unmarshal([]byte(doc), &tr); err != nil {
		t.Fatalf("unmarshal translation: %v", err)
	}
	if tr.Translation != "Bonjour" || !tr.Translated || tr.Revision != 4 {
		t.Fatalf("unexpected translation %+v", tr)
	}
	if tr.Locale == nil || tr.Locale.Code != "fr" {
		t.Fatalf("unexpected locale %+v", tr.Locale)
	}
	if tr.Locale.Plurals == nil || tr.Locale.Plurals.Length != 2 || len(tr.Locale.Plurals.Forms) != 2 {
		t.Fatalf("unexpected plural rules %+v", tr.Locale.Plurals)
	}
	if tr.Locale.Progress == nil || tr.Locale.Progress.Words != 57 {
		t.Fatalf("unexpected progress %+v", tr.Locale.Progress)
	}
}

func TestSuccessResponseWireShape(t *testing.T) {
	var s SuccessResponse
	if err := json.Unmarshal([]byte(`{"status":200,"message":"Tag removed"}`), &s); err != nil {
		t.Fatalf("unmarshal success response: %v", err)
	}
	if s.Status != 200 || s.Message != "Tag removed" {
		t.Fatalf("unexpected response %+v", s)
	}
}
