package tools

import "testing"

func TestRequireStringRejectsAbsentAndBlank(t *testing.T) {
	if _, err := requireString(map[string]any{}, "id"); err == nil {
		t.Fatal("expected error for absent parameter")
	}
	if _, err := requireString(map[string]any{"id": "  "}, "id"); err == nil {
		t.Fatal("expected error for blank parameter")
	}
	if _, err := requireString(map[string]any{"id": 42}, "id"); err == nil {
		t.Fatal("expected error for non-string parameter")
	}
	got, err := requireString(map[string]any{"id": "greeting"}, "id")
	if err != nil || got != "greeting" {
		t.Fatalf("unexpected result %q, %v", got, err)
	}
}

func TestRequireTextAllowsEmptyString(t *testing.T) {
	got, err := requireText(map[string]any{"text": ""}, "text")
	if err != nil {
		t.Fatalf("empty string is a legitimate text value: %v", err)
	}
	if got != "" {
		t.Fatalf("unexpected text %q", got)
	}
	if _, err := requireText(map[string]any{}, "text"); err == nil {
		t.Fatal("expected error for absent text")
	}
}

func TestOptionalStringDistinguishesAbsentFromEmpty(t *testing.T) {
	v, err := optionalString(map[string]any{}, "notes")
	if err != nil || v != nil {
		t.Fatalf("absent must yield nil, got %v, %v", v, err)
	}
	v, err = optionalString(map[string]any{"notes": ""}, "notes")
	if err != nil || v == nil || *v != "" {
		t.Fatalf("explicit empty must yield pointer to empty string, got %v, %v", v, err)
	}
	if _, err := optionalString(map[string]any{"notes": 1.5}, "notes"); err == nil {
		t.Fatal("expected error for non-string parameter")
	}
}

func TestOptionalAssetTypeEnum(t *testing.T) {
	for _, valid := range []string{"text", "html", "xml", "plural"} {
		v, err := optionalAssetType(map[string]any{"type": valid})
		if err != nil || v == nil || *v != valid {
			t.Fatalf("expected %q accepted, got %v, %v", valid, v, err)
		}
	}
	if _, err := optionalAssetType(map[string]any{"type": "markdown"}); err == nil {
		t.Fatal("expected error for value outside the enum")
	}
	v, err := optionalAssetType(map[string]any{})
	if err != nil || v != nil {
		t.Fatalf("absent type must yield nil, got %v, %v", v, err)
	}
}
