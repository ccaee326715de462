package tools

import (
	"fmt"
	"slices"
	"strings"

	"github.com/roivaz/loco-mcp/internal/loco"
)

// ClientFactory builds a Loco client scoped to a single call's credential.
// Handlers never share a client: the key arrives with each invocation and
// concurrent callers may legitimately use different keys.
type ClientFactory func(apiKey string) *loco.Client

// requireString extracts a mandatory non-blank string parameter.
func requireString(args map[string]any, key string) (string, error) {
	raw, ok := args[key]
	if !ok {
		return "", fmt.Errorf("%s parameter is required", key)
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%s must be a string", key)
	}
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("%s parameter is required", key)
	}
	return s, nil
}

// requireText extracts a mandatory string parameter that may be empty. The
// translation text is the one required field where "" is a legitimate value
// (it marks the translation as untranslated) and must not be conflated with
// an absent parameter.
func requireText(args map[string]any, key string) (string, error) {
	raw, ok := args[key]
	if !ok {
		return "", fmt.Errorf("%s parameter is required", key)
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%s must be a string", key)
	}
	return s, nil
}

// optionalString extracts an optional string parameter. Absent yields nil;
// an explicit empty string yields a pointer to "", preserving the
// absent-vs-empty distinction for fields like notes and context.
func optionalString(args map[string]any, key string) (*string, error) {
	raw, ok := args[key]
	if !ok {
		return nil, nil
	}
	s, ok := raw.(string)
	if !ok {
		return nil, fmt.Errorf("%s must be a string", key)
	}
	return &s, nil
}

// optionalAssetType extracts the optional asset content type and checks it
// against the closed enumeration before any network call is attempted.
func optionalAssetType(args map[string]any) (*string, error) {
	t, err := optionalString(args, "type")
	if err != nil || t == nil {
		return t, err
	}
	if !slices.Contains(loco.AssetTypes, *t) {
		return nil, fmt.Errorf("type must be one of %s", strings.Join(loco.AssetTypes, ", "))
	}
	return t, nil
}
