package loco

// Wire shapes of the Loco REST resources. These are pass-through
// representations: nothing is cached or cross-referenced locally, every call
// receives a fresh document from the remote service.

// Progress holds per-resource translation counters.
type Progress struct {
	Translated   int `json:"translated"`
	Untranslated int `json:"untranslated"`
	Flagged      int `json:"flagged"`
	Words        int `json:"words,omitempty"`
}

// Asset is a translatable resource identified by a unique string id.
type Asset struct {
	ID       string            `json:"id"`
	Type     string            `json:"type,omitempty"`
	Context  string            `json:"context,omitempty"`
	Notes    string            `json:"notes,omitempty"`
	Format   string            `json:"format,omitempty"`
	Created  string            `json:"created,omitempty"`
	Modified string            `json:"modified,omitempty"`
	Plurals  int               `json:"plurals,omitempty"`
	Tags     []string          `json:"tags,omitempty"`
	Aliases  map[string]string `json:"aliases,omitempty"`
	Progress *Progress         `json:"progress,omitempty"`
}

// Translation is the text of one asset in one locale.
type Translation struct {
	Translation string            `json:"translation"`
	Translated  bool              `json:"translated"`
	Flagged     bool              `json:"flagged"`
	Status      string            `json:"status,omitempty"`
	Revision    int               `json:"revision,omitempty"`
	Modified    string            `json:"modified,omitempty"`
	Author      string            `json:"author,omitempty"`
	Locale      *Locale           `json:"locale,omitempty"`
	Plurals     map[string]string `json:"plurals,omitempty"`
}

// PluralRules describes a locale's plural-form selection.
type PluralRules struct {
	Length   int      `json:"length"`
	Equation string   `json:"equation,omitempty"`
	Forms    []string `json:"forms,omitempty"`
}

// Locale is a project locale with its plural rules and progress counters.
type Locale struct {
	Code     string       `json:"code"`
	Name     string       `json:"name,omitempty"`
	Source   bool         `json:"source,omitempty"`
	Plurals  *PluralRules `json:"plurals,omitempty"`
	Progress *Progress    `json:"progress,omitempty"`
}

// SuccessResponse is returned by operations with no richer payload, such as
// asset deletion and untagging.
type SuccessResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// AssetTypes is the closed set of asset content types accepted by the create
// and update operations. Absence of a type means the remote default applies.
var AssetTypes = []string{"text", "html", "xml", "plural"}

// NewAsset carries the form-encoded fields of an asset creation request.
// Pointer fields distinguish "absent" from an explicit empty string: nil
// fields are omitted from the form body entirely.
type NewAsset struct {
	ID      *string `url:"id,omitempty"`
	Text    *string `url:"text,omitempty"`
	Type    *string `url:"type,omitempty"`
	Context *string `url:"context,omitempty"`
	Notes   *string `url:"notes,omitempty"`
}

// AssetPatch carries the JSON-encoded fields of an asset property update.
// As with NewAsset, nil means "leave unchanged" while a pointer to "" sends
// an explicit empty value.
type AssetPatch struct {
	Type    *string `json:"type,omitempty"`
	Context *string `json:"context,omitempty"`
	Notes   *string `json:"notes,omitempty"`
}
