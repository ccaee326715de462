package loco

import (
	"context"
	"fmt"
	"net/url"

	"github.com/go-resty/resty/v2"
	"github.com/google/go-querystring/query"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// DefaultBaseURL is the canonical Loco REST endpoint.
const DefaultBaseURL = "https://localise.biz/api"

// DefaultAuthScheme is the credential scheme of the Authorization header.
const DefaultAuthScheme = "Loco"

// Payload is the decoded result of one API call: pretty-printed JSON when the
// response body parses as JSON, the raw body text verbatim otherwise. The
// remote service sometimes answers with a bare acknowledgement string rather
// than a JSON document, so both forms are legitimate.
type Payload string

// APIError is a non-success HTTP response from the remote service. It carries
// the numeric status and the unmodified response body so the caller can
// diagnose remote-side rejection.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("loco: API error %d: %s", e.Status, e.Body)
}

// bodyKind selects one of the closed set of request body encodings. Modeling
// the encoding as a tagged variant keeps the per-operation contract
// exhaustive instead of scattering content-type strings through request
// construction.
type bodyKind int

const (
	bodyNone bodyKind = iota
	bodyJSON
	bodyForm
	bodyRaw
)

type requestBody struct {
	kind bodyKind
	json any
	form url.Values
	raw  string
}

func noBody() requestBody               { return requestBody{kind: bodyNone} }
func jsonBody(v any) requestBody        { return requestBody{kind: bodyJSON, json: v} }
func formBody(v url.Values) requestBody { return requestBody{kind: bodyForm, form: v} }
func rawBody(s string) requestBody      { return requestBody{kind: bodyRaw, raw: s} }

// Config carries the per-call client parameters. The API key arrives with
// every tool invocation, so a Client is built fresh for each call and holds
// no state beyond the credential and endpoint.
type Config struct {
	APIKey  string
	BaseURL string
	Scheme  string
}

// Client is a single-shot adapter over the Loco REST API: one outbound HTTP
// request per operation, no retries, no timeout override, platform-default
// transport.
type Client struct {
	http   *resty.Client
	scheme string
	apiKey string
}

// New returns a Client scoped to the supplied credential.
func New(cfg Config) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	scheme := cfg.Scheme
	if scheme == "" {
		scheme = DefaultAuthScheme
	}
	return &Client{
		http:   resty.New().SetBaseURL(base),
		scheme: scheme,
		apiKey: cfg.APIKey,
	}
}

// ListLocales fetches the project locales.
func (c *Client) ListLocales(ctx context.Context) (Payload, error) {
	return c.call(ctx, resty.MethodGet, "/locales", nil, noBody())
}

// ListAssets fetches the project assets, optionally narrowed by a filter
// expression. A nil filter omits the query parameter entirely.
func (c *Client) ListAssets(ctx context.Context, filter *string) (Payload, error) {
	var q url.Values
	if filter != nil {
		q = url.Values{"filter": {*filter}}
	}
	return c.call(ctx, resty.MethodGet, "/assets", q, noBody())
}

// GetAsset fetches a single asset by id.
func (c *Client) GetAsset(ctx context.Context, id string) (Payload, error) {
	return c.call(ctx, resty.MethodGet, "/assets/"+url.PathEscape(id)+".json", nil, noBody())
}

// CreateAsset creates a new asset from form-encoded fields. Nil fields stay
// absent from the body; the remote service applies its defaults.
func (c *Client) CreateAsset(ctx context.Context, asset NewAsset) (Payload, error) {
	form, err := query.Values(asset)
	if err != nil {
		return "", fmt.Errorf("encode asset form: %w", err)
	}
	return c.call(ctx, resty.MethodPost, "/assets", nil, formBody(form))
}

// UpdateAsset patches asset properties with a JSON body. Nil fields are left
// unchanged remotely; a pointer to "" sends an explicit empty value.
func (c *Client) UpdateAsset(ctx context.Context, id string, patch AssetPatch) (Payload, error) {
	return c.call(ctx, resty.MethodPatch, "/assets/"+url.PathEscape(id)+".json", nil, jsonBody(patch))
}

// DeleteAsset removes an asset.
func (c *Client) DeleteAsset(ctx context.Context, id string) (Payload, error) {
	return c.call(ctx, resty.MethodDelete, "/assets/"+url.PathEscape(id)+".json", nil, noBody())
}

// GetTranslations fetches an asset's translations across all locales.
func (c *Client) GetTranslations(ctx context.Context, id string) (Payload, error) {
	return c.call(ctx, resty.MethodGet, "/translations/"+url.PathEscape(id)+".json", nil, noBody())
}

// GetTranslation fetches an asset's translation in one locale.
func (c *Client) GetTranslation(ctx context.Context, id, locale string) (Payload, error) {
	path := "/translations/" + url.PathEscape(id) + "/" + url.PathEscape(locale)
	return c.call(ctx, resty.MethodGet, path, nil, noBody())
}

// UpdateTranslation replaces the translated text for one (asset, locale)
// pair. The text travels as a raw text/plain body: an empty string produces
// an empty body, which the remote service reads as "mark untranslated".
// That is distinct from sending no body at all.
func (c *Client) UpdateTranslation(ctx context.Context, id, locale, text string) (Payload, error) {
	path := "/translations/" + url.PathEscape(id) + "/" + url.PathEscape(locale)
	return c.call(ctx, resty.MethodPost, path, nil, rawBody(text))
}

// ListTags fetches the project's tag names.
func (c *Client) ListTags(ctx context.Context) (Payload, error) {
	return c.call(ctx, resty.MethodGet, "/tags", nil, noBody())
}

// TagAsset adds a tag to an asset, creating the tag if it does not exist.
func (c *Client) TagAsset(ctx context.Context, id, tag string) (Payload, error) {
	path := "/assets/" + url.PathEscape(id) + "/tags"
	return c.call(ctx, resty.MethodPost, path, nil, formBody(url.Values{"name": {tag}}))
}

// UntagAsset removes a tag from an asset without deleting the tag itself.
func (c *Client) UntagAsset(ctx context.Context, id, tag string) (Payload, error) {
	path := "/assets/" + url.PathEscape(id) + "/tags/" + url.PathEscape(tag) + ".json"
	return c.call(ctx, resty.MethodDelete, path, nil, noBody())
}

// call performs exactly one HTTP round trip and decodes the response.
func (c *Client) call(ctx context.Context, method, path string, q url.Values, body requestBody) (Payload, error) {
	req := c.http.R().
		SetContext(ctx).
		SetHeader("Authorization", c.scheme+" "+c.apiKey)

	for key, vals := range q {
		for _, v := range vals {
			req.SetQueryParam(key, v)
		}
	}

	switch body.kind {
	case bodyNone:
	case bodyJSON:
		req.SetHeader("Content-Type", "application/json").SetBody(body.json)
	case bodyForm:
		req.SetHeader("Content-Type", "application/x-www-form-urlencoded").
			SetBody(body.form.Encode())
	case bodyRaw:
		req.SetHeader("Content-Type", "text/plain").SetBody(body.raw)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return "", err
	}
	if !resp.IsSuccess() {
		return "", &APIError{Status: resp.StatusCode(), Body: string(resp.Body())}
	}
	return decodePayload(resp.Body()), nil
}

// decodePayload pretty-prints the body when it is valid JSON and returns the
// raw text verbatim otherwise.
func decodePayload(body []byte) Payload {
	if gjson.ValidBytes(body) {
		return Payload(pretty.Pretty(body))
	}
	return Payload(body)
}
