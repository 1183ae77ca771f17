package yaedit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"yaedit/internal/lang"
	"yaedit/internal/session"
)

// Yandex endpoints. The page is fetched through browser emulation by
// internal/session; the API calls below are plain form POSTs.
const (
	pageURL         = "https://translate.yandex.ru/editor"
	originURL       = "https://translate.yandex.ru"
	editorAPIURL    = "https://translate.yandex.ru/editor/api/v1/transform-text"
	translateAPIURL = "https://translate.yandex.net/api/v1/tr.json/translate"
)

// maxResponseBytes bounds API response reads.
const maxResponseBytes = 4 << 20

// transformClient abstracts the remote endpoints so tests can substitute a
// fake without network access.
type transformClient interface {
	Translate(ctx context.Context, text string) (string, error)
	EditorTransform(ctx context.Context, text string, action Action) (string, error)
}

// yandexClient talks to the unofficial editor and translator APIs.
type yandexClient struct {
	http     *http.Client
	sessions session.Provider

	// Overridable in tests.
	editorURL    string
	translateURL string
	origin       string
	referer      string
}

var _ transformClient = (*yandexClient)(nil)

func newYandexClient(httpClient *http.Client, sessions session.Provider) *yandexClient {
	return &yandexClient{
		http:         httpClient,
		sessions:     sessions,
		editorURL:    editorAPIURL,
		translateURL: translateAPIURL,
		origin:       originURL,
		referer:      pageURL,
	}
}

// post sends a form POST to apiURL with the SID attached to the query. The
// two endpoints expect the session under different parameter names and with
// different suffixes.
func (c *yandexClient) post(ctx context.Context, apiURL string, query, form url.Values) ([]byte, error) {
	sid, err := c.sessions.SID(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: acquiring session: %v", ErrRequest, err)
	}

	switch apiURL {
	case c.editorURL:
		query.Set("sid", sid+"-00-0")
	case c.translateURL:
		query.Set("id", sid+"-1-0")
	default:
		return nil, fmt.Errorf("unsupported API URL %q", apiURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		apiURL+"?"+query.Encode(), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %v", ErrRequest, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Origin", c.origin)
	req.Header.Set("Referer", c.referer)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: unexpected status %s", ErrRequest, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", ErrRequest, err)
	}
	return body, nil
}

// translateResponse is the translator payload: {"code": 200, "text": ["..."]}.
type translateResponse struct {
	Code int      `json:"code"`
	Text []string `json:"text"`
}

// Translate sends text to the translator endpoint. The language pair is
// detected from the text itself.
func (c *yandexClient) Translate(ctx context.Context, text string) (string, error) {
	src, dst, err := lang.Pair(text)
	if err != nil {
		return "", err
	}

	query := url.Values{
		"srv":         {"tr-editor"},
		"source_lang": {src},
		"target_lang": {dst},
		"reason":      {"type-end"},
		"format":      {"text"},
		"ajax":        {"1"},
	}
	form := url.Values{
		"text":    {text},
		"options": {"4"}, // required by the endpoint
	}

	body, err := c.post(ctx, c.translateURL, query, form)
	if err != nil {
		return "", err
	}

	var parsed translateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("%w: decoding translate response: %v", ErrAPI, err)
	}
	if len(parsed.Text) == 0 {
		return "", fmt.Errorf(`%w: "text" missing from translate response`, ErrAPI)
	}
	return strings.Join(parsed.Text, ""), nil
}

// editorResponse is the editor payload: {"result_text": "..."}.
type editorResponse struct {
	ResultText string `json:"result_text"`
}

// EditorTransform sends text to the editor endpoint with the given action.
// ActionTranslate is rewritten to a correction in the opposite language,
// which is how the editor exposes translation.
func (c *yandexClient) EditorTransform(ctx context.Context, text string, action Action) (string, error) {
	src, dst, err := lang.Pair(text)
	if err != nil {
		return "", err
	}

	target := src
	if action == ActionTranslate {
		target = dst
		action = ActionCorrect
	}
	name, ok := actionNames[action]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, string(action))
	}

	query := url.Values{"srv": {"tr-editor"}}
	form := url.Values{
		"action_type": {name},
		"targ_lang":   {target},
		"src_text":    {text},
	}

	body, err := c.post(ctx, c.editorURL, query, form)
	if err != nil {
		return "", err
	}

	var parsed editorResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("%w: decoding editor response: %v", ErrAPI, err)
	}
	if parsed.ResultText == "" {
		return "", fmt.Errorf(`%w: "result_text" missing from editor response`, ErrAPI)
	}
	return parsed.ResultText, nil
}
