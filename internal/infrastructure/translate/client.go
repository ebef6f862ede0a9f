package translate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ZeeshanKhalid2k01/youtube-tracking/internal/errs"
	"github.com/ZeeshanKhalid2k01/youtube-tracking/internal/ports"
)

const defaultBaseURL = "https://translate.googleapis.com/translate_a/single"

// Client calls the public translate web endpoint as a ports.Translator.
// The endpoint answers with a nested JSON array; the first element holds
// chunk pairs of [translated, source, ...].
type Client struct {
	httpClient *http.Client
	baseURL    string
}

var _ ports.Translator = (*Client)(nil)

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		baseURL:    defaultBaseURL,
	}
}

// NewClientWithBase overrides the endpoint, for tests.
func NewClientWithBase(httpClient *http.Client, baseURL string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	return &Client{httpClient: httpClient, baseURL: baseURL}
}

func (c *Client) Translate(ctx context.Context, text string, source string, target string) (string, error) {
	if ctx == nil {
		return "", errors.New("context is required")
	}
	if text == "" {
		return "", nil
	}

	query := url.Values{}
	query.Set("client", "gtx")
	query.Set("sl", source)
	query.Set("tl", target)
	query.Set("dt", "t")
	query.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL,
		strings.NewReader(query.Encode()))
	if err != nil {
		return "", errs.Wrap(err, "build translate request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errs.Wrap(err, "call translate endpoint")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translate endpoint returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errs.Wrap(err, "read translate body")
	}

	return decodeTranslation(body)
}

func decodeTranslation(body []byte) (string, error) {
	var payload []any
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", errs.Wrap(err, "decode translate payload")
	}
	if len(payload) == 0 {
		return "", errors.New("empty translate payload")
	}

	chunks, ok := payload[0].([]any)
	if !ok {
		return "", fmt.Errorf("unexpected translate payload shape: %T", payload[0])
	}

	var out strings.Builder
	for _, raw := range chunks {
		chunk, ok := raw.([]any)
		if !ok || len(chunk) == 0 {
			continue
		}
		if piece, ok := chunk[0].(string); ok {
			out.WriteString(piece)
		}
	}

	return out.String(), nil
}
