package museum

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client fetches raw documents from the museum site. One attempt per call,
// no retries; callers surface failures as upstream errors.
type Client interface {
	// FetchJSON resolves path against the site origin, appends query params
	// and a ".json" suffix (unless already present) and returns the raw body.
	FetchJSON(ctx context.Context, path string, params url.Values) ([]byte, error)
	// FetchHTML fetches a fully formed page URL and returns the raw body.
	FetchHTML(ctx context.Context, rawURL string) ([]byte, error)
}

type siteClient struct {
	baseURL string
	http    *resty.Client
}

func NewClient(baseURL string, timeout time.Duration) Client {
	client := resty.New()
	client.SetTimeout(timeout)

	return &siteClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    client,
	}
}

func (c *siteClient) FetchJSON(ctx context.Context, path string, params url.Values) ([]byte, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if !strings.HasSuffix(path, ".json") {
		path += ".json"
	}

	target := c.baseURL + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	return c.get(ctx, target)
}

func (c *siteClient) FetchHTML(ctx context.Context, rawURL string) ([]byte, error) {
	return c.get(ctx, rawURL)
}

func (c *siteClient) get(ctx context.Context, target string) ([]byte, error) {
	res, err := c.http.R().
		SetContext(ctx).
		Get(target)
	if err != nil {
		return nil, fmt.Errorf("museum: GET %s: %w", target, err)
	}
	if !res.IsSuccess() {
		return nil, fmt.Errorf("museum: GET %s: unexpected status %d", target, res.StatusCode())
	}
	return res.Body(), nil
}
