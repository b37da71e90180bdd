package ghost

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Client talks to a Ghost Content API instance over key-authenticated GET
// requests. No retries and no caching: a failed fetch degrades to the
// fallback catalog at the aggregation layer, so transient errors are cheap.
type Client struct {
	httpClient *http.Client
	baseURL    string
	key        string
	userAgent  string
}

func NewClient(httpClient *http.Client, baseURL, key, userAgent string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		key:        key,
		userAgent:  userAgent,
	}
}

// Enabled reports whether a remote source is configured at all.
func (c *Client) Enabled() bool {
	return c.baseURL != "" && c.key != ""
}

// FetchAll returns every published post with tags and authors included.
func (c *Client) FetchAll(ctx context.Context) ([]Post, error) {
	params := url.Values{}
	params.Set("include", "tags,authors")
	params.Set("limit", "all")

	response, err := c.get(ctx, "posts", params)
	if err != nil {
		return nil, err
	}
	return response.Posts, nil
}

// FetchBySlug returns one post or nil when the slug is unknown upstream.
func (c *Client) FetchBySlug(ctx context.Context, slug string) (*Post, error) {
	params := url.Values{}
	params.Set("include", "tags,authors")

	response, err := c.get(ctx, "posts/slug/"+url.PathEscape(slug), params)
	if err != nil {
		return nil, err
	}
	if len(response.Posts) == 0 {
		return nil, nil
	}
	return &response.Posts[0], nil
}

// FetchByTag returns every post carrying the given tag slug.
func (c *Client) FetchByTag(ctx context.Context, tagSlug string) ([]Post, error) {
	params := url.Values{}
	params.Set("include", "tags,authors")
	params.Set("filter", "tag:"+tagSlug)
	params.Set("limit", "all")

	response, err := c.get(ctx, "posts", params)
	if err != nil {
		return nil, err
	}
	return response.Posts, nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values) (*postsResponse, error) {
	requestURL, err := c.buildURL(endpoint, params)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch posts: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return &postsResponse{}, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var response postsResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &response, nil
}

func (c *Client) buildURL(endpoint string, params url.Values) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid Ghost base URL: %w", err)
	}
	u = u.JoinPath("ghost", "api", "content", endpoint, "/")

	query := u.Query()
	query.Set("key", c.key)
	for name, values := range params {
		for _, value := range values {
			query.Set(name, value)
		}
	}
	u.RawQuery = query.Encode()

	return u.String(), nil
}
