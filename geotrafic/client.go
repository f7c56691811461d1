package geotrafic

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// The feed declares a default namespace that adds nothing but noise;
// dropping it keeps element matching simple, as the upstream publisher's
// own tooling does.
const namespaceDecl = `<Events xmlns="GeoTrafic">`

// ParseDocument parses a Geo-Trafic XML document.
func ParseDocument(data []byte) (*Document, error) {
	cleaned := strings.Replace(string(data), namespaceDecl, "<Events>", 1)
	var doc Document
	if err := xml.Unmarshal([]byte(cleaned), &doc); err != nil {
		return nil, fmt.Errorf("parsing Geo-Trafic document: %w", err)
	}
	return &doc, nil
}

// Client is a simple HTTP client for fetching the Geo-Trafic feed.
// This is a CLI helper - library users may fetch documents themselves.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a new feed client
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{},
	}
}

// Fetch downloads and parses the feed document at url.
func (c *Client) Fetch(ctx context.Context, url string) (*Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return ParseDocument(data)
}
