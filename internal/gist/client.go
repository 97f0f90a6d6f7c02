// Package gist implements the remote document store client and sync layer.
//
// The transport exposes exactly two verbs:
// read a gist by ID, returning a manifest of named files with textual
// content, and patch a gist by ID, replacing one file's content.
// Authentication is a per-guild bearer token supplied per call.
package gist

import (
	"context"
	"sort"

	"github.com/go-resty/resty/v2"
)

// File is one named entry in a gist manifest.
type File struct {
	Content string `json:"content"`
}

// Manifest is the file map returned by a gist read.
type Manifest struct {
	Files map[string]File `json:"files"`
}

// FirstFile returns the lexicographically first filename in the manifest
// and whether the manifest holds any file at all. Gist file maps are
// unordered; sorting keeps the chosen document file deterministic when a
// gist carries more than one file.
func (m *Manifest) FirstFile() (string, bool) {
	if len(m.Files) == 0 {
		return "", false
	}
	names := make([]string, 0, len(m.Files))
	for name := range m.Files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names[0], true
}

// Client wraps the gist HTTP API. It is safe for concurrent use.
//
// No request deadline is applied here; outbound calls inherit the
// transport's default behavior. The only time bound in this layer is the
// cache TTL, which is a staleness window, not a timeout.
type Client struct {
	http *resty.Client
}

// NewClient constructs a Client against baseURL (e.g. https://api.github.com).
func NewClient(baseURL string) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/vnd.github+json")
	// The sync layer surfaces non-success statuses itself; resty must not
	// turn them into errors or retry them.
	c.SetRetryCount(0)
	return &Client{http: c}
}

// Read fetches the manifest of gistID. It returns the decoded manifest and
// the HTTP status code; err is non-nil only for transport-level failures.
func (c *Client) Read(ctx context.Context, token, gistID string) (*Manifest, int, error) {
	var manifest Manifest
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&manifest).
		Get("/gists/" + gistID)
	if err != nil {
		return nil, 0, err
	}
	return &manifest, resp.StatusCode(), nil
}

// Write replaces the content of filename inside gistID. It returns the HTTP
// status code; err is non-nil only for transport-level failures.
func (c *Client) Write(ctx context.Context, token, gistID, filename, content string) (int, error) {
	body := map[string]map[string]File{
		"files": {filename: {Content: content}},
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Patch("/gists/" + gistID)
	if err != nil {
		return 0, err
	}
	return resp.StatusCode(), nil
}
