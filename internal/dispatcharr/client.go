package dispatcharr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Group is one channel group as reported by the host.
type Group struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Channel is one channel record as reported by the host.
type Channel struct {
	ID            int64       `json:"id"`
	Name          string      `json:"name"`
	ChannelNumber json.Number `json:"channel_number"`
	GroupID       int64       `json:"channel_group_id"`
	LogoID        int64       `json:"logo_id"`
}

// Logo is one logo-catalog entry.
type Logo struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ChannelEdit is one element of a bulk channel update.
type ChannelEdit struct {
	ID     int64  `json:"id"`
	Name   string `json:"name,omitempty"`
	LogoID int64  `json:"logo_id,omitempty"`
}

// Options configures optional client behavior.
type Options struct {
	Timeout time.Duration
	// MutationsPerSecond throttles PATCH/POST calls against the host.
	// Zero disables throttling.
	MutationsPerSecond float64
}

// Client talks to a Dispatcharr-compatible API. All calls require a prior
// Login; the access token is held for the client's lifetime.
type Client struct {
	base    string
	http    *http.Client
	token   string
	limiter *rate.Limiter
}

// New creates a client for the given base URL.
func New(base string, opts Options) *Client {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	var limiter *rate.Limiter
	if opts.MutationsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.MutationsPerSecond), 1)
	}
	return &Client{
		base:    strings.TrimRight(base, "/"),
		http:    &http.Client{Timeout: timeout},
		limiter: limiter,
	}
}

// Login obtains an API access token using username and password.
func (c *Client) Login(ctx context.Context, username, password string) error {
	payload, _ := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.base+"/api/accounts/token/", bytes.NewReader(payload))
	if err != nil {
		return apiErr("login", ErrBadResponse, 0, err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return apiErr("login", ErrUpstreamUnavailable, 0, err)
	}
	defer res.Body.Close() //nolint:errcheck

	if res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden {
		return apiErr("login", ErrUnauthorized, res.StatusCode, nil)
	}
	if res.StatusCode >= 400 {
		return apiErr("login", ErrUpstreamError, res.StatusCode, nil)
	}

	var body struct {
		Access string `json:"access"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return apiErr("login", ErrBadResponse, res.StatusCode, err)
	}
	if body.Access == "" {
		return apiErr("login", ErrUnauthorized, res.StatusCode,
			fmt.Errorf("no access token in response"))
	}
	c.token = body.Access
	return nil
}

// Groups lists all channel groups.
func (c *Client) Groups(ctx context.Context) ([]Group, error) {
	var groups []Group
	if err := c.getJSON(ctx, "/api/channels/groups/", &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// Channels lists all channels.
func (c *Client) Channels(ctx context.Context) ([]Channel, error) {
	var channels []Channel
	if err := c.getJSON(ctx, "/api/channels/channels/", &channels); err != nil {
		return nil, err
	}
	return channels, nil
}

// Logos lists the full logo catalog, following pagination links until
// exhausted.
func (c *Client) Logos(ctx context.Context) ([]Logo, error) {
	var all []Logo
	next := c.base + "/api/channels/logos/"
	for next != "" {
		var page struct {
			Results []Logo `json:"results"`
			Next    string `json:"next"`
		}
		if err := c.getJSONURL(ctx, next, &page); err != nil {
			return nil, err
		}
		all = append(all, page.Results...)
		next = page.Next
	}
	return all, nil
}

// BulkEdit applies a batch of channel updates in a single PATCH.
func (c *Client) BulkEdit(ctx context.Context, edits []ChannelEdit) error {
	if len(edits) == 0 {
		return nil
	}
	return c.mutate(ctx, http.MethodPatch, "/api/channels/channels/edit/bulk/", edits)
}

// RefreshM3U triggers a global playlist refresh so the host UI picks up
// renamed channels.
func (c *Client) RefreshM3U(ctx context.Context) error {
	return c.mutate(ctx, http.MethodPost, "/api/m3u/refresh/", struct{}{})
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	return c.getJSONURL(ctx, c.base+path, out)
}

func (c *Client) getJSONURL(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return apiErr("get "+url, ErrBadResponse, 0, err)
	}
	c.authorize(req)
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return apiErr("get "+url, ErrUpstreamUnavailable, 0, err)
	}
	defer res.Body.Close() //nolint:errcheck

	if err := statusError("get "+url, res.StatusCode); err != nil {
		return err
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return apiErr("get "+url, ErrBadResponse, res.StatusCode, err)
	}
	return nil
}

func (c *Client) mutate(ctx context.Context, method, path string, payload any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return apiErr(method+" "+path, ErrUpstreamUnavailable, 0, err)
		}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return apiErr(method+" "+path, ErrBadResponse, 0, err)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, bytes.NewReader(body))
	if err != nil {
		return apiErr(method+" "+path, ErrBadResponse, 0, err)
	}
	c.authorize(req)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return apiErr(method+" "+path, ErrUpstreamUnavailable, 0, err)
	}
	defer res.Body.Close() //nolint:errcheck

	return statusError(method+" "+path, res.StatusCode)
}

func (c *Client) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

func statusError(op string, status int) error {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return apiErr(op, ErrUnauthorized, status, nil)
	case status == http.StatusNotFound:
		return apiErr(op, ErrNotFound, status, nil)
	case status >= 500:
		return apiErr(op, ErrUpstreamError, status, nil)
	case status >= 400:
		return apiErr(op, ErrBadResponse, status, nil)
	}
	return nil
}
