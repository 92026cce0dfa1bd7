// Package client is a typed HTTP client for the timecode service.
package client

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultTimeout = 30 * time.Second
	defaultBaseURL = "http://localhost:8080"
)

// Client holds timecode-api configuration and exposes methods for
// interacting with the service.
type Client struct {
	Base   *url.URL
	Client *http.Client
}

// Describe expands a timecode into its full report form
func (c *Client) Describe(ctx context.Context, req TimecodeRequest) (Report, error) {
	c.ensure()

	var rep Report
	err := c.postResource(ctx, req, &rep, "/timecodes")
	if err != nil {
		return Report{}, err
	}

	return rep, nil
}

// Add applies the request's addend to its timecode
func (c *Client) Add(ctx context.Context, req ArithRequest) (Report, error) {
	c.ensure()

	var rep Report
	err := c.postResource(ctx, req, &rep, "/timecodes/add")
	if err != nil {
		return Report{}, err
	}

	return rep, nil
}

// Sub subtracts the request's frame count from its timecode
func (c *Client) Sub(ctx context.Context, req ArithRequest) (Report, error) {
	c.ensure()

	var rep Report
	err := c.postResource(ctx, req, &rep, "/timecodes/sub")
	if err != nil {
		return Report{}, err
	}

	return rep, nil
}

// Convert rescales the request's timecode to its target framerate
func (c *Client) Convert(ctx context.Context, req ConvertRequest) (Report, error) {
	c.ensure()

	var rep Report
	err := c.postResource(ctx, req, &rep, "/timecodes/convert")
	if err != nil {
		return Report{}, err
	}

	return rep, nil
}

// PutAnchor stores a named start timecode for anchored conversions
func (c *Client) PutAnchor(ctx context.Context, name string, req AnchorRequest) (Report, error) {
	c.ensure()

	var rep Report
	err := c.postResource(ctx, req, &rep, "/anchors/"+name)
	if err != nil {
		return Report{}, err
	}

	return rep, nil
}

// GetAnchor returns a stored anchor by name
func (c *Client) GetAnchor(ctx context.Context, name string) (Report, error) {
	c.ensure()

	var rep Report
	err := c.getResource(ctx, &rep, "/anchors/"+name)
	if err != nil {
		return Report{}, err
	}

	return rep, nil
}

// DeleteAnchor removes a stored anchor by name
func (c *Client) DeleteAnchor(ctx context.Context, name string) error {
	c.ensure()

	resp := map[string]bool{}
	return c.removeResource(ctx, &resp, "/anchors/"+name)
}

func (c *Client) ensure() {
	if c.Client == nil {
		c.Client = &http.Client{Timeout: defaultTimeout}
	}

	if c.Base == nil {
		c.Base = urlMust(url.Parse(defaultBaseURL))
	}
}

func urlMust(u *url.URL, _ error) *url.URL { return u }
