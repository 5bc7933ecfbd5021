package client

import (
	"strings"

	vcderrors "github.com/kbukum/vcd/errors"
)

// category is the URL namespace a request belongs to. The two namespaces
// differ in media types and in how they attach links to responses.
type category int

const (
	categoryUnknown category = iota
	categoryLegacy           // /api
	categoryCloud            // /cloudapi
)

func (c category) String() string {
	switch c {
	case categoryLegacy:
		return "api"
	case categoryCloud:
		return "cloudapi"
	default:
		return "unknown"
	}
}

// categoryOf classifies a request URL into its API namespace.
func categoryOf(u string) (category, error) {
	switch {
	case strings.Contains(u, "/api"):
		return categoryLegacy, nil
	case strings.Contains(u, "/cloudapi"):
		return categoryCloud, nil
	default:
		return categoryUnknown, &vcderrors.InvalidURIError{URI: u}
	}
}

// acceptFor builds the Accept header for a namespace, carrying the pinned
// API version once one is set.
func (c *Client) acceptFor(cat category) string {
	base := "application/json"
	if cat == categoryLegacy {
		base = "application/*+json"
	}
	if v := c.APIVersion(); v != "" {
		return base + ";version=" + v
	}
	return base
}

// APIURL joins the configured host with a legacy /api path.
func (c *Client) APIURL(path string) string {
	return c.config.Host + "/api" + leadingSlash(path)
}

// CloudAPIURL joins the configured host with a /cloudapi path.
func (c *Client) CloudAPIURL(path string) string {
	return c.config.Host + "/cloudapi" + leadingSlash(path)
}

func leadingSlash(path string) string {
	if path == "" || strings.HasPrefix(path, "/") {
		return path
	}
	return "/" + path
}
