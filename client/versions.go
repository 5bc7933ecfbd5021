package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/kbukum/vcd/model"
	"github.com/kbukum/vcd/schema"
)

// SupportedVersions fetches the server's API version discovery document.
func (c *Client) SupportedVersions(ctx context.Context) (*model.SupportedVersions, error) {
	result, err := c.Execute(ctx, Request{
		Method:       http.MethodGet,
		URL:          c.APIURL("/versions"),
		ResponseType: schema.Named(model.TypeSupportedVersions),
	})
	if err != nil {
		return nil, err
	}
	versions, _ := result.Decoded.(*model.SupportedVersions)
	if versions == nil {
		return nil, fmt.Errorf("client: version discovery returned no document")
	}
	return versions, nil
}

// NegotiateVersion pins the highest non-deprecated API version the server
// offers. Call before authenticating so the login already runs against
// the negotiated version.
func (c *Client) NegotiateVersion(ctx context.Context) (string, error) {
	versions, err := c.SupportedVersions(ctx)
	if err != nil {
		return "", err
	}

	best := ""
	for _, info := range versions.VersionInfo {
		if info == nil || info.Version == nil {
			continue
		}
		if info.Deprecated != nil && *info.Deprecated {
			continue
		}
		if best == "" || compareVersions(*info.Version, best) > 0 {
			best = *info.Version
		}
	}
	if best == "" {
		return "", fmt.Errorf("client: server offers no usable API version")
	}

	c.SetAPIVersion(best)
	return best, nil
}

// compareVersions orders dotted version strings numerically, so 36.10
// sorts above 36.2. Non-numeric segments fall back to string order.
func compareVersions(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	for i := 0; i < len(as) || i < len(bs); i++ {
		var sa, sb string
		if i < len(as) {
			sa = as[i]
		}
		if i < len(bs) {
			sb = bs[i]
		}
		na, errA := strconv.Atoi(sa)
		nb, errB := strconv.Atoi(sb)
		switch {
		case errA == nil && errB == nil:
			if na != nb {
				if na < nb {
					return -1
				}
				return 1
			}
		default:
			if sa != sb {
				if sa < sb {
					return -1
				}
				return 1
			}
		}
	}
	return 0
}
