package client

import (
	"strings"

	"github.com/kbukum/vcd/model"
	"github.com/kbukum/vcd/schema"
)

// Links is the set of hypermedia links extracted from one response.
type Links []*model.Link

// Find returns the first link carrying rel whose attributes all match.
// Attribute keys are the wire names (href, type, model, name, id); a nil
// or empty attrs map matches on rel alone. Returns nil when no link
// matches.
func (ls Links) Find(rel string, attrs map[string]string) *model.Link {
	for _, l := range ls {
		if l == nil || !l.HasRel(rel) {
			continue
		}
		if linkMatches(l, attrs) {
			return l
		}
	}
	return nil
}

func linkMatches(l *model.Link, attrs map[string]string) bool {
	for key, want := range attrs {
		got, ok := l.Attr(key)
		if !ok || got != want {
			return false
		}
	}
	return true
}

// extractLinks lifts the links off a response: legacy bodies embed them in
// the decoded body's link array, cloud responses carry Link headers.
func (c *Client) extractLinks(cat category, result *Result) Links {
	if cat == categoryLegacy {
		return Links(model.LinksOf(result.Decoded))
	}

	var links Links
	for _, header := range result.Headers.Values("Link") {
		for _, value := range splitLinkHeader(header) {
			if l := c.parseLinkHeader(value); l != nil {
				links = append(links, l)
			}
		}
	}
	return links
}

// splitLinkHeader splits a Link header that carries several comma-joined
// links. Commas inside the <href> part or inside quoted attribute values
// do not split.
func splitLinkHeader(header string) []string {
	var (
		parts    []string
		start    int
		inAngle  bool
		inQuotes bool
	)
	for i := 0; i < len(header); i++ {
		switch header[i] {
		case '<':
			if !inQuotes {
				inAngle = true
			}
		case '>':
			if !inQuotes {
				inAngle = false
			}
		case '"':
			inQuotes = !inQuotes
		case ',':
			if !inAngle && !inQuotes {
				parts = append(parts, header[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, header[start:])
	return parts
}

// parseLinkHeader parses one link of the form
//
//	<https://host/x>; rel="down"; model="Role"
//
// The href sits in angle brackets; the remaining semicolon-delimited
// segments are key="value" attribute assignments applied through the Link
// descriptor, so a new wire attribute only needs a descriptor field.
// Returns nil for values with no href.
func (c *Client) parseLinkHeader(value string) *model.Link {
	segments := strings.Split(value, ";")
	href := strings.TrimSpace(segments[0])
	if !strings.HasPrefix(href, "<") || !strings.HasSuffix(href, ">") {
		return nil
	}
	href = strings.TrimSuffix(strings.TrimPrefix(href, "<"), ">")
	if href == "" {
		return nil
	}

	link := &model.Link{Href: &href}

	desc, err := c.codec.Registry().Resolve(model.TypeLink)
	if err != nil {
		return link
	}
	fields := make(map[string]schema.Field)
	for _, f := range c.codec.Registry().FieldsOf(desc) {
		fields[f.Key] = f
	}

	for _, segment := range segments[1:] {
		key, val, ok := strings.Cut(segment, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		val = strings.Trim(strings.TrimSpace(val), `"`)
		if f, ok := fields[key]; ok && key != "href" {
			_ = f.Set(link, val)
		}
	}
	return link
}
