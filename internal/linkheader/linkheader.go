// Package linkheader extracts previous/next page cursors from the Link
// response header emitted by cursor-paginated list endpoints:
//
//	<https://host/api/0/apps/?cursor=0:0:1>; rel="previous"; results="false"; cursor="0:0:1",
//	<https://host/api/0/apps/?cursor=0:20:0>; rel="next"; results="true"; cursor="0:20:0"
//
// A link whose results attribute is "false" points at an empty page and is
// reported as absent.
package linkheader

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/tomnomnom/linkheader"
)

// Relation names used by paginated endpoints.
const (
	RelPrevious = "previous"
	RelNext     = "next"
)

// Attribute names carried on each link.
const (
	attrResults = "results"
	attrCursor  = "cursor"
)

// ErrMalformed is returned when a non-empty header yields no usable links.
var ErrMalformed = errors.New("malformed link header")

// Link is a single pagination link.
type Link struct {
	URL     string
	Rel     string
	Cursor  string
	Results bool
}

// Parse parses a Link header. An empty header yields no links and no error.
func Parse(header string) ([]Link, error) {
	if strings.TrimSpace(header) == "" {
		return nil, nil
	}

	parsed := linkheader.Parse(header)

	links := make([]Link, 0, len(parsed))
	for _, l := range parsed {
		if l.URL == "" {
			continue
		}

		c := l.Param(attrCursor)
		if c == "" {
			c = cursorFromURL(l.URL)
		}

		links = append(links, Link{
			URL:    l.URL,
			Rel:    l.Rel,
			Cursor: c,
			// Endpoints that omit the attribute are assumed to have results.
			Results: !l.HasParam(attrResults) || l.Param(attrResults) == "true",
		})
	}

	if len(links) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrMalformed, header)
	}
	return links, nil
}

// Cursors returns the previous and next cursors carried by header. A cursor
// is empty when its link is missing or reports results="false".
func Cursors(header string) (string, string, error) {
	links, err := Parse(header)
	if err != nil {
		return "", "", err
	}

	var previous, next string
	for _, l := range links {
		if !l.Results {
			continue
		}
		switch l.Rel {
		case RelPrevious:
			previous = l.Cursor
		case RelNext:
			next = l.Cursor
		}
	}

	return previous, next, nil
}

func cursorFromURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Query().Get(attrCursor)
}
