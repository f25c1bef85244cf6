package gateway

import (
	"net/http"
	"net/url"
	"path"
	"strings"
)

// RequestClass selects the caching strategy applied to a request.
type RequestClass int

const (
	// ClassOther requests go to the network untouched.
	ClassOther RequestClass = iota
	// ClassStatic requests are served cache-first.
	ClassStatic
	// ClassAPI requests are served network-first.
	ClassAPI
)

func (c RequestClass) String() string {
	switch c {
	case ClassStatic:
		return "static"
	case ClassAPI:
		return "api"
	}
	return "other"
}

var staticDestinations = map[string]struct{}{
	"document": {},
	"script":   {},
	"style":    {},
	"image":    {},
	"font":     {},
	"manifest": {},
}

var staticExtensions = map[string]struct{}{
	".html":        {},
	".js":          {},
	".css":         {},
	".png":         {},
	".jpg":         {},
	".jpeg":        {},
	".svg":         {},
	".ico":         {},
	".webp":        {},
	".woff2":       {},
	".webmanifest": {},
}

// Classify returns the class of req.
//
// A path under one of the API prefixes is always an API call. Otherwise a
// request that looks like a shell asset is static, and anything else sent to
// the backend host is an API call.
func (g *Gateway) Classify(req *http.Request) RequestClass {
	if g.hasAPIPrefix(req.URL.Path) {
		return ClassAPI
	}
	if isStaticAsset(req) {
		return ClassStatic
	}
	if sameHost(req.URL, g.backend) {
		return ClassAPI
	}
	return ClassOther
}

func (g *Gateway) hasAPIPrefix(p string) bool {
	for _, prefix := range g.apiPrefixes {
		prefix = strings.TrimRight(prefix, "/")
		if prefix == "" {
			continue
		}
		if p == prefix || strings.HasPrefix(p, prefix+"/") {
			return true
		}
	}
	return false
}

func isStaticAsset(req *http.Request) bool {
	if _, ok := staticDestinations[req.Header.Get("Sec-Fetch-Dest")]; ok {
		return true
	}
	if acceptsHTML(req) {
		return true
	}

	p := req.URL.Path
	if p == "" || p == "/" || path.Base(p) == "manifest.json" {
		return true
	}
	_, ok := staticExtensions[strings.ToLower(path.Ext(p))]
	return ok
}

// isDocument reports whether req asks for a navigable page.
func isDocument(req *http.Request) bool {
	if dest := req.Header.Get("Sec-Fetch-Dest"); dest != "" {
		return dest == "document"
	}
	if req.Header.Get("Sec-Fetch-Mode") == "navigate" || acceptsHTML(req) {
		return true
	}

	p := req.URL.Path
	return p == "" || p == "/" || strings.HasSuffix(p, ".html")
}

func acceptsHTML(req *http.Request) bool {
	return strings.Contains(req.Header.Get("Accept"), "text/html")
}

func sameHost(u, other *url.URL) bool {
	return strings.EqualFold(u.Host, other.Host)
}
