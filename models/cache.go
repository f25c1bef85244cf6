package models

import (
	"net/http"
	"time"
)

// CacheEntry is a stored HTTP response of the caching gateway, keyed by the
// cache name, the request method and the absolute request URL.
type CacheEntry struct {
	CacheName string
	Method    string
	URL       string
	Status    int
	Header    http.Header
	Body      []byte
	StoredAt  time.Time
}
