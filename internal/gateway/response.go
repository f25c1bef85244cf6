package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-field-inspections/models"
)

const (
	// HeaderOffline marks a response synthesized because the backend could
	// not be reached.
	HeaderOffline = "X-Gateway-Offline"

	// HeaderCache names the partition a response was served from.
	HeaderCache = "X-Gateway-Cache"

	offlineMessage = "Sin conexión con el servidor. Los cambios se sincronizarán al recuperar la conexión."
)

// OfflineError is the JSON body of a synthesized offline response.
type OfflineError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	URL     string `json:"url"`
}

func offlineResponse(req *http.Request) *http.Response {
	body, _ := json.Marshal(OfflineError{
		Error:   "offline",
		Message: offlineMessage,
		URL:     req.URL.String(),
	})

	header := make(http.Header)
	header.Set("Content-Type", "application/json")
	header.Set(HeaderOffline, "1")

	return newResponse(req, http.StatusServiceUnavailable, header, body)
}

func entryFromResponse(cacheName string, req *http.Request, resp *http.Response, now time.Time) (models.CacheEntry, error) {
	var body []byte
	if resp.Body != nil {
		var err error
		body, err = io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			resp.Body = io.NopCloser(bytes.NewReader(body))
			return models.CacheEntry{}, fmt.Errorf("read response body: %w", err)
		}
	}
	resp.Body = io.NopCloser(bytes.NewReader(body))

	return models.CacheEntry{
		CacheName: cacheName,
		Method:    req.Method,
		URL:       cacheKey(req.URL),
		Status:    resp.StatusCode,
		Header:    resp.Header.Clone(),
		Body:      body,
		StoredAt:  now,
	}, nil
}

func responseFromEntry(entry models.CacheEntry, req *http.Request) *http.Response {
	header := entry.Header.Clone()
	if header == nil {
		header = make(http.Header)
	}
	header.Set(HeaderCache, entry.CacheName)

	return newResponse(req, entry.Status, header, entry.Body)
}

func newResponse(req *http.Request, status int, header http.Header, body []byte) *http.Response {
	header.Set("Content-Length", strconv.Itoa(len(body)))

	return &http.Response{
		Status:        fmt.Sprintf("%d %s", status, http.StatusText(status)),
		StatusCode:    status,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(body)),
		ContentLength: int64(len(body)),
		Request:       req,
	}
}
