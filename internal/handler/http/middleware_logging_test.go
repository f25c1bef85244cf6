package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-field-inspections/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// makeRequest кладёт в контекст запроса логгер, пишущий в buf,
// так же как это делает withTraceID.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf)
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name          string
		method        string
		path          string
		handlerStatus int
		response      string
		wantLog       []string
	}{
		{
			name:          "GET 200",
			method:        http.MethodGet,
			path:          "/colores",
			handlerStatus: http.StatusOK,
			response:      "[]",
			wantLog:       []string{`"level":"info"`, `"uri":"/colores"`, `"status":200`, `"size":2`, `"duration":`},
		},
		{
			name:     "implicit 200",
			method:   http.MethodGet,
			path:     "/health",
			response: "ok",
			wantLog:  []string{`"status":200`, `"size":2`},
		},
		{
			name:          "POST 400",
			method:        http.MethodPost,
			path:          "/inspecciones",
			handlerStatus: http.StatusBadRequest,
			response:      `{"error":"x"}`,
			wantLog:       []string{`"level":"info"`, `"status":400`},
		},
		{
			name:          "server error logged at error level",
			method:        http.MethodPost,
			path:          "/inspecciones/sync",
			handlerStatus: http.StatusInternalServerError,
			wantLog:       []string{`"level":"error"`, `"status":500`, `"size":0`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &Handler{logger: logger.Nop()}

			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				if tt.handlerStatus != 0 {
					w.WriteHeader(tt.handlerStatus)
				}
				if tt.response != "" {
					_, _ = w.Write([]byte(tt.response))
				}
			})

			rr := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rr, makeRequest(tt.method, tt.path, &buf))

			for _, want := range tt.wantLog {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}
