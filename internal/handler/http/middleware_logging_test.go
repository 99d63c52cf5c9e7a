package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// loggedRequest builds a request whose context carries a zerolog logger
// writing into buf, the same way withRequestScope attaches one.
func loggedRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf)
	return req.WithContext(l.WithContext(req.Context()))
}

// TestWithLogging verifies the request log line: method, uri, status, and
// size of the completed response.
func TestWithLogging(t *testing.T) {
	tests := []struct {
		name            string
		method          string
		path            string
		handlerStatus   int
		handlerResponse string
		wantLogContains []string
	}{
		{
			name:            "GET 200",
			method:          http.MethodGet,
			path:            "/detail",
			handlerStatus:   http.StatusOK,
			handlerResponse: "OK",
			wantLogContains: []string{
				`"method":"GET"`,
				`"uri":"/detail"`,
				`"status":200`,
				`"duration":`,
				`"size":2`,
			},
		},
		{
			name:            "POST 400",
			method:          http.MethodPost,
			path:            "/predict",
			handlerStatus:   http.StatusBadRequest,
			handlerResponse: "rejected",
			wantLogContains: []string{
				`"method":"POST"`,
				`"uri":"/predict"`,
				`"status":400`,
			},
		},
		{
			name:            "query string preserved in uri",
			method:          http.MethodGet,
			path:            "/visualization?theme=dark",
			handlerStatus:   http.StatusOK,
			wantLogContains: []string{
				`"uri":"/visualization?theme=dark"`,
				`"status":200`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer
			h := newTestHandler(t, nil, nil, nil)

			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.handlerStatus)
				if tt.handlerResponse != "" {
					_, _ = w.Write([]byte(tt.handlerResponse))
				}
			})

			rec := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rec, loggedRequest(tt.method, tt.path, &logBuf))

			assert.Equal(t, tt.handlerStatus, rec.Code)

			logOutput := logBuf.String()
			assert.NotEmpty(t, logOutput)
			for _, want := range tt.wantLogContains {
				assert.Contains(t, logOutput, want)
			}
		})
	}
}

// TestWithLogging_ImplicitStatus verifies that a handler that never calls
// WriteHeader is logged as 200.
func TestWithLogging_ImplicitStatus(t *testing.T) {
	var logBuf bytes.Buffer
	h := newTestHandler(t, nil, nil, nil)

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("implicit 200"))
	})

	rec := httptest.NewRecorder()
	h.withLogging(next).ServeHTTP(rec, loggedRequest(http.MethodGet, "/", &logBuf))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, logBuf.String(), `"status":200`)
}

// TestWithLogging_ResponseSize verifies that the logged size accumulates
// across multiple Write calls.
func TestWithLogging_ResponseSize(t *testing.T) {
	var logBuf bytes.Buffer
	h := newTestHandler(t, nil, nil, nil)

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(strings.Repeat("a", 512)))
		_, _ = w.Write([]byte(strings.Repeat("b", 512)))
	})

	rec := httptest.NewRecorder()
	h.withLogging(next).ServeHTTP(rec, loggedRequest(http.MethodGet, "/", &logBuf))

	assert.Contains(t, logBuf.String(), `"size":1024`)
}

// TestWithLogging_RepeatedWriteHeader verifies that only the first status
// code reaches the log; later WriteHeader calls are ignored.
func TestWithLogging_RepeatedWriteHeader(t *testing.T) {
	var logBuf bytes.Buffer
	h := newTestHandler(t, nil, nil, nil)

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	h.withLogging(next).ServeHTTP(rec, loggedRequest(http.MethodGet, "/", &logBuf))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, logBuf.String(), `"status":409`)
}

// TestWithLogging_PanicNotSuppressed verifies that withLogging leaves panic
// recovery to the router's Recoverer.
func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	var logBuf bytes.Buffer
	h := newTestHandler(t, nil, nil, nil)

	next := http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	assert.Panics(t, func() {
		h.withLogging(next).ServeHTTP(rec, loggedRequest(http.MethodGet, "/", &logBuf))
	})
}
