package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/JahangirOsman/hdp-webapp/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// withRequestScope — trace ID
// ─────────────────────────────────────────────

// TestWithRequestScope_TraceID verifies the trace-ID handling: a
// caller-supplied X-Trace-ID is reused, a missing one is generated, and the
// chosen ID is always echoed in the response header.
func TestWithRequestScope_TraceID(t *testing.T) {
	tests := []struct {
		name            string
		requestTraceID  string
		wantSameTraceID bool
		wantValidUUID   bool
	}{
		{
			name:            "trace ID from request header is reused",
			requestTraceID:  "my-custom-trace-id",
			wantSameTraceID: true,
		},
		{
			name:          "no trace ID in request, UUID generated",
			wantValidUUID: true,
		},
		{
			name:            "UUID string as incoming trace ID",
			requestTraceID:  "550e8400-e29b-41d4-a716-446655440000",
			wantSameTraceID: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, nil, nil, nil)
			nextCalled := false

			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.requestTraceID != "" {
				req.Header.Set(traceIDHeader, tt.requestTraceID)
			}
			rec := httptest.NewRecorder()

			h.withRequestScope(next).ServeHTTP(rec, req)

			responseTraceID := rec.Header().Get(traceIDHeader)
			require.NotEmpty(t, responseTraceID)

			if tt.wantSameTraceID {
				assert.Equal(t, tt.requestTraceID, responseTraceID)
			}
			if tt.wantValidUUID {
				_, err := uuid.Parse(responseTraceID)
				assert.NoError(t, err, "generated trace ID should be a valid UUID, got: %s", responseTraceID)
			}
			assert.True(t, nextCalled)
		})
	}
}

// TestWithRequestScope_GeneratesUniqueTraceIDs verifies that generated trace
// IDs do not repeat across requests.
func TestWithRequestScope_GeneratesUniqueTraceIDs(t *testing.T) {
	h := newTestHandler(t, nil, nil, nil)
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mw := h.withRequestScope(next)

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		rec := httptest.NewRecorder()
		mw.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		id := rec.Header().Get(traceIDHeader)
		require.NotEmpty(t, id)

		_, duplicate := seen[id]
		assert.False(t, duplicate, "duplicate trace ID generated: %s", id)
		seen[id] = struct{}{}
	}
}

// ─────────────────────────────────────────────
// withRequestScope — request timeout
// ─────────────────────────────────────────────

// TestWithRequestScope_ContextDeadline verifies that the handler runs under
// a context bounded by the configured request timeout.
func TestWithRequestScope_ContextDeadline(t *testing.T) {
	h := newTestHandler(t, nil, nil, nil) // one-minute timeout

	var deadline time.Time
	var hasDeadline bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		deadline, hasDeadline = r.Context().Deadline()
		w.WriteHeader(http.StatusOK)
	})

	before := time.Now()
	rec := httptest.NewRecorder()
	h.withRequestScope(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.True(t, hasDeadline, "request context must carry a deadline")
	assert.WithinDuration(t, before.Add(time.Minute), deadline, 5*time.Second)
}

// TestWithRequestScope_ZeroTimeout verifies that an unset timeout leaves the
// context unbounded instead of expiring it immediately.
func TestWithRequestScope_ZeroTimeout(t *testing.T) {
	h := newTestHandler(t, nil, nil, nil)
	h.requestTimeout = 0

	var hasDeadline bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasDeadline = r.Context().Deadline()
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	h.withRequestScope(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, hasDeadline)
}

// TestWithRequestScope_DeadlineReachesServices verifies, through the full
// router chain, that the context handed to a service call is bounded: a
// hanging store or model call times out instead of blocking the request
// forever.
func TestWithRequestScope_DeadlineReachesServices(t *testing.T) {
	var hasDeadline bool
	prediction := &mockPredictionService{
		predictFn: func(ctx context.Context, _ url.Values) (models.Prediction, error) {
			_, hasDeadline = ctx.Deadline()
			return models.Prediction{Label: 0, Score: 0.1}, nil
		},
	}

	h := newTestHandler(t, nil, prediction, nil)
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, formRequest("/predict", predictForm()))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, hasDeadline, "service call context must carry a deadline")
}
