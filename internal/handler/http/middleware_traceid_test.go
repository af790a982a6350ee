package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-course-catalog/internal/logger"
	"github.com/MKhiriev/go-course-catalog/internal/utils"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeWithTraceID runs withTraceID in front of a handler that logs one
// entry through the request logger and returns the recorder and that entry.
func executeWithTraceID(t *testing.T, header string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	h := &Handler{
		logger:   &logger.Logger{Logger: zerolog.New(&buf)},
		traceIDs: utils.NewUUIDGenerator(),
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(traceIDHeader, header)
	}
	rec := httptest.NewRecorder()

	h.withTraceID(next).ServeHTTP(rec, req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return rec, entry
}

func TestWithTraceID_UsesIncomingHeader(t *testing.T) {
	rec, entry := executeWithTraceID(t, "trace-123")

	assert.Equal(t, "trace-123", rec.Header().Get(traceIDHeader))
	assert.Equal(t, "trace-123", entry["trace_id"])
}

func TestWithTraceID_GeneratesUUID(t *testing.T) {
	rec, entry := executeWithTraceID(t, "")

	traceID := rec.Header().Get(traceIDHeader)
	parsed, err := uuid.Parse(traceID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.Equal(t, traceID, entry["trace_id"])
}

func TestWithTraceID_DistinctPerRequest(t *testing.T) {
	rec1, _ := executeWithTraceID(t, "")
	rec2, _ := executeWithTraceID(t, "")

	assert.NotEqual(t, rec1.Header().Get(traceIDHeader), rec2.Header().Get(traceIDHeader))
}
