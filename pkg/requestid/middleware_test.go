package requestid_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matteocargnelutti/netlify-functions-session-cookie/pkg/logger"
	"github.com/matteocargnelutti/netlify-functions-session-cookie/pkg/requestid"
)

func lookup(headers map[string]string) func(string) string {
	return func(name string) string { return headers[name] }
}

func TestResolve(t *testing.T) {
	t.Parallel()

	t.Run("prefers X-Request-ID", func(t *testing.T) {
		t.Parallel()
		id := requestid.Resolve(lookup(map[string]string{
			requestid.Header:        "client-id",
			requestid.NetlifyHeader: "platform-id",
		}))
		assert.Equal(t, "client-id", id)
	})

	t.Run("falls back to the platform header", func(t *testing.T) {
		t.Parallel()
		id := requestid.Resolve(lookup(map[string]string{
			requestid.Header:        "bad id",
			requestid.NetlifyHeader: "01HZXJ3K9Q",
		}))
		assert.Equal(t, "01HZXJ3K9Q", id)
	})

	t.Run("generates a uuid", func(t *testing.T) {
		t.Parallel()
		for _, fn := range []func(string) string{nil, lookup(nil)} {
			id := requestid.Resolve(fn)
			_, err := uuid.Parse(id)
			assert.NoError(t, err)
		}
	})

	t.Run("rejects invalid ids", func(t *testing.T) {
		t.Parallel()
		invalidIDs := []string{
			"test@request#id",
			"test request id",
			"test/request/id",
			`test\request\id`,
			"test<script>alert(1)</script>",
			strings.Repeat("a", 129),
		}
		for _, invalid := range invalidIDs {
			id := requestid.Resolve(lookup(map[string]string{requestid.Header: invalid}))
			assert.NotEqual(t, invalid, id)
			_, err := uuid.Parse(id)
			assert.NoError(t, err, "input %q", invalid)
		}
	})
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("generates new request ID when not provided", func(t *testing.T) {
		t.Parallel()
		var seen string
		handler := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = requestid.FromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get(requestid.Header))
	})

	t.Run("reuses a valid header", func(t *testing.T) {
		t.Parallel()
		const existingID = "550e8400-e29b-41d4-a716-446655440000"
		var seen string
		handler := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = requestid.FromContext(r.Context())
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(requestid.Header, existingID)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, existingID, seen)
		assert.Equal(t, existingID, rec.Header().Get(requestid.Header))
	})
}

func TestContext(t *testing.T) {
	t.Parallel()

	ctx := requestid.WithContext(context.Background(), "test-id")
	assert.Equal(t, "test-id", requestid.FromContext(ctx))
	assert.Empty(t, requestid.FromContext(context.Background()))
	assert.Empty(t, requestid.FromContext(nil)) //nolint:staticcheck // nil context is handled
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithContextExtractors(requestid.LoggerExtractor()))

	log.InfoContext(requestid.WithContext(context.Background(), "req-1"), "hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-1", entry["request_id"])

	_, ok := requestid.LoggerExtractor()(context.Background())
	assert.False(t, ok)
}
