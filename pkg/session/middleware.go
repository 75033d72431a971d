package session

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/matteocargnelutti/netlify-functions-session-cookie/pkg/logger"
	"github.com/matteocargnelutti/netlify-functions-session-cookie/pkg/requestid"
)

// Middleware runs next with the session container in the request context.
// The downstream response is buffered so that the session cookie can be
// appended once next returns. Nothing is written if next panics.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if requestid.FromContext(ctx) == "" {
			ctx = requestid.WithContext(ctx, requestid.Resolve(r.Header.Get))
		}
		ctx, container := NewContext(ctx)
		m.restore(ctx, strings.Join(r.Header.Values(cookieHeader), "; "), container)

		buf := &bufferedWriter{header: w.Header().Clone()}
		next.ServeHTTP(buf, r.WithContext(ctx))

		if err := ctx.Err(); err != nil {
			return
		}

		line, err := m.issue(ctx, container)
		if err != nil {
			m.logger.ErrorContext(ctx, "failed to issue session cookie", logger.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		buf.header.Add(setCookieHeader, line)
		buf.flush(w)
	})
}

// bufferedWriter records a response without sending it.
type bufferedWriter struct {
	header http.Header
	status int
	body   bytes.Buffer
}

func (b *bufferedWriter) Header() http.Header {
	return b.header
}

func (b *bufferedWriter) WriteHeader(status int) {
	if b.status == 0 {
		b.status = status
	}
}

func (b *bufferedWriter) Write(p []byte) (int, error) {
	if b.status == 0 {
		b.status = http.StatusOK
	}
	return b.body.Write(p)
}

func (b *bufferedWriter) flush(w http.ResponseWriter) {
	dst := w.Header()
	for name := range dst {
		delete(dst, name)
	}
	for name, values := range b.header {
		dst[name] = values
	}

	status := b.status
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	_, _ = w.Write(b.body.Bytes())
}
