package requestid

import (
	"net/http"
	"regexp"

	"github.com/google/uuid"
)

const (
	Header = "X-Request-ID"
	// NetlifyHeader carries the platform-assigned id of a function invocation.
	NetlifyHeader = "X-Nf-Request-Id"

	maxIDLength = 128
	idPattern   = "^[a-zA-Z0-9_-]+$"
)

var validIDRegex = regexp.MustCompile(idPattern)

// Resolve returns the first valid id found under Header or NetlifyHeader
// using lookup, or a new UUIDv4 string.
func Resolve(lookup func(name string) string) string {
	if lookup != nil {
		for _, name := range []string{Header, NetlifyHeader} {
			if id := lookup(name); isValidRequestID(id) {
				return id
			}
		}
	}
	return uuid.New().String()
}

// Middleware attaches a request id to the request context and echoes it in
// the response header.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := Resolve(r.Header.Get)
		w.Header().Set(Header, requestID)
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), requestID)))
	})
}

func isValidRequestID(id string) bool {
	if len(id) == 0 || len(id) > maxIDLength {
		return false
	}
	return validIDRegex.MatchString(id)
}
