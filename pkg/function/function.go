package function

import (
	"context"
	"sort"
	"strings"
)

// Event is an HTTP request as delivered to a function invocation.
type Event struct {
	HTTPMethod            string              `json:"httpMethod"`
	Path                  string              `json:"path"`
	RawQuery              string              `json:"rawQuery,omitempty"`
	Headers               map[string]string   `json:"headers,omitempty"`
	MultiValueHeaders     map[string][]string `json:"multiValueHeaders,omitempty"`
	QueryStringParameters map[string]string   `json:"queryStringParameters,omitempty"`
	Body                  string              `json:"body"`
	IsBase64Encoded       bool                `json:"isBase64Encoded"`
}

// Response is what a function returns to the platform.
type Response struct {
	StatusCode        int                 `json:"statusCode"`
	Headers           map[string]string   `json:"headers,omitempty"`
	MultiValueHeaders map[string][]string `json:"multiValueHeaders,omitempty"`
	Body              string              `json:"body,omitempty"`
	IsBase64Encoded   bool                `json:"isBase64Encoded,omitempty"`
}

// Handler handles one function invocation.
type Handler interface {
	Handle(ctx context.Context, event *Event) (*Response, error)
}

// HandlerFunc adapts an ordinary function to Handler.
type HandlerFunc func(ctx context.Context, event *Event) (*Response, error)

func (f HandlerFunc) Handle(ctx context.Context, event *Event) (*Response, error) {
	return f(ctx, event)
}

// Header returns the first value of the named header. Names match
// case-insensitively and Headers is consulted before MultiValueHeaders.
// An exact key match wins, otherwise the lexicographically smallest variant.
func (e *Event) Header(name string) (string, bool) {
	if e == nil {
		return "", false
	}
	if key, ok := findKey(e.Headers, name); ok {
		return e.Headers[key], true
	}
	if key, ok := findKey(e.MultiValueHeaders, name); ok {
		if values := e.MultiValueHeaders[key]; len(values) > 0 {
			return values[0], true
		}
	}
	return "", false
}

// findKey returns name if present in m, otherwise the smallest key equal to
// name under case folding.
func findKey[V any](m map[string]V, name string) (string, bool) {
	if _, ok := m[name]; ok {
		return name, true
	}
	keys := matchingKeys(m, name)
	if len(keys) == 0 {
		return "", false
	}
	return keys[0], true
}

// matchingKeys returns every key of m equal to name under case folding, sorted.
func matchingKeys[V any](m map[string]V, name string) []string {
	var keys []string
	for k := range m {
		if strings.EqualFold(k, name) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// AppendHeader appends value to the multi-valued header name. Entries stored
// under any case variant of name are folded into MultiValueHeaders[name]
// first, in order: multi-valued entries, then single-valued ones, which are
// removed from Headers. The new value always ends up last.
func (r *Response) AppendHeader(name, value string) {
	var values []string

	for _, key := range orderedKeys(r.MultiValueHeaders, name) {
		values = append(values, r.MultiValueHeaders[key]...)
		delete(r.MultiValueHeaders, key)
	}
	for _, key := range orderedKeys(r.Headers, name) {
		values = append(values, r.Headers[key])
		delete(r.Headers, key)
	}

	if r.MultiValueHeaders == nil {
		r.MultiValueHeaders = make(map[string][]string)
	}
	r.MultiValueHeaders[name] = append(values, value)
}

// orderedKeys is matchingKeys with an exact match moved to the front.
func orderedKeys[V any](m map[string]V, name string) []string {
	keys := matchingKeys(m, name)
	for i, k := range keys {
		if k == name && i > 0 {
			copy(keys[1:i+1], keys[:i])
			keys[0] = name
			break
		}
	}
	return keys
}
