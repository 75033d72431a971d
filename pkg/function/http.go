package function

import (
	"encoding/base64"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/matteocargnelutti/netlify-functions-session-cookie/pkg/logger"
)

// MaxBodySize bounds request bodies read by HTTPHandler.
const MaxBodySize = 6 << 20

// HTTPHandler serves h over net/http, translating each request into an Event
// and the returned Response back onto the writer. It is meant for local
// development and tests; production invocations arrive through the platform.
func HTTPHandler(h Handler, log *slog.Logger) http.Handler {
	if log == nil {
		log = logger.Discard()
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		event, err := NewEvent(r)
		if err != nil {
			log.WarnContext(r.Context(), "failed to read request", logger.Error(err))
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		resp, err := h.Handle(r.Context(), event)
		if err == nil && resp == nil {
			err = ErrNilResponse
		}
		if err != nil {
			log.ErrorContext(r.Context(), "function invocation failed", logger.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		if err := WriteResponse(w, resp); err != nil {
			log.ErrorContext(r.Context(), "failed to write response", logger.Error(err))
		}
	})
}

// NewEvent converts an HTTP request into an Event. Bodies that are not valid
// UTF-8 are base64 encoded.
func NewEvent(r *http.Request) (*Event, error) {
	event := &Event{
		HTTPMethod:            r.Method,
		Path:                  r.URL.Path,
		RawQuery:              r.URL.RawQuery,
		Headers:               make(map[string]string, len(r.Header)),
		MultiValueHeaders:     make(map[string][]string, len(r.Header)),
		QueryStringParameters: make(map[string]string),
	}

	for name, values := range r.Header {
		if len(values) == 0 {
			continue
		}
		key := strings.ToLower(name)
		event.MultiValueHeaders[key] = append([]string(nil), values...)
		if key == "cookie" {
			event.Headers[key] = strings.Join(values, "; ")
		} else {
			event.Headers[key] = values[0]
		}
	}
	if r.Host != "" {
		event.Headers["host"] = r.Host
	}

	for name, values := range r.URL.Query() {
		if len(values) > 0 {
			event.QueryStringParameters[name] = values[0]
		}
	}

	if r.Body != nil {
		body, err := io.ReadAll(io.LimitReader(r.Body, MaxBodySize))
		if err != nil {
			return nil, err
		}
		if utf8.Valid(body) {
			event.Body = string(body)
		} else {
			event.Body = base64.StdEncoding.EncodeToString(body)
			event.IsBase64Encoded = true
		}
	}

	return event, nil
}

// WriteResponse writes resp to w. Multi-valued headers are written as
// repeated header lines; a zero status code means 200.
func WriteResponse(w http.ResponseWriter, resp *Response) error {
	body := []byte(resp.Body)
	if resp.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(resp.Body)
		if err != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return ErrInvalidBody
		}
		body = decoded
	}

	header := w.Header()
	for name, value := range resp.Headers {
		header.Set(name, value)
	}
	for name, values := range resp.MultiValueHeaders {
		header.Del(name)
		for _, v := range values {
			header.Add(name, v)
		}
	}

	status := resp.StatusCode
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)

	_, err := w.Write(body)
	return err
}
