// Package session keeps per-user state in a signed cookie so that stateless
// function handlers can read and modify it without a backing store.
//
// Each invocation restores the session container from the incoming Cookie
// header, hands it to the handler through the context and writes it back as
// the last Set-Cookie entry of the response, signed with HMAC-SHA256.
//
// # Usage
//
//	func counter(ctx context.Context, ev *function.Event) (*function.Response, error) {
//	    s, err := session.FromContext(ctx)
//	    if err != nil {
//	        return nil, err
//	    }
//	    n, _ := s.GetInt("visits")
//	    s.Set("visits", n+1)
//	    return &function.Response{StatusCode: http.StatusOK}, nil
//	}
//
//	handler, err := session.Wrap(function.HandlerFunc(counter))
//
// Wrap reads its configuration from the environment on every invocation:
//
//	SESSION_COOKIE_SECRET            signing secret, at least 32 bytes (required)
//	SESSION_COOKIE_PREVIOUS_SECRETS  comma separated secrets still accepted
//	SESSION_COOKIE_NAME              cookie name (default "session")
//	SESSION_COOKIE_HTTPONLY          "0" disables HttpOnly
//	SESSION_COOKIE_SECURE            "0" disables Secure
//	SESSION_COOKIE_SAMESITE          Strict, Lax or None (default Lax)
//	SESSION_COOKIE_MAX_AGE_SPAN      lifetime in seconds (default 604800)
//	SESSION_COOKIE_DOMAIN            Domain attribute
//	SESSION_COOKIE_PATH              Path attribute (default "/")
//
// A Manager built with NewManager resolves the configuration once and can
// wrap any number of handlers, or plain net/http handlers via Middleware.
//
// # Error Handling
//
//   - ErrConfiguration: missing or invalid setting, returned before the handler runs
//   - ErrNilHandler: Wrap called without a handler
//   - ErrNoContainer: context was not prepared by the wrapper
//
// Invalid, tampered or expired-key cookies are not errors: the session simply
// starts empty.
package session
