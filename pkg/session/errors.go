package session

import "errors"

var (
	// ErrConfiguration indicates a missing or invalid setting. It is always
	// joined with the underlying cause.
	ErrConfiguration = errors.New("session.configuration")

	// ErrNilHandler indicates Wrap was given no handler
	ErrNilHandler = errors.New("session.nil_handler")

	// ErrNoContainer indicates the context carries no session container
	ErrNoContainer = errors.New("session.no_container")

	// ErrEncodeFailed indicates the session data could not be serialized
	ErrEncodeFailed = errors.New("session.encode_failed")
)
