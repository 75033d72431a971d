package function

import "errors"

var (
	// ErrNilResponse indicates a handler returned neither a response nor an error
	ErrNilResponse = errors.New("function.nil_response")
	// ErrInvalidBody indicates a base64 response body could not be decoded
	ErrInvalidBody = errors.New("function.invalid_body")
)
