package cookie

import "errors"

var (
	ErrInvalidName      = errors.New("cookie.invalid_name")
	ErrInvalidSignature = errors.New("cookie.invalid_signature")
	ErrInvalidFormat    = errors.New("cookie.invalid_format")
)
