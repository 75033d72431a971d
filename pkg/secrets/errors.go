package secrets

import "errors"

var (
	ErrMissingSecret  = errors.New("secrets.missing_secret")
	ErrSecretTooShort = errors.New("secrets.secret_too_short")
)
