package httpserver

import "errors"

var (
	ErrListen        = errors.New("httpserver.listen")
	ErrShutdown      = errors.New("httpserver.shutdown")
	ErrAlreadyServed = errors.New("httpserver.already_served")
)
