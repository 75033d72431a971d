// Package requestid assigns correlation ids to requests and function
// invocations.
//
// An id supplied by the client in "X-Request-ID", or by the platform in
// "X-Nf-Request-Id", is reused when it is at most 128 characters of
// [a-zA-Z0-9_-]; otherwise a new UUIDv4 string is generated.
//
//	mux := http.NewServeMux()
//	http.ListenAndServe(":8080", requestid.Middleware(mux))
//
//	id := requestid.Resolve(func(name string) string { return headers[name] })
//	ctx = requestid.WithContext(ctx, id)
//
// LoggerExtractor plugs the id stored in a context into logger.New via
// logger.WithContextExtractors.
package requestid
