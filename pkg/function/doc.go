// Package function defines the contract between the session wrapper and the
// request handler it wraps: an invocation receives an Event and returns a
// Response, mirroring the JSON documents exchanged with the serverless
// function runtime.
//
//	h := function.HandlerFunc(func(ctx context.Context, ev *function.Event) (*function.Response, error) {
//		return &function.Response{StatusCode: http.StatusOK, Body: "hello"}, nil
//	})
//
// Header lookups on an Event are case-insensitive. Response.AppendHeader
// folds single- and multi-valued variants of a header into one multi-valued
// entry before appending, which is how Set-Cookie lines are accumulated.
//
// HTTPHandler runs a Handler behind net/http for local development.
package function
