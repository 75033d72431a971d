// Package httpserver runs the local development server for session-wrapped
// functions.
//
// Run blocks until its context is cancelled and then shuts the server down,
// giving in-flight requests up to the shutdown timeout. Callers own signal
// handling, typically through signal.NotifyContext.
//
//	srv := httpserver.New(router,
//		httpserver.WithAddr("127.0.0.1:8888"),
//		httpserver.WithLogger(log),
//	)
//	if err := srv.Run(ctx); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Errors are ErrListen, ErrShutdown and ErrAlreadyServed.
package httpserver
