// Package logger builds log/slog loggers with a small set of options and
// context-aware attribute injection.
//
//	log := logger.New(
//		logger.WithEnvironment(os.Getenv("CONTEXT"), "sessioncookie"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "session restored", logger.Cookie("session"))
//
// Attribute helpers (Error, RequestID, Component, Cookie, Reason, Size) keep
// key names consistent across packages. Discard returns a logger that drops
// everything and is used as the default by library code.
package logger
