// File: internal/common/context_keys.go
package common

const (
	// LoggerContextKey is the context key for a request-scoped *zap.Logger
	LoggerContextKey = "logger"
	// RequestIDContextKey is the context key for the request ID set by the logging middleware
	RequestIDContextKey = "requestID"
)
