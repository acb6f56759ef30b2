// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance supporting development and
// production encodings and integrates with the Fiber server mode.
//
// # Context Awareness
//
// The WithRayID helper extracts the RayID (request ID) from a Fiber
// context and attaches it to the log entry, so all logs of one request
// can be correlated.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Comparison complete", zap.Int("diffs", n))
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
