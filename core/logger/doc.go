// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments (development vs production)
// and integrates with the Fiber web framework and the reconciliation pipeline.
//
// # Correlation
//
// WithRayID extracts the RayID from a Fiber context so that all logs of a request
// can be correlated. WithRunID does the same for a single pipeline run started
// from the command line.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Pipeline started")
//
//	l := logger.WithRunID(log, runID)
//	l.Warn("Payment rejected", zap.String("member_id", id))
package logger
