// Package logger provides the structured logger used by the scope tracer
// for its own diagnostics.
//
// The tracer writes its box-drawn trace to a plain text sink; everything the
// tracer has to say about itself (mode changes, failed sink writes, scopes
// still open at shutdown) goes through this package instead, as structured
// Zap entries on stderr.
//
// # Architecture
//
//   - Logger interface: Debug, Info, Warn, Error
//   - LoggerClient struct: Zap-backed implementation
//   - NewLoggerClient constructor: returns *LoggerClient
//   - NewNop: silent logger used when nothing is configured
//   - FXModule: provides both *LoggerClient and Logger
//
// # Usage
//
//	log := logger.NewLoggerClient(logger.Config{
//		Level:       logger.Info,
//		ServiceName: "my-service",
//	})
//
//	log.Warn("scopes still open at shutdown", nil, map[string]interface{}{
//		"depth": 2,
//	})
//
// # FX Module Integration
//
//	app := fx.New(
//		logger.FXModule,
//		fx.Supply(logger.Config{Level: logger.Debug, Encoding: logger.EncodingConsole}),
//	)
//
// # Thread Safety
//
// All methods on the Logger interface are safe for concurrent use by multiple
// goroutines.
package logger
