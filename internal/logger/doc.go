// Package logger wraps zap with:
//   - a global sugared logger using a console encoder,
//   - context helpers (ToContext/FromContext/WithName/WithKV),
//   - level parsing and configuration.
//
// Pipeline stages accept a context and log through it, so every message
// carries the stage scope it was emitted from.
package logger
