// Package logger wraps zap for the alarm daemon and its CLI:
//   - a global sugared logger with a console encoder,
//   - context helpers (ToContext/FromContext/WithName/WithKV/WithLevelOverride),
//   - level parsing for the log_level setting,
//   - convenience functions (Infof, ErrorKV, etc.).
//
// Services take a context and log through the logger it carries, so the
// controller, scheduler and receiver lines stay attributable.
package logger
