// Package logger builds the zap logger shared by the server and the CLI.
//
// log.level picks the minimum level; "debug" also switches to zap's
// development preset. log.format selects json (the default) or a colored
// console encoder for local runs. Field names are fixed to time, level and
// message so log shipping does not depend on the preset.
//
// Request handlers derive a scoped logger with WithRayID:
//
//	l := logger.WithRayID(log, c)
//	l.Warn("Supplier not found", zap.Uint("id", id))
package logger
