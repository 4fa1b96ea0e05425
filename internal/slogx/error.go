package slogx

import "log/slog"

// Error wraps an error as a slog attribute, preserving its stack when
// formatted with %+v by the handler.
func Error(err error) slog.Attr {
	return slog.Any("error", err)
}
