package core

import "log/slog"

var logger = slog.New(slog.DiscardHandler)

// SetLogger routes the parser's debug tracing to l. Passing nil silences it again.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	logger = l
}
