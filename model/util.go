package model

import (
	"context"
	"log/slog"
)

// LevelTrace sits just above Info so protocol traces can be enabled without
// drowning in debug output.
const LevelTrace slog.Level = slog.LevelInfo + 1

// Trace logs a hardware-level event through the default slog logger.
func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}
