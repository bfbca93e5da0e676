package window

import (
	"log/slog"
	"os"
)

// logLevel controls the level for window runtime logging.
// Default is LevelInfo, which suppresses Debug messages.
var logLevel = new(slog.LevelVar)

// SetVerbose enables or disables debug logging for the window runtime.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

// windowLogger is the default logger shared by runtimes, scissor stacks and
// binding registries that were not given one explicitly.
var windowLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})).
	With("component", "window")
