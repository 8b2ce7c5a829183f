package tui

import "log/slog"

// workerLog is the logger background workers (walker, scanner, executor)
// write to; set once at startup via SetLogger, before any worker spawns.
var workerLog = slog.Default()

// SetLogger installs the logger background workers use.
func SetLogger(l *slog.Logger) { workerLog = l }

func workerLogger(runID string) *slog.Logger {
	return workerLog.With("run_id", runID)
}
