package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

const (
	logDir      = "logs"
	logFileName = "contagion.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging routes logs to logs/contagion.log when debug is set
// The terminal belongs to tcell, so without debug everything is discarded
// Returns the open file for the caller to close, nil when discarding
func setupLogging(debug bool) (*slog.Logger, *os.File) {
	discard := slog.New(slog.DiscardHandler)
	if !debug {
		return discard, nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return discard, nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("contagion-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return discard, nil
	}

	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler), f
}
