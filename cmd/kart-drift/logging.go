package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

const (
	logDir      = "logs"
	logFileName = "kart-drift.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging routes log and slog output to logs/kart-drift.log when debug is set, otherwise discards it
// The terminal owns stdout and stderr while the game runs, so nothing is ever written there
// An existing log over maxLogSize is rotated to a timestamped name first; a failed rotation
// is reported in the log it keeps appending to
func setupLogging(debug bool) *os.File {
	if !debug {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	var rotateErr error
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotateErr = os.Rename(logPath, rotatedLogPath(time.Now()))
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		log.SetOutput(io.Discard)
		return nil
	}

	// slog.SetDefault redirects the log package into the handler; point it back at the file afterwards
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	if rotateErr != nil {
		slog.Warn("log rotation failed, appending to oversized log", "path", logPath, "error", rotateErr)
	}
	return f
}

func rotatedLogPath(t time.Time) string {
	return filepath.Join(logDir, fmt.Sprintf("kart-drift-%s.log", t.Format("20060102-150405")))
}
