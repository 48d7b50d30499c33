package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunRejectsUnknownBackend(t *testing.T) {
	old := *backend
	*backend = "hologram"
	defer func() { *backend = old }()

	err := run(log.New(os.Stderr, "", 0))
	if err == nil || !strings.Contains(err.Error(), "unknown backend") {
		t.Errorf("Expected unknown backend error, got %v", err)
	}
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	old := *speed
	*speed = -1
	defer func() { *speed = old }()

	err := run(log.New(os.Stderr, "", 0))
	if err == nil || !strings.Contains(err.Error(), "config") {
		t.Errorf("Expected config error, got %v", err)
	}
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.log")
	logger, closeLog, err := newLogger(path)
	if err != nil {
		t.Fatalf("Expected logger, got %v", err)
	}
	logger.Printf("hello")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected log file, got %v", err)
	}
	if !strings.Contains(string(data), "glide-snake hello") {
		t.Errorf("Expected prefixed line, got %q", data)
	}
}
