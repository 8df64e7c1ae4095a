package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/lixenwraith/neon-runner/parameter"
)

// setupLogging routes the standard logger to a file when debug is set and discards it otherwise
// The terminal belongs to tcell, so logs never go to stdout or stderr
// Returns the open log file, or nil when logging is off or the file cannot be opened
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(parameter.LogDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(parameter.LogDir, parameter.LogFileName)

	// Rotate an oversized log aside before appending
	if info, err := os.Stat(logPath); err == nil && info.Size() > parameter.MaxLogSize {
		rotated := filepath.Join(parameter.LogDir,
			fmt.Sprintf("neon-runner-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
	log.Printf("=== neon-runner started (pid %d) ===", os.Getpid())
	return f
}
