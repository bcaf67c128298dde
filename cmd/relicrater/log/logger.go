package log

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var (
	mu      sync.Mutex
	file    *os.File
	flusher *bufio.Writer
)

// NewLogger builds the process-wide logger. Output always goes to stdout;
// when a log directory is given it is mirrored into a timestamped file there.
func NewLogger(debug bool, dir string) (*slog.Logger, error) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	writers := []io.Writer{os.Stdout}
	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("error creating log directory %s: %w", dir, err)
		}

		name := filepath.Join(dir, fmt.Sprintf("relicrater-%s.log", time.Now().Format("2006-01-02-15-04-05")))
		f, err := os.Create(name)
		if err != nil {
			return nil, fmt.Errorf("error creating log file %s: %w", name, err)
		}

		mu.Lock()
		file = f
		flusher = bufio.NewWriter(f)
		writers = append(writers, flusher)
		mu.Unlock()
	}

	handler := slog.NewTextHandler(io.MultiWriter(writers...), &slog.HandlerOptions{Level: level})
	return slog.New(handler), nil
}

// FlushLog forces buffered log output to disk.
func FlushLog() {
	mu.Lock()
	defer mu.Unlock()
	if flusher != nil {
		_ = flusher.Flush()
	}
}

// FlushAndClose flushes buffered output and closes the log file.
func FlushAndClose() {
	mu.Lock()
	defer mu.Unlock()
	if flusher != nil {
		_ = flusher.Flush()
		flusher = nil
	}
	if file != nil {
		_ = file.Close()
		file = nil
	}
}
