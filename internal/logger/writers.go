package logger

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
)

// SafeFileWriter is a buffered, mutex-guarded log file sink. It flushes on a
// ticker so log lines reach disk while the TUI owns the terminal. It
// satisfies zapcore.WriteSyncer.
type SafeFileWriter struct {
	mu        sync.Mutex
	writer    *bufio.Writer
	file      *os.File
	ticker    *time.Ticker
	done      chan struct{}
	closeOnce sync.Once
	logger    *zap.Logger
	filePath  string

	// Stats
	writes  uint64
	flushes uint64
}

// NewSafeFileWriter opens filePath for appending, creating parent
// directories. logger receives the writer's own errors and must not write to
// this file.
func NewSafeFileWriter(filePath string, flushInterval time.Duration, logger *zap.Logger) (*SafeFileWriter, error) {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	sfw := &SafeFileWriter{
		writer:   bufio.NewWriter(file),
		file:     file,
		ticker:   time.NewTicker(flushInterval),
		done:     make(chan struct{}),
		logger:   logger,
		filePath: filePath,
	}
	go sfw.periodicFlush()

	return sfw, nil
}

// Write buffers p. Each call is one encoded log entry.
func (sfw *SafeFileWriter) Write(p []byte) (int, error) {
	sfw.mu.Lock()
	defer sfw.mu.Unlock()

	n, err := sfw.writer.Write(p)
	if err != nil {
		return n, fmt.Errorf("failed to write log entry: %w", err)
	}

	sfw.writes++
	return n, nil
}

// Sync flushes buffered entries to disk
func (sfw *SafeFileWriter) Sync() error {
	return sfw.Flush()
}

// Flush forces a write of any buffered data
func (sfw *SafeFileWriter) Flush() error {
	sfw.mu.Lock()
	defer sfw.mu.Unlock()

	if err := sfw.writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush buffer: %w", err)
	}
	if err := sfw.file.Sync(); err != nil {
		return fmt.Errorf("failed to sync file: %w", err)
	}

	sfw.flushes++
	return nil
}

func (sfw *SafeFileWriter) periodicFlush() {
	for {
		select {
		case <-sfw.ticker.C:
			if err := sfw.Flush(); err != nil {
				sfw.logger.Error("Periodic flush failed",
					zap.String("file", sfw.filePath),
					zap.Error(err))
			}
		case <-sfw.done:
			return
		}
	}
}

// Close stops the flush loop, flushes and closes the file. Repeated calls are
// no-ops.
func (sfw *SafeFileWriter) Close() error {
	var err error
	sfw.closeOnce.Do(func() {
		close(sfw.done)
		sfw.ticker.Stop()

		sfw.mu.Lock()
		defer sfw.mu.Unlock()

		if ferr := sfw.writer.Flush(); ferr != nil {
			err = fmt.Errorf("failed to flush on close: %w", ferr)
			return
		}
		if cerr := sfw.file.Close(); cerr != nil {
			err = fmt.Errorf("failed to close file: %w", cerr)
			return
		}

		sfw.logger.Debug("Log file closed",
			zap.String("file", sfw.filePath),
			zap.Uint64("writes", sfw.writes),
			zap.Uint64("flushes", sfw.flushes))
	})
	return err
}

// GetStats returns the number of writes and flushes so far
func (sfw *SafeFileWriter) GetStats() (writes, flushes uint64) {
	sfw.mu.Lock()
	defer sfw.mu.Unlock()
	return sfw.writes, sfw.flushes
}
