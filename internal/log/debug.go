// Package log provides the debug log shared by the scanner, prober and CLI.
// Messages are buffered until a destination is chosen, so anything logged
// while the configuration is still loading ends up in the file as well.
package log

import (
	"io"
	"log"
	"os"
	"sync"
)

// DebugLogger is an io.Writer that buffers until a file is attached.
type DebugLogger struct {
	mu      sync.Mutex
	out     io.Writer
	closer  io.Closer
	buffer  []byte
	discard bool
}

var (
	globalDebugLogger = &DebugLogger{}
	stdLogger         = log.New(globalDebugLogger, "", log.LstdFlags|log.Lmicroseconds)
)

// Write implements io.Writer.
func (l *DebugLogger) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.discard {
		return len(p), nil
	}
	if l.out != nil {
		n, err := l.out.Write(p)
		if f, ok := l.out.(*os.File); ok {
			_ = f.Sync()
		}
		return n, err
	}

	// p may be reused by the caller.
	l.buffer = append(l.buffer, p...)
	return len(p), nil
}

// attach switches the destination and flushes anything buffered so far.
// A nil writer discards the buffer and every later message.
func (l *DebugLogger) attach(w io.Writer, c io.Closer) {
	if l.closer != nil {
		_ = l.closer.Close()
	}
	l.out, l.closer = w, c
	if w == nil {
		l.discard = true
		l.buffer = nil
		return
	}
	l.discard = false
	if len(l.buffer) > 0 {
		_, _ = w.Write(l.buffer)
		l.buffer = nil
	}
}

// SetFile appends debug output to path, creating it if needed.
// An empty path disables debug logging and drops the buffer.
func SetFile(path string) error {
	globalDebugLogger.mu.Lock()
	defer globalDebugLogger.mu.Unlock()

	if path == "" {
		globalDebugLogger.attach(nil, nil)
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec
	if err != nil {
		globalDebugLogger.attach(nil, nil)
		return err
	}
	globalDebugLogger.attach(f, f)
	return nil
}

// SetOutput sends debug output to w. Tests use it to capture messages.
func SetOutput(w io.Writer) {
	globalDebugLogger.mu.Lock()
	defer globalDebugLogger.mu.Unlock()
	globalDebugLogger.attach(w, nil)
}

// Printf writes a formatted debug message.
func Printf(format string, args ...any) {
	stdLogger.Printf(format, args...)
}

// Println writes a debug message.
func Println(v ...any) {
	stdLogger.Println(v...)
}

// Close closes the debug log file if one is open and goes back to
// buffering, as before the first SetFile.
func Close() error {
	globalDebugLogger.mu.Lock()
	defer globalDebugLogger.mu.Unlock()

	var err error
	if globalDebugLogger.closer != nil {
		err = globalDebugLogger.closer.Close()
	}
	globalDebugLogger.out, globalDebugLogger.closer = nil, nil
	globalDebugLogger.buffer = nil
	globalDebugLogger.discard = false
	return err
}
