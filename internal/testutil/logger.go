// Package testutil holds helpers shared by tests across packages.
package testutil

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
)

// NopLogger returns a logger that discards all output.
// Use this in tests to avoid log noise.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// LogBuffer collects the JSON lines written by a CaptureLogger. It is safe
// for concurrent use.
type LogBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *LogBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

// String returns everything logged so far
func (b *LogBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// Entries decodes every logged line
func (b *LogBuffer) Entries() ([]map[string]any, error) {
	var entries []map[string]any
	scanner := bufio.NewScanner(bytes.NewReader([]byte(b.String())))
	for scanner.Scan() {
		var entry map[string]any
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, scanner.Err()
}

// Messages returns the msg of every logged line in order
func (b *LogBuffer) Messages() ([]string, error) {
	entries, err := b.Entries()
	if err != nil {
		return nil, err
	}
	msgs := make([]string, len(entries))
	for i, e := range entries {
		msgs[i], _ = e["msg"].(string)
	}
	return msgs, nil
}

// CaptureLogger returns a debug-level JSON logger and the buffer it writes to
func CaptureLogger() (*slog.Logger, *LogBuffer) {
	buf := &LogBuffer{}
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}
