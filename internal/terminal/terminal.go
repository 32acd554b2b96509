// Package terminal keeps the dashboard's activity feed: a prepend-ordered
// log of cosmetic lines (sync output, sale and withdrawal confirmations).
// It is display state, not the transaction ledger — dropping old lines
// loses nothing.
package terminal

import (
	"sync"
	"time"
)

// defaultRetention caps how many lines are kept in memory. Views read far
// fewer (see Recent).
const defaultRetention = 200

// Line is one activity log entry.
type Line struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
	Severity  string    `json:"severity"`
}

// Log is the prepend-ordered activity feed. Safe for concurrent use.
type Log struct {
	mu        sync.Mutex
	lines     []Line
	retention int
	now       func() time.Time
}

func NewLog(retention int) *Log {
	if retention <= 0 {
		retention = defaultRetention
	}
	return &Log{retention: retention, now: time.Now}
}

// Append prepends a line, so the most recent entry is always first.
func (l *Log) Append(message, severity string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.lines = append([]Line{{Timestamp: l.now(), Message: message, Severity: severity}}, l.lines...)
	if len(l.lines) > l.retention {
		l.lines = l.lines[:l.retention]
	}
}

// Recent returns up to n lines, most recent first.
func (l *Log) Recent(n int) []Line {
	l.mu.Lock()
	defer l.mu.Unlock()

	if n > len(l.lines) {
		n = len(l.lines)
	}
	out := make([]Line, n)
	copy(out, l.lines[:n])
	return out
}

// Len reports how many lines are currently retained.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.lines)
}
