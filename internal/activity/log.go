package activity

import (
	"log/slog"
	"sync"
	"time"
)

// Entry is one player-facing log line
type Entry struct {
	Seq      int       `json:"seq"`
	Day      int       `json:"day"`
	Category string    `json:"category"`
	Message  string    `json:"message"`
	At       time.Time `json:"at"`
}

// Log is a bounded in-memory history of player-facing messages
type Log struct {
	mu      sync.RWMutex
	entries []Entry
	limit   int
	seq     int
	day     int
	now     func() time.Time
}

// NewLog creates a log keeping at most limit entries
func NewLog(limit int) *Log {
	if limit <= 0 {
		limit = DefaultHistory
	}
	return &Log{limit: limit, now: time.Now}
}

// SetDay stamps subsequent entries with day
func (l *Log) SetDay(day int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.day = day
}

// Record appends a message. Oldest entries are dropped past the limit.
func (l *Log) Record(message, category string) {
	if message == "" {
		return
	}
	if category == "" {
		category = CategoryInfo
	}

	l.mu.Lock()
	l.seq++
	l.entries = append(l.entries, Entry{
		Seq:      l.seq,
		Day:      l.day,
		Category: category,
		Message:  message,
		At:       l.now(),
	})
	if overflow := len(l.entries) - l.limit; overflow > 0 {
		l.entries = append(l.entries[:0:0], l.entries[overflow:]...)
	}
	l.mu.Unlock()

	slog.Debug("Activity recorded", "category", category, "message", message)
}

// Entries returns a copy of the history, oldest first
func (l *Log) Entries() []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]Entry(nil), l.entries...)
}

// Since returns entries with a sequence number greater than seq
func (l *Log) Since(seq int) []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []Entry
	for _, e := range l.entries {
		if e.Seq > seq {
			out = append(out, e)
		}
	}
	return out
}

// Len returns the number of retained entries
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
