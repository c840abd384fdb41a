// Package history persists the ordered log of completed calculations.
//
// The log is read once when opened and the whole file is rewritten on
// every append or clear, pretty-printed as a JSON array. A missing or
// corrupt file degrades to an empty log with a warning; persistence
// failures never abort a calculation.
package history

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"
)

// TimestampLayout is the wire format of Entry.Timestamp.
const TimestampLayout = "2006-01-02 15:04:05"

// Entry records one completed calculation. Unknown inputs are nil and
// encode as JSON null; results hold numbers plus the optional "formula"
// label string.
type Entry struct {
	Timestamp string              `json:"timestamp"`
	Topic     string              `json:"topic"`
	Inputs    map[string]*float64 `json:"inputs"`
	Results   map[string]any      `json:"results"`
}

// Log is the in-memory calculation history backed by a JSON file. It is
// owned by a single process and is not safe for concurrent use.
type Log struct {
	path    string
	entries []Entry
}

// Open loads the log at path. Load failures are reported as warnings
// and yield an empty log.
func Open(path string) *Log {
	l := &Log{path: path}
	l.load()
	return l
}

func (l *Log) load() {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("warning: could not load history: %v", err)
		}
		return
	}
	if err := json.Unmarshal(data, &l.entries); err != nil {
		log.Printf("warning: could not load history: %v", err)
		l.entries = nil
	}
}

// Append records a calculation and flushes the log to disk.
func (l *Log) Append(topic string, inputs map[string]*float64, results map[string]any) error {
	l.entries = append(l.entries, Entry{
		Timestamp: time.Now().Format(TimestampLayout),
		Topic:     topic,
		Inputs:    inputs,
		Results:   results,
	})
	return l.Save()
}

// Clear drops all entries and flushes the now-empty log to disk.
func (l *Log) Clear() error {
	l.entries = nil
	return l.Save()
}

// Save rewrites the whole history file, pretty-printed.
func (l *Log) Save() error {
	f, err := os.Create(l.path)
	if err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	defer f.Close()

	entries := l.entries
	if entries == nil {
		entries = []Entry{}
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	return nil
}

// Entries returns a copy of the full ordered log.
func (l *Log) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Tail returns a copy of the most recent limit entries, oldest first.
func (l *Log) Tail(limit int) []Entry {
	if limit <= 0 || limit > len(l.entries) {
		limit = len(l.entries)
	}
	out := make([]Entry, limit)
	copy(out, l.entries[len(l.entries)-limit:])
	return out
}

func (l *Log) Len() int { return len(l.entries) }
