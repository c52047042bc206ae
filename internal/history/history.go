// Package history keeps a local log of events registered through koyomi,
// newest first, so they can be listed and undone.
package history

import (
	"encoding/json"
	"os"
	"path/filepath"
)

type Entry struct {
	EventID    string `json:"event_id"`
	CalendarID string `json:"calendar_id"`
	Summary    string `json:"summary"`
	Start      string `json:"start"`
	End        string `json:"end"`
	AllDay     bool   `json:"all_day"`
	HTMLLink   string `json:"html_link,omitempty"`
	CreatedAt  string `json:"created_at"`
}

type Log struct {
	Version int     `json:"version"`
	Entries []Entry `json:"entries"`
}

func Default() *Log {
	return &Log{Version: 1}
}

func Load(path string) (*Log, error) {
	// #nosec G304 -- path is controlled by the app config location
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}
	var l Log
	if err := json.Unmarshal(data, &l); err != nil {
		return Default(), nil
	}
	if l.Version == 0 {
		l.Version = 1
	}
	return &l, nil
}

func Save(path string, l *Log) error {
	if l == nil {
		return nil
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o600)
}

// Add prepends an entry and trims the log to max entries.
func (l *Log) Add(e Entry, max int) {
	l.Entries = append([]Entry{e}, l.Entries...)
	if max > 0 && len(l.Entries) > max {
		l.Entries = l.Entries[:max]
	}
}

// Pop removes and returns the most recent entry.
func (l *Log) Pop() (Entry, bool) {
	if len(l.Entries) == 0 {
		return Entry{}, false
	}
	e := l.Entries[0]
	l.Entries = l.Entries[1:]
	return e, true
}
