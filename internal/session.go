package internal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// RenameSession records a run's structured events as an append-only JSONL
// manifest and aggregates run statistics. It implements EventSink, so it can
// be fanned out alongside the human-readable log.
type RenameSession struct {
	ID       string // timestamp id, also the session directory name
	RunID    string // random id written into every manifest line's header
	Dir      string
	manifest *os.File
	stats    Stats
}

// Stats aggregates per-file outcomes across a whole run.
type Stats struct {
	Batches   int
	Files     int
	Renamed   int
	Unchanged int
	Conflicts int
	Errors    int
}

// ManifestEvent is a single line of the manifest log.
type ManifestEvent struct {
	Event string `json:"event"`
	Ts    string `json:"ts"`

	Folder  string `json:"folder,omitempty"`
	Ext     string `json:"ext,omitempty"`
	Count   int    `json:"count,omitempty"`
	No      int    `json:"no,omitempty"`
	From    string `json:"from,omitempty"`
	To      string `json:"to,omitempty"`
	OtherNo int    `json:"other_no,omitempty"`

	Error           string `json:"error,omitempty"`
	ErrorCategory   string `json:"error_category,omitempty"`
	ErrorSuggestion string `json:"error_suggestion,omitempty"`

	// Session start/end fields
	RunID     string `json:"run_id,omitempty"`
	Base      string `json:"base,omitempty"`
	Batches   int    `json:"batches,omitempty"`
	Files     int    `json:"files,omitempty"`
	Renamed   int    `json:"renamed,omitempty"`
	Unchanged int    `json:"unchanged,omitempty"`
	Conflicts int    `json:"conflicts,omitempty"`
	Errors    int    `json:"errors,omitempty"`
}

// NewRenameSession creates the session directory under logDir and opens its
// manifest for append-only writes.
func NewRenameSession(logDir string) (*RenameSession, error) {
	id := time.Now().Format("2006-01-02-150405")
	dir := filepath.Join(logDir, "sessions", id)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}

	manifest, err := os.OpenFile(filepath.Join(dir, "manifest.jsonl"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create manifest file: %w", err)
	}

	return &RenameSession{
		ID:       id,
		RunID:    uuid.NewString(),
		Dir:      dir,
		manifest: manifest,
	}, nil
}

// LogSessionStart writes the session start event.
func (s *RenameSession) LogSessionStart(base string) error {
	return s.writeEvent(ManifestEvent{
		Event: "session_start",
		Ts:    now(),
		RunID: s.RunID,
		Base:  base,
	})
}

// LogSessionEnd writes the session end event with aggregate counts.
func (s *RenameSession) LogSessionEnd() error {
	return s.writeEvent(ManifestEvent{
		Event:     "session_end",
		Ts:        now(),
		RunID:     s.RunID,
		Batches:   s.stats.Batches,
		Files:     s.stats.Files,
		Renamed:   s.stats.Renamed,
		Unchanged: s.stats.Unchanged,
		Conflicts: s.stats.Conflicts,
		Errors:    s.stats.Errors,
	})
}

func (s *RenameSession) BatchStart(folder string, total int) {
	s.stats.Batches++
	s.stats.Files += total
	_ = s.writeEvent(ManifestEvent{Event: "batch_start", Ts: now(), Folder: folder, Count: total})
}

func (s *RenameSession) BatchEnd(folder string) {
	_ = s.writeEvent(ManifestEvent{Event: "batch_end", Ts: now(), Folder: folder})
}

func (s *RenameSession) ExtensionStart(ext string, count int) {
	_ = s.writeEvent(ManifestEvent{Event: "extension_start", Ts: now(), Ext: ext, Count: count})
}

func (s *RenameSession) ConflictPhase(folder string) {
	_ = s.writeEvent(ManifestEvent{Event: "conflict_phase", Ts: now(), Folder: folder})
}

func (s *RenameSession) ConflictDetected(no int, otherName string, otherNo int) {
	s.stats.Conflicts++
	_ = s.writeEvent(ManifestEvent{Event: "conflict", Ts: now(), No: no, From: otherName, OtherNo: otherNo})
}

func (s *RenameSession) FileRenamed(no int, from, to string) {
	s.stats.Renamed++
	_ = s.writeEvent(ManifestEvent{Event: "renamed", Ts: now(), No: no, From: from, To: to})
}

func (s *RenameSession) FileUnchanged(no int, name string) {
	s.stats.Unchanged++
	_ = s.writeEvent(ManifestEvent{Event: "noop", Ts: now(), No: no, From: name})
}

func (s *RenameSession) FileError(no int, from, to string, err error) {
	s.stats.Errors++
	event := ManifestEvent{Event: "error", Ts: now(), No: no, From: from, To: to, Error: err.Error()}
	if fe, ok := err.(*FileError); ok {
		event.Error = fe.Err.Error()
		event.ErrorCategory = string(fe.Category)
		event.ErrorSuggestion = fe.Suggestion
	}
	_ = s.writeEvent(event)
}

// GetStats returns the current session statistics.
func (s *RenameSession) GetStats() Stats {
	return s.stats
}

// Close closes the manifest file.
func (s *RenameSession) Close() error {
	if s.manifest != nil {
		return s.manifest.Close()
	}
	return nil
}

func (s *RenameSession) writeEvent(event ManifestEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	if _, err := s.manifest.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write to manifest: %w", err)
	}
	return s.manifest.Sync()
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
