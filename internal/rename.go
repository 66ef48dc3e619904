package internal

import (
	"fmt"
	"os"
)

// RenameOutcome is the result of applying the executor to one record.
type RenameOutcome int

const (
	OutcomeSkipped RenameOutcome = iota
	OutcomeUnchanged
	OutcomeRenamed
	OutcomeFailed
)

// Renamer performs the actual filesystem rename per record. It is
// idempotent (identical names are a no-op without a filesystem call) and
// must not be run concurrently: conflict detection assumes fully-sequential
// visibility of prior renames within a pass.
type Renamer struct {
	Events EventSink
	DryRun bool
}

// Apply renames one record. In conflictsOnly mode records without a
// conflict flag are skipped. Records with neither a resolved date nor a
// fallback name are never renamed; that is a legitimate terminal state, not
// an error. An unset proposed path on a record that should have one is an
// invariant violation: it is reported for this record and the batch
// continues. On success the record's actual fields are updated so any later
// pass treats the renamed file as authoritative.
func (r *Renamer) Apply(meta *FileMetadata, onlyConflicts bool) (RenameOutcome, error) {
	if onlyConflicts && !meta.HasConflict {
		return OutcomeSkipped, nil
	}
	if meta.DateTaken == "" && meta.FallbackName == "" {
		return OutcomeSkipped, nil
	}
	if meta.NewFullPath == "" {
		return OutcomeFailed, fmt.Errorf("record %d: proposed path is unset", meta.No)
	}

	if meta.NewFullName == meta.ActualFullName {
		r.Events.FileUnchanged(meta.No, meta.ActualFullName)
		return OutcomeUnchanged, nil
	}

	from := meta.ActualFullName
	if !r.DryRun {
		if err := os.Rename(meta.ActualFullPath, meta.NewFullPath); err != nil {
			return OutcomeFailed, err
		}
	}
	r.Events.FileRenamed(meta.No, from, meta.NewFullName)
	Apply(meta, MetadataPatch{ActualName: ptr(meta.NewName)})
	return OutcomeRenamed, nil
}
