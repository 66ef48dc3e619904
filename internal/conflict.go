package internal

// CheckConflicts flags every record whose proposed full name matches another
// record's current on-disk name, and stamps it with its own batch-unique No
// as the disambiguating suffix. The comparison is deliberately against the
// other record's actual (pre-rename) name, not its proposal: that is the
// collision surface of a rename-in-place sweep. Two records proposing the
// same new name are therefore not caught here in the same pass; the rebuilt
// index catches them on the following sweep.
func CheckConflicts(records []*FileMetadata, ix *MediaIndex, events EventSink) {
	for _, meta := range records {
		if meta.NewFullName == "" {
			continue
		}
		others := ix.ActualNameMatches(meta.NewFullName, meta.No)
		if len(others) == 0 {
			continue
		}
		Apply(meta, MetadataPatch{HasConflict: ptr(true)})
		events.ConflictDetected(meta.No, others[0].ActualFullName, others[0].No)
	}
}

// ResetConflicts clears conflict flags (and thereby suffixes) on every
// flagged record.
func ResetConflicts(records []*FileMetadata) {
	for _, meta := range records {
		if !meta.HasConflict {
			continue
		}
		Apply(meta, MetadataPatch{HasConflict: ptr(false)})
	}
}
