package internal

type dateExtKey struct {
	date string
	ext  string
}

// MediaIndex is a disposable projection over a batch's records, used for
// mutual-group and conflict lookups. It holds non-owning references keyed by
// derived attributes; any mutation to a record invalidates the index, so
// callers rebuild it after every stage that changes derived fields.
type MediaIndex struct {
	dates     []string // unique non-empty resolved dates, insertion order
	byDateExt map[dateExtKey][]*FileMetadata
	byActual  map[string][]*FileMetadata
	conflicts int
}

// BuildIndex constructs a fresh index over records in their current state.
func BuildIndex(records []*FileMetadata) *MediaIndex {
	ix := &MediaIndex{
		byDateExt: make(map[dateExtKey][]*FileMetadata),
		byActual:  make(map[string][]*FileMetadata),
	}
	seen := make(map[string]bool)
	for _, meta := range records {
		if meta.DateTaken != "" {
			if !seen[meta.DateTaken] {
				seen[meta.DateTaken] = true
				ix.dates = append(ix.dates, meta.DateTaken)
			}
			key := dateExtKey{date: meta.DateTaken, ext: meta.Ext}
			ix.byDateExt[key] = append(ix.byDateExt[key], meta)
		}
		if meta.ActualFullName != "" {
			ix.byActual[meta.ActualFullName] = append(ix.byActual[meta.ActualFullName], meta)
		}
		if meta.HasConflict {
			ix.conflicts++
		}
	}
	return ix
}

// UniqueDates returns the distinct resolved dates in the order records appear
// in the batch. Undated records are not represented.
func (ix *MediaIndex) UniqueDates() []string {
	return ix.dates
}

// ByDateExt returns all records with the given resolved date and extension,
// in discovery order.
func (ix *MediaIndex) ByDateExt(date, ext string) []*FileMetadata {
	return ix.byDateExt[dateExtKey{date: date, ext: ext}]
}

// ActualNameMatches returns every record whose current on-disk full name
// equals fullName, excluding the record identified by excludeNo.
func (ix *MediaIndex) ActualNameMatches(fullName string, excludeNo int) []*FileMetadata {
	var matches []*FileMetadata
	for _, meta := range ix.byActual[fullName] {
		if meta.No == excludeNo {
			continue
		}
		matches = append(matches, meta)
	}
	return matches
}

// ConflictExists reports whether any record carried a conflict flag when the
// index was built.
func (ix *MediaIndex) ConflictExists() bool {
	return ix.conflicts > 0
}
