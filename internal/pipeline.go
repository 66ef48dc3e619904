package internal

// ExtSummary aggregates per-file outcomes for one extension across a run.
type ExtSummary struct {
	Ext       string
	Files     int
	Renamed   int
	Unchanged int
	Conflicts int
	Errors    int
}

type summarySet struct {
	order []string
	byExt map[string]*ExtSummary
}

func newSummarySet() *summarySet {
	return &summarySet{byExt: make(map[string]*ExtSummary)}
}

func (s *summarySet) bump(ext string) *ExtSummary {
	sum, ok := s.byExt[ext]
	if !ok {
		sum = &ExtSummary{Ext: ext}
		s.byExt[ext] = sum
		s.order = append(s.order, ext)
	}
	return sum
}

func (s *summarySet) rows() []ExtSummary {
	rows := make([]ExtSummary, 0, len(s.order))
	for _, ext := range s.order {
		rows = append(rows, *s.byExt[ext])
	}
	return rows
}

// Pipeline drives the renaming of every directory under a base path. Each
// directory is one batch, processed fully before the next; there is no
// parallelism, which is what makes the fully-populated-index assumption of
// the grouping and conflict stages hold trivially.
type Pipeline struct {
	extractor  *DateExtractor
	events     EventSink
	extensions []string
	dryRun     bool
	sums       *summarySet
}

func NewPipeline(extractor *DateExtractor, events EventSink, extensions []string, dryRun bool) *Pipeline {
	return &Pipeline{
		extractor:  extractor,
		events:     events,
		extensions: extensions,
		dryRun:     dryRun,
		sums:       newSummarySet(),
	}
}

// Run processes every directory under base as its own batch. Per-file
// failures are reported and skipped; only discovery-level failures (the
// walk itself) abort.
func (p *Pipeline) Run(base string) error {
	batches, err := ScanBatches(base, p.extensions)
	if err != nil {
		return err
	}
	for _, batch := range batches {
		p.processBatch(batch)
	}
	return nil
}

// Summary returns the per-extension outcome counts accumulated so far.
func (p *Pipeline) Summary() []ExtSummary {
	return p.sums.rows()
}

// processBatch runs one directory through the full pipeline: date
// resolution, mutual grouping, conflict detection, the rename sweep, and
// conflict-only reruns until no conflicts remain. The index is rebuilt after
// every stage that changes derived fields; it is never patched in place.
func (p *Pipeline) processBatch(batch *Batch) {
	p.events.BatchStart(batch.Folder, len(batch.Records))

	for _, meta := range batch.Records {
		p.sums.bump(meta.Ext).Files++
		resolved, err := p.extractor.ResolveDate(meta.ActualFullPath, KindOf(meta.Ext))
		if err != nil {
			// Unreadable file: left undated and unrenamed, reported once.
			p.sums.bump(meta.Ext).Errors++
			p.events.FileError(meta.No, meta.ActualFullName, "", Categorize(meta.No, meta.ActualFullName, "", err))
			continue
		}
		Apply(meta, MetadataPatch{DateTaken: ptr(resolved.Format(NameFormat))})
	}

	ix := BuildIndex(batch.Records)
	MarkMutualGroups(ix, p.extensions)

	ix = BuildIndex(batch.Records)
	CheckConflicts(batch.Records, ix, p.events)

	for _, meta := range batch.Records {
		if meta.HasConflict {
			p.sums.bump(meta.Ext).Conflicts++
		}
	}

	// First sweep renames only flagged-safe records; flagged ones wait for
	// the conflict pass so their disambiguated names land in one place.
	p.renameSweep(batch, false)

	// Conflict-only reruns. One pass suffices in practice since suffixes are
	// keyed to the batch-unique No, but iterate until clean as a safety net.
	for ix = BuildIndex(batch.Records); ix.ConflictExists(); ix = BuildIndex(batch.Records) {
		p.events.ConflictPhase(batch.Folder)
		p.renameSweep(batch, true)
		ResetConflicts(batch.Records)
	}

	p.events.BatchEnd(batch.Folder)
}

// renameSweep applies the executor to every record relevant to the mode,
// emitting a per-extension header before the first record of each
// extension. A failing record is reported and the sweep continues; one
// locked file must not halt the batch.
func (p *Pipeline) renameSweep(batch *Batch, onlyConflicts bool) {
	counts := make(map[string]int)
	for _, meta := range batch.Records {
		if p.inMode(meta, onlyConflicts) {
			counts[meta.Ext]++
		}
	}

	r := &Renamer{Events: p.events, DryRun: p.dryRun}
	lastExt := ""
	for _, meta := range batch.Records {
		if !p.inMode(meta, onlyConflicts) {
			continue
		}
		if meta.Ext != lastExt {
			lastExt = meta.Ext
			p.events.ExtensionStart(meta.Ext, counts[meta.Ext])
		}

		from := meta.ActualFullName
		outcome, err := r.Apply(meta, onlyConflicts)
		switch {
		case err != nil:
			p.sums.bump(meta.Ext).Errors++
			p.events.FileError(meta.No, from, meta.NewFullName, Categorize(meta.No, from, meta.NewFullName, err))
		case outcome == OutcomeRenamed:
			p.sums.bump(meta.Ext).Renamed++
		case outcome == OutcomeUnchanged:
			p.sums.bump(meta.Ext).Unchanged++
		}
	}
}

// inMode reports whether a record participates in the given sweep mode.
func (p *Pipeline) inMode(meta *FileMetadata, onlyConflicts bool) bool {
	if onlyConflicts {
		return meta.HasConflict
	}
	return !meta.HasConflict
}
