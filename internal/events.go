package internal

// EventSink receives the discrete progress events the pipeline emits. The
// core never formats output itself; any backend (file logger, JSONL session
// manifest) can render the same stream.
type EventSink interface {
	BatchStart(folder string, total int)
	BatchEnd(folder string)
	ExtensionStart(ext string, count int)
	ConflictPhase(folder string)
	ConflictDetected(no int, otherName string, otherNo int)
	FileRenamed(no int, from, to string)
	FileUnchanged(no int, name string)
	FileError(no int, from, to string, err error)
}

// FanoutSink forwards every event to each child sink in order.
type FanoutSink []EventSink

func (f FanoutSink) BatchStart(folder string, total int) {
	for _, s := range f {
		s.BatchStart(folder, total)
	}
}

func (f FanoutSink) BatchEnd(folder string) {
	for _, s := range f {
		s.BatchEnd(folder)
	}
}

func (f FanoutSink) ExtensionStart(ext string, count int) {
	for _, s := range f {
		s.ExtensionStart(ext, count)
	}
}

func (f FanoutSink) ConflictPhase(folder string) {
	for _, s := range f {
		s.ConflictPhase(folder)
	}
}

func (f FanoutSink) ConflictDetected(no int, otherName string, otherNo int) {
	for _, s := range f {
		s.ConflictDetected(no, otherName, otherNo)
	}
}

func (f FanoutSink) FileRenamed(no int, from, to string) {
	for _, s := range f {
		s.FileRenamed(no, from, to)
	}
}

func (f FanoutSink) FileUnchanged(no int, name string) {
	for _, s := range f {
		s.FileUnchanged(no, name)
	}
}

func (f FanoutSink) FileError(no int, from, to string, err error) {
	for _, s := range f {
		s.FileError(no, from, to, err)
	}
}
