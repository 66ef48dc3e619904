package internal

import "fmt"

// recordingSink captures pipeline events for assertions.
type recordingSink struct {
	batches    []string
	extensions []string
	conflicts  []string
	renamed    []string
	unchanged  []string
	failed     []string
}

func (r *recordingSink) BatchStart(folder string, total int) {
	r.batches = append(r.batches, fmt.Sprintf("%s:%d", folder, total))
}

func (r *recordingSink) BatchEnd(folder string) {}

func (r *recordingSink) ExtensionStart(ext string, count int) {
	r.extensions = append(r.extensions, fmt.Sprintf("%s:%d", ext, count))
}

func (r *recordingSink) ConflictPhase(folder string) {}

func (r *recordingSink) ConflictDetected(no int, otherName string, otherNo int) {
	r.conflicts = append(r.conflicts, fmt.Sprintf("%d:%s:%d", no, otherName, otherNo))
}

func (r *recordingSink) FileRenamed(no int, from, to string) {
	r.renamed = append(r.renamed, fmt.Sprintf("%s>%s", from, to))
}

func (r *recordingSink) FileUnchanged(no int, name string) {
	r.unchanged = append(r.unchanged, name)
}

func (r *recordingSink) FileError(no int, from, to string, err error) {
	r.failed = append(r.failed, fmt.Sprintf("%d:%v", no, err))
}

// makeMeta builds a record through Apply so derived fields are populated.
func makeMeta(no int, folder, name, ext string) *FileMetadata {
	meta := &FileMetadata{}
	Apply(meta, MetadataPatch{
		No:         ptr(no),
		Folder:     ptr(folder),
		FirstName:  ptr(name),
		ActualName: ptr(name),
		Ext:        ptr(ext),
	})
	return meta
}
