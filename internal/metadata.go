package internal

import (
	"fmt"
	"path/filepath"
	"strconv"
)

// NameFormat is the layout of a resolved date as it appears in filenames,
// e.g. 20200101-090000.
const NameFormat = "20060102-150405"

// FileMetadata holds everything known about one discovered file while its
// batch moves through the renaming pipeline. No identifies the record within
// its batch and never changes. Derived fields are rebuilt by Apply and must
// never be written directly.
type FileMetadata struct {
	No     int
	Folder string

	FirstName  string // name at discovery, without extension
	ActualName string // current on-disk name, without extension
	Ext        string // lower-cased, without leading dot

	DateTaken    string // resolved date in NameFormat, empty when unresolved
	FallbackName string // caller-assigned base name used when DateTaken is empty

	IsMutual    bool
	MutualOrder int // 1-based position within a mutual group, 0 = not grouped

	HasConflict bool

	// Derived fields, rebuilt on every Apply.
	ActualFullName string
	ActualFullPath string
	NewName        string
	NewFullName    string
	NewFullPath    string
	MutualSuffix   string // "-NN" when MutualOrder > 0
	ConflictSuffix string // "-<no>" when HasConflict
}

// MetadataPatch carries only the fields being changed. A nil pointer means
// "leave unchanged", so intentionally clearing a value is distinguishable
// from omitting it.
type MetadataPatch struct {
	No           *int
	Folder       *string
	FirstName    *string
	ActualName   *string
	Ext          *string
	DateTaken    *string
	FallbackName *string
	IsMutual     *bool
	MutualOrder  *int
	HasConflict  *bool
}

func ptr[T any](v T) *T { return &v }

// Apply writes the patch onto meta and rebuilds every derived field, so a
// stale full name or suffix is never observable.
func Apply(meta *FileMetadata, p MetadataPatch) {
	if p.No != nil {
		meta.No = *p.No
	}
	if p.Folder != nil {
		meta.Folder = *p.Folder
	}
	if p.FirstName != nil {
		meta.FirstName = *p.FirstName
	}
	if p.ActualName != nil {
		meta.ActualName = *p.ActualName
	}
	if p.Ext != nil {
		meta.Ext = *p.Ext
	}
	if p.DateTaken != nil {
		meta.DateTaken = *p.DateTaken
	}
	if p.FallbackName != nil {
		meta.FallbackName = *p.FallbackName
	}
	if p.IsMutual != nil {
		meta.IsMutual = *p.IsMutual
	}
	if p.MutualOrder != nil {
		meta.MutualOrder = *p.MutualOrder
	}
	if p.HasConflict != nil {
		meta.HasConflict = *p.HasConflict
	}
	meta.rebuild()
}

func (m *FileMetadata) rebuild() {
	if m.MutualOrder > 0 {
		m.MutualSuffix = fmt.Sprintf("-%02d", m.MutualOrder)
	} else {
		m.MutualSuffix = ""
	}
	if m.HasConflict {
		m.ConflictSuffix = "-" + strconv.Itoa(m.No)
	} else {
		m.ConflictSuffix = ""
	}

	if m.ActualName != "" {
		m.ActualFullName = joinName(m.ActualName, m.Ext)
		m.ActualFullPath = filepath.Join(m.Folder, m.ActualFullName)
	}

	base := m.DateTaken
	if base == "" {
		base = m.FallbackName
	}
	if base == "" {
		// No resolved date and no fallback: the record has no valid
		// proposed name and must not be renamed.
		m.NewName = ""
		m.NewFullName = ""
		m.NewFullPath = ""
		return
	}
	m.NewName = base + m.MutualSuffix + m.ConflictSuffix
	m.NewFullName = joinName(m.NewName, m.Ext)
	m.NewFullPath = filepath.Join(m.Folder, m.NewFullName)
}

// joinName returns "name.ext", or just name when the extension is empty.
func joinName(name, ext string) string {
	if ext == "" {
		return name
	}
	return name + "." + ext
}
