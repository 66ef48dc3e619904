package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Batch is the set of records discovered in one directory, processed
// together through one full pipeline pass. Records are ordered by extension
// (in the configured order), then modification time, then name; every later
// stage relies on this discovery order and No is assigned from it.
type Batch struct {
	Folder  string
	Records []*FileMetadata
}

// ScanBatches walks base recursively and builds one batch per directory
// that contains supported media files, in walk order.
func ScanBatches(base string, extensions []string) ([]*Batch, error) {
	var batches []*Batch
	err := filepath.Walk(base, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return nil
		}
		batch, err := scanDir(path, extensions)
		if err != nil {
			return err
		}
		if batch != nil {
			batches = append(batches, batch)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error scanning %s: %w", base, err)
	}
	return batches, nil
}

// scanDir enumerates one directory's supported files and builds their
// records in discovery order. Returns nil when the directory holds no
// supported media.
func scanDir(dir string, extensions []string) (*Batch, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	type candidate struct {
		name string
		mod  time.Time
	}
	perExt := make(map[string][]candidate)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := ExtOf(e.Name())
		if !SupportedExt(ext, extensions) {
			continue
		}
		fi, err := e.Info()
		if err != nil {
			// Vanished between listing and stat; it will be found next run.
			continue
		}
		perExt[ext] = append(perExt[ext], candidate{name: e.Name(), mod: fi.ModTime()})
	}

	batch := &Batch{Folder: dir}
	no := 0
	for _, ext := range extensions {
		group := perExt[ext]
		sort.SliceStable(group, func(i, j int) bool {
			if !group[i].mod.Equal(group[j].mod) {
				return group[i].mod.Before(group[j].mod)
			}
			return group[i].name < group[j].name
		})
		for _, c := range group {
			no++
			name := strings.TrimSuffix(c.name, filepath.Ext(c.name))
			meta := &FileMetadata{}
			Apply(meta, MetadataPatch{
				No:         ptr(no),
				Folder:     ptr(dir),
				FirstName:  ptr(name),
				ActualName: ptr(name),
				Ext:        ptr(ext),
			})
			batch.Records = append(batch.Records, meta)
		}
	}
	if len(batch.Records) == 0 {
		return nil, nil
	}
	return batch, nil
}

// ExtOf returns the lower-cased extension of name without the leading dot.
func ExtOf(name string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
}

// SupportedExt reports whether ext is in the configured set.
func SupportedExt(ext string, extensions []string) bool {
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}
