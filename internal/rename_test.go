package internal

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("data"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestRenamerApply(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.jpg"))

	meta := makeMeta(1, dir, "a", "jpg")
	Apply(meta, MetadataPatch{DateTaken: ptr("20200101-090000")})

	sink := &recordingSink{}
	r := &Renamer{Events: sink}

	outcome, err := r.Apply(meta, false)
	if err != nil {
		t.Fatal(err)
	}
	if outcome != OutcomeRenamed {
		t.Fatalf("outcome = %v", outcome)
	}
	if _, err := os.Stat(filepath.Join(dir, "20200101-090000.jpg")); err != nil {
		t.Errorf("renamed file missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "a.jpg")); !os.IsNotExist(err) {
		t.Error("original file still present")
	}
	if meta.ActualFullName != "20200101-090000.jpg" {
		t.Errorf("actual not updated: %q", meta.ActualFullName)
	}

	// Idempotence: the record now carries its correct name.
	outcome, err = r.Apply(meta, false)
	if err != nil {
		t.Fatal(err)
	}
	if outcome != OutcomeUnchanged {
		t.Errorf("second apply outcome = %v", outcome)
	}
	if len(sink.unchanged) != 1 {
		t.Errorf("unchanged events = %v", sink.unchanged)
	}
}

func TestRenamerSkipsInConflictMode(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.jpg"))

	meta := makeMeta(1, dir, "a", "jpg")
	Apply(meta, MetadataPatch{DateTaken: ptr("20200101-090000")})

	r := &Renamer{Events: &recordingSink{}}
	outcome, err := r.Apply(meta, true)
	if err != nil {
		t.Fatal(err)
	}
	if outcome != OutcomeSkipped {
		t.Errorf("outcome = %v", outcome)
	}
	if _, err := os.Stat(filepath.Join(dir, "a.jpg")); err != nil {
		t.Error("file moved despite skip")
	}
}

func TestRenamerSkipsRecordWithoutProposal(t *testing.T) {
	meta := makeMeta(1, t.TempDir(), "a", "jpg")

	r := &Renamer{Events: &recordingSink{}}
	outcome, err := r.Apply(meta, false)
	if err != nil {
		t.Fatal(err)
	}
	if outcome != OutcomeSkipped {
		t.Errorf("outcome = %v", outcome)
	}
}

func TestRenamerReportsUnsetProposedPath(t *testing.T) {
	// A dated record whose derived fields were never rebuilt is a
	// programming error, not a data problem.
	meta := &FileMetadata{No: 7, DateTaken: "20200101-090000"}

	r := &Renamer{Events: &recordingSink{}}
	outcome, err := r.Apply(meta, false)
	if err == nil {
		t.Fatal("expected invariant error")
	}
	if outcome != OutcomeFailed {
		t.Errorf("outcome = %v", outcome)
	}
}

func TestRenamerFailureLeavesDiskUntouched(t *testing.T) {
	dir := t.TempDir()
	meta := makeMeta(3, dir, "gone", "jpg")
	Apply(meta, MetadataPatch{DateTaken: ptr("20200101-090000")})

	r := &Renamer{Events: &recordingSink{}}
	outcome, err := r.Apply(meta, false)
	if err == nil {
		t.Fatal("expected rename error for missing file")
	}
	if outcome != OutcomeFailed {
		t.Errorf("outcome = %v", outcome)
	}
	// The record still points at its original name so a later run can retry.
	if meta.ActualFullName != "gone.jpg" {
		t.Errorf("actual changed on failure: %q", meta.ActualFullName)
	}
}

func TestRenamerDryRun(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.jpg"))

	meta := makeMeta(1, dir, "a", "jpg")
	Apply(meta, MetadataPatch{DateTaken: ptr("20200101-090000")})

	r := &Renamer{Events: &recordingSink{}, DryRun: true}
	outcome, err := r.Apply(meta, false)
	if err != nil {
		t.Fatal(err)
	}
	if outcome != OutcomeRenamed {
		t.Errorf("outcome = %v", outcome)
	}
	if _, err := os.Stat(filepath.Join(dir, "a.jpg")); err != nil {
		t.Error("dry run touched the filesystem")
	}
}
