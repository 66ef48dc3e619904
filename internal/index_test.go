package internal

import "testing"

func indexedRecords() []*FileMetadata {
	a := makeMeta(1, "/m", "a", "jpg")
	b := makeMeta(2, "/m", "b", "jpg")
	c := makeMeta(3, "/m", "c", "mov")
	Apply(a, MetadataPatch{DateTaken: ptr("20200101-090000")})
	Apply(b, MetadataPatch{DateTaken: ptr("20200101-090000")})
	Apply(c, MetadataPatch{DateTaken: ptr("20200102-100000")})
	return []*FileMetadata{a, b, c}
}

func TestByDateExtKeepsInsertionOrder(t *testing.T) {
	records := indexedRecords()
	ix := BuildIndex(records)

	group := ix.ByDateExt("20200101-090000", "jpg")
	if len(group) != 2 {
		t.Fatalf("group size = %d, want 2", len(group))
	}
	if group[0].No != 1 || group[1].No != 2 {
		t.Errorf("group order = %d,%d", group[0].No, group[1].No)
	}

	if got := ix.ByDateExt("20200101-090000", "mov"); len(got) != 0 {
		t.Errorf("unexpected mov group of size %d", len(got))
	}
}

func TestUniqueDatesInsertionOrder(t *testing.T) {
	ix := BuildIndex(indexedRecords())
	dates := ix.UniqueDates()
	want := []string{"20200101-090000", "20200102-100000"}
	if len(dates) != len(want) {
		t.Fatalf("dates = %v", dates)
	}
	for i := range want {
		if dates[i] != want[i] {
			t.Errorf("dates[%d] = %q, want %q", i, dates[i], want[i])
		}
	}
}

func TestActualNameMatchesExcludesSelf(t *testing.T) {
	records := indexedRecords()
	ix := BuildIndex(records)

	matches := ix.ActualNameMatches("a.jpg", 2)
	if len(matches) != 1 || matches[0].No != 1 {
		t.Fatalf("matches = %v", matches)
	}

	if got := ix.ActualNameMatches("a.jpg", 1); len(got) != 0 {
		t.Errorf("self match not excluded: %v", got)
	}
	if got := ix.ActualNameMatches("missing.jpg", 1); len(got) != 0 {
		t.Errorf("unexpected match: %v", got)
	}
}

func TestConflictExists(t *testing.T) {
	records := indexedRecords()
	ix := BuildIndex(records)
	if ix.ConflictExists() {
		t.Error("no conflicts expected on fresh records")
	}

	Apply(records[1], MetadataPatch{HasConflict: ptr(true)})
	// The old index is stale by design; only a rebuild observes the flag.
	if ix.ConflictExists() {
		t.Error("stale index must not observe the new flag")
	}
	ix = BuildIndex(records)
	if !ix.ConflictExists() {
		t.Error("rebuilt index must observe the flag")
	}
}
