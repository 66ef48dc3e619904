package internal

import (
	"errors"
	"os"
	"testing"
)

func TestCategorize(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want ErrorCategory
	}{
		{"permission", os.ErrPermission, ErrorCategoryIO},
		{"vanished", os.ErrNotExist, ErrorCategoryIO},
		{"disk full", errors.New("write /m/a.jpg: no space left on device"), ErrorCategoryIO},
		{"unset proposal", errors.New("record 7: proposed path is unset"), ErrorCategoryInvariant},
		{"rename", errors.New("rename /m/a.jpg /m/b.jpg: device or resource busy"), ErrorCategoryRename},
		{"stat", errors.New("stat /m/a.jpg: input/output error"), ErrorCategoryMetadata},
		{"other", errors.New("something odd"), ErrorCategoryUnknown},
	}
	for _, c := range cases {
		fe := Categorize(1, "a.jpg", "b.jpg", c.err)
		if fe.Category != c.want {
			t.Errorf("%s: category = %q, want %q", c.name, fe.Category, c.want)
		}
		if fe.Suggestion == "" {
			t.Errorf("%s: no suggestion", c.name)
		}
	}
}

func TestFileErrorUnwrap(t *testing.T) {
	fe := Categorize(2, "a.jpg", "b.jpg", os.ErrNotExist)
	if !errors.Is(fe, os.ErrNotExist) {
		t.Error("wrapped cause lost")
	}
	if fe.No != 2 || fe.From != "a.jpg" || fe.To != "b.jpg" {
		t.Errorf("identity lost: %+v", fe)
	}
}
