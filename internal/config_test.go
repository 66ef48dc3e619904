package internal

import "testing"

func TestNormalizeExtensions(t *testing.T) {
	got := NormalizeExtensions([]string{".JPG", "Heic", " mov ", "", ".", "m4a"})
	want := []string{"jpg", "heic", "mov", "m4a"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestExtOf(t *testing.T) {
	cases := []struct{ name, want string }{
		{"IMG_1234.JPG", "jpg"},
		{"clip.mov", "mov"},
		{"archive.tar.gz", "gz"},
		{"noext", ""},
	}
	for _, c := range cases {
		if got := ExtOf(c.name); got != c.want {
			t.Errorf("ExtOf(%q) = %q, want %q", c.name, got, c.want)
		}
	}
}
