package internal

import (
	"fmt"
	"os"
	"strings"
	"time"

	exiftool "github.com/barasher/go-exiftool"
	"github.com/rwcarlsen/goexif/exif"
)

// MediaKind classifies a supported extension for metadata extraction.
type MediaKind int

const (
	KindOther MediaKind = iota
	KindImage
	KindVideo
)

// KindOf maps a lower-cased extension to its media kind. Extensions outside
// the supported set, and audio containers like m4a, only ever get the OS
// fallback date.
func KindOf(ext string) MediaKind {
	switch ext {
	case "jpg", "heic":
		return KindImage
	case "mov", "mp4", "mpg", "gif":
		return KindVideo
	}
	return KindOther
}

const exifTimeFormat = "2006:01:02 15:04:05"

// EXIF date tags, in priority order. All present tags are parsed and the
// earliest wins, so the order only matters for like-for-like values.
var exifDateFields = []exif.FieldName{
	exif.DateTimeOriginal,
	exif.DateTimeDigitized,
	exif.DateTime,
}

// exiftool's names for the same EXIF tags, used for HEIC and forced-tool
// extraction.
var imageToolTags = []string{"DateTimeOriginal", "CreateDate", "ModifyDate"}

// Container creation tags: the Apple vendor tag first, then the generic one.
var videoToolTags = []string{"CreationDate", "CreateDate"}

// Accepted timestamp layouts for container metadata. A trailing Z parses as
// a UTC offset; zone-less values are treated as already UTC.
var probeTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006:01:02 15:04:05Z07:00",
	"2006:01:02 15:04:05",
}

// DateExtractor reads embedded "date taken" metadata. JPEG EXIF is decoded
// in-process; HEIC and video containers go through an exiftool child
// process when one is available. The zero value is usable and simply finds
// no container dates.
type DateExtractor struct {
	et        *exiftool.Exiftool
	forceTool bool
}

// NewDateExtractor starts a stay-open exiftool process. When the binary is
// missing, extraction quietly degrades: kinds that need it report no
// timestamp and the OS fallback takes over.
func NewDateExtractor(forceTool bool) *DateExtractor {
	et, err := exiftool.NewExiftool()
	if err != nil {
		return &DateExtractor{forceTool: forceTool}
	}
	return &DateExtractor{et: et, forceTool: forceTool}
}

func (d *DateExtractor) Close() {
	if d.et != nil {
		d.et.Close()
	}
}

// Extract returns the earliest timestamp embedded in the file's metadata,
// normalized to UTC, or absent. Decode failures, malformed tags and
// unsupported kinds all yield absent; they never surface as errors.
func (d *DateExtractor) Extract(path string, kind MediaKind) (time.Time, bool) {
	switch kind {
	case KindImage:
		if d.forceTool || strings.HasSuffix(strings.ToLower(path), ".heic") {
			return d.toolDate(path, imageToolTags)
		}
		return exifDate(path)
	case KindVideo:
		return d.toolDate(path, videoToolTags)
	}
	return time.Time{}, false
}

// ResolveDate combines embedded metadata with the OS fallback: the earliest
// present timestamp wins, and the fallback guarantees a date for every
// stat-able file. The returned error is only ever a stat failure.
func (d *DateExtractor) ResolveDate(path string, kind MediaKind) (time.Time, error) {
	extracted, ok := d.Extract(path, kind)
	osDate, err := OSDate(path)
	if err != nil {
		if ok {
			return extracted, nil
		}
		return time.Time{}, err
	}
	resolved, _ := earliestPresent(extracted, ok, osDate, true)
	return resolved, nil
}

// exifDate decodes EXIF in-process and returns the earliest parsable date
// tag.
func exifDate(path string) (time.Time, bool) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, false
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return time.Time{}, false
	}

	var best time.Time
	found := false
	for _, field := range exifDateFields {
		tag, err := x.Get(field)
		if err != nil {
			continue
		}
		raw, err := tag.StringVal()
		if err != nil {
			continue
		}
		t, err := parseEXIFDate(raw)
		if err != nil {
			// Malformed tag, treated as absent.
			continue
		}
		best, found = earliestPresent(best, found, t, true)
	}
	return best, found
}

// toolDate asks exiftool for the given tags and returns the earliest
// parsable value.
func (d *DateExtractor) toolDate(path string, tags []string) (time.Time, bool) {
	if d.et == nil {
		return time.Time{}, false
	}
	metas := d.et.ExtractMetadata(path)
	if len(metas) == 0 || metas[0].Err != nil {
		return time.Time{}, false
	}

	var best time.Time
	found := false
	for _, tag := range tags {
		raw, err := metas[0].GetString(tag)
		if err != nil {
			continue
		}
		t, err := parseProbeDate(raw)
		if err != nil {
			continue
		}
		best, found = earliestPresent(best, found, t, true)
	}
	return best, found
}

// parseEXIFDate parses the fixed EXIF layout. The value carries no zone and
// is treated as already UTC.
func parseEXIFDate(raw string) (time.Time, error) {
	t, err := time.Parse(exifTimeFormat, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// parseProbeDate parses ISO-8601-like container timestamps, first matching
// layout wins.
func parseProbeDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range probeTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", raw)
}
