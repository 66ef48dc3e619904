package internal

import (
	"fmt"
	"os"
	"time"
)

// OSDate returns the earlier of a file's creation time and modification
// time, normalized to UTC. A file copied after capture often has a later
// modification time, while some filesystems reset the creation time on copy;
// taking the minimum of the two is the cheapest robust heuristic. On
// platforms without a queryable creation time the modification time alone is
// used. OSDate is the last-resort date source and succeeds for any stat-able
// file.
func OSDate(path string) (time.Time, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return time.Time{}, fmt.Errorf("stat %s: %w", path, err)
	}
	date := fi.ModTime().UTC()
	if created, ok := statCreationTime(fi); ok {
		created = created.UTC()
		if created.Before(date) {
			date = created
		}
	}
	return date, nil
}

// earliestPresent is min over possibly-absent timestamps: with one side
// absent the present side wins, with both absent the result is absent.
func earliestPresent(a time.Time, aok bool, b time.Time, bok bool) (time.Time, bool) {
	switch {
	case aok && bok:
		if b.Before(a) {
			return b, true
		}
		return a, true
	case aok:
		return a, true
	case bok:
		return b, true
	}
	return time.Time{}, false
}
