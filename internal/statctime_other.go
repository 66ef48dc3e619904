//go:build !linux && !darwin && !windows

package internal

import (
	"os"
	"time"
)

func statCreationTime(fi os.FileInfo) (time.Time, bool) {
	return time.Time{}, false
}
