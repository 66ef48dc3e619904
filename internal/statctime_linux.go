//go:build linux

package internal

import (
	"os"
	"syscall"
	"time"
)

// statCreationTime returns the inode change time, the closest thing Linux
// exposes to a creation time through plain Stat.
func statCreationTime(fi os.FileInfo) (time.Time, bool) {
	st, ok := fi.Sys().(*syscall.Stat_t)
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(int64(st.Ctim.Sec), int64(st.Ctim.Nsec)), true
}
