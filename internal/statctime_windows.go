//go:build windows

package internal

import (
	"os"
	"syscall"
	"time"
)

func statCreationTime(fi os.FileInfo) (time.Time, bool) {
	st, ok := fi.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(0, st.CreationTime.Nanoseconds()), true
}
