package internal

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WrongPlace reports whether a file does not belong in its parent
// directory: the leading four characters of the name (the year of a
// date-derived filename) disagree with the leading four characters of the
// directory name.
func WrongPlace(fileName, parentDir string) bool {
	return prefix4(fileName) != prefix4(parentDir)
}

func prefix4(s string) string {
	if len(s) > 4 {
		return s[:4]
	}
	return s
}

// MoveMisplaced walks base and relocates every supported media file whose
// name prefix disagrees with its directory into the flat dest holding
// directory. Name collisions in dest get _2, _3... suffixes. Per-file
// failures are logged and skipped. Returns the number of files moved.
func MoveMisplaced(base, dest string, extensions []string, dryRun bool, logger *Logger) (int, error) {
	moved := 0
	err := filepath.Walk(base, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			logger.Log("Scanning: %s", path)
			return nil
		}
		if !SupportedExt(ExtOf(info.Name()), extensions) {
			return nil
		}
		parent := filepath.Base(filepath.Dir(path))
		if !WrongPlace(info.Name(), parent) {
			return nil
		}

		target := filepath.Join(dest, info.Name())
		if _, err := os.Stat(target); err == nil {
			target = safeDestPath(target)
		}
		if dryRun {
			logger.Log("[dry-run] would move %s -> %s", path, target)
			return nil
		}
		if err := moveFile(path, target); err != nil {
			logger.Error("move %s: %v", path, err)
			return nil
		}
		moved++
		logger.Log("Moved %s -> %s", path, target)
		return nil
	})
	if err != nil {
		return moved, fmt.Errorf("error scanning %s: %w", base, err)
	}
	return moved, nil
}

// safeDestPath generates an unused path by appending _2, _3...
func safeDestPath(dest string) string {
	ext := filepath.Ext(dest)
	base := dest[:len(dest)-len(ext)]
	for i := 2; ; i++ {
		try := fmt.Sprintf("%s_%d%s", base, i, ext)
		if _, err := os.Stat(try); os.IsNotExist(err) {
			return try
		}
	}
}

// moveFile renames src to dest, falling back to an atomic copy plus remove
// when the rename crosses filesystems.
func moveFile(src, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return err
	}
	if err := os.Rename(src, dest); err == nil {
		return nil
	}
	if err := copyFileAtomic(src, dest); err != nil {
		return err
	}
	return os.Remove(src)
}

// copyFileAtomic copies a file atomically (copy temp, then rename).
func copyFileAtomic(src, dest string) error {
	tmp := dest + ".tmp"
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(tmp)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(tmp)
		return err
	}
	out.Close()

	return os.Rename(tmp, dest)
}
