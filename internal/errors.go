package internal

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrorCategory represents the type of error encountered while processing a
// single file.
type ErrorCategory string

const (
	ErrorCategoryIO        ErrorCategory = "io_error"        // permissions, vanished files, disk issues
	ErrorCategoryMetadata  ErrorCategory = "metadata_error"  // stat or date resolution failed
	ErrorCategoryRename    ErrorCategory = "rename_error"    // the rename call itself failed
	ErrorCategoryInvariant ErrorCategory = "invariant_error" // record reached the executor in an invalid state
	ErrorCategoryUnknown   ErrorCategory = "unknown_error"
)

// FileError is a categorized per-file failure. A single FileError never
// aborts a batch; it is reported once and the batch continues.
type FileError struct {
	No         int
	From       string
	To         string
	Category   ErrorCategory
	Err        error
	Suggestion string
}

func (e *FileError) Error() string {
	return fmt.Sprintf("[%s] %d- %s: %v", e.Category, e.No, e.From, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// Categorize wraps err with the record's identity and an error category.
func Categorize(no int, from, to string, err error) *FileError {
	fe := &FileError{No: no, From: from, To: to, Err: err}

	errStr := strings.ToLower(err.Error())
	switch {
	case errors.Is(err, os.ErrPermission):
		fe.Category = ErrorCategoryIO
		fe.Suggestion = "Check file permissions in the source directory"
	case errors.Is(err, os.ErrNotExist):
		fe.Category = ErrorCategoryIO
		fe.Suggestion = "File disappeared during the run - it will be picked up next time"
	case strings.Contains(errStr, "no space left"):
		fe.Category = ErrorCategoryIO
		fe.Suggestion = "Free up disk space and re-run"
	case strings.Contains(errStr, "proposed path"):
		fe.Category = ErrorCategoryInvariant
		fe.Suggestion = "Record reached the executor without a proposed name - report this"
	case strings.Contains(errStr, "rename"):
		fe.Category = ErrorCategoryRename
		fe.Suggestion = "File may be locked - it will be re-attempted on the next run"
	case strings.Contains(errStr, "stat"):
		fe.Category = ErrorCategoryMetadata
		fe.Suggestion = "File could not be read for date resolution"
	default:
		fe.Category = ErrorCategoryUnknown
		fe.Suggestion = "Check the session manifest for details"
	}
	return fe
}
