package assets

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a track exists neither locally nor remotely.
var ErrNotFound = errors.New("track not found")

// UploadError reports a failed upload of a single track.
type UploadError struct {
	Name  string
	Cause error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload failed: %v", e.Cause)
}

func (e *UploadError) Unwrap() error {
	return e.Cause
}

// ScanError reports an unreadable library directory.
type ScanError struct {
	Dir string
	Err error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("failed to scan %s: %v", e.Dir, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}
