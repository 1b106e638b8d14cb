package checks

import (
	"errors"
	"os"

	"track-manager/core/assets"
)

// LibraryReport is the result of the local library check.
type LibraryReport struct {
	Status    string `json:"status"` // "ok", "missing", "error"
	Directory string `json:"directory"`
	Tracks    int    `json:"tracks"`
	Error     string `json:"error,omitempty"`
}

// CheckLibrary verifies the library directory exists and can be scanned.
func CheckLibrary(cfg assets.Config) *LibraryReport {
	report := &LibraryReport{Directory: cfg.Directory, Status: "ok"}

	info, err := os.Stat(cfg.Directory)
	switch {
	case errors.Is(err, os.ErrNotExist):
		report.Status = "missing"
		return report
	case err != nil:
		report.Status = "error"
		report.Error = err.Error()
		return report
	case !info.IsDir():
		report.Status = "error"
		report.Error = "not a directory"
		return report
	}

	records, err := assets.Scan(cfg.Directory, cfg.ScanOptions())
	if err != nil {
		report.Status = "error"
		report.Error = err.Error()
		return report
	}
	report.Tracks = len(records)
	return report
}
