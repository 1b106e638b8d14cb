package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultExtensions is the audio allow-list used when none is configured.
var DefaultExtensions = []string{".mp3", ".wav", ".flac", ".aac", ".m4a", ".ogg", ".opus", ".aiff", ".aif", ".wma", ".alac"}

// audioTypes overrides the platform mime table, which is often incomplete for audio.
var audioTypes = map[string]string{
	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
	".flac": "audio/flac",
	".aac":  "audio/aac",
	".m4a":  "audio/mp4",
	".ogg":  "audio/ogg",
	".opus": "audio/opus",
	".aiff": "audio/aiff",
	".aif":  "audio/aiff",
	".wma":  "audio/x-ms-wma",
	".alac": "audio/mp4",
}

// AssetRecord describes one track file in the local library.
type AssetRecord struct {
	Name        string    `json:"name"`
	Path        string    `json:"path"`
	SizeBytes   int64     `json:"sizeBytes"`
	ModifiedAt  time.Time `json:"modifiedAt"`
	ContentType string    `json:"contentType"`
}

// ScanOptions controls which files Scan returns.
type ScanOptions struct {
	// Extensions is the allow-list; empty means DefaultExtensions.
	Extensions []string
	// Exclude holds glob patterns matched against file names.
	Exclude []string
}

// Scan lists the qualifying track files directly inside dir, sorted by name.
// A missing directory is an empty library, not an error.
func Scan(dir string, opts ScanOptions) ([]AssetRecord, error) {
	for _, pattern := range opts.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, &ScanError{Dir: dir, Err: fmt.Errorf("invalid exclude pattern %q: %w", pattern, doublestar.ErrBadPattern)}
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, &ScanError{Dir: dir, Err: err}
	}

	allowed := extensionSet(opts.Extensions)
	records := make([]AssetRecord, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if !qualifies(name, allowed, opts.Exclude) {
			continue
		}

		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			// Vanished between listing and stat, or not a plain file.
			continue
		}
		records = append(records, newRecord(name, path, info))
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Name < records[j].Name
	})
	return records, nil
}

// Lookup returns the record for a single file in dir, applying the same filters as Scan.
func Lookup(dir, name string, opts ScanOptions) (AssetRecord, bool) {
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return AssetRecord{}, false
	}
	if !qualifies(name, extensionSet(opts.Extensions), opts.Exclude) {
		return AssetRecord{}, false
	}
	path := filepath.Join(dir, name)
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return AssetRecord{}, false
	}
	return newRecord(name, path, info), true
}

// ContentType resolves the MIME type of a track from its extension.
func ContentType(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if ct, ok := audioTypes[ext]; ok {
		return ct
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

func newRecord(name, path string, info os.FileInfo) AssetRecord {
	return AssetRecord{
		Name:        name,
		Path:        path,
		SizeBytes:   info.Size(),
		ModifiedAt:  info.ModTime(),
		ContentType: ContentType(name),
	}
}

func qualifies(name string, allowed map[string]struct{}, exclude []string) bool {
	if _, ok := allowed[strings.ToLower(filepath.Ext(name))]; !ok {
		return false
	}
	for _, pattern := range exclude {
		if ok, _ := doublestar.Match(pattern, name); ok {
			return false
		}
	}
	return true
}

func extensionSet(exts []string) map[string]struct{} {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	set := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		set[ext] = struct{}{}
	}
	return set
}
