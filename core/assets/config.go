package assets

// Mode is the storage policy applied to the track library.
type Mode string

const (
	// ModeLocal serves tracks from disk and treats the object store as a mirror.
	ModeLocal Mode = "local"
	// ModeRemote serves tracks from the object store only.
	ModeRemote Mode = "remote"
	// ModeHybrid prefers the local copy and falls back to the object store.
	ModeHybrid Mode = "hybrid"
)

// Config holds configuration for the local track library.
type Config struct {
	// Directory is the local folder holding the track files.
	Directory string `mapstructure:"directory" default:"./media/tracks"`
	// Mode is the storage policy (local, remote, hybrid).
	Mode Mode `mapstructure:"mode" default:"hybrid"`
	// Namespace prefixes every object key ("<namespace>/<name>").
	Namespace string `mapstructure:"namespace" default:"tracks"`
	// Extensions is the allow-list of audio file extensions.
	Extensions []string `mapstructure:"extensions" default:".mp3,.wav,.flac,.aac,.m4a,.ogg,.opus,.aiff,.aif,.wma,.alac"`
	// Exclude holds glob patterns for file names that are never scanned.
	Exclude []string `mapstructure:"exclude" default:"._*,.*"`
	// MediaRoute is the HTTP prefix under which local tracks are served.
	MediaRoute string `mapstructure:"media_route" default:"/media"`
	// PresignExpiryMinutes is the lifetime of remote playback URLs.
	PresignExpiryMinutes int `mapstructure:"presign_expiry_minutes" default:"60"`
}

// IsValidMode checks if the configured mode is supported.
func (c Config) IsValidMode() bool {
	switch c.Mode {
	case ModeLocal, ModeRemote, ModeHybrid:
		return true
	default:
		return false
	}
}

// ScanOptions derives the scanner options from the configuration.
func (c Config) ScanOptions() ScanOptions {
	return ScanOptions{Extensions: c.Extensions, Exclude: c.Exclude}
}
