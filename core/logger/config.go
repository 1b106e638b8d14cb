package logger

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum level to log (debug, info, warn, error).
	Level string `mapstructure:"level" default:"info"`
	// Format is the encoding (json, console).
	Format string `mapstructure:"format" default:"json"`
	// File is an optional path receiving a copy of every entry, rotated by size.
	File string `mapstructure:"file" default:""`
	// MaxSizeMB is the size at which the log file is rotated.
	MaxSizeMB int `mapstructure:"max_size_mb" default:"100"`
	// MaxBackups is the number of rotated files kept.
	MaxBackups int `mapstructure:"max_backups" default:"3"`
	// MaxAgeDays is how long rotated files are kept.
	MaxAgeDays int `mapstructure:"max_age_days" default:"28"`
}
