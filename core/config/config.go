package config

import (
	"fmt"
	"reflect"
	"strings"

	"track-manager/core/assets"
	"track-manager/core/database"
	"track-manager/core/logger"
	"track-manager/core/reconcile"
	"track-manager/core/server"
	"track-manager/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the object storage (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Library holds configuration for the local track library.
	Library assets.Config `mapstructure:"library"`
	// Sync holds configuration for the sync engine.
	Sync reconcile.Config `mapstructure:"sync"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the database connection.
	Database database.Config `mapstructure:"database"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SYNC_TOLERANCE_MS -> sync.tolerance_ms)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	if !c.Storage.IsValidProvider() {
		return fmt.Errorf("invalid storage provider %q", c.Storage.Provider)
	}
	if !c.Library.IsValidMode() {
		return fmt.Errorf("invalid library mode %q", c.Library.Mode)
	}
	if c.Sync.PersistState && !c.Database.IsValidDriver() {
		return fmt.Errorf("invalid database driver %q", c.Database.Driver)
	}
	if c.Sync.Workers < 1 {
		return fmt.Errorf("sync workers must be at least 1, got %d", c.Sync.Workers)
	}
	return nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Slices keep their comma separated default; the decode hook splits it.
		defaultValue := field.Tag.Get("default")
		v.SetDefault(key, defaultValue)
	}
}
