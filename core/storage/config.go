package storage

// Config holds configuration for the storage provider.
type Config struct {
	// Provider selects the object store implementation (minio, s3, memory).
	Provider string `mapstructure:"provider" default:"minio"`
	// Endpoint is the URL of the storage service.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket is the name of the bucket to store tracks in.
	Bucket string `mapstructure:"bucket" default:"tracks"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds bounds connection setup and every single store call.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

const (
	ProviderMinio  = "minio"
	ProviderS3     = "s3"
	ProviderMemory = "memory"
)

// IsValidProvider checks if the configured provider is supported.
func (c Config) IsValidProvider() bool {
	switch c.Provider {
	case ProviderMinio, ProviderS3, ProviderMemory:
		return true
	default:
		return false
	}
}
