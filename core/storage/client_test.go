package storage_test

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"errors"
	"fmt"
	"math/big"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"track-manager/core/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    false,
			Bucket:    "test-bucket",
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTP", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "http://localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    false,
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTPS", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "https://s3.amazonaws.com",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    true,
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestConfigTimeout(t *testing.T) {
	assert.Equal(t, 30*time.Second, storage.Config{}.Timeout())
	assert.Equal(t, 5*time.Second, storage.Config{TimeoutSeconds: 5}.Timeout())
}

func TestOpen(t *testing.T) {
	t.Run("Memory", func(t *testing.T) {
		store, err := storage.Open(storage.Config{Provider: storage.ProviderMemory})
		assert.NoError(t, err)
		assert.IsType(t, &storage.MemoryStore{}, store)
	})

	t.Run("Minio", func(t *testing.T) {
		store, err := storage.Open(storage.Config{Provider: storage.ProviderMinio, Endpoint: "localhost:9000", Bucket: "tracks"})
		assert.NoError(t, err)
		assert.IsType(t, &storage.MinioStore{}, store)
	})

	t.Run("S3", func(t *testing.T) {
		store, err := storage.Open(storage.Config{Provider: storage.ProviderS3, Endpoint: "localhost:9000", Bucket: "tracks", AccessKey: "k", SecretKey: "s"})
		assert.NoError(t, err)
		assert.IsType(t, &storage.S3Store{}, store)
	})

	t.Run("S3WithCABundle", func(t *testing.T) {
		t.Setenv("AWS_CA_BUNDLE", writeCABundle(t))
		store, err := storage.Open(storage.Config{Provider: storage.ProviderS3, Endpoint: "localhost:9000", Bucket: "tracks", AccessKey: "k", SecretKey: "s", UseSSL: true})
		assert.NoError(t, err)
		assert.IsType(t, &storage.S3Store{}, store)
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := storage.Open(storage.Config{Provider: "ftp"})
		assert.Error(t, err)
	})
}

func TestIsValidProvider(t *testing.T) {
	assert.True(t, storage.Config{Provider: "s3"}.IsValidProvider())
	assert.False(t, storage.Config{Provider: "gcs"}.IsValidProvider())
}

func TestIsUnavailable(t *testing.T) {
	assert.False(t, storage.IsUnavailable(nil))
	assert.True(t, storage.IsUnavailable(storage.ErrUnavailable))
	assert.True(t, storage.IsUnavailable(fmt.Errorf("put: %w", context.DeadlineExceeded)))
	assert.True(t, storage.IsUnavailable(&net.OpError{Op: "dial", Err: errors.New("connection refused")}))
	assert.False(t, storage.IsUnavailable(errors.New("access denied")))
}

// writeCABundle writes a self-signed CA certificate as PEM and returns its path.
func writeCABundle(t *testing.T) string {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	tmpl := &x509.Certificate{
		SerialNumber:          big.NewInt(1),
		Subject:               pkix.Name{CommonName: "track-manager test CA"},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(time.Hour),
		IsCA:                  true,
		BasicConstraintsValid: true,
		KeyUsage:              x509.KeyUsageCertSign,
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "ca.pem")
	require.NoError(t, os.WriteFile(path, pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der}), 0o644))
	return path
}
