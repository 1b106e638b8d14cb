package checks

import (
	"context"
	"fmt"
	"strings"

	"track-manager/core/storage"

	"go.uber.org/zap"
)

// BucketReport is the result of the object store checks.
type BucketReport struct {
	Status    string `json:"status"` // "ok", "missing", "error"
	Exists    bool   `json:"exists"`
	Namespace string `json:"namespace"`
	Objects   int    `json:"objects"`
	Error     string `json:"error,omitempty"`
}

// CheckBucket verifies the bucket is reachable and the track namespace can be listed.
func CheckBucket(ctx context.Context, admin storage.Admin, namespace string) (*BucketReport, error) {
	if admin == nil {
		return nil, fmt.Errorf("object store does not support bucket checks")
	}

	report := &BucketReport{Namespace: namespace, Status: "ok"}

	exists, err := admin.BucketExists(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	report.Exists = exists
	if !exists {
		report.Status = "missing"
		return report, nil
	}

	prefix := strings.Trim(namespace, "/")
	if prefix != "" {
		prefix += "/"
	}
	keys, err := admin.ListKeys(ctx, prefix, 1)
	if err != nil {
		report.Status = "error"
		report.Error = fmt.Sprintf("failed to list %s: %v", prefix, err)
		return report, nil
	}
	report.Objects = len(keys)
	return report, nil
}

// FixBucket creates the bucket.
func FixBucket(ctx context.Context, admin storage.Admin, logger *zap.Logger) error {
	if admin == nil {
		return fmt.Errorf("object store does not support bucket creation")
	}
	if err := admin.CreateBucket(ctx); err != nil {
		logger.Error("Failed to create bucket", zap.Error(err))
		return err
	}
	logger.Info("Created missing bucket")
	return nil
}
