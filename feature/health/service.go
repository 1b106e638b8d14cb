package health

import (
	"context"

	"track-manager/core/assets"
	"track-manager/core/storage"
	"track-manager/feature/health/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Report is the combined health report.
type Report struct {
	Status  string                `json:"status"` // "ok", "degraded"
	Fixed   []string              `json:"fixed,omitempty"`
	Bucket  *checks.BucketReport  `json:"bucket,omitempty"`
	Library *checks.LibraryReport `json:"library"`
	Schema  *checks.SchemaReport  `json:"schema,omitempty"`
	Errors  []string              `json:"errors,omitempty"`
}

// Healthy reports whether every check passed.
func (r *Report) Healthy() bool {
	return r.Status == "ok"
}

// Service runs the health checks.
type Service struct {
	admin   storage.Admin
	library assets.Config
	db      *gorm.DB
	logger  *zap.Logger
}

// NewService creates a new health service. db is only checked when not nil, which is
// the case when retry state is persisted.
func NewService(admin storage.Admin, library assets.Config, db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		admin:   admin,
		library: library,
		db:      db,
		logger:  logger,
	}
}

// Check runs every check. With fix set, a missing bucket is created and checked again.
func (s *Service) Check(ctx context.Context, fix bool) *Report {
	return s.check(ctx, s.logger, fix)
}

func (s *Service) check(ctx context.Context, l *zap.Logger, fix bool) *Report {
	report := &Report{Status: "ok"}

	bucket, err := checks.CheckBucket(ctx, s.admin, s.library.Namespace)
	if err == nil && bucket.Status == "missing" && fix {
		l.Info("Attempting to create missing bucket")
		if fixErr := checks.FixBucket(ctx, s.admin, l); fixErr != nil {
			report.Errors = append(report.Errors, "failed to create bucket: "+fixErr.Error())
		} else {
			report.Fixed = append(report.Fixed, "bucket")
			bucket, err = checks.CheckBucket(ctx, s.admin, s.library.Namespace)
		}
	}
	if err != nil {
		l.Error("Bucket check failed", zap.Error(err))
		report.Errors = append(report.Errors, err.Error())
	} else {
		report.Bucket = bucket
	}

	report.Library = checks.CheckLibrary(s.library)
	if report.Library.Status == "missing" && s.library.Mode == assets.ModeRemote {
		// A remote-only library has no local directory to read.
		report.Library.Status = "ok"
	}

	if s.db != nil {
		schemaReport, err := checks.CheckSchema(s.db)
		if err != nil {
			report.Errors = append(report.Errors, err.Error())
		} else {
			report.Schema = schemaReport
		}
	}

	if len(report.Errors) > 0 ||
		(report.Bucket != nil && report.Bucket.Status != "ok") ||
		report.Library.Status != "ok" ||
		(report.Schema != nil && report.Schema.Status != "ok") {
		report.Status = "degraded"
		l.Warn("Health check degraded", zap.Strings("errors", report.Errors))
	}
	return report
}
