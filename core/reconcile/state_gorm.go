package reconcile

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SyncAttempt is the database row backing GormStateStore.
type SyncAttempt struct {
	Name        string    `gorm:"column:name;primaryKey;size:255"`
	LastAttempt time.Time `gorm:"column:last_attempt;not null"`
	LastError   *string   `gorm:"column:last_error;type:text"`
}

// TableName overrides the table name used by SyncAttempt.
func (SyncAttempt) TableName() string {
	return "sync_attempts"
}

// GormStateStore keeps retry state in the sync_attempts table so it survives restarts.
type GormStateStore struct {
	db *gorm.DB
}

// NewGormStateStore migrates the sync_attempts table and returns a store backed by it.
func NewGormStateStore(db *gorm.DB) (*GormStateStore, error) {
	if err := db.AutoMigrate(&SyncAttempt{}); err != nil {
		return nil, fmt.Errorf("failed to migrate sync_attempts: %w", err)
	}
	return &GormStateStore{db: db}, nil
}

func (s *GormStateStore) RecordSuccess(ctx context.Context, name string, at time.Time) error {
	return s.upsert(ctx, SyncAttempt{Name: name, LastAttempt: at})
}

func (s *GormStateStore) RecordFailure(ctx context.Context, name string, at time.Time, message string) error {
	return s.upsert(ctx, SyncAttempt{Name: name, LastAttempt: at, LastError: &message})
}

func (s *GormStateStore) upsert(ctx context.Context, row SyncAttempt) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"last_attempt", "last_error"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to record attempt for %s: %w", row.Name, err)
	}
	return nil
}

func (s *GormStateStore) All(ctx context.Context) (map[string]Attempt, error) {
	var rows []SyncAttempt
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load sync attempts: %w", err)
	}
	out := make(map[string]Attempt, len(rows))
	for _, row := range rows {
		a := Attempt{LastAttempt: row.LastAttempt}
		if row.LastError != nil {
			a.LastError = *row.LastError
		}
		out[row.Name] = a
	}
	return out, nil
}

func (s *GormStateStore) ClearErrors(ctx context.Context, names ...string) (int, error) {
	query := s.db.WithContext(ctx).Model(&SyncAttempt{}).Where("last_error IS NOT NULL")
	if len(names) > 0 {
		query = query.Where("name IN ?", names)
	}
	res := query.Update("last_error", gorm.Expr("NULL"))
	if res.Error != nil {
		return 0, fmt.Errorf("failed to clear sync errors: %w", res.Error)
	}
	return int(res.RowsAffected), nil
}
