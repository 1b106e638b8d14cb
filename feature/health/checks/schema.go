package checks

import (
	"fmt"
	"sync"

	"track-manager/core/database"
	"track-manager/core/reconcile"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// SchemaReport strictly types the result of the retry state schema check.
type SchemaReport struct {
	Table          string   `json:"table"`
	MissingColumns []string `json:"missing_columns"`
	Status         string   `json:"status"` // "ok", "error"
	Error          string   `json:"error,omitempty"`
}

// CheckSchema verifies the retry state table using the GORM model as the source of truth.
func CheckSchema(db *gorm.DB) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	s, err := schema.Parse(&reconcile.SyncAttempt{}, &sync.Map{}, db.NamingStrategy)
	if err != nil {
		return nil, fmt.Errorf("failed to parse sync attempt model: %w", err)
	}

	report := &SchemaReport{
		Table:          s.Table,
		MissingColumns: []string{},
		Status:         "ok",
	}

	missing, err := database.MissingColumns(db, s.Table, s.DBNames)
	if err != nil {
		report.Status = "error"
		report.Error = err.Error()
		return report, nil
	}
	if len(missing) > 0 {
		report.Status = "error"
		report.MissingColumns = missing
	}
	return report, nil
}
