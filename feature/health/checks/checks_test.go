package checks

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"track-manager/core/assets"
	"track-manager/core/database"
	"track-manager/core/reconcile"
	"track-manager/core/storage"
	"track-manager/core/storage/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestCheckBucket(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	store.Seed("tracks/a.mp3", 1, time.Now())

	report, err := CheckBucket(ctx, store, "tracks")
	require.NoError(t, err)
	assert.Equal(t, "ok", report.Status)
	assert.True(t, report.Exists)
	assert.Equal(t, 1, report.Objects)
}

func TestCheckBucket_Missing(t *testing.T) {
	admin := new(mocks.Admin)
	admin.On("BucketExists", mock.Anything).Return(false, nil)

	report, err := CheckBucket(context.Background(), admin, "tracks")
	require.NoError(t, err)
	assert.Equal(t, "missing", report.Status)
	admin.AssertNotCalled(t, "ListKeys", mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckBucket_Errors(t *testing.T) {
	admin := new(mocks.Admin)
	admin.On("BucketExists", mock.Anything).Return(false, storage.ErrUnavailable)
	_, err := CheckBucket(context.Background(), admin, "tracks")
	assert.ErrorIs(t, err, storage.ErrUnavailable)

	listing := new(mocks.Admin)
	listing.On("BucketExists", mock.Anything).Return(true, nil)
	listing.On("ListKeys", mock.Anything, "tracks/", 1).Return(nil, assert.AnError)
	report, err := CheckBucket(context.Background(), listing, "tracks")
	require.NoError(t, err)
	assert.Equal(t, "error", report.Status)
	assert.NotEmpty(t, report.Error)

	_, err = CheckBucket(context.Background(), nil, "tracks")
	assert.Error(t, err)
}

func TestFixBucket(t *testing.T) {
	admin := new(mocks.Admin)
	admin.On("CreateBucket", mock.Anything).Return(nil).Once()
	assert.NoError(t, FixBucket(context.Background(), admin, zap.NewNop()))

	failing := new(mocks.Admin)
	failing.On("CreateBucket", mock.Anything).Return(assert.AnError)
	assert.ErrorIs(t, FixBucket(context.Background(), failing, zap.NewNop()), assert.AnError)

	admin.AssertExpectations(t)
}

func TestCheckLibrary(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.mp3"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("x"), 0o644))

	report := CheckLibrary(assets.Config{Directory: dir})
	assert.Equal(t, "ok", report.Status)
	assert.Equal(t, 1, report.Tracks)

	report = CheckLibrary(assets.Config{Directory: filepath.Join(dir, "nope")})
	assert.Equal(t, "missing", report.Status)

	report = CheckLibrary(assets.Config{Directory: filepath.Join(dir, "a.mp3")})
	assert.Equal(t, "error", report.Status)

	report = CheckLibrary(assets.Config{Directory: dir, Exclude: []string{"[bad"}})
	assert.Equal(t, "error", report.Status)
}

func TestCheckSchema_SQLite(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	report, err := CheckSchema(db)
	require.NoError(t, err)
	assert.Equal(t, "error", report.Status)
	assert.ElementsMatch(t, []string{"name", "last_attempt", "last_error"}, report.MissingColumns)

	_, err = reconcile.NewGormStateStore(db)
	require.NoError(t, err)

	report, err = CheckSchema(db)
	require.NoError(t, err)
	assert.Equal(t, "ok", report.Status)
	assert.Equal(t, "sync_attempts", report.Table)
	assert.Empty(t, report.MissingColumns)
}

func TestCheckSchema_MySQL(t *testing.T) {
	db, sqlMock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("name", "varchar(255)", "NO", "PRI", nil, "").
		AddRow("last_attempt", "datetime(3)", "NO", "", nil, "")
	sqlMock.ExpectQuery(regexp.QuoteMeta("SHOW COLUMNS FROM `sync_attempts`")).WillReturnRows(rows)

	report, err := CheckSchema(db)
	require.NoError(t, err)
	assert.Equal(t, "error", report.Status)
	assert.Equal(t, []string{"last_error"}, report.MissingColumns)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestCheckSchema_QueryError(t *testing.T) {
	db, sqlMock := setupMockDB(t)
	sqlMock.ExpectQuery(regexp.QuoteMeta("SHOW COLUMNS FROM `sync_attempts`")).WillReturnError(assert.AnError)

	report, err := CheckSchema(db)
	require.NoError(t, err)
	assert.Equal(t, "error", report.Status)
	assert.NotEmpty(t, report.Error)
}

func TestCheckSchema_NilDB(t *testing.T) {
	report, err := CheckSchema(nil)
	assert.Error(t, err)
	assert.Nil(t, report)
}
