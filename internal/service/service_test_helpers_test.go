package service

import (
	"errors"
	"net/http"
	"testing"

	"github.com/schoolsite/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupServiceTestDB opens a shared in-memory database, migrates the
// given models and returns the handle with a cleanup func.
func setupServiceTestDB(t *testing.T, models ...interface{}) (*gorm.DB, func()) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(models...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	cleanup := func() {
		for _, model := range models {
			gdb.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model)
		}
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
	return gdb, cleanup
}

func seedPageRows(t *testing.T, gdb *gorm.DB) {
	t.Helper()
	if err := db.SeedPageContent(gdb); err != nil {
		t.Fatalf("failed to seed page rows: %v", err)
	}
}

type fakeHTTPClient struct {
	handler func(*http.Request) (*http.Response, error)
}

func (f fakeHTTPClient) Do(req *http.Request) (*http.Response, error) {
	if f.handler == nil {
		return nil, errors.New("no handler configured")
	}
	return f.handler(req)
}
