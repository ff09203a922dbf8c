// Package mock provides in-memory doubles for the integration test suite.
package mock

import (
	"database/sql"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/fintrack/backend/internal/integration/persistence/model"
)

var dbOnce sync.Once
var dbConn *gorm.DB

// models lists every table the API migrates in production.
var models = []any{
	&model.UserModel{},
	&model.RefreshTokenModel{},
	&model.PasswordResetTokenModel{},
	&model.IncomeModel{},
	&model.ExpenseModel{},
	&model.InvestmentModel{},
	&model.SubscriptionModel{},
}

// NewDb returns a shared in-memory SQLite connection with the full schema migrated.
func NewDb() *gorm.DB {
	dbOnce.Do(func() {
		dbConn = openDb()
	})
	return dbConn
}

func openDb() *gorm.DB {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	// A single connection keeps the shared in-memory database alive.
	dbSQL.SetMaxOpenConns(1)

	conn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	if err := conn.AutoMigrate(models...); err != nil {
		panic("failed to migrate database. err: " + err.Error())
	}

	return conn
}

// ClearDb removes every row so scenarios start from a clean slate.
func ClearDb(conn *gorm.DB) error {
	for _, m := range models {
		if err := conn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(m).Error; err != nil {
			return err
		}
	}
	return nil
}
