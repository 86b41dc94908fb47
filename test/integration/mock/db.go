// Package mock provides test doubles for the integration suite.
package mock

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Db wraps an in-memory SQLite database used by the integration suite.
type Db struct {
	DbConn *gorm.DB
	models []any
}

// NewDb opens a fresh in-memory database and migrates the given models.
// Each call returns an isolated database, so scenarios cannot leak state
// into each other.
func NewDb(models ...any) *Db {
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to open test database: " + err.Error())
	}

	if err := conn.AutoMigrate(models...); err != nil {
		panic(fmt.Sprintf("failed to migrate test database: %s", err))
	}

	return &Db{
		DbConn: conn,
		models: models,
	}
}

// Reset deletes all rows from every migrated table.
func (d *Db) Reset() error {
	session := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true})
	for _, m := range d.models {
		if err := session.Delete(m).Error; err != nil {
			return err
		}
	}
	return nil
}

// Close closes the underlying connection.
func (d *Db) Close() error {
	sqlDB, err := d.DbConn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
