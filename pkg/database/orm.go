package database

import (
	"database/sql"
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"memberhub/pkg/logging"
)

// OpenORM wraps an open connection pool in a gorm session for the given driver.
func OpenORM(db *sql.DB, driver string, logger logging.Logger) (*gorm.DB, error) {
	driver, err := NormalizeDriver(driver)
	if err != nil {
		return nil, err
	}

	var dialector gorm.Dialector
	switch driver {
	case DriverSQLite:
		dialector = &sqlite.Dialector{Conn: db}
	default:
		dialector = postgres.New(postgres.Config{Conn: db})
	}

	orm, err := gorm.Open(dialector, &gorm.Config{
		Logger:         NewGormLogger(logger),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialise orm: %w", err)
	}
	return orm, nil
}
