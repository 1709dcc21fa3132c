package Models

import (
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the database and migrates the schema. The handle is
// returned to the caller instead of stored in a package variable so the
// process owns its lifetime; close the underlying *sql.DB at shutdown.
func Connect() (*gorm.DB, error) {
	var dialector gorm.Dialector
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open("database.db")
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates the four shop tables, base tables before the ones
// holding foreign keys to them.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&Item{},
		&Customer{},
	); err != nil {
		return err
	}

	return db.AutoMigrate(
		&CreditTransaction{}, // references Customer
		&Bottle{},            // references Customer
	)
}
